package domain

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidSample is returned when a weather sample carries out-of-range values.
var ErrInvalidSample = errors.New("invalid weather sample")

// validate is safe for concurrent use and caches struct metadata.
var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateSample checks the sample's numeric ranges. The returned error wraps
// ErrInvalidSample and names the first offending field.
func ValidateSample(sample *WeatherSample) error {
	if sample == nil {
		return nil
	}
	if err := validate.Struct(sample); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%w: %s failed %q (value %v)", ErrInvalidSample, fe.Field(), fe.Tag(), fe.Value())
		}
		return fmt.Errorf("%w: %w", ErrInvalidSample, err)
	}
	return nil
}
