package domain

import "math"

// Standard conditions the carry estimate is measured against.
const (
	StandardTemperatureF  = 70.0
	StandardHumidityPct   = 50.0
	StandardPressureInHg  = 29.92
	hPaToInHg             = 0.02953
	stationPressureMinElv = 500.0
)

// ParkModelKind distinguishes the carry formulas.
type ParkModelKind string

const (
	ModelStandardSeaLevel ParkModelKind = "standard_sea_level"
	ModelHighAltitude     ParkModelKind = "high_altitude"
)

// ParkModel selects the carry formula for a park. High-altitude parks carry a
// fixed baseline that already accounts for thin air, so they skip the
// pressure term.
type ParkModel struct {
	Kind               ParkModelKind `json:"kind"`
	AltitudeBaselineFt float64       `json:"altitude_baseline_ft,omitempty"`
}

// StandardSeaLevel is the model for every park without a named exception.
var StandardSeaLevel = ParkModel{Kind: ModelStandardSeaLevel}

// HighAltitude returns a model with the given fixed baseline.
func HighAltitude(baselineFt float64) ParkModel {
	return ParkModel{Kind: ModelHighAltitude, AltitudeBaselineFt: baselineFt}
}

var parkModels = map[string]ParkModel{
	"Coors Field": HighAltitude(22),
	"Chase Field": HighAltitude(4),
}

// ParkModelFor returns the named park's model, or StandardSeaLevel.
func ParkModelFor(name string) ParkModel {
	if m, ok := parkModels[name]; ok {
		return m
	}
	return StandardSeaLevel
}

// CarryOutlook is the seven-level description of a carry difference.
type CarryOutlook string

const (
	OutlookExcellent           CarryOutlook = "Excellent home run conditions"
	OutlookGood                CarryOutlook = "Good home run conditions"
	OutlookSlightlyFavorable   CarryOutlook = "Slightly favorable for home runs"
	OutlookAverage             CarryOutlook = "Average home run conditions"
	OutlookSlightlyUnfavorable CarryOutlook = "Slightly unfavorable for home runs"
	OutlookPoor                CarryOutlook = "Poor home run conditions"
	OutlookVeryPoor            CarryOutlook = "Very poor home run conditions"
)

// outlookLadder is evaluated top-down; the first floor the difference meets wins.
var outlookLadder = []struct {
	floor   float64
	outlook CarryOutlook
}{
	{20, OutlookExcellent},
	{10, OutlookGood},
	{4, OutlookSlightlyFavorable},
	{-4, OutlookAverage},
	{-10, OutlookSlightlyUnfavorable},
	{-20, OutlookPoor},
}

// DescribeCarry maps a carry difference in feet onto the outlook ladder.
func DescribeCarry(diffFt float64) CarryOutlook {
	for _, step := range outlookLadder {
		if diffFt >= step.floor {
			return step.outlook
		}
	}
	return OutlookVeryPoor
}

// CarryFactorResult is the decomposed carry estimate. For the park's model the
// contribution fields sum to CarryDifferenceFt.
type CarryFactorResult struct {
	CarryDifferenceFt   float64      `json:"carry_difference_ft"`
	Description         CarryOutlook `json:"description"`
	AltitudeBaselineFt  float64      `json:"altitude_baseline_ft"`
	TemperatureEffectFt float64      `json:"temperature_effect_ft"`
	HumidityEffectFt    float64      `json:"humidity_effect_ft"`
	PressureEffectFt    float64      `json:"pressure_effect_ft"`
	WindEffectFt        float64      `json:"wind_effect_ft"`
	HumidorEffectFt     float64      `json:"humidor_effect_ft"`
	StationPressureInHg float64      `json:"station_pressure_inhg"`
	Model               ParkModel    `json:"model"`
}

// ComputeCarryFactor estimates how far a fly ball carries relative to standard
// conditions. A nil geometry is treated as an unknown sea-level park with no
// park-relative wind. Returns nil when sample is nil.
func ComputeCarryFactor(sample *WeatherSample, geometry *BallparkGeometry) *CarryFactorResult {
	if sample == nil {
		return nil
	}

	var (
		elevation float64
		zone      = WindZoneUnknown
		model     = StandardSeaLevel
	)
	if geometry != nil {
		elevation = geometry.ElevationFt
		zone = ResolveWindZone(sample.WindFromDeg, geometry.OrientationDeg)
		model = ParkModelFor(geometry.Name)
	}

	temp := sample.TemperatureF
	humidity := sample.HumidityPct
	station := StationPressureInHg(elevation, temp, sample.PressureHPa)

	r := CarryFactorResult{
		TemperatureEffectFt: round1(temperatureEffect(temp)),
		HumidityEffectFt:    round1(humidityEffect(humidity)),
		WindEffectFt:        round1(WindEffect(sample.WindSpeedMPH, zone)),
		HumidorEffectFt:     round1(humidorEffect(temp, humidity)),
		StationPressureInHg: round2(station),
		Model:               model,
	}

	switch model.Kind {
	case ModelHighAltitude:
		r.AltitudeBaselineFt = round1(model.AltitudeBaselineFt)
	default:
		r.PressureEffectFt = round1((StandardPressureInHg - station) * 5.0)
	}

	r.CarryDifferenceFt = round1(r.AltitudeBaselineFt + r.TemperatureEffectFt + r.HumidityEffectFt +
		r.PressureEffectFt + r.WindEffectFt + r.HumidorEffectFt)
	r.Description = DescribeCarry(r.CarryDifferenceFt)
	return &r
}

// StationPressureInHg returns the pressure at field level. Above 500 ft it is
// derived from the standard atmosphere, corrected for temperature against the
// standard lapse rate; lower parks use the provider pressure directly.
func StationPressureInHg(elevationFt, tempF float64, pressureHPa *float64) float64 {
	if elevationFt > stationPressureMinElv {
		p := StandardPressureInHg * math.Pow(1-6.8756e-6*elevationFt, 5.2559)
		lapseTemp := 59 - elevationFt*0.00356
		return p * (tempF + 459.67) / (lapseTemp + 459.67)
	}
	if pressureHPa != nil {
		return *pressureHPa * hPaToInHg
	}
	return StandardPressureInHg
}

func temperatureEffect(tempF float64) float64 {
	return ((tempF - StandardTemperatureF) / 10) * 2.5
}

// humidityEffect treats humid air as less dense, so more humidity adds carry.
func humidityEffect(humidityPct float64) float64 {
	return ((humidityPct - StandardHumidityPct) / 10) * 1.2
}

// humidorEffect models ball elasticity around humidor storage conditions.
func humidorEffect(tempF, humidityPct float64) float64 {
	return ((tempF-StandardTemperatureF)/10)*0.3 - ((humidityPct-StandardHumidityPct)/10)*0.2
}

var windMultipliers = map[WindZone]float64{
	WindOutToCenter:    2.0,
	WindInFromCenter:   -1.8,
	WindOutToLeft:      1.5,
	WindOutToRight:     1.5,
	WindInFromLeft:     -1.3,
	WindInFromRight:    -1.3,
	WindOutToLeftFoul:  0.25,
	WindOutToRightFoul: 0.25,
}

const (
	calmWindMPH      = 4.0
	lightWindMPH     = 8.0
	lightWindDamping = 0.7
)

// WindEffect converts wind speed and zone into feet of carry. Winds under
// 4 mph are ignored; winds under 8 mph are damped after the zone multiplier.
func WindEffect(speedMPH float64, zone WindZone) float64 {
	if speedMPH < calmWindMPH {
		return 0
	}
	effect := speedMPH * windMultipliers[zone]
	if speedMPH < lightWindMPH {
		effect *= lightWindDamping
	}
	return effect
}

func round1(v float64) float64 { return roundTo(v, 10) }

func round2(v float64) float64 { return roundTo(v, 100) }

// roundTo rounds half away from zero and never returns negative zero.
func roundTo(v, scale float64) float64 {
	r := math.Round(v*scale) / scale
	if r == 0 {
		return 0
	}
	return r
}
