package domain

import (
	"math"
	"sort"
)

// DefaultOrientationDeg is assumed for parks whose orientation is unknown.
const DefaultOrientationDeg = 90.0

// WindZone classifies wind relative to a park's home plate to center field axis.
// "Out" zones carry fly balls toward the outfield, "in" zones knock them down.
type WindZone int

const (
	WindZoneUnknown WindZone = iota
	WindOutToCenter
	WindOutToRight
	WindOutToRightFoul
	WindInFromRight
	WindInFromCenter
	WindInFromLeft
	WindOutToLeftFoul
	WindOutToLeft
)

var windZoneLabels = map[WindZone]string{
	WindZoneUnknown:    "Unknown",
	WindOutToCenter:    "out to center field",
	WindOutToRight:     "out to right field",
	WindOutToRightFoul: "out to right field foul territory",
	WindInFromRight:    "in from right field",
	WindInFromCenter:   "in from center field",
	WindInFromLeft:     "in from left field",
	WindOutToLeftFoul:  "out to left field foul territory",
	WindOutToLeft:      "out to left field",
}

// String returns the display label, e.g. "out to left field".
func (z WindZone) String() string {
	if label, ok := windZoneLabels[z]; ok {
		return label
	}
	return windZoneLabels[WindZoneUnknown]
}

// windSectorStarts is the sorted lower bound of each 45° sector after the
// relative angle is shifted by half a sector, so the sector centred on 0°
// becomes [0, 45). windSectorZones[i] is the zone for the sector starting at
// windSectorStarts[i].
var (
	windSectorStarts = []float64{0, 45, 90, 135, 180, 225, 270, 315}
	windSectorZones  = []WindZone{
		WindOutToCenter,
		WindOutToRight,
		WindOutToRightFoul,
		WindInFromRight,
		WindInFromCenter,
		WindInFromLeft,
		WindOutToLeftFoul,
		WindOutToLeft,
	}
)

const windSectorHalfWidth = 22.5

// ResolveWindZone places a wind-from bearing into one of eight park-relative
// sectors. A nil wind bearing yields WindZoneUnknown; a nil orientation
// defaults to DefaultOrientationDeg.
func ResolveWindZone(windFromDeg, orientationDeg *float64) WindZone {
	if windFromDeg == nil {
		return WindZoneUnknown
	}
	orientation := DefaultOrientationDeg
	if orientationDeg != nil {
		orientation = *orientationDeg
	}

	relative := normalizeDegrees(*windFromDeg - orientation)
	return sectorFor(relative)
}

// sectorFor maps a relative angle in [0, 360) to its zone.
func sectorFor(relative float64) WindZone {
	shifted := normalizeDegrees(relative + windSectorHalfWidth)
	i := sort.Search(len(windSectorStarts), func(i int) bool {
		return windSectorStarts[i] > shifted
	})
	return windSectorZones[i-1]
}

// normalizeDegrees folds any angle into [0, 360).
func normalizeDegrees(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	if d >= 360 {
		d = 0
	}
	return d
}

var cardinalDirections = [16]string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

// CardinalDirection converts an absolute bearing into a 16-point compass label.
// Exact half-way bearings round to the even index.
func CardinalDirection(deg float64) string {
	i := int(math.RoundToEven(normalizeDegrees(deg)/22.5)) % len(cardinalDirections)
	return cardinalDirections[i]
}

// DirectionLabel is the wind text shown to users. With park context it is the
// park-relative zone; without it, the compass point the wind blows from.
func DirectionLabel(windFromDeg *float64, geometry *BallparkGeometry) string {
	if windFromDeg == nil {
		return WindZoneUnknown.String()
	}
	if geometry == nil {
		return "from " + CardinalDirection(*windFromDeg)
	}
	return ResolveWindZone(windFromDeg, geometry.OrientationDeg).String()
}
