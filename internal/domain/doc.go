// Package domain estimates how weather at a ballpark changes fly-ball carry.
//
// # Sample Selection
//
// A weather provider returns a current observation plus hourly forecasts.
// [SelectSample] picks one: games underway or finished use current
// conditions; games starting within [ForecastHorizon] use the hourly entry
// nearest first pitch. Callers pass the evaluation instant explicitly, so
// nothing in this package reads a clock.
//
// # Wind
//
// Bearings are meteorological (the direction the wind blows from). The angle
// relative to the park's home plate to center field axis falls into one of
// eight 45° sectors:
//
//	  0° out to center field            180° in from center field
//	 45° out to right field             225° in from left field
//	 90° out to right field foul        270° out to left field foul
//	135° in from right field            315° out to left field
//
// Sector boundaries sit at the 22.5° offsets; each sector is half-open.
//
// # Carry Model
//
// Contributions are measured against 70°F, 50% relative humidity and
// 29.92 inHg:
//
//	temperature  +2.5 ft per 10°F
//	humidity     +1.2 ft per 10% RH
//	pressure     +5.0 ft per inHg below standard (sea-level parks only)
//	wind         speed x zone multiplier, ignored under 4 mph, x0.7 under 8 mph
//	humidor      +0.3 ft per 10°F, -0.2 ft per 10% RH
//
// Coors Field and Chase Field use a fixed altitude baseline (+22 ft, +4 ft) in
// place of the pressure term. Parks above 500 ft derive station pressure from
// the standard atmosphere instead of the provider's sea-level reading.
//
// Each contribution is rounded to 0.1 ft before summing, so the published
// contributions always add up to the published total.
package domain
