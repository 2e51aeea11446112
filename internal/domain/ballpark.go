package domain

// Geo represents a WGS-84 latitude/longitude coordinate pair.
type Geo struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// BallparkGeometry is the static metadata needed to relate weather to a field.
type BallparkGeometry struct {
	Name string `json:"name"`

	// Location is nil when coordinates are unknown; weather cannot be fetched.
	Location *Geo `json:"location,omitempty"`

	// OrientationDeg is the bearing from home plate toward center field.
	// Nil means unknown, and the wind resolver assumes an east-facing park.
	OrientationDeg *float64 `json:"orientation_deg,omitempty"`

	// ElevationFt is zero for parks without a recorded elevation.
	ElevationFt float64 `json:"elevation_ft,omitempty"`
}

// BallparkTable maps exact stadium display names to their geometry.
// It implements BallparkSource.
type BallparkTable map[string]BallparkGeometry

// Lookup returns a copy of the named park's geometry, or nil when the name is
// not in the table. Names must match exactly.
func (t BallparkTable) Lookup(name string) *BallparkGeometry {
	g, ok := t[name]
	if !ok {
		return nil
	}
	if g.Location != nil {
		loc := *g.Location
		g.Location = &loc
	}
	if g.OrientationDeg != nil {
		o := *g.OrientationDeg
		g.OrientationDeg = &o
	}
	return &g
}

// Names returns every stadium name in the table, in no particular order.
func (t BallparkTable) Names() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	return names
}

func park(name string, lat, lon, orientation, elevation float64) BallparkGeometry {
	return BallparkGeometry{
		Name:           name,
		Location:       &Geo{Lat: lat, Lon: lon},
		OrientationDeg: &orientation,
		ElevationFt:    elevation,
	}
}

// DefaultBallparks holds the 30 MLB parks. Orientation is the home plate to
// center field bearing; elevations are only recorded where they move station
// pressure or are notable, everything else is treated as sea level.
var DefaultBallparks = BallparkTable{
	// American League
	"Fenway Park":                 park("Fenway Park", 42.3467, -71.0972, 65, 0),
	"Yankee Stadium":              park("Yankee Stadium", 40.8296, -73.9262, 95, 0),
	"Tropicana Field":             park("Tropicana Field", 27.7682, -82.6534, 90, 10),
	"Rogers Centre":               park("Rogers Centre", 43.6414, -79.3894, 90, 0),
	"Oriole Park at Camden Yards": park("Oriole Park at Camden Yards", 39.2838, -76.6217, 70, 0),
	"Progressive Field":           park("Progressive Field", 41.4962, -81.6852, 80, 0),
	"Comerica Park":               park("Comerica Park", 42.3390, -83.0485, 85, 0),
	"Guaranteed Rate Field":       park("Guaranteed Rate Field", 41.8300, -87.6338, 90, 0),
	"Kauffman Stadium":            park("Kauffman Stadium", 39.0517, -94.4803, 90, 750),
	"Target Field":                park("Target Field", 44.9817, -93.2776, 105, 0),
	"Minute Maid Park":            park("Minute Maid Park", 29.7570, -95.3551, 105, 50),
	"Angel Stadium":               park("Angel Stadium", 33.8003, -117.8827, 90, 0),
	"Oakland Coliseum":            park("Oakland Coliseum", 37.7516, -122.2005, 90, 0),
	"T-Mobile Park":               park("T-Mobile Park", 47.5914, -122.3326, 90, 0),
	"Globe Life Field":            park("Globe Life Field", 32.7473, -97.0814, 90, 550),

	// National League
	"Truist Park":              park("Truist Park", 33.8906, -84.4677, 90, 0),
	"loanDepot park":           park("loanDepot park", 25.7781, -80.2197, 90, 0),
	"Citi Field":               park("Citi Field", 40.7571, -73.8458, 90, 0),
	"Citizens Bank Park":       park("Citizens Bank Park", 39.9061, -75.1665, 90, 0),
	"Nationals Park":           park("Nationals Park", 38.8730, -77.0074, 90, 0),
	"Wrigley Field":            park("Wrigley Field", 41.9484, -87.6553, 90, 0),
	"Great American Ball Park": park("Great American Ball Park", 39.0974, -84.5061, 90, 0),
	"American Family Field":    park("American Family Field", 43.0280, -87.9712, 90, 0),
	"PNC Park":                 park("PNC Park", 40.4469, -80.0057, 85, 0),
	"Busch Stadium":            park("Busch Stadium", 38.6226, -90.1928, 90, 0),
	"Chase Field":              park("Chase Field", 33.4453, -112.0667, 90, 1100),
	"Coors Field":              park("Coors Field", 39.7559, -104.9942, 90, 5200),
	"Dodger Stadium":           park("Dodger Stadium", 34.0739, -118.2400, 90, 0),
	"Petco Park":               park("Petco Park", 32.7073, -117.1566, 90, 0),
	"Oracle Park":              park("Oracle Park", 37.7786, -122.3893, 225, 0),
}
