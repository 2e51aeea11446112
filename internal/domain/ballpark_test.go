package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBallparkTable_Lookup(t *testing.T) {
	coors := DefaultBallparks.Lookup("Coors Field")
	require.NotNil(t, coors)
	require.NotNil(t, coors.Location)
	assert.Equal(t, "Coors Field", coors.Name)
	assert.InDelta(t, 5200.0, coors.ElevationFt, 1e-9)
	assert.InDelta(t, 39.7559, coors.Location.Lat, 1e-9)

	assert.Nil(t, DefaultBallparks.Lookup("coors field"), "names match exactly")
	assert.Nil(t, DefaultBallparks.Lookup("Ebbets Field"))
}

func TestBallparkTable_LookupReturnsCopy(t *testing.T) {
	fenway := DefaultBallparks.Lookup("Fenway Park")
	require.NotNil(t, fenway)
	*fenway.OrientationDeg = 0
	fenway.Location.Lat = 0

	again := DefaultBallparks.Lookup("Fenway Park")
	assert.InDelta(t, 65.0, *again.OrientationDeg, 1e-9)
	assert.InDelta(t, 42.3467, again.Location.Lat, 1e-9)
}

func TestDefaultBallparks(t *testing.T) {
	assert.Len(t, DefaultBallparks.Names(), 30)
	for _, name := range DefaultBallparks.Names() {
		g := DefaultBallparks.Lookup(name)
		require.NotNil(t, g)
		assert.Equal(t, name, g.Name)
		assert.NotNil(t, g.Location, name)
		assert.NotNil(t, g.OrientationDeg, name)
	}
}

func TestBallparkTable_PartialGeometry(t *testing.T) {
	table := BallparkTable{"Sandlot": {Name: "Sandlot"}}

	g := table.Lookup("Sandlot")
	require.NotNil(t, g)
	assert.Nil(t, g.Location)
	assert.Equal(t, WindOutToCenter, ResolveWindZone(ptr(90.0), g.OrientationDeg))
	assert.Zero(t, g.ElevationFt)
}
