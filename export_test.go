package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouteGeoJSON(t *testing.T) {
	grid := defaultGrid(t)
	result, err := NewEngine(grid).Search(context.Background())
	require.NoError(t, err)
	commands, err := TranslatePath(result.Path, EnglishLabels)
	require.NoError(t, err)

	fc := RouteGeoJSON(grid, result, commands)
	require.Len(t, fc.Features, 2+8)

	line, ok := fc.Features[0].Geometry.(orb.LineString)
	require.True(t, ok)
	assert.Len(t, line, len(result.Path))
	assert.Equal(t, orb.Point{0, 0}, line[0])
	assert.Equal(t, orb.Point{5, 5}, line[len(line)-1])
	assert.Equal(t, commands, fc.Features[0].Properties["commands"])

	_, ok = fc.Features[1].Geometry.(orb.MultiPoint)
	assert.True(t, ok)

	path := filepath.Join(t.TempDir(), "route.geojson")
	require.NoError(t, SaveGeoJSON(fc, path, nopLogger()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	decoded, err := geojson.UnmarshalFeatureCollection(data)
	require.NoError(t, err)
	assert.Len(t, decoded.Features, len(fc.Features))
	assert.Equal(t, "default", decoded.Features[0].Properties.MustString("name"))
}

func TestRouteGeoJSONWithoutPath(t *testing.T) {
	grid := gridFromRows(t, "C#S")
	fc := RouteGeoJSON(grid, Result{}, nil)
	assert.Len(t, fc.Features, 3)
	for _, f := range fc.Features {
		_, ok := f.Geometry.(orb.Point)
		assert.True(t, ok)
	}
}
