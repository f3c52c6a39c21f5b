package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// RouteGeoJSON renders a search result and the map's non-empty cells as a
// FeatureCollection in grid coordinates (x = col, y = row)
func RouteGeoJSON(grid *Grid, result Result, commands []string) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	if len(result.Path) > 0 {
		line := make(orb.LineString, 0, len(result.Path))
		for _, p := range result.Path {
			line = append(line, toPoint(p))
		}
		route := geojson.NewFeature(line)
		route.Properties["name"] = grid.Name()
		route.Properties["cost"] = result.Cost
		route.Properties["expanded"] = result.Expanded
		route.Properties["commands"] = commands
		route.Properties["resources"] = result.Resources
		fc.Append(route)

		waypoints := make(orb.MultiPoint, 0, len(result.Path))
		for _, p := range Waypoints(result.Path) {
			waypoints = append(waypoints, toPoint(p))
		}
		turns := geojson.NewFeature(waypoints)
		turns.Properties["name"] = "waypoints"
		fc.Append(turns)
	}

	grid.Each(func(p Position, kind CellKind) {
		if kind == Empty {
			return
		}
		cell := geojson.NewFeature(toPoint(p))
		cell.Properties["kind"] = kind.String()
		cell.Properties["row"] = p.Row
		cell.Properties["col"] = p.Col
		fc.Append(cell)
	})

	return fc
}

// SaveGeoJSON serializes and saves a FeatureCollection to a file
func SaveGeoJSON(fc *geojson.FeatureCollection, filename string, logger *slog.Logger) error {
	data, err := fc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal route: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	logger.Info("route saved", "file", filename, "bytes", len(data), "features", len(fc.Features))
	return nil
}
