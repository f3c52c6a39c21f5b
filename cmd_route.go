package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var routeCmd = &cobra.Command{
	Use:   "route",
	Short: "Print the direction commands from start to goal",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := setup(cmd)
		if err != nil {
			return err
		}
		format, _ := cmd.Flags().GetString("format")
		out, _ := cmd.Flags().GetString("out")

		logger := a.logger.With("run_id", uuid.NewString(), "query", "path")
		planner := NewPlanner(a.grid, a.cfg, nil, a.logger)

		report, err := planner.Route(cmd.Context(), logger)
		if err != nil && !errors.Is(err, ErrNoStartOrGoal) {
			return err
		}

		w := cmd.OutOrStdout()
		switch format {
		case "text":
			return writeRouteText(w, report)
		case "json":
			return writeRouteJSON(w, report)
		case "geojson":
			fc := RouteGeoJSON(a.grid, report.Result, report.Commands)
			if out != "" {
				return SaveGeoJSON(fc, out, logger)
			}
			data, err := fc.MarshalJSON()
			if err != nil {
				return fmt.Errorf("failed to marshal route: %w", err)
			}
			_, err = fmt.Fprintln(w, string(data))
			return err
		}
		return fmt.Errorf("unknown format %q", format)
	},
}

func writeRouteText(w io.Writer, report RouteReport) error {
	result := report.Result
	if !result.Found {
		_, err := fmt.Fprintln(w, "no path")
		return err
	}

	runs := CompressCommands(report.Commands)
	parts := make([]string, 0, len(runs))
	for _, run := range runs {
		if run.Count > 1 {
			parts = append(parts, fmt.Sprintf("%s x%d", run.Command, run.Count))
		} else {
			parts = append(parts, run.Command)
		}
	}

	_, err := fmt.Fprintf(w, "%s\ncost %.3f, %d steps, %d expanded\n",
		strings.Join(parts, ", "), result.Cost, len(report.Commands), result.Expanded)
	return err
}

func writeRouteJSON(w io.Writer, report RouteReport) error {
	commands := report.Commands
	if commands == nil {
		commands = []string{}
	}
	path := report.Result.Path
	if path == nil {
		path = []Position{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(map[string]interface{}{
		"found":     report.Result.Found,
		"cost":      report.Result.Cost,
		"expanded":  report.Result.Expanded,
		"commands":  commands,
		"runs":      CompressCommands(commands),
		"path":      path,
		"waypoints": Waypoints(path),
		"resources": report.Result.Resources,
	})
}

var traceCmd = &cobra.Command{
	Use:   "trace",
	Short: "Print every search decision as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := setup(cmd)
		if err != nil {
			return err
		}

		logger := a.logger.With("run_id", uuid.NewString(), "query", "trace")
		planner := NewPlanner(a.grid, a.cfg, nil, a.logger)

		data, err := planner.TraceJSON(cmd.Context(), logger)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	},
}

func init() {
	rootCmd.AddCommand(routeCmd)
	rootCmd.AddCommand(traceCmd)
	routeCmd.Flags().StringP("format", "f", "text", "Output format: text, json or geojson")
	routeCmd.Flags().StringP("out", "o", "", "Write geojson output to this file")
}
