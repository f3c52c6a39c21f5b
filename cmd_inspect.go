package main

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Report cell counts and reachability warnings for the map",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := setup(cmd)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(InspectMap(a.grid))
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
