package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/solonmacro/solonmacro.github.io/internal/dashboard"
	"github.com/solonmacro/solonmacro.github.io/pkg/config"
)

// checkCmd validates configuration without touching the network.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate configuration and list indicators",
	Long: `Loads the environment and dashboard configuration, validates both,
and prints the indicator table. No network calls are made.

Example:
  solon check --config config.yaml`,
	RunE:         runCheck,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	dash, err := dashboard.Load(dashboardFile)
	if err != nil {
		return err
	}

	fmt.Printf("Project:     %s\n", dash.Project.Name)
	fmt.Printf("Output:      %s/%s\n", dash.Output.DataDir, dash.Output.LatestFile)
	if cfg.FRED.APIKey != "" {
		fmt.Printf("Credential:  configured\n")
	} else {
		fmt.Printf("Credential:  NOT configured (indicators will report unknown)\n")
	}
	fmt.Printf("Indicators:  %d\n\n", len(dash.Indicators))

	for _, ind := range dash.Indicators {
		state := "enabled"
		if !ind.IsEnabled() {
			state = "disabled"
		}
		fmt.Printf("  %-12s %-32s series=%-12s unit=%-10s %s\n",
			ind.Key, ind.Label, ind.SeriesID, ind.Unit, state)
	}

	return nil
}
