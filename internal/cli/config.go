package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kgribble/s3vmcp/internal/config"
	"github.com/kgribble/s3vmcp/internal/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage s3vmcp configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Get()

		fmt.Println(ui.RenderTitle("Configuration"))
		if path := config.ConfigFilePath(); path != "" {
			fmt.Println(ui.Dim.Render("  loaded from " + path))
		} else {
			fmt.Println(ui.Dim.Render("  no config file, using defaults"))
		}

		shown := *cfg
		if shown.AWS.SecretAccessKey != "" {
			shown.AWS.SecretAccessKey = "********"
		}
		fmt.Println(ui.RenderResult(shown))
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
}
