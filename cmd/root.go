package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/theptrk/ortools-scheduling/app"
	"github.com/theptrk/ortools-scheduling/config"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "ortools-scheduling",
	Short: "Nurse rostering on a CP-SAT style engine",
	RunE:  run,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "configuration file (JSON or YAML); built-in demo roster when empty")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

func run(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if cfgPath != "" {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
	}
	svc, err := app.New(cfg, os.Stdout)
	if err != nil {
		return err
	}
	if _, err := svc.Run(); err != nil {
		return err
	}
	return nil
}
