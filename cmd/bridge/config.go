package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"emulated-hue/internal/adapters/output/persistence"
)

var flagForce bool

var configCmd = &cobra.Command{
	Use:   "init-config",
	Short: "Write a config file filled with the defaults",
	RunE:  runInitConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagForce, "force", false, "Overwrite an existing file")
	rootCmd.AddCommand(configCmd)
}

func runInitConfig(cmd *cobra.Command, args []string) error {
	path := configPath()
	if _, err := os.Stat(path); err == nil && !flagForce {
		return fmt.Errorf("%s already exists, use --force to overwrite", path)
	}

	repo := persistence.NewYAMLConfigRepository(path)
	cfg, err := repo.Get(cmd.Context())
	if err != nil {
		return err
	}
	// With --force the existing values are kept and the rest defaulted.
	if err := repo.Save(cmd.Context(), cfg); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}
