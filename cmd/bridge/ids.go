package main

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

var idsCmd = &cobra.Command{
	Use:   "ids",
	Short: "Print the light number assigned to each entity",
	RunE:  runIDs,
}

func init() {
	rootCmd.AddCommand(idsCmd)
}

func runIDs(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd.Context())
	if err != nil {
		return err
	}

	numbers, closeNumbers, err := openNumberStore(cfg.IDs)
	if err != nil {
		return err
	}
	defer closeNumbers()

	all, err := numbers.All(cmd.Context())
	if err != nil {
		return err
	}

	keys := lo.Keys(all)
	sort.Slice(keys, func(i, j int) bool {
		a, errA := strconv.Atoi(keys[i])
		b, errB := strconv.Atoi(keys[j])
		if errA != nil || errB != nil {
			return keys[i] < keys[j]
		}
		return a < b
	})
	for _, k := range keys {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", k, all[k])
	}
	return nil
}
