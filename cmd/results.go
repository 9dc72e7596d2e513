package cmd

import (
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/adesai/careerlens/internal/results"
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Show the latest quiz results",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		svcs := buildServices(st)

		token, err := svcs.Session.GetOrCreate(ctx)
		if err != nil {
			return err
		}

		snap, err := svcs.Results.Load(ctx, token)
		if errors.Is(err, results.ErrNotFound) {
			fmt.Println("No results yet. Run `careerlens quiz submit` first.")
			return nil
		}
		if err != nil {
			return err
		}

		printSnapshot(snap)
		return nil
	},
}

func printSnapshot(snap *results.Snapshot) {
	fmt.Printf("Best match: %s (%.0f%% compatibility)\n\n", snap.PrimaryCareer, snap.PrimaryCompatibility)
	for i, rec := range snap.Recommendations {
		fmt.Printf("%d. %-28s %.0f%%\n", i+1, rec.Career, rec.CompatibilityScore)
		if rec.Explanation != "" {
			fmt.Printf("   %s\n", rec.Explanation)
		}
	}

	if len(snap.Abilities) > 0 {
		fmt.Println("\nAbility profile:")
		names := make([]string, 0, len(snap.Abilities))
		for name := range snap.Abilities {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Printf("  %-20s %.1f\n", name, snap.Abilities[name])
		}
	}
}
