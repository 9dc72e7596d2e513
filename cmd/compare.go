package cmd

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/adesai/careerlens/internal/compare"
)

var compareCmd = &cobra.Command{
	Use:   "compare <number> <number> [number]",
	Short: "Compare two or three past attempts",
	Args:  cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		svcs := buildServices(st)

		ledger, err := currentLedger(ctx, svcs)
		if err != nil {
			return err
		}
		entries, err := ledger.List(ctx)
		if err != nil {
			return err
		}

		indices := make([]int, 0, len(args))
		for _, arg := range args {
			n, err := strconv.Atoi(arg)
			if err != nil {
				return fmt.Errorf("attempt number must be a number: %q", arg)
			}
			if n < 1 || n > len(entries) {
				return fmt.Errorf("attempt %d out of range (history holds %d)", n, len(entries))
			}
			indices = append(indices, n-1)
		}
		sort.Ints(indices)

		selections := make([]compare.Selection, 0, len(indices))
		for _, idx := range indices {
			selections = append(selections, compare.Selection{
				LedgerIndex: idx,
				Entry:       entries[idx],
			})
		}

		result, err := compare.Compare(selections)
		if err != nil {
			return err
		}

		fmt.Printf("%-20s", "Ability")
		for _, col := range result.Columns {
			fmt.Printf("%-20s", col)
		}
		fmt.Println()
		for _, row := range result.Rows {
			fmt.Printf("%-20s", row.Ability)
			for _, score := range row.Scores {
				fmt.Printf("%-20.1f", score)
			}
			fmt.Println()
		}

		fmt.Println()
		if result.HasDelta {
			fmt.Printf("Compatibility trend: %+d%%\n", result.Delta)
		}
		if result.Consistent {
			fmt.Println("Primary career is consistent across these attempts.")
		} else {
			fmt.Println("Primary career differs between these attempts.")
		}
		return nil
	},
}
