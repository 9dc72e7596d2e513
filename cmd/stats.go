package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsRecent int

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show recommendation service call statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		stats, err := st.RequestLog().StatsByEndpoint(ctx)
		if err != nil {
			return err
		}
		if len(stats) == 0 {
			fmt.Println("No API calls recorded yet.")
			return nil
		}

		fmt.Printf("%-28s %8s %8s %12s\n", "Endpoint", "Calls", "Failed", "Avg latency")
		for _, s := range stats {
			fmt.Printf("%-28s %8d %8d %10.0fms\n", s.Endpoint, s.Calls, s.Failures, s.AvgLatencyMs)
		}

		if statsRecent > 0 {
			recs, err := st.RequestLog().Recent(ctx, statsRecent)
			if err != nil {
				return err
			}
			fmt.Println()
			for _, r := range recs {
				outcome := "ok"
				if !r.Success {
					outcome = "FAIL " + r.ErrorMessage
				}
				fmt.Printf("%s  %-6s %-28s %4dms  %s\n",
					r.Timestamp.Format("15:04:05"), r.Method, r.Endpoint, r.LatencyMs, outcome)
			}
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().IntVar(&statsRecent, "recent", 0, "Also show the N most recent calls")
}
