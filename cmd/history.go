package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/adesai/careerlens/internal/history"
	"github.com/adesai/careerlens/internal/screens/home"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage your quiz history",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List past attempts, newest first",
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
		if len(entries) == 0 {
			fmt.Println("No attempts recorded.")
			return nil
		}
		for i, e := range entries {
			fmt.Printf("%2d. %s  %-28s %d%%\n",
				i+1, e.Date.Format("2006-01-02 15:04"), e.PrimaryCareer, e.Compatibility)
		}
		return nil
	},
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <number>",
	Short: "Delete an attempt by its list number",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("attempt number must be a number: %q", args[0])
		}

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
		if err := ledger.DeleteAt(ctx, n-1); err != nil {
			return err
		}
		fmt.Printf("Deleted attempt %d.\n", n)
		return nil
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Erase your whole quiz history",
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
		if err := ledger.Clear(ctx); err != nil {
			return err
		}
		fmt.Println("History cleared.")
		return nil
	},
}

func currentLedger(ctx context.Context, svcs home.Services) (*history.Ledger, error) {
	username, ok, err := svcs.Identity.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("not signed in; run `careerlens login` first")
	}
	return svcs.Ledger(username), nil
}

func init() {
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyDeleteCmd)
	historyCmd.AddCommand(historyClearCmd)
}
