package cmd

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/adesai/careerlens/internal/app"
	"github.com/adesai/careerlens/internal/bookmarks"
	"github.com/adesai/careerlens/internal/history"
	"github.com/adesai/careerlens/internal/identity"
	"github.com/adesai/careerlens/internal/quiz"
	"github.com/adesai/careerlens/internal/remote"
	"github.com/adesai/careerlens/internal/results"
	"github.com/adesai/careerlens/internal/screens/home"
	"github.com/adesai/careerlens/internal/session"
	"github.com/adesai/careerlens/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "careerlens",
	Short: "Career quiz and recommendation browser",
	Long:  "CareerLens — terminal client for the career recommendation service: take the quiz, browse results, track your history.",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		return app.Run(buildServices(st))
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Optional .env in the working directory; real env vars win.
	_ = godotenv.Load()

	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides CAREERLENS_DB env var)")

	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(careersCmd)
	rootCmd.AddCommand(bookmarksCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(sessionCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then CAREERLENS_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// buildServices wires every component over one open store. Remote calls go
// through the logging decorator so `careerlens stats` has data to show.
func buildServices(st *store.Store) home.Services {
	svc := remote.WithLogging(remote.NewClient(remote.ConfigFromEnv()), st.RequestLog())
	return home.Services{
		Session:   session.NewManager(st.Session()),
		Identity:  identity.NewRegistry(st.Durable()),
		Progress:  quiz.NewProgress(st.Session()),
		Bookmarks: bookmarks.NewRegistry(st.Durable()),
		Remote:    svc,
		Results:   results.NewOrchestrator(svc, st.Session()),
		Ledger: func(username string) *history.Ledger {
			return history.NewLedger(st.Durable(), username)
		},
	}
}
