package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var bookmarksCmd = &cobra.Command{
	Use:   "bookmarks",
	Short: "Manage bookmarked careers",
}

var bookmarksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List bookmarked careers",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		svcs := buildServices(st)

		careers, err := svcs.Bookmarks.List(cmd.Context())
		if err != nil {
			return err
		}
		if len(careers) == 0 {
			fmt.Println("No bookmarks.")
			return nil
		}
		for _, career := range careers {
			fmt.Println("★", career)
		}
		return nil
	},
}

var bookmarksToggleCmd = &cobra.Command{
	Use:   "toggle <career>",
	Short: "Bookmark a career, or remove an existing bookmark",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		career := strings.Join(args, " ")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		svcs := buildServices(st)

		careers, err := svcs.Bookmarks.Toggle(cmd.Context(), career)
		if err != nil {
			return err
		}
		fmt.Printf("%d bookmarked career(s).\n", len(careers))
		return nil
	},
}

var bookmarksClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all bookmarks",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		svcs := buildServices(st)

		if err := svcs.Bookmarks.Clear(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("Bookmarks cleared.")
		return nil
	},
}

func init() {
	bookmarksCmd.AddCommand(bookmarksListCmd)
	bookmarksCmd.AddCommand(bookmarksToggleCmd)
	bookmarksCmd.AddCommand(bookmarksClearCmd)
}
