package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var registerEmail string

var registerCmd = &cobra.Command{
	Use:   "register <username> <password>",
	Short: "Create an account and sign in",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		svcs := buildServices(st)

		if err := svcs.Identity.Register(cmd.Context(), args[0], registerEmail, args[1]); err != nil {
			return err
		}
		fmt.Printf("Registered and signed in as %s.\n", args[0])
		return nil
	},
}

var loginCmd = &cobra.Command{
	Use:   "login <username> <password>",
	Short: "Sign in",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		svcs := buildServices(st)

		_, ok, err := svcs.Identity.Authenticate(ctx, args[0], args[1])
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("username or password is incorrect")
		}
		if err := svcs.Identity.SetCurrentUser(ctx, args[0]); err != nil {
			return err
		}
		fmt.Printf("Signed in as %s.\n", args[0])
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		svcs := buildServices(st)

		if err := svcs.Identity.Logout(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("Signed out.")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in user",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		svcs := buildServices(st)

		username, ok, err := svcs.Identity.CurrentUser(cmd.Context())
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Not signed in.")
			return nil
		}
		fmt.Println(username)
		return nil
	},
}

func init() {
	registerCmd.Flags().StringVar(&registerEmail, "email", "", "Email address for the new account")
	_ = registerCmd.MarkFlagRequired("email")
}
