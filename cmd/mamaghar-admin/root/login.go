package root

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLoginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate and print the session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			module, err := newModule(cmd)
			if err != nil {
				return err
			}

			email, _ := cmd.Flags().GetString("email")
			password, _ := cmd.Flags().GetString("password")

			creds, err := module.Auth().Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "export %s=%s\n", envToken, creds.Token)
			return nil
		},
	}

	cmd.Flags().String("email", "", "admin account email")
	cmd.Flags().String("password", "", "admin account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
