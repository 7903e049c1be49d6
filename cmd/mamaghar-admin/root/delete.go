package root

import (
	"fmt"

	"github.com/spf13/cobra"

	admin "github.com/mamaghar/go-admin"
	recordcmd "github.com/mamaghar/go-admin/internal/commands/records"
)

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <kind> <id>",
		Short: "Delete a record by id",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			module, err := newModule(cmd)
			if err != nil {
				return err
			}

			msg := recordcmd.DeleteRecordCommand{
				Kind: admin.Kind(args[0]),
				ID:   args[1],
			}
			if err := module.Commands().DeleteRecord.Execute(cmd.Context(), msg); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "deleted")
			return nil
		},
	}
}
