package root

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	admin "github.com/mamaghar/go-admin"
	"github.com/mamaghar/go-admin/internal/apiclient"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <kind>",
		Short: "List records of one kind (state, district, city, category, subcategory)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			module, err := newModule(cmd)
			if err != nil {
				return err
			}

			page, _ := cmd.Flags().GetInt("page")
			limit, _ := cmd.Flags().GetInt("limit")
			search, _ := cmd.Flags().GetString("search")
			sortBy, _ := cmd.Flags().GetString("sort-by")
			sortOrder, _ := cmd.Flags().GetString("sort-order")
			locale, _ := cmd.Flags().GetString("locale")

			result, err := module.API().List(cmd.Context(), admin.Kind(args[0]), apiclient.ListOptions{
				Page:      page,
				Limit:     limit,
				Search:    search,
				SortBy:    sortBy,
				SortOrder: sortOrder,
				Locale:    locale,
			})
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tCODE\tSLUG")
			for _, record := range result.Records {
				values := record.ForLocale(locale)
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", record.Key(), values["name"], values["code"], values["slug"])
			}
			if err := w.Flush(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "page %d of %d (%d records)\n",
				result.Pagination.Page, result.Pagination.TotalPages, result.Pagination.Total)
			return nil
		},
	}

	cmd.Flags().Int("page", 1, "page number")
	cmd.Flags().Int("limit", 20, "records per page")
	cmd.Flags().String("search", "", "search term")
	cmd.Flags().String("sort-by", "", "sort field")
	cmd.Flags().String("sort-order", "", "asc or desc")
	cmd.Flags().String("locale", "en", "locale to display")

	return cmd
}
