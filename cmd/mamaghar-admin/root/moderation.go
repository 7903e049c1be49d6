package root

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mamaghar/go-admin/internal/apiclient"
)

func newUsersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Moderate marketplace accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newUsersListCmd())
	cmd.AddCommand(newUsersUpdateCmd())
	cmd.AddCommand(newUsersDeleteCmd())
	cmd.AddCommand(newUsersReportsCmd())

	return cmd
}

func newUsersListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List marketplace accounts",
		Args:  cobra.NoArgs,
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

			result, err := module.API().ListUsers(cmd.Context(), apiclient.ListOptions{
				Page:      page,
				Limit:     limit,
				Search:    search,
				SortBy:    sortBy,
				SortOrder: sortOrder,
			})
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tMOBILE\tDISTRICT\tROLE")
			for _, user := range result.Users {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					user.Key(), user.Name, user.Mobile, user.District, user.Role)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "page %d of %d (%d users)\n",
				result.Pagination.Page, result.Pagination.TotalPages, result.Pagination.Total)
			return nil
		},
	}

	cmd.Flags().Int("page", 1, "page number")
	cmd.Flags().Int("limit", 20, "users per page")
	cmd.Flags().String("search", "", "search term")
	cmd.Flags().String("sort-by", "", "sort field")
	cmd.Flags().String("sort-order", "", "asc or desc")

	return cmd
}

func newUsersUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an account's profile fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			module, err := newModule(cmd)
			if err != nil {
				return err
			}

			name, _ := cmd.Flags().GetString("name")
			state, _ := cmd.Flags().GetString("state")
			district, _ := cmd.Flags().GetString("district")
			city, _ := cmd.Flags().GetString("city")
			address, _ := cmd.Flags().GetString("address")

			message, err := module.API().UpdateUser(cmd.Context(), args[0], apiclient.UserUpdate{
				Name:     name,
				State:    state,
				District: district,
				City:     city,
				Address:  address,
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), message)
			return nil
		},
	}

	cmd.Flags().String("name", "", "display name")
	cmd.Flags().String("state", "", "state name")
	cmd.Flags().String("district", "", "district name")
	cmd.Flags().String("city", "", "city name")
	cmd.Flags().String("address", "", "street address")

	return cmd
}

func newUsersDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an account (the backend refuses admin accounts)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			module, err := newModule(cmd)
			if err != nil {
				return err
			}

			message, err := module.API().DeleteUser(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), message)
			return nil
		},
	}
}

func newUsersReportsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reports <id>",
		Short: "Show abuse reports filed against an account's posts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			module, err := newModule(cmd)
			if err != nil {
				return err
			}

			reports, err := module.API().ReportsByUser(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "REPORTER\tREASONS\tFILED")
			for _, report := range reports {
				fmt.Fprintf(w, "%s\t%s\t%s\n",
					report.Reporter.Name, strings.Join(report.Reason, ", "), report.CreatedAt)
			}
			return w.Flush()
		},
	}
}

func newPostsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "posts",
		Short: "Moderate marketplace listings",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newPostsListCmd())
	cmd.AddCommand(newPostsDeleteCmd())
	cmd.AddCommand(newPostsByUserCmd())
	cmd.AddCommand(newQuestionsByUserCmd())

	return cmd
}

func newPostsListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List marketplace posts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			module, err := newModule(cmd)
			if err != nil {
				return err
			}

			page, _ := cmd.Flags().GetInt("page")
			limit, _ := cmd.Flags().GetInt("limit")
			search, _ := cmd.Flags().GetString("search")

			result, err := module.API().ListPosts(cmd.Context(), apiclient.ListOptions{
				Page:   page,
				Limit:  limit,
				Search: search,
			})
			if err != nil {
				return err
			}

			if err := printPosts(cmd, result.Posts); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "page %d of %d (%d posts)\n",
				result.Pagination.Page, result.Pagination.TotalPages, result.Pagination.Total)
			return nil
		},
	}

	cmd.Flags().Int("page", 1, "page number")
	cmd.Flags().Int("limit", 20, "posts per page")
	cmd.Flags().String("search", "", "search term")

	return cmd
}

func newPostsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			module, err := newModule(cmd)
			if err != nil {
				return err
			}

			message, err := module.API().DeletePost(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), message)
			return nil
		},
	}
}

func newPostsByUserCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "by-user <user-id>",
		Short: "List the posts one account has published",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			module, err := newModule(cmd)
			if err != nil {
				return err
			}

			posts, err := module.API().PostsByUser(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printPosts(cmd, posts)
		},
	}
}

func newQuestionsByUserCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "questions-by-user <user-id>",
		Short: "List the questions one account has asked",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			module, err := newModule(cmd)
			if err != nil {
				return err
			}

			questions, err := module.API().QuestionsByUser(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tQUESTION\tLIKES\tASKED")
			for _, question := range questions {
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\n",
					question.ID, question.Question, len(question.LikedBy), question.CreatedAt)
			}
			return w.Flush()
		},
	}
}

func printPosts(cmd *cobra.Command, posts []apiclient.Post) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tPRICE\tPHOTOS\tCREATED")
	for _, post := range posts {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
			post.Key(), post.Title, post.Price, len(post.PhotoURLs), post.CreatedAt)
	}
	return w.Flush()
}
