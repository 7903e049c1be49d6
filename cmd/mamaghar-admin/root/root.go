// Package root wires the mamaghar-admin CLI: login, add/list/delete for the
// localized reference records the marketplace depends on, and moderation of
// user accounts and their posts.
package root

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	admin "github.com/mamaghar/go-admin"
)

const (
	envAPIURL    = "MAMAGHAR_API_URL"
	envToken     = "MAMAGHAR_TOKEN"
	envLogLevel  = "MAMAGHAR_LOG_LEVEL"
	envLogFormat = "MAMAGHAR_LOG_FORMAT"
)

// NewRootCmd creates the root command for mamaghar-admin.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mamaghar-admin",
		Short: "Manage MamaGhar reference records (states, districts, cities, categories) in en/gu/hi",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String("api-url", "", "backend base URL (defaults to $"+envAPIURL+")")

	cmd.AddCommand(newLoginCmd())
	cmd.AddCommand(newStateCmd())
	cmd.AddCommand(newDistrictCmd())
	cmd.AddCommand(newCityCmd())
	cmd.AddCommand(newCategoryCmd())
	cmd.AddCommand(newSubCategoryCmd())
	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newDeleteCmd())
	cmd.AddCommand(newUsersCmd())
	cmd.AddCommand(newPostsCmd())

	return cmd
}

// Execute runs the root command with provided args.
func Execute(args []string) error {
	// A local .env is optional; real deployments export the variables.
	_ = godotenv.Load()

	cmd := NewRootCmd()
	cmd.SetArgs(args)
	return cmd.Execute()
}

func newModule(cmd *cobra.Command) (*admin.Module, error) {
	baseURL, _ := cmd.Flags().GetString("api-url")
	if baseURL == "" {
		baseURL = os.Getenv(envAPIURL)
	}

	cfg := admin.DefaultConfig()
	cfg.BaseURL = baseURL
	cfg.Token = os.Getenv(envToken)
	cfg.HTTPTimeout = 30 * time.Second
	if level := os.Getenv(envLogLevel); level != "" {
		cfg.Logging.Level = level
	}
	if format := os.Getenv(envLogFormat); format != "" {
		cfg.Logging.Format = format
	}

	module, err := admin.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("configure admin module: %w", err)
	}
	return module, nil
}

// localeNames gathers the per-locale variants of one flag family, e.g.
// --name-en/--name-gu/--name-hi.
func localeNames(cmd *cobra.Command, module *admin.Module, prefix string) map[string]string {
	out := map[string]string{}
	for _, locale := range module.Locales().Codes() {
		if value, _ := cmd.Flags().GetString(prefix + "-" + locale); value != "" {
			out[locale] = value
		}
	}
	return out
}

func addLocaleFlags(cmd *cobra.Command, prefix, what string) {
	for _, locale := range []string{"en", "gu", "hi"} {
		cmd.Flags().String(prefix+"-"+locale, "", what+" in "+locale)
	}
}
