// Package admin assembles the MamaGhar admin client: localized record
// editors, the backend API client, and the operator's auth session.
package admin

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/mamaghar/go-admin/internal/apiclient"
	"github.com/mamaghar/go-admin/internal/auth"
	"github.com/mamaghar/go-admin/internal/commands"
	recordcmd "github.com/mamaghar/go-admin/internal/commands/records"
	"github.com/mamaghar/go-admin/internal/editor"
	"github.com/mamaghar/go-admin/internal/langset"
	"github.com/mamaghar/go-admin/internal/logging"
	"github.com/mamaghar/go-admin/internal/logging/gologger"
	"github.com/mamaghar/go-admin/internal/session"
	"github.com/mamaghar/go-admin/pkg/interfaces"
)

// Kind aliases the API client's record kind for callers that only import
// the root package.
type Kind = apiclient.Kind

const (
	KindState       = apiclient.KindState
	KindDistrict    = apiclient.KindDistrict
	KindCity        = apiclient.KindCity
	KindCategory    = apiclient.KindCategory
	KindSubCategory = apiclient.KindSubCategory
)

// ErrUnknownKind reports a record kind with no registered editor.
var ErrUnknownKind = errors.New("admin: unknown record kind")

// Module is the composed admin runtime.
type Module struct {
	cfg      Config
	locales  langset.Set
	provider interfaces.LoggerProvider
	logger   interfaces.Logger
	tokens   *auth.TokenStore
	client   *apiclient.Client
	auth     *auth.Service
}

// New validates cfg and wires the module.
func New(cfg Config) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	locales, err := cfg.localeSet()
	if err != nil {
		return nil, err
	}

	provider, err := loggerProvider(cfg.Logging)
	if err != nil {
		return nil, err
	}

	tokens := auth.NewTokenStore(cfg.Token)

	clientOpts := []apiclient.Option{
		apiclient.WithLogger(logging.APILogger(provider)),
	}
	if cfg.HTTPTimeout > 0 {
		clientOpts = append(clientOpts, apiclient.WithHTTPClient(&http.Client{Timeout: cfg.HTTPTimeout}))
	}
	if cfg.Routes != nil {
		clientOpts = append(clientOpts, apiclient.WithRouteConfig(cfg.Routes))
	}
	client := apiclient.New(cfg.BaseURL, tokens, clientOpts...)

	logger := logging.ModuleLogger(provider, "admin")
	logger.Debug("admin.module.configured", "base_url", cfg.BaseURL, "locales", locales.Len())

	return &Module{
		cfg:      cfg,
		locales:  locales,
		provider: provider,
		logger:   logger,
		tokens:   tokens,
		client:   client,
		auth:     auth.New(client, tokens, auth.WithLogger(logging.AuthLogger(provider))),
	}, nil
}

// API exposes the backend client for list views and lookups.
func (m *Module) API() *apiclient.Client { return m.client }

// Auth exposes the login/logout service.
func (m *Module) Auth() *auth.Service { return m.auth }

// Tokens exposes the session token store.
func (m *Module) Tokens() *auth.TokenStore { return m.tokens }

// Locales returns the configured editing locales.
func (m *Module) Locales() langset.Set { return m.locales }

// Editor opens a create-mode editing session for the given record kind.
func (m *Module) Editor(kind Kind, opts ...session.Option) (*session.Session, error) {
	spec, err := specFor(kind)
	if err != nil {
		return nil, err
	}
	opts = append([]session.Option{session.WithLogger(logging.SessionLogger(m.provider))}, opts...)
	return session.New(m.client, kind, spec, m.locales, opts...)
}

// EditorForRecord opens an edit-mode session seeded from the stored record.
func (m *Module) EditorForRecord(ctx context.Context, kind Kind, id string, opts ...session.Option) (*session.Session, error) {
	spec, err := specFor(kind)
	if err != nil {
		return nil, err
	}
	opts = append([]session.Option{session.WithLogger(logging.SessionLogger(m.provider))}, opts...)
	return session.NewForEdit(ctx, m.client, kind, id, spec, m.locales, opts...)
}

// Commands bundles the record command handlers, ready to execute.
type Commands struct {
	CreateState       *recordcmd.CreateStateHandler
	UpdateState       *recordcmd.UpdateStateHandler
	CreateDistrict    *recordcmd.CreateDistrictHandler
	UpdateDistrict    *recordcmd.UpdateDistrictHandler
	CreateCity        *recordcmd.CreateCityHandler
	UpdateCity        *recordcmd.UpdateCityHandler
	CreateCategory    *recordcmd.CreateCategoryHandler
	UpdateCategory    *recordcmd.UpdateCategoryHandler
	CreateSubCategory *recordcmd.CreateSubCategoryHandler
	UpdateSubCategory *recordcmd.UpdateSubCategoryHandler
	DeleteRecord      *recordcmd.DeleteRecordHandler
}

// Commands constructs the command handlers against this module's API client.
func (m *Module) Commands() Commands {
	logger := commands.CommandLogger(m.provider, "records")
	return Commands{
		CreateState:       recordcmd.NewCreateStateHandler(m.client, m.locales, logger),
		UpdateState:       recordcmd.NewUpdateStateHandler(m.client, m.locales, logger),
		CreateDistrict:    recordcmd.NewCreateDistrictHandler(m.client, m.locales, logger),
		UpdateDistrict:    recordcmd.NewUpdateDistrictHandler(m.client, m.locales, logger),
		CreateCity:        recordcmd.NewCreateCityHandler(m.client, m.locales, logger),
		UpdateCity:        recordcmd.NewUpdateCityHandler(m.client, m.locales, logger),
		CreateCategory:    recordcmd.NewCreateCategoryHandler(m.client, m.locales, logger),
		UpdateCategory:    recordcmd.NewUpdateCategoryHandler(m.client, m.locales, logger),
		CreateSubCategory: recordcmd.NewCreateSubCategoryHandler(m.client, m.locales, logger),
		UpdateSubCategory: recordcmd.NewUpdateSubCategoryHandler(m.client, m.locales, logger),
		DeleteRecord:      recordcmd.NewDeleteRecordHandler(m.client, logger),
	}
}

func specFor(kind Kind) (*editor.Spec, error) {
	switch kind {
	case KindState:
		return editor.StateSpec(), nil
	case KindDistrict:
		return editor.DistrictSpec(), nil
	case KindCity:
		return editor.CitySpec(), nil
	case KindCategory:
		return editor.CategorySpec(), nil
	case KindSubCategory:
		return editor.SubCategorySpec(), nil
	}
	return nil, ErrUnknownKind
}

func loggerProvider(cfg LoggingConfig) (interfaces.LoggerProvider, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "noop":
		return noopProvider{}, nil
	default:
		return gologger.NewProvider(gologger.Config{
			Level:     cfg.Level,
			Format:    cfg.Format,
			AddSource: cfg.AddSource,
			Focus:     cfg.Focus,
		})
	}
}

type noopProvider struct{}

func (noopProvider) GetLogger(string) interfaces.Logger { return logging.NoOp() }
