package admin_test

import (
	"errors"
	"testing"

	admin "github.com/mamaghar/go-admin"
	"github.com/mamaghar/go-admin/internal/langset"
)

func validConfig() admin.Config {
	cfg := admin.DefaultConfig()
	cfg.BaseURL = "https://api.mamaghar.test"
	cfg.Logging.Provider = "noop"
	return cfg
}

func TestConfigValidateRequiresBaseURL(t *testing.T) {
	cfg := admin.DefaultConfig()
	if err := cfg.Validate(); !errors.Is(err, admin.ErrBaseURLRequired) {
		t.Fatalf("expected ErrBaseURLRequired, got %v", err)
	}
}

func TestConfigValidateRejectsUnknownLoggingProvider(t *testing.T) {
	cfg := validConfig()
	cfg.Logging.Provider = "zap"
	if err := cfg.Validate(); !errors.Is(err, admin.ErrLoggingProviderUnknown) {
		t.Fatalf("expected ErrLoggingProviderUnknown, got %v", err)
	}
}

func TestConfigValidateRejectsDuplicateLocales(t *testing.T) {
	cfg := validConfig()
	cfg.Locales = []string{"en", "en"}
	if err := cfg.Validate(); !errors.Is(err, langset.ErrDuplicateLocale) {
		t.Fatalf("expected ErrDuplicateLocale, got %v", err)
	}
}

func TestNewWiresEditorsForEveryKind(t *testing.T) {
	module, err := admin.New(validConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	kinds := []admin.Kind{
		admin.KindState,
		admin.KindDistrict,
		admin.KindCity,
		admin.KindCategory,
		admin.KindSubCategory,
	}
	for _, kind := range kinds {
		sess, err := module.Editor(kind)
		if err != nil {
			t.Fatalf("Editor(%s): %v", kind, err)
		}
		if sess.Closed() {
			t.Fatalf("Editor(%s) opened closed", kind)
		}
	}

	if _, err := module.Editor(admin.Kind("post")); !errors.Is(err, admin.ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
}

func TestNewDefaultsLocales(t *testing.T) {
	cfg := validConfig()
	cfg.Locales = nil
	module, err := admin.New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := module.Locales().Canonical(); got != "en" {
		t.Fatalf("canonical locale = %q, want en", got)
	}
	if got := module.Locales().Len(); got != 3 {
		t.Fatalf("locale count = %d, want 3", got)
	}
}

func TestCommandsAreWired(t *testing.T) {
	module, err := admin.New(validConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	cmds := module.Commands()
	if cmds.CreateState == nil || cmds.CreateDistrict == nil || cmds.CreateCity == nil ||
		cmds.CreateCategory == nil || cmds.CreateSubCategory == nil || cmds.DeleteRecord == nil {
		t.Fatal("expected all create handlers to be constructed")
	}
	if cmds.UpdateState == nil || cmds.UpdateDistrict == nil || cmds.UpdateCity == nil ||
		cmds.UpdateCategory == nil || cmds.UpdateSubCategory == nil {
		t.Fatal("expected all update handlers to be constructed")
	}
}
