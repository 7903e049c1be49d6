package auth_test

import (
	"context"
	"errors"
	"testing"

	goerrors "github.com/goliatone/go-errors"

	"github.com/mamaghar/go-admin/internal/apiclient"
	"github.com/mamaghar/go-admin/internal/auth"
)

type fakeLoginAPI struct {
	calls int
	creds *apiclient.Credentials
	err   error
}

func (f *fakeLoginAPI) Login(ctx context.Context, email, password string) (*apiclient.Credentials, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.creds, nil
}

func TestLoginStoresToken(t *testing.T) {
	api := &fakeLoginAPI{creds: &apiclient.Credentials{Token: "jwt-abc"}}
	store := auth.NewTokenStore("")
	svc := auth.New(api, store)

	creds, err := svc.Login(context.Background(), "admin@mamaghar.in", "secret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if creds.Token != "jwt-abc" {
		t.Fatalf("token = %q", creds.Token)
	}

	token, ok := store.Token()
	if !ok || token != "jwt-abc" {
		t.Fatalf("store token = %q, %v", token, ok)
	}
	if !svc.Authenticated() {
		t.Fatal("expected authenticated after login")
	}
}

func TestLoginBlankCredentialsFailLocally(t *testing.T) {
	api := &fakeLoginAPI{creds: &apiclient.Credentials{Token: "jwt-abc"}}
	svc := auth.New(api, auth.NewTokenStore(""))

	_, err := svc.Login(context.Background(), "  ", "")
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
	if api.calls != 0 {
		t.Fatalf("blank credentials reached the API %d times", api.calls)
	}
}

func TestLoginFailureLeavesStoreEmpty(t *testing.T) {
	api := &fakeLoginAPI{err: errors.New("invalid credentials")}
	store := auth.NewTokenStore("")
	svc := auth.New(api, store)

	if _, err := svc.Login(context.Background(), "admin@mamaghar.in", "wrong"); err == nil {
		t.Fatal("expected login error")
	}
	if _, ok := store.Token(); ok {
		t.Fatal("failed login must not store a token")
	}
}

func TestLogoutClearsToken(t *testing.T) {
	store := auth.NewTokenStore("jwt-abc")
	svc := auth.New(&fakeLoginAPI{}, store)

	if !svc.Authenticated() {
		t.Fatal("seeded store should authenticate")
	}
	svc.Logout()
	if _, ok := store.Token(); ok {
		t.Fatal("logout must clear the token")
	}
	if svc.Authenticated() {
		t.Fatal("expected unauthenticated after logout")
	}
}

func TestTokenStoreSeedFromEnvironment(t *testing.T) {
	store := auth.NewTokenStore("env-token")
	token, ok := store.Token()
	if !ok || token != "env-token" {
		t.Fatalf("seeded token = %q, %v", token, ok)
	}

	store.Set("rotated")
	if token, _ := store.Token(); token != "rotated" {
		t.Fatalf("rotated token = %q", token)
	}
}
