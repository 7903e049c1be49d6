package session_test

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/mamaghar/go-admin/internal/apiclient"
	"github.com/mamaghar/go-admin/internal/editor"
	"github.com/mamaghar/go-admin/internal/langset"
	"github.com/mamaghar/go-admin/internal/payload"
	"github.com/mamaghar/go-admin/internal/session"
)

type fakeAPI struct {
	fetchFn  func(ctx context.Context, kind apiclient.Kind, id, locale string) (*apiclient.Record, error)
	createFn func(ctx context.Context, kind apiclient.Kind, sub *payload.Submission) (string, error)
	updateFn func(ctx context.Context, kind apiclient.Kind, id string, sub *payload.Submission) (string, error)

	creates atomic.Int32
}

func (f *fakeAPI) FetchByID(ctx context.Context, kind apiclient.Kind, id, locale string) (*apiclient.Record, error) {
	if f.fetchFn == nil {
		return &apiclient.Record{ID: id}, nil
	}
	return f.fetchFn(ctx, kind, id, locale)
}

func (f *fakeAPI) Create(ctx context.Context, kind apiclient.Kind, sub *payload.Submission) (string, error) {
	f.creates.Add(1)
	if f.createFn == nil {
		return "created", nil
	}
	return f.createFn(ctx, kind, sub)
}

func (f *fakeAPI) Update(ctx context.Context, kind apiclient.Kind, id string, sub *payload.Submission) (string, error) {
	if f.updateFn == nil {
		return "updated", nil
	}
	return f.updateFn(ctx, kind, id, sub)
}

func fillStateDraft(t *testing.T, s *session.Session) {
	t.Helper()
	if err := s.SetField("name", "Gujarat"); err != nil {
		t.Fatalf("set name: %v", err)
	}
	if err := s.SetField("code", "GJ01"); err != nil {
		t.Fatalf("set code: %v", err)
	}
}

func TestSwitchLocaleStaleResponseDiscarded(t *testing.T) {
	guStarted := make(chan struct{})
	guRelease := make(chan struct{})

	api := &fakeAPI{
		fetchFn: func(ctx context.Context, kind apiclient.Kind, id, locale string) (*apiclient.Record, error) {
			switch locale {
			case "en":
				return &apiclient.Record{ID: id, Languages: map[string]map[string]string{
					"en": {"name": "Gujarat", "code": "GJ01"},
				}}, nil
			case "gu":
				close(guStarted)
				<-guRelease
				return &apiclient.Record{ID: id, Languages: map[string]map[string]string{
					"gu": {"name": "ગુજરાત", "code": "GJ01"},
				}}, nil
			case "hi":
				return &apiclient.Record{ID: id, Languages: map[string]map[string]string{
					"hi": {"name": "गुजरात", "code": "GJ01"},
				}}, nil
			}
			return nil, fmt.Errorf("unexpected locale %q", locale)
		},
	}

	s, err := session.NewForEdit(context.Background(), api, apiclient.KindState, "st-1", editor.StateSpec(), langset.Default())
	if err != nil {
		t.Fatalf("NewForEdit: %v", err)
	}

	guDone := make(chan error, 1)
	go func() {
		guDone <- s.SwitchLocale(context.Background(), "gu")
	}()

	<-guStarted
	if err := s.SwitchLocale(context.Background(), "hi"); err != nil {
		t.Fatalf("switch to hi: %v", err)
	}

	close(guRelease)
	if err := <-guDone; err != nil {
		t.Fatalf("stale switch should resolve silently, got %v", err)
	}

	draft := s.Draft()
	if got := draft.ActiveLocale(); got != "hi" {
		t.Fatalf("active locale = %q, want hi", got)
	}
	if got := draft.FieldForLocale("hi", "name"); got != "गुजरात" {
		t.Fatalf("hi name = %q, want the fetched value", got)
	}
	if got := draft.FieldForLocale("gu", "name"); got != "" {
		t.Fatalf("stale gu response applied: name = %q", got)
	}
}

func TestSubmitValidationFailsLocally(t *testing.T) {
	api := &fakeAPI{}
	s, err := session.New(api, apiclient.KindState, editor.StateSpec(), langset.Default())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := s.SetField("name", "Gujarat"); err != nil {
		t.Fatalf("set name: %v", err)
	}

	_, err = s.Submit(context.Background())
	var verr *editor.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if got := api.creates.Load(); got != 0 {
		t.Fatalf("validation failure reached the API %d times", got)
	}
	if got := s.Draft().Field("name"); got != "Gujarat" {
		t.Fatalf("draft lost its value after rejected submit: %q", got)
	}
}

func TestSubmitInFlightRejected(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	api := &fakeAPI{
		createFn: func(ctx context.Context, kind apiclient.Kind, sub *payload.Submission) (string, error) {
			close(started)
			<-release
			return "state added successfully", nil
		},
	}

	s, err := session.New(api, apiclient.KindState, editor.StateSpec(), langset.Default())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	fillStateDraft(t, s)

	done := make(chan error, 1)
	go func() {
		_, err := s.Submit(context.Background())
		done <- err
	}()

	<-started
	if _, err := s.Submit(context.Background()); !errors.Is(err, session.ErrSubmitInFlight) {
		t.Fatalf("second submit: got %v, want ErrSubmitInFlight", err)
	}

	close(release)
	if err := <-done; err != nil {
		t.Fatalf("first submit: %v", err)
	}
}

func TestSubmitSuccessResetsDraftAndRefreshes(t *testing.T) {
	var refreshed atomic.Int32
	api := &fakeAPI{
		createFn: func(ctx context.Context, kind apiclient.Kind, sub *payload.Submission) (string, error) {
			return "state added successfully", nil
		},
	}

	s, err := session.New(api, apiclient.KindState, editor.StateSpec(), langset.Default(),
		session.WithRefresh(func() { refreshed.Add(1) }))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	fillStateDraft(t, s)

	msg, err := s.Submit(context.Background())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if msg != "state added successfully" {
		t.Fatalf("message = %q", msg)
	}
	if got := refreshed.Load(); got != 1 {
		t.Fatalf("refresh callback fired %d times, want 1", got)
	}

	draft := s.Draft()
	if got := draft.Field("name"); got != "" {
		t.Fatalf("draft not reset, name = %q", got)
	}
	if got := draft.Field("code"); got != "" {
		t.Fatalf("draft not reset, code = %q", got)
	}
	if !draft.FieldEditable("code") {
		t.Fatal("lock survived the reset")
	}
}

func TestSubmitFailurePreservesDraft(t *testing.T) {
	api := &fakeAPI{
		createFn: func(ctx context.Context, kind apiclient.Kind, sub *payload.Submission) (string, error) {
			return "", errors.New("state already exists")
		},
	}

	s, err := session.New(api, apiclient.KindState, editor.StateSpec(), langset.Default())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	fillStateDraft(t, s)

	if _, err := s.Submit(context.Background()); err == nil {
		t.Fatal("expected submit error")
	}
	if got := s.Draft().Field("name"); got != "Gujarat" {
		t.Fatalf("draft lost its value after failed submit: %q", got)
	}
	if _, err := s.Submit(context.Background()); err == nil {
		t.Fatal("retry should be possible after a failed submit")
	}
}

func TestCloseDuringSubmitDropsResult(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	var refreshed atomic.Int32
	api := &fakeAPI{
		createFn: func(ctx context.Context, kind apiclient.Kind, sub *payload.Submission) (string, error) {
			close(started)
			<-release
			return "state added successfully", nil
		},
	}

	s, err := session.New(api, apiclient.KindState, editor.StateSpec(), langset.Default(),
		session.WithRefresh(func() { refreshed.Add(1) }))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	fillStateDraft(t, s)

	done := make(chan error, 1)
	go func() {
		_, err := s.Submit(context.Background())
		done <- err
	}()

	<-started
	s.Close()
	close(release)

	if err := <-done; !errors.Is(err, session.ErrClosed) {
		t.Fatalf("submit after close: got %v, want ErrClosed", err)
	}
	if got := refreshed.Load(); got != 0 {
		t.Fatalf("refresh fired %d times after close", got)
	}
	if err := s.SetField("name", "Rajasthan"); !errors.Is(err, session.ErrClosed) {
		t.Fatalf("SetField on closed session: got %v, want ErrClosed", err)
	}
}

func TestEditModeSeedsWithoutLocks(t *testing.T) {
	api := &fakeAPI{
		fetchFn: func(ctx context.Context, kind apiclient.Kind, id, locale string) (*apiclient.Record, error) {
			return &apiclient.Record{ID: id, Name: "Gujarat", Code: "GJ01"}, nil
		},
	}

	s, err := session.NewForEdit(context.Background(), api, apiclient.KindState, "st-1", editor.StateSpec(), langset.Default())
	if err != nil {
		t.Fatalf("NewForEdit: %v", err)
	}

	draft := s.Draft()
	if got := draft.Field("name"); got != "Gujarat" {
		t.Fatalf("seeded name = %q", got)
	}
	if got := draft.Field("code"); got != "GJ01" {
		t.Fatalf("seeded code = %q", got)
	}
	if !draft.FieldEditable("code") {
		t.Fatal("seeding must not lock shared fields")
	}
	if _, locked := draft.LockOwner("code"); locked {
		t.Fatal("seeded draft should open unlocked")
	}

	if err := s.SetField("code", "GJ02"); err != nil {
		t.Fatalf("edit seeded shared field: %v", err)
	}
	if owner, locked := draft.LockOwner("code"); !locked || owner != "en" {
		t.Fatalf("first edit should lock for en, got %q/%v", owner, locked)
	}
}
