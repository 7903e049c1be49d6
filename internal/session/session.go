// Package session owns the lifecycle of one open record editor: exactly one
// draft per session, created empty or seeded from a fetched record, mutated
// only through the propagation rules, submitted at most once at a time, and
// discarded unconditionally on close.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/mamaghar/go-admin/internal/apiclient"
	"github.com/mamaghar/go-admin/internal/editor"
	"github.com/mamaghar/go-admin/internal/langset"
	"github.com/mamaghar/go-admin/internal/logging"
	"github.com/mamaghar/go-admin/internal/payload"
	"github.com/mamaghar/go-admin/pkg/interfaces"
)

var (
	// ErrClosed indicates the editor was dismissed; its draft no longer
	// exists and late responses must not resurrect it.
	ErrClosed = errors.New("session: editor closed")
	// ErrSubmitInFlight indicates a submission is already running for this
	// draft. The submit control is expected to be disabled meanwhile.
	ErrSubmitInFlight = errors.New("session: submission already in flight")
)

// RecordAPI is the slice of the API client a session needs.
type RecordAPI interface {
	FetchByID(ctx context.Context, kind apiclient.Kind, id, locale string) (*apiclient.Record, error)
	Create(ctx context.Context, kind apiclient.Kind, sub *payload.Submission) (string, error)
	Update(ctx context.Context, kind apiclient.Kind, id string, sub *payload.Submission) (string, error)
}

// Session drives one open editor. Methods are safe for concurrent use; the
// draft itself is only ever touched under the session lock.
type Session struct {
	mu sync.Mutex

	api    RecordAPI
	kind   apiclient.Kind
	logger interfaces.Logger

	draft      *editor.Draft
	attachment *payload.Attachment

	recordID string
	editMode bool

	// fetchSeq orders locale fetches: a response whose sequence number is no
	// longer current belongs to a locale the user has already left and is
	// dropped silently.
	fetchSeq uint64
	inFlight bool
	closed   bool

	onRefresh func()
}

// Option configures a session.
type Option func(*Session)

// WithLogger injects the session logger namespace.
func WithLogger(logger interfaces.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithRefresh registers the callback invoked after a successful submit,
// typically the list view's reload.
func WithRefresh(fn func()) Option {
	return func(s *Session) {
		s.onRefresh = fn
	}
}

// New opens a create-mode session with an empty draft. Lock state always
// starts empty: locks are scoped to the editing session, never persisted.
func New(api RecordAPI, kind apiclient.Kind, spec *editor.Spec, locales langset.Set, opts ...Option) (*Session, error) {
	draft, err := editor.NewDraft(spec, locales)
	if err != nil {
		return nil, err
	}

	s := &Session{
		api:    api,
		kind:   kind,
		logger: logging.NoOp(),
		draft:  draft,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// NewForEdit opens an edit-mode session seeded from the stored record. The
// seeded draft opens unlocked regardless of how the record was authored.
func NewForEdit(ctx context.Context, api RecordAPI, kind apiclient.Kind, id string, spec *editor.Spec, locales langset.Set, opts ...Option) (*Session, error) {
	s, err := New(api, kind, spec, locales, opts...)
	if err != nil {
		return nil, err
	}
	s.recordID = id
	s.editMode = true

	record, err := api.FetchByID(ctx, kind, id, locales.Canonical())
	if err != nil {
		return nil, err
	}
	if err := s.draft.SeedLocale(locales.Canonical(), record.ForLocale(locales.Canonical())); err != nil {
		return nil, err
	}
	return s, nil
}

// Draft exposes read access to the underlying draft for views. Mutations
// must go through the session so lifecycle guards apply.
func (s *Session) Draft() *editor.Draft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

// SetField applies one field edit in the active locale.
func (s *Session) SetField(name, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	return s.draft.SetField(name, value)
}

// SetAttachment stages a binary attachment for the next submit. Passing nil
// clears it, which in edit mode means the stored attachment is kept.
func (s *Session) SetAttachment(att *payload.Attachment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	s.attachment = att
	return nil
}

// SwitchLocale changes the active locale. In create mode this is a pure
// view change. In edit mode the record is re-fetched for the new locale;
// only the response for the most recent switch is applied, so a slow fetch
// for an abandoned locale can never overwrite fresher data.
func (s *Session) SwitchLocale(ctx context.Context, locale string) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	if err := s.draft.SetActiveLocale(locale); err != nil {
		s.mu.Unlock()
		return err
	}
	if !s.editMode {
		s.mu.Unlock()
		return nil
	}

	s.fetchSeq++
	seq := s.fetchSeq
	kind, id := s.kind, s.recordID
	s.mu.Unlock()

	record, err := s.api.FetchByID(ctx, kind, id, locale)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	if seq != s.fetchSeq {
		s.logger.Debug("session.fetch.stale_discard", "locale", locale)
		return nil
	}
	if err != nil {
		return err
	}
	return s.draft.SeedLocale(locale, record.ForLocale(locale))
}

// Submit validates, assembles, and sends the draft. Validation failures are
// local: no request is made and the draft is untouched. Remote failures also
// preserve the draft so the operator can retry. On success the draft resets
// and the refresh callback fires. At most one submission runs at a time.
func (s *Session) Submit(ctx context.Context) (string, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return "", ErrClosed
	}
	if s.inFlight {
		s.mu.Unlock()
		return "", ErrSubmitInFlight
	}

	sub, err := payload.Assemble(s.draft)
	if err != nil {
		s.mu.Unlock()
		return "", err
	}
	if s.attachment != nil {
		sub.WithImage(s.attachment)
	}

	s.inFlight = true
	kind, id, edit := s.kind, s.recordID, s.editMode
	s.mu.Unlock()

	var message string
	if edit {
		message, err = s.api.Update(ctx, kind, id, sub)
	} else {
		message, err = s.api.Create(ctx, kind, sub)
	}

	s.mu.Lock()
	s.inFlight = false
	if s.closed {
		// The request may have completed server-side, but the editor is
		// gone: do not touch local state or notify anyone.
		s.mu.Unlock()
		return "", ErrClosed
	}
	if err != nil {
		s.mu.Unlock()
		return "", err
	}

	s.draft.Reset()
	s.attachment = nil
	refresh := s.onRefresh
	s.mu.Unlock()

	s.logger.Info("session.submit.success", "kind", string(kind))
	if refresh != nil {
		refresh()
	}
	return message, nil
}

// Close discards the draft unconditionally. In-flight work may still finish
// on the wire, but its results are dropped.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.draft.Reset()
	s.attachment = nil
}

// Closed reports whether the session has been dismissed.
func (s *Session) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}
