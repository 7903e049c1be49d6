package apiclient

import (
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

const (
	authTokenMissingCode   = "AUTH_TOKEN_MISSING"
	authSessionExpiredCode = "AUTH_SESSION_EXPIRED"
	requestFailedCode      = "API_REQUEST_FAILED"
)

// genericFailure is shown when the server response carries no message field.
const genericFailure = "something went wrong"

var (
	ErrTokenMissing   = errors.New("apiclient: no authentication token available")
	ErrSessionExpired = errors.New("apiclient: session expired")
	ErrRequestFailed  = errors.New("apiclient: request failed")
)

// authError tags an error with the auth category. The calling shell owns the
// redirect-to-login policy; the client only classifies.
func authError(err error, message string) error {
	if goerrors.IsWrapped(err) {
		return err
	}
	code := authSessionExpiredCode
	if errors.Is(err, ErrTokenMissing) {
		code = authTokenMissingCode
	}
	return goerrors.Wrap(err, goerrors.CategoryAuth, message).WithTextCode(code)
}

// requestError tags a non-auth remote failure, preserving the server's
// message verbatim so it can be surfaced to the operator.
func requestError(err error, message string) error {
	if goerrors.IsWrapped(err) {
		return err
	}
	if message == "" {
		message = genericFailure
	}
	return goerrors.Wrap(err, goerrors.CategoryExternal, message).WithTextCode(requestFailedCode)
}

// IsAuthError reports whether the error means the session is missing or
// expired and the operator must log in again.
func IsAuthError(err error) bool {
	return goerrors.IsCategory(err, goerrors.CategoryAuth)
}

// IsRequestError reports whether the error is a recoverable remote failure:
// the draft is preserved and the operation may simply be retried.
func IsRequestError(err error) bool {
	return goerrors.IsCategory(err, goerrors.CategoryExternal)
}

// UserMessage extracts the operator-facing message from a classified error.
func UserMessage(err error) string {
	var wrapped *goerrors.Error
	if errors.As(err, &wrapped) && wrapped.Message != "" {
		return wrapped.Message
	}
	if err != nil {
		return err.Error()
	}
	return genericFailure
}
