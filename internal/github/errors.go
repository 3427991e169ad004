package github

import (
	"fmt"
	"net/http"

	goerrors "github.com/goliatone/go-errors"
)

const (
	textCodeTransport    = "GITHUB_TRANSPORT"
	textCodeUnauthorized = "GITHUB_UNAUTHORIZED"
	textCodeNotFound     = "GITHUB_NOT_FOUND"
	textCodeStatus       = "GITHUB_STATUS"
	textCodeDecode       = "GITHUB_DECODE"
	textCodeTokenMissing = "GITHUB_TOKEN_MISSING"
	textCodeRequest      = "GITHUB_REQUEST"
)

func transportError(err error, endpoint string) error {
	return goerrors.Wrap(err, goerrors.CategoryExternal, "github request failed: "+endpoint).
		WithTextCode(textCodeTransport)
}

func requestError(err error, endpoint string) error {
	return goerrors.Wrap(err, goerrors.CategoryInternal, "github request could not be built: "+endpoint).
		WithTextCode(textCodeRequest)
}

func decodeError(err error, endpoint string) error {
	return goerrors.Wrap(err, goerrors.CategoryInternal, "github response could not be decoded: "+endpoint).
		WithTextCode(textCodeDecode)
}

func tokenMissingError(endpoint string) error {
	return goerrors.New("github token not configured: "+endpoint, goerrors.CategoryAuth).
		WithTextCode(textCodeTokenMissing)
}

// statusError classifies a non-2xx response.
func statusError(status int, endpoint string) error {
	message := fmt.Sprintf("github responded %d: %s", status, endpoint)
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return goerrors.New(message, goerrors.CategoryAuth).
			WithTextCode(textCodeUnauthorized).
			WithCode(status)
	case http.StatusNotFound:
		return goerrors.New(message, goerrors.CategoryNotFound).
			WithTextCode(textCodeNotFound).
			WithCode(status)
	default:
		return goerrors.New(message, goerrors.CategoryExternal).
			WithTextCode(textCodeStatus).
			WithCode(status)
	}
}
