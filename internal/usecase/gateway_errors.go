package usecase

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrGatewayUnavailable  = errors.New("shopping service unavailable")
	ErrGatewayRejected     = errors.New("shopping service rejected the request")
	ErrGatewayUnauthorized = errors.New("shopping service unauthorized")
	ErrListNotFound        = errors.New("shopping list not found")
	ErrProductNotFound     = errors.New("product not found")
	ErrItemNotFound        = errors.New("list item not found")
)

// remoteError is implemented by gateway adapters that know the HTTP status of
// a failed call. Status 0 means the call never got a response.
type remoteError interface {
	error
	RemoteStatus() int
	RemoteDetail() string
}

// GatewayError names the user action that failed and classifies the cause.
//
// Kind is one of the sentinel errors above so callers can use errors.Is.
type GatewayError struct {
	Action string
	Kind   error
	Detail string
	Err    error
}

func (e *GatewayError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Action)
	sb.WriteString(": ")
	sb.WriteString(e.Kind.Error())
	if e.Detail != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Detail)
	}
	return sb.String()
}

func (e *GatewayError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// mapGatewayError classifies a gateway failure for action. notFound is the
// sentinel used when the service answers 404.
func mapGatewayError(action string, err error, notFound error) error {
	if err == nil {
		return nil
	}
	var gwErr *GatewayError
	if errors.As(err, &gwErr) {
		return err
	}

	var re remoteError
	if !errors.As(err, &re) {
		return &GatewayError{Action: action, Kind: ErrGatewayUnavailable, Detail: err.Error(), Err: err}
	}

	kind := ErrGatewayUnavailable
	switch status := re.RemoteStatus(); {
	case status == http.StatusNotFound:
		kind = notFound
		if kind == nil {
			kind = ErrGatewayRejected
		}
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		kind = ErrGatewayUnauthorized
	case status >= 400 && status < 500:
		kind = ErrGatewayRejected
	}
	return &GatewayError{Action: action, Kind: kind, Detail: re.RemoteDetail(), Err: err}
}

func describeError(err error) string {
	if err == nil {
		return ""
	}
	var gwErr *GatewayError
	if errors.As(err, &gwErr) && gwErr.Detail != "" {
		return fmt.Sprintf("%s: %s", gwErr.Kind, gwErr.Detail)
	}
	return err.Error()
}
