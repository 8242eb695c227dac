package shoppingapi

import (
	"encoding/json"
	"fmt"
	"strings"
)

// APIError is returned for every failed call. StatusCode is 0 when no
// response was received (transport failure or timeout).
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Detail     string
	Err        error
}

func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("shopping api %s %s: %v", e.Method, e.Path, e.Err)
	}
	if e.Detail != "" {
		return fmt.Sprintf("shopping api %s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("shopping api %s %s: status %d", e.Method, e.Path, e.StatusCode)
}

func (e *APIError) Unwrap() error { return e.Err }

func (e *APIError) RemoteStatus() int { return e.StatusCode }

func (e *APIError) RemoteDetail() string {
	if e.Detail != "" || e.Err == nil {
		return e.Detail
	}
	return e.Err.Error()
}

// parseDetail extracts the human-readable message from an error body. The
// service answers {"detail": "..."} or, for validation errors,
// {"detail": [{"loc": [...], "msg": "..."}]}.
func parseDetail(body []byte) string {
	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || len(payload.Detail) == 0 {
		return strings.TrimSpace(truncate(string(body), 300))
	}

	var s string
	if err := json.Unmarshal(payload.Detail, &s); err == nil {
		return s
	}

	var items []struct {
		Loc []any  `json:"loc"`
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(payload.Detail, &items); err == nil && len(items) > 0 {
		msgs := make([]string, 0, len(items))
		for _, it := range items {
			if len(it.Loc) > 0 {
				msgs = append(msgs, fmt.Sprintf("%v: %s", it.Loc[len(it.Loc)-1], it.Msg))
				continue
			}
			msgs = append(msgs, it.Msg)
		}
		return strings.Join(msgs, "; ")
	}
	return strings.TrimSpace(truncate(string(payload.Detail), 300))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
