package shoppingapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	loginPath = "/auth/login"
	// tokens are renewed this long before they expire
	expirySkew = 30 * time.Second
	// used when the token carries no exp claim
	fallbackTokenTTL = 15 * time.Minute
)

var ErrMissingCredentials = errors.New("missing shopping api credentials")

// TokenSource hands out bearer tokens for the shopping service.
//
// With a static token it returns it as-is. Otherwise it logs in with the
// configured account and caches the access token until shortly before its
// exp claim. The signature is not verified: the token is only forwarded.
type TokenSource struct {
	baseURL  string
	username string
	password string
	static   string
	http     *http.Client

	mu      sync.Mutex
	token   string
	expires time.Time
	now     func() time.Time
}

func NewStaticTokenSource(token string) *TokenSource {
	return &TokenSource{static: token, now: time.Now}
}

func NewLoginTokenSource(baseURL, username, password string, httpClient *http.Client) *TokenSource {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &TokenSource{
		baseURL:  strings.TrimRight(baseURL, "/"),
		username: username,
		password: password,
		http:     httpClient,
		now:      time.Now,
	}
}

// Token returns a valid access token, logging in when needed.
func (s *TokenSource) Token(ctx context.Context) (string, error) {
	if s == nil {
		return "", nil
	}
	if s.static != "" {
		return s.static, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token != "" && s.now().Before(s.expires) {
		return s.token, nil
	}
	if s.username == "" || s.password == "" {
		return "", ErrMissingCredentials
	}

	token, err := s.login(ctx)
	if err != nil {
		return "", err
	}
	s.token = token
	s.expires = s.expiryOf(token)
	log.Printf("[shopping][auth] token acquired expires_at=%s", s.expires.UTC().Format(time.RFC3339))
	return token, nil
}

// Invalidate drops the cached token, e.g. after a 401.
func (s *TokenSource) Invalidate() {
	if s == nil || s.static != "" {
		return
	}
	s.mu.Lock()
	s.token = ""
	s.expires = time.Time{}
	s.mu.Unlock()
}

func (s *TokenSource) login(ctx context.Context) (string, error) {
	form := url.Values{}
	form.Set("username", s.username)
	form.Set("password", s.password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+loginPath, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("new login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := s.http.Do(req)
	if err != nil {
		log.Printf("[shopping][auth] login failed err=%v", err)
		return "", &APIError{Method: http.MethodPost, Path: loginPath, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", &APIError{Method: http.MethodPost, Path: loginPath, Err: fmt.Errorf("read login response: %w", err)}
	}
	if resp.StatusCode != http.StatusOK {
		log.Printf("[shopping][auth] login rejected status=%d", resp.StatusCode)
		return "", &APIError{Method: http.MethodPost, Path: loginPath, StatusCode: resp.StatusCode, Detail: parseDetail(body)}
	}

	var out struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("decode login response: %w", err)
	}
	if out.AccessToken == "" {
		return "", errors.New("login response has no access_token")
	}
	return out.AccessToken, nil
}

func (s *TokenSource) expiryOf(token string) time.Time {
	now := s.now()
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		log.Printf("[shopping][auth] token is not a jwt, using fallback ttl err=%v", err)
		return now.Add(fallbackTokenTTL)
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return now.Add(fallbackTokenTTL)
	}
	return exp.Add(-expirySkew)
}
