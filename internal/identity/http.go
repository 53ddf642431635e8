package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"sync"

	"pawfinder/internal/domain"
)

// HTTPProvider speaks the hosted identity service's REST surface (GoTrue
// style): password grant for sign-in, a signup endpoint, and a bearer-token
// logout. It caches the current session and fans session changes out to
// subscribers.
type HTTPProvider struct {
	baseURL string
	anonKey string
	httpc   *http.Client
	logger  *log.Logger

	mu      sync.Mutex
	current *domain.Session
	token   string
	next    int
	subs    map[int]func(*domain.Session)
}

func NewHTTPProvider(baseURL, anonKey string, httpc *http.Client, logger *log.Logger) *HTTPProvider {
	if httpc == nil {
		httpc = http.DefaultClient
	}
	return &HTTPProvider{
		baseURL: baseURL,
		anonKey: anonKey,
		httpc:   httpc,
		logger:  logger,
		subs:    make(map[int]func(*domain.Session)),
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	Error       string `json:"error"`
	ErrorDesc   string `json:"error_description"`
	Msg         string `json:"msg"`
}

func (p *HTTPProvider) Session(context.Context) (*domain.Session, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current, nil
}

func (p *HTTPProvider) OnSessionChange(fn func(*domain.Session)) (unsubscribe func()) {
	p.mu.Lock()
	p.next++
	id := p.next
	p.subs[id] = fn
	p.mu.Unlock()
	return func() {
		p.mu.Lock()
		delete(p.subs, id)
		p.mu.Unlock()
	}
}

func (p *HTTPProvider) SignIn(ctx context.Context, email, password string) (*domain.Session, error) {
	resp, err := p.post(ctx, "/auth/v1/token?grant_type=password", map[string]any{
		"email":    email,
		"password": password,
	}, "")
	if err != nil {
		return nil, err
	}
	sess, err := SessionFromToken(resp.AccessToken)
	if err != nil {
		return nil, err
	}
	p.setSession(sess, resp.AccessToken)
	return sess, nil
}

func (p *HTTPProvider) SignUp(ctx context.Context, email, password string, metadata map[string]any) (*domain.Session, error) {
	resp, err := p.post(ctx, "/auth/v1/signup", map[string]any{
		"email":    email,
		"password": password,
		"data":     metadata,
	}, "")
	if err != nil {
		return nil, err
	}
	if resp.AccessToken == "" {
		// confirmation flow: no session until the user verifies the email
		return nil, nil
	}
	sess, err := SessionFromToken(resp.AccessToken)
	if err != nil {
		return nil, err
	}
	p.setSession(sess, resp.AccessToken)
	return sess, nil
}

// SignOut drops the cached session and notifies subscribers even when the
// remote revocation fails; the local app must not stay signed in.
func (p *HTTPProvider) SignOut(ctx context.Context) error {
	p.mu.Lock()
	token := p.token
	p.mu.Unlock()

	var remoteErr error
	if token != "" {
		_, remoteErr = p.post(ctx, "/auth/v1/logout", nil, token)
	}
	p.setSession(nil, "")
	return remoteErr
}

func (p *HTTPProvider) UpdateProfile(ctx context.Context, metadata map[string]any) error {
	p.mu.Lock()
	token := p.token
	current := p.current
	p.mu.Unlock()
	if current == nil {
		return domain.ErrNotFound
	}

	if _, err := p.put(ctx, "/auth/v1/user", map[string]any{"data": metadata}, token); err != nil {
		return err
	}

	merged := make(map[string]any, len(current.Metadata)+len(metadata))
	for k, v := range current.Metadata {
		merged[k] = v
	}
	for k, v := range metadata {
		merged[k] = v
	}
	p.setSession(&domain.Session{ID: current.ID, Email: current.Email, Metadata: merged}, token)
	return nil
}

// DeleteAccount requires the provider's service role and is never available
// from the client.
func (p *HTTPProvider) DeleteAccount(context.Context) error { return domain.ErrUnsupported }

func (p *HTTPProvider) setSession(sess *domain.Session, token string) {
	p.mu.Lock()
	p.current = sess
	p.token = token
	listeners := make([]func(*domain.Session), 0, len(p.subs))
	for _, fn := range p.subs {
		listeners = append(listeners, fn)
	}
	p.mu.Unlock()
	for _, fn := range listeners {
		fn(sess)
	}
}

func (p *HTTPProvider) post(ctx context.Context, path string, body map[string]any, bearer string) (*tokenResponse, error) {
	return p.do(ctx, http.MethodPost, path, body, bearer)
}

func (p *HTTPProvider) put(ctx context.Context, path string, body map[string]any, bearer string) (*tokenResponse, error) {
	return p.do(ctx, http.MethodPut, path, body, bearer)
}

func (p *HTTPProvider) do(ctx context.Context, method, path string, body map[string]any, bearer string) (*tokenResponse, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, p.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", p.anonKey)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := p.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("identity request: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	var parsed tokenResponse
	_ = json.Unmarshal(raw, &parsed)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := parsed.ErrorDesc
		if msg == "" {
			msg = parsed.Error
		}
		if msg == "" {
			msg = parsed.Msg
		}
		if msg == "" {
			msg = resp.Status
		}
		return nil, fmt.Errorf("identity: %s", msg)
	}
	return &parsed, nil
}
