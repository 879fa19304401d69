package jira

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

const (
	defaultAPIBaseURL = "https://api.atlassian.com"
	defaultAuthURL    = "https://auth.atlassian.com/oauth/token"

	priorityCacheSize = 128
	priorityCacheTTL  = 10 * time.Minute
)

// Client is a Jira Cloud REST v3 client for OAuth 2.0 (3LO) tokens.
// User credentials are passed per session: the client holds only the OAuth
// app identity used for token refresh.
type Client struct {
	apiBaseURL string
	authURL    string

	clientID     string
	clientSecret string

	httpClient *http.Client
	limiter    *rate.Limiter

	// priority schemes rarely change; cached per cloud id
	prioCache *expirable.LRU[string, []Priority]
}

// NewClient creates a new Jira client with the given OAuth app identity.
func NewClient(clientID, clientSecret string) *Client {
	return &Client{
		apiBaseURL:   defaultAPIBaseURL,
		authURL:      defaultAuthURL,
		clientID:     clientID,
		clientSecret: clientSecret,
		httpClient:   &http.Client{},
		limiter:      rate.NewLimiter(rate.Limit(5), 5),
		prioCache:    expirable.NewLRU[string, []Priority](priorityCacheSize, nil, priorityCacheTTL),
	}
}

// SetAPIBaseURL overrides the API base URL. Used by tests.
func (c *Client) SetAPIBaseURL(u string) { c.apiBaseURL = u }

// SetAuthURL overrides the token refresh endpoint. Used by tests.
func (c *Client) SetAuthURL(u string) { c.authURL = u }

// TokenSaver persists refreshed credentials so the next call starts from the
// new token pair.
type TokenSaver func(ctx context.Context, creds Credentials) error

// Session binds a client to one user's credentials. Acquire, use, discard:
// the session holds no resource beyond the token pair.
type Session struct {
	c     *Client
	creds Credentials
	save  TokenSaver
}

// Session creates a request-scoped session for the given credentials.
// save may be nil when the caller does not persist refreshed tokens.
func (c *Client) Session(creds Credentials, save TokenSaver) *Session {
	return &Session{c: c, creds: creds, save: save}
}

// doJSON executes one authenticated request. A 401 triggers a single token
// refresh followed by one retry; a second 401 is surfaced as fatal.
func (s *Session) doJSON(ctx context.Context, method, requestURL string, body interface{}, out interface{}) error {
	resp, err := s.roundTrip(ctx, method, requestURL, body)
	if err != nil {
		return err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		if err := s.refresh(ctx); err != nil {
			return fmt.Errorf("jira: token refresh failed: %w", err)
		}

		resp, err = s.roundTrip(ctx, method, requestURL, body)
		if err != nil {
			return err
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("jira: API error %d: %s", resp.StatusCode, string(raw))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("jira: failed to decode response: %w", err)
		}
	}
	return nil
}

func (s *Session) roundTrip(ctx context.Context, method, requestURL string, body interface{}) (*http.Response, error) {
	if err := s.c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("jira: failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, reader)
	if err != nil {
		return nil, fmt.Errorf("jira: failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.creds.AccessToken)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("jira: failed to call API: %w", err)
	}
	return resp, nil
}

// refresh exchanges the refresh token for a new token pair and persists it
// through the session's TokenSaver.
func (s *Session) refresh(ctx context.Context) error {
	if s.creds.RefreshToken == "" {
		return fmt.Errorf("no refresh token available")
	}

	form := url.Values{}
	form.Set("client_id", s.c.clientID)
	form.Set("client_secret", s.c.clientSecret)
	form.Set("refresh_token", s.creds.RefreshToken)
	form.Set("grant_type", "refresh_token")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.c.authURL, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("refresh rejected %d: %s", resp.StatusCode, string(raw))
	}

	var tok struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil {
		return err
	}

	s.creds.AccessToken = tok.AccessToken
	if tok.RefreshToken != "" {
		s.creds.RefreshToken = tok.RefreshToken
	}

	if s.save != nil {
		if err := s.save(ctx, s.creds); err != nil {
			return fmt.Errorf("failed to persist refreshed token: %w", err)
		}
	}
	return nil
}

// AccessibleResources lists the Atlassian sites the token can reach.
func (s *Session) AccessibleResources(ctx context.Context) ([]Resource, error) {
	var resources []Resource
	err := s.doJSON(ctx, http.MethodGet, s.c.apiBaseURL+"/oauth/token/accessible-resources", nil, &resources)
	if err != nil {
		return nil, err
	}
	return resources, nil
}

// Priorities returns the site's priority scheme, cached per cloud id.
func (s *Session) Priorities(ctx context.Context, cloudID string) ([]Priority, error) {
	if cached, ok := s.c.prioCache.Get(cloudID); ok {
		return cached, nil
	}

	var priorities []Priority
	u := fmt.Sprintf("%s/ex/jira/%s/rest/api/3/priority", s.c.apiBaseURL, cloudID)
	if err := s.doJSON(ctx, http.MethodGet, u, nil, &priorities); err != nil {
		return nil, err
	}

	s.c.prioCache.Add(cloudID, priorities)
	return priorities, nil
}

type issueIDRef struct {
	ID string `json:"id"`
}

type issueFields struct {
	Project     issueIDRef  `json:"project"`
	Summary     string      `json:"summary"`
	IssueType   issueIDRef  `json:"issuetype"`
	Description *ADFDoc     `json:"description,omitempty"`
	Assignee    *issueIDRef `json:"assignee,omitempty"`
	Priority    *issueIDRef `json:"priority,omitempty"`
}

type createIssueBody struct {
	Fields issueFields `json:"fields"`
}

// CreateIssue creates one issue in the given site.
func (s *Session) CreateIssue(ctx context.Context, cloudID string, params CreateIssueParams) (Issue, error) {
	body := createIssueBody{
		Fields: issueFields{
			Project:   issueIDRef{ID: params.ProjectID},
			Summary:   params.Summary,
			IssueType: issueIDRef{ID: params.IssueTypeID},
		},
	}

	if params.Description != "" {
		doc := DocumentFromText(params.Description)
		body.Fields.Description = &doc
	}
	if params.AssigneeID != "" {
		body.Fields.Assignee = &issueIDRef{ID: params.AssigneeID}
	}
	if params.PriorityID != "" {
		body.Fields.Priority = &issueIDRef{ID: params.PriorityID}
	}

	var issue Issue
	u := fmt.Sprintf("%s/ex/jira/%s/rest/api/3/issue", s.c.apiBaseURL, cloudID)
	if err := s.doJSON(ctx, http.MethodPost, u, body, &issue); err != nil {
		return Issue{}, err
	}
	return issue, nil
}
