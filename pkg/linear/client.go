package linear

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/time/rate"
)

const defaultEndpoint = "https://api.linear.app/graphql"

// Client is a minimal Linear GraphQL API client. Access tokens are passed
// per call: the client itself holds no user credentials.
type Client struct {
	endpoint   string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a new Linear client. Requests are rate limited
// client-side to stay under Linear's API limits.
func NewClient() *Client {
	return &Client{
		endpoint:   defaultEndpoint,
		httpClient: &http.Client{},
		limiter:    rate.NewLimiter(rate.Limit(5), 5),
	}
}

// SetEndpoint overrides the GraphQL endpoint. Used by tests.
func (c *Client) SetEndpoint(url string) {
	c.endpoint = url
}

type graphqlRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

type graphqlError struct {
	Message string `json:"message"`
}

type graphqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphqlError  `json:"errors"`
}

// do executes a GraphQL request with the given bearer token and unmarshals
// the data payload into out.
func (c *Client) do(ctx context.Context, accessToken string, req graphqlRequest, out interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("linear: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("linear: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("linear: failed to call API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("linear: API error %d: %s", resp.StatusCode, string(raw))
	}

	var gqlResp graphqlResponse
	if err := json.NewDecoder(resp.Body).Decode(&gqlResp); err != nil {
		return fmt.Errorf("linear: failed to decode response: %w", err)
	}
	if len(gqlResp.Errors) > 0 {
		return fmt.Errorf("linear: graphql error: %s", gqlResp.Errors[0].Message)
	}

	if out != nil {
		if err := json.Unmarshal(gqlResp.Data, out); err != nil {
			return fmt.Errorf("linear: failed to decode data: %w", err)
		}
	}
	return nil
}

// Teams returns the teams visible to the token's workspace.
func (c *Client) Teams(ctx context.Context, accessToken string) ([]Team, error) {
	const query = `query Teams { teams { nodes { id name key } } }`

	var data struct {
		Teams struct {
			Nodes []Team `json:"nodes"`
		} `json:"teams"`
	}
	if err := c.do(ctx, accessToken, graphqlRequest{Query: query}, &data); err != nil {
		return nil, err
	}
	return data.Teams.Nodes, nil
}

// CreateIssue creates a single issue in the given team.
func (c *Client) CreateIssue(ctx context.Context, accessToken string, in CreateIssueInput) (Issue, error) {
	const mutation = `mutation IssueCreate($input: IssueCreateInput!) {
		issueCreate(input: $input) {
			success
			issue { id identifier title url }
		}
	}`

	input := map[string]interface{}{
		"title":  in.Title,
		"teamId": in.TeamID,
	}
	if in.Description != "" {
		input["description"] = in.Description
	}
	if in.ProjectID != "" {
		input["projectId"] = in.ProjectID
	}
	if in.AssigneeID != "" {
		input["assigneeId"] = in.AssigneeID
	}
	// 0 means unspecified; Linear treats the field as optional.
	if in.Priority > 0 {
		input["priority"] = in.Priority
	}

	var data struct {
		IssueCreate struct {
			Success bool  `json:"success"`
			Issue   Issue `json:"issue"`
		} `json:"issueCreate"`
	}
	err := c.do(ctx, accessToken, graphqlRequest{
		Query:     mutation,
		Variables: map[string]interface{}{"input": input},
	}, &data)
	if err != nil {
		return Issue{}, err
	}
	if !data.IssueCreate.Success {
		return Issue{}, fmt.Errorf("linear: issue creation was not successful")
	}
	return data.IssueCreate.Issue, nil
}
