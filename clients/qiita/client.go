package qiita

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"qtbot/clients"
	"qtbot/models"
)

const (
	defaultBaseURL    = "https://qiita.com"
	teamBaseURLFormat = "https://%s.qiita.com"
)

// APIError represents a request the Qiita API rejected. Message carries
// the response body's message field when present so it can be shown to
// the user verbatim.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("qiita api error (status %d): %s", e.StatusCode, e.Message)
}

// QiitaClient implements the clients.QiitaClient interface against the
// Qiita API v2. Team-scoped endpoints live on a per-team subdomain.
type QiitaClient struct {
	httpClient  *http.Client
	baseURL     string
	teamBaseURL func(teamURLName string) string
}

// NewQiitaClient creates a new Qiita API client
func NewQiitaClient(httpClient *http.Client) clients.QiitaClient {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &QiitaClient{
		httpClient: httpClient,
		baseURL:    defaultBaseURL,
		teamBaseURL: func(teamURLName string) string {
			return fmt.Sprintf(teamBaseURLFormat, teamURLName)
		},
	}
}

// ListTeams fetches the teams the token's owner belongs to
func (c *QiitaClient) ListTeams(ctx context.Context, apiToken string) ([]models.QiitaTeam, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/v2/teams", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build teams request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+apiToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to request teams: %w", err)
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read teams response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, newAPIError(resp.StatusCode, responseBody)
	}

	var teams []models.QiitaTeam
	if err := json.Unmarshal(responseBody, &teams); err != nil {
		return nil, fmt.Errorf("failed to decode teams response: %w", err)
	}

	return teams, nil
}

// ExchangeCode exchanges an authorization code for a Qiita API token.
// Success requires HTTP 201.
func (c *QiitaClient) ExchangeCode(ctx context.Context, clientID, clientSecret, code string) (string, error) {
	payload := map[string]string{
		"client_id":     clientID,
		"client_secret": clientSecret,
		"code":          code,
	}
	requestBody, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode access token request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+"/api/v2/access_tokens",
		bytes.NewReader(requestBody),
	)
	if err != nil {
		return "", fmt.Errorf("failed to build access token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to request access token: %w", err)
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read access token response: %w", err)
	}

	if resp.StatusCode != http.StatusCreated {
		return "", newAPIError(resp.StatusCode, responseBody)
	}

	var tokenResponse struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(responseBody, &tokenResponse); err != nil {
		return "", fmt.Errorf("failed to decode access token response: %w", err)
	}

	return tokenResponse.Token, nil
}

// CreateItem creates an article on the given team. Success requires
// HTTP 201.
func (c *QiitaClient) CreateItem(
	ctx context.Context,
	apiToken, teamURLName, title string,
	tags []models.QiitaTag,
	body string,
) (*models.QiitaArticle, error) {
	payload := map[string]any{
		"title": title,
		"tags":  tags,
		"body":  body,
	}
	requestBody, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode item request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.teamBaseURL(teamURLName)+"/api/v2/items",
		bytes.NewReader(requestBody),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build item request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+apiToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to request item creation: %w", err)
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read item response: %w", err)
	}

	if resp.StatusCode != http.StatusCreated {
		return nil, newAPIError(resp.StatusCode, responseBody)
	}

	var article models.QiitaArticle
	if err := json.Unmarshal(responseBody, &article); err != nil {
		return nil, fmt.Errorf("failed to decode item response: %w", err)
	}

	return &article, nil
}

// newAPIError extracts the message field from an error response body,
// falling back to the raw body when it is not JSON.
func newAPIError(statusCode int, responseBody []byte) *APIError {
	var errorResponse struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(responseBody, &errorResponse); err == nil && errorResponse.Message != "" {
		return &APIError{StatusCode: statusCode, Message: errorResponse.Message}
	}
	return &APIError{StatusCode: statusCode, Message: string(responseBody)}
}
