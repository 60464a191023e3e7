// Package backend provides the OAuth plumbing shared by the Google API
// backends.
package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"bdcal/internal/config"
)

// Scopes required by the two backends. One token covers both.
const (
	SheetsScope   = "https://www.googleapis.com/auth/spreadsheets"
	CalendarScope = "https://www.googleapis.com/auth/calendar"
)

// NewHTTPClient builds an HTTP client with an auto-refreshing token
// source from the stored OAuth credentials.
// Requires oauth_client.json and token.json to exist.
func NewHTTPClient(ctx context.Context, cfg *config.Config) (*http.Client, error) {
	clientJSON, err := os.ReadFile(cfg.OAuthClientPath())
	if err != nil {
		return nil, fmt.Errorf("failed to read oauth_client.json: %w", err)
	}

	oauthConfig, err := google.ConfigFromJSON(clientJSON, SheetsScope, CalendarScope)
	if err != nil {
		return nil, fmt.Errorf("invalid oauth_client.json: %w", err)
	}

	tokenData, err := os.ReadFile(cfg.TokenPath())
	if err != nil {
		return nil, fmt.Errorf("failed to read token.json: %w", err)
	}

	var token oauth2.Token
	if err := json.Unmarshal(tokenData, &token); err != nil {
		return nil, fmt.Errorf("invalid token.json: %w", err)
	}

	tokenSource := oauthConfig.TokenSource(ctx, &token)
	return oauth2.NewClient(ctx, tokenSource), nil
}
