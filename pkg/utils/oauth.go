package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"sync"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/jakechorley/prayer-diary/internal/config"
)

// ScopeSheets allows publishing the calendar to a spreadsheet
const ScopeSheets = "https://www.googleapis.com/auth/spreadsheets"

const tokenInfoURL = "https://oauth2.googleapis.com/tokeninfo"

// Tokens already obtained in this process, keyed by environment.
// An interactive session publishes several times with one authorisation.
var (
	sessionTokens   = map[string]*oauth2.Token{}
	sessionTokensMu sync.Mutex
)

// GetOAuthConfig builds the Google OAuth config for publishing, redirecting to the local callback server
func GetOAuthConfig(oauthCfg *config.OAuthClientConfig) (*oauth2.Config, error) {
	raw, err := json.Marshal(oauthCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal oauth config: %w", err)
	}

	googleConfig, err := google.ConfigFromJSON(raw, ScopeSheets)
	if err != nil {
		return nil, fmt.Errorf("failed to create google config: %w", err)
	}
	googleConfig.RedirectURL = callbackURL()

	return googleConfig, nil
}

// GetTokenWithFlow returns a token able to write to Google Sheets for env.
// It reuses this session's token, then the saved token (refreshing it if expired),
// and only then asks the editor to authorise in the browser.
func GetTokenWithFlow(ctx context.Context, oauthConfig *oauth2.Config, env string) (*oauth2.Token, error) {
	sessionTokensMu.Lock()
	defer sessionTokensMu.Unlock()

	if token := sessionTokens[env]; token != nil && token.Valid() {
		return token, nil
	}

	file, err := tokenFileFor(env)
	if err != nil {
		return nil, err
	}

	token := storedToken(ctx, oauthConfig, file)
	if token == nil {
		token, err = authorise(ctx, oauthConfig)
		if err != nil {
			return nil, err
		}
		// The token stays usable for this process even if it cannot be saved
		if err := file.save(token); err != nil {
			fmt.Printf("Warning: %v\n", err)
		}
	}

	sessionTokens[env] = token
	return token, nil
}

// storedToken returns the saved token, refreshed if expired, or nil when a new authorisation is needed.
// A saved token without the spreadsheets scope is removed.
func storedToken(ctx context.Context, oauthConfig *oauth2.Config, file tokenFile) *oauth2.Token {
	saved, err := file.load()
	if err != nil {
		fmt.Printf("Warning: %v\n", err)
		return nil
	}
	if saved == nil {
		return nil
	}

	token := saved
	if !saved.Valid() {
		if saved.RefreshToken == "" {
			return nil
		}
		refreshed, err := oauthConfig.TokenSource(ctx, saved).Token()
		if err != nil || refreshed.AccessToken == saved.AccessToken {
			return nil
		}
		token = refreshed
	}

	if err := requireSheetsScope(ctx, http.DefaultClient, tokenInfoURL, token); err != nil {
		fmt.Printf("Saved Google authorisation rejected (%v), removing it\n", err)
		file.remove()
		return nil
	}

	if token != saved {
		if err := file.save(token); err != nil {
			fmt.Printf("Warning: %v\n", err)
		}
	}

	return token
}

// authorise runs the browser consent flow and exchanges the returned code
func authorise(ctx context.Context, oauthConfig *oauth2.Config) (*oauth2.Token, error) {
	state, err := newState()
	if err != nil {
		return nil, err
	}

	fmt.Println("No saved Google authorisation for this environment")
	fmt.Printf("\nOpen this URL to let Prayer Diary publish to Google Sheets:\n%s\n\n",
		oauthConfig.AuthCodeURL(state, oauth2.AccessTypeOffline))

	code, err := waitForCallback(ctx, state)
	if err != nil {
		return nil, fmt.Errorf("failed to get authorization code: %w", err)
	}

	token, err := oauthConfig.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange code for token: %w", err)
	}

	if err := requireSheetsScope(ctx, http.DefaultClient, tokenInfoURL, token); err != nil {
		return nil, fmt.Errorf("token validation failed: %w", err)
	}

	return token, nil
}

// requireSheetsScope asks Google's tokeninfo endpoint which scopes token carries
func requireSheetsScope(ctx context.Context, client *http.Client, endpoint string, token *oauth2.Token) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		endpoint+"?access_token="+url.QueryEscape(token.AccessToken), nil)
	if err != nil {
		return fmt.Errorf("failed to create tokeninfo request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call tokeninfo endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("tokeninfo request failed with status %d", resp.StatusCode)
	}

	var info struct {
		Scope string `json:"scope"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return fmt.Errorf("failed to decode tokeninfo response: %w", err)
	}

	if !slices.Contains(strings.Fields(info.Scope), ScopeSheets) {
		return fmt.Errorf("spreadsheets access was not granted; tick the Google Sheets permission when authorising")
	}
	return nil
}
