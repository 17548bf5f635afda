package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/oauth2"
)

const tokenDirName = ".prayer-diary/tokens"

// tokenFile is the saved Google token of one environment, readable by the owner only
type tokenFile struct {
	path string
}

func tokenFileFor(env string) (tokenFile, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return tokenFile{}, fmt.Errorf("failed to get home directory: %w", err)
	}
	return tokenFile{path: filepath.Join(home, tokenDirName, "token-"+env+".json")}, nil
}

// load returns nil without error when no token has been saved yet
func (f tokenFile) load() (*oauth2.Token, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read token file: %w", err)
	}

	var token oauth2.Token
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, fmt.Errorf("failed to parse token file %s: %w", f.path, err)
	}
	return &token, nil
}

func (f tokenFile) save(token *oauth2.Token) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return fmt.Errorf("failed to create token directory: %w", err)
	}

	data, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("failed to marshal token: %w", err)
	}

	if err := os.WriteFile(f.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}
	return nil
}

func (f tokenFile) remove() error {
	if err := os.Remove(f.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete token file: %w", err)
	}
	return nil
}
