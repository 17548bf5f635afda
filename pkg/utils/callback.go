package utils

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
)

const (
	AuthPort     = 3000
	authTimeout  = 5 * time.Minute
	callbackPath = "/oauth/callback"
)

const authorisedPage = `<html>
	<head><title>Prayer Diary</title></head>
	<body>
		<h1>Prayer Diary is authorised</h1>
		<p>Return to the terminal to finish publishing.</p>
	</body>
</html>`

type callbackResult struct {
	code string
	err  error
}

func callbackURL() string {
	return fmt.Sprintf("http://localhost:%d%s", AuthPort, callbackPath)
}

// newState returns the random value tying a consent redirect to this flow
func newState() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("failed to generate oauth state: %w", err)
	}
	return id.String(), nil
}

// callbackHandler delivers the first redirect carrying state to results.
// Redirects with another state are refused and ignored.
func callbackHandler(state string, results chan<- callbackResult) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(callbackPath, func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		if query.Get("state") != state {
			http.Error(w, "Unknown authorisation request", http.StatusBadRequest)
			return
		}

		var result callbackResult
		switch {
		case query.Get("error") != "":
			result.err = fmt.Errorf("authorisation refused: %s", query.Get("error"))
			http.Error(w, "Authorisation refused", http.StatusForbidden)
		case query.Get("code") == "":
			result.err = errors.New("no authorization code received")
			http.Error(w, "Authorisation failed", http.StatusBadRequest)
		default:
			result.code = query.Get("code")
			w.Header().Set("Content-Type", "text/html")
			fmt.Fprint(w, authorisedPage)
		}

		select {
		case results <- result:
		default:
		}
	})
	return mux
}

// waitForCallback serves the redirect URL until Google calls back, the context ends or authTimeout passes
func waitForCallback(ctx context.Context, state string) (string, error) {
	listener, err := net.Listen("tcp", fmt.Sprintf("localhost:%d", AuthPort))
	if err != nil {
		return "", fmt.Errorf("failed to listen for oauth callback: %w", err)
	}

	results := make(chan callbackResult, 1)
	server := &http.Server{
		Handler:           callbackHandler(state, results),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			select {
			case results <- callbackResult{err: fmt.Errorf("callback server error: %w", err)}:
			default:
			}
		}
	}()

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	timeoutCtx, cancel := context.WithTimeout(ctx, authTimeout)
	defer cancel()

	select {
	case result := <-results:
		return result.code, result.err
	case <-timeoutCtx.Done():
		return "", fmt.Errorf("authorization timeout after %v", authTimeout)
	}
}
