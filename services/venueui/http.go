package venueui

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
)

// HTTPRequester sends the DELETE to a server. Status codes are not inspected:
// only transport failures are errors.
type HTTPRequester struct {
	baseURL string
	client  *http.Client
}

// NewHTTPRequester creates a requester for baseURL. A nil client means a
// client with no timeout, leaving the limit to ctx.
func NewHTTPRequester(baseURL string, client *http.Client) *HTTPRequester {
	if client == nil {
		client = &http.Client{}
	}
	return &HTTPRequester{baseURL: strings.TrimRight(baseURL, "/"), client: client}
}

func (r *HTTPRequester) Delete(ctx context.Context, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, r.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending delete: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	return nil
}

// HTTPNavigator loads locations from a server and remembers the last one reached
type HTTPNavigator struct {
	baseURL string
	client  *http.Client

	mu       sync.Mutex
	location string
	visits   int
	status   int
}

// NewHTTPNavigator creates a navigator for baseURL
func NewHTTPNavigator(baseURL string, client *http.Client) *HTTPNavigator {
	if client == nil {
		client = &http.Client{}
	}
	return &HTTPNavigator{baseURL: strings.TrimRight(baseURL, "/"), client: client}
}

func (n *HTTPNavigator) Navigate(ctx context.Context, location string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, n.baseURL+location, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("loading %s: %w", location, err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	n.mu.Lock()
	n.location = location
	n.visits++
	n.status = resp.StatusCode
	n.mu.Unlock()

	return nil
}

// Location returns the last location loaded and its status code
func (n *HTTPNavigator) Location() (string, int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.location, n.status
}

// Visits counts completed navigations
func (n *HTTPNavigator) Visits() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.visits
}
