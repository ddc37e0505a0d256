package profiles

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/mealplanhq/mealplan-hub/internal/domain"
)

// HTTPSyncer mirrors profile snapshots to a remote endpoint. Sync failures
// are logged and dropped: the local profile stays authoritative.
type HTTPSyncer struct {
	url     string
	client  *http.Client
	timeout time.Duration
}

// NewHTTPSyncer creates a syncer posting to url with the given per-attempt
// timeout.
func NewHTTPSyncer(url string, timeout time.Duration) *HTTPSyncer {
	return &HTTPSyncer{
		url:     url,
		client:  &http.Client{Timeout: timeout},
		timeout: timeout,
	}
}

// SyncProfile pushes the profile JSON to the remote mirror.
func (s *HTTPSyncer) SyncProfile(ctx context.Context, p domain.UserProfile) {
	body, err := json.Marshal(p)
	if err != nil {
		log.Printf("profiles: marshal sync payload for %s: %v", p.UserID, err)
		return
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		log.Printf("profiles: build sync request for %s: %v", p.UserID, err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		log.Printf("profiles: sync %s: %v", p.UserID, err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		log.Printf("profiles: sync %s: remote returned %d", p.UserID, resp.StatusCode)
	}
}
