// Package dispatch contains the HTTP client for the external dispatch
// service. The relay pushes assignment notifications through it; a non-2xx
// response or transport failure counts as an unacknowledged delivery.
package dispatch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"foodorder/internal/core/outbox"
)

// defaultTimeout bounds one delivery attempt end to end.
const defaultTimeout = 5 * time.Second

// HTTPNotifier implements DispatchNotifier over plain HTTP.
type HTTPNotifier struct {
	baseURL string
	client  *http.Client
}

// NewHTTPNotifier creates a notifier for the dispatch service at baseURL,
// e.g. "http://dispatch:8080".
func NewHTTPNotifier(baseURL string) *HTTPNotifier {
	return &HTTPNotifier{
		baseURL: baseURL,
		client:  &http.Client{Timeout: defaultTimeout},
	}
}

// NotifyAssignment posts the assignment to the dispatch service. Returns an
// error unless the service acknowledged with a 2xx status.
func (n *HTTPNotifier) NotifyAssignment(ctx context.Context, payload outbox.AssignmentPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		n.baseURL+"/assignments", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("dispatch service returned status %d", resp.StatusCode)
	}

	return nil
}
