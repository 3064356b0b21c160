package guardclient

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

	"stay-command-core/internal/domain/guard"
	"stay-command-core/internal/pkg/errs"
)

var ErrUnexpectedStatus = errs.New("availability guard returned unexpected status")

// HTTPClient talks to the availability-guard service over JSON/HTTP.
// Timeouts come from the caller's context.
type HTTPClient struct {
	baseURL string
	client  *http.Client
}

func NewHTTPClient(baseURL string, client *http.Client) *HTTPClient {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

type lockRequestBody struct {
	TenantID      string  `json:"tenantId"`
	ReservationID string  `json:"reservationId"`
	RoomTypeID    string  `json:"roomTypeId"`
	RoomID        *string `json:"roomId,omitempty"`
	Quantity      int     `json:"quantity"`
	StayStart     string  `json:"stayStart"`
	StayEnd       string  `json:"stayEnd"`
	Reason        string  `json:"reason"`
	CorrelationID string  `json:"correlationId,omitempty"`
}

type releaseRequestBody struct {
	TenantID      string `json:"tenantId"`
	ReservationID string `json:"reservationId"`
	Reason        string `json:"reason"`
	CorrelationID string `json:"correlationId,omitempty"`
}

func (c *HTTPClient) Lock(ctx context.Context, req guard.LockRequest) (guard.LockResult, error) {
	body := lockRequestBody{
		TenantID:      req.TenantID.String(),
		ReservationID: req.ReservationID.String(),
		RoomTypeID:    req.RoomTypeID.String(),
		Quantity:      req.Quantity,
		StayStart:     req.StayStart.Format(time.DateOnly),
		StayEnd:       req.StayEnd.Format(time.DateOnly),
		Reason:        req.Reason,
		CorrelationID: req.CorrelationID,
	}
	if req.RoomID != nil {
		room := req.RoomID.String()
		body.RoomID = &room
	}
	if body.Quantity <= 0 {
		body.Quantity = 1
	}

	var result guard.LockResult
	if err := c.post(ctx, "/v1/locks", body, &result); err != nil {
		return guard.LockResult{}, err
	}
	switch result.Status {
	case guard.StatusLocked:
		if result.LockID == "" {
			return guard.LockResult{}, errs.New("availability guard granted a lock without an id")
		}
	case guard.StatusSkipped:
	default:
		return guard.LockResult{}, errs.Newf("availability guard returned unknown lock status %q", result.Status)
	}
	return result, nil
}

func (c *HTTPClient) Release(ctx context.Context, req guard.ReleaseRequest) error {
	if req.LockID == "" {
		return nil
	}
	body := releaseRequestBody{
		TenantID:      req.TenantID.String(),
		ReservationID: req.ReservationID.String(),
		Reason:        req.Reason,
		CorrelationID: req.CorrelationID,
	}
	return c.post(ctx, "/v1/locks/"+url.PathEscape(req.LockID)+"/release", body, nil)
}

func (c *HTTPClient) post(ctx context.Context, path string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode guard request: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build guard request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("guard request %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return errs.Wrapf(ErrUnexpectedStatus, "%s %s: %s", path, resp.Status, strings.TrimSpace(string(snippet)))
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode guard response: %w", err)
	}
	return nil
}
