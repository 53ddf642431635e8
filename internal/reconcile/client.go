// Package reconcile propagates locally-committed orders to the remote order
// service, best effort. A single attempt is made per order: no retry, no
// timeout beyond what the supplied http.Client carries. The outcome never
// alters the already-committed local record.
package reconcile

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"pawfinder/internal/domain"
)

// Client posts orders to the remote order endpoint.
type Client struct {
	baseURL string
	httpc   *http.Client
	logger  *log.Logger
}

func New(baseURL string, httpc *http.Client, logger *log.Logger) *Client {
	if httpc == nil {
		httpc = http.DefaultClient
	}
	return &Client{baseURL: baseURL, httpc: httpc, logger: logger}
}

type orderRequest struct {
	User           domain.Buyer       `json:"user"`
	Items          []domain.OrderItem `json:"items"`
	PaymentMethod  string             `json:"payment_method"`
	PaymentChannel string             `json:"payment_channel,omitempty"`
	Notes          string             `json:"notes,omitempty"`
}

// Response is the remote service's success payload.
type Response struct {
	OrderID string          `json:"order_id"`
	Order   json.RawMessage `json:"order,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// Outcome reports the single remote attempt. When OK is false the order is
// still committed locally; LocalOrder carries it for the caller to surface.
type Outcome struct {
	OK         bool
	Response   *Response
	LocalOrder domain.Order
	Err        error
}

// Push issues the one remote write attempt for an already-committed order.
// Any non-2xx status is treated as failure.
func (c *Client) Push(ctx context.Context, order domain.Order) Outcome {
	body, err := json.Marshal(orderRequest{
		User:           order.Buyer,
		Items:          order.Items,
		PaymentMethod:  order.PaymentMethod,
		PaymentChannel: order.PaymentChannel,
		Notes:          order.Notes,
	})
	if err != nil {
		return c.failed(order, fmt.Errorf("encode order: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/order", bytes.NewReader(body))
	if err != nil {
		return c.failed(order, fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return c.failed(order, fmt.Errorf("post order: %w", err))
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	var parsed Response
	_ = json.Unmarshal(raw, &parsed)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := parsed.Error
		if msg == "" {
			msg = resp.Status
		}
		return c.failed(order, fmt.Errorf("remote rejected order: %s", msg))
	}

	return Outcome{OK: true, Response: &parsed, LocalOrder: order}
}

func (c *Client) failed(order domain.Order, err error) Outcome {
	if c.logger != nil {
		c.logger.Printf("reconcile: order %s kept locally: %v", order.ID, err)
	}
	return Outcome{OK: false, LocalOrder: order, Err: err}
}
