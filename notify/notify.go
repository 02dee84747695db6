// Package notify dispatches order confirmations to the property's order
// system. Dispatch is the side-effecting half of finalize: a failure or
// timeout here must leave the caller's order untouched so the next
// qualifying utterance can retry.
package notify

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"go.uber.org/zap"

	"github.com/grandvista/roomline/logging"
	"github.com/grandvista/roomline/order"
)

// Confirmation is the durable record of one finalized order. Token is
// the idempotency key: it stays constant across retries of the same
// finalize cycle, so the receiving system can drop duplicates if a
// dispatch succeeded but the response was lost.
type Confirmation struct {
	Token        string       `json:"token"`
	CallID       string       `json:"callId"`
	RoomLocation string       `json:"roomLocation"`
	Lines        []order.Line `json:"lines"`
	Totals       order.Totals `json:"totals"`
	PlacedAt     time.Time    `json:"placedAt"`
}

// Dispatcher records or forwards a confirmation. A nil error means the
// order has been durably accepted.
type Dispatcher interface {
	Dispatch(ctx context.Context, conf Confirmation) error
}

// WebhookDispatcher POSTs confirmations as JSON to a fixed endpoint.
type WebhookDispatcher struct {
	url     string
	client  *http.Client
	timeout time.Duration
	log     *zap.Logger
}

// NewWebhookDispatcher creates a dispatcher with a bounded per-dispatch
// timeout. A timeout is treated identically to a failure by callers.
func NewWebhookDispatcher(url string, timeout time.Duration) *WebhookDispatcher {
	return &WebhookDispatcher{
		url:     url,
		client:  &http.Client{Timeout: timeout},
		timeout: timeout,
		log:     logging.L(),
	}
}

// Dispatch sends the confirmation and fails on any non-2xx status.
func (d *WebhookDispatcher) Dispatch(ctx context.Context, conf Confirmation) error {
	body, err := sonic.Marshal(conf)
	if err != nil {
		return fmt.Errorf("failed to encode confirmation: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build confirmation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotency-Key", conf.Token)

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("confirmation dispatch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("confirmation rejected with status %d", resp.StatusCode)
	}

	d.log.Info("order confirmation dispatched",
		zap.String("call_id", conf.CallID),
		zap.String("token", conf.Token),
		zap.String("room", conf.RoomLocation),
		zap.Int("lines", len(conf.Lines)))
	return nil
}

// LogDispatcher records confirmations to the log only. Used in
// development when no order endpoint is configured.
type LogDispatcher struct {
	log *zap.Logger
}

// NewLogDispatcher returns a dispatcher that always succeeds.
func NewLogDispatcher() *LogDispatcher {
	return &LogDispatcher{log: logging.L()}
}

// Dispatch logs the confirmation and reports success.
func (d *LogDispatcher) Dispatch(_ context.Context, conf Confirmation) error {
	d.log.Info("order confirmation (log only)",
		zap.String("call_id", conf.CallID),
		zap.String("token", conf.Token),
		zap.String("room", conf.RoomLocation),
		zap.Int("lines", len(conf.Lines)),
		zap.Float64("grand_total", conf.Totals.GrandTotal))
	return nil
}
