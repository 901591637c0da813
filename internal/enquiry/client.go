package enquiry

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/GateFare/GateFare/internal/domain"
	"github.com/GateFare/GateFare/internal/observability"
)

// Client delivers booking and enquiry payloads to the notification endpoint.
// Delivery semantics stop at the status code: 2xx means accepted, anything
// else is a failure the caller may retry. No retries happen here.
type Client struct {
	url        string
	httpClient *http.Client
	logger     observability.Logger
}

func NewClient(url string, logger observability.Logger) *Client {
	return &Client{
		url: url,
		httpClient: &http.Client{
			Timeout:   15 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		logger: logger,
	}
}

func (c *Client) SubmitBooking(ctx context.Context, req domain.BookingRequest) error {
	return c.post(ctx, req)
}

func (c *Client) SubmitEnquiry(ctx context.Context, req domain.EnquiryRequest) error {
	return c.post(ctx, req)
}

func (c *Client) post(ctx context.Context, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "encode payload")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	httpReq.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	observability.SubmissionDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		return errors.Wrap(err, "post to notification endpoint")
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.WithField("status", resp.StatusCode).Warn("notification endpoint refused payload")
		return errors.Newf("unexpected status %d from notification endpoint", resp.StatusCode)
	}
	return nil
}
