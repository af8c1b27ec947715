// Package webhook builds, encodes, and delivers push event webhooks.
package webhook

import (
	"bytes"
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/notify-hook/pkg/version"
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
)

const (
	// EventHeader is the header carrying the event name.
	EventHeader = "X-Notify-Hook-Event"
	// DeliveryHeader is the header carrying the unique delivery id.
	DeliveryHeader = "X-Notify-Hook-Delivery"
)

// ErrDeliveryFailed is returned when a hook URL can't be reached or responds
// with a non-success status.
var ErrDeliveryFailed = errors.New("delivery failed")

// DeliveryError describes a failed delivery. It matches ErrDeliveryFailed.
type DeliveryError struct {
	// URL is the hook URL.
	URL string
	// StatusCode is the response status, zero when no response was received.
	StatusCode int
	// Err is the transport error, if any.
	Err error
}

// Error implements error.
func (e *DeliveryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", ErrDeliveryFailed, e.URL, e.Err)
	}
	return fmt.Sprintf("%s: %s: %d %s", ErrDeliveryFailed, e.URL, e.StatusCode, http.StatusText(e.StatusCode))
}

// Unwrap returns the transport error.
func (e *DeliveryError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrDeliveryFailed.
func (e *DeliveryError) Is(target error) bool {
	return target == ErrDeliveryFailed
}

// NewHTTPClient returns an HTTP client for webhook deliveries. When caFile is
// set, the certificates it contains are trusted in addition to the system
// pool. A zero timeout never times out.
func NewHTTPClient(caFile string, timeout time.Duration) (*http.Client, error) {
	if caFile == "" {
		return &http.Client{Timeout: timeout}, nil
	}

	pem, err := os.ReadFile(caFile)
	if err != nil {
		return nil, fmt.Errorf("read CA file: %w", err)
	}

	pool, err := x509.SystemCertPool()
	if err != nil || pool == nil {
		pool = x509.NewCertPool()
	}
	if !pool.AppendCertsFromPEM(pem) {
		return nil, fmt.Errorf("read CA file: no certificates found in %s", caFile)
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSClientConfig = &tls.Config{
		RootCAs:    pool,
		MinVersion: tls.VersionTLS12,
	}

	return &http.Client{Transport: transport, Timeout: timeout}, nil
}

// Client delivers webhooks.
type Client struct {
	http   *http.Client
	logger *log.Logger
}

// NewClient returns a new webhook client. A nil HTTP client uses
// http.DefaultClient.
func NewClient(c *http.Client, logger *log.Logger) *Client {
	if c == nil {
		c = http.DefaultClient
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Client{
		http:   c,
		logger: logger.WithPrefix("webhook"),
	}
}

// Deliver posts body to every URL in order. It stops at the first failed
// delivery and returns its *DeliveryError; there are no retries. When secret
// is not empty, the body is signed with it.
func (c *Client) Deliver(ctx context.Context, urls []string, event Event, ct ContentType, body []byte, secret []byte) error {
	for _, u := range urls {
		if err := c.Send(ctx, u, event, ct, body, secret); err != nil {
			return err
		}
	}

	return nil
}

// Send posts body to a single URL.
func (c *Client) Send(ctx context.Context, url string, event Event, ct ContentType, body []byte, secret []byte) error {
	headers := http.Header{}
	headers.Add("Content-Type", ct.String())
	headers.Add("User-Agent", "notify-hook/"+version.Version)
	headers.Add(EventHeader, event.String())

	id, err := uuid.NewUUID()
	if err != nil {
		return err
	}

	headers.Add(DeliveryHeader, id.String())

	if len(secret) > 0 {
		headers.Add(SignatureHeader, "sha1="+Sign(secret, body))
	}

	logger := c.logger.With("url", url, "event", event, "delivery", id.String())
	logger.Debug("sending webhook", "content-type", ct.Name(), "size", humanize.Bytes(uint64(len(body))))

	res, err := c.do(ctx, url, http.MethodPost, headers, bytes.NewReader(body))
	if err != nil {
		return &DeliveryError{URL: url, Err: err}
	}

	defer res.Body.Close() // nolint: errcheck
	_, _ = io.Copy(io.Discard, res.Body)

	if res.StatusCode < 200 || res.StatusCode > 299 {
		logger.Error("webhook delivery failed", "status", res.StatusCode)
		return &DeliveryError{URL: url, StatusCode: res.StatusCode}
	}

	logger.Info("webhook delivered", "status", res.StatusCode)
	return nil
}

// do sends a request.
// Caller must close the returned body.
func (c *Client) do(ctx context.Context, url string, method string, headers http.Header, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}

	req.Header = headers
	res, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}

	return res, nil
}
