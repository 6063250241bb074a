package estatekit

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/estateops/estatekit/token"
)

// Client defines a public type used by estatekit APIs.
//
// Client is the facade built by [Builder.Build]. It owns the HTTP transport,
// the token store, the resource API groupings, metrics, the lifecycle event
// dispatcher, and the [SessionManager].
type Client struct {
	baseURL   string
	apiPrefix string
	userAgent string
	http      *http.Client
	tokens    *token.Store
	metrics   *Metrics
	events    *eventDispatcher
	log       *zap.Logger
	session   *SessionManager

	auth        *AuthAPI
	properties  *PropertiesAPI
	tenants     *TenantsAPI
	analytics   *AnalyticsAPI
	payments    *PaymentsAPI
	maintenance *MaintenanceAPI
	staff       *StaffAPI
}

// Session returns the session state machine owned by this client.
func (c *Client) Session() *SessionManager { return c.session }

// Auth describes the auth operation and its observable behavior.
func (c *Client) Auth() *AuthAPI { return c.auth }

// Properties describes the properties operation and its observable behavior.
func (c *Client) Properties() *PropertiesAPI { return c.properties }

// Tenants describes the tenants operation and its observable behavior.
func (c *Client) Tenants() *TenantsAPI { return c.tenants }

// Analytics describes the analytics operation and its observable behavior.
func (c *Client) Analytics() *AnalyticsAPI { return c.analytics }

// Payments describes the payments operation and its observable behavior.
func (c *Client) Payments() *PaymentsAPI { return c.payments }

// Maintenance describes the maintenance operation and its observable behavior.
func (c *Client) Maintenance() *MaintenanceAPI { return c.maintenance }

// Staff describes the staff operation and its observable behavior.
func (c *Client) Staff() *StaffAPI { return c.staff }

// MetricsSnapshot describes the metricssnapshot operation and its observable behavior.
func (c *Client) MetricsSnapshot() MetricsSnapshot {
	if c == nil || c.metrics == nil {
		return MetricsSnapshot{Counters: map[MetricID]uint64{}}
	}
	return c.metrics.Snapshot()
}

// EventsDropped reports lifecycle events discarded under dispatcher backpressure.
func (c *Client) EventsDropped() uint64 {
	if c == nil || c.events == nil {
		return 0
	}
	return c.events.Dropped()
}

// Close drains and stops the event dispatcher.
func (c *Client) Close() {
	if c == nil {
		return
	}
	if c.events != nil {
		c.events.Close()
	}
}

func (c *Client) metricInc(id MetricID) {
	if c == nil || c.metrics == nil {
		return
	}
	c.metrics.Inc(id)
}

// Do issues one HTTP call against the backend's /api-prefixed namespace and
// returns the [Result] envelope. It never returns a Go error: transport
// failures, non-2xx statuses, and encode failures are all represented in the
// envelope. A nil body is omitted entirely — some endpoints (logout) send
// none. The bearer token is attached when the token store resolves one.
func (c *Client) Do(ctx context.Context, method, path string, body any, headers map[string]string) Result {
	if c == nil || c.http == nil {
		return Result{Err: ErrClientNotReady.Error()}
	}
	if ctx == nil {
		ctx = context.Background()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return Result{Err: "encode request body: " + err.Error()}
		}
		reader = bytes.NewReader(encoded)
	}

	requestID := uuid.NewString()
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+c.apiPrefix+path, reader)
	if err != nil {
		return Result{Err: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if tok, ok := c.tokens.Token(); ok {
		req.Header.Set("Authorization", token.BearerHeader(tok))
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.metricInc(MetricRequestNetworkError)
		c.log.Debug("request transport failure",
			zap.String("method", method),
			zap.String("path", path),
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		return Result{Err: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.metricInc(MetricRequestNetworkError)
		return Result{Status: resp.StatusCode, Err: "read response body: " + err.Error()}
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		data, shape := normalizeBody(raw)
		c.metricInc(MetricRequestSuccess)
		if shape == ShapeWrapped {
			c.metricInc(MetricResponseWrapped)
		}
		c.log.Debug("request ok",
			zap.String("method", method),
			zap.String("path", path),
			zap.String("request_id", requestID),
			zap.Int("status", resp.StatusCode),
			zap.Stringer("shape", shape),
		)
		return Result{Success: true, Data: data, Status: resp.StatusCode, Shape: shape}
	}

	c.metricInc(MetricRequestHTTPError)
	message := errorMessage(raw, resp.StatusCode)
	c.log.Debug("request failed",
		zap.String("method", method),
		zap.String("path", path),
		zap.String("request_id", requestID),
		zap.Int("status", resp.StatusCode),
		zap.String("error", message),
	)
	return Result{Status: resp.StatusCode, Err: message}
}

// Get describes the get operation and its observable behavior.
func (c *Client) Get(ctx context.Context, path string) Result {
	return c.Do(ctx, http.MethodGet, path, nil, nil)
}

// Post describes the post operation and its observable behavior.
func (c *Client) Post(ctx context.Context, path string, body any) Result {
	return c.Do(ctx, http.MethodPost, path, body, nil)
}

// Put describes the put operation and its observable behavior.
func (c *Client) Put(ctx context.Context, path string, body any) Result {
	return c.Do(ctx, http.MethodPut, path, body, nil)
}

// Patch describes the patch operation and its observable behavior.
func (c *Client) Patch(ctx context.Context, path string, body any) Result {
	return c.Do(ctx, http.MethodPatch, path, body, nil)
}

// Delete describes the delete operation and its observable behavior.
func (c *Client) Delete(ctx context.Context, path string) Result {
	return c.Do(ctx, http.MethodDelete, path, nil, nil)
}
