// Package gateway — HTTP-клиент к удалённому API маршрутизации (источник истины для кэша).
// Ответ 2xx разбирается как JSON, остальное превращается в *APIError с доменной категорией.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Gunvolt24/oncall_routes/internal/domain"
	"github.com/Gunvolt24/oncall_routes/pkg/ctxmeta"
	"github.com/Gunvolt24/oncall_routes/pkg/metrics"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const maxErrorBody = 2048

// APIError — ответ удалённого API с кодом вне 2xx (Status == 0 — сбой транспорта).
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Status == 0 {
		return "remote api unavailable: " + e.Message
	}
	return fmt.Sprintf("remote api status=%d: %s", e.Status, e.Message)
}

// Unwrap — доменная категория ошибки для errors.Is.
func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusNotFound:
		return domain.ErrNotFound
	case http.StatusBadRequest, http.StatusConflict, http.StatusUnprocessableEntity:
		return domain.ErrValidation
	default:
		return domain.ErrRemoteUnavailable
	}
}

// Client — шлюз к удалённому API. Ретраев нет, таймаут — только у http.Client.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewClient — клиент с трассировкой исходящих запросов (otelhttp).
func NewClient(baseURL, token string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		token:   token,
		http: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// Request — выполняет запрос path (относительно baseURL) с query params и JSON-телом body.
// При 2xx ответ декодируется в out (если out != nil и тело не пустое).
func (c *Client) Request(ctx context.Context, method, path string, params url.Values, body, out any) error {
	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("gateway: build url: %w", err)
	}
	if len(params) > 0 {
		u.RawQuery = params.Encode()
	}

	var reader io.Reader
	if body != nil {
		blob, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("gateway: encode body: %w", err)
		}
		reader = bytes.NewReader(blob)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return fmt.Errorf("gateway: new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", c.token)
	}
	if rid, ok := ctxmeta.RequestIDFromContext(ctx); ok {
		req.Header.Set(ctxmeta.HeaderRequestID, rid)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		metrics.GatewayRequestDuration.WithLabelValues(method, "error").Observe(time.Since(start).Seconds())
		return fmt.Errorf("gateway: %s %s: %w", method, path, &APIError{Message: err.Error()})
	}
	defer resp.Body.Close()
	metrics.GatewayRequestDuration.WithLabelValues(method, statusClass(resp.StatusCode)).Observe(time.Since(start).Seconds())

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		blob, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("gateway: %s %s: %w", method, path, &APIError{
			Status:  resp.StatusCode,
			Message: errorMessage(resp.StatusCode, blob),
		})
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("gateway: %s %s: decode: %w", method, path, &APIError{Status: resp.StatusCode, Message: err.Error()})
	}
	return nil
}

// errorMessage — текст ошибки из {"detail": ...} / {"error": ...} или сырое тело.
func errorMessage(status int, blob []byte) string {
	var payload struct {
		Detail string `json:"detail"`
		Error  string `json:"error"`
	}
	if json.Unmarshal(blob, &payload) == nil {
		if payload.Detail != "" {
			return payload.Detail
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	if msg := strings.TrimSpace(string(blob)); msg != "" {
		return msg
	}
	return http.StatusText(status)
}

func statusClass(code int) string {
	return strconv.Itoa(code/100) + "xx"
}

func itemPath(collection, id string) string {
	return "/" + collection + "/" + url.PathEscape(id) + "/"
}
