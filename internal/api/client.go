package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	apperrors "backoffice/internal/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxErrorBodyLen = 512

// Client is the single outbound HTTP primitive shared by all panels. It
// speaks JSON, tags every request with an X-Request-Id, and maps failures
// onto the RequestError/RemoteError taxonomy. It attaches no auth headers
// itself; Sign is the seam for an external request-signing layer.
type Client struct {
	httpClient *http.Client
	logger     *zap.Logger

	Sign func(*http.Request)
}

func NewClient(timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

func (c *Client) GetJSON(ctx context.Context, url string, into any) error {
	return c.do(ctx, http.MethodGet, url, nil, into)
}

func (c *Client) PostJSON(ctx context.Context, url string, body, into any) error {
	return c.do(ctx, http.MethodPost, url, body, into)
}

func (c *Client) PutJSON(ctx context.Context, url string, body, into any) error {
	return c.do(ctx, http.MethodPut, url, body, into)
}

func (c *Client) PatchJSON(ctx context.Context, url string, body, into any) error {
	return c.do(ctx, http.MethodPatch, url, body, into)
}

func (c *Client) Delete(ctx context.Context, url string) error {
	return c.do(ctx, http.MethodDelete, url, nil, nil)
}

func (c *Client) do(ctx context.Context, method, url string, body, into any) error {
	requestID := uuid.New().String()
	logger := c.logger.With(
		zap.String("requestId", requestID),
		zap.String("method", method),
		zap.String("url", url),
	)

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return apperrors.NewRequestError("encoding request body", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return apperrors.NewRequestError("building request", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Sign != nil {
		c.Sign(req)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Warn("request failed", zap.Error(err))
		return apperrors.NewRequestError("executing request", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperrors.NewRequestError("reading response", err)
	}

	logger.Debug("request completed",
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apperrors.NewRemoteError(resp.StatusCode, serverMessage(respBody))
	}

	if into != nil {
		if err := json.Unmarshal(respBody, into); err != nil {
			return apperrors.NewRequestError("decoding response", err)
		}
	}

	return nil
}

// serverMessage pulls a human-readable message out of an error response.
// The backends answer either with a JSON object carrying "message" or
// "error", or with a bare text body.
func serverMessage(body []byte) string {
	var envelope struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		if envelope.Message != "" {
			return envelope.Message
		}
		if envelope.Error != "" {
			return envelope.Error
		}
	}

	text := strings.TrimSpace(string(body))
	if len(text) > maxErrorBodyLen {
		text = text[:maxErrorBodyLen]
	}
	if strings.HasPrefix(text, "{") || strings.HasPrefix(text, "<") {
		return ""
	}
	return text
}
