package rag

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sandevgo/docbot/internal/core"
	"github.com/sandevgo/docbot/pkg/retry"
)

const (
	defaultRequestTimeout = 30 * time.Second
	maxResponseSize       = 8 << 20
)

// jsonClient performs JSON round trips with retries on transient failures.
// Client errors (4xx) are not retried.
type jsonClient struct {
	client  *http.Client
	retrier *retry.Retrier
}

func newJSONClient(timeout time.Duration, retrier *retry.Retrier) jsonClient {
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	if retrier == nil {
		retrier = retry.NoRetry()
	}
	return jsonClient{
		client:  &http.Client{Timeout: timeout},
		retrier: retrier,
	}
}

func (c jsonClient) postJSON(ctx context.Context, url string, body any, headers map[string]string, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}

	return c.retrier.Do(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
		if err != nil {
			return retry.Permanent(fmt.Errorf("create request: %w", err))
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("User-Agent", core.BotUserAgent)
		for k, v := range headers {
			req.Header.Set(k, v)
		}

		resp, err := c.client.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return retry.Permanent(fmt.Errorf("request: %w", err))
			}
			return fmt.Errorf("request: %w", err)
		}
		defer resp.Body.Close()

		data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
		if err != nil {
			return fmt.Errorf("read body: %w", err)
		}

		if resp.StatusCode != http.StatusOK {
			statusErr := fmt.Errorf("http %d: %s", resp.StatusCode, string(data))
			if resp.StatusCode < http.StatusInternalServerError && resp.StatusCode != http.StatusTooManyRequests {
				return retry.Permanent(statusErr)
			}
			return statusErr
		}

		if err := json.Unmarshal(data, out); err != nil {
			return retry.Permanent(fmt.Errorf("decode: %w", err))
		}
		return nil
	})
}
