package llm

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

const maxResponseSize = 4 << 20

type baseProvider struct {
	client  *http.Client
	retrier *retry.Retrier
	baseURL string
	apiKey  string
	model   string
}

func newBaseProvider(baseURL, apiKey, model string, retrier *retry.Retrier) baseProvider {
	if retrier == nil {
		retrier = retry.NoRetry()
	}
	return baseProvider{
		client: &http.Client{
			Timeout: 120 * time.Second,
		},
		retrier: retrier,
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   model,
	}
}

func (b *baseProvider) doRequest(ctx context.Context, method, path string, body any, headers map[string]string) (*http.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, b.baseURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", core.BotUserAgent)

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request: %w", err)
	}
	return resp, nil
}

// post sends body as JSON and returns the raw 200 response payload.
// Transport failures, 429 and 5xx are retried; everything else is final.
func (b *baseProvider) post(ctx context.Context, path string, body any, headers map[string]string) ([]byte, error) {
	var data []byte
	err := b.retrier.Do(ctx, func() error {
		resp, err := b.doRequest(ctx, http.MethodPost, path, body, headers)
		if err != nil {
			if ctx.Err() != nil {
				return retry.Permanent(err)
			}
			return err
		}
		defer resp.Body.Close()

		payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
		if err != nil {
			return fmt.Errorf("read body: %w", err)
		}

		if resp.StatusCode != http.StatusOK {
			statusErr := fmt.Errorf("http %d: %s", resp.StatusCode, string(payload))
			if resp.StatusCode < http.StatusInternalServerError && resp.StatusCode != http.StatusTooManyRequests {
				return retry.Permanent(statusErr)
			}
			return statusErr
		}

		data = payload
		return nil
	})
	return data, err
}
