package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client клиент для работы с сервисом классификации текста
type Client struct {
	url        string
	token      string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента сервиса классификации.
// Пустой token означает запросы без авторизации.
func NewClient(url, token string, timeout time.Duration, log Logger) *Client {
	return &Client{
		url:   url,
		token: token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Classify классифицирует текст и возвращает первую (наиболее вероятную) метку
func (c *Client) Classify(ctx context.Context, text string) (*Classification, error) {
	payload, err := json.Marshal(classifyRequest{Inputs: text})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("Classifier request failed: %v", err)
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		c.log.Warn("Classifier returned status %d", resp.StatusCode)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var result classifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if len(result) == 0 {
		return nil, ErrEmptyResult
	}

	c.log.Info("Classified text: label=%s, score=%.4f", result[0].Label, result[0].Score)
	return &result[0], nil
}
