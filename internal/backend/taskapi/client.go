// Package taskapi implements the service.Service interface over the board's
// REST wire protocol.
package taskapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"weekboard/internal/config"
	"weekboard/internal/service"
)

// APITimeout is the default timeout for API calls.
const APITimeout = 5 * time.Second

// Client implements service.Service against a REST endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
	timeout    time.Duration
	logger     *slog.Logger
}

// New creates a client from config. If a token is stored, requests carry it
// as a bearer token.
func New(ctx context.Context, cfg *config.Config) (*Client, error) {
	settings, err := cfg.Load()
	if err != nil {
		return nil, err
	}

	httpClient := &http.Client{}
	if cfg.HasToken() {
		tokenData, err := os.ReadFile(cfg.TokenPath())
		if err != nil {
			return nil, fmt.Errorf("failed to read token.json: %w", err)
		}

		var token oauth2.Token
		if err := json.Unmarshal(tokenData, &token); err != nil {
			return nil, fmt.Errorf("invalid token.json: %w", err)
		}

		httpClient = oauth2.NewClient(ctx, oauth2.StaticTokenSource(&token))
	}

	timeout := APITimeout
	if settings.TimeoutSeconds > 0 {
		timeout = time.Duration(settings.TimeoutSeconds) * time.Second
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(settings.BaseURL, "/"),
		timeout:    timeout,
		logger:     slog.Default(),
	}, nil
}

// NewWithHTTPClient creates a client with a fixed base URL and HTTP client
// (for testing).
func NewWithHTTPClient(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		timeout:    APITimeout,
		logger:     slog.Default(),
	}
}

// wireTask is the task shape on the wire. The store may omit id, and may
// encode completed as a boolean or as 0/1.
type wireTask struct {
	ID        string   `json:"id"`
	Text      string   `json:"text"`
	Completed wireBool `json:"completed"`
}

// wireBool accepts JSON booleans as well as numeric 0/1.
type wireBool bool

func (b *wireBool) UnmarshalJSON(data []byte) error {
	switch string(bytes.TrimSpace(data)) {
	case "true":
		*b = true
	case "false", "null":
		*b = false
	default:
		var n float64
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("invalid completed value: %s", data)
		}
		*b = n != 0
	}
	return nil
}

// FetchTasks returns the tasks stored for one bucket, in store order.
func (c *Client) FetchTasks(ctx context.Context, bucket service.Bucket) ([]service.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	endpoint := fmt.Sprintf("%s/api/tasks?day=%s", c.baseURL, url.QueryEscape(string(bucket)))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var wire []wireTask
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, fmt.Errorf("invalid task list response: %w", err)
	}

	tasks := make([]service.Task, 0, len(wire))
	for _, w := range wire {
		tasks = append(tasks, service.Task{
			ID:          w.ID,
			Description: w.Text,
			Completed:   bool(w.Completed),
			Bucket:      bucket,
		})
	}
	return tasks, nil
}

// CreateTask stores a new task and returns the store-issued id. A success
// status with an unparseable body returns an empty id and no error; the
// board substitutes a local fallback id.
func (c *Client) CreateTask(ctx context.Context, bucket service.Bucket, text string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	payload, err := json.Marshal(map[string]string{
		"text": text,
		"day":  string(bucket),
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/tasks", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	body, err := c.do(req)
	if err != nil {
		return "", err
	}

	var created struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &created); err != nil {
		c.logger.Debug("malformed create response", "body", string(body), "error", err)
		return "", nil
	}
	return created.ID, nil
}

// UpdateTask applies the non-nil fields of patch to the task. Completing a
// task also records the completion time.
func (c *Client) UpdateTask(ctx context.Context, id string, patch service.TaskPatch) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	fields := make(map[string]any)
	if patch.Description != nil {
		fields["text"] = *patch.Description
	}
	if patch.Completed != nil {
		fields["completed"] = *patch.Completed
		if *patch.Completed {
			fields["completed_time"] = time.Now().UTC().Format(time.RFC3339)
		}
	}
	if patch.Bucket != nil {
		fields["day"] = string(*patch.Bucket)
	}

	payload, err := json.Marshal(fields)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.taskURL(id), bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	_, err = c.do(req)
	return err
}

// DeleteTask removes a task from the store.
func (c *Client) DeleteTask(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.taskURL(id), nil)
	if err != nil {
		return err
	}

	_, err = c.do(req)
	return err
}

func (c *Client) taskURL(id string) string {
	return fmt.Sprintf("%s/api/tasks/%s", c.baseURL, url.PathEscape(id))
}

// do sends the request and returns the response body. Non-success statuses
// become *service.StatusError; transport failures are wrapped.
func (c *Client) do(req *http.Request) ([]byte, error) {
	c.logger.Debug("api request", "method", req.Method, "url", req.URL.String())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, wrapError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, wrapError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &service.StatusError{
			Code: resp.StatusCode,
			Body: strings.TrimSpace(string(body)),
		}
	}
	return body, nil
}

// wrapError maps transport errors to user-friendly messages.
func wrapError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("request timed out")
	}
	return fmt.Errorf("request failed: %w", err)
}
