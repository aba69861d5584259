// Package workbench is the Cloudera ML API client behind every tool. Each
// operation validates its parameters, performs at most one HTTP round trip
// (folder upload excepted), and converts every outcome into the uniform
// result envelope. Nothing here retries, caches, or keeps state between
// calls.
package workbench

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
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/codex-ml/workbench-mcp-server/internal/envelope"
)

const maxResponseBytes = 8 << 20

// Runtime used for jobs when the caller names none. ML Runtime projects
// reject job payloads without a runtime identifier.
const defaultRuntimeIdentifier = "docker.repository.cloudera.com/cloudera/cdsw/ml-runtime-jupyterlab-python3.10-standard:2024.10.1-b12"

// Options configures a Client.
type Options struct {
	// Host is the workbench base URL, normalized on construction.
	Host string
	// APIKey is the bearer token.
	APIKey string
	// ProjectID is the default project scope. Optional.
	ProjectID string
	// Timeout bounds every API call.
	Timeout time.Duration
	// UploadInterval paces sequential file uploads.
	UploadInterval time.Duration
	// Logger receives request-level debug logging. Optional.
	Logger *slog.Logger
	// HTTPClient overrides the default client. Used by tests.
	HTTPClient *http.Client
}

// Client issues workbench API calls. Safe for concurrent use: it holds no
// mutable state beyond the rate limiter pacing uploads.
type Client struct {
	host       string
	apiKey     string
	projectID  string
	httpClient *http.Client
	logger     *slog.Logger
	uploads    *rate.Limiter
}

// New builds a Client, normalizing the configured host.
func New(opts Options) (*Client, error) {
	host, err := NormalizeHost(opts.Host)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(opts.APIKey) == "" {
		return nil, errors.New("missing workbench api key")
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}

	uploads := rate.NewLimiter(rate.Inf, 1)
	if opts.UploadInterval > 0 {
		uploads = rate.NewLimiter(rate.Every(opts.UploadInterval), 1)
	}

	return &Client{
		host:       host,
		apiKey:     strings.TrimSpace(opts.APIKey),
		projectID:  strings.TrimSpace(opts.ProjectID),
		httpClient: httpClient,
		logger:     opts.Logger,
		uploads:    uploads,
	}, nil
}

// Host returns the normalized base URL.
func (c *Client) Host() string {
	return c.host
}

// DefaultProjectID returns the configured default project scope.
func (c *Client) DefaultProjectID() string {
	return c.projectID
}

// resolveProject applies the project-scope precedence: explicit parameter,
// then configured default.
func (c *Client) resolveProject(params Params) (string, error) {
	if id := params.String("project_id"); id != "" {
		return id, nil
	}
	if c.projectID != "" {
		return c.projectID, nil
	}
	return "", errors.New("Project ID is required but not provided in parameters or configuration")
}

// v2 builds an /api/v2 URL from escaped path segments.
func (c *Client) v2(segments ...string) string {
	return c.apiURL("v2", segments...)
}

// v1 builds an /api/v1 URL. Only GetModel, GetModelDeployment, and
// GetRuntimes live there; the platform has not migrated them.
func (c *Client) v1(segments ...string) string {
	return c.apiURL("v1", segments...)
}

func (c *Client) apiURL(version string, segments ...string) string {
	parts := make([]string, 0, len(segments))
	for _, s := range segments {
		parts = append(parts, url.PathEscape(s))
	}
	return c.host + "/api/" + version + "/" + strings.Join(parts, "/")
}

// do performs one HTTP call and classifies the outcome. A nil map with a
// nil error means a success with an empty body (DELETE responses).
func (c *Client) do(ctx context.Context, method, requestURL string, body any) (map[string]any, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.logger != nil {
		c.logger.Debug("workbench call", "method", method, "url", requestURL)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("API request error: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("API request error: read response: %w", err)
	}
	trimmed := strings.TrimSpace(string(data))
	ok := resp.StatusCode >= 200 && resp.StatusCode < 300

	if trimmed == "" {
		if ok {
			return nil, nil
		}
		return nil, fmt.Errorf("API request error: status %d", resp.StatusCode)
	}

	var parsed map[string]any
	if err := json.Unmarshal([]byte(trimmed), &parsed); err != nil {
		if ok {
			return nil, &ParseError{Raw: trimmed}
		}
		return nil, fmt.Errorf("API request error: status %d: %s", resp.StatusCode, trimmed)
	}

	if rawErr, present := parsed["error"]; present {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: "Unknown error"}
		if errObj, isMap := rawErr.(map[string]any); isMap {
			apiErr.Details = errObj
			if msg, isStr := errObj["message"].(string); isStr && msg != "" {
				apiErr.Message = msg
			}
		} else if rawErr != nil {
			apiErr.Message = fmt.Sprint(rawErr)
		}
		return nil, apiErr
	}

	if !ok {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: "Unknown error", Details: parsed}
		if msg, isStr := parsed["message"].(string); isStr && msg != "" {
			apiErr.Message = msg
		}
		return nil, apiErr
	}

	return parsed, nil
}

// failure converts an internal error into the failure envelope shape the
// caller expects for that error class.
func failure(err error) envelope.Result {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		res := envelope.Failf("API error: %s", apiErr.Message)
		if apiErr.Details != nil {
			res = res.With("details", apiErr.Details)
		}
		return res
	}
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return envelope.Fail("Failed to parse response").With("raw_response", parseErr.Raw)
	}
	return envelope.Fail(err.Error())
}
