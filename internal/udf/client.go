package udf

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"unicode/utf8"

	"github.com/goldyfruit/udf-inventory/internal/types"
)

type Client struct {
	endpoint   *url.URL
	userAgent  string
	httpClient *http.Client
}

// APIError reports a transport failure or a non-2xx response.
type APIError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *APIError) Error() string {
	if e.StatusCode >= 400 {
		return fmt.Sprintf("fetching %s: metadata API error (status %d)", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

type PayloadKind string

const (
	PayloadEncoding PayloadKind = "encoding"
	PayloadJSON     PayloadKind = "json"
	PayloadShape    PayloadKind = "shape"
)

// PayloadError reports a response body that cannot be used as a deployment
// document.
type PayloadError struct {
	URL  string
	Kind PayloadKind
	Err  error
}

func (e *PayloadError) Error() string {
	switch e.Kind {
	case PayloadEncoding:
		return fmt.Sprintf("incorrect encoding of payload fetched from %s", e.URL)
	case PayloadJSON:
		return fmt.Sprintf("incorrect JSON payload from %s: %v", e.URL, e.Err)
	default:
		return fmt.Sprintf("unexpected deployment payload from %s: %v", e.URL, e.Err)
	}
}

func (e *PayloadError) Unwrap() error {
	return e.Err
}

// NewClient builds a client for the deployment resource under rawURL.
func NewClient(rawURL, userAgent string) (*Client, error) {
	target, err := DeploymentURL(rawURL)
	if err != nil {
		return nil, err
	}
	parsed, err := url.Parse(target)
	if err != nil {
		return nil, fmt.Errorf("invalid metadata URL: %w", err)
	}
	return &Client{
		endpoint:   parsed,
		userAgent:  userAgent,
		httpClient: &http.Client{},
	}, nil
}

func (c *Client) URL() string {
	return c.endpoint.String()
}

// FetchDeployment performs a single GET against the deployment resource and
// returns its component records in document order.
func (c *Client) FetchDeployment(ctx context.Context) ([]types.Component, error) {
	target := c.endpoint.String()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, &APIError{URL: target, Err: err}
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &APIError{URL: target, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{URL: target, StatusCode: resp.StatusCode, Err: fmt.Errorf("status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &APIError{URL: target, StatusCode: resp.StatusCode, Err: err}
	}
	return decodeDeployment(target, body)
}

func decodeDeployment(target string, body []byte) ([]types.Component, error) {
	if !utf8.Valid(body) {
		return nil, &PayloadError{URL: target, Kind: PayloadEncoding, Err: fmt.Errorf("body is not valid UTF-8")}
	}

	var document any
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()
	if err := decoder.Decode(&document); err != nil {
		return nil, &PayloadError{URL: target, Kind: PayloadJSON, Err: err}
	}
	if decoder.More() {
		return nil, &PayloadError{URL: target, Kind: PayloadJSON, Err: fmt.Errorf("trailing data after JSON document")}
	}

	root, ok := document.(map[string]any)
	if !ok {
		return nil, &PayloadError{URL: target, Kind: PayloadShape, Err: fmt.Errorf("document is not an object")}
	}
	if _, ok := root["deployment"].(map[string]any); !ok {
		return nil, &PayloadError{URL: target, Kind: PayloadShape, Err: fmt.Errorf("missing deployment object")}
	}

	raw, status := Lookup(root, "deployment.components")
	switch status {
	case Empty:
		return nil, nil
	case Present:
	default:
		return nil, &PayloadError{URL: target, Kind: PayloadShape, Err: fmt.Errorf("deployment components %s", status)}
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, &PayloadError{URL: target, Kind: PayloadShape, Err: fmt.Errorf("deployment components is not a list")}
	}

	components := make([]types.Component, 0, len(list))
	for _, item := range list {
		record, _ := item.(map[string]any)
		components = append(components, types.Component(record))
	}
	return components, nil
}
