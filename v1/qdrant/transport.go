package qdrant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Qdrant's REST API wraps every response in an envelope:
//
//	{ "result": ..., "status": "ok", "time": 0.0002 }
//
// On failure, status is an object instead of the string "ok":
//
//	{ "status": { "error": "Wrong input: ..." }, "time": 0.0001 }
type envelope struct {
	Result json.RawMessage `json:"result"`
	Status apiStatus       `json:"status"`
	Time   float64         `json:"time"`
}

// apiStatus tolerates both wire shapes of the status field.
type apiStatus struct {
	Error string
}

func (s *apiStatus) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		// "ok" (or "accepted") — no error.
		s.Error = ""
		return nil
	}
	var obj struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	s.Error = obj.Error
	return nil
}

// doJSON performs one synchronous request/response exchange with the engine.
// It marshals body (if non-nil) as JSON, bounds the call with the configured
// timeout, maps engine failures to the error taxonomy, and decodes the
// envelope's result field into out (if non-nil).
//
// The returned error carries the engine's diagnostic text verbatim; callers
// add the operation kind and target on top.
func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		payload = bytes.NewReader(data)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, u, payload)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.cfg.ApiKey != "" {
		req.Header.Set("api-key", c.cfg.ApiKey)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		if resp.StatusCode >= 300 {
			return mapEngineError(resp.StatusCode, strings.TrimSpace(string(raw)))
		}
		return fmt.Errorf("decode response: %w", err)
	}

	if resp.StatusCode >= 300 || env.Status.Error != "" {
		return mapEngineError(resp.StatusCode, env.Status.Error)
	}

	if out != nil && len(env.Result) > 0 {
		if err := json.Unmarshal(env.Result, out); err != nil {
			return fmt.Errorf("decode result: %w", err)
		}
	}
	return nil
}

// mapEngineError folds an engine failure into the error taxonomy, keeping
// the engine's diagnostic as the only discriminant the caller may have.
func mapEngineError(statusCode int, diag string) error {
	if diag == "" {
		diag = http.StatusText(statusCode)
	}
	switch {
	case statusCode == http.StatusNotFound || looksNotFound(diag):
		return fmt.Errorf("%w: %s", ErrNotFound, diag)
	case statusCode == http.StatusConflict || looksAlreadyExists(diag):
		return fmt.Errorf("%w: %s", ErrAlreadyExists, diag)
	default:
		return fmt.Errorf("engine http %d: %s", statusCode, diag)
	}
}

func looksNotFound(diag string) bool {
	return strings.Contains(diag, "doesn't exist") || strings.HasPrefix(diag, "Not found")
}

func looksAlreadyExists(diag string) bool {
	return strings.Contains(diag, "already exists")
}
