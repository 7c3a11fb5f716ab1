package mlmodel

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// HTTPModel talks to the model server over JSON. The server wraps the
// serialized encoder and regressor artifacts and exposes them as
// /transform and /predict endpoints.
type HTTPModel struct {
	baseURL string
	client  *http.Client
}

// NewHTTPModel creates a model client. The timeout bounds every call
// into the model server; the caller does not get to wait on it forever.
func NewHTTPModel(baseURL string, timeout time.Duration) *HTTPModel {
	return &HTTPModel{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

type transformRequest struct {
	Row map[string]interface{} `json:"row"`
}

type transformResponse struct {
	Encoded []float64 `json:"encoded"`
}

type predictRequest struct {
	Encoded []float64 `json:"encoded"`
}

type predictResponse struct {
	Predictions []float64 `json:"predictions"`
}

// Transform encodes a feature row through the column transformer
func (m *HTTPModel) Transform(ctx context.Context, row map[string]interface{}) ([]float64, error) {
	var resp transformResponse
	if err := m.post(ctx, "/transform", transformRequest{Row: row}, &resp); err != nil {
		return nil, err
	}
	if len(resp.Encoded) == 0 {
		return nil, ErrMalformedOutput
	}
	return resp.Encoded, nil
}

// Predict runs the regressor over an encoded row
func (m *HTTPModel) Predict(ctx context.Context, encoded []float64) ([]float64, error) {
	var resp predictResponse
	if err := m.post(ctx, "/predict", predictRequest{Encoded: encoded}, &resp); err != nil {
		return nil, err
	}
	if len(resp.Predictions) == 0 {
		return nil, ErrMalformedOutput
	}
	return resp.Predictions, nil
}

func (m *HTTPModel) post(ctx context.Context, path string, payload interface{}, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode model request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build model request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("model server call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("model server returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedOutput, err)
	}

	return nil
}
