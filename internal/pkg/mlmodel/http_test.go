package mlmodel

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newModelServer(t *testing.T, encoded, predictions []float64) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/transform", func(w http.ResponseWriter, r *http.Request) {
		var req transformRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.NotEmpty(t, req.Row)
		_ = json.NewEncoder(w).Encode(transformResponse{Encoded: encoded})
	})
	mux.HandleFunc("/predict", func(w http.ResponseWriter, r *http.Request) {
		var req predictRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, encoded, req.Encoded)
		_ = json.NewEncoder(w).Encode(predictResponse{Predictions: predictions})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestHTTPModelTransformAndPredict(t *testing.T) {
	srv := newModelServer(t, []float64{1, 0, 0.5}, []float64{81.25})
	model := NewHTTPModel(srv.URL, time.Second)

	row := map[string]interface{}{"Gender": "Female", "Household_Income": 2}
	encoded, err := model.Transform(context.Background(), row)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0, 0.5}, encoded)

	preds, err := model.Predict(context.Background(), encoded)
	require.NoError(t, err)
	assert.Equal(t, []float64{81.25}, preds)
}

func TestHTTPModelEmptyOutput(t *testing.T) {
	srv := newModelServer(t, nil, nil)
	model := NewHTTPModel(srv.URL, time.Second)

	_, err := model.Transform(context.Background(), map[string]interface{}{"Gender": "Male"})
	assert.ErrorIs(t, err, ErrMalformedOutput)
}

func TestHTTPModelServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	model := NewHTTPModel(srv.URL, time.Second)
	_, err := model.Predict(context.Background(), []float64{1})
	assert.Error(t, err)
}
