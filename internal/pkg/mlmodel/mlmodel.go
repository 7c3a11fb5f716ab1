// Package mlmodel is the boundary to the pre-trained grade regression
// model. The encoder and regressor artifacts live out of process in a
// small model server; this package only knows how to hand a feature row
// to the encoder and the encoded row to the regressor.
package mlmodel

import (
	"context"
	"errors"
)

// ErrMalformedOutput is returned when the model server answers with an
// empty or unreadable result.
var ErrMalformedOutput = errors.New("model returned malformed output")

// Encoder transforms a named feature row into the numeric encoding the
// regressor was trained on.
type Encoder interface {
	Transform(ctx context.Context, row map[string]interface{}) ([]float64, error)
}

// Regressor produces score predictions from encoded rows. The first
// element of the result is the projected average.
type Regressor interface {
	Predict(ctx context.Context, encoded []float64) ([]float64, error)
}

// Model bundles the two halves of the prediction pipeline
type Model interface {
	Encoder
	Regressor
}
