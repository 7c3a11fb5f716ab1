package services

import (
	"context"
	"fmt"
	"time"

	"github.com/aksoyde/gradesphere/internal/app/models"
	"github.com/aksoyde/gradesphere/internal/pkg/apperrors"
	"github.com/aksoyde/gradesphere/internal/pkg/mlmodel"
)

// PredictionService invokes the external regression model with a
// feature vector. It never touches the record store; persisting a
// projection is the projection flow's business.
type PredictionService interface {
	Predict(ctx context.Context, vector models.FeatureVector) (float64, error)
}

// predictionServiceImpl implements the PredictionService interface
type predictionServiceImpl struct {
	model   mlmodel.Model
	timeout time.Duration
}

// NewPredictionService creates a new prediction service instance. The
// timeout bounds the encoder and regressor calls together; the model
// lives behind a process boundary and is not trusted to return.
func NewPredictionService(model mlmodel.Model, timeout time.Duration) PredictionService {
	return &predictionServiceImpl{
		model:   model,
		timeout: timeout,
	}
}

// Predict encodes the vector and runs the regressor, returning the
// first predicted value. The model output is passed through unclamped;
// an out-of-range projection is the model's to answer for.
func (s *predictionServiceImpl) Predict(ctx context.Context, vector models.FeatureVector) (float64, error) {
	if err := vector.Validate(); err != nil {
		return 0, apperrors.NewValidationError(err.Error())
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	encoded, err := s.model.Transform(ctx, vector.Row())
	if err != nil {
		return 0, fmt.Errorf("%w: encoder: %v", apperrors.ErrExternalModelFailure, err)
	}

	predictions, err := s.model.Predict(ctx, encoded)
	if err != nil {
		return 0, fmt.Errorf("%w: regressor: %v", apperrors.ErrExternalModelFailure, err)
	}
	if len(predictions) == 0 {
		return 0, fmt.Errorf("%w: regressor returned no predictions", apperrors.ErrExternalModelFailure)
	}

	return predictions[0], nil
}
