package entities

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/JosueEspinoza19/barber-ia-functions/internal/domain/valueobjects"
)

type AnalysisRequestID string

type AnalysisRequest struct {
	id        AnalysisRequestID
	callerID  string
	image     *valueobjects.ImageData
	createdAt time.Time
}

// NewAnalysisRequest validates the inbound call. The caller identity is
// checked before the image so an anonymous call never reports a bad payload.
func NewAnalysisRequest(callerID string, imageBase64 string) (*AnalysisRequest, error) {
	callerID = strings.TrimSpace(callerID)
	if callerID == "" {
		return nil, NewAnalysisError(KindUnauthenticated, "", errors.New("caller identity is required"))
	}

	image, err := valueobjects.NewImageDataFromBase64(imageBase64)
	if err != nil {
		analysisErr := NewAnalysisError(KindInvalidArgument, callerID, fmt.Errorf("invalid image: %w", err))
		if !errors.Is(err, valueobjects.ErrEmptyImage) {
			analysisErr.WithMessage(MessageInvalidImage)
		}
		return nil, analysisErr
	}

	return &AnalysisRequest{
		id:        AnalysisRequestID(uuid.NewString()),
		callerID:  callerID,
		image:     image,
		createdAt: time.Now(),
	}, nil
}

func (r *AnalysisRequest) ID() AnalysisRequestID {
	return r.id
}

func (r *AnalysisRequest) CallerID() string {
	return r.callerID
}

func (r *AnalysisRequest) Image() *valueobjects.ImageData {
	return r.image
}

func (r *AnalysisRequest) CreatedAt() time.Time {
	return r.createdAt
}

// PrepareImage normalizes the photo to JPEG, the only format the prompt
// contract sends to the gateway.
func (r *AnalysisRequest) PrepareImage() error {
	image, err := r.image.ToJPEG()
	if err != nil {
		return fmt.Errorf("failed to convert image to JPEG: %w", err)
	}
	r.image = image
	return nil
}
