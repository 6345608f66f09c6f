package services

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/JosueEspinoza19/barber-ia-functions/internal/domain/entities"
	"github.com/JosueEspinoza19/barber-ia-functions/internal/domain/repositories"
)

const (
	safetyMarker     = "SAFETY"
	noPromptFeedback = "Sin feedback de prompt."
)

type HairstyleDomainService struct {
	gateway repositories.ModelGateway
	prompt  string
}

func NewHairstyleDomainService(gateway repositories.ModelGateway) *HairstyleDomainService {
	return &HairstyleDomainService{
		gateway: gateway,
		prompt:  HairstylePrompt(),
	}
}

// Analyze calls the gateway once and turns its reply into a result. The
// checks run in a fixed order (gateway error, text, suggestion json, image)
// and the first failing one decides the reported error.
func (s *HairstyleDomainService) Analyze(
	ctx context.Context,
	request *entities.AnalysisRequest,
) (*entities.AnalysisResult, error) {
	if err := s.validateRequest(request); err != nil {
		return nil, fmt.Errorf("request validation failed: %w", err)
	}

	uid := request.CallerID()
	logger := slog.With("uid", uid, "requestID", request.ID())

	logger.Info("Starting hairstyle analysis", "imageBytes", len(request.Image().Data()))
	response, err := s.gateway.GenerateContent(ctx, entities.NewGatewayRequest(request.Image(), s.prompt))
	if err != nil {
		logger.Error("Model gateway call failed", "error", err)
		if s.isSafetyBlock(err) {
			return nil, entities.NewAnalysisError(entities.KindGatewaySafetyBlock, uid, err)
		}
		return nil, entities.NewAnalysisError(entities.KindGatewayFailure, uid, err)
	}

	if response == nil {
		response = entities.NewModelResponse(nil, "")
	}

	rawText, image := ExtractResponseParts(response.Parts)

	if rawText == nil {
		logger.Error("Model returned no text", "promptFeedback", s.feedback(response))
		return nil, entities.NewAnalysisError(
			entities.KindMissingResponseText,
			uid,
			errors.New("no text part in model response"),
		)
	}

	suggestion, err := ParseSuggestion(*rawText, uid)
	if err != nil {
		logger.Error("Failed to parse suggestion", "error", err, "rawText", *rawText)
		return nil, err
	}

	if image == nil {
		logger.Error("Model returned no image", "promptFeedback", s.feedback(response))
		return nil, entities.NewAnalysisError(
			entities.KindMissingResponseImage,
			uid,
			errors.New("no inline image part in model response"),
		)
	}

	result, err := entities.NewAnalysisResult(suggestion, base64.StdEncoding.EncodeToString(image.Data))
	if err != nil {
		logger.Error("Failed to assemble result", "error", err)
		return nil, entities.NewAnalysisError(entities.KindUnknown, uid, err)
	}

	logger.Info("Hairstyle analysis completed", "imageMimeType", image.MIMEType)
	return result, nil
}

func (s *HairstyleDomainService) validateRequest(request *entities.AnalysisRequest) error {
	if request == nil {
		return fmt.Errorf("request is required")
	}

	if request.Image() == nil {
		return fmt.Errorf("image is required")
	}

	return nil
}

// isSafetyBlock matches the gateway's textual block marker. The gateway has
// no structured block code, so this is a substring check.
func (s *HairstyleDomainService) isSafetyBlock(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), safetyMarker)
}

func (s *HairstyleDomainService) feedback(response *entities.ModelResponse) string {
	if response.PromptFeedback == "" {
		return noPromptFeedback
	}
	return response.PromptFeedback
}
