package usecases

import (
	"context"
	"fmt"

	"github.com/JosueEspinoza19/barber-ia-functions/internal/domain/entities"
)

// FaceAnalyzer runs the extraction pipeline for one prepared request.
type FaceAnalyzer interface {
	Analyze(ctx context.Context, request *entities.AnalysisRequest) (*entities.AnalysisResult, error)
}

type AnalyzeFaceUseCase struct {
	analyzer FaceAnalyzer
}

func NewAnalyzeFaceUseCase(analyzer FaceAnalyzer) *AnalyzeFaceUseCase {
	return &AnalyzeFaceUseCase{
		analyzer: analyzer,
	}
}

type AnalyzeFaceInput struct {
	CallerID    string
	ImageBase64 string
}

type AnalyzeFaceOutput struct {
	SuggestionText    string
	EditedImageBase64 string
}

func (uc *AnalyzeFaceUseCase) Execute(ctx context.Context, input AnalyzeFaceInput) (*AnalyzeFaceOutput, error) {
	request, err := entities.NewAnalysisRequest(input.CallerID, input.ImageBase64)
	if err != nil {
		return nil, err
	}

	if err := request.PrepareImage(); err != nil {
		return nil, entities.NewAnalysisError(
			entities.KindInvalidArgument,
			request.CallerID(),
			fmt.Errorf("image preparation failed: %w", err),
		).WithMessage(entities.MessageInvalidImage)
	}

	result, err := uc.analyzer.Analyze(ctx, request)
	if err != nil {
		return nil, err
	}

	return &AnalyzeFaceOutput{
		SuggestionText:    result.SuggestionText(),
		EditedImageBase64: result.EditedImageBase64(),
	}, nil
}
