package external

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"cloud.google.com/go/vertexai/genai"

	"github.com/JosueEspinoza19/barber-ia-functions/internal/domain/entities"
	"github.com/JosueEspinoza19/barber-ia-functions/internal/domain/repositories"
	"github.com/JosueEspinoza19/barber-ia-functions/internal/domain/valueobjects"
)

var vertexHarmCategories = map[valueobjects.HarmCategory]genai.HarmCategory{
	valueobjects.HarmCategoryHarassment:       genai.HarmCategoryHarassment,
	valueobjects.HarmCategoryHateSpeech:       genai.HarmCategoryHateSpeech,
	valueobjects.HarmCategorySexuallyExplicit: genai.HarmCategorySexuallyExplicit,
	valueobjects.HarmCategoryDangerousContent: genai.HarmCategoryDangerousContent,
}

var vertexThresholds = map[valueobjects.SafetyThreshold]genai.HarmBlockThreshold{
	valueobjects.BlockNone:           genai.HarmBlockNone,
	valueobjects.BlockOnlyHigh:       genai.HarmBlockOnlyHigh,
	valueobjects.BlockMediumAndAbove: genai.HarmBlockMediumAndAbove,
	valueobjects.BlockLowAndAbove:    genai.HarmBlockLowAndAbove,
}

type VertexAIService struct {
	pool   repositories.VertexAIClientPool
	params *valueobjects.GenerationParameters
}

func NewVertexAIService(
	pool repositories.VertexAIClientPool,
	params *valueobjects.GenerationParameters,
) repositories.ModelGateway {
	return &VertexAIService{
		pool:   pool,
		params: params,
	}
}

func (s *VertexAIService) GenerateContent(
	ctx context.Context,
	request *entities.GatewayRequest,
) (*entities.ModelResponse, error) {
	client, err := s.pool.GetVertexAIClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get VertexAI client: %w", err)
	}

	model := client.GenerativeModel(s.params.Model())
	model.SafetySettings = s.safetySettings()

	ctx, cancel := context.WithTimeout(ctx, s.params.Timeout())
	defer cancel()

	slog.Info("GenerateContent", "backend", "vertex", "model", s.params.Model(), "imageBytes", len(request.Image().Data()))

	resp, err := model.GenerateContent(ctx,
		genai.Blob{MIMEType: request.Image().MimeType(), Data: request.Image().Data()},
		genai.Text(request.Prompt()),
	)
	if err != nil {
		var blocked *genai.BlockedError
		if errors.As(err, &blocked) {
			return nil, describeBlockedError(blocked, err)
		}
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	return convertVertexResponse(resp), nil
}

func (s *VertexAIService) safetySettings() []*genai.SafetySetting {
	threshold := vertexThresholds[s.params.SafetyThreshold()]

	settings := make([]*genai.SafetySetting, 0, len(valueobjects.HarmCategories))
	for _, category := range valueobjects.HarmCategories {
		settings = append(settings, &genai.SafetySetting{
			Category:  vertexHarmCategories[category],
			Threshold: threshold,
		})
	}
	return settings
}

// describeBlockedError puts the SAFETY marker in the message when the block
// was for a safety reason. The SDK reports reasons as enum names such as
// BlockedReasonSafety or FinishReasonSafety.
func describeBlockedError(blocked *genai.BlockedError, err error) error {
	var reasons []string
	if blocked.PromptFeedback != nil {
		reasons = append(reasons, fmt.Sprint(blocked.PromptFeedback.BlockReason))
	}
	if blocked.Candidate != nil {
		reasons = append(reasons, fmt.Sprint(blocked.Candidate.FinishReason))
	}

	for _, reason := range reasons {
		if strings.Contains(strings.ToUpper(reason), "SAFETY") {
			return fmt.Errorf("content was blocked due to SAFETY (%s): %w", reason, err)
		}
	}
	return fmt.Errorf("content was blocked (%s): %w", strings.Join(reasons, ", "), err)
}

func convertVertexResponse(resp *genai.GenerateContentResponse) *entities.ModelResponse {
	if resp == nil {
		return entities.NewModelResponse(nil, "")
	}

	feedback := describeVertexPromptFeedback(resp.PromptFeedback)

	if len(resp.Candidates) == 0 || resp.Candidates[0] == nil || resp.Candidates[0].Content == nil {
		return entities.NewModelResponse(nil, feedback)
	}

	var parts []entities.ResponsePart
	for _, part := range resp.Candidates[0].Content.Parts {
		switch p := part.(type) {
		case genai.Text:
			if p != "" {
				parts = append(parts, entities.TextPart{Text: string(p)})
			}
		case genai.Blob:
			parts = append(parts, entities.InlineImagePart{Data: p.Data, MIMEType: p.MIMEType})
		}
	}

	return entities.NewModelResponse(parts, feedback)
}

func describeVertexPromptFeedback(pf *genai.PromptFeedback) string {
	if pf == nil {
		return ""
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "blockReason=%v", pf.BlockReason)
	if pf.BlockReasonMessage != "" {
		fmt.Fprintf(&sb, " message=%q", pf.BlockReasonMessage)
	}
	for _, rating := range pf.SafetyRatings {
		if rating == nil {
			continue
		}
		fmt.Fprintf(&sb, " %v=%v", rating.Category, rating.Probability)
	}
	return sb.String()
}
