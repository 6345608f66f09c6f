package external

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	genai_std "google.golang.org/genai"

	"github.com/JosueEspinoza19/barber-ia-functions/internal/domain/entities"
	"github.com/JosueEspinoza19/barber-ia-functions/internal/domain/repositories"
	"github.com/JosueEspinoza19/barber-ia-functions/internal/domain/valueobjects"
)

// blockingFinishReasons end a candidate without usable output.
var blockingFinishReasons = map[genai_std.FinishReason]bool{
	genai_std.FinishReasonSafety:                       true,
	genai_std.FinishReason("IMAGE_SAFETY"):             true,
	genai_std.FinishReason("PROHIBITED_CONTENT"):       true,
	genai_std.FinishReason("IMAGE_PROHIBITED_CONTENT"): true,
	genai_std.FinishReason("BLOCKLIST"):                true,
	genai_std.FinishReason("SPII"):                     true,
}

const blockedReasonUnspecified = genai_std.BlockedReason("BLOCKED_REASON_UNSPECIFIED")

type GeminiAIService struct {
	pool   repositories.GenAIClientPool
	params *valueobjects.GenerationParameters
}

func NewGeminiAIService(
	pool repositories.GenAIClientPool,
	params *valueobjects.GenerationParameters,
) repositories.ModelGateway {
	return &GeminiAIService{
		pool:   pool,
		params: params,
	}
}

func (s *GeminiAIService) GenerateContent(
	ctx context.Context,
	request *entities.GatewayRequest,
) (*entities.ModelResponse, error) {
	client, err := s.pool.GetGenAIClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get GenAI client: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.params.Timeout())
	defer cancel()

	parts := []*genai_std.Part{
		genai_std.NewPartFromBytes(request.Image().Data(), request.Image().MimeType()),
		genai_std.NewPartFromText(request.Prompt()),
	}
	contents := []*genai_std.Content{
		genai_std.NewContentFromParts(parts, genai_std.RoleUser),
	}

	slog.Info("GenerateContent", "backend", "gemini", "model", s.params.Model(), "imageBytes", len(request.Image().Data()))

	resp, err := client.Models.GenerateContent(ctx, s.params.Model(), contents, s.buildConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	return convertGenAIResponse(resp)
}

func (s *GeminiAIService) buildConfig() *genai_std.GenerateContentConfig {
	threshold := genai_std.HarmBlockThreshold(s.params.SafetyThreshold())

	settings := make([]*genai_std.SafetySetting, 0, len(valueobjects.HarmCategories))
	for _, category := range valueobjects.HarmCategories {
		settings = append(settings, &genai_std.SafetySetting{
			Category:  genai_std.HarmCategory(category),
			Threshold: threshold,
		})
	}

	return &genai_std.GenerateContentConfig{
		SafetySettings:     settings,
		ResponseModalities: []string{"TEXT", "IMAGE"},
	}
}

// convertGenAIResponse keeps the first candidate only. A candidate stopped
// for a blocking reason becomes an error that names the reason.
func convertGenAIResponse(resp *genai_std.GenerateContentResponse) (*entities.ModelResponse, error) {
	if resp == nil {
		return entities.NewModelResponse(nil, ""), nil
	}

	feedback := describeGenAIPromptFeedback(resp.PromptFeedback)

	// A blocked prompt has no candidates; the feedback names the reason.
	if pf := resp.PromptFeedback; pf != nil && pf.BlockReason != "" && pf.BlockReason != blockedReasonUnspecified {
		return entities.NewModelResponse(nil, feedback), nil
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return entities.NewModelResponse(nil, feedback), nil
	}

	candidate := resp.Candidates[0]
	if blockingFinishReasons[candidate.FinishReason] {
		return nil, fmt.Errorf("candidate was blocked due to %s", candidate.FinishReason)
	}

	if candidate.Content == nil {
		return entities.NewModelResponse(nil, feedback), nil
	}

	var parts []entities.ResponsePart
	for _, part := range candidate.Content.Parts {
		if part == nil || part.Thought {
			continue
		}
		switch {
		case part.InlineData != nil:
			parts = append(parts, entities.InlineImagePart{
				Data:     part.InlineData.Data,
				MIMEType: part.InlineData.MIMEType,
			})
		case part.Text != "":
			parts = append(parts, entities.TextPart{Text: part.Text})
		}
	}

	return entities.NewModelResponse(parts, feedback), nil
}

func describeGenAIPromptFeedback(pf *genai_std.GenerateContentResponsePromptFeedback) string {
	if pf == nil {
		return ""
	}

	var sb strings.Builder
	if pf.BlockReason != "" {
		fmt.Fprintf(&sb, "blockReason=%s ", pf.BlockReason)
	}
	if pf.BlockReasonMessage != "" {
		fmt.Fprintf(&sb, "message=%q ", pf.BlockReasonMessage)
	}
	for _, rating := range pf.SafetyRatings {
		if rating == nil {
			continue
		}
		fmt.Fprintf(&sb, "%s=%s ", rating.Category, rating.Probability)
	}
	return strings.TrimSpace(sb.String())
}
