package external

import (
	"fmt"

	"github.com/JosueEspinoza19/barber-ia-functions/internal/domain/repositories"
	"github.com/JosueEspinoza19/barber-ia-functions/internal/domain/valueobjects"
)

// NewModelGateway picks the adapter for a backend name ("gemini" or "vertex").
func NewModelGateway(
	backend string,
	pools repositories.ClientPoolService,
	params *valueobjects.GenerationParameters,
) (repositories.ModelGateway, error) {
	switch backend {
	case "gemini":
		return NewGeminiAIService(pools.GenAIPool(), params), nil
	case "vertex":
		return NewVertexAIService(pools.VertexAIPool(), params), nil
	default:
		return nil, fmt.Errorf("unsupported gateway backend: %q", backend)
	}
}
