package repositories

import (
	"context"

	"github.com/JosueEspinoza19/barber-ia-functions/internal/domain/entities"
)

// ModelGateway is a single-shot multimodal generation call. Implementations
// must surface safety blocks as errors whose message carries "SAFETY".
type ModelGateway interface {
	GenerateContent(ctx context.Context, request *entities.GatewayRequest) (*entities.ModelResponse, error)
}
