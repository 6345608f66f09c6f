package entities

import "github.com/JosueEspinoza19/barber-ia-functions/internal/domain/valueobjects"

// GatewayRequest is a single multimodal call: one photo and one instruction.
type GatewayRequest struct {
	image  *valueobjects.ImageData
	prompt string
}

func NewGatewayRequest(image *valueobjects.ImageData, prompt string) *GatewayRequest {
	return &GatewayRequest{
		image:  image,
		prompt: prompt,
	}
}

func (r *GatewayRequest) Image() *valueobjects.ImageData {
	return r.image
}

func (r *GatewayRequest) Prompt() string {
	return r.prompt
}
