package services

import (
	"strings"

	"github.com/JosueEspinoza19/barber-ia-functions/internal/domain/entities"
)

// ExtractResponseParts finds the first text part and the first inline image
// part independently. Later parts of the same kind are ignored. A nil result
// means the part is missing: whitespace-only text and images without bytes
// count as missing.
func ExtractResponseParts(parts []entities.ResponsePart) (*string, *entities.InlineImagePart) {
	var text *string
	var image *entities.InlineImagePart

	for _, part := range parts {
		switch p := part.(type) {
		case entities.TextPart:
			if text != nil || p.Text == "" {
				continue
			}
			trimmed := strings.TrimSpace(p.Text)
			text = &trimmed
		case entities.InlineImagePart:
			if image != nil {
				continue
			}
			found := p
			image = &found
		}
	}

	if text != nil && *text == "" {
		text = nil
	}
	if image != nil && len(image.Data) == 0 {
		image = nil
	}

	return text, image
}
