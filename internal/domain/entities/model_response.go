package entities

// ResponsePart is one content part returned by the model gateway. The
// implementations are TextPart and InlineImagePart.
type ResponsePart interface {
	isResponsePart()
}

type TextPart struct {
	Text string
}

type InlineImagePart struct {
	Data     []byte
	MIMEType string
}

func (TextPart) isResponsePart()        {}
func (InlineImagePart) isResponsePart() {}

// ModelResponse holds the parts of the first candidate. PromptFeedback is a
// human-readable summary of the gateway's block feedback, used only in logs.
type ModelResponse struct {
	Parts          []ResponsePart
	PromptFeedback string
}

func NewModelResponse(parts []ResponsePart, promptFeedback string) *ModelResponse {
	return &ModelResponse{
		Parts:          parts,
		PromptFeedback: promptFeedback,
	}
}
