package model

// CallableRequest is the body a Firebase HTTPS callable client sends.
type CallableRequest struct {
	Data AnalyzeFaceData `json:"data"`
}

// AnalyzeFaceData carries the base64 photo. Clients send JPEG.
type AnalyzeFaceData struct {
	Image string `json:"image"`
}

// CallableResponse is the callable protocol reply: exactly one of Result
// and Error is set.
type CallableResponse struct {
	Result *AnalyzeFaceResult `json:"result,omitempty"`
	Error  *CallableError     `json:"error,omitempty"`
}

// AnalyzeFaceResult keeps the field names the mobile client already reads.
type AnalyzeFaceResult struct {
	SuggestionText       string `json:"suggestionText"`
	SimulatedImageBase64 string `json:"simulatedImageBase64"`
}

type CallableError struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
