package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/JosueEspinoza19/barber-ia-functions/model"
)

// ErrMalformedRequest is returned when the body is not a callable envelope.
var ErrMalformedRequest = errors.New("malformed callable request")

// RequestService reads the callable protocol envelope off an HTTP request.
type RequestService struct{}

func NewRequestService() *RequestService {
	return &RequestService{}
}

// BearerToken returns the Firebase ID token from the Authorization header,
// or "" when none was sent.
func (s *RequestService) BearerToken(r *http.Request) string {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if len(header) < len("Bearer ") || !strings.EqualFold(header[:len("Bearer ")], "Bearer ") {
		return ""
	}
	return strings.TrimSpace(header[len("Bearer "):])
}

// ParseAnalyzeFace decodes {"data":{"image":"..."}}. A missing image is not
// an error here; the use case reports it with its own status.
func (s *RequestService) ParseAnalyzeFace(r *http.Request) (*model.AnalyzeFaceData, error) {
	if contentType := r.Header.Get("Content-Type"); contentType != "" && !strings.HasPrefix(contentType, "application/json") {
		return nil, fmt.Errorf("%w: unsupported content type %q", ErrMalformedRequest, contentType)
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read body: %w", err)
	}

	var request model.CallableRequest
	if err := json.Unmarshal(body, &request); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRequest, err)
	}

	return &request.Data, nil
}
