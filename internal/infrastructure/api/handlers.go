package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/JosueEspinoza19/barber-ia-functions/internal/application/services"
	"github.com/JosueEspinoza19/barber-ia-functions/internal/application/usecases"
	"github.com/JosueEspinoza19/barber-ia-functions/internal/domain/entities"
	"github.com/JosueEspinoza19/barber-ia-functions/internal/domain/repositories"
	"github.com/JosueEspinoza19/barber-ia-functions/model"
)

const defaultMaxBodyBytes = 20 * 1024 * 1024 // 20MB

var statusCodes = map[entities.Status]int{
	entities.StatusUnauthenticated:  http.StatusUnauthorized,
	entities.StatusInvalidArgument:  http.StatusBadRequest,
	entities.StatusPermissionDenied: http.StatusForbidden,
	entities.StatusInternal:         http.StatusInternalServerError,
}

type AnalyzeFaceHandler struct {
	analyzeFaceUseCase *usecases.AnalyzeFaceUseCase
	requestService     *services.RequestService
	authenticator      repositories.CallerAuthenticator
	maxBodyBytes       int64
}

func NewAnalyzeFaceHandler(
	analyzeFaceUseCase *usecases.AnalyzeFaceUseCase,
	requestService *services.RequestService,
	authenticator repositories.CallerAuthenticator,
	maxBodyBytes int64,
) *AnalyzeFaceHandler {
	if maxBodyBytes <= 0 {
		maxBodyBytes = defaultMaxBodyBytes
	}
	return &AnalyzeFaceHandler{
		analyzeFaceUseCase: analyzeFaceUseCase,
		requestService:     requestService,
		authenticator:      authenticator,
		maxBodyBytes:       maxBodyBytes,
	}
}

// HandleAnalyzeFace serves the analyzeFace callable. A token that is sent
// but fails verification is rejected before the body is read; a missing
// token leaves the caller anonymous and the use case rejects it.
func (h *AnalyzeFaceHandler) HandleAnalyzeFace(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)

	var callerID string
	if token := h.requestService.BearerToken(r); token != "" {
		uid, err := h.authenticator.VerifyIDToken(r.Context(), token)
		if err != nil {
			slog.Warn("Rejected ID token", "error", err)
			h.sendError(w, entities.StatusUnauthenticated, entities.MessageUnauthenticated)
			return
		}
		callerID = uid
	}

	data, err := h.requestService.ParseAnalyzeFace(r)
	if err != nil {
		slog.Warn("Malformed callable request", "uid", callerID, "error", err)
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.sendError(w, entities.StatusInvalidArgument, entities.MessageInvalidImage)
			return
		}
		h.sendError(w, entities.StatusInvalidArgument, entities.MessageMissingImage)
		return
	}

	output, err := h.analyzeFaceUseCase.Execute(r.Context(), usecases.AnalyzeFaceInput{
		CallerID:    callerID,
		ImageBase64: data.Image,
	})
	if err != nil {
		h.sendAnalysisError(w, err)
		return
	}

	h.sendResult(w, output)
}

func (h *AnalyzeFaceHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// sendAnalysisError only logs rejections made before the pipeline ran; the
// domain service has already logged its own failures.
func (h *AnalyzeFaceHandler) sendAnalysisError(w http.ResponseWriter, err error) {
	var analysisErr *entities.AnalysisError
	if !errors.As(err, &analysisErr) {
		slog.Error("Unexpected analysis failure", "error", err)
		h.sendError(w, entities.StatusInternal, entities.MessageInternal)
		return
	}

	switch analysisErr.Kind {
	case entities.KindUnauthenticated, entities.KindInvalidArgument:
		slog.Warn("Analysis request rejected", "uid", analysisErr.CallerID, "kind", analysisErr.Kind, "error", analysisErr.Err)
	case entities.KindUnknown:
		slog.Error("Analysis failed", "uid", analysisErr.CallerID, "error", analysisErr.Err)
	}

	h.sendError(w, analysisErr.Status(), analysisErr.Message)
}

func (h *AnalyzeFaceHandler) sendResult(w http.ResponseWriter, output *usecases.AnalyzeFaceOutput) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store, max-age=0")

	response := model.CallableResponse{
		Result: &model.AnalyzeFaceResult{
			SuggestionText:       output.SuggestionText,
			SimulatedImageBase64: output.EditedImageBase64,
		},
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
	}
}

func (h *AnalyzeFaceHandler) sendError(w http.ResponseWriter, status entities.Status, message string) {
	statusCode, ok := statusCodes[status]
	if !ok {
		statusCode = http.StatusInternalServerError
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(model.CallableResponse{
		Error: &model.CallableError{
			Status:  string(status),
			Message: message,
		},
	})
}
