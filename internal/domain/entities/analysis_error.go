package entities

import (
	"errors"
	"fmt"
)

// ErrorKind identifies which stage of the analysis failed.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindUnauthenticated
	KindInvalidArgument
	KindGatewaySafetyBlock
	KindGatewayFailure
	KindMissingResponseText
	KindMalformedSuggestionText
	KindInvalidSuggestionJSON
	KindMissingRecommendationField
	KindMissingResponseImage
)

// Status is the caller-visible status code of a callable function error.
type Status string

const (
	StatusUnauthenticated  Status = "UNAUTHENTICATED"
	StatusInvalidArgument  Status = "INVALID_ARGUMENT"
	StatusPermissionDenied Status = "PERMISSION_DENIED"
	StatusInternal         Status = "INTERNAL"
)

// Caller-facing messages. Raw model output never goes into these.
const (
	MessageUnauthenticated            = "La función debe ser llamada por un usuario autenticado."
	MessageMissingImage               = "No se proporcionó ninguna imagen."
	MessageInvalidImage               = "La imagen proporcionada no es válida."
	MessageSafetyBlock                = "La imagen fue bloqueada por razones de seguridad."
	MessageGatewayFailure             = "Error al generar la simulación."
	MessageMissingResponseText        = "La IA no pudo procesar la solicitud (sin texto)."
	MessageMalformedSuggestionText    = "El texto no contiene un objeto JSON válido."
	MessageInvalidSuggestionJSON      = "Error al parsear la respuesta de la IA."
	MessageMissingRecommendationField = "El JSON de la IA no contiene 'sugerencia_corte'."
	MessageMissingResponseImage       = "La IA no pudo procesar la solicitud (sin imagen)."
	MessageInternal                   = "Error interno."
)

var kindNames = map[ErrorKind]string{
	KindUnknown:                    "Unknown",
	KindUnauthenticated:            "Unauthenticated",
	KindInvalidArgument:            "InvalidArgument",
	KindGatewaySafetyBlock:         "GatewaySafetyBlock",
	KindGatewayFailure:             "GatewayFailure",
	KindMissingResponseText:        "MissingResponseText",
	KindMalformedSuggestionText:    "MalformedSuggestionText",
	KindInvalidSuggestionJSON:      "InvalidSuggestionJson",
	KindMissingRecommendationField: "MissingRecommendationField",
	KindMissingResponseImage:       "MissingResponseImage",
}

var kindMessages = map[ErrorKind]string{
	KindUnauthenticated:            MessageUnauthenticated,
	KindInvalidArgument:            MessageMissingImage,
	KindGatewaySafetyBlock:         MessageSafetyBlock,
	KindGatewayFailure:             MessageGatewayFailure,
	KindMissingResponseText:        MessageMissingResponseText,
	KindMalformedSuggestionText:    MessageMalformedSuggestionText,
	KindInvalidSuggestionJSON:      MessageInvalidSuggestionJSON,
	KindMissingRecommendationField: MessageMissingRecommendationField,
	KindMissingResponseImage:       MessageMissingResponseImage,
}

func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

func (k ErrorKind) Status() Status {
	switch k {
	case KindUnauthenticated:
		return StatusUnauthenticated
	case KindInvalidArgument:
		return StatusInvalidArgument
	case KindGatewaySafetyBlock:
		return StatusPermissionDenied
	default:
		return StatusInternal
	}
}

// AnalysisError is the terminal error of a face analysis request.
type AnalysisError struct {
	Kind     ErrorKind
	CallerID string
	// Message is safe to show to the caller.
	Message string
	// Err is the internal cause, for logs only.
	Err error
}

func NewAnalysisError(kind ErrorKind, callerID string, err error) *AnalysisError {
	message, ok := kindMessages[kind]
	if !ok {
		message = MessageInternal
	}
	return &AnalysisError{
		Kind:     kind,
		CallerID: callerID,
		Message:  message,
		Err:      err,
	}
}

func (e *AnalysisError) WithMessage(message string) *AnalysisError {
	e.Message = message
	return e
}

func (e *AnalysisError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AnalysisError) Unwrap() error {
	return e.Err
}

func (e *AnalysisError) Status() Status {
	return e.Kind.Status()
}

// KindOf reports the kind of the first AnalysisError in err's chain.
func KindOf(err error) ErrorKind {
	var analysisErr *AnalysisError
	if errors.As(err, &analysisErr) {
		return analysisErr.Kind
	}
	return KindUnknown
}
