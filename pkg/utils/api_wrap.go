package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceIDFrom(c *gin.Context) string {
	traceID, _ := c.Get("trace_id")
	s, _ := traceID.(string)
	return s
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceIDFrom(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceIDFrom(c),
	})
}

// HandleServiceError maps each generation error kind to an HTTP status and
// an Italian user-facing message. Raw error text never reaches the client.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrMissingAPIKey), errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusInternalServerError,
			"Errore di configurazione: API Key mancante o non valida.")
	case errors.Is(err, ErrModelOverloaded):
		RespondError(c, http.StatusServiceUnavailable,
			"I server AI sono momentaneamente sovraccarichi. Attendi qualche istante e riprova.")
	case errors.Is(err, ErrRateLimited):
		RespondError(c, http.StatusTooManyRequests,
			"Troppe richieste inviate in breve tempo. Attendi un minuto e riprova.")
	case errors.Is(err, ErrSafetyBlocked):
		RespondError(c, http.StatusUnprocessableEntity,
			"La richiesta è stata bloccata dai filtri di sicurezza. Prova a riformulare la richiesta.")
	case errors.Is(err, ErrMalformedAIResponse):
		RespondError(c, http.StatusBadGateway,
			"Errore nell'elaborazione dei dati ricevuti dall'AI. Riprova, di solito si risolve al secondo tentativo.")
	case errors.Is(err, ErrEmptyAIResponse):
		RespondError(c, http.StatusBadGateway,
			"L'AI non ha restituito alcun contenuto. Riprova.")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError,
			"Si è verificato un errore imprevisto durante la generazione. Per favore riprova.")
	}
}
