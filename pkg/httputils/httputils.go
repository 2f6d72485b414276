package httputils

import (
	"encoding/json"
	"net/http"

	"github.com/IgorGrieder/shortlink/internal/constants"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const CorrelationIDHeader = "X-Correlation-Id"

// APIResponse is the body of every /api response.
type APIResponse struct {
	Success bool   `json:"success"`
	Alias   string `json:"alias,omitempty" example:"K7MPQ2XZ"`
	Error   string `json:"error,omitempty" example:"unavailable"`
	Message string `json:"message,omitempty" example:"Alias is unavailable"`
}

// GetCorrelationID extracts the correlation ID from the request header
// If not present, generates a new UUID v4
func GetCorrelationID(r *http.Request) string {
	correlationID := r.Header.Get(CorrelationIDHeader)
	if correlationID == "" {
		correlationID = uuid.New().String()
	}
	return correlationID
}

// WriteAPIError writes a failed APIResponse using a predefined APIError
func WriteAPIError(w http.ResponseWriter, r *http.Request, apiErr constants.APIError) {
	WriteJSON(w, r, apiErr.Status, APIResponse{
		Success: false,
		Error:   apiErr.Code,
		Message: apiErr.Message,
	})
}

// WriteJSON encodes body with the given status and a correlation id header.
func WriteJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set(CorrelationIDHeader, GetCorrelationID(r))
	RespondJSON(w, status, body)
}

func RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		zap.L().Error("failed to encode json response", zap.Error(err))
	}
}
