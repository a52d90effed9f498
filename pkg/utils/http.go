package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// MaxBodySize limits the size of a JSON request body.
const MaxBodySize = 1 << 20

func WriteJSON(w http.ResponseWriter, payload any, code int) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	return json.NewEncoder(w).Encode(payload)
}

func DecodeBody(r *http.Request, v any) error {
	body := http.MaxBytesReader(nil, r.Body, MaxBodySize)
	return json.NewDecoder(body).Decode(v)
}

// ValidationErrorResponse contains field-specific validation messages
// swagger:model ValidationErrorResponse
type ValidationErrorResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields"`
}

func WriteValidationError(w http.ResponseWriter, err error) error {
	res := ValidationErrorResponse{
		Message: "invalid request",
		Fields:  make(map[string]string),
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			res.Fields[fe.Field()] = describe(fe)
		}
	}

	return WriteJSON(w, res, http.StatusBadRequest)
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min", "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max", "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "uuid", "url":
		return fmt.Sprintf("must be a valid %s", fe.Tag())
	default:
		return fe.Tag()
	}
}

// ErrorResponse describes a standard error response
// swagger:model ErrorResponse
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func WriteError(w http.ResponseWriter, message string, code int) error {
	return WriteJSON(w, ErrorResponse{Message: message}, code)
}

// WriteErrorDetails writes an error response with extra top-level fields next to the message.
func WriteErrorDetails(w http.ResponseWriter, message string, details map[string]any, code int) error {
	if len(details) == 0 {
		return WriteError(w, message, code)
	}
	payload := make(map[string]any, len(details)+2)
	maps.Copy(payload, details)
	payload["success"] = false
	payload["message"] = message
	return WriteJSON(w, payload, code)
}
