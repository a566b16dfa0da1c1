package response

import (
	"encoding/json"
	"net/http"
)

// MessageResponse confirms a successful mutation.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse carries a stable error description. Raw internal error text
// never goes through here.
type ErrorResponse struct {
	Error interface{} `json:"error"`
}

func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func Message(w http.ResponseWriter, statusCode int, message string) {
	JSON(w, statusCode, MessageResponse{Message: message})
}

func Error(w http.ResponseWriter, statusCode int, message string) {
	JSON(w, statusCode, ErrorResponse{Error: message})
}

func ValidationError(w http.ResponseWriter, errors interface{}) {
	JSON(w, http.StatusBadRequest, ErrorResponse{Error: errors})
}

func BadRequest(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Solicitud inválida"
	}
	Error(w, http.StatusBadRequest, message)
}

func NotFound(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Recurso no encontrado"
	}
	Error(w, http.StatusNotFound, message)
}

func Conflict(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Conflicto con el estado actual"
	}
	Error(w, http.StatusConflict, message)
}

func InternalServerError(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Error interno del servidor"
	}
	Error(w, http.StatusInternalServerError, message)
}

func ServiceUnavailable(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Servicio no disponible"
	}
	Error(w, http.StatusServiceUnavailable, message)
}
