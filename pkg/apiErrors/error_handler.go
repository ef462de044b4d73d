package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// Autenticação do apresentador
	ErrInvalidCredentials    = "AUTH_001"
	ErrUserDisabled          = "AUTH_002" // login do apresentador desativado
	ErrInvalidToken          = "AUTH_006"
	ErrExpiredToken          = "AUTH_007"
	ErrInsufficientPrivilege = "AUTH_008"

	// Validação de entrada
	ErrInvalidRequest      = "VAL_001" // corpo ou parâmetro malformado
	ErrMissingRequiredData = "VAL_002"
	ErrInvalidFormat       = "VAL_003" // valor fora do intervalo aceito
	ErrResourceNotFound    = "VAL_004"
	ErrMethodNotAllowed    = "VAL_005"

	// Servidor
	ErrInternalServer    = "SRV_001"
	ErrDatabaseOperation = "SRV_002" // histórico de chamadas indisponível
	ErrCommunication     = "SRV_004" // simulador encerrado ou requisição cancelada
	ErrNotImplemented    = "SRV_005" // modo produção

	// Mock da API
	ErrSimulatedNetwork = "SIM_001"
)

var httpStatusMap = map[string]int{
	ErrInvalidCredentials:    http.StatusUnauthorized,
	ErrUserDisabled:          http.StatusForbidden,
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrResourceNotFound:      http.StatusNotFound,
	ErrMethodNotAllowed:      http.StatusMethodNotAllowed,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
	ErrCommunication:         http.StatusServiceUnavailable,
	ErrNotImplemented:        http.StatusNotImplemented,
	ErrSimulatedNetwork:      http.StatusServiceUnavailable,
}

// StatusFor devolve o status HTTP do código; códigos desconhecidos viram 500
func StatusFor(code string) int {
	if status, ok := httpStatusMap[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// APIError é o corpo de toda resposta de erro
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

func WriteError(w http.ResponseWriter, code string, message string, details any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))

	err := json.NewEncoder(w).Encode(APIError{
		Code:    code,
		Message: message,
		Details: details,
	})
	if err != nil {
		logrus.WithError(err).WithField("code", code).Warn("apiErrors: failed to write error body")
	}
}
