package authenticating

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCredentials    = errors.New("credenciais inválidas")
	ErrLoginDisabled         = errors.New("login do apresentador desativado")
	ErrInvalidToken          = errors.New("token inválido")
	ErrExpiredToken          = errors.New("token expirado")
	ErrInsufficientPrivilege = errors.New("privilégios insuficientes")
	ErrMissingRequiredData   = errors.New("dados obrigatórios ausentes")

	ErrMissingSecretKey = errors.New("SECRET_KEY não configurada")
)

// AuthError carrega o código da API junto do erro base
type AuthError struct {
	Err      error
	Code     string
	Username string
	Details  string
}

func (e *AuthError) Error() string {
	msg := e.Err.Error()
	if e.Username != "" {
		msg = fmt.Sprintf("%s (usuário %s)", msg, e.Username)
	}
	if e.Details != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Details)
	}
	return msg
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// ForUser anota o usuário envolvido
func (e *AuthError) ForUser(username string) *AuthError {
	e.Username = username
	return e
}

// IsCredentialsError indica falha de login, ou seja, senha errada ou login desativado
func IsCredentialsError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials) || errors.Is(err, ErrLoginDisabled)
}

// IsAuthorizationError indica token inválido, expirado ou sem o papel exigido
func IsAuthorizationError(err error) bool {
	return errors.Is(err, ErrInsufficientPrivilege) ||
		errors.Is(err, ErrInvalidToken) ||
		errors.Is(err, ErrExpiredToken)
}

func NewAuthError(baseErr error, code string, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}
