package scenario

import (
	"errors"
	"fmt"
)

var (
	ErrScenarioNotFound = errors.New("scenario not found")
	ErrInvalidDays      = errors.New("days elapsed must not be negative")
	ErrInvalidCatalog   = errors.New("invalid scenario catalog")
)

// ScenarioError é um erro com contexto adicional para cenários
type ScenarioError struct {
	Err        error  // Erro base
	Code       string // Código de erro para API
	ScenarioID string // ID do cenário envolvido (quando aplicável)
	Details    string // Detalhes adicionais
}

func (e *ScenarioError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ScenarioError) Unwrap() error {
	return e.Err
}

func NewScenarioError(err error, code string, scenarioID string, details string) *ScenarioError {
	return &ScenarioError{
		Err:        err,
		Code:       code,
		ScenarioID: scenarioID,
		Details:    details,
	}
}
