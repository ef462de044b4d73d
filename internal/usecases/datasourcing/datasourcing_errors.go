package datasourcing

import (
	"errors"
	"fmt"

	"github.com/vfg2006/campaign-demo-api/infrastructure/integrator/linkedin"
)

var (
	ErrProductionNotImplemented = linkedin.ErrProductionNotImplemented

	// Erros de validação das configurações
	ErrInvalidMode  = errors.New("invalid data mode")
	ErrInvalidCount = errors.New("count must be positive")
	ErrInvalidDays  = errors.New("invalid number of days")

	ErrFixtureDecode = errors.New("error decoding fixture")
)

// DataSourceError é um erro com contexto adicional da fonte de dados
type DataSourceError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

func (e *DataSourceError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *DataSourceError) Unwrap() error {
	return e.Err
}

func NewDataSourceError(err error, code string, details string) *DataSourceError {
	return &DataSourceError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
