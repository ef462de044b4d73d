package simulating

import (
	"errors"
	"fmt"
)

var (
	// ErrSimulatedNetwork é a falha transitória injetada pela taxa de erro configurada
	ErrSimulatedNetwork = errors.New("simulated network error")

	ErrInvalidCampaign = errors.New("invalid campaign")
	ErrSimulatorClosed = errors.New("simulator closed")
)

// SimulatedNetworkError identifica o endpoint em que a falha foi injetada
type SimulatedNetworkError struct {
	Endpoint string
}

func (e *SimulatedNetworkError) Error() string {
	return fmt.Sprintf("%s: %s", ErrSimulatedNetwork.Error(), e.Endpoint)
}

func (e *SimulatedNetworkError) Unwrap() error {
	return ErrSimulatedNetwork
}

// IsTransient indica se err é uma falha simulada, que o cliente pode tentar de novo
func IsTransient(err error) bool {
	return errors.Is(err, ErrSimulatedNetwork)
}
