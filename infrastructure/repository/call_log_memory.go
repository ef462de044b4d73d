package repository

import (
	"context"
	"sync"

	"github.com/vfg2006/campaign-demo-api/internal/domain"
)

const defaultMemoryLimit = 200

// memoryCallLog mantém as últimas chamadas em memória quando o banco está desabilitado
type memoryCallLog struct {
	mu     sync.Mutex
	calls  []*domain.SimulatedCall
	limit  int
	nextID int64
}

func NewMemoryCallLog(limit int) CallLogRepository {
	if limit <= 0 {
		limit = defaultMemoryLimit
	}
	return &memoryCallLog{limit: limit}
}

func (m *memoryCallLog) Record(_ context.Context, call *domain.SimulatedCall) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	stored := *call
	stored.ID = m.nextID
	call.ID = stored.ID

	m.calls = append(m.calls, &stored)
	if len(m.calls) > m.limit {
		m.calls = m.calls[len(m.calls)-m.limit:]
	}

	return nil
}

// ListRecent retorna as chamadas da mais nova para a mais antiga
func (m *memoryCallLog) ListRecent(_ context.Context, limit int) ([]*domain.SimulatedCall, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > len(m.calls) {
		limit = len(m.calls)
	}

	calls := make([]*domain.SimulatedCall, 0, limit)
	for i := len(m.calls) - 1; i >= len(m.calls)-limit; i-- {
		c := *m.calls[i]
		calls = append(calls, &c)
	}

	return calls, nil
}
