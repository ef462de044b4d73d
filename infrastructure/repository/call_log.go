package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/campaign-demo-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-demo-api/internal/domain"
)

const (
	simulatedCallsTable = "simulated_calls"

	defaultListLimit = 50
)

const createSimulatedCallsTable = `CREATE TABLE IF NOT EXISTS simulated_calls (
	id         BIGSERIAL PRIMARY KEY,
	endpoint   TEXT        NOT NULL,
	latency_ms BIGINT      NOT NULL,
	failed     BOOLEAN     NOT NULL DEFAULT FALSE,
	error      TEXT        NOT NULL DEFAULT '',
	started_at TIMESTAMPTZ NOT NULL
)`

const createSimulatedCallsIndex = `CREATE INDEX IF NOT EXISTS simulated_calls_started_at_idx ON simulated_calls (started_at DESC)`

// CallLogRepository guarda o histórico de chamadas ao mock da API
type CallLogRepository interface {
	Record(ctx context.Context, call *domain.SimulatedCall) error
	ListRecent(ctx context.Context, limit int) ([]*domain.SimulatedCall, error)
}

// PostgresCallLog persiste as chamadas na tabela simulated_calls
type PostgresCallLog struct {
	conn postgres.Conn
}

func NewCallLogRepository(conn postgres.Conn) *PostgresCallLog {
	return &PostgresCallLog{
		conn: conn,
	}
}

// Migrate cria a tabela de chamadas e o índice por data, numa única transação
func (r *PostgresCallLog) Migrate(ctx context.Context) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, createSimulatedCallsTable); err != nil {
			return fmt.Errorf("erro ao criar tabela %s: %w", simulatedCallsTable, err)
		}
		if _, err := tx.ExecContext(ctx, createSimulatedCallsIndex); err != nil {
			return fmt.Errorf("erro ao criar índice de %s: %w", simulatedCallsTable, err)
		}
		return nil
	})
}

func buildInsertCallQuery(call *domain.SimulatedCall) (string, []interface{}, error) {
	return squirrel.
		Insert(simulatedCallsTable).
		Columns("endpoint", "latency_ms", "failed", "error", "started_at").
		Values(call.Endpoint, call.LatencyMS, call.Failed, call.Error, call.StartedAt).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func buildListCallsQuery(limit int) (string, []interface{}, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	return squirrel.
		Select("id", "endpoint", "latency_ms", "failed", "error", "started_at").
		From(simulatedCallsTable).
		OrderBy("started_at DESC", "id DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func (r *PostgresCallLog) Record(ctx context.Context, call *domain.SimulatedCall) error {
	query, args, err := buildInsertCallQuery(call)
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRow(ctx, query, args...).Scan(&call.ID); err != nil {
		return fmt.Errorf("erro ao inserir chamada simulada: %w", err)
	}

	return nil
}

func (r *PostgresCallLog) ListRecent(ctx context.Context, limit int) ([]*domain.SimulatedCall, error) {
	query, args, err := buildListCallsQuery(limit)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	calls := make([]*domain.SimulatedCall, 0)
	for rows.Next() {
		call := &domain.SimulatedCall{}
		if err := rows.Scan(&call.ID, &call.Endpoint, &call.LatencyMS, &call.Failed, &call.Error, &call.StartedAt); err != nil {
			return nil, fmt.Errorf("erro ao escanear chamada simulada: %w", err)
		}
		calls = append(calls, call)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return calls, nil
}
