package domain

import "time"

type WebhookEvent struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Payload   any       `json:"payload"`
	EmittedAt time.Time `json:"emitted_at"`
}

// SimulatedCall é o registro de uma chamada ao mock da API
type SimulatedCall struct {
	ID        int64     `json:"id"`
	Endpoint  string    `json:"endpoint"`
	LatencyMS int64     `json:"latency_ms"`
	Failed    bool      `json:"failed"`
	Error     string    `json:"error,omitempty"`
	StartedAt time.Time `json:"started_at"`
}
