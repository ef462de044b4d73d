package simulating

import (
	"time"

	"github.com/google/uuid"

	"github.com/vfg2006/campaign-demo-api/internal/domain"
)

const (
	MaxWebhookDelay = 5 * time.Second

	recentEventsLimit   = 50
	subscriberBufferLen = 16
)

// SimulateWebhook agenda a emissão de um evento após um atraso aleatório entre 0 e 5s (ver WithMaxWebhookDelay).
// Retorna uma cópia do evento agendado e o atraso sorteado.
func (s *Simulator) SimulateWebhook(eventType string, payload any) (*domain.WebhookEvent, time.Duration, error) {
	event := &domain.WebhookEvent{
		ID:      uuid.NewString(),
		Type:    eventType,
		Payload: payload,
	}
	delay := s.sampler.Duration(0, s.maxWebhookDelay)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, 0, ErrSimulatorClosed
	}

	s.pending[event] = time.AfterFunc(delay, func() {
		s.deliver(event)
	})

	scheduled := *event
	return &scheduled, delay, nil
}

func (s *Simulator) deliver(event *domain.WebhookEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.pending[event]; !ok {
		return
	}
	delete(s.pending, event)

	event.EmittedAt = s.now()

	s.recent = append(s.recent, event)
	if len(s.recent) > recentEventsLimit {
		s.recent = s.recent[len(s.recent)-recentEventsLimit:]
	}

	for _, ch := range s.subscribers {
		select {
		case ch <- event:
		default:
			// assinante lento perde o evento
		}
	}
}

// Subscribe devolve um canal com os eventos emitidos e a função para cancelar a assinatura
func (s *Simulator) Subscribe() (<-chan *domain.WebhookEvent, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan *domain.WebhookEvent, subscriberBufferLen)
	if s.closed {
		close(ch)
		return ch, func() {}
	}

	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = ch

	return ch, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if sub, ok := s.subscribers[id]; ok {
			delete(s.subscribers, id)
			close(sub)
		}
	}
}

// RecentEvents retorna os últimos eventos emitidos, do mais antigo para o mais novo
func (s *Simulator) RecentEvents() []*domain.WebhookEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()

	events := make([]*domain.WebhookEvent, len(s.recent))
	copy(events, s.recent)
	return events
}

// PendingWebhooks retorna quantos eventos ainda aguardam emissão
func (s *Simulator) PendingWebhooks() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.pending)
}

// Close cancela webhooks pendentes, encerra o outage em andamento e fecha os canais dos assinantes
func (s *Simulator) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true

	for event, timer := range s.pending {
		timer.Stop()
		delete(s.pending, event)
	}

	s.stopOutage()

	for id, ch := range s.subscribers {
		delete(s.subscribers, id)
		close(ch)
	}
}
