package simulating

import (
	"time"

	"github.com/sirupsen/logrus"
)

const outageErrorRate = 100

type outage struct {
	until       time.Time
	restoreRate float64
	timer       *time.Timer
	generation  int
}

// SimulateOutage força taxa de erro 100 por d e depois restaura a taxa anterior ao outage.
// Um novo outage durante outro apenas estende o prazo, mantendo a taxa original para restauração.
func (s *Simulator) SimulateOutage(d time.Duration) time.Time {
	if d <= 0 {
		d = s.outageDuration
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return time.Time{}
	}

	if s.outage == nil {
		s.outage = &outage{restoreRate: s.settings.ErrorRate}
	} else {
		s.outage.timer.Stop()
	}

	o := s.outage
	o.generation++
	o.until = s.now().Add(d)
	s.settings.ErrorRate = outageErrorRate

	generation := o.generation
	o.timer = time.AfterFunc(d, func() {
		s.endOutage(o, generation)
	})

	logrus.WithFields(logrus.Fields{
		"duration":     d.String(),
		"restore_rate": o.restoreRate,
	}).Warn("Outage simulado iniciado")

	return o.until
}

func (s *Simulator) endOutage(o *outage, generation int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.outage != o || o.generation != generation {
		return
	}

	s.settings.ErrorRate = o.restoreRate
	s.outage = nil

	logrus.WithField("error_rate", o.restoreRate).Info("Outage simulado encerrado")
}

// OutageActive informa se há um outage em andamento e quando ele termina
func (s *Simulator) OutageActive() (bool, time.Time) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.outage == nil {
		return false, time.Time{}
	}
	return true, s.outage.until
}

// stopOutage cancela o outage em andamento e restaura a taxa; chamado com s.mu travado
func (s *Simulator) stopOutage() {
	if s.outage == nil {
		return
	}
	s.outage.timer.Stop()
	s.settings.ErrorRate = s.outage.restoreRate
	s.outage = nil
}
