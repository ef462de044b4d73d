package sampling

import (
	"math"
	"math/rand"
	"sync"
	"time"
)

// Range é um intervalo fechado-aberto [Min, Max) usado pelas tabelas de amostragem
type Range struct {
	Min float64 `yaml:"min" json:"min"`
	Max float64 `yaml:"max" json:"max"`
}

// Sampler produz valores aleatórios limitados a partir de uma fonte com semente.
// É seguro para uso concorrente.
type Sampler struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New cria um Sampler. Semente zero usa o relógio atual, sem reprodutibilidade.
func New(seed int64) *Sampler {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return NewFromSource(rand.NewSource(seed))
}

// NewFromSource cria um Sampler sobre uma fonte arbitrária
func NewFromSource(src rand.Source) *Sampler {
	return &Sampler{rng: rand.New(src)}
}

func (s *Sampler) float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

// Uniform retorna um valor uniforme em [min, max)
func (s *Sampler) Uniform(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + s.float64()*(max-min)
}

// Sample amostra uniformemente dentro de r
func (s *Sampler) Sample(r Range) float64 {
	return s.Uniform(r.Min, r.Max)
}

// Skewed retorna base * (1 + u) com u uniforme em [-variation, +variation]
func (s *Sampler) Skewed(base, variation float64) float64 {
	u := s.Uniform(-variation, variation)
	return base * (1 + u)
}

// IntBetween retorna um inteiro em [min, max], calculado como floor(uniform(min, max+1))
func (s *Sampler) IntBetween(min, max int) int {
	if max <= min {
		return min
	}
	v := int(math.Floor(s.Uniform(float64(min), float64(max+1))))
	if v > max {
		return max
	}
	return v
}

// Index retorna um índice uniforme em [0, n)
func (s *Sampler) Index(n int) int {
	if n <= 1 {
		return 0
	}
	return s.IntBetween(0, n-1)
}

// Chance retorna true com probabilidade p (0..1)
func (s *Sampler) Chance(p float64) bool {
	return s.float64() < p
}

// Percent retorna true com probabilidade pct/100
func (s *Sampler) Percent(pct float64) bool {
	return s.float64()*100 < pct
}

// Duration retorna uma duração uniforme em [min, max)
func (s *Sampler) Duration(min, max time.Duration) time.Duration {
	return time.Duration(s.Uniform(float64(min), float64(max)))
}

// Pick escolhe um elemento de items
func Pick[T any](s *Sampler, items []T) T {
	var zero T
	if len(items) == 0 {
		return zero
	}
	return items[s.Index(len(items))]
}
