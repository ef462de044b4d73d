package templating

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func counter() Producer {
	n := 0
	return func() string {
		n++
		return strconv.Itoa(n)
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		pattern  string
		campaign string
		vars     Vars
		want     string
	}{
		{
			name:    "padrão vazio",
			pattern: "",
			want:    "",
		},
		{
			name:    "sem placeholders",
			pattern: "CTR subiu",
			want:    "CTR subiu",
		},
		{
			name:     "campanha informada",
			pattern:  "{campaign} is over budget",
			campaign: "Q3 Leads",
			want:     "Q3 Leads is over budget",
		},
		{
			name:    "campanha sem nome usa o gerador",
			pattern: "{campaign} paused",
			vars:    Vars{"campaign": func() string { return "Fallback" }},
			want:    "Fallback paused",
		},
		{
			name:    "campanha sem nome e sem gerador permanece",
			pattern: "{campaign} paused",
			want:    "{campaign} paused",
		},
		{
			name:    "placeholder desconhecido permanece",
			pattern: "CTR down {percentage}% on {unknown}",
			vars:    Vars{"percentage": func() string { return "12" }},
			want:    "CTR down 12% on {unknown}",
		},
		{
			name:    "chave sem fechamento",
			pattern: "budget {amount",
			vars:    Vars{"amount": func() string { return "10" }},
			want:    "budget {amount",
		},
		{
			name:    "chave aberta antes do placeholder",
			pattern: "a { b {x}",
			vars:    Vars{"x": func() string { return "1" }},
			want:    "a { b 1",
		},
		{
			name:    "saída do gerador não é reprocessada",
			pattern: "{x}",
			vars: Vars{
				"x": func() string { return "{y}" },
				"y": func() string { return "nope" },
			},
			want: "{y}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.pattern, tt.campaign, tt.vars))
		})
	}
}

func TestResolve_RepeatedPlaceholderInvokesProducerPerOccurrence(t *testing.T) {
	got := Resolve("{x} and {x}", "", Vars{"x": counter()})

	assert.NotContains(t, got, "{x}")
	assert.Equal(t, "1 and 2", got)
}

func TestPlaceholders(t *testing.T) {
	assert.Equal(t, []string{"campaign", "percentage", "campaign"}, Placeholders("{campaign} {percentage}% {campaign}"))
	assert.Empty(t, Placeholders("nothing here {"))
}
