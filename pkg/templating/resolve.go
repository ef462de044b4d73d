package templating

import "strings"

// CampaignPlaceholder é o único placeholder resolvido pelo nome de campanha informado pelo chamador
const CampaignPlaceholder = "campaign"

// Producer gera o valor de um placeholder a cada ocorrência
type Producer func() string

// Vars mapeia o nome do placeholder (sem chaves) para o seu gerador
type Vars map[string]Producer

// Resolve substitui os placeholders `{nome}` de pattern.
//
// `{campaign}` recebe o nome da campanha quando campaign não é vazio. Os demais placeholders com gerador
// registrado são substituídos por uma chamada nova do gerador em cada ocorrência, então o mesmo placeholder
// pode resolver para valores diferentes na mesma string. Placeholders desconhecidos e chaves sem fechamento
// permanecem no texto. A saída dos geradores não é reprocessada.
func Resolve(pattern string, campaign string, vars Vars) string {
	if pattern == "" {
		return ""
	}

	var out strings.Builder
	out.Grow(len(pattern))

	rest := pattern
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			out.WriteString(rest)
			break
		}

		closing := strings.IndexByte(rest[open+1:], '}')
		if closing < 0 {
			out.WriteString(rest)
			break
		}
		closing += open + 1

		out.WriteString(rest[:open])
		name := rest[open+1 : closing]

		// uma chave aberta dentro do nome indica que o placeholder real começa depois
		if inner := strings.LastIndexByte(name, '{'); inner >= 0 {
			out.WriteString(rest[open : open+1+inner])
			rest = rest[open+1+inner:]
			continue
		}

		out.WriteString(lookup(name, campaign, vars, rest[open:closing+1]))
		rest = rest[closing+1:]
	}

	return out.String()
}

func lookup(name, campaign string, vars Vars, verbatim string) string {
	if name == CampaignPlaceholder && campaign != "" {
		return campaign
	}

	if produce, ok := vars[name]; ok && produce != nil {
		return produce()
	}

	return verbatim
}

// Placeholders lista os nomes de placeholders presentes em pattern, na ordem em que aparecem
func Placeholders(pattern string) []string {
	names := make([]string, 0)
	rest := pattern
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			return names
		}
		closing := strings.IndexByte(rest[open+1:], '}')
		if closing < 0 {
			return names
		}
		name := rest[open+1 : open+1+closing]
		if inner := strings.LastIndexByte(name, '{'); inner >= 0 {
			rest = rest[open+1+inner:]
			continue
		}
		if name != "" {
			names = append(names, name)
		}
		rest = rest[open+1+closing+1:]
	}
}
