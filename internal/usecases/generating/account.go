package generating

import (
	"fmt"

	"github.com/vfg2006/campaign-demo-api/internal/domain"
)

// GenerateAccounts gera 2 ou 3 contas de anúncio
func (g *Generator) GenerateAccounts() []*domain.AdAccount {
	n := g.sampler.IntBetween(2, len(accountNames))
	accounts := make([]*domain.AdAccount, 0, n)
	for i := 0; i < n; i++ {
		accounts = append(accounts, &domain.AdAccount{
			ID:       fmt.Sprintf("acc_%03d", i+1),
			Name:     accountNames[i],
			Currency: "USD",
			Timezone: "America/New_York",
			Status:   domain.AdAccountStatusActive,
		})
	}
	return accounts
}
