package datasourcing

import (
	"embed"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/vfg2006/campaign-demo-api/internal/domain"
	"github.com/vfg2006/campaign-demo-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

//go:embed fixtures/*.json
var fixtureFS embed.FS

const (
	campaignsFixture = "fixtures/campaigns.json"
	creativesFixture = "fixtures/creatives.json"
	alertsFixture    = "fixtures/alerts.json"
	audienceFixture  = "fixtures/audience.json"
)

// fixtures guarda o conteúdo bruto dos arquivos estáticos; cada leitura decodifica uma cópia nova
type fixtures struct {
	raw map[string][]byte
}

func loadFixtures() (*fixtures, error) {
	f := &fixtures{raw: make(map[string][]byte)}

	for _, name := range []string{campaignsFixture, creativesFixture, alertsFixture, audienceFixture} {
		data, err := fixtureFS.ReadFile(name)
		if err != nil {
			return nil, errors.Wrapf(err, "reading %s", name)
		}
		f.raw[name] = data
	}

	// valida tudo uma vez na carga
	if _, err := f.campaigns(); err != nil {
		return nil, err
	}
	if _, err := f.creatives(); err != nil {
		return nil, err
	}
	if _, err := f.alerts(); err != nil {
		return nil, err
	}
	if _, err := f.audience(); err != nil {
		return nil, err
	}

	return f, nil
}

func decode[T any](f *fixtures, name string) (T, error) {
	var out T
	if err := json.Unmarshal(f.raw[name], &out); err != nil {
		return out, NewDataSourceError(ErrFixtureDecode, apiErrors.ErrInternalServer, errors.Wrap(err, name).Error())
	}
	return out, nil
}

func (f *fixtures) campaigns() ([]*domain.Campaign, error) {
	return decode[[]*domain.Campaign](f, campaignsFixture)
}

func (f *fixtures) creatives() ([]*domain.Creative, error) {
	return decode[[]*domain.Creative](f, creativesFixture)
}

func (f *fixtures) alerts() ([]*domain.Alert, error) {
	alerts, err := decode[[]*domain.Alert](f, alertsFixture)
	if err != nil {
		return nil, err
	}
	domain.SortAlerts(alerts)
	return alerts, nil
}

func (f *fixtures) audience() (*domain.AudienceInsight, error) {
	return decode[*domain.AudienceInsight](f, audienceFixture)
}
