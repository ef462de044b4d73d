package main

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"github.com/vfg2006/campaign-demo-api/internal/domain"
	"github.com/vfg2006/campaign-demo-api/internal/usecases/generating"
	"github.com/vfg2006/campaign-demo-api/internal/usecases/scenario"
	"github.com/vfg2006/campaign-demo-api/pkg/sampling"
	"github.com/vfg2006/campaign-demo-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type options struct {
	seed   int64
	count  int
	pretty bool
}

func (o *options) generator() *generating.Generator {
	return generating.New(sampling.New(o.seed))
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "demogen",
		Short:         "Gera dados sintéticos de campanhas em JSON",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().Int64Var(&opts.seed, "seed", 0, "semente do gerador (0 usa o relógio)")
	root.PersistentFlags().IntVar(&opts.count, "count", 4, "quantidade de entidades geradas")
	root.PersistentFlags().BoolVar(&opts.pretty, "pretty", false, "JSON indentado")

	root.AddCommand(
		newCampaignsCmd(opts),
		newCreativesCmd(opts),
		newAlertsCmd(opts),
		newAudienceCmd(opts),
		newAnalyticsCmd(opts),
		newScenariosCmd(opts),
	)

	return root
}

func validCount(count int) error {
	if count < 0 {
		return fmt.Errorf("--count must not be negative, got %d", count)
	}
	return nil
}

func newCampaignsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "campaigns",
		Short: "Gera campanhas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validCount(opts.count); err != nil {
				return err
			}
			return write(cmd.OutOrStdout(), opts.pretty, opts.generator().GenerateCampaigns(opts.count))
		},
	}
}

func newCreativesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "creatives [campaign-id...]",
		Short: "Gera criativos para as campanhas informadas ou para --count campanhas",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validCount(opts.count); err != nil {
				return err
			}

			ids := args
			if len(ids) == 0 {
				for _, c := range opts.generator().GenerateCampaigns(opts.count) {
					ids = append(ids, c.ID)
				}
			}
			if len(ids) == 0 {
				return write(cmd.OutOrStdout(), opts.pretty, []*domain.Creative{})
			}
			return write(cmd.OutOrStdout(), opts.pretty, opts.generator().GenerateCreatives(ids...))
		},
	}
}

func newAlertsCmd(opts *options) *cobra.Command {
	var historyDays int
	var realTime bool

	cmd := &cobra.Command{
		Use:   "alerts",
		Short: "Gera alertas, histórico (--history) ou alertas em tempo real (--realtime)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validCount(opts.count); err != nil {
				return err
			}
			g := opts.generator()

			switch {
			case historyDays > 0:
				return write(cmd.OutOrStdout(), opts.pretty, g.GenerateAlertHistory(historyDays))
			case realTime:
				return write(cmd.OutOrStdout(), opts.pretty, g.GenerateRealTimeAlerts(g.GenerateCampaigns(opts.count)))
			default:
				return write(cmd.OutOrStdout(), opts.pretty, g.GenerateAlerts(opts.count))
			}
		},
	}

	cmd.Flags().IntVar(&historyDays, "history", 0, "gera o histórico dos últimos N dias")
	cmd.Flags().BoolVar(&realTime, "realtime", false, "deriva alertas das métricas de --count campanhas")
	cmd.MarkFlagsMutuallyExclusive("history", "realtime")

	return cmd
}

func newAudienceCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "audience",
		Short: "Gera insights de audiência",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return write(cmd.OutOrStdout(), opts.pretty, opts.generator().GenerateAudienceInsights())
		},
	}
}

func newAnalyticsCmd(opts *options) *cobra.Command {
	var forecastDays int

	cmd := &cobra.Command{
		Use:   "analytics",
		Short: "Gera campanhas e calcula o resumo analítico",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validCount(opts.count); err != nil {
				return err
			}
			if forecastDays <= 0 {
				return fmt.Errorf("--forecast-days must be positive, got %d", forecastDays)
			}
			g := opts.generator()
			return write(cmd.OutOrStdout(), opts.pretty, g.Analytics(g.GenerateCampaigns(opts.count), forecastDays))
		},
	}

	cmd.Flags().IntVar(&forecastDays, "forecast-days", generating.DefaultForecastDays, "horizonte da projeção em dias")

	return cmd
}

func newScenariosCmd(opts *options) *cobra.Command {
	var progressDays int

	cmd := &cobra.Command{
		Use:   "scenarios [id]",
		Short: "Lista os cenários ou mostra um cenário, opcionalmente avançado --progress dias",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := scenario.New()
			if err != nil {
				return err
			}

			if len(args) == 0 {
				return write(cmd.OutOrStdout(), opts.pretty, catalog.List())
			}

			if progressDays > 0 {
				s, err := catalog.ProgressScenario(args[0], progressDays)
				if err != nil {
					return err
				}
				return write(cmd.OutOrStdout(), opts.pretty, s)
			}

			s, err := catalog.Get(args[0])
			if err != nil {
				return err
			}
			return write(cmd.OutOrStdout(), opts.pretty, s)
		},
	}

	cmd.Flags().IntVar(&progressDays, "progress", 0, "avança o gasto das campanhas do cenário em N dias")

	return cmd
}

func write(out io.Writer, pretty bool, v any) error {
	if pretty {
		s, err := utils.PrettyJson(v)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, s)
		return err
	}

	return json.NewEncoder(out).Encode(v)
}
