package components

import (
	"rental-pricing/internal/domain/pricing"
	"rental-pricing/internal/pkg/clock"
	"rental-pricing/internal/pkg/config"
	"rental-pricing/internal/pkg/money"
	"rental-pricing/internal/pkg/ratetext"
	"rental-pricing/internal/usecase"
	"rental-pricing/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		pricing.NewDefaultCalculator,
		fx.As(new(pricing.Calculator)),
	),
	func(cfg config.Config) *ratetext.Parser {
		return ratetext.NewParser(cfg.Pricing.RateMarkers...)
	},
	fx.Annotate(
		func(cfg config.Config) *money.Formatter {
			return money.NewFormatterFromLocale(cfg.Pricing.Locale, cfg.Pricing.CurrencySymbol)
		},
		fx.As(new(queries.AmountFormatter)),
	),
	queries.NewRateResolver,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewQuoteQueries,
		queries.NewCatalogQueries,
		func(clk clock.Clock, cfg config.Config) queries.FormQueries {
			return queries.NewFormQueries(clk, cfg.Pricing.FormLocation())
		},
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
