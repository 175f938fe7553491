package services

import (
	"github.com/SscSPs/erp_backend/internal/core/currency"
	"github.com/SscSPs/erp_backend/internal/core/ports/events"
	portsrepo "github.com/SscSPs/erp_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_backend/internal/core/ports/services"
	"github.com/SscSPs/erp_backend/internal/platform/metrics"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(
	registry *currency.Registry,
	repos portsrepo.RepositoryProvider,
	publisher events.RateEventPublisher,
	m *metrics.Metrics,
) *portssvc.ServiceContainer {
	resolver := NewRateResolver(registry, repos.ExchangeRateRepo, m)

	return &portssvc.ServiceContainer{
		Currency: NewCurrencyService(registry, resolver, repos.ExchangeRateRepo),
		ExchangeRate: NewExchangeRateService(registry, repos.ExchangeRateRepo,
			WithRateEventPublisher(publisher),
			WithExchangeRateMetrics(m),
		),
		CurrencyInitializer: NewCurrencyInitializer(repos.TxManager, repos.SettingRepo, repos.ExchangeRateRepo),
	}
}
