package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/erp_backend/internal/apperrors"
	"github.com/SscSPs/erp_backend/internal/core/currency"
	"github.com/SscSPs/erp_backend/internal/core/domain"
	portssvc "github.com/SscSPs/erp_backend/internal/core/ports/services"
	"github.com/SscSPs/erp_backend/internal/core/services"
	"github.com/SscSPs/erp_backend/internal/platform/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type RateResolverTestSuite struct {
	suite.Suite
	mockRateRepo *MockExchangeRateRepository
	metrics      *metrics.Metrics
	resolver     portssvc.RateResolverSvc
}

func (suite *RateResolverTestSuite) SetupTest() {
	suite.mockRateRepo = new(MockExchangeRateRepository)
	suite.metrics = metrics.New()
	suite.resolver = services.NewRateResolver(currency.DefaultRegistry(), suite.mockRateRepo, suite.metrics)
}

func (suite *RateResolverTestSuite) absent(from, to string) {
	suite.mockRateRepo.On("FindDirect", mock.Anything, from, to).
		Return(nil, apperrors.NewNotFoundError("exchange rate not found"))
}

func (suite *RateResolverTestSuite) present(from, to, rate string) {
	suite.mockRateRepo.On("FindDirect", mock.Anything, from, to).
		Return(rateRow(from+"-"+to, from, to, rate), nil)
}

func (suite *RateResolverTestSuite) resolutions(strategy domain.ResolutionStrategy) float64 {
	return testutil.ToFloat64(suite.metrics.RateResolutionsTotal.WithLabelValues(string(strategy)))
}

func (suite *RateResolverTestSuite) TestIdentity() {
	resolved, err := suite.resolver.ResolveRate(context.Background(), "usd", "USD")

	suite.Require().NoError(err)
	suite.Equal("1.0000000000", resolved.Rate.StringFixed(domain.RateScale))
	suite.Equal(domain.StrategyIdentity, resolved.Strategy)
	suite.Empty(resolved.Path)
	suite.True(resolved.IsDirect())
	suite.Equal("USD", resolved.From.Code)
	suite.Equal(1.0, suite.resolutions(domain.StrategyIdentity))
	suite.mockRateRepo.AssertNotCalled(suite.T(), "FindDirect", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RateResolverTestSuite) TestDirect_RateUnchanged() {
	suite.present("USD", "VES", "200.0000000000")

	resolved, err := suite.resolver.ResolveRate(context.Background(), "USD", "ves")

	suite.Require().NoError(err)
	suite.Equal("200.0000000000", resolved.Rate.StringFixed(domain.RateScale))
	suite.Equal(domain.StrategyDirect, resolved.Strategy)
	suite.Require().Len(resolved.Path, 1)
	suite.Equal("USD", resolved.Path[0].From.Code)
	suite.Equal("VES", resolved.Path[0].To.Code)
	suite.True(resolved.IsDirect())
	suite.Equal(1.0, suite.resolutions(domain.StrategyDirect))
}

func (suite *RateResolverTestSuite) TestDirect_FullPrecisionKept() {
	suite.present("EUR", "CNY", "7.1234567891")

	rate, err := suite.resolver.CalculateRate(context.Background(), "EUR", "CNY")

	suite.Require().NoError(err)
	suite.Equal("7.1234567891", rate)
}

func (suite *RateResolverTestSuite) TestHubForward() {
	suite.absent("EUR", "CNY")
	suite.present("EUR", "USD", "1.1")
	suite.present("USD", "CNY", "7.2")

	resolved, err := suite.resolver.ResolveRate(context.Background(), "EUR", "CNY")

	suite.Require().NoError(err)
	suite.Equal("7.9200000000", resolved.Rate.StringFixed(domain.RateScale))
	suite.Equal(domain.StrategyHubForward, resolved.Strategy)
	suite.False(resolved.IsDirect())
	suite.Require().Len(resolved.Path, 2)
	suite.Equal("EUR", resolved.Path[0].From.Code)
	suite.Equal("USD", resolved.Path[0].To.Code)
	suite.Equal("USD", resolved.Path[1].From.Code)
	suite.Equal("CNY", resolved.Path[1].To.Code)
	suite.Equal(1.0, suite.resolutions(domain.StrategyHubForward))
}

func (suite *RateResolverTestSuite) TestHubForward_ProductRoundedToTenDigits() {
	suite.absent("EUR", "CNY")
	suite.present("EUR", "USD", "1.0000000001")
	suite.present("USD", "CNY", "1.0000000001")

	rate, err := suite.resolver.CalculateRate(context.Background(), "EUR", "CNY")

	suite.Require().NoError(err)
	// exact product is 1.00000000020000000001
	suite.Equal("1.0000000002", rate)
}

func (suite *RateResolverTestSuite) TestHubInverse() {
	suite.absent("EUR", "CNY")
	suite.absent("EUR", "USD")
	suite.present("CNY", "USD", "0.14")
	suite.present("USD", "EUR", "0.9")

	resolved, err := suite.resolver.ResolveRate(context.Background(), "EUR", "CNY")

	suite.Require().NoError(err)
	// 1 / (0.14 * 0.9) = 7.93650793650...
	suite.Equal("7.9365079365", resolved.Rate.StringFixed(domain.RateScale))
	suite.Equal(domain.StrategyHubInverse, resolved.Strategy)
	suite.False(resolved.IsDirect())
	suite.Require().Len(resolved.Path, 2)
	suite.Equal("CNY", resolved.Path[0].From.Code)
	suite.Equal("USD", resolved.Path[0].To.Code)
	suite.Equal("USD", resolved.Path[1].From.Code)
	suite.Equal("EUR", resolved.Path[1].To.Code)
	suite.Equal(1.0, suite.resolutions(domain.StrategyHubInverse))
}

func (suite *RateResolverTestSuite) TestHubForwardIncomplete_FallsBackToInverse() {
	suite.absent("EUR", "CNY")
	suite.present("EUR", "USD", "1.1")
	suite.absent("USD", "CNY")
	suite.present("CNY", "USD", "0.5")
	suite.present("USD", "EUR", "0.8")

	rate, err := suite.resolver.CalculateRate(context.Background(), "EUR", "CNY")

	suite.Require().NoError(err)
	suite.Equal("2.5000000000", rate)
}

func (suite *RateResolverTestSuite) TestNoPath_ReverseOfSeededRow() {
	// only USD -> VES exists
	suite.absent("VES", "USD")
	suite.absent("USD", "USD")

	_, err := suite.resolver.ResolveRate(context.Background(), "VES", "USD")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNoRatePath)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Contains(err.Error(), "VES")
	suite.Contains(err.Error(), "USD")
	suite.Equal(1.0, suite.resolutions(domain.StrategyNone))
}

func (suite *RateResolverTestSuite) TestNoPath_StarTopologyThroughLegalTender() {
	// seeded rows point at VES, the hub is USD
	suite.absent("EUR", "USD")
	suite.absent("USD", "USD")

	_, err := suite.resolver.CalculateRate(context.Background(), "EUR", "USD")

	suite.ErrorIs(err, apperrors.ErrNoRatePath)
}

func (suite *RateResolverTestSuite) TestInvalidCodes_FirstReported() {
	_, err := suite.resolver.ResolveRate(context.Background(), "XXX", "YYY")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidCurrencyCode)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Contains(err.Error(), "XXX")
	suite.NotContains(err.Error(), "YYY")

	_, err = suite.resolver.ResolveRate(context.Background(), "USD", "ZZZ")
	suite.Require().Error(err)
	suite.Contains(err.Error(), "ZZZ")

	suite.mockRateRepo.AssertNotCalled(suite.T(), "FindDirect", mock.Anything, mock.Anything, mock.Anything)
	suite.Equal(0.0, suite.resolutions(domain.StrategyNone))
}

func (suite *RateResolverTestSuite) TestStoreFailure_Propagates() {
	storeErr := apperrors.NewAppError(500, "failed to find exchange rate", errors.New("connection refused"))
	suite.mockRateRepo.On("FindDirect", mock.Anything, "USD", "VES").Return(nil, storeErr)

	_, err := suite.resolver.ResolveRate(context.Background(), "USD", "VES")

	suite.Require().Error(err)
	suite.ErrorIs(err, storeErr)
	suite.NotErrorIs(err, apperrors.ErrNotFound)
	suite.mockRateRepo.AssertNumberOfCalls(suite.T(), "FindDirect", 1)
}

func TestRateResolverTestSuite(t *testing.T) {
	suite.Run(t, new(RateResolverTestSuite))
}
