package handlers_test

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/SscSPs/erp_backend/internal/apperrors"
	"github.com/SscSPs/erp_backend/internal/core/currency"
	"github.com/SscSPs/erp_backend/internal/core/domain"
	"github.com/SscSPs/erp_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func testRate(to, rate string) *domain.ExchangeRate {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return &domain.ExchangeRate{
		ExchangeRateID:   "rate-" + to,
		FromCurrencyCode: "USD",
		ToCurrencyCode:   to,
		Rate:             decimal.RequireFromString(rate),
		AuditFields: domain.AuditFields{
			CreatedAt: now, CreatedBy: domain.SystemActor, LastUpdatedAt: now, LastUpdatedBy: "user-1",
		},
	}
}

func (suite *CurrencyHandlerTestSuite) TestListCurrentRates() {
	suite.mockRateService.On("FindAllCurrent", mock.Anything).
		Return([]domain.ExchangeRate{*testRate("VES", "200")}, nil).Once()

	w := suite.do(http.MethodGet, "/currency/exchange-rate/current", "")

	suite.Require().Equal(http.StatusOK, w.Code)
	var resp []dto.ExchangeRateResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 1)
	suite.Equal("200.0000000000", resp[0].Rate)
	suite.Equal("system", resp[0].CreatedBy)
}

func (suite *CurrencyHandlerTestSuite) TestGetCurrentRateByCurrency_NotFound() {
	suite.mockRateService.On("FindCurrentRateByCurrency", mock.Anything, "CNY").
		Return(nil, apperrors.NewNotFoundError("exchange rate USD -> CNY not found")).Once()

	w := suite.do(http.MethodGet, "/currency/exchange-rate/current/CNY", "")

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *CurrencyHandlerTestSuite) TestUpdateRateByCurrency() {
	suite.mockCurrencyService.On("GetCurrencyByCode", "VES").Return(currency.DefaultCurrencies[1], nil).Once()
	suite.mockRateService.On("UpdateByCurrency", mock.Anything, "VES", dto.UpdateExchangeRateRequest{Rate: "7.25"}, "user-1").
		Return(testRate("VES", "7.25"), nil).Once()

	w := suite.do(http.MethodPatch, "/currency/exchange-rate/VES", `{"rate":"7.25"}`)

	suite.Require().Equal(http.StatusOK, w.Code)
	var resp dto.ExchangeRateResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("7.2500000000", resp.Rate)
	suite.Equal("user-1", resp.UpdatedBy)
	suite.mockRateService.AssertExpectations(suite.T())
}

func (suite *CurrencyHandlerTestSuite) TestUpdateRateByCurrency_RejectsBadBody() {
	suite.mockCurrencyService.On("GetCurrencyByCode", "VES").Return(currency.DefaultCurrencies[1], nil)
	for _, body := range []string{`{}`, `{"rate":"0"}`, `{"rate":"-3"}`, `{"rate":"abc"}`, `not json`} {
		w := suite.do(http.MethodPatch, "/currency/exchange-rate/VES", body)
		suite.Equal(http.StatusBadRequest, w.Code, body)
	}
	suite.mockRateService.AssertNotCalled(suite.T(), "UpdateByCurrency", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CurrencyHandlerTestSuite) TestUpdateRateByCurrency_UnknownCodeBeforeBody() {
	suite.mockCurrencyService.On("GetCurrencyByCode", "XXX").
		Return(domain.Currency{}, apperrors.NewInvalidCurrencyCodeError("XXX")).Once()

	w := suite.do(http.MethodPatch, "/currency/exchange-rate/XXX", `{"rate":"-1"}`)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Contains(w.Body.String(), "XXX")
	suite.mockRateService.AssertNotCalled(suite.T(), "UpdateByCurrency", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
