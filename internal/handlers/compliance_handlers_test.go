package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/enriquevdb/compliance-engine/internal/constants"
	"github.com/enriquevdb/compliance-engine/internal/handlers"
	"github.com/enriquevdb/compliance-engine/internal/logger"
	"github.com/enriquevdb/compliance-engine/internal/server"
	"github.com/enriquevdb/compliance-engine/internal/services"
	"github.com/enriquevdb/compliance-engine/internal/sources"
	"github.com/enriquevdb/compliance-engine/internal/types/api/params"
	"github.com/enriquevdb/compliance-engine/internal/types/api/responses"
	"github.com/enriquevdb/compliance-engine/internal/types/business"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	logger.InitLogger("test")
	gin.SetMode(gin.TestMode)
	decimal.MarshalJSONWithoutQuotes = true
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	rateTable, err := services.BuildRateTable(context.Background(), sources.NewDefaultRateSource())
	require.NoError(t, err)
	rules, err := services.BuildExemptionRules(context.Background(), sources.NewDefaultExemptionRuleSource())
	require.NoError(t, err)

	lookup := sources.NewStaticJurisdictionLookup(sources.DefaultJurisdictionSet())
	orchestrator := services.NewGateOrchestrator([]services.Gate{
		services.NewInputValidationGate(),
		services.NewAddressValidationGate(lookup, lookup.Set(), time.Second),
		services.NewApplicabilityGate(sources.NewDefaultMerchantVolumeSource()),
		services.NewExemptionGate(rules),
	})
	engine := services.NewComplianceEngine(orchestrator, services.NewFeeCalculator(rateTable))

	common := handlers.NewCommonServices(handlers.CommonServicesConfig{
		ComplianceService: engine,
		RateTable:         rateTable,
	})
	return server.NewRouter(common)
}

func calculateBody(t *testing.T, merchantID, state, city, customerType string) *bytes.Buffer {
	t.Helper()
	body, err := json.Marshal(gin.H{
		"transaction": gin.H{
			"transactionId": "TXN-1001",
			"merchantId":    merchantID,
			"customerId":    "CUST-1",
			"destination":   gin.H{"country": "US", "state": state, "city": city},
			"items": []gin.H{
				{"id": "ITM-1", "category": "SOFTWARE", "amount": 100.00},
			},
			"totalAmount": 100.00,
			"currency":    "USD",
		},
		"context": gin.H{"customerType": customerType},
	})
	require.NoError(t, err)
	return bytes.NewBuffer(body)
}

func TestCalculateEndpoint_Calculated(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/compliance/calculate",
		calculateBody(t, "MERCH-001", "CA", "LOS_ANGELES", "RETAIL"))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var response responses.ComplianceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	assert.Equal(t, "TXN-1001", response.TransactionID)
	assert.Equal(t, constants.StatusCalculated, response.Status)
	require.NotNil(t, response.Calculation)
	assert.True(t, response.Calculation.TotalFees.Equal(decimal.RequireFromString("9.50")),
		"total fees should be 9.50, got %s", response.Calculation.TotalFees)
	assert.True(t, response.Calculation.EffectiveRate.Equal(decimal.RequireFromString("0.095")))

	// Money fields serialize as JSON numbers, not strings.
	assert.Contains(t, w.Body.String(), `"totalFees":9.5`)
	assert.Contains(t, w.Body.String(), `"transactionId":"TXN-1001"`)
}

func TestCalculateEndpoint_Rejected(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/compliance/calculate",
		calculateBody(t, "MERCH-002", "CA", "LOS_ANGELES", ""))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	// Gate rejections are a successful processing outcome.
	require.Equal(t, http.StatusOK, w.Code)

	var response responses.ComplianceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, constants.StatusRejected, response.Status)
	assert.Nil(t, response.Calculation)
}

func TestCalculateEndpoint_ExemptionGateAlwaysListsExemptions(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/compliance/calculate",
		calculateBody(t, "MERCH-001", "CA", "LOS_ANGELES", "WHOLESALE"))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"appliedExemptions":["WHOLESALE"]`)

	// Without exemptions the entry still carries an empty array.
	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodPost, "/api/v1/compliance/calculate",
		calculateBody(t, "MERCH-001", "CA", "LOS_ANGELES", "RETAIL"))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"appliedExemptions":[]`)
}

func TestCalculateEndpoint_InvalidBody(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/compliance/calculate",
		strings.NewReader(`{"transaction":`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Contains(t, response.Error, "Invalid request body")
}

// failingComplianceService simulates an engine blowing up mid-request.
type failingComplianceService struct{}

func (s *failingComplianceService) Process(ctx context.Context, params params.CalculationParams) (*responses.ComplianceResponse, error) {
	return nil, errors.New("pipeline state corrupted")
}

func TestCalculateEndpoint_EngineFailure(t *testing.T) {
	rateTable := business.NewRateTable(nil, nil, nil, nil)
	common := handlers.NewCommonServices(handlers.CommonServicesConfig{
		ComplianceService: &failingComplianceService{},
		RateTable:         rateTable,
	})
	router := server.NewRouter(common)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/compliance/calculate",
		calculateBody(t, "MERCH-001", "CA", "LOS_ANGELES", ""))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var response responses.ComplianceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, constants.StatusFailed, response.Status)
	// Internal error details never leak into the response.
	assert.NotContains(t, w.Body.String(), "pipeline state corrupted")
}

func TestJurisdictionRatesEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/compliance/rates/CA", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var response responses.JurisdictionRatesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "CA", response.State)
	assert.True(t, response.StateRate.Equal(decimal.RequireFromString("0.06")))
	require.NotNil(t, response.CountyRate)
	assert.True(t, response.CountyRate.Equal(decimal.RequireFromString("0.0025")))
	assert.Len(t, response.CityRates, 3)
}

func TestJurisdictionRatesEndpoint_UnknownState(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/compliance/rates/NV", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
