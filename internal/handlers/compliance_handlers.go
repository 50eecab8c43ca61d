package handlers

import (
	"net/http"

	"github.com/enriquevdb/compliance-engine/internal/constants"
	"github.com/enriquevdb/compliance-engine/internal/logger"
	"github.com/enriquevdb/compliance-engine/internal/types/api/params"
	"github.com/enriquevdb/compliance-engine/internal/types/api/responses"
	"github.com/enriquevdb/compliance-engine/internal/types/business"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ComplianceHandler exposes the compliance engine over HTTP.
type ComplianceHandler struct {
	common *CommonServices
}

// NewComplianceHandler creates a handler over the shared services.
func NewComplianceHandler(common *CommonServices) *ComplianceHandler {
	return &ComplianceHandler{common: common}
}

// CalculateComplianceRequest is the calculate endpoint's request body.
type CalculateComplianceRequest struct {
	Transaction business.Transaction    `json:"transaction" binding:"required"`
	Context     business.RequestContext `json:"context"`
}

// Calculate runs a transaction through the compliance pipeline and
// returns the structurally fixed compliance response. Gate rejections
// come back as a normal 200 with status REJECTED; FAILED is produced
// here only when the engine errors unexpectedly.
func (h *ComplianceHandler) Calculate(c *gin.Context) {
	var req CalculateComplianceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	requestID := uuid.New().String()
	if req.Context.RequestID == "" {
		req.Context.RequestID = requestID
	}

	response, err := h.common.ComplianceService.Process(c.Request.Context(), params.CalculationParams{
		Transaction: req.Transaction,
		Context:     req.Context,
	})
	if err != nil {
		logger.Log.Error("Compliance processing failed",
			zap.String("request_id", requestID),
			zap.String("transaction_id", req.Transaction.ID),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, responses.ComplianceResponse{
			TransactionID: req.Transaction.ID,
			Status:        constants.StatusFailed,
			Gates:         []responses.GateEntry{},
			AuditTrail:    []string{"processing failed: internal error"},
		})
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetJurisdictionRates reports the configured rates for one state.
func (h *ComplianceHandler) GetJurisdictionRates(c *gin.Context) {
	state := c.Param("state")

	if !h.common.RateTable.HasState(state) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "No rates configured for state " + state})
		return
	}

	response := responses.JurisdictionRatesResponse{
		State:             state,
		StateRate:         h.common.RateTable.StateRate(state),
		CityRates:         h.common.RateTable.CityRatesFor(state),
		CategoryModifiers: h.common.RateTable.CategoryModifiers(),
	}
	if countyRate, ok := h.common.RateTable.CountyRate(state, ""); ok {
		response.CountyRate = &countyRate
	}

	c.JSON(http.StatusOK, response)
}
