package handlers

import (
	"github.com/enriquevdb/compliance-engine/internal/interfaces"
	"github.com/enriquevdb/compliance-engine/internal/logger"
	"github.com/enriquevdb/compliance-engine/internal/types/business"
	"go.uber.org/zap"
)

// CommonServices holds the shared dependencies used across handlers.
type CommonServices struct {
	ComplianceService interfaces.ComplianceService
	RateTable         *business.RateTable
	logger            *zap.Logger
}

// CommonServicesConfig contains all dependencies needed to create CommonServices
type CommonServicesConfig struct {
	ComplianceService interfaces.ComplianceService
	RateTable         *business.RateTable
	Logger            *zap.Logger
}

// NewCommonServices creates a new instance of CommonServices.
func NewCommonServices(config CommonServicesConfig) *CommonServices {
	if config.Logger == nil {
		config.Logger = logger.Log
	}

	return &CommonServices{
		ComplianceService: config.ComplianceService,
		RateTable:         config.RateTable,
		logger:            config.Logger,
	}
}

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse represents a standard success response
type SuccessResponse struct {
	Message string `json:"message"`
}
