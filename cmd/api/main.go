package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/enriquevdb/compliance-engine/internal/handlers"
	"github.com/enriquevdb/compliance-engine/internal/interfaces"
	"github.com/enriquevdb/compliance-engine/internal/logger"
	"github.com/enriquevdb/compliance-engine/internal/server"
	"github.com/enriquevdb/compliance-engine/internal/services"
	"github.com/enriquevdb/compliance-engine/internal/sources"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func main() {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	stage := os.Getenv("STAGE")
	if stage == "" {
		stage = "local"
	}
	logger.InitLogger(stage)

	// Emit money and rate values as JSON numbers, matching the response contract.
	decimal.MarshalJSONWithoutQuotes = true

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var (
		rateSource     interfaces.RateSource
		lookup         interfaces.JurisdictionLookup
		volumeSource   interfaces.MerchantVolumeSource
		exemptionRules interfaces.ExemptionRuleSource
	)

	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		pg, err := sources.ConnectPostgresRuleSource(ctx, databaseURL)
		if err != nil {
			logger.Fatal("Failed to connect rule database", zap.Error(err))
		}
		defer pg.Close()

		rateSource, lookup, volumeSource, exemptionRules = pg, pg, pg, pg
		logger.Info("Using Postgres rule sources")
	} else {
		static := sources.NewStaticJurisdictionLookup(sources.DefaultJurisdictionSet())
		rateSource = sources.NewDefaultRateSource()
		lookup = static
		volumeSource = sources.NewDefaultMerchantVolumeSource()
		exemptionRules = sources.NewDefaultExemptionRuleSource()
		logger.Info("Using built-in static rule sources")
	}

	rateTable, err := services.BuildRateTable(ctx, rateSource)
	if err != nil {
		logger.Fatal("Failed to build rate table", zap.Error(err))
	}

	rules, err := services.BuildExemptionRules(ctx, exemptionRules)
	if err != nil {
		logger.Fatal("Failed to build exemption rules", zap.Error(err))
	}

	lookupTimeout := services.DefaultLookupTimeout
	if raw := os.Getenv("LOOKUP_TIMEOUT"); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			lookupTimeout = parsed
		} else {
			logger.Warn("Ignoring invalid LOOKUP_TIMEOUT", zap.String("value", raw))
		}
	}

	// The fallback snapshot is the shipped local copy of the supported
	// jurisdictions, used when the remote lookup fails or times out.
	orchestrator := services.NewGateOrchestrator([]services.Gate{
		services.NewInputValidationGate(),
		services.NewAddressValidationGate(lookup, sources.DefaultJurisdictionSet(), lookupTimeout),
		services.NewApplicabilityGate(volumeSource),
		services.NewExemptionGate(rules),
	})

	engine := services.NewComplianceEngine(orchestrator, services.NewFeeCalculator(rateTable))

	common := handlers.NewCommonServices(handlers.CommonServicesConfig{
		ComplianceService: engine,
		RateTable:         rateTable,
	})

	router := server.NewRouter(common)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logger.Info("Server starting", zap.String("port", port))
	if err := router.Run(":" + port); err != nil {
		logger.Fatal("Error starting server", zap.Error(err))
	}
}
