package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/enriquevdb/compliance-engine/internal/constants"
	"github.com/enriquevdb/compliance-engine/internal/mocks"
	"github.com/enriquevdb/compliance-engine/internal/services"
	"github.com/enriquevdb/compliance-engine/internal/sources"
	"github.com/enriquevdb/compliance-engine/internal/types/business"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func merchantTransaction(merchantID, state string) business.Transaction {
	tx := validTransaction()
	tx.MerchantID = merchantID
	tx.Destination.State = state
	return tx
}

func TestApplicabilityGate_DefaultRecords(t *testing.T) {
	gate := services.NewApplicabilityGate(sources.NewDefaultMerchantVolumeSource())

	tests := []struct {
		name       string
		merchantID string
		state      string
		wantPassed bool
	}{
		{name: "volume above threshold", merchantID: "MERCH-001", state: "CA", wantPassed: true},
		{name: "volume below threshold", merchantID: "MERCH-002", state: "CA", wantPassed: false},
		{name: "volume above threshold in second state", merchantID: "MERCH-001", state: "TX", wantPassed: true},
		{name: "unknown merchant reports zero volume", merchantID: "MERCH-999", state: "CA", wantPassed: false},
		{name: "known merchant in unconfigured state", merchantID: "MERCH-001", state: "NY", wantPassed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := gate.Execute(context.Background(), merchantTransaction(tt.merchantID, tt.state), business.RequestContext{})

			assert.Equal(t, constants.GateApplicability, result.GateName)
			assert.Equal(t, tt.wantPassed, result.Passed)
			if !tt.wantPassed {
				assert.Equal(t, constants.ErrorTypeValidation, result.ErrorType)
			}
		})
	}
}

func TestApplicabilityGate_ExplicitThreshold(t *testing.T) {
	source := sources.NewStaticMerchantVolumeSource()
	source.SetVolume("MERCH-010", "CA", decimal.NewFromInt(60_000))
	source.SetThreshold("MERCH-010", "CA", decimal.NewFromInt(50_000))

	gate := services.NewApplicabilityGate(source)
	result := gate.Execute(context.Background(), merchantTransaction("MERCH-010", "CA"), business.RequestContext{})

	// 60k fails the 100k default but meets the configured 50k threshold.
	assert.True(t, result.Passed)
	assert.Equal(t, "50000", result.Metadata["threshold"])
}

func TestApplicabilityGate_VolumeExactlyAtThreshold(t *testing.T) {
	source := sources.NewStaticMerchantVolumeSource()
	source.SetVolume("MERCH-011", "CA", decimal.NewFromInt(constants.DefaultVolumeThreshold))

	gate := services.NewApplicabilityGate(source)
	result := gate.Execute(context.Background(), merchantTransaction("MERCH-011", "CA"), business.RequestContext{})

	assert.True(t, result.Passed, "volume equal to the threshold meets it")
}

func TestApplicabilityGate_SourceErrors(t *testing.T) {
	tests := []struct {
		name       string
		setupMocks func(volumes *mocks.MockMerchantVolumeSource)
	}{
		{
			name: "volume lookup error",
			setupMocks: func(volumes *mocks.MockMerchantVolumeSource) {
				volumes.EXPECT().Volume(gomock.Any(), "MERCH-001", "CA").
					Return(decimal.Zero, errors.New("connection reset"))
			},
		},
		{
			name: "threshold lookup error",
			setupMocks: func(volumes *mocks.MockMerchantVolumeSource) {
				volumes.EXPECT().Volume(gomock.Any(), "MERCH-001", "CA").
					Return(decimal.NewFromInt(250_000), nil)
				volumes.EXPECT().Threshold(gomock.Any(), "MERCH-001", "CA").
					Return(decimal.Zero, false, errors.New("connection reset"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			volumes := mocks.NewMockMerchantVolumeSource(ctrl)
			tt.setupMocks(volumes)

			gate := services.NewApplicabilityGate(volumes)
			result := gate.Execute(context.Background(), merchantTransaction("MERCH-001", "CA"), business.RequestContext{})

			assert.False(t, result.Passed)
			assert.Equal(t, constants.ErrorTypeDependency, result.ErrorType)
		})
	}
}
