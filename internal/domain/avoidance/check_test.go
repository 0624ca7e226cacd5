package avoidance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRiskLevel_Ordinal(t *testing.T) {
	assert.Equal(t, 0, RiskLow.Ordinal())
	assert.Equal(t, 1, RiskMedium.Ordinal())
	assert.Equal(t, 2, RiskHigh.Ordinal())
	assert.Equal(t, -1, RiskLevel("unknown").Ordinal())
}

func TestMaxRisk(t *testing.T) {
	tests := []struct {
		a, b, expected RiskLevel
	}{
		{RiskLow, RiskLow, RiskLow},
		{RiskLow, RiskMedium, RiskMedium},
		{RiskMedium, RiskLow, RiskMedium},
		{RiskMedium, RiskHigh, RiskHigh},
		{RiskHigh, RiskLow, RiskHigh},
		{RiskLevel("unknown"), RiskLow, RiskLow},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, MaxRisk(tt.a, tt.b))
	}
}
