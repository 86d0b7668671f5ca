package format_test

import (
	"strings"
	"testing"

	"github.com/alejandrodnm/botmonitor/internal/domain"
	"github.com/alejandrodnm/botmonitor/internal/format"
	"github.com/stretchr/testify/assert"
)

func f(v float64) *float64 { return &v }

func TestNumber_AutoPrecisionByMagnitude(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0.19, "0.19000"},     // |v| < 1 → 5 decimales
		{-0.5, "-0.50000"},
		{2.6, "2.6000"},       // 1 <= |v| < 10 → 4 decimales
		{-9.99, "-9.9900"},
		{10, "10.00"},         // resto → 2 decimales
		{64230.5, "64230.50"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, format.Number(f(tc.in), format.Auto), "valor %v", tc.in)
	}
}

func TestNumber_ExplicitDecimals(t *testing.T) {
	assert.Equal(t, "0.2", format.Number(f(0.19), 1))
	assert.Equal(t, "3.14", format.Number(f(3.14159), 2))
}

func TestNumber_NilIsPlaceholder(t *testing.T) {
	assert.Equal(t, "--", format.Number(nil, format.Auto))
	assert.Equal(t, "--", format.Number(nil, 2))
}

func TestPnl_SignAlwaysVisible(t *testing.T) {
	assert.Equal(t, "+5.00", format.Pnl(f(5)))
	assert.Equal(t, "-2.50", format.Pnl(f(-2.5)))
	// Cero cuenta como no-negativo.
	assert.True(t, strings.HasPrefix(format.Pnl(f(0)), "+"))
	assert.Equal(t, "--", format.Pnl(nil))
}

func TestTime(t *testing.T) {
	assert.Equal(t, "03/15 09:42", format.Time("2025-03-15T09:42:11Z"))
	assert.Equal(t, "03/15 09:42", format.Time("2025-03-15 09:42:11"))
	assert.Equal(t, "--", format.Time(""))
	assert.Equal(t, "--", format.Time("no-es-una-fecha"))
}

func TestDuration(t *testing.T) {
	m := func(v int) *int { return &v }

	assert.Equal(t, "2小时5分钟", format.Duration(m(125)))
	assert.Equal(t, "45分钟", format.Duration(m(45)))
	assert.Equal(t, "1小时0分钟", format.Duration(m(60)))
	assert.Equal(t, "--", format.Duration(nil))
	assert.Equal(t, "--", format.Duration(m(-1)))
}

func TestSignClass(t *testing.T) {
	assert.Equal(t, "positive", format.SignClass(f(1.5)))
	assert.Equal(t, "positive", format.SignClass(f(0)))
	assert.Equal(t, "negative", format.SignClass(f(-0.01)))
	assert.Equal(t, "negative", format.SignClass(nil))
}

func TestRiskClass_ClosedMapping(t *testing.T) {
	assert.Equal(t, domain.RiskAggressive, format.RiskClass("积极"))
	assert.Equal(t, domain.RiskCalm, format.RiskClass("冷静"))
	assert.Equal(t, domain.RiskNormal, format.RiskClass("正常"))
	assert.Equal(t, domain.RiskNormal, format.RiskClass(""))
	assert.Equal(t, domain.RiskNormal, format.RiskClass("anything"))
}
