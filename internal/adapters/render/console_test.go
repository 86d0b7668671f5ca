package render_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/alejandrodnm/botmonitor/internal/adapters/render"
	"github.com/alejandrodnm/botmonitor/internal/domain"
	"github.com/stretchr/testify/assert"
)

func f(v float64) *float64 { return &v }

func TestRenderRuntime(t *testing.T) {
	var buf bytes.Buffer
	c := render.NewConsoleWriter(&buf)

	c.RenderRuntime(domain.RuntimeStatus{
		CurrentStartTime: "2025-03-15 09:00:00",
		CurrentRuntime:   "3小时12分钟",
		TotalRuntime:     "72小时",
		CurrentTime:      "2025-03-15 12:12:00",
	}, nil)

	out := buf.String()
	assert.Contains(t, out, "运行状态")
	assert.Contains(t, out, "3小时12分钟")
}

func TestRenderRuntime_EmptyStartShowsNotRunning(t *testing.T) {
	var buf bytes.Buffer
	c := render.NewConsoleWriter(&buf)

	c.RenderRuntime(domain.RuntimeStatus{}, nil)
	assert.Contains(t, buf.String(), "未运行")
}

func TestRenderStats_DegradedOnError(t *testing.T) {
	var buf bytes.Buffer
	c := render.NewConsoleWriter(&buf)

	c.RenderStats(domain.Stats{}, errors.New("status 500"))
	assert.Contains(t, buf.String(), "加载失败")
}

func TestRenderStats_PnlSignVisible(t *testing.T) {
	var buf bytes.Buffer
	c := render.NewConsoleWriter(&buf)

	c.RenderStats(domain.Stats{TotalTrades: 8, WinRate: f(62.5), TotalPnl: f(0)}, nil)

	out := buf.String()
	assert.Contains(t, out, "总交易次数: 8")
	assert.Contains(t, out, "+0.00", "cero es no-negativo y lleva prefijo +")
}

func TestRenderPositions_EmptyState(t *testing.T) {
	var buf bytes.Buffer
	c := render.NewConsoleWriter(&buf)

	c.RenderPositions(domain.PositionBook{}, nil)
	assert.Contains(t, buf.String(), "当前无持仓")
}

func TestRenderPositions_TableWithDuration(t *testing.T) {
	var buf bytes.Buffer
	c := render.NewConsoleWriter(&buf)

	minutes := 125
	orderID := int64(991)
	c.RenderPositions(domain.PositionBook{
		TotalUnrealizedPnl: f(2.8),
		Positions: []domain.Position{{
			Coin:            "BTC",
			Side:            "long",
			EntryPrice:      f(64230.5),
			CurrentPrice:    f(64510),
			Amount:          f(0.01),
			Leverage:        f(5),
			EntryTime:       "2025-03-15T09:42:11Z",
			DurationMinutes: &minutes,
			StopLoss:        f(63000),
			StopOrderID:     &orderID,
			Pnl:             f(2.8),
			Roe:             f(4.3),
		}},
	}, nil)

	out := buf.String()
	assert.Contains(t, out, "BTC")
	assert.Contains(t, out, "LONG")
	assert.Contains(t, out, "2小时5分钟")
	assert.Contains(t, out, "✅", "stop con orden confirmada lleva marca")
	assert.Contains(t, out, "总浮盈浮亏")
}

func TestRenderTrades_CapsAtFifteen(t *testing.T) {
	var buf bytes.Buffer
	c := render.NewConsoleWriter(&buf)

	trades := make([]domain.Trade, 20)
	for i := range trades {
		trades[i] = domain.Trade{Coin: "BTC", Side: "long", Pnl: f(1)}
	}
	trades[0].Coin = "FIRST"
	trades[15].Coin = "HIDDEN"

	c.RenderTrades(trades, nil)

	out := buf.String()
	assert.Contains(t, out, "FIRST")
	assert.NotContains(t, out, "HIDDEN", "solo se muestran los 15 más recientes")
}

func TestRenderTrades_EmptyAndError(t *testing.T) {
	var buf bytes.Buffer
	c := render.NewConsoleWriter(&buf)

	c.RenderTrades(nil, nil)
	assert.Contains(t, buf.String(), "暂无交易历史")

	buf.Reset()
	c.RenderTrades(nil, errors.New("timeout"))
	assert.Contains(t, buf.String(), "加载失败")
}

func TestRenderDecisions(t *testing.T) {
	var buf bytes.Buffer
	c := render.NewConsoleWriter(&buf)

	c.RenderDecisions([]domain.AIDecision{{
		Coin:   "ETH",
		Action: "OPEN_LONG",
		Time:   "2025-03-15T11:30:00Z",
	}}, nil)

	out := buf.String()
	assert.Contains(t, out, "OPEN_LONG")
	assert.Contains(t, out, "无理由说明", "decisión sin reason muestra el texto por defecto")

	buf.Reset()
	c.RenderDecisions(nil, nil)
	assert.Contains(t, buf.String(), "暂无AI决策记录")
}

func TestRenderPrices(t *testing.T) {
	var buf bytes.Buffer
	c := render.NewConsoleWriter(&buf)

	c.RenderPrices([]domain.PriceTick{
		{Symbol: "BTC", Price: f(64230.5)},
		{Symbol: "DOGE", Price: f(0.19)},
	}, nil)

	out := buf.String()
	assert.Contains(t, out, "BTC $64230.50")
	assert.Contains(t, out, "DOGE $0.19000")

	buf.Reset()
	c.RenderPrices(nil, errors.New("refused"))
	assert.Contains(t, buf.String(), "价格数据不可用")
}

func TestRenderRisk_NoteShown(t *testing.T) {
	var buf bytes.Buffer
	c := render.NewConsoleWriter(&buf)

	c.RenderRisk(domain.RiskProfile{
		SharpeRatio:         f(1.82),
		RiskLevel:           "积极",
		MaxPositions:        3,
		ConfidenceThreshold: f(75),
		Note:                "样本不足",
	}, nil)

	out := buf.String()
	assert.Contains(t, out, "1.82")
	assert.Contains(t, out, "积极")
	assert.Contains(t, out, "(样本不足)")
}
