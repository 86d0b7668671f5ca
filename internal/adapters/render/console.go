// Package render contiene los adapters de presentación: los widgets de
// consola del dashboard y el gráfico ASCII de PnL.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/alejandrodnm/botmonitor/internal/domain"
	"github.com/alejandrodnm/botmonitor/internal/format"
)

// Placeholders del dashboard original. Se conservan tal cual: son el estado
// degradado que el operador espera ver.
const (
	msgLoadFailed   = "加载失败"
	msgNoPositions  = "当前无持仓"
	msgNoTrades     = "暂无交易历史"
	msgNoDecisions  = "暂无AI决策记录"
	msgNoPrices     = "价格数据不可用"
	msgNotRunning   = "未运行"
	maxTradesShown  = 15
	maxReasonLength = 42
)

const (
	ansiReset  = "\033[0m"
	ansiGreen  = "\033[32m"
	ansiRed    = "\033[31m"
	ansiYellow = "\033[33m"
)

// Console implementa ports.Renderer sobre un io.Writer. Cada widget se
// pinta completo en una llamada; un mutex serializa el acceso al writer
// porque los adapters resuelven desde goroutines distintas y stdout es la
// única superficie compartida. El contenido es last-write-wins.
type Console struct {
	out   io.Writer
	mu    sync.Mutex
	color bool
}

// NewConsole crea un renderer que escribe a stdout con colores ANSI.
func NewConsole() *Console {
	return &Console{out: os.Stdout, color: true}
}

// NewConsoleWriter crea un renderer sin colores para tests.
func NewConsoleWriter(w io.Writer) *Console {
	return &Console{out: w}
}

// RenderRuntime pinta el widget de estado de ejecución.
func (c *Console) RenderRuntime(status domain.RuntimeStatus, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.header("运行状态")
	if err != nil {
		fmt.Fprintf(c.out, "  %s\n", msgLoadFailed)
		return
	}
	fmt.Fprintf(c.out, "  本次启动: %s\n", orElse(status.CurrentStartTime, msgNotRunning))
	fmt.Fprintf(c.out, "  本次运行: %s\n", orElse(status.CurrentRuntime, format.Placeholder))
	fmt.Fprintf(c.out, "  累计运行: %s\n", orElse(status.TotalRuntime, format.Placeholder))
	fmt.Fprintf(c.out, "  当前时间: %s\n", orElse(status.CurrentTime, format.Placeholder))
}

// RenderStats pinta las estadísticas agregadas de trading.
func (c *Console) RenderStats(stats domain.Stats, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.header("交易统计")
	if err != nil {
		fmt.Fprintf(c.out, "  %s\n", msgLoadFailed)
		return
	}
	fmt.Fprintf(c.out, "  总交易次数: %d  胜率: %s%%  总盈亏: %s USDT\n",
		stats.TotalTrades,
		format.Number(stats.WinRate, 2),
		c.signed(format.Pnl(stats.TotalPnl), stats.TotalPnl),
	)
}

// RenderAccount pinta los balances de la cuenta.
func (c *Console) RenderAccount(acc domain.AccountInfo, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.header("账户信息")
	if err != nil {
		fmt.Fprintf(c.out, "  %s\n", msgLoadFailed)
		return
	}
	fmt.Fprintf(c.out, "  账户总额: %s USDT  可用余额: %s USDT\n",
		format.Number(acc.TotalBalance, format.Auto),
		format.Number(acc.FreeBalance, format.Auto),
	)
}

// RenderRisk pinta el Sharpe ratio y el perfil de riesgo. El color del nivel
// de riesgo es el mapeo cerrado de tres vías: agresivo verde, calmado rojo,
// normal amarillo.
func (c *Console) RenderRisk(profile domain.RiskProfile, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.header("夏普比率")
	if err != nil {
		fmt.Fprintf(c.out, "  %s\n", msgLoadFailed)
		return
	}

	level := orElse(profile.RiskLevel, format.Placeholder)
	fmt.Fprintf(c.out, "  夏普比率: %s  风险等级: %s  最大持仓: %d  信心阈值: %s%%\n",
		format.Number(profile.SharpeRatio, 2),
		c.colored(level, riskColor(format.RiskClass(profile.RiskLevel))),
		profile.MaxPositions,
		format.Number(profile.ConfidenceThreshold, 2),
	)
	if profile.Note != "" {
		fmt.Fprintf(c.out, "  (%s)\n", profile.Note)
	}
}

// RenderPositions pinta la tabla de posiciones abiertas y el flotante total.
func (c *Console) RenderPositions(book domain.PositionBook, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.header("当前持仓")
	if err != nil {
		fmt.Fprintf(c.out, "  %s\n", msgLoadFailed)
		return
	}
	if book.TotalUnrealizedPnl != nil {
		fmt.Fprintf(c.out, "  总浮盈浮亏: %s USDT\n",
			c.signed(format.Pnl(book.TotalUnrealizedPnl), book.TotalUnrealizedPnl))
	}
	if len(book.Positions) == 0 {
		fmt.Fprintf(c.out, "  %s\n", msgNoPositions)
		return
	}

	table := tablewriter.NewWriter(c.out)
	table.Header("币种", "方向", "开仓价", "当前价", "数量", "杠杆", "开仓时间", "持仓时长", "止损", "止盈", "浮盈浮亏", "ROE%")

	for _, p := range book.Positions {
		table.Append(
			p.Coin,
			strings.ToUpper(p.Side),
			format.Number(p.EntryPrice, format.Auto),
			format.Number(p.CurrentPrice, format.Auto),
			format.Number(p.Amount, format.Auto),
			leverageLabel(p.Leverage),
			format.Time(p.EntryTime),
			format.Duration(p.DurationMinutes),
			stopLabel(p.StopLoss, p.StopOrderID),
			format.Number(p.TakeProfit, format.Auto),
			c.signed(format.Pnl(p.Pnl), p.Pnl),
			c.signed(format.Pnl(p.Roe), p.Roe),
		)
	}
	table.Render()
}

// RenderDecisions pinta las decisiones recientes del motor de IA.
func (c *Console) RenderDecisions(decisions []domain.AIDecision, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.header("AI决策记录")
	if err != nil {
		fmt.Fprintf(c.out, "  %s\n", msgLoadFailed)
		return
	}
	if len(decisions) == 0 {
		fmt.Fprintf(c.out, "  %s\n", msgNoDecisions)
		return
	}

	table := tablewriter.NewWriter(c.out)
	table.Header("时间", "币种", "动作", "理由", "策略", "风险", "信心")

	for _, d := range decisions {
		table.Append(
			format.Time(d.Time),
			d.Coin,
			d.Action,
			truncate(orElse(d.Reason, "无理由说明"), maxReasonLength),
			orElse(d.Strategy, format.Placeholder),
			orElse(d.RiskLevel, format.Placeholder),
			format.Number(d.Confidence, format.Auto),
		)
	}
	table.Render()
}

// RenderTrades pinta el histórico de trades, limitado a los 15 más recientes
// igual que el dashboard original.
func (c *Console) RenderTrades(trades []domain.Trade, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.header("交易历史")
	if err != nil {
		fmt.Fprintf(c.out, "  %s\n", msgLoadFailed)
		return
	}
	if len(trades) == 0 {
		fmt.Fprintf(c.out, "  %s\n", msgNoTrades)
		return
	}

	recent := trades
	if len(recent) > maxTradesShown {
		recent = recent[:maxTradesShown]
	}

	table := tablewriter.NewWriter(c.out)
	table.Header("币种", "方向", "开仓价", "平仓价", "数量", "盈亏", "持续(分钟)")

	for _, t := range recent {
		table.Append(
			t.Coin,
			strings.ToUpper(t.Side),
			format.Number(t.EntryPrice, format.Auto),
			format.Number(t.ExitPrice, format.Auto),
			format.Number(t.Amount, format.Auto),
			c.signed(format.Pnl(t.Pnl), t.Pnl),
			minutesLabel(t.DurationMinutes),
		)
	}
	table.Render()
}

// RenderPrices pinta el ticker de precios en una sola línea.
func (c *Console) RenderPrices(ticks []domain.PriceTick, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now().Format("15:04:05")
	if err != nil || len(ticks) == 0 {
		fmt.Fprintf(c.out, "[%s] %s\n", now, msgNoPrices)
		return
	}

	parts := make([]string, 0, len(ticks))
	for _, tick := range ticks {
		parts = append(parts, fmt.Sprintf("%s $%s", tick.Symbol, format.Number(tick.Price, format.Auto)))
	}
	fmt.Fprintf(c.out, "[%s] %s\n", now, strings.Join(parts, " | "))
}

// --- helpers ---

func (c *Console) header(title string) {
	fmt.Fprintf(c.out, "\n── %s ──\n", title)
}

// signed colorea un valor ya formateado según su clase de signo.
func (c *Console) signed(s string, v *float64) string {
	if format.SignClass(v) == "positive" {
		return c.colored(s, ansiGreen)
	}
	return c.colored(s, ansiRed)
}

func (c *Console) colored(s, color string) string {
	if !c.color {
		return s
	}
	return color + s + ansiReset
}

func riskColor(class domain.RiskClass) string {
	switch class {
	case domain.RiskAggressive:
		return ansiGreen
	case domain.RiskCalm:
		return ansiRed
	default:
		return ansiYellow
	}
}

func orElse(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func leverageLabel(lev *float64) string {
	if lev == nil {
		return format.Placeholder
	}
	return fmt.Sprintf("%.0fx", *lev)
}

// stopLabel marca el stop loss con ✅ cuando hay orden de stop confirmada,
// igual que el dashboard original.
func stopLabel(stopLoss *float64, orderID *int64) string {
	if stopLoss == nil || *stopLoss <= 0 {
		return format.Placeholder
	}
	label := format.Number(stopLoss, format.Auto)
	if orderID != nil && *orderID > 0 {
		label += " ✅"
	}
	return label
}

func minutesLabel(minutes *int) string {
	if minutes == nil {
		return format.Placeholder
	}
	return fmt.Sprintf("%d", *minutes)
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
