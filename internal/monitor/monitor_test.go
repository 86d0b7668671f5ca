package monitor_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/alejandrodnm/botmonitor/internal/domain"
	"github.com/alejandrodnm/botmonitor/internal/monitor"
	"github.com/alejandrodnm/botmonitor/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- mocks ---

type mockProvider struct {
	mu sync.Mutex

	runtime      domain.RuntimeStatus
	stats        domain.Stats
	account      domain.AccountInfo
	risk         domain.RiskProfile
	positions    domain.PositionBook
	decisions    []domain.AIDecision
	trades       []domain.Trade
	prices       []domain.PriceTick
	positionsErr error
	tradesErr    error

	priceFetches int
}

func (m *mockProvider) FetchRuntime(context.Context) (domain.RuntimeStatus, error) {
	return m.runtime, nil
}

func (m *mockProvider) FetchStats(context.Context) (domain.Stats, error) {
	return m.stats, nil
}

func (m *mockProvider) FetchAccount(context.Context) (domain.AccountInfo, error) {
	return m.account, nil
}

func (m *mockProvider) FetchRiskProfile(context.Context) (domain.RiskProfile, error) {
	return m.risk, nil
}

func (m *mockProvider) FetchPositions(context.Context) (domain.PositionBook, error) {
	return m.positions, m.positionsErr
}

func (m *mockProvider) FetchDecisions(context.Context) ([]domain.AIDecision, error) {
	return m.decisions, nil
}

func (m *mockProvider) FetchTrades(context.Context) ([]domain.Trade, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.trades, m.tradesErr
}

func (m *mockProvider) FetchPrices(context.Context) ([]domain.PriceTick, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.priceFetches++
	return m.prices, nil
}

func (m *mockProvider) setTrades(trades []domain.Trade) {
	m.mu.Lock()
	m.trades = trades
	m.mu.Unlock()
}

func (m *mockProvider) priceFetchCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.priceFetches
}

// mockRenderer captura la última llamada de cada widget. Las llamadas llegan
// desde goroutines distintas, como en producción.
type mockRenderer struct {
	mu sync.Mutex

	trades       []domain.Trade
	tradesErr    error
	tradesCalls  int
	positionsErr error
	pricesCalls  int
}

func (r *mockRenderer) RenderRuntime(domain.RuntimeStatus, error) {}
func (r *mockRenderer) RenderStats(domain.Stats, error)           {}
func (r *mockRenderer) RenderAccount(domain.AccountInfo, error)   {}
func (r *mockRenderer) RenderRisk(domain.RiskProfile, error)      {}
func (r *mockRenderer) RenderDecisions([]domain.AIDecision, error) {
}

func (r *mockRenderer) RenderPositions(_ domain.PositionBook, err error) {
	r.mu.Lock()
	r.positionsErr = err
	r.mu.Unlock()
}

func (r *mockRenderer) RenderTrades(trades []domain.Trade, err error) {
	r.mu.Lock()
	r.trades = trades
	r.tradesErr = err
	r.tradesCalls++
	r.mu.Unlock()
}

func (r *mockRenderer) RenderPrices(_ []domain.PriceTick, _ error) {
	r.mu.Lock()
	r.pricesCalls++
	r.mu.Unlock()
}

type mockChart struct {
	mu       sync.Mutex
	rebuilds []domain.PnlSeries
	err      error
}

func (c *mockChart) Rebuild(series domain.PnlSeries) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	c.rebuilds = append(c.rebuilds, series)
	return nil
}

func (c *mockChart) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.rebuilds)
}

type mockStorage struct {
	mu     sync.Mutex
	cycles []domain.CycleSummary
	curves int
}

func (s *mockStorage) SaveCycle(_ context.Context, summary domain.CycleSummary) error {
	s.mu.Lock()
	s.cycles = append(s.cycles, summary)
	s.mu.Unlock()
	return nil
}

func (s *mockStorage) SaveCurve(context.Context, string, domain.PnlSeries) error {
	s.mu.Lock()
	s.curves++
	s.mu.Unlock()
	return nil
}

func (s *mockStorage) RecentCycles(context.Context, int) ([]domain.CycleSummary, error) {
	return nil, nil
}

func (s *mockStorage) Close() error { return nil }

// --- helpers ---

func newMonitor(api *mockProvider, r *mockRenderer, c *mockChart, s ports.Storage) *monitor.Monitor {
	cfg := monitor.Config{Interval: 10 * time.Millisecond, PriceInterval: 10 * time.Millisecond}
	return monitor.New(cfg, api, r, c, s)
}

// --- tests ---

func TestRefreshAll_AdapterFailureIsIsolated(t *testing.T) {
	api := &mockProvider{
		positionsErr: errors.New("status 500"),
		trades: []domain.Trade{
			{Coin: "BTC", Side: "long", Pnl: f(3), ExitTime: "2025-03-15T10:00:00Z"},
		},
	}
	r := &mockRenderer{}
	c := &mockChart{}

	m := newMonitor(api, r, c, nil)
	m.RefreshAll(context.Background())

	// Las posiciones fallaron pero el widget recibió su variante de error...
	require.Error(t, r.positionsErr)
	// ...y la tabla de trades se pintó correcta e independientemente.
	require.NoError(t, r.tradesErr)
	require.Len(t, r.trades, 1)
	assert.Equal(t, "BTC", r.trades[0].Coin)
	assert.Equal(t, 1, c.count(), "el gráfico se reconstruye con el primer trade")
}

func TestRefreshAll_ChartRebuildOnlyOnCountChange(t *testing.T) {
	api := &mockProvider{
		trades: []domain.Trade{
			{Coin: "BTC", Pnl: f(3), ExitTime: "2025-03-15T10:00:00Z"},
		},
	}
	r := &mockRenderer{}
	c := &mockChart{}

	m := newMonitor(api, r, c, nil)
	m.RefreshAll(context.Background())
	assert.Equal(t, 1, c.count())

	// Mismo count, contenido distinto: la tabla se repinta, el gráfico no.
	api.setTrades([]domain.Trade{
		{Coin: "ETH", Pnl: f(-8), ExitTime: "2025-03-15T11:00:00Z"},
	})
	m.RefreshAll(context.Background())
	assert.Equal(t, 1, c.count())
	assert.Equal(t, 2, r.tradesCalls)

	// Count nuevo: rebuild completo desde la serie entera.
	api.setTrades([]domain.Trade{
		{Coin: "XRP", Pnl: f(2), ExitTime: "2025-03-15T12:00:00Z"},
		{Coin: "ETH", Pnl: f(-8), ExitTime: "2025-03-15T11:00:00Z"},
	})
	m.RefreshAll(context.Background())
	require.Equal(t, 2, c.count())
	assert.Equal(t, []float64{0, -8, -6}, c.rebuilds[1].Points)
}

func TestRefreshAll_ChartFailureDoesNotAffectTrades(t *testing.T) {
	api := &mockProvider{
		trades: []domain.Trade{{Coin: "BTC", Pnl: f(1), ExitTime: "2025-03-15T10:00:00Z"}},
	}
	r := &mockRenderer{}
	c := &mockChart{err: errors.New("no drawing surface")}

	m := newMonitor(api, r, c, nil)
	m.RefreshAll(context.Background())

	require.NoError(t, r.tradesErr)
	assert.Len(t, r.trades, 1)
}

func TestRefreshAll_TradesFailureSkipsChart(t *testing.T) {
	api := &mockProvider{tradesErr: errors.New("timeout")}
	r := &mockRenderer{}
	c := &mockChart{}

	m := newMonitor(api, r, c, nil)
	m.RefreshAll(context.Background())

	require.Error(t, r.tradesErr)
	assert.Zero(t, c.count())
}

func TestRefreshAll_RecordsCycleSummary(t *testing.T) {
	api := &mockProvider{
		stats: domain.Stats{TotalTrades: 2, TotalPnl: f(7.5)},
		positions: domain.PositionBook{
			TotalUnrealizedPnl: f(1.25),
			Positions:          []domain.Position{{Coin: "BTC"}},
		},
		trades: []domain.Trade{
			{Coin: "BTC", Pnl: f(3), ExitTime: "2025-03-15T10:00:00Z"},
			{Coin: "ETH", Pnl: f(4.5), ExitTime: "2025-03-15T11:00:00Z"},
		},
	}
	r := &mockRenderer{}
	c := &mockChart{}
	s := &mockStorage{}

	m := newMonitor(api, r, c, s)
	m.RefreshAll(context.Background())

	require.Len(t, s.cycles, 1)
	summary := s.cycles[0]
	assert.Equal(t, m.SessionID(), summary.SessionID)
	assert.Equal(t, 2, summary.Trades)
	assert.Equal(t, 1, summary.Positions)
	assert.InDelta(t, 7.5, summary.TotalPnl, 1e-9)
	assert.InDelta(t, 1.25, summary.UnrealizedPnl, 1e-9)
	assert.Zero(t, summary.Failures)
	assert.Equal(t, 1, s.curves, "la curva se registra en el primer rebuild")
}

func TestRun_FiresImmediatelyAndRepeats(t *testing.T) {
	api := &mockProvider{}
	r := &mockRenderer{}
	c := &mockChart{}

	m := newMonitor(api, r, c, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- m.Run(ctx) }()

	// Tras varios intervalos debe haber al menos el ciclo inmediato más
	// algunos ticks de ambos ciclos.
	require.Eventually(t, func() bool {
		r.mu.Lock()
		defer r.mu.Unlock()
		return r.tradesCalls >= 2 && r.pricesCalls >= 2
	}, time.Second, 5*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
	assert.GreaterOrEqual(t, api.priceFetchCount(), 2)
}

func TestRunOnce_SingleCycle(t *testing.T) {
	api := &mockProvider{}
	r := &mockRenderer{}
	c := &mockChart{}

	m := newMonitor(api, r, c, nil)
	m.RunOnce(context.Background())

	assert.Equal(t, 1, r.tradesCalls)
	assert.Equal(t, 1, r.pricesCalls)
}
