package monitor

// monitor.go — el refresh scheduler del dashboard.
//
// Dos ciclos periódicos independientes: el primario refresca todos los
// widgets salvo el ticker de precios, el de precios refresca solo eso.
// Ambos disparan inmediatamente al arrancar y repiten hasta que el contexto
// se cancele. Los ticks lanzan el ciclo en una goroutine nueva, sin fence de
// solapamiento: si un adapter tarda más que el intervalo, el ciclo siguiente
// arranca igual. Se prefiere recencia a serialización estricta; el estado
// compartido de display es last-write-wins dentro de la ventana de refresco.

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/alejandrodnm/botmonitor/internal/domain"
	"github.com/alejandrodnm/botmonitor/internal/ports"
)

const defaultInterval = 10 * time.Second

// Config controla las cadencias del scheduler.
type Config struct {
	Interval      time.Duration // ciclo primario
	PriceInterval time.Duration // ciclo de precios
}

// Monitor orquesta los fetch adapters y enruta cada resultado a su widget.
// Es el dueño del estado de sesión: el builder de la curva y el handle del
// gráfico viven aquí, nunca como globals de paquete.
type Monitor struct {
	cfg      Config
	api      ports.DashboardProvider
	renderer ports.Renderer
	chart    ports.ChartRenderer
	store    ports.Storage // opcional; nil desactiva el session recorder

	sessionID string
	curve     *CurveBuilder
	curveMu   sync.Mutex // serializa count + rebuild: el gráfico se reemplaza, nunca se muta concurrentemente
}

// New crea un Monitor con todas las dependencias inyectadas.
func New(cfg Config, api ports.DashboardProvider, renderer ports.Renderer, chart ports.ChartRenderer, store ports.Storage) *Monitor {
	if cfg.Interval <= 0 {
		cfg.Interval = defaultInterval
	}
	if cfg.PriceInterval <= 0 {
		cfg.PriceInterval = cfg.Interval
	}
	return &Monitor{
		cfg:       cfg,
		api:       api,
		renderer:  renderer,
		chart:     chart,
		store:     store,
		sessionID: uuid.New().String(),
		curve:     NewCurveBuilder(),
	}
}

// SessionID devuelve el identificador de esta sesión de monitorización.
func (m *Monitor) SessionID() string { return m.sessionID }

// Run ejecuta ambos ciclos hasta que el contexto se cancele.
func (m *Monitor) Run(ctx context.Context) error {
	slog.Info("monitor starting",
		"interval", m.cfg.Interval,
		"price_interval", m.cfg.PriceInterval,
		"session", m.sessionID,
	)

	// Primer ciclo inmediato, sin esperar al primer tick.
	m.RefreshAll(ctx)
	m.RefreshPrices(ctx)

	primary := time.NewTicker(m.cfg.Interval)
	defer primary.Stop()
	prices := time.NewTicker(m.cfg.PriceInterval)
	defer prices.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("monitor stopped")
			return nil
		case <-primary.C:
			go m.RefreshAll(ctx)
		case <-prices.C:
			go m.RefreshPrices(ctx)
		}
	}
}

// RunOnce ejecuta exactamente un ciclo primario más uno de precios.
func (m *Monitor) RunOnce(ctx context.Context) {
	m.RefreshAll(ctx)
	m.RefreshPrices(ctx)
}

// cycleStats acumula el resumen del ciclo para el session recorder.
// Cada task escribe solo sus propios campos.
type cycleStats struct {
	mu            sync.Mutex
	trades        int
	positions     int
	totalPnl      float64
	unrealizedPnl float64
	failures      int
}

func (s *cycleStats) fail(widget string, err error) {
	slog.Warn("fetch failed", "widget", widget, "err", err)
	s.mu.Lock()
	s.failures++
	s.mu.Unlock()
}

// RefreshAll ejecuta un ciclo primario: todos los adapters no-precio en
// paralelo. Cada uno pinta su resultado en cuanto resuelve; el join solo
// marca el ciclo como completo para el log y el recorder.
func (m *Monitor) RefreshAll(ctx context.Context) {
	start := time.Now()
	stats := &cycleStats{}

	tasks := []func(context.Context, *cycleStats){
		m.refreshRuntime,
		m.refreshStats,
		m.refreshAccount,
		m.refreshRisk,
		m.refreshPositions,
		m.refreshDecisions,
		m.refreshTrades,
	}

	var wg sync.WaitGroup
	for _, task := range tasks {
		task := task
		wg.Add(1)
		go func() {
			defer wg.Done()
			task(ctx, stats)
		}()
	}
	wg.Wait()

	m.recordCycle(ctx, stats)

	slog.Debug("refresh cycle complete",
		"failures", stats.failures,
		"duration", time.Since(start).Round(time.Millisecond),
	)
}

// RefreshPrices ejecuta un ciclo del ticker de precios.
func (m *Monitor) RefreshPrices(ctx context.Context) {
	ticks, err := m.api.FetchPrices(ctx)
	if err != nil {
		slog.Warn("fetch failed", "widget", "prices", "err", err)
	}
	m.renderer.RenderPrices(ticks, err)
}

func (m *Monitor) refreshRuntime(ctx context.Context, stats *cycleStats) {
	status, err := m.api.FetchRuntime(ctx)
	if err != nil {
		stats.fail("runtime", err)
	}
	m.renderer.RenderRuntime(status, err)
}

func (m *Monitor) refreshStats(ctx context.Context, cs *cycleStats) {
	s, err := m.api.FetchStats(ctx)
	if err != nil {
		cs.fail("stats", err)
	} else if s.TotalPnl != nil {
		cs.mu.Lock()
		cs.totalPnl = *s.TotalPnl
		cs.mu.Unlock()
	}
	m.renderer.RenderStats(s, err)
}

func (m *Monitor) refreshAccount(ctx context.Context, stats *cycleStats) {
	acc, err := m.api.FetchAccount(ctx)
	if err != nil {
		stats.fail("account", err)
	}
	m.renderer.RenderAccount(acc, err)
}

func (m *Monitor) refreshRisk(ctx context.Context, stats *cycleStats) {
	profile, err := m.api.FetchRiskProfile(ctx)
	if err != nil {
		stats.fail("risk", err)
	}
	m.renderer.RenderRisk(profile, err)
}

func (m *Monitor) refreshPositions(ctx context.Context, stats *cycleStats) {
	book, err := m.api.FetchPositions(ctx)
	if err != nil {
		stats.fail("positions", err)
	} else {
		stats.mu.Lock()
		stats.positions = len(book.Positions)
		if book.TotalUnrealizedPnl != nil {
			stats.unrealizedPnl = *book.TotalUnrealizedPnl
		}
		stats.mu.Unlock()
	}
	m.renderer.RenderPositions(book, err)
}

func (m *Monitor) refreshDecisions(ctx context.Context, stats *cycleStats) {
	decisions, err := m.api.FetchDecisions(ctx)
	if err != nil {
		stats.fail("decisions", err)
	}
	m.renderer.RenderDecisions(decisions, err)
}

// refreshTrades pinta la tabla de trades y, si el count cambió, reconstruye
// el gráfico de PnL. Un fallo del gráfico se loguea y no toca la tabla, que
// ya quedó pintada.
func (m *Monitor) refreshTrades(ctx context.Context, stats *cycleStats) {
	trades, err := m.api.FetchTrades(ctx)
	if err != nil {
		stats.fail("trades", err)
	} else {
		stats.mu.Lock()
		stats.trades = len(trades)
		stats.mu.Unlock()
	}
	m.renderer.RenderTrades(trades, err)
	if err != nil {
		return
	}

	m.curveMu.Lock()
	series, changed := m.curve.Build(trades)
	if changed {
		if err := m.chart.Rebuild(series); err != nil {
			slog.Warn("chart rebuild failed", "err", err)
		} else if m.store != nil {
			if err := m.store.SaveCurve(ctx, m.sessionID, series); err != nil {
				slog.Warn("save curve failed", "err", err)
			}
		}
	}
	m.curveMu.Unlock()
}

// recordCycle persiste el resumen del ciclo si hay session recorder.
func (m *Monitor) recordCycle(ctx context.Context, stats *cycleStats) {
	if m.store == nil {
		return
	}
	summary := domain.CycleSummary{
		SessionID:     m.sessionID,
		RefreshedAt:   time.Now().UTC(),
		Trades:        stats.trades,
		Positions:     stats.positions,
		TotalPnl:      stats.totalPnl,
		UnrealizedPnl: stats.unrealizedPnl,
		Failures:      stats.failures,
	}
	if err := m.store.SaveCycle(ctx, summary); err != nil {
		slog.Warn("save cycle failed", "err", err)
	}
}
