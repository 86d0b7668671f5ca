package ports

import "github.com/alejandrodnm/botmonitor/internal/domain"

// Renderer presenta cada widget del dashboard. Cada método recibe el
// resultado de su adapter — valor o error — y lo consume de forma aislada:
// con error pinta el estado degradado del widget y nunca toca a los demás.
// Las llamadas pueden llegar en cualquier orden y desde goroutines distintas.
type Renderer interface {
	RenderRuntime(status domain.RuntimeStatus, err error)
	RenderStats(stats domain.Stats, err error)
	RenderAccount(acc domain.AccountInfo, err error)
	RenderRisk(profile domain.RiskProfile, err error)
	RenderPositions(book domain.PositionBook, err error)
	RenderDecisions(decisions []domain.AIDecision, err error)
	RenderTrades(trades []domain.Trade, err error)
	RenderPrices(ticks []domain.PriceTick, err error)
}

// ChartRenderer posee como mucho una instancia viva de gráfico sobre una
// superficie de dibujo. Rebuild descarta la instancia existente y construye
// una nueva a partir de la serie completa; no hay camino incremental.
type ChartRenderer interface {
	// Rebuild reconstruye el gráfico desde cero. Un fallo aquí no debe
	// interrumpir ningún otro widget: el caller lo loguea y sigue.
	Rebuild(series domain.PnlSeries) error
}
