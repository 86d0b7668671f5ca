package ports

import (
	"context"

	"github.com/alejandrodnm/botmonitor/internal/domain"
)

// DashboardProvider obtiene el estado del bot desde su API HTTP. Cada método
// es un fetch independiente: un GET, un decode y nada más. Un fallo en un
// recurso no dice nada sobre los demás: el scheduler los consume por
// separado y el siguiente ciclo es el retry implícito.
type DashboardProvider interface {
	// FetchRuntime devuelve el estado de ejecución del bot.
	FetchRuntime(ctx context.Context) (domain.RuntimeStatus, error)

	// FetchStats devuelve las estadísticas agregadas de trading.
	FetchStats(ctx context.Context) (domain.Stats, error)

	// FetchAccount devuelve los balances de la cuenta.
	FetchAccount(ctx context.Context) (domain.AccountInfo, error)

	// FetchRiskProfile devuelve el Sharpe ratio y el perfil de riesgo actual.
	FetchRiskProfile(ctx context.Context) (domain.RiskProfile, error)

	// FetchPositions devuelve las posiciones abiertas y el flotante agregado.
	FetchPositions(ctx context.Context) (domain.PositionBook, error)

	// FetchDecisions devuelve las decisiones recientes del motor de IA.
	FetchDecisions(ctx context.Context) ([]domain.AIDecision, error)

	// FetchTrades devuelve el histórico de trades, el más reciente primero.
	FetchTrades(ctx context.Context) ([]domain.Trade, error)

	// FetchPrices devuelve los precios actuales, reemplazo completo por poll.
	FetchPrices(ctx context.Context) ([]domain.PriceTick, error)
}
