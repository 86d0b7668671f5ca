package botapi

// dashboard.go — los fetch adapters del dashboard: un método por recurso,
// cada uno un GET + decode + map. Implementa ports.DashboardProvider.

import (
	"context"

	"github.com/alejandrodnm/botmonitor/internal/domain"
)

const (
	runtimePath   = "/api/runtime"
	statsPath     = "/api/stats"
	accountPath   = "/api/account"
	sharpePath    = "/api/sharpe_ratio"
	positionsPath = "/api/positions"
	decisionsPath = "/api/ai_decisions"
	tradesPath    = "/api/trades"
	pricesPath    = "/api/prices"
)

// FetchRuntime devuelve el estado de ejecución del bot.
func (c *Client) FetchRuntime(ctx context.Context) (domain.RuntimeStatus, error) {
	var resp runtimeResponse
	if err := c.get(ctx, runtimePath, &resp); err != nil {
		return domain.RuntimeStatus{}, err
	}
	return mapRuntime(resp), nil
}

// FetchStats devuelve las estadísticas agregadas de trading.
func (c *Client) FetchStats(ctx context.Context) (domain.Stats, error) {
	var resp statsResponse
	if err := c.get(ctx, statsPath, &resp); err != nil {
		return domain.Stats{}, err
	}
	return mapStats(resp), nil
}

// FetchAccount devuelve los balances de la cuenta.
func (c *Client) FetchAccount(ctx context.Context) (domain.AccountInfo, error) {
	var resp accountResponse
	if err := c.get(ctx, accountPath, &resp); err != nil {
		return domain.AccountInfo{}, err
	}
	return mapAccount(resp), nil
}

// FetchRiskProfile devuelve el Sharpe ratio y el perfil de riesgo.
func (c *Client) FetchRiskProfile(ctx context.Context) (domain.RiskProfile, error) {
	var resp sharpeResponse
	if err := c.get(ctx, sharpePath, &resp); err != nil {
		return domain.RiskProfile{}, err
	}
	return mapRiskProfile(resp), nil
}

// FetchPositions devuelve las posiciones abiertas y el flotante agregado.
func (c *Client) FetchPositions(ctx context.Context) (domain.PositionBook, error) {
	var resp positionsResponse
	if err := c.get(ctx, positionsPath, &resp); err != nil {
		return domain.PositionBook{}, err
	}
	return mapPositions(resp), nil
}

// FetchDecisions devuelve las decisiones recientes del motor de IA.
func (c *Client) FetchDecisions(ctx context.Context) ([]domain.AIDecision, error) {
	var resp decisionsResponse
	if err := c.get(ctx, decisionsPath, &resp); err != nil {
		return nil, err
	}
	return mapDecisions(resp), nil
}

// FetchTrades devuelve el histórico de trades tal como lo entrega la API:
// el más reciente primero. El curve builder lo invierte antes de usarlo.
func (c *Client) FetchTrades(ctx context.Context) ([]domain.Trade, error) {
	var resp tradesResponse
	if err := c.get(ctx, tradesPath, &resp); err != nil {
		return nil, err
	}
	return mapTrades(resp), nil
}

// FetchPrices devuelve los precios actuales ordenados por símbolo.
func (c *Client) FetchPrices(ctx context.Context) ([]domain.PriceTick, error) {
	var resp pricesResponse
	if err := c.get(ctx, pricesPath, &resp); err != nil {
		return nil, err
	}
	return mapPrices(resp), nil
}
