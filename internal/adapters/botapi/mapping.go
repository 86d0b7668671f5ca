package botapi

// mapping.go — conversión de los DTOs raw a domain entities.

import (
	"sort"

	"github.com/alejandrodnm/botmonitor/internal/domain"
)

func mapRuntime(r runtimeResponse) domain.RuntimeStatus {
	return domain.RuntimeStatus{
		CurrentStartTime: r.CurrentStartTime,
		CurrentRuntime:   r.CurrentRuntime,
		TotalRuntime:     r.TotalRuntime,
		CurrentTime:      r.CurrentTime,
	}
}

func mapStats(r statsResponse) domain.Stats {
	return domain.Stats{
		TotalTrades: r.TotalTrades,
		WinRate:     r.WinRate,
		TotalPnl:    r.TotalPnl,
	}
}

func mapAccount(r accountResponse) domain.AccountInfo {
	return domain.AccountInfo{
		TotalBalance: r.TotalBalance,
		FreeBalance:  r.FreeBalance,
	}
}

func mapRiskProfile(r sharpeResponse) domain.RiskProfile {
	return domain.RiskProfile{
		SharpeRatio:         r.SharpeRatio,
		RiskLevel:           r.RiskLevel,
		MaxPositions:        r.MaxPositions,
		ConfidenceThreshold: r.ConfidenceThreshold,
		Note:                r.Note,
	}
}

func mapPositions(r positionsResponse) domain.PositionBook {
	book := domain.PositionBook{
		TotalUnrealizedPnl: r.TotalUnrealizedPnl,
		Positions:          make([]domain.Position, 0, len(r.Positions)),
	}
	for _, p := range r.Positions {
		book.Positions = append(book.Positions, domain.Position{
			Coin:            p.Coin,
			Side:            p.Side,
			EntryPrice:      p.EntryPrice,
			CurrentPrice:    p.CurrentPrice,
			Amount:          p.Amount,
			Leverage:        p.Leverage,
			EntryTime:       p.EntryTime,
			DurationMinutes: p.DurationMinutes,
			StopLoss:        p.StopLoss,
			StopOrderID:     p.StopOrderID,
			TakeProfit:      p.TakeProfit,
			Pnl:             p.Pnl,
			Roe:             p.Roe,
		})
	}
	return book
}

func mapDecisions(r decisionsResponse) []domain.AIDecision {
	decisions := make([]domain.AIDecision, 0, len(r.Decisions))
	for _, d := range r.Decisions {
		decisions = append(decisions, domain.AIDecision{
			Coin:       d.Coin,
			Action:     d.Action,
			Reason:     d.Reason,
			Strategy:   d.Strategy,
			RiskLevel:  d.RiskLevel,
			Confidence: d.Confidence,
			Time:       d.Time,
		})
	}
	return decisions
}

func mapTrades(r tradesResponse) []domain.Trade {
	trades := make([]domain.Trade, 0, len(r.Trades))
	for _, t := range r.Trades {
		trades = append(trades, domain.Trade{
			Coin:            t.Coin,
			Side:            t.Side,
			EntryPrice:      t.EntryPrice,
			ExitPrice:       t.ExitPrice,
			Amount:          t.Amount,
			Pnl:             t.Pnl,
			DurationMinutes: t.DurationMinutes,
			ExitTime:        t.ExitTime,
		})
	}
	return trades
}

// mapPrices aplana el map de la API y lo ordena por símbolo para que el
// ticker se pinte estable entre polls.
func mapPrices(r pricesResponse) []domain.PriceTick {
	ticks := make([]domain.PriceTick, 0, len(r.Prices))
	for key, p := range r.Prices {
		symbol := p.Symbol
		if symbol == "" {
			symbol = key
		}
		ticks = append(ticks, domain.PriceTick{Symbol: symbol, Price: p.Price})
	}
	sort.Slice(ticks, func(i, j int) bool { return ticks[i].Symbol < ticks[j].Symbol })
	return ticks
}
