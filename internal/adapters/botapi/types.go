package botapi

// DTOs raw de la API del bot. Solo se usan dentro de este paquete; la
// conversión a domain entities se hace en mapping.go. Los campos opcionales
// son punteros para que la ausencia en el wire llegue intacta al display.

type runtimeResponse struct {
	CurrentStartTime string `json:"current_start_time"`
	CurrentRuntime   string `json:"current_runtime"`
	TotalRuntime     string `json:"total_runtime"`
	CurrentTime      string `json:"current_time"`
}

type statsResponse struct {
	TotalTrades int      `json:"total_trades"`
	WinRate     *float64 `json:"win_rate"`
	TotalPnl    *float64 `json:"total_pnl"`
}

type accountResponse struct {
	TotalBalance *float64 `json:"total_balance"`
	FreeBalance  *float64 `json:"free_balance"`
}

type sharpeResponse struct {
	SharpeRatio         *float64 `json:"sharpe_ratio"`
	RiskLevel           string   `json:"risk_level"`
	MaxPositions        int      `json:"max_positions"`
	ConfidenceThreshold *float64 `json:"confidence_threshold"`
	Note                string   `json:"note"`
}

type positionsResponse struct {
	TotalUnrealizedPnl *float64      `json:"total_unrealized_pnl"`
	Positions          []rawPosition `json:"positions"`
}

type rawPosition struct {
	Coin            string   `json:"coin"`
	Side            string   `json:"side"`
	EntryPrice      *float64 `json:"entry_price"`
	CurrentPrice    *float64 `json:"current_price"`
	Amount          *float64 `json:"amount"`
	Leverage        *float64 `json:"leverage"`
	EntryTime       string   `json:"entry_time"`
	DurationMinutes *int     `json:"duration_minutes"`
	StopLoss        *float64 `json:"stop_loss"`
	StopOrderID     *int64   `json:"stop_order_id"`
	TakeProfit      *float64 `json:"take_profit"`
	Pnl             *float64 `json:"pnl"`
	Roe             *float64 `json:"roe"`
}

type decisionsResponse struct {
	Decisions []rawDecision `json:"decisions"`
}

type rawDecision struct {
	Coin       string   `json:"coin"`
	Action     string   `json:"action"`
	Reason     string   `json:"reason"`
	Strategy   string   `json:"strategy"`
	RiskLevel  string   `json:"risk_level"`
	Confidence *float64 `json:"confidence"`
	Time       string   `json:"time"`
}

type tradesResponse struct {
	Trades []rawTrade `json:"trades"`
}

type rawTrade struct {
	Coin            string   `json:"coin"`
	Side            string   `json:"side"`
	EntryPrice      *float64 `json:"entry_price"`
	ExitPrice       *float64 `json:"exit_price"`
	Amount          *float64 `json:"amount"`
	Pnl             *float64 `json:"pnl"`
	DurationMinutes *int     `json:"duration_minutes"`
	ExitTime        string   `json:"exit_time"`
}

type pricesResponse struct {
	Prices map[string]rawPrice `json:"prices"`
}

type rawPrice struct {
	Symbol string   `json:"symbol"`
	Price  *float64 `json:"price"`
}

// --- settings boundary ---

type promptListResponse struct {
	Files []string `json:"files"`
}

type promptContentResponse struct {
	Content string `json:"content"`
}

type promptSaveRequest struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
}

type promptActivateRequest struct {
	Filename string `json:"filename"`
}
