package domain

// Position es una posición abierta reportada por la API. Aparece cuando el
// backend la abre y desaparece en el ciclo siguiente a su cierre; nunca se
// persiste entre sesiones.
type Position struct {
	Coin            string
	Side            string // "long" | "short"
	EntryPrice      *float64
	CurrentPrice    *float64
	Amount          *float64
	Leverage        *float64
	EntryTime       string // ISO timestamp
	DurationMinutes *int
	StopLoss        *float64
	StopOrderID     *int64
	TakeProfit      *float64
	Pnl             *float64 // USDT, con signo
	Roe             *float64 // porcentaje, con signo
}

// PositionBook es el snapshot completo de posiciones de un ciclo,
// incluido el flotante agregado.
type PositionBook struct {
	TotalUnrealizedPnl *float64
	Positions          []Position
}
