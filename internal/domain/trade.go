package domain

// Trade es un trade cerrado del histórico. La API entrega la lista con el
// más reciente primero; los trades son inmutables una vez cerrados y la
// lista solo crece.
type Trade struct {
	Coin            string
	Side            string // "long" | "short"
	EntryPrice      *float64
	ExitPrice       *float64
	Amount          *float64
	Pnl             *float64
	DurationMinutes *int
	ExitTime        string // ISO timestamp
}

// PnlSeries es la curva de PnL acumulado lista para graficar: un punto
// semilla en cero más un punto por trade en orden cronológico, con su
// secuencia paralela de etiquetas.
type PnlSeries struct {
	Labels []string
	Points []float64
}
