package domain

import "time"

// CycleSummary es el resumen ligero de un ciclo de refresco, registrado por
// el session recorder. Una fila por ciclo.
type CycleSummary struct {
	SessionID     string
	RefreshedAt   time.Time
	Trades        int
	Positions     int
	TotalPnl      float64
	UnrealizedPnl float64
	Failures      int
}
