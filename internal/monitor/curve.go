package monitor

// curve.go — builder de la curva de PnL acumulado.
//
// La API entrega los trades con el más reciente primero; aquí se invierten a
// orden cronológico, se siembra un punto en cero (baseline pre-trading) y se
// acumula el pnl de cada trade. La detección de cambios es por COUNT: el
// gráfico solo se reconstruye cuando cambia el número de trades. Es un proxy
// barato de "el set cambió" que no detecta ediciones in-place de trades
// históricos — limitación documentada del dashboard original, no un bug.

import (
	"github.com/alejandrodnm/botmonitor/internal/domain"
	"github.com/alejandrodnm/botmonitor/internal/format"
)

// seedLabel es la etiqueta del punto baseline de la curva.
const seedLabel = "起点"

// CurveBuilder mantiene el count del último rebuild. No es seguro para uso
// concurrente: el scheduler serializa el acceso (single writer).
type CurveBuilder struct {
	lastCount int
}

// NewCurveBuilder crea un builder con count inicial cero, igual que el
// dashboard recién cargado: una lista vacía no dispara ningún rebuild.
func NewCurveBuilder() *CurveBuilder {
	return &CurveBuilder{}
}

// Build devuelve la serie y true si el count de trades difiere del último
// rebuild. Con count igual devuelve (zero, false) aunque el contenido haya
// cambiado.
func (b *CurveBuilder) Build(trades []domain.Trade) (domain.PnlSeries, bool) {
	if len(trades) == b.lastCount {
		return domain.PnlSeries{}, false
	}
	b.lastCount = len(trades)
	return BuildSeries(trades), true
}

// BuildSeries construye la serie completa sin tocar el estado de cambio.
func BuildSeries(trades []domain.Trade) domain.PnlSeries {
	series := domain.PnlSeries{
		Labels: make([]string, 0, len(trades)+1),
		Points: make([]float64, 0, len(trades)+1),
	}
	series.Labels = append(series.Labels, seedLabel)
	series.Points = append(series.Points, 0)

	cumulative := 0.0
	for i := len(trades) - 1; i >= 0; i-- { // invertir: más antiguo primero
		t := trades[i]
		if t.Pnl != nil {
			cumulative += *t.Pnl
		}
		series.Points = append(series.Points, cumulative)
		series.Labels = append(series.Labels, format.Time(t.ExitTime))
	}
	return series
}
