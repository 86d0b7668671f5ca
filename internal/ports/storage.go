package ports

import (
	"context"

	"github.com/alejandrodnm/botmonitor/internal/domain"
)

// Storage registra la sesión de monitorización: un resumen por ciclo de
// refresco y la curva de PnL vigente. Con el DSN por defecto (":memory:")
// nada sobrevive a la sesión.
type Storage interface {
	// SaveCycle persiste el resumen de un ciclo de refresco.
	SaveCycle(ctx context.Context, summary domain.CycleSummary) error

	// SaveCurve reemplaza la curva de PnL registrada para la sesión.
	SaveCurve(ctx context.Context, sessionID string, series domain.PnlSeries) error

	// RecentCycles devuelve los últimos n resúmenes, el más reciente primero.
	RecentCycles(ctx context.Context, n int) ([]domain.CycleSummary, error)

	// Close cierra la conexión a la base de datos limpiamente.
	Close() error
}
