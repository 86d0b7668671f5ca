package storage

// session.go — session recorder sobre SQLite (pure Go, sin CGo).
//
// Estrategia:
//   - `cycles`: un resumen ligero por ciclo de refresco. Siempre 1 fila.
//   - `pnl_points`: la curva de PnL vigente de la sesión, reemplazada entera
//     en cada rebuild (el gráfico no tiene camino incremental, la tabla
//     tampoco).
//   - Con el DSN por defecto (":memory:") nada sobrevive a la sesión; un DSN
//     de archivo es opt-in del operador para poder usar -report.
//   - Prune al arrancar: ciclos de más de 7 días.

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alejandrodnm/botmonitor/internal/domain"
	_ "modernc.org/sqlite"
)

const schema = `
-- Resumen ligero por ciclo de refresco
CREATE TABLE IF NOT EXISTS cycles (
    id             INTEGER PRIMARY KEY AUTOINCREMENT,
    session_id     TEXT     NOT NULL,
    refreshed_at   DATETIME NOT NULL,
    trades         INTEGER  NOT NULL DEFAULT 0,
    positions      INTEGER  NOT NULL DEFAULT 0,
    total_pnl      REAL     NOT NULL DEFAULT 0,
    unrealized_pnl REAL     NOT NULL DEFAULT 0,
    failures       INTEGER  NOT NULL DEFAULT 0
);

-- Curva de PnL vigente por sesión, reemplazo completo en cada rebuild
CREATE TABLE IF NOT EXISTS pnl_points (
    session_id TEXT    NOT NULL,
    idx        INTEGER NOT NULL,
    label      TEXT    NOT NULL,
    value      REAL    NOT NULL,
    PRIMARY KEY (session_id, idx)
);

CREATE INDEX IF NOT EXISTS idx_cycles_at      ON cycles(refreshed_at DESC);
CREATE INDEX IF NOT EXISTS idx_cycles_session ON cycles(session_id);
`

const retentionCycles = 7 * 24 * time.Hour

// SQLiteStorage implementa ports.Storage usando SQLite.
type SQLiteStorage struct {
	db *sql.DB
}

// NewSQLiteStorage abre (o crea) la base de datos en la ruta dada,
// aplica el schema y limpia ciclos antiguos.
func NewSQLiteStorage(path string) (*SQLiteStorage, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage.NewSQLiteStorage: open %q: %w", path, err)
	}
	db.SetMaxOpenConns(1) // SQLite es single-writer
	db.SetMaxIdleConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage.NewSQLiteStorage: apply schema: %w", err)
	}

	s := &SQLiteStorage{db: db}
	s.pruneOld(context.Background())
	return s, nil
}

// SaveCycle persiste el resumen de un ciclo de refresco.
func (s *SQLiteStorage) SaveCycle(ctx context.Context, summary domain.CycleSummary) error {
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO cycles (session_id, refreshed_at, trades, positions, total_pnl, unrealized_pnl, failures)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		summary.SessionID,
		summary.RefreshedAt.UTC(),
		summary.Trades,
		summary.Positions,
		summary.TotalPnl,
		summary.UnrealizedPnl,
		summary.Failures,
	); err != nil {
		return fmt.Errorf("storage.SaveCycle: insert: %w", err)
	}
	return nil
}

// SaveCurve reemplaza la curva registrada de la sesión por la serie dada.
func (s *SQLiteStorage) SaveCurve(ctx context.Context, sessionID string, series domain.PnlSeries) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("storage.SaveCurve: begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM pnl_points WHERE session_id = ?`, sessionID,
	); err != nil {
		return fmt.Errorf("storage.SaveCurve: clear: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO pnl_points (session_id, idx, label, value) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("storage.SaveCurve: prepare: %w", err)
	}
	defer stmt.Close()

	for i, v := range series.Points {
		if _, err := stmt.ExecContext(ctx, sessionID, i, series.Labels[i], v); err != nil {
			return fmt.Errorf("storage.SaveCurve: insert point %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage.SaveCurve: commit: %w", err)
	}
	return nil
}

// Curve devuelve la curva registrada de una sesión, en orden de índice.
func (s *SQLiteStorage) Curve(ctx context.Context, sessionID string) (domain.PnlSeries, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT label, value FROM pnl_points WHERE session_id = ? ORDER BY idx`, sessionID)
	if err != nil {
		return domain.PnlSeries{}, fmt.Errorf("storage.Curve: query: %w", err)
	}
	defer rows.Close()

	var series domain.PnlSeries
	for rows.Next() {
		var label string
		var value float64
		if err := rows.Scan(&label, &value); err != nil {
			return domain.PnlSeries{}, fmt.Errorf("storage.Curve: scan: %w", err)
		}
		series.Labels = append(series.Labels, label)
		series.Points = append(series.Points, value)
	}
	return series, rows.Err()
}

// RecentCycles devuelve los últimos n resúmenes, el más reciente primero.
func (s *SQLiteStorage) RecentCycles(ctx context.Context, n int) ([]domain.CycleSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT session_id, refreshed_at, trades, positions, total_pnl, unrealized_pnl, failures
		FROM cycles
		ORDER BY refreshed_at DESC, id DESC
		LIMIT ?
	`, n)
	if err != nil {
		return nil, fmt.Errorf("storage.RecentCycles: query: %w", err)
	}
	defer rows.Close()

	var cycles []domain.CycleSummary
	for rows.Next() {
		var c domain.CycleSummary
		if err := rows.Scan(
			&c.SessionID,
			&c.RefreshedAt,
			&c.Trades,
			&c.Positions,
			&c.TotalPnl,
			&c.UnrealizedPnl,
			&c.Failures,
		); err != nil {
			return nil, fmt.Errorf("storage.RecentCycles: scan: %w", err)
		}
		cycles = append(cycles, c)
	}
	return cycles, rows.Err()
}

// Close cierra la conexión a la base de datos.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

// pruneOld borra ciclos más antiguos que la retención. Best-effort.
func (s *SQLiteStorage) pruneOld(ctx context.Context) {
	cutoff := time.Now().UTC().Add(-retentionCycles)
	s.db.ExecContext(ctx,
		`DELETE FROM pnl_points WHERE session_id IN
		   (SELECT DISTINCT session_id FROM cycles WHERE refreshed_at < ?)`, cutoff)
	s.db.ExecContext(ctx, `DELETE FROM cycles WHERE refreshed_at < ?`, cutoff)
}
