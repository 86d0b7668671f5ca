// Package format contiene los formatters puros del dashboard: números con
// precisión dependiente de magnitud, PnL con signo explícito y timestamps
// en formato local. Ninguna función lanza panic: entrada ausente → "--".
package format

import (
	"fmt"
	"math"
	"time"
)

// Placeholder es el texto mostrado cuando un valor está ausente.
const Placeholder = "--"

// Auto indica que la precisión se elige según la magnitud del valor:
// |v| < 1 → 5 decimales (DOGE 0.19), |v| < 10 → 4 (XRP 2.6), resto → 2.
const Auto = -1

// Number formatea un valor numérico. Con decimals == Auto la precisión se
// elige por magnitud. nil → Placeholder.
func Number(v *float64, decimals int) string {
	if v == nil {
		return Placeholder
	}
	if decimals == Auto {
		decimals = autoDecimals(*v)
	}
	return fmt.Sprintf("%.*f", decimals, *v)
}

// Pnl formatea un PnL con 2 decimales y signo siempre visible: los valores
// >= 0 llevan prefijo "+". nil → Placeholder.
func Pnl(v *float64) string {
	if v == nil {
		return Placeholder
	}
	s := Number(v, 2)
	if *v >= 0 {
		return "+" + s
	}
	return s
}

// Time convierte un timestamp ISO en "01/02 15:04" (mes/día hora:minuto).
// Entrada vacía o no parseable → Placeholder.
func Time(iso string) string {
	if iso == "" {
		return Placeholder
	}
	t, err := parseTimestamp(iso)
	if err != nil {
		return Placeholder
	}
	return t.Format("01/02 15:04")
}

// timeLayouts son los formatos que la API del bot emite en la práctica.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

func parseTimestamp(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range timeLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func autoDecimals(v float64) int {
	switch {
	case math.Abs(v) < 1:
		return 5
	case math.Abs(v) < 10:
		return 4
	default:
		return 2
	}
}
