package format

// derive.go — campos derivados solo de presentación: duración de posición,
// clase de signo y clasificación de riesgo.

import (
	"fmt"

	"github.com/alejandrodnm/botmonitor/internal/domain"
)

// Duration convierte minutos de posesión en texto: "2小时5分钟" si hay horas,
// "45分钟" si no. Ausente o negativo → Placeholder.
func Duration(minutes *int) string {
	if minutes == nil || *minutes < 0 {
		return Placeholder
	}
	hours := *minutes / 60
	mins := *minutes % 60
	if hours > 0 {
		return fmt.Sprintf("%d小时%d分钟", hours, mins)
	}
	return fmt.Sprintf("%d分钟", mins)
}

// SignClass clasifica un valor con signo para colorear: "positive" si es
// >= 0, "negative" en caso contrario. Un valor ausente cuenta como negative,
// igual que en el dashboard original.
func SignClass(v *float64) string {
	if v != nil && *v >= 0 {
		return "positive"
	}
	return "negative"
}

// RiskClass mapea la etiqueta de riesgo de la API a la clasificación cerrada
// de tres vías: "积极" → agresivo, "冷静" → calmado, todo lo demás → normal.
func RiskClass(level string) domain.RiskClass {
	switch level {
	case "积极":
		return domain.RiskAggressive
	case "冷静":
		return domain.RiskCalm
	default:
		return domain.RiskNormal
	}
}
