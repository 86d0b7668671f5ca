package domain

// RuntimeStatus es el estado de ejecución del bot tal como lo reporta la API.
// Todos los campos son strings opacos listos para mostrar; un campo vacío
// se renderiza como placeholder.
type RuntimeStatus struct {
	CurrentStartTime string
	CurrentRuntime   string
	TotalRuntime     string
	CurrentTime      string
}

// Stats son las estadísticas agregadas de trading del bot.
type Stats struct {
	TotalTrades int
	WinRate     *float64 // porcentaje
	TotalPnl    *float64 // USDT, con signo
}

// AccountInfo son los balances de la cuenta del exchange.
type AccountInfo struct {
	TotalBalance *float64
	FreeBalance  *float64
}

// RiskProfile es el perfil de riesgo actual del bot (Sharpe + parámetros).
type RiskProfile struct {
	SharpeRatio         *float64
	RiskLevel           string // etiqueta libre de la API, p.ej. "积极"
	MaxPositions        int
	ConfidenceThreshold *float64 // porcentaje
	Note                string   // aviso opcional (muestra insuficiente, etc.)
}

// RiskClass es la clasificación cerrada de tres vías del nivel de riesgo.
// Comunica el estado operacional al operador, así que el mapeo es fijo.
type RiskClass int

const (
	RiskNormal RiskClass = iota
	RiskAggressive
	RiskCalm
)

// String devuelve el nombre de la clase para logs y tests.
func (r RiskClass) String() string {
	switch r {
	case RiskAggressive:
		return "aggressive"
	case RiskCalm:
		return "calm"
	default:
		return "normal"
	}
}
