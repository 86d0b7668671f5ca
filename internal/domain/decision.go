package domain

// AIDecision es una decisión registrada por el motor de IA del bot.
type AIDecision struct {
	Coin       string
	Action     string // BUY/OPEN_LONG, OPEN_SHORT, SELL/CLOSE, HOLD, WAIT, ...
	Reason     string
	Strategy   string
	RiskLevel  string
	Confidence *float64
	Time       string // ISO timestamp
}

// PriceTick es el precio actual de un instrumento. El conjunto completo se
// reemplaza en cada poll, sin diffing.
type PriceTick struct {
	Symbol string
	Price  *float64
}
