package render

// chart.go — gráfico ASCII de PnL acumulado.
//
// Protocolo de rebuild: en cada cambio cualificado se descarta la instancia
// viva y se traza una nueva a partir de la serie completa; no existe camino
// incremental de añadir puntos. Un fallo aquí devuelve error al scheduler y
// no toca ningún otro widget.

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"

	"github.com/alejandrodnm/botmonitor/internal/domain"
	"github.com/alejandrodnm/botmonitor/internal/format"
)

const (
	chartTitle  = "累计盈亏 (USDT)"
	chartHeight = 10
	minWidth    = 40
	maxWidth    = 120
)

// Chart implementa ports.ChartRenderer: como mucho una instancia viva sobre
// una superficie de salida.
type Chart struct {
	out   io.Writer
	width int // 0 → detectar del terminal
	mu    sync.Mutex
	cur   *chartInstance
}

// chartInstance es un gráfico ya trazado. Se construye completo y se
// reemplaza entero; nunca se muta.
type chartInstance struct {
	series domain.PnlSeries
	rows   []string
}

// NewChart crea un Chart sobre stdout con ancho autodetectado.
func NewChart() *Chart {
	return &Chart{out: os.Stdout}
}

// NewChartWriter crea un Chart para tests, con ancho fijo.
func NewChartWriter(w io.Writer, width int) *Chart {
	return &Chart{out: w, width: width}
}

// Rebuild descarta la instancia actual y traza la serie completa.
func (c *Chart) Rebuild(series domain.PnlSeries) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.out == nil {
		return errors.New("chart: no output surface")
	}
	if len(series.Points) == 0 || len(series.Points) != len(series.Labels) {
		return fmt.Errorf("chart: invalid series: %d points, %d labels",
			len(series.Points), len(series.Labels))
	}

	c.cur = nil // destruir antes de construir, nunca mutar la instancia viva

	inst := plot(series, c.plotWidth())
	c.cur = inst

	for _, row := range inst.rows {
		fmt.Fprintln(c.out, row)
	}
	return nil
}

// plotWidth devuelve el ancho de trazado, del terminal si es posible.
func (c *Chart) plotWidth() int {
	w := c.width
	if w <= 0 {
		if tw, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			w = tw
		}
	}
	if w < minWidth {
		w = minWidth
	}
	if w > maxWidth {
		w = maxWidth
	}
	return w
}

// plot traza la serie en una rejilla de chartHeight filas. El eje Y se
// escala entre el mínimo y el máximo de la serie; los puntos intermedios se
// interpolan linealmente para que la línea sea continua.
func plot(series domain.PnlSeries, width int) *chartInstance {
	const gutter = 10 // "%8.2f ┤"
	cols := width - gutter
	if cols < 10 {
		cols = 10
	}

	minV, maxV := series.Points[0], series.Points[0]
	for _, v := range series.Points {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}
	spread := maxV - minV
	if spread == 0 {
		spread = 1 // serie plana: línea al centro
	}

	grid := make([][]rune, chartHeight)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", cols))
	}

	n := len(series.Points)
	col := func(i int) int {
		if n == 1 {
			return 0
		}
		return i * (cols - 1) / (n - 1)
	}
	row := func(v float64) int {
		r := int((maxV - v) / spread * float64(chartHeight-1))
		if r < 0 {
			r = 0
		}
		if r >= chartHeight {
			r = chartHeight - 1
		}
		return r
	}

	// Línea interpolada entre puntos consecutivos.
	for i := 0; i < n-1; i++ {
		c0, c1 := col(i), col(i+1)
		v0, v1 := series.Points[i], series.Points[i+1]
		for x := c0; x <= c1; x++ {
			t := 0.0
			if c1 > c0 {
				t = float64(x-c0) / float64(c1-c0)
			}
			grid[row(v0+(v1-v0)*t)][x] = '·'
		}
	}
	for i := 0; i < n; i++ {
		grid[row(series.Points[i])][col(i)] = '●'
	}

	rows := make([]string, 0, chartHeight+3)
	rows = append(rows, fmt.Sprintf("%*s%s", gutter, "", chartTitle))
	for r := 0; r < chartHeight; r++ {
		label := strings.Repeat(" ", gutter-1) + "┤"
		switch r {
		case 0:
			label = fmt.Sprintf("%8.2f ┤", maxV)
		case chartHeight - 1:
			label = fmt.Sprintf("%8.2f ┤", minV)
		}
		rows = append(rows, label+string(grid[r]))
	}

	last := series.Points[n-1]
	rows = append(rows, fmt.Sprintf("%*s%s → %s  最新: %s",
		gutter, "", series.Labels[0], series.Labels[n-1], format.Pnl(&last)))

	return &chartInstance{series: series, rows: rows}
}
