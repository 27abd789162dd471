package display

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/ivolee/stockdash/internal/models"
)

// RenderRadarChart renders the five valuation axes of a record as a PNG
// bar chart. Returns raw PNG bytes.
func RenderRadarChart(record models.MetricsRecord) ([]byte, error) {
	symbol := record.Category(models.IndSymbol, "")
	if symbol == "" {
		return nil, fmt.Errorf("record has no symbol")
	}

	scores := RadarScores(record)
	bars := make([]chart.Value, len(scores))
	for i, axis := range scores {
		bars[i] = chart.Value{
			Label: axis.Name,
			Value: axis.Score,
			Style: chart.Style{
				FillColor:   drawing.ColorFromHex("2563eb"),
				StrokeColor: drawing.ColorFromHex("2563eb"),
			},
		}
	}

	graph := chart.BarChart{
		Title:    fmt.Sprintf("Valuation Radar - %s", symbol),
		Width:    700,
		Height:   400,
		BarWidth: 80,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 10, Bottom: 10},
		},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: 100},
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.0f", f)
				}
				return ""
			},
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}

	return buf.Bytes(), nil
}
