// Package display renders fetched metrics for the terminal dashboard and
// formats raw indicator values for summaries.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ivolee/stockdash/internal/models"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#3B82F6")).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3B82F6")).
			Padding(0, 2)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9CA3AF")).
			Width(18)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E5E7EB"))

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#10B981"))

	gaugeFillStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7C3AED"))

	gaugeRestStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#374151"))

	summaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F59E0B")).
			PaddingTop(1)
)

// currencyKeys and percentKeys drive per-indicator formatting; everything
// else numeric renders as a plain ratio.
var currencyKeys = map[string]bool{
	models.IndPrice:           true,
	models.IndMarketCap:       true,
	models.IndEnterpriseValue: true,
	models.IndRevenue:         true,
	models.IndGrossProfit:     true,
	models.IndDebt:            true,
}

var percentKeys = map[string]bool{
	models.IndProfitMargin:    true,
	models.IndOperatingMargin: true,
	models.IndDividendYield:   true,
	models.IndInsiderPct:      true,
	models.IndInstitutionPct:  true,
	models.IndPayoutRatio:     true,
}

// FormatIndicator renders one indicator value according to its kind.
func FormatIndicator(key string, value any) string {
	if value == nil {
		return "N/A"
	}
	if s, ok := value.(string); ok {
		return s
	}
	switch {
	case currencyKeys[key]:
		return FormatCurrency(value)
	case percentKeys[key]:
		return FormatPercentage(value)
	default:
		return FormatRatio(value)
	}
}

// Renderer writes styled dashboards to an output stream.
type Renderer struct {
	out io.Writer
}

// NewRenderer creates a renderer writing to out.
func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

// RenderResult prints the full dashboard for a query result: one metrics
// panel and radar gauge block per record, then the summary text.
func (r *Renderer) RenderResult(result *models.QueryResult) {
	for _, record := range result.Records {
		r.RenderRecord(record)
	}
	if result.Summary != "" {
		fmt.Fprintln(r.out, summaryStyle.Render(result.Summary))
	}
}

// RenderRecord prints the metrics table and valuation radar for one stock.
func (r *Renderer) RenderRecord(record models.MetricsRecord) {
	symbol := record.Category(models.IndSymbol, "N/A")
	sector := record.Category(models.IndSector, "N/A")

	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, headerStyle.Render(fmt.Sprintf("%s  ·  %s", symbol, sector)))
	fmt.Fprintln(r.out)

	fmt.Fprintln(r.out, sectionStyle.Render("Key Metrics"))
	for _, key := range models.Indicators {
		if key == models.IndSymbol || key == models.IndSector {
			continue
		}
		fmt.Fprintf(r.out, "%s %s\n",
			labelStyle.Render(key),
			valueStyle.Render(FormatIndicator(key, record[key])))
	}

	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, sectionStyle.Render("Valuation Radar"))
	for _, axis := range RadarScores(record) {
		fmt.Fprintf(r.out, "%s %s %3.0f\n",
			labelStyle.Render(axis.Name),
			renderGauge(axis.Score, 20),
			axis.Score)
	}
	fmt.Fprintln(r.out)
}

// renderGauge draws a fixed-width bar for a 0-100 score.
func renderGauge(score float64, width int) string {
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	filled := int(score / 100 * float64(width))
	return gaugeFillStyle.Render(strings.Repeat("█", filled)) +
		gaugeRestStyle.Render(strings.Repeat("░", width-filled))
}
