package models

// AnalysisType classifies what kind of analysis the user asked for.
type AnalysisType string

const (
	AnalysisMetrics    AnalysisType = "metrics"
	AnalysisComparison AnalysisType = "comparison"
	AnalysisSentiment  AnalysisType = "sentiment"
	AnalysisAnalysis   AnalysisType = "analysis"
)

// ValidAnalysisType reports whether s is one of the known analysis types.
func ValidAnalysisType(s string) bool {
	switch AnalysisType(s) {
	case AnalysisMetrics, AnalysisComparison, AnalysisSentiment, AnalysisAnalysis:
		return true
	}
	return false
}

// Intent is the structured interpretation of a free-form user query.
// It is produced once per query and never mutated afterwards.
type Intent struct {
	Stocks         []string     `json:"stocks"`
	Sectors        []string     `json:"sectors"`
	AnalysisType   AnalysisType `json:"analysis_type"`
	Interpretation string       `json:"interpretation"`
}

// EmptyIntent is the deterministic fallback used when the completion
// service replies with something that does not parse. The pipeline must
// degrade to this value instead of failing the whole query.
func EmptyIntent() Intent {
	return Intent{
		Stocks:         []string{},
		Sectors:        []string{},
		AnalysisType:   AnalysisMetrics,
		Interpretation: "unknown",
	}
}
