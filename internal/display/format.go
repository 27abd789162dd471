package display

import "fmt"

// FormatCurrency renders a dollar amount with a T/B/M/K magnitude suffix.
func FormatCurrency(value any) string {
	v, ok := asFloat(value)
	if !ok {
		return "N/A"
	}
	switch {
	case v >= 1e12:
		return fmt.Sprintf("$%.2fT", v/1e12)
	case v >= 1e9:
		return fmt.Sprintf("$%.2fB", v/1e9)
	case v >= 1e6:
		return fmt.Sprintf("$%.2fM", v/1e6)
	case v >= 1e3:
		return fmt.Sprintf("$%.2fK", v/1e3)
	default:
		return fmt.Sprintf("$%.2f", v)
	}
}

// FormatPercentage renders a 0–1 fraction as a percentage.
func FormatPercentage(value any) string {
	v, ok := asFloat(value)
	if !ok {
		return "N/A"
	}
	return fmt.Sprintf("%.2f%%", v*100)
}

// FormatRatio renders a plain numeric ratio such as a PE multiple.
func FormatRatio(value any) string {
	v, ok := asFloat(value)
	if !ok {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", v)
}

func asFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int64:
		return float64(v), true
	case int:
		return float64(v), true
	}
	return 0, false
}
