package stats

import (
	"strconv"
	"strings"
)

// ParseValue normalizes a stat value from the formats a spreadsheet cell can
// come back as.
//
// Raw numeric cells arrive as plain decimal strings. Cells typed as text may
// carry thousands separators ("4,183") or a trailing percent sign ("65.3%");
// both are stripped and the number is kept on the sheet's own scale.
//
// Returns the scalar float64 value, and ok=false if not extractable.
func ParseValue(val interface{}) (float64, bool) {
	if val == nil {
		return 0, false
	}

	switch v := val.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		s := strings.TrimSpace(v)
		s = strings.TrimSuffix(s, "%")
		s = strings.ReplaceAll(s, ",", "")
		if s == "" {
			return 0, false
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f, true
		}
		return 0, false
	default:
		return 0, false
	}
}
