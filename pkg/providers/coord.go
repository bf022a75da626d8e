package providers

import "strconv"

// formatCoord renders a coordinate with the shortest exact representation
func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
