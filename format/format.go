// Package format holds small text formatting helpers for reports.
package format

import (
	"fmt"
	"strconv"
	"strings"
)

// FloatToFixedWidthString renders n right-aligned in a w character cell,
// trimming trailing zeros.
func FloatToFixedWidthString(n float64, w int) string {
	wStr := strconv.Itoa(w)
	s := fmt.Sprintf("%"+wStr+"."+wStr+"f", n)
	trimed := strings.TrimRight(s[:w], "0")
	return strings.Repeat(" ", w-len(trimed)) + trimed
}
