package readtime

import (
	"fmt"
	"math"
)

// ReadTime is the result of one estimation: the classified counts plus the
// derived duration. It is a plain value with no further lifecycle; the JSON
// field names form the serialized contract consumed by publishing tools.
type ReadTime struct {
	TotalSeconds   int    `json:"total_seconds"`
	Formatted      string `json:"formatted"`
	WordCount      int    `json:"word_count"`
	ImageCount     int    `json:"image_count"`
	CodeBlockCount int    `json:"code_block_count"`
}

// Minutes projects the total into whole minutes, rounded up so a 61 second
// read reports 2 minutes.
func (rt ReadTime) Minutes() int {
	return int(math.Ceil(float64(rt.TotalSeconds) / 60.0))
}

// FormatSeconds renders the duration label shown next to content: totals
// under a minute render as "N sec", anything else as "N min" with the minute
// count rounded up. The rule is monotonic — a larger total never renders a
// smaller unit.
func FormatSeconds(total int) string {
	if total < 60 {
		return fmt.Sprintf("%d sec", total)
	}
	return fmt.Sprintf("%d min", (total+59)/60)
}
