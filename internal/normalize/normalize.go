// Package normalize converts loosely-typed upstream text fields into the
// strongly-typed values served by the API. Every function here is total:
// unparseable input yields an explicit absent result, never an error.
package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Duration parses a colon-delimited duration ("3:45", "1:02:03") into whole
// seconds. Parts are weighted right-to-left: seconds, minutes, hours.
// Returns false for empty input or any non-numeric segment. Upstream
// occasionally ships garbage mid-field; rejecting the whole value is safer
// than a silent partial parse.
func Duration(text string) (int, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, false
	}

	parts := strings.Split(text, ":")
	total := 0
	weight := 1
	for i := len(parts) - 1; i >= 0; i-- {
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || n < 0 {
			return 0, false
		}
		total += n * weight
		weight *= 60
	}
	return total, true
}

// viewCountPattern matches the first maximal run of digits and thousands
// separators in a human-formatted count such as "1,234,567 views".
var viewCountPattern = regexp.MustCompile(`[0-9][0-9,]*`)

// ViewCount extracts an integer count from a human-formatted text field.
// Thousands separators (commas) are stripped. Returns false when the text
// contains no digit run at all.
func ViewCount(text string) (int64, bool) {
	run := viewCountPattern.FindString(text)
	if run == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(strings.ReplaceAll(run, ",", ""), 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// ImageQuality maps a thumbnail pixel width to the quality label served in
// image variant lists. Thresholds are checked highest-first.
func ImageQuality(width int) string {
	switch {
	case width >= 1280:
		return "1280x720"
	case width >= 640:
		return "640x480"
	case width >= 480:
		return "480x360"
	case width >= 320:
		return "320x180"
	default:
		return "120x90"
	}
}

var isoDurationPattern = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?$`)

// ClockDuration renders an ISO 8601 duration ("PT1H2M3S") as clock text:
// "H:MM:SS" when hours are present, "M:SS" otherwise. Each numeric group is
// optional and defaults to zero. Malformed input yields "0:00".
func ClockDuration(iso string) string {
	m := isoDurationPattern.FindStringSubmatch(strings.TrimSpace(iso))
	if m == nil {
		return "0:00"
	}

	// Groups that did not participate parse as zero.
	h, _ := strconv.Atoi(zeroIfEmpty(m[1]))
	min, _ := strconv.Atoi(zeroIfEmpty(m[2]))
	sec, _ := strconv.Atoi(zeroIfEmpty(m[3]))

	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, min, sec)
	}
	return fmt.Sprintf("%d:%02d", min, sec)
}

func zeroIfEmpty(s string) string {
	if s == "" {
		return "0"
	}
	return s
}
