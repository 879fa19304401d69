package usecase

import (
	"sort"
	"strconv"
	"strings"

	"taskscribe/pkg/jira"
)

// priorityIDFor maps a 1..4 urgency to a Jira priority ID positionally:
// the site's scheme is sorted most urgent first and index p-1 is picked.
// Any doubt (no scheme, short scheme, out-of-range p) omits the field.
func priorityIDFor(priorities []jira.Priority, p int) string {
	if p < 1 || p > 4 || len(priorities) < 4 {
		return ""
	}

	ordered := make([]jira.Priority, len(priorities))
	copy(ordered, priorities)
	// Red status colors mark the urgent end of the scheme; the sort is
	// stable so the site's own order breaks ties.
	sort.SliceStable(ordered, func(i, j int) bool {
		return isRedColor(ordered[i].StatusColor) && !isRedColor(ordered[j].StatusColor)
	})

	return ordered[p-1].ID
}

// isRedColor reports whether a status color reads as red, either by name or
// as a hex triplet with a dominant red channel.
func isRedColor(color string) bool {
	c := strings.ToLower(strings.TrimSpace(color))
	if strings.Contains(c, "red") {
		return true
	}
	if !strings.HasPrefix(c, "#") || len(c) != 7 {
		return false
	}
	r, err1 := strconv.ParseInt(c[1:3], 16, 32)
	g, err2 := strconv.ParseInt(c[3:5], 16, 32)
	b, err3 := strconv.ParseInt(c[5:7], 16, 32)
	if err1 != nil || err2 != nil || err3 != nil {
		return false
	}
	return r > g+0x20 && r > b+0x20
}
