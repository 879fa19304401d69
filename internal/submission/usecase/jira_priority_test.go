package usecase

import (
	"testing"

	"taskscribe/pkg/jira"
)

func TestPriorityIDFor(t *testing.T) {
	scheme := []jira.Priority{
		{ID: "1", Name: "Highest", StatusColor: "#d04437"},
		{ID: "2", Name: "High", StatusColor: "#f15C75"},
		{ID: "3", Name: "Medium", StatusColor: "#f79232"},
		{ID: "4", Name: "Low", StatusColor: "#707070"},
		{ID: "5", Name: "Lowest", StatusColor: "#999999"},
	}

	t.Run("positional map", func(t *testing.T) {
		for p, want := range map[int]string{1: "1", 2: "2", 3: "3", 4: "4"} {
			if got := priorityIDFor(scheme, p); got != want {
				t.Errorf("priorityIDFor(%d) = %q, want %q", p, got, want)
			}
		}
	})

	t.Run("red entries float to the urgent end", func(t *testing.T) {
		shuffled := []jira.Priority{
			{ID: "4", Name: "Low", StatusColor: "#707070"},
			{ID: "1", Name: "Highest", StatusColor: "#d04437"},
			{ID: "3", Name: "Medium", StatusColor: "#999999"},
			{ID: "2", Name: "High", StatusColor: "red"},
		}
		if got := priorityIDFor(shuffled, 1); got != "1" {
			t.Errorf("priorityIDFor(1) = %q, want %q", got, "1")
		}
		if got := priorityIDFor(shuffled, 2); got != "2" {
			t.Errorf("priorityIDFor(2) = %q, want %q", got, "2")
		}
	})

	t.Run("omitted on doubt", func(t *testing.T) {
		if got := priorityIDFor(nil, 2); got != "" {
			t.Errorf("nil scheme: got %q", got)
		}
		if got := priorityIDFor(scheme[:3], 2); got != "" {
			t.Errorf("short scheme: got %q", got)
		}
		if got := priorityIDFor(scheme, 0); got != "" {
			t.Errorf("priority 0: got %q", got)
		}
		if got := priorityIDFor(scheme, 5); got != "" {
			t.Errorf("priority 5: got %q", got)
		}
	})
}

func TestIsRedColor(t *testing.T) {
	for _, tc := range []struct {
		color string
		want  bool
	}{
		{"#d04437", true},
		{"red", true},
		{"medium-gray", false},
		{"#707070", false},
		{"#00ff00", false},
		{"", false},
		{"#zzz", false},
	} {
		if got := isRedColor(tc.color); got != tc.want {
			t.Errorf("isRedColor(%q) = %v, want %v", tc.color, got, tc.want)
		}
	}
}
