package ui

import (
	"strings"
	"testing"

	"pyfmt/internal/driver"
)

func TestStatusLabel(t *testing.T) {
	tests := []struct {
		name string
		ev   driver.Event
		want string
	}{
		{"queued", driver.Event{Status: driver.StatusQueued}, "queued"},
		{"working shows stage", driver.Event{Status: driver.StatusWorking, Stage: driver.StageParse}, "parsing"},
		{"done changed", driver.Event{Status: driver.StatusDone, Changed: true}, "reformatted"},
		{"done clean", driver.Event{Status: driver.StatusDone}, "clean"},
		{"error", driver.Event{Status: driver.StatusError}, "error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := statusLabel(tt.ev); got != tt.want {
				t.Errorf("statusLabel = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestApplyEventTracksCompletion(t *testing.T) {
	m := NewProgressModel("formatting", []string{"a.py", "b.py"}, nil).(*progressModel)

	m.applyEvent(driver.Event{File: "a.py", Stage: driver.StageParse, Status: driver.StatusWorking})
	if got := m.items[0].status; got != "parsing" {
		t.Errorf("status = %q, want %q", got, "parsing")
	}
	if m.finished != 0 {
		t.Errorf("finished = %d, want 0", m.finished)
	}

	m.applyEvent(driver.Event{File: "a.py", Stage: driver.StageWrite, Status: driver.StatusDone, Changed: true})
	if got := m.items[0].status; got != "reformatted" {
		t.Errorf("status = %q, want %q", got, "reformatted")
	}
	if m.finished != 1 {
		t.Errorf("finished = %d, want 1", m.finished)
	}

	// A repeated final event must not double-count.
	m.applyEvent(driver.Event{File: "a.py", Stage: driver.StageWrite, Status: driver.StatusDone, Changed: true})
	if m.finished != 1 {
		t.Errorf("finished after repeat = %d, want 1", m.finished)
	}

	// Non-queued events for unknown files are dropped.
	m.applyEvent(driver.Event{File: "zzz.py", Status: driver.StatusDone})
	if m.finished != 1 {
		t.Errorf("finished after unknown file = %d, want 1", m.finished)
	}
}

func TestApplyEventRegistersQueuedFiles(t *testing.T) {
	m := NewProgressModel("formatting", nil, nil).(*progressModel)

	m.applyEvent(driver.Event{File: "a.py", Stage: driver.StageRead, Status: driver.StatusQueued})
	m.applyEvent(driver.Event{File: "b.py", Stage: driver.StageRead, Status: driver.StatusQueued})
	if len(m.items) != 2 {
		t.Fatalf("items = %d, want 2", len(m.items))
	}
	if m.items[0].path != "a.py" || m.items[1].path != "b.py" {
		t.Errorf("paths = %q, %q", m.items[0].path, m.items[1].path)
	}

	m.applyEvent(driver.Event{File: "b.py", Stage: driver.StagePrint, Status: driver.StatusDone})
	if m.finished != 1 {
		t.Errorf("finished = %d, want 1", m.finished)
	}
}

func TestViewListsFiles(t *testing.T) {
	m := NewProgressModel("formatting", []string{"pkg/app.py"}, nil).(*progressModel)
	view := m.View()
	for _, want := range []string{"pkg/app.py", "queued", "formatting (0/1)"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestViewEmptyWithoutFiles(t *testing.T) {
	m := NewProgressModel("formatting", nil, nil).(*progressModel)
	if got := m.View(); got != "" {
		t.Errorf("view = %q, want empty", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		value string
		width int
		want  string
	}{
		{"short.py", 20, "short.py"},
		{"abcdefghijkl", 8, "abcde..."},
		{"wide", 0, "wide"},
	}
	for _, tt := range tests {
		if got := truncate(tt.value, tt.width); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.value, tt.width, got, tt.want)
		}
	}
}
