package util

import (
	"strings"
	"testing"
	"time"
)

func TestTimerAccumulatesStages(t *testing.T) {
	timer := NewTimer()
	clock := time.Unix(0, 0)
	timer.now = func() time.Time { return clock }

	for _, ms := range []int{4, 2, 6} {
		stop := timer.Start("rebuild")
		clock = clock.Add(time.Duration(ms) * time.Millisecond)
		if got := stop(); got != float64(ms) {
			t.Fatalf("stop() = %v, want %d", got, ms)
		}
	}
	stop := timer.Start("draw")
	clock = clock.Add(time.Millisecond)
	stop()

	rebuild, ok := timer.Stage("rebuild")
	if !ok {
		t.Fatalf("missing stage")
	}
	if rebuild.Count != 3 || rebuild.Min != 2 || rebuild.Max != 6 || rebuild.Last != 6 || rebuild.Average() != 4 {
		t.Fatalf("unexpected stats %+v", rebuild)
	}
	lines := strings.Split(strings.TrimSpace(timer.String()), "\n")
	if len(lines) != 2 || !strings.HasPrefix(lines[0], "rebuild") || !strings.HasPrefix(lines[1], "draw") {
		t.Fatalf("unexpected summary %q", timer.String())
	}

	timer.Reset()
	if _, ok := timer.Stage("rebuild"); ok {
		t.Fatalf("Reset kept stages")
	}
}
