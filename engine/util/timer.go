package util

import (
	"fmt"
	"math"
	"strings"
	"sync"
	"time"
)

// StageStats accumulates the durations of one named stage, in milliseconds.
type StageStats struct {
	Name  string
	Last  float64
	Total float64
	Count int64
	Min   float64
	Max   float64
}

func (s StageStats) Average() float64 {
	if s.Count == 0 {
		return 0
	}
	return s.Total / float64(s.Count)
}

func (s StageStats) String() string {
	return fmt.Sprintf("%s last: %.2fms, avg: %.2fms, min: %.2fms, max: %.2fms (%d runs)", s.Name, s.Last, s.Average(), s.Min, s.Max, s.Count)
}

// Timer measures named stages like "rebuild" or "draw". Safe for concurrent use.
type Timer struct {
	mutex  sync.Mutex
	stages map[string]*StageStats
	order  []string
	now    func() time.Time
}

func NewTimer() *Timer {
	return &Timer{
		stages: make(map[string]*StageStats),
		now:    time.Now,
	}
}

// Start begins measuring the named stage. Calling the returned function ends
// the measurement and returns its duration in milliseconds.
func (t *Timer) Start(name string) func() float64 {
	start := t.now()
	return func() float64 {
		durationInMS := float64(t.now().Sub(start).Microseconds()) / 1000.0
		t.record(name, durationInMS)
		return durationInMS
	}
}

func (t *Timer) record(name string, durationInMS float64) {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	state, ok := t.stages[name]
	if !ok {
		t.order = append(t.order, name)
		state = &StageStats{Name: name, Min: math.MaxFloat64, Max: -math.MaxFloat64}
		t.stages[name] = state
	}
	state.Last = durationInMS
	state.Total += durationInMS
	state.Count++
	state.Min = math.Min(state.Min, durationInMS)
	state.Max = math.Max(state.Max, durationInMS)
}

// Stage returns a copy of the stats for name.
func (t *Timer) Stage(name string) (StageStats, bool) {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	state, ok := t.stages[name]
	if !ok {
		return StageStats{}, false
	}
	return *state, true
}

func (t *Timer) Reset() {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	t.stages = make(map[string]*StageStats)
	t.order = nil
}

// String lists the stages in the order they were first measured.
func (t *Timer) String() string {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	var sb strings.Builder
	for _, name := range t.order {
		sb.WriteString(t.stages[name].String())
		sb.WriteString("\n")
	}
	return sb.String()
}
