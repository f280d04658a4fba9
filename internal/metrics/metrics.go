package metrics

import (
	"sync"
	"time"

	"github.com/preston-bernstein/football-api/pkg/footballapi"
)

type actionStats struct {
	calls           int
	errors          int
	errorsByKind    map[string]int
	lastCallLatency time.Duration
}

// Recorder captures in-memory counters about Football-API calls and mirrors
// them into OpenTelemetry instruments when those are configured.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*actionStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*actionStats),
		otel:  otel,
	}
}

// ObserveCall implements footballapi.Observer.
func (r *Recorder) ObserveCall(action string, duration time.Duration, err error) {
	r.RecordCall(action, duration, errorKind(err))
}

// RecordCall counts one round trip for action. An empty errKind means success.
func (r *Recorder) RecordCall(action string, duration time.Duration, errKind string) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStatsLocked(action)
	stats.calls++
	stats.lastCallLatency = duration
	if errKind != "" {
		stats.errors++
		stats.errorsByKind[errKind]++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordCall(action, duration, errKind)
	}
}

// Calls returns the total round trips recorded for action.
func (r *Recorder) Calls(action string) int {
	return r.Snapshot(action).Calls
}

// Errors returns the failed round trips recorded for action.
func (r *Recorder) Errors(action string) int {
	return r.Snapshot(action).Errors
}

// LastCallLatency returns the last recorded latency for action.
func (r *Recorder) LastCallLatency(action string) time.Duration {
	return r.Snapshot(action).LastCallLatency
}

// Snapshot is a copy of the stats recorded for one action.
type Snapshot struct {
	Calls           int
	Errors          int
	ErrorsByKind    map[string]int
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(action string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[action]
	if !ok || stats == nil {
		return Snapshot{}
	}
	byKind := make(map[string]int, len(stats.errorsByKind))
	for k, v := range stats.errorsByKind {
		byKind[k] = v
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		ErrorsByKind:    byKind,
		LastCallLatency: stats.lastCallLatency,
	}
}

// RecordHTTPRequest tracks basic gateway HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

func (r *Recorder) ensureStatsLocked(action string) *actionStats {
	stats, ok := r.stats[action]
	if !ok {
		stats = &actionStats{errorsByKind: make(map[string]int)}
		r.stats[action] = stats
	}
	return stats
}

func errorKind(err error) string {
	if err == nil {
		return ""
	}
	kind, _ := footballapi.KindOf(err)
	return kind.String()
}
