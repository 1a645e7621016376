package event

import (
	"sort"

	log "github.com/inconshreveable/log15"
)

// Sink consumes registry events. Implementations must not block; the
// registry appends on its request path and ignores sink failures.
type Sink interface {
	Append(Event)
}

// NopSink discards every event.
type NopSink struct{}

// Append implements Sink.
func (NopSink) Append(Event) {}

// LoggerSink writes events as structured log lines.
type LoggerSink struct {
	Logger log.Logger
}

// NewLoggerSink returns a sink writing to the given log15 logger, or the
// root logger when nil.
func NewLoggerSink(logger log.Logger) *LoggerSink {
	if logger == nil {
		logger = log.Root()
	}
	return &LoggerSink{Logger: logger}
}

// Append implements Sink.
func (s *LoggerSink) Append(ev Event) {
	ctx := make([]interface{}, 0, 2*len(ev.Fields)+2)
	ctx = append(ctx, "id", ev.ID)
	for _, k := range sortedKeys(ev.Fields) {
		ctx = append(ctx, k, ev.Fields[k])
	}
	s.Logger.Info(string(ev.Type), ctx...)
}

// sortedKeys returns the field names in stable order.
func sortedKeys(fields map[string]string) []string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
