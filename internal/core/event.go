package core

// Event is a notable game occurrence that the platform may log.
// KeyVals holds alternating keys and values in structured-logging order.
type Event struct {
	Msg     string
	KeyVals []any
}

// EventLog buffers events between platform polls.
// The zero value is ready to use.
type EventLog struct {
	events []Event
}

// Add records an event.
func (l *EventLog) Add(msg string, keyvals ...any) {
	l.events = append(l.events, Event{Msg: msg, KeyVals: keyvals})
}

// Drain returns the buffered events and empties the log.
func (l *EventLog) Drain() []Event {
	if len(l.events) == 0 {
		return nil
	}
	out := l.events
	l.events = nil
	return out
}
