package game

// EventLog keeps the most recent narration lines. When full, adding a line
// evicts the oldest one.
type EventLog struct {
	capacity int
	lines    []string
}

// NewEventLog creates a log holding at most capacity lines.
// A capacity below 1 is treated as 1.
func NewEventLog(capacity int) *EventLog {
	if capacity < 1 {
		capacity = 1
	}
	return &EventLog{
		capacity: capacity,
		lines:    make([]string, 0, capacity),
	}
}

// Add appends a line, dropping the oldest if the log is full.
func (l *EventLog) Add(line string) {
	if len(l.lines) == l.capacity {
		copy(l.lines, l.lines[1:])
		l.lines = l.lines[:l.capacity-1]
	}
	l.lines = append(l.lines, line)
}

// Entries returns a copy of all lines, oldest first.
func (l *EventLog) Entries() []string {
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

// Last returns a copy of the newest n lines, oldest first.
func (l *EventLog) Last(n int) []string {
	if n > len(l.lines) {
		n = len(l.lines)
	}
	if n <= 0 {
		return []string{}
	}
	out := make([]string, n)
	copy(out, l.lines[len(l.lines)-n:])
	return out
}

// Len returns the number of lines held.
func (l *EventLog) Len() int { return len(l.lines) }

// Cap returns the maximum number of lines held.
func (l *EventLog) Cap() int { return l.capacity }
