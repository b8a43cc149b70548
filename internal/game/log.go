package game

// Log is a bounded combat log keeping the most recent entries, oldest first.
type Log struct {
	capacity int
	entries  []string
}

// NewLog creates a log holding at most capacity entries (minimum 1).
func NewLog(capacity int) *Log {
	if capacity < 1 {
		capacity = 1
	}
	return &Log{capacity: capacity, entries: make([]string, 0, capacity)}
}

// Append adds a message, dropping the oldest when full.
func (l *Log) Append(msg string) {
	if len(l.entries) == l.capacity {
		copy(l.entries, l.entries[1:])
		l.entries = l.entries[:len(l.entries)-1]
	}
	l.entries = append(l.entries, msg)
}

// Entries returns a copy of the log, most recent last.
func (l *Log) Entries() []string {
	return append([]string(nil), l.entries...)
}

// Len returns the number of entries.
func (l *Log) Len() int {
	return len(l.entries)
}

// Last returns the most recent entry, or "" for an empty log.
func (l *Log) Last() string {
	if len(l.entries) == 0 {
		return ""
	}
	return l.entries[len(l.entries)-1]
}
