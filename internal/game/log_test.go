package game

import (
	"fmt"
	"testing"
)

func TestLogKeepsMostRecent(t *testing.T) {
	l := NewLog(10)
	for i := 1; i <= 12; i++ {
		l.Append(fmt.Sprintf("line %d", i))
	}

	entries := l.Entries()
	if len(entries) != 10 {
		t.Fatalf("Len = %d, want 10", len(entries))
	}
	if entries[0] != "line 3" {
		t.Errorf("oldest entry = %q, want %q", entries[0], "line 3")
	}
	if l.Last() != "line 12" {
		t.Errorf("Last() = %q, want %q", l.Last(), "line 12")
	}
}

func TestLogEntriesIsACopy(t *testing.T) {
	l := NewLog(3)
	l.Append("a")

	entries := l.Entries()
	entries[0] = "changed"

	if l.Last() != "a" {
		t.Error("mutating Entries() changed the log")
	}
}

func TestLogMinimumCapacity(t *testing.T) {
	l := NewLog(0)
	l.Append("a")
	l.Append("b")

	if l.Len() != 1 || l.Last() != "b" {
		t.Errorf("Len() = %d Last() = %q, want 1 and b", l.Len(), l.Last())
	}
}

func TestLogEmpty(t *testing.T) {
	l := NewLog(5)
	if l.Last() != "" || l.Len() != 0 || len(l.Entries()) != 0 {
		t.Error("new log should be empty")
	}
}
