package event

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"strings"
	"testing"
)

func TestMultiFansOut(t *testing.T) {
	a, b := NewRecorder(), NewRecorder()
	pub := Multi(a, nil, b)

	pub.Publish(context.Background(), Event{Type: TypeCombatLog, Message: "hello"})

	if len(a.Events()) != 1 || len(b.Events()) != 1 {
		t.Fatalf("recorders got %d and %d events, want 1 each", len(a.Events()), len(b.Events()))
	}
}

func TestMultiWithoutPublishers(t *testing.T) {
	pub := Multi(nil)
	// Must not panic.
	pub.Publish(context.Background(), Event{Type: TypeCombatLog})
}

func TestPublisherFuncNil(t *testing.T) {
	var f PublisherFunc
	f.Publish(context.Background(), Event{})
}

func TestRecorderOfType(t *testing.T) {
	r := NewRecorder()
	ctx := context.Background()
	r.Publish(ctx, Event{Type: TypeCombatLog})
	r.Publish(ctx, Event{Type: TypeCombatEnded})
	r.Publish(ctx, Event{Type: TypeCombatLog})

	if got := len(r.OfType(TypeCombatLog)); got != 2 {
		t.Errorf("OfType(combat.log) = %d events, want 2", got)
	}
	if got := len(r.OfType(TypeEncounterStarted)); got != 0 {
		t.Errorf("OfType(encounter.started) = %d events, want 0", got)
	}
}

func TestLogSink(t *testing.T) {
	var buf bytes.Buffer
	sink := NewLogSink(log.New(&buf, "", 0))

	sink.Publish(context.Background(), Event{
		Type:      TypeCombatEnded,
		SessionID: "s1",
		Message:   "Victory!",
		Payload:   CombatEnded{Outcome: "victory", Turns: 3, PlayerHP: 98},
	})

	var got struct {
		Type      string      `json:"type"`
		SessionID string      `json:"sessionId"`
		Message   string      `json:"message"`
		Payload   CombatEnded `json:"payload"`
	}
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &got); err != nil {
		t.Fatalf("log line %q is not JSON: %v", buf.String(), err)
	}
	if got.Type != "combat.ended" || got.SessionID != "s1" || got.Message != "Victory!" {
		t.Errorf("decoded event = %+v", got)
	}
	if got.Payload.Outcome != "victory" || got.Payload.Turns != 3 || got.Payload.PlayerHP != 98 {
		t.Errorf("decoded payload = %+v", got.Payload)
	}
}

func TestLogSinkOneLinePerEvent(t *testing.T) {
	var buf bytes.Buffer
	sink := NewLogSink(log.New(&buf, "", 0))

	sink.Publish(context.Background(), Event{Type: TypeCombatLog, Message: "a"})
	sink.Publish(context.Background(), Event{Type: TypeCombatReset})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), buf.String())
	}
	if strings.Contains(lines[1], "message") {
		t.Errorf("empty message should be omitted: %s", lines[1])
	}
}

func TestLogSinkNil(t *testing.T) {
	var sink *LogSink
	sink.Publish(context.Background(), Event{Type: TypeCombatLog})
}
