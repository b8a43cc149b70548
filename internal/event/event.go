// Package event publishes domain events from the encounter and combat engine.
package event

import (
	"context"
	"time"
)

// Type names an event.
type Type string

const (
	TypeEncounterStarted Type = "encounter.started"
	TypeCombatLog        Type = "combat.log"
	TypeCombatEnded      Type = "combat.ended"
	TypeCombatReset      Type = "combat.reset"
)

// Event is a single domain event. Payload carries the type-specific data.
type Event struct {
	Type      Type      `json:"type"`
	Time      time.Time `json:"time"`
	SessionID string    `json:"sessionId,omitempty"`
	Message   string    `json:"message,omitempty"`
	Payload   any       `json:"payload,omitempty"`
}

// EncounterStarted is the payload of TypeEncounterStarted.
type EncounterStarted struct {
	EntityID string `json:"entityId"`
	Name     string `json:"name"`
	Level    int    `json:"level"`
	HP       int    `json:"hp"`
}

// CombatEnded is the payload of TypeCombatEnded.
type CombatEnded struct {
	Outcome  string `json:"outcome"`
	Turns    int    `json:"turns"`
	PlayerHP int    `json:"playerHp"`
	EnemyHP  int    `json:"enemyHp"`
}

// Publisher receives events.
type Publisher interface {
	Publish(ctx context.Context, event Event)
}

// PublisherFunc adapts a function to Publisher.
type PublisherFunc func(ctx context.Context, event Event)

// Publish calls f.
func (f PublisherFunc) Publish(ctx context.Context, event Event) {
	if f == nil {
		return
	}
	f(ctx, event)
}

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, Event) {}

// NopPublisher returns a publisher that drops every event.
func NopPublisher() Publisher {
	return nopPublisher{}
}

type multiPublisher []Publisher

func (m multiPublisher) Publish(ctx context.Context, event Event) {
	for _, p := range m {
		p.Publish(ctx, event)
	}
}

// Multi fans events out to every non-nil publisher.
func Multi(publishers ...Publisher) Publisher {
	out := make(multiPublisher, 0, len(publishers))
	for _, p := range publishers {
		if p != nil {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return NopPublisher()
	}
	if len(out) == 1 {
		return out[0]
	}
	return out
}
