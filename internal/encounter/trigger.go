package encounter

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/Hausk/eclipse/internal/entity"
	"github.com/Hausk/eclipse/internal/event"
	"github.com/Hausk/eclipse/internal/telemetry"
	"github.com/Hausk/eclipse/internal/world"
)

// Starter turns a consumed roaming entity into a combat session.
type Starter interface {
	StartEncounter(ctx context.Context, e *entity.RoamingEntity) bool
}

// Trigger tests the player position against the registry once per exploration tick.
// The caller must not invoke it while a combat session is active.
type Trigger struct {
	registry  *Registry
	starter   Starter
	publisher event.Publisher
}

// NewTrigger creates a trigger over registry that hands encounters to starter.
func NewTrigger(registry *Registry, starter Starter, publisher event.Publisher) *Trigger {
	if publisher == nil {
		publisher = event.NopPublisher()
	}
	return &Trigger{registry: registry, starter: starter, publisher: publisher}
}

// Check starts at most one encounter. On a match the starter builds the
// session, the entity leaves the roam set and encounter.started is published.
// A rejected start leaves the entity where it is.
func (t *Trigger) Check(ctx context.Context, pos world.Vec3) (*entity.RoamingEntity, bool) {
	found, ok := t.registry.Query(pos)
	if !ok {
		return nil, false
	}

	ctx, span := telemetry.Tracer("encounter").Start(ctx, "encounter.trigger")
	defer span.End()
	span.SetAttributes(
		attribute.String("entity.id", found.ID),
		attribute.String("entity.name", found.Stats.Name),
		attribute.Float64("distance", pos.DistanceTo(found.Position)),
	)

	if !t.starter.StartEncounter(ctx, found) {
		span.SetAttributes(attribute.Bool("rejected", true))
		return nil, false
	}
	t.registry.Remove(found.ID)

	t.publisher.Publish(ctx, event.Event{
		Type:    event.TypeEncounterStarted,
		Time:    time.Now(),
		Message: "Encounter with " + found.Stats.Name,
		Payload: event.EncounterStarted{
			EntityID: found.ID,
			Name:     found.Stats.Name,
			Level:    found.Stats.Level,
			HP:       found.Stats.HP,
		},
	})

	return found, true
}
