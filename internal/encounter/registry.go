// Package encounter owns the roaming entities on the exploration field and
// decides when the player's position turns one of them into a combat encounter.
package encounter

import (
	"context"
	"math/rand"
	"sort"

	"go.opentelemetry.io/otel/attribute"

	"github.com/Hausk/eclipse/internal/entity"
	"github.com/Hausk/eclipse/internal/gamedata"
	"github.com/Hausk/eclipse/internal/telemetry"
	"github.com/Hausk/eclipse/internal/world"
)

// DefaultTriggerRadius is the distance below which an entity starts an encounter.
const DefaultTriggerRadius = 2.0

// Registry holds the live roaming entities in spawn order.
type Registry struct {
	defs          *gamedata.EnemyRegistry
	rng           *rand.Rand
	triggerRadius float64
	entities      []*entity.RoamingEntity
}

// NewRegistry creates an empty registry. Entity types are drawn from defs.
func NewRegistry(defs *gamedata.EnemyRegistry, rng *rand.Rand, triggerRadius float64) *Registry {
	return &Registry{
		defs:          defs,
		rng:           rng,
		triggerRadius: triggerRadius,
	}
}

// TriggerRadius returns the proximity threshold used by Query.
func (r *Registry) TriggerRadius() float64 {
	return r.triggerRadius
}

// SpawnInitial places count entities uniformly at random within the square of
// half-width boundsRadius around the origin, at ground height. Entities may
// overlap.
func (r *Registry) SpawnInitial(ctx context.Context, count int, boundsRadius float64) {
	_, span := telemetry.Tracer("encounter").Start(ctx, "encounter.spawn")
	defer span.End()

	spawned := 0
	for i := 0; i < count; i++ {
		def := r.defs.SpawnRandom(r.rng)
		if def == nil {
			break
		}
		pos := world.RandomPoint(r.rng, boundsRadius, world.GroundHeight)
		r.Add(entity.NewRoamingEntity(def, pos))
		spawned++
	}

	span.SetAttributes(
		attribute.Int("encounter.requested", count),
		attribute.Int("encounter.spawned", spawned),
		attribute.Float64("encounter.bounds_radius", boundsRadius),
	)
}

// Add appends an entity to the roam set.
func (r *Registry) Add(e *entity.RoamingEntity) {
	r.entities = append(r.entities, e)
}

// Query returns the first entity, in spawn order, strictly closer than the
// trigger radius to pos. It is not necessarily the closest one.
func (r *Registry) Query(pos world.Vec3) (*entity.RoamingEntity, bool) {
	for _, e := range r.entities {
		if pos.DistanceTo(e.Position) < r.triggerRadius {
			return e, true
		}
	}
	return nil, false
}

// Remove drops the entity with the given ID, keeping the order of the rest.
func (r *Registry) Remove(id string) bool {
	for i, e := range r.entities {
		if e.ID == id {
			r.entities = append(r.entities[:i], r.entities[i+1:]...)
			return true
		}
	}
	return false
}

// Get returns the entity with the given ID.
func (r *Registry) Get(id string) (*entity.RoamingEntity, bool) {
	for _, e := range r.entities {
		if e.ID == id {
			return e, true
		}
	}
	return nil, false
}

// Entities returns a copy of the roam set in spawn order.
func (r *Registry) Entities() []*entity.RoamingEntity {
	return append([]*entity.RoamingEntity(nil), r.entities...)
}

// Len returns the number of live entities.
func (r *Registry) Len() int {
	return len(r.entities)
}

// Sighting describes an entity near the player.
type Sighting struct {
	ID       string
	Name     string
	Level    int
	Distance float64
}

// Nearby returns the entities within radius of pos, closest first.
func (r *Registry) Nearby(pos world.Vec3, radius float64) []Sighting {
	var out []Sighting
	for _, e := range r.entities {
		d := pos.DistanceTo(e.Position)
		if d <= radius {
			out = append(out, Sighting{ID: e.ID, Name: e.Stats.Name, Level: e.Stats.Level, Distance: d})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Distance < out[j].Distance })
	return out
}
