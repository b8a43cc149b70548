package encounter

import (
	"context"
	"testing"

	"github.com/Hausk/eclipse/internal/entity"
	"github.com/Hausk/eclipse/internal/event"
	"github.com/Hausk/eclipse/internal/world"
)

type fakeStarter struct {
	accept  bool
	started []*entity.RoamingEntity
}

func (f *fakeStarter) StartEncounter(_ context.Context, e *entity.RoamingEntity) bool {
	if !f.accept {
		return false
	}
	f.started = append(f.started, e)
	return true
}

func TestTriggerStartsOneEncounter(t *testing.T) {
	r := newTestRegistry(1)
	first, second := slimeAt(0.5, 0), slimeAt(-0.5, 0)
	r.Add(first)
	r.Add(second)

	starter := &fakeStarter{accept: true}
	rec := event.NewRecorder()
	trigger := NewTrigger(r, starter, rec)

	got, ok := trigger.Check(context.Background(), world.Vec3{Y: world.PlayerHeight})
	if !ok || got != first {
		t.Fatalf("Check() = %v, %v, want first entity", got, ok)
	}
	if len(starter.started) != 1 {
		t.Errorf("starter called %d times, want 1", len(starter.started))
	}
	if r.Len() != 1 {
		t.Errorf("registry Len() = %d, want 1 after consume", r.Len())
	}
	if _, still := r.Get(first.ID); still {
		t.Error("consumed entity should be removed from the roam set")
	}

	started := rec.OfType(event.TypeEncounterStarted)
	if len(started) != 1 {
		t.Fatalf("published %d encounter.started events, want 1", len(started))
	}
	payload, ok := started[0].Payload.(event.EncounterStarted)
	if !ok || payload.EntityID != first.ID || payload.HP != 30 {
		t.Errorf("encounter.started payload = %+v", started[0].Payload)
	}
}

func TestTriggerNoMatch(t *testing.T) {
	r := newTestRegistry(1)
	r.Add(slimeAt(10, 10))

	starter := &fakeStarter{accept: true}
	trigger := NewTrigger(r, starter, nil)

	if _, ok := trigger.Check(context.Background(), world.Vec3{}); ok {
		t.Error("Check() should not match a distant entity")
	}
	if len(starter.started) != 0 || r.Len() != 1 {
		t.Error("no-match check must not start or consume anything")
	}
}

func TestTriggerRejectedLeavesEntity(t *testing.T) {
	r := newTestRegistry(1)
	e := slimeAt(0, 0)
	r.Add(e)

	rec := event.NewRecorder()
	trigger := NewTrigger(r, &fakeStarter{accept: false}, rec)

	if _, ok := trigger.Check(context.Background(), world.Vec3{}); ok {
		t.Error("Check() should report false when the starter rejects")
	}
	if r.Len() != 1 {
		t.Error("rejected encounter must leave the entity in the roam set")
	}
	if len(rec.Events()) != 0 {
		t.Error("rejected encounter must not publish events")
	}
}
