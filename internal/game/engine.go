package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/Hausk/eclipse/internal/combat"
	"github.com/Hausk/eclipse/internal/encounter"
	"github.com/Hausk/eclipse/internal/entity"
	"github.com/Hausk/eclipse/internal/event"
	"github.com/Hausk/eclipse/internal/gamedata"
	"github.com/Hausk/eclipse/internal/telemetry"
	"github.com/Hausk/eclipse/internal/world"
)

// Engine owns the exploration state and the single active combat session.
// It is not safe for concurrent use; one loop goroutine drives it.
type Engine struct {
	cfg       Config
	field     world.Field
	player    *entity.Player
	registry  *encounter.Registry
	trigger   *encounter.Trigger
	scheduler *Scheduler
	resolver  *combat.Resolver
	publisher event.Publisher
	session   *Session
	state     State
}

type engineOptions struct {
	rng       *rand.Rand
	roller    combat.Roller
	policy    combat.Policy
	publisher event.Publisher
	enemies   *gamedata.EnemyRegistry
	player    *gamedata.PlayerDef
}

// Option customises an Engine.
type Option func(*engineOptions)

// WithRand sets the random source used for spawning and, unless WithRoller
// is given, for combat rolls.
func WithRand(rng *rand.Rand) Option {
	return func(o *engineOptions) { o.rng = rng }
}

// WithRoller sets the random source used for combat rolls.
func WithRoller(roller combat.Roller) Option {
	return func(o *engineOptions) { o.roller = roller }
}

// WithPolicy overrides the combat balancing rules.
func WithPolicy(policy combat.Policy) Option {
	return func(o *engineOptions) { o.policy = policy }
}

// WithPublisher sets where domain events go.
func WithPublisher(p event.Publisher) Option {
	return func(o *engineOptions) { o.publisher = p }
}

// WithEnemies overrides the enemy definitions used for spawning.
func WithEnemies(r *gamedata.EnemyRegistry) Option {
	return func(o *engineOptions) { o.enemies = r }
}

// WithPlayerDef overrides the starting player definition.
func WithPlayerDef(def *gamedata.PlayerDef) Option {
	return func(o *engineOptions) { o.player = def }
}

// NewEngine creates an engine in exploration mode. Call Init to spawn the world.
func NewEngine(cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := engineOptions{
		policy:    combat.DefaultPolicy(),
		publisher: event.NopPublisher(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(cfg.ResolveSeed()))
	}
	if o.roller == nil {
		o.roller = o.rng
	}
	if o.publisher == nil {
		o.publisher = event.NopPublisher()
	}
	if o.enemies == nil {
		enemies, err := gamedata.LoadEnemyRegistry()
		if err != nil {
			return nil, fmt.Errorf("load enemies: %w", err)
		}
		o.enemies = enemies
	}
	if o.player == nil {
		def, err := gamedata.LoadPlayer()
		if err != nil {
			return nil, fmt.Errorf("load player: %w", err)
		}
		o.player = def
	}

	e := &Engine{
		cfg:       cfg,
		field:     cfg.Field(),
		player:    entity.NewPlayer(o.player),
		registry:  encounter.NewRegistry(o.enemies, o.rng, cfg.TriggerRadius),
		scheduler: NewScheduler(),
		resolver:  combat.NewResolver(o.policy, o.roller),
		publisher: o.publisher,
		state:     StateExplore,
	}
	e.trigger = encounter.NewTrigger(e.registry, e, o.publisher)
	return e, nil
}

// Init spawns the initial roaming entities.
func (e *Engine) Init(ctx context.Context) {
	e.registry.SpawnInitial(ctx, e.cfg.EntityCount, e.cfg.BoundsRadius)
}

// Tick advances one exploration frame: due turn callbacks run first, then,
// outside combat, the player moves along move and the proximity trigger runs.
func (e *Engine) Tick(ctx context.Context, dt time.Duration, move world.Vec3) {
	e.scheduler.Advance(dt)

	if e.IsInCombat() {
		return
	}

	e.player.Move(move, e.field)
	e.trigger.Check(ctx, e.player.Position)
}

// StartEncounter opens a combat session against ent. It returns false if a
// session is already active. The roam set is left alone: the trigger
// removes the entity once the session exists.
func (e *Engine) StartEncounter(ctx context.Context, ent *entity.RoamingEntity) bool {
	if e.session != nil || ent == nil {
		return false
	}

	e.session = newSession(ctx, ent, e.player, sessionDeps{
		resolver:    e.resolver,
		scheduler:   e.scheduler,
		publisher:   e.publisher,
		turnDelay:   e.cfg.TurnDelay,
		settleDelay: e.cfg.SettleDelay,
		logCapacity: e.cfg.LogCapacity,
		onSettled:   e.settled,
	})
	e.state = StateCombat
	return true
}

// SubmitPlayerAction forwards a player action to the active session. Without
// a session, or outside the player's turn, it does nothing and returns false.
func (e *Engine) SubmitPlayerAction(ctx context.Context, action Action) bool {
	if e.session == nil {
		return false
	}
	return e.session.Submit(ctx, action)
}

// EndCombat tears down the active session immediately. Safe to call repeatedly.
func (e *Engine) EndCombat(ctx context.Context) {
	if e.session == nil {
		return
	}
	e.teardown(ctx, "forced")
}

func (e *Engine) settled(ctx context.Context, s *Session) {
	if e.session != s {
		return
	}
	e.teardown(ctx, "settled")
}

func (e *Engine) teardown(ctx context.Context, reason string) {
	s := e.session
	// A forced end may come before the settle step.
	s.revive()
	s.close()
	e.session = nil
	e.state = StateExplore

	ctx, span := telemetry.Tracer("combat").Start(ctx, "combat.reset")
	span.SetAttributes(
		attribute.String("session.id", s.id),
		attribute.String("reason", reason),
		attribute.String("outcome", s.outcome.String()),
	)
	span.End()

	e.publisher.Publish(ctx, event.Event{
		Type:      event.TypeCombatReset,
		Time:      time.Now(),
		SessionID: s.id,
		Message:   reason,
	})
}

// IsInCombat reports whether a session is active.
func (e *Engine) IsInCombat() bool {
	return e.session != nil
}

// State returns the engine mode.
func (e *Engine) State() State {
	return e.state
}

// Session returns the active session, or nil.
func (e *Engine) Session() *Session {
	return e.session
}

// CurrentEnemy returns the active session's enemy.
func (e *Engine) CurrentEnemy() (EnemyView, bool) {
	if e.session == nil {
		return EnemyView{}, false
	}
	return e.session.Enemy(), true
}

// TurnOwner returns who may act in the active session.
func (e *Engine) TurnOwner() (entity.Role, bool) {
	if e.session == nil {
		return entity.RolePlayer, false
	}
	return e.session.TurnOwner(), true
}

// Log returns the active session's combat log, or nil.
func (e *Engine) Log() []string {
	if e.session == nil {
		return nil
	}
	return e.session.Log()
}

// PlayerStats returns a snapshot of the player's stats.
func (e *Engine) PlayerStats() entity.StatBlock {
	return e.player.Stats
}

// PlayerPosition returns the player's world position.
func (e *Engine) PlayerPosition() world.Vec3 {
	return e.player.Position
}

// PlayerSymbol returns the player's display glyph.
func (e *Engine) PlayerSymbol() rune {
	return e.player.Symbol
}

// PlayerColor returns the player's display colour.
func (e *Engine) PlayerColor() tcell.Color {
	return e.player.Color
}

// Entities returns the roaming entities in spawn order.
func (e *Engine) Entities() []*entity.RoamingEntity {
	return e.registry.Entities()
}

// Nearby returns the roaming entities within radius of the player, closest first.
func (e *Engine) Nearby(radius float64) []encounter.Sighting {
	return e.registry.Nearby(e.player.Position, radius)
}

// Field returns the exploration field.
func (e *Engine) Field() world.Field {
	return e.field
}

// Config returns the engine configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

var _ encounter.Starter = (*Engine)(nil)
