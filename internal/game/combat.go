package game

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/Hausk/eclipse/internal/combat"
	"github.com/Hausk/eclipse/internal/entity"
	"github.com/Hausk/eclipse/internal/event"
	"github.com/Hausk/eclipse/internal/telemetry"
	"github.com/Hausk/eclipse/internal/world"
)

// CombatPhase represents the current phase of a combat session.
type CombatPhase int

const (
	// PhasePlayerTurn - waiting for the player to pick an action
	PhasePlayerTurn CombatPhase = iota
	// PhaseResolvingPlayerAction - player acted, enemy reply pending
	PhaseResolvingPlayerAction
	// PhaseResolvingEnemyAction - enemy is acting
	PhaseResolvingEnemyAction
	// PhaseEnded - session finished, waiting for teardown
	PhaseEnded
)

// String returns a human-readable phase name.
func (p CombatPhase) String() string {
	switch p {
	case PhasePlayerTurn:
		return "player_turn"
	case PhaseResolvingPlayerAction:
		return "resolving_player_action"
	case PhaseResolvingEnemyAction:
		return "resolving_enemy_action"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Outcome is how a session ended.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeVictory
	OutcomeDefeat
	OutcomeFled
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeVictory:
		return "victory"
	case OutcomeDefeat:
		return "defeat"
	case OutcomeFled:
		return "fled"
	default:
		return "unknown"
	}
}

// Action is a player intent.
type Action int

const (
	ActionAttack Action = iota
	ActionDefend
	ActionFlee
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case ActionAttack:
		return "attack"
	case ActionDefend:
		return "defend"
	case ActionFlee:
		return "flee"
	default:
		return "unknown"
	}
}

// EnemyView is a read-only snapshot of the session's enemy.
type EnemyView struct {
	ID       string
	Stats    entity.StatBlock
	Position world.Vec3
}

// sessionDeps are the collaborators a session borrows from its engine.
type sessionDeps struct {
	resolver    *combat.Resolver
	scheduler   *Scheduler
	publisher   event.Publisher
	turnDelay   time.Duration
	settleDelay time.Duration
	logCapacity int
	onSettled   func(ctx context.Context, s *Session)
}

// Session is the turn-based state machine for one player-vs-enemy encounter.
// All methods must be called from the goroutine that owns the engine.
type Session struct {
	id        string
	source    *entity.RoamingEntity
	enemy     *entity.Combatant
	player    *entity.Combatant
	turnOwner entity.Role
	defending bool
	log       *Log
	phase     CombatPhase
	outcome   Outcome
	turnCount int
	alive     bool
	deps      sessionDeps
}

// newSession starts combat between the player and a consumed roaming entity.
func newSession(ctx context.Context, source *entity.RoamingEntity, player *entity.Player, deps sessionDeps) *Session {
	if source == nil {
		panic("game: combat session requires an enemy")
	}

	s := &Session{
		id:        uuid.NewString(),
		source:    source,
		enemy:     entity.NewCombatant(entity.RoleEnemy, source.ID, &source.Stats),
		player:    entity.NewCombatant(entity.RolePlayer, entity.PlayerID, &player.Stats),
		turnOwner: entity.RolePlayer,
		log:       NewLog(deps.logCapacity),
		phase:     PhasePlayerTurn,
		alive:     true,
		deps:      deps,
	}

	_, span := telemetry.Tracer("combat").Start(ctx, "combat.start")
	span.SetAttributes(
		attribute.String("session.id", s.id),
		attribute.String("enemy.id", source.ID),
		attribute.String("enemy.name", source.Stats.Name),
		attribute.Int("enemy.hp", source.Stats.HP),
		attribute.Int("player.hp", player.Stats.HP),
	)
	span.End()

	s.addLog(ctx, fmt.Sprintf("Combat against %s!", source.Stats.Name))
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Phase returns the current phase.
func (s *Session) Phase() CombatPhase { return s.phase }

// Outcome returns how the session ended, or OutcomeNone while it runs.
func (s *Session) Outcome() Outcome { return s.outcome }

// TurnOwner returns which side may act next.
func (s *Session) TurnOwner() entity.Role { return s.turnOwner }

// IsDefending reports whether the player is bracing against the next enemy attack.
func (s *Session) IsDefending() bool { return s.defending }

// TurnCount returns the number of resolved actions, both sides included.
func (s *Session) TurnCount() int { return s.turnCount }

// Enemy returns a snapshot of the enemy.
func (s *Session) Enemy() EnemyView {
	return EnemyView{ID: s.enemy.ID, Stats: *s.enemy.Stats, Position: s.source.Position}
}

// Player returns a snapshot of the player's stats.
func (s *Session) Player() entity.StatBlock { return *s.player.Stats }

// Log returns the combat log, most recent last.
func (s *Session) Log() []string { return s.log.Entries() }

// IsPlayerTurn reports whether Submit would accept an action.
func (s *Session) IsPlayerTurn() bool {
	return s.alive && s.phase == PhasePlayerTurn && s.turnOwner == entity.RolePlayer &&
		s.player.IsAlive()
}

// Submit resolves a player action. It returns false, changing nothing, when
// it is not the player's turn or the action is unknown.
func (s *Session) Submit(ctx context.Context, action Action) bool {
	if !s.IsPlayerTurn() {
		return false
	}
	if action != ActionAttack && action != ActionDefend && action != ActionFlee {
		return false
	}

	ctx, span := telemetry.Tracer("combat").Start(ctx, "combat.turn")
	defer span.End()
	span.SetAttributes(
		attribute.String("session.id", s.id),
		attribute.String("actor", s.player.GetName()),
		attribute.String("action", action.String()),
		attribute.Int("turn", s.turnCount),
	)
	s.turnCount++

	switch action {
	case ActionAttack:
		hit := s.deps.resolver.Attack(s.player, s.enemy, false)
		s.addLog(ctx, describePlayerHit(hit))
		span.SetAttributes(
			attribute.Int("damage", hit.Applied),
			attribute.Bool("critical", hit.Critical),
		)
	case ActionDefend:
		s.defending = true
		s.addLog(ctx, "You brace yourself to defend!")
	case ActionFlee:
		if s.deps.resolver.RollFlee() {
			span.SetAttributes(attribute.Bool("fled", true))
			s.end(ctx, OutcomeFled)
			return true
		}
		span.SetAttributes(attribute.Bool("fled", false))
		s.addLog(ctx, "Escape failed!")
	}

	s.phase = PhaseResolvingPlayerAction
	s.turnOwner = entity.RoleEnemy

	if !s.enemy.IsAlive() {
		s.end(ctx, OutcomeVictory)
		return true
	}

	s.schedule(ctx, s.deps.turnDelay, s.enemyTurn)
	return true
}

// enemyTurn resolves the enemy's reply to the player's action.
func (s *Session) enemyTurn(ctx context.Context) {
	if s.phase != PhaseResolvingPlayerAction {
		return
	}
	s.phase = PhaseResolvingEnemyAction

	ctx, span := telemetry.Tracer("combat").Start(ctx, "combat.turn")
	defer span.End()

	hit := s.deps.resolver.Attack(s.enemy, s.player, s.defending)
	s.turnCount++
	s.defending = false
	s.addLog(ctx, describeEnemyHit(s.enemy.GetName(), hit))

	span.SetAttributes(
		attribute.String("session.id", s.id),
		attribute.String("actor", s.enemy.GetName()),
		attribute.String("action", ActionAttack.String()),
		attribute.Int("damage", hit.Applied),
		attribute.Bool("critical", hit.Critical),
		attribute.Bool("defended", hit.Defending),
	)

	if !s.player.IsAlive() {
		s.end(ctx, OutcomeDefeat)
		return
	}

	s.phase = PhasePlayerTurn
	s.turnOwner = entity.RolePlayer
}

// end moves the session to PhaseEnded and queues the settle step.
func (s *Session) end(ctx context.Context, outcome Outcome) {
	if s.phase == PhaseEnded {
		return
	}
	s.phase = PhaseEnded
	s.outcome = outcome

	var closing string
	switch outcome {
	case OutcomeVictory:
		closing = "Victory!"
	case OutcomeDefeat:
		closing = "Defeat..."
	case OutcomeFled:
		closing = "You fled the battle!"
	}
	s.addLog(ctx, closing)

	_, span := telemetry.Tracer("combat").Start(ctx, "combat.end")
	span.SetAttributes(
		attribute.String("session.id", s.id),
		attribute.String("outcome", outcome.String()),
		attribute.Int("turns_taken", s.turnCount),
		attribute.Int("player_hp_remaining", s.player.GetHP()),
		attribute.Int("enemy_hp_remaining", s.enemy.GetHP()),
	)
	span.End()

	s.deps.publisher.Publish(ctx, event.Event{
		Type:      event.TypeCombatEnded,
		Time:      time.Now(),
		SessionID: s.id,
		Message:   closing,
		Payload: event.CombatEnded{
			Outcome:  outcome.String(),
			Turns:    s.turnCount,
			PlayerHP: s.player.GetHP(),
			EnemyHP:  s.enemy.GetHP(),
		},
	})

	s.schedule(ctx, s.deps.settleDelay, s.settle)
}

// settle runs after the settle delay. A defeated player is revived so that
// exploration can continue.
func (s *Session) settle(ctx context.Context) {
	s.revive()
	if s.deps.onSettled != nil {
		s.deps.onSettled(ctx, s)
	}
}

// revive restores the player after a defeat. Safe to call more than once.
func (s *Session) revive() {
	if s.outcome == OutcomeDefeat {
		s.player.Stats.Restore()
	}
}

// close marks the session dead; pending callbacks become no-ops.
func (s *Session) close() {
	s.alive = false
}

// schedule queues fn on the scheduler behind the liveness guard.
func (s *Session) schedule(ctx context.Context, delay time.Duration, fn func(context.Context)) {
	ctx = context.WithoutCancel(ctx)
	s.deps.scheduler.After(delay, func() {
		if !s.alive {
			return
		}
		fn(ctx)
	})
}

func (s *Session) addLog(ctx context.Context, msg string) {
	s.log.Append(msg)
	s.deps.publisher.Publish(ctx, event.Event{
		Type:      event.TypeCombatLog,
		Time:      time.Now(),
		SessionID: s.id,
		Message:   msg,
	})
}

func describePlayerHit(hit combat.Hit) string {
	if hit.Critical {
		return fmt.Sprintf("Critical hit! You deal %d damage!", hit.Applied)
	}
	return fmt.Sprintf("You deal %d damage!", hit.Applied)
}

func describeEnemyHit(name string, hit combat.Hit) string {
	if hit.Critical {
		return fmt.Sprintf("Critical hit! %s deals %d damage to you!", name, hit.Applied)
	}
	return fmt.Sprintf("%s deals %d damage to you!", name, hit.Applied)
}
