package app

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"go-waypoint-defense/internal/component"
	"go-waypoint-defense/internal/config"
	"go-waypoint-defense/internal/event"
	"go-waypoint-defense/internal/input"
	"go-waypoint-defense/internal/system"
	"go-waypoint-defense/internal/types"
	"go-waypoint-defense/pkg/geom"

	"github.com/google/uuid"
)

const frame = 1.0 / 60

// newTestGame builds a game on the embedded level and archetypes with a fixed seed.
func newTestGame(t *testing.T, tune func(*config.Rules)) *Game {
	t.Helper()
	res, err := LoadResources(Sources{})
	if err != nil {
		t.Fatalf("LoadResources: %v", err)
	}
	res.Rules.Seed = 1
	if tune != nil {
		tune(&res.Rules)
	}
	g, err := NewGameFrom(res)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return g
}

// record collects the types of dispatched events in order.
func record(g *Game, kinds ...event.EventType) *[]event.Event {
	var got []event.Event
	for _, et := range kinds {
		g.EventDispatcher.Subscribe(et, event.ListenerFunc(func(e event.Event) {
			got = append(got, e)
		}))
	}
	return &got
}

func count(events []event.Event, et event.EventType) int {
	n := 0
	for _, e := range events {
		if e.Type == et {
			n++
		}
	}
	return n
}

func addEnemy(g *Game, at geom.Vec2, waypoint, health, reward, contact int) types.EntityID {
	ecs := g.ECS
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: at.X, Y: at.Y}
	ecs.Velocities[id] = &component.Velocity{Speed: 0}
	ecs.PathFollowers[id] = &component.PathFollower{WaypointIndex: waypoint}
	ecs.Healths[id] = component.NewHealth(health)
	ecs.Colliders[id] = &component.Collider{Width: 32, Height: 32}
	ecs.Enemies[id] = &component.Enemy{DefID: "grunt", ContactDamage: contact, KillReward: reward}
	return id
}

func addProjectile(g *Game, at geom.Vec2, damage int) types.EntityID {
	ecs := g.ECS
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: at.X, Y: at.Y}
	ecs.Projectiles[id] = &component.Projectile{Origin: at, Direction: geom.V(1, 0), Damage: damage, Lifetime: 5}
	ecs.Colliders[id] = &component.Collider{Width: 24, Height: 4}
	return id
}

func TestNewGameRejectsIncompleteInput(t *testing.T) {
	res, err := LoadResources(Sources{})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := NewGame(nil, res.Library, res.Rules); !errors.Is(err, ErrMissingLevel) {
		t.Errorf("Expected ErrMissingLevel, got %v", err)
	}
	if _, err := NewGame(res.Level, nil, res.Rules); !errors.Is(err, ErrMissingLibrary) {
		t.Errorf("Expected ErrMissingLibrary, got %v", err)
	}
	bad := res.Rules
	bad.BaseHealth = 0
	if _, err := NewGame(res.Level, res.Library, bad); err == nil {
		t.Error("Expected an error for invalid rules")
	}
}

func TestNewGameInitialState(t *testing.T) {
	g := newTestGame(t, nil)

	if _, err := uuid.Parse(g.SessionID); err != nil {
		t.Errorf("SessionID %q is not a UUID: %v", g.SessionID, err)
	}
	st := g.Status()
	if st.Coins != 150 || st.BaseHealth != 20 || st.Round != 0 || !st.RoundCompleted {
		t.Errorf("Unexpected initial status: %+v", st)
	}
	if st.GameOver || g.GetGameTime() != 0 {
		t.Error("Fresh game must not be over")
	}
}

func TestTickClampsDeltaTime(t *testing.T) {
	g := newTestGame(t, nil)

	g.Tick(1.0, input.State{})
	if got := g.GetGameTime(); math.Abs(got-config.MaxDeltaTime) > 1e-12 {
		t.Errorf("Expected game time %.2f after a long frame, got %f", config.MaxDeltaTime, got)
	}
	g.Tick(-1, input.State{})
	if got := g.GetGameTime(); math.Abs(got-config.MaxDeltaTime) > 1e-12 {
		t.Errorf("Negative dt must not move time, got %f", got)
	}
}

// Враг на последней точке маршрута и смертельный снаряд на нём же:
// утечка обнаруживается раньше попадания и побеждает.
func TestLeakWinsOverSameTickKill(t *testing.T) {
	g := newTestGame(t, nil)
	events := record(g, event.EnemyKilled, event.EnemyLeaked)

	end := g.Level.Path.Point(g.Level.Path.LastIndex())
	enemy := addEnemy(g, end, g.Level.Path.LastIndex(), 10, 7, 2)
	proj := addProjectile(g, end, 50)

	g.Tick(frame, input.State{})

	if g.ECS.Exists(enemy) {
		t.Fatal("Expected the enemy removed")
	}
	if n := count(*events, event.EnemyLeaked); n != 1 {
		t.Errorf("Expected one leak, got %d", n)
	}
	if n := count(*events, event.EnemyKilled); n != 0 {
		t.Errorf("Expected no kill, got %d", n)
	}
	if got := g.BaseHealth.Current; got != 18 {
		t.Errorf("Expected base health 18, got %d", got)
	}
	if got := g.Economy.Balance(); got != 150 {
		t.Errorf("Expected no reward for a leak, got balance %d", got)
	}
	if got := g.WaveSystem.Wave().EnemiesKilled; got != 1 {
		t.Errorf("Expected exactly one resolution, got %d", got)
	}
	if p := g.ECS.Projectiles[proj]; p == nil || p.Consumed {
		t.Error("Projectile must not be spent on a leaked enemy")
	}
}

func TestKillCreditsRewardOnce(t *testing.T) {
	g := newTestGame(t, nil)
	events := record(g, event.EnemyKilled)

	at := geom.V(150, 160)
	enemy := addEnemy(g, at, 1, 10, 7, 1)
	proj := addProjectile(g, at, 50)

	g.Tick(frame, input.State{})

	if g.ECS.Exists(enemy) || g.ECS.Exists(proj) {
		t.Fatal("Expected enemy and projectile removed")
	}
	if got := g.Economy.Balance(); got != 157 {
		t.Errorf("Expected balance 157, got %d", got)
	}
	if len(*events) != 1 {
		t.Fatalf("Expected one kill event, got %d", len(*events))
	}
	if p := (*events)[0].Data.(event.EntityPayload); p.ID != enemy || p.Amount != 7 {
		t.Errorf("Unexpected kill payload %+v", p)
	}

	snap := g.Snapshot()
	if len(snap.Entities) != 0 {
		t.Errorf("Expected empty world, got %d views", len(snap.Entities))
	}
	if len(snap.Despawned) != 2 {
		t.Errorf("Expected two despawned ids, got %v", snap.Despawned)
	}
}

func TestNonLethalHitPaysHitReward(t *testing.T) {
	g := newTestGame(t, nil)
	at := geom.V(150, 160)
	enemy := addEnemy(g, at, 1, 100, 7, 1)
	addProjectile(g, at, 20)

	g.Tick(frame, input.State{})

	if got := g.Economy.Balance(); got != 151 {
		t.Errorf("Expected balance 151, got %d", got)
	}
	snap := g.Snapshot()
	if len(snap.Entities) != 1 || snap.Entities[0].ID != enemy {
		t.Fatalf("Expected only the enemy in the snapshot, got %+v", snap.Entities)
	}
	if r := snap.Entities[0].HealthRatio; math.Abs(r-0.8) > 1e-9 {
		t.Errorf("Expected health ratio 0.8, got %f", r)
	}
}

func TestPlaceTowerFlow(t *testing.T) {
	g := newTestGame(t, nil)
	events := record(g, event.TowerPlaced)
	spot := geom.V(240, 240)

	g.Tick(frame, input.PointerAt(spot))
	id, err := g.PlaceTower("basic")
	if err != nil {
		t.Fatalf("PlaceTower: %v", err)
	}
	if st := g.Status(); st.Pending != "basic" || st.Coins != 150 {
		t.Errorf("Expected unpaid pending basic, got %+v", st)
	}

	g.Tick(frame, input.Click(spot))

	if st := g.Status(); st.Pending != "" || st.Coins != 100 {
		t.Errorf("Expected placed tower and balance 100, got %+v", st)
	}
	if got := g.ECS.Towers[id].State; got != component.TowerActive {
		t.Errorf("Expected active tower, got %v", got)
	}
	if len(*events) != 1 {
		t.Errorf("Expected one TowerPlaced, got %d", len(*events))
	}

	// выбор и улучшение
	g.Tick(frame, input.Click(spot))
	if st := g.Status(); st.Selected == nil || st.Selected.ID != id || !st.Selected.CanUpgrade {
		t.Fatalf("Expected tower %d selected, got %+v", id, st.Selected)
	}
	if err := g.UpgradeSelected(); err != nil {
		t.Fatalf("UpgradeSelected: %v", err)
	}
	if st := g.Status(); st.Coins != 60 || st.Selected.Level != 2 {
		t.Errorf("Expected level 2 and balance 60, got %+v", st)
	}
}

func TestPlaceTowerInsideZoneStaysPending(t *testing.T) {
	g := newTestGame(t, nil)
	road := geom.V(100, 160)

	g.Tick(frame, input.PointerAt(road))
	id, err := g.PlaceTower("basic")
	if err != nil {
		t.Fatal(err)
	}
	g.Tick(frame, input.Click(road))

	if got := g.ECS.Towers[id].State; got != component.TowerPending {
		t.Errorf("Expected tower still pending on the road, got %v", got)
	}
	if g.Economy.Balance() != 150 {
		t.Error("Blocked placement must not charge")
	}

	g.Tick(frame, input.RightClick(road))
	if g.ECS.Exists(id) {
		t.Error("Expected right click to cancel the placement")
	}
}

func TestStartNewRound(t *testing.T) {
	g := newTestGame(t, nil)
	events := record(g, event.RoundStarted)

	if err := g.StartNewRound(); err != nil {
		t.Fatalf("StartNewRound: %v", err)
	}
	if err := g.StartNewRound(); !errors.Is(err, system.ErrRoundInProgress) {
		t.Errorf("Expected ErrRoundInProgress, got %v", err)
	}
	if st := g.Status(); st.Round != 1 || st.TotalEnemies != 5 || st.RoundCompleted {
		t.Errorf("Unexpected round state %+v", st)
	}
	if len(*events) != 1 {
		t.Errorf("Expected one RoundStarted, got %d", len(*events))
	}
}

func TestAutoAdvanceStartsRoundFromTick(t *testing.T) {
	g := newTestGame(t, func(r *config.Rules) { r.AutoAdvance = true })

	g.Tick(frame, input.State{})

	if st := g.Status(); st.Round != 1 || st.RoundCompleted {
		t.Errorf("Expected round 1 running after one tick, got %+v", st)
	}
}

func TestBaseDestroyedEndsGame(t *testing.T) {
	g := newTestGame(t, nil)
	events := record(g, event.BaseDestroyed)

	end := g.Level.Path.Point(g.Level.Path.LastIndex())
	addEnemy(g, end, g.Level.Path.LastIndex(), 10, 5, 25)
	g.Tick(frame, input.State{})

	if !g.IsGameOver() || !g.Status().GameOver {
		t.Fatal("Expected game over")
	}
	if len(*events) != 1 {
		t.Errorf("Expected one BaseDestroyed, got %d", len(*events))
	}

	tm := g.GetGameTime()
	g.Tick(frame, input.State{})
	if g.GetGameTime() != tm {
		t.Error("Tick must be a no-op after game over")
	}
	if err := g.StartNewRound(); !errors.Is(err, ErrGameOver) {
		t.Errorf("StartNewRound: expected ErrGameOver, got %v", err)
	}
	if _, err := g.PlaceTower("basic"); !errors.Is(err, ErrGameOver) {
		t.Errorf("PlaceTower: expected ErrGameOver, got %v", err)
	}
	if err := g.UpgradeSelected(); !errors.Is(err, ErrGameOver) {
		t.Errorf("UpgradeSelected: expected ErrGameOver, got %v", err)
	}
}

func TestSnapshotIsOrderedByID(t *testing.T) {
	g := newTestGame(t, nil)
	addProjectile(g, geom.V(500, 600), 1)
	addEnemy(g, geom.V(150, 160), 1, 10, 1, 1)
	g.Tick(frame, input.PointerAt(geom.V(240, 240)))
	if _, err := g.PlaceTower("basic"); err != nil {
		t.Fatal(err)
	}

	snap := g.Snapshot()
	if len(snap.Entities) != 3 {
		t.Fatalf("Expected 3 views, got %d", len(snap.Entities))
	}
	wantKinds := []EntityKind{KindProjectile, KindEnemy, KindTower}
	for i, v := range snap.Entities {
		if i > 0 && snap.Entities[i-1].ID >= v.ID {
			t.Errorf("Views not ascending at %d: %d then %d", i, snap.Entities[i-1].ID, v.ID)
		}
		if v.Kind != wantKinds[i] {
			t.Errorf("View %d: expected %v, got %v", i, wantKinds[i], v.Kind)
		}
	}
	if tower := snap.Entities[2]; !tower.Pending || !tower.ShowRange || tower.Range != 150 {
		t.Errorf("Unexpected pending tower view %+v", tower)
	}
}

// Полный цикл на встроенном уровне: инварианты держатся на каждом тике.
func TestFullLoopInvariants(t *testing.T) {
	g := newTestGame(t, func(r *config.Rules) { r.AutoAdvance = true })
	for _, spot := range []geom.Vec2{geom.V(240, 240), geom.V(380, 390)} {
		g.Tick(frame, input.PointerAt(spot))
		if _, err := g.PlaceTower("basic"); err != nil {
			t.Fatalf("PlaceTower at %v: %v", spot, err)
		}
		g.Tick(frame, input.Click(spot))
	}
	if g.Economy.Balance() != 50 {
		t.Fatalf("Expected balance 50 after two towers, got %d", g.Economy.Balance())
	}

	kills := 0
	g.EventDispatcher.Subscribe(event.EnemyKilled, event.ListenerFunc(func(event.Event) { kills++ }))

	for i := 0; i < 60*90 && !g.IsGameOver(); i++ {
		g.Tick(frame, input.State{})

		w := g.WaveSystem.Wave()
		if g.Economy.Balance() < 0 {
			t.Fatalf("tick %d: negative balance %d", i, g.Economy.Balance())
		}
		if w.EnemiesKilled > w.EnemiesSpawned || w.EnemiesSpawned > w.TotalEnemies {
			t.Fatalf("tick %d: killed %d spawned %d total %d", i, w.EnemiesKilled, w.EnemiesSpawned, w.TotalEnemies)
		}
		if g.BaseHealth.Current > g.BaseHealth.Max {
			t.Fatalf("tick %d: base health above max", i)
		}
		for _, id := range g.ECS.TowerIDs() {
			if g.ECS.Towers[id].State == component.TowerRemoved {
				t.Fatalf("tick %d: removed tower %d still in the world", i, id)
			}
		}
		for _, id := range g.ECS.ProjectileIDs() {
			p := g.ECS.Projectiles[id]
			if p.Consumed || p.Age.Elapsed > p.Lifetime+frame {
				t.Fatalf("tick %d: stale projectile %d", i, id)
			}
		}
	}

	if g.Status().Round < 2 {
		t.Errorf("Expected at least two rounds in 90s, got %d", g.Status().Round)
	}
	if kills == 0 {
		t.Error("Expected the towers to kill something")
	}
}

func TestLoadResources(t *testing.T) {
	res, err := LoadResources(Sources{})
	if err != nil {
		t.Fatalf("LoadResources: %v", err)
	}
	if res.Level.Name != "Switchback" || len(res.Library.TowerOrder) != 3 {
		t.Errorf("Unexpected defaults: level %q, towers %v", res.Level.Name, res.Library.TowerOrder)
	}

	if _, err := LoadResources(Sources{EnemiesPath: "enemies.yaml"}); err == nil {
		t.Error("Expected an error when only the enemies file is given")
	}

	path := filepath.Join(t.TempDir(), "rules.yaml")
	if err := os.WriteFile(path, []byte("startingCoins: 300\nwaves:\n  initialEnemies: 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	res, err = LoadResources(Sources{RulesPath: path})
	if err != nil {
		t.Fatalf("LoadResources with rules: %v", err)
	}
	if res.Rules.StartingCoins != 300 || res.Rules.Waves.InitialEnemies != 4 || res.Rules.BaseHealth != 20 {
		t.Errorf("Unexpected overlay: %+v", res.Rules)
	}
}
