package entity

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/vovakirdan/space-garden/internal/config"
	"github.com/vovakirdan/space-garden/internal/core"
	"github.com/vovakirdan/space-garden/internal/garden/collision"
)

// scriptedRand returns queued values; IntN answers are taken modulo n.
type scriptedRand struct {
	floats []float64
	ints   []int
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.999
	}
	f := r.floats[0]
	r.floats = r.floats[1:]
	return f
}

func (r *scriptedRand) IntN(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	i := r.ints[0]
	r.ints = r.ints[1:]
	return i % n
}

func testConfig() config.GardenConfig {
	return config.DefaultGardenConfig()
}

func TestGardenerMove(t *testing.T) {
	cfg := testConfig().Gardener
	g := NewGardener(1, core.C(100, 100), cfg)

	tests := []struct {
		name     string
		dirs     []Direction
		expected core.Coord
		moving   bool
	}{
		{"none", nil, core.C(100, 100), false},
		{"right", []Direction{DirRight}, core.C(104, 100), true},
		{"up", []Direction{DirUp}, core.C(100, 96), true},
		{"diagonal", []Direction{DirUp, DirLeft}, core.C(97, 97), true},
		{"opposing", []Direction{DirLeft, DirRight}, core.C(100, 100), false},
		{"three held", []Direction{DirUp, DirLeft, DirRight}, core.C(100, 96), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.Move(tt.dirs, cfg)
			if got.Pos != tt.expected {
				t.Errorf("Move(%v).Pos = %v, expected %v", tt.dirs, got.Pos, tt.expected)
			}
			if got.Moving != tt.moving {
				t.Errorf("Move(%v).Moving = %v, expected %v", tt.dirs, got.Moving, tt.moving)
			}
		})
	}

	if g.Move([]Direction{DirLeft}, cfg).Facing != DirLeft {
		t.Error("moving left should face left")
	}
	if g.Pos != core.C(100, 100) {
		t.Error("Move() must not modify the receiver")
	}
}

func TestGardenerCollisionRectIsFoot(t *testing.T) {
	g := NewGardener(1, core.C(16, 0), testConfig().Gardener)
	r := g.CollisionRect()
	want := core.RectAt(core.C(16, 16), 16, 16)
	if r != want {
		t.Errorf("CollisionRect() = %v, expected %v", r, want)
	}
}

func TestGardenerDieKeepsFirstRecord(t *testing.T) {
	g := NewGardener(1, core.C(0, 0), testConfig().Gardener)
	g = g.Die(CauseVacuum, 10).Die(CauseAsphyxiation, 20)
	if g.Death.Cause != CauseVacuum || g.Death.Frame != 10 {
		t.Errorf("Death = %+v, expected vacuum at 10", *g.Death)
	}
}

func TestDirectionToward(t *testing.T) {
	tests := []struct {
		to       core.Coord
		expected Direction
	}{
		{core.C(10, 0), DirRight},
		{core.C(-10, 3), DirLeft},
		{core.C(2, -10), DirUp},
		{core.C(-2, 10), DirDown},
		{core.C(5, 5), DirRight},
	}
	for _, tt := range tests {
		if got := DirectionToward(core.C(0, 0), tt.to); got != tt.expected {
			t.Errorf("DirectionToward(0,0 -> %v) = %v, expected %v", tt.to, got, tt.expected)
		}
	}
}

func TestNPCSpeed(t *testing.T) {
	cfg := testConfig().NPC
	tests := []struct {
		mental   MentalState
		avoiding bool
		expected float64
	}{
		{MentalNormal, false, 2},
		{MentalNormal, true, 3},
		{MentalScared, true, 3},
		{MentalFrazzled, false, 5},
		{MentalFrazzled, true, 5},
	}
	for _, tt := range tests {
		n := NewNPC(1, core.C(0, 0), cfg, NPCOptions{Mental: tt.mental})
		if tt.avoiding {
			n = n.Avoid(cfg)
		}
		if got := n.Speed(cfg); got != tt.expected {
			t.Errorf("Speed(%v, avoiding=%v) = %v, expected %v", tt.mental, tt.avoiding, got, tt.expected)
		}
	}
}

func TestNPCMoveAndWrap(t *testing.T) {
	cfg := testConfig().NPC
	n := NewNPC(1, core.C(639, 10), cfg, NPCOptions{Facing: DirRight, Moving: true})
	got := n.Move(cfg)
	if got.Pos.X != 641 {
		t.Errorf("Move().Pos.X = %v, expected 641 before wrapping", got.Pos.X)
	}
	if x := got.Wrap(640, 352).Pos.X; x != 1 {
		t.Errorf("Wrap().Pos.X = %v, expected 1", x)
	}

	still := NewNPC(2, core.C(5, 5), cfg, NPCOptions{})
	if still.Move(cfg).Pos != still.Pos {
		t.Error("a standing NPC must not move")
	}
}

func TestNPCWrapUsesFeet(t *testing.T) {
	cfg := testConfig().NPC
	tests := []struct {
		pos      core.Coord
		expected core.Coord
	}{
		{core.C(160, -2), core.C(160, -2)},   // feet at y 14, still inside
		{core.C(160, -20), core.C(160, 332)}, // feet above the top edge
		{core.C(160, 340), core.C(160, -12)}, // feet below the bottom edge
		{core.C(-4, 100), core.C(636, 100)},  // left edge
	}
	for _, tt := range tests {
		n := NewNPC(1, tt.pos, cfg, NPCOptions{})
		got := n.Wrap(640, 352)
		if got.Pos != tt.expected {
			t.Errorf("Wrap(%v) = %v, expected %v", tt.pos, got.Pos, tt.expected)
		}
		r := got.CollisionRect()
		if r.A.Y < 0 || r.A.Y >= 352 || r.A.X < 0 || r.A.X >= 640 {
			t.Errorf("Wrap(%v) left feet at %v", tt.pos, r.A)
		}
	}
}

func TestNPCMentalTransitions(t *testing.T) {
	cfg := testConfig().NPC
	base := NewNPC(1, core.C(0, 0), cfg, NPCOptions{})

	t.Run("normal to scared on danger", func(t *testing.T) {
		got := base.TransitionMental(true, true, cfg, &scriptedRand{floats: []float64{0}})
		if got.Mental != MentalScared {
			t.Errorf("Mental = %v, expected scared", got.Mental)
		}
	})
	t.Run("cabin fever", func(t *testing.T) {
		got := base.TransitionMental(false, true, cfg, &scriptedRand{floats: []float64{0.0001}})
		if got.Mental != MentalFrazzled {
			t.Fatalf("Mental = %v, expected frazzled", got.Mental)
		}
		if got.SuicideCountdown != cfg.SuicidalDelay {
			t.Errorf("SuicideCountdown = %d, expected %d", got.SuicideCountdown, cfg.SuicidalDelay)
		}
	})
	t.Run("cabin fever disallowed", func(t *testing.T) {
		got := base.TransitionMental(false, false, cfg, &scriptedRand{floats: []float64{0}})
		if got.Mental != MentalNormal {
			t.Errorf("Mental = %v, expected normal", got.Mental)
		}
	})
	t.Run("scared calms down", func(t *testing.T) {
		scared := NewNPC(1, core.C(0, 0), cfg, NPCOptions{Mental: MentalScared})
		if got := scared.TransitionMental(false, false, cfg, &scriptedRand{}); got.Mental != MentalNormal {
			t.Errorf("Mental = %v, expected normal", got.Mental)
		}
	})
	t.Run("frazzled is sticky", func(t *testing.T) {
		fr := NewNPC(1, core.C(0, 0), cfg, NPCOptions{Mental: MentalFrazzled})
		if got := fr.TransitionMental(true, true, cfg, &scriptedRand{}); got.Mental != MentalFrazzled {
			t.Errorf("Mental = %v, expected frazzled", got.Mental)
		}
	})
}

func TestNPCUnknownMentalStatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("TransitionMental() with an unknown state should panic")
		}
	}()
	cfg := testConfig().NPC
	n := NewNPC(1, core.C(0, 0), cfg, NPCOptions{Mental: MentalState(9)})
	n.TransitionMental(false, false, cfg, &scriptedRand{})
}

func TestNPCChooseNewMovementTable(t *testing.T) {
	cfg := testConfig().NPC
	ctx := MoveContext{Gardener: core.C(500, 500), Button: core.C(500, 8)}

	normal := NewNPC(1, core.C(0, 0), cfg, NPCOptions{})
	// 4 directions + 4 stand-still slots for a normal NPC.
	if got := normal.ChooseNewMovement(ctx, cfg, &scriptedRand{ints: []int{2}}); !got.Moving || got.Facing != DirLeft {
		t.Errorf("slot 2 = (%v, moving=%v), expected left and moving", got.Facing, got.Moving)
	}
	got := normal.ChooseNewMovement(ctx, cfg, &scriptedRand{ints: []int{5, 10}})
	if got.Moving {
		t.Fatal("slot 5 should stand still")
	}
	if got.Countdown != 40 {
		t.Errorf("Countdown = %d, expected 30+10", got.Countdown)
	}

	// Avoiding: the gardener is down-right along x, so right is removed.
	avoid := NewNPC(1, core.C(0, 0), cfg, NPCOptions{}).Avoid(cfg)
	seen := map[Direction]bool{}
	for i := 0; i < 3; i++ {
		c := avoid.ChooseNewMovement(ctx, cfg, &scriptedRand{ints: []int{i}})
		seen[c.Facing] = true
	}
	if seen[DirRight] {
		t.Error("avoiding NPC should never pick the direction toward the gardener")
	}
	if len(seen) != 3 {
		t.Errorf("avoiding NPC picked %d distinct directions, expected 3", len(seen))
	}

	// Suicidal: button is straight up; table is [up, up, left, right, still, still].
	sui := NewNPC(1, core.C(500, 300), cfg, NPCOptions{Mental: MentalFrazzled})
	expected := []Direction{DirUp, DirUp, DirLeft, DirRight}
	for i, want := range expected {
		c := sui.ChooseNewMovement(ctx, cfg, &scriptedRand{ints: []int{i}})
		if c.Facing != want || !c.Moving {
			t.Errorf("suicidal slot %d = %v, expected %v", i, c.Facing, want)
		}
	}
	for _, i := range []int{4, 5} {
		if c := sui.ChooseNewMovement(ctx, cfg, &scriptedRand{ints: []int{i, 0}}); c.Moving {
			t.Errorf("suicidal slot %d should stand still", i)
		}
	}
}

func TestNPCConsiderForcedWhenFacingGardener(t *testing.T) {
	cfg := testConfig().NPC
	ctx := MoveContext{Gardener: core.C(200, 24)}
	n := NewNPC(1, core.C(0, 0), cfg, NPCOptions{Facing: DirRight, Moving: true}).Avoid(cfg)

	// A probability roll that would never trigger on its own.
	got := n.ConsiderNewMovement(ctx, cfg, &scriptedRand{floats: []float64{0.99}, ints: []int{0}})
	if got.Facing == DirRight {
		t.Error("avoiding NPC walking toward the gardener must turn")
	}
}

func TestNPCConsiderStationaryCountdown(t *testing.T) {
	cfg := testConfig().NPC
	n := NewNPC(1, core.C(0, 0), cfg, NPCOptions{Countdown: 2})
	rng := &scriptedRand{ints: []int{0}}
	n = n.ConsiderNewMovement(MoveContext{}, cfg, rng)
	n = n.ConsiderNewMovement(MoveContext{}, cfg, rng)
	if n.Moving || n.Countdown != 0 {
		t.Fatalf("after two ticks Moving=%v Countdown=%d, expected still at 0", n.Moving, n.Countdown)
	}
	n = n.ConsiderNewMovement(MoveContext{}, cfg, rng)
	if !n.Moving {
		t.Error("NPC should pick a movement once the countdown runs out")
	}
}

func TestNPCButtonContemplation(t *testing.T) {
	cfg := testConfig().NPC
	n := NewNPC(1, core.C(0, 0), cfg, NPCOptions{Mental: MentalFrazzled, Moving: true})

	n = n.UpdateButton(true, cfg)
	if !n.ReachedButton || n.ContemplateCountdown != cfg.ContemplateFrames {
		t.Fatalf("UpdateButton() = reached %v countdown %d", n.ReachedButton, n.ContemplateCountdown)
	}
	if n.Moving {
		t.Error("NPC should stop at the button")
	}
	for i := 0; i < cfg.ContemplateFrames-1; i++ {
		n = n.TickCountdowns(false)
		if n.ReadyToPush {
			t.Fatalf("ready after %d frames, expected %d", i+1, cfg.ContemplateFrames)
		}
	}
	n = n.TickCountdowns(false)
	if !n.ReadyToPush {
		t.Error("NPC should be ready to push after contemplating")
	}
	if !n.WantsToPush(true) || n.WantsToPush(false) {
		t.Error("WantsToPush() should require overlapping the button")
	}
	if n.Push().WantsToPush(true) {
		t.Error("an NPC pushes the button only once")
	}
}

func TestNPCNotSuicidalIgnoresButton(t *testing.T) {
	cfg := testConfig().NPC
	n := NewNPC(1, core.C(0, 0), cfg, NPCOptions{Mental: MentalFrazzled, SuicideCountdown: 5})
	if n.UpdateButton(true, cfg).ReachedButton {
		t.Error("frazzled NPC with a running suicide countdown should ignore the button")
	}
}

func TestNPCAvoidanceCountdown(t *testing.T) {
	cfg := testConfig().NPC
	n := NewNPC(1, core.C(0, 0), cfg, NPCOptions{}).Avoid(cfg)
	if got := n.TickCountdowns(true).AvoidanceCountdown; got != 150 {
		t.Errorf("startled AvoidanceCountdown = %d, expected 150", got)
	}
	if got := n.TickCountdowns(false).AvoidanceCountdown; got != 149 {
		t.Errorf("AvoidanceCountdown = %d, expected 149", got)
	}
}

func TestNPCSendOffScreen(t *testing.T) {
	cfg := testConfig()
	n := NewNPC(3, core.C(10, 10), cfg.NPC, NPCOptions{Moving: true}).SendOffScreen(99)
	if n.Active() || !n.Ejected {
		t.Error("ejected NPC should be inactive")
	}
	if n.Collider().Type != collision.TypeNone {
		t.Errorf("ejected collider type = %v, expected None", n.Collider().Type)
	}
	if n.Consumption(cfg.Oxygen) != 0 {
		t.Error("ejected NPC should not consume oxygen")
	}
	if n.Death == nil || n.Death.Cause != CauseVacuum {
		t.Error("ejected NPC should have a vacuum death record")
	}
}

func TestNPCColliderTypeByMood(t *testing.T) {
	cfg := testConfig().NPC
	tests := []struct {
		mental   MentalState
		expected collision.Type
	}{
		{MentalNormal, collision.TypeNPCNormal},
		{MentalScared, collision.TypeNPCNormal},
		{MentalFrazzled, collision.TypeNPCFrazzled},
	}
	for _, tt := range tests {
		n := NewNPC(1, core.C(0, 0), cfg, NPCOptions{Mental: tt.mental})
		if got := n.Collider().Type; got != tt.expected {
			t.Errorf("Collider().Type for %v = %v, expected %v", tt.mental, got, tt.expected)
		}
	}
}

func TestPlantLifecycle(t *testing.T) {
	cfg := testConfig().Plant
	p := NewPlant(1, core.C(0, 0), 16, 0, cfg)

	p = p.Water(cfg).Water(cfg).Water(cfg).Water(cfg)
	if p.Health != cfg.MaxHealth {
		t.Errorf("Health = %d, expected clamp at %d", p.Health, cfg.MaxHealth)
	}

	// A large frame jump applies each timer once.
	p = p.Tick(10000, cfg)
	if math.Abs(p.Size-(cfg.InitialSize+cfg.GrowthIncrement)) > 1e-9 {
		t.Errorf("Size = %v, expected one growth step", p.Size)
	}
	if p.Health != cfg.MaxHealth-1 {
		t.Errorf("Health = %d, expected one dehydration step", p.Health)
	}
}

func TestPlantWithersAtZeroHealth(t *testing.T) {
	cfg := testConfig().Plant
	p := NewPlant(1, core.C(0, 0), 16, 0, cfg)
	p.Health = 1
	p = p.Tick(uint64(cfg.DehydrationFrames), cfg)
	if p.Alive {
		t.Error("plant at zero health should wither")
	}
	if p.Water(cfg).Health != 0 {
		t.Error("watering a withered plant should do nothing")
	}
	if p.Oxygen(0.003) != 0 {
		t.Error("withered plant should produce no oxygen")
	}
	if p.Collider(cfg).Type != collision.TypeNone {
		t.Error("withered plant should not collide")
	}
}

func TestPlantFruitAndHarvest(t *testing.T) {
	cfg := testConfig().Plant
	cfg.DehydrationFrames = 1 << 30
	p := NewPlant(1, core.C(0, 0), 16, 0, cfg)
	p.Size = 1
	p.Health = cfg.MaxHealth

	frame := uint64(0)
	for i := 0; i < 20; i++ {
		frame += uint64(cfg.FruitGrowthFrames)
		p = p.Tick(frame, cfg)
	}
	if len(p.Fruits) != cfg.MaxFruits {
		t.Fatalf("len(Fruits) = %d, expected %d", len(p.Fruits), cfg.MaxFruits)
	}
	if p.RipeFruit(cfg) != cfg.MaxFruits {
		t.Errorf("RipeFruit() = %d, expected all ripe", p.RipeFruit(cfg))
	}

	before := p
	after, picked := p.Harvest(cfg)
	if picked != cfg.MaxFruits || len(after.Fruits) != 0 {
		t.Errorf("Harvest() = %d picked, %d left", picked, len(after.Fruits))
	}
	if len(before.Fruits) != cfg.MaxFruits {
		t.Error("Harvest() must not modify the receiver's fruit")
	}
}

func TestPlantNoFruitBelowMaxHealth(t *testing.T) {
	cfg := testConfig().Plant
	cfg.DehydrationFrames = 1 << 30
	p := NewPlant(1, core.C(0, 0), 16, 0, cfg)
	p.Size = 1
	p.Health = cfg.MaxHealth - 1
	p = p.Tick(uint64(cfg.FruitGrowthFrames)*3, cfg)
	if len(p.Fruits) != 0 {
		t.Errorf("len(Fruits) = %d, expected 0 below max health", len(p.Fruits))
	}
}

func TestPlantOxygen(t *testing.T) {
	p := Plant{Alive: true, Health: 5, Size: 1}
	if got := p.Oxygen(0.003); math.Abs(got-0.015) > 1e-12 {
		t.Errorf("Oxygen() = %v, expected 0.015", got)
	}
}

func TestAirlockLifecycle(t *testing.T) {
	cfg := testConfig().Airlock
	a := NewAirlock(1, core.RectAt(core.C(0, 0), 16, 64), core.RectAt(core.C(16, 0), 64, 64))
	if !a.Airtight(0, cfg) {
		t.Fatal("closed airlock should be airtight")
	}

	a = a.Activate(100)
	if a.State != DoorOpening {
		t.Fatalf("State = %v, expected opening", a.State)
	}
	if !a.Airtight(100+uint64(cfg.DoorDelay)-1, cfg) {
		t.Error("airlock should stay airtight during the door delay")
	}
	if a.Airtight(100+uint64(cfg.DoorDelay), cfg) {
		t.Error("airlock should leak once the door moves")
	}
	if a.Activate(101).State != DoorOpening {
		t.Error("activating a moving door should be ignored")
	}

	a = a.Advance(143, cfg)
	if a.State != DoorOpening {
		t.Errorf("State at 43 frames = %v, expected opening", a.State)
	}
	a = a.Advance(144, cfg)
	if a.State != DoorOpen {
		t.Fatalf("State at 44 frames = %v, expected open", a.State)
	}

	a = a.Activate(200)
	if a.State != DoorClosing {
		t.Fatalf("State = %v, expected closing", a.State)
	}
	a = a.Advance(244, cfg)
	if a.State != DoorClosed {
		t.Errorf("State = %v, expected closed", a.State)
	}
}

func TestDoorsKeepActivationFrame(t *testing.T) {
	cfg := testConfig()
	a := NewAirlock(1, core.RectAt(core.C(0, 0), 16, 64), core.RectAt(core.C(16, 0), 64, 64))
	a = a.Activate(100)
	settle := 100 + uint64(cfg.Airlock.MaxDoorOffset+cfg.Airlock.DoorDelay)
	a = a.Advance(settle, cfg.Airlock)
	if a.State != DoorOpen {
		t.Fatalf("State = %v, expected open", a.State)
	}
	a = a.Advance(settle+50, cfg.Airlock)
	if a.LastInteraction != 100 {
		t.Errorf("LastInteraction = %d, expected 100", a.LastInteraction)
	}

	var doors ShieldDoors
	doors = doors.Activate(10)
	doors = doors.Advance(10+uint64(shieldTravel(cfg.Shield)), cfg.Shield)
	for i, d := range doors {
		if d.State != DoorOpen {
			t.Fatalf("door %d State = %v, expected open", i, d.State)
		}
		if d.LastActivation != 10 {
			t.Errorf("door %d LastActivation = %d, expected 10", i, d.LastActivation)
		}
	}
}

func TestAirlockColliderFollowsAirtightness(t *testing.T) {
	cfg := testConfig().Airlock
	a := NewAirlock(7, core.RectAt(core.C(0, 0), 16, 64), core.RectAt(core.C(16, 0), 64, 64))
	if a.Collider(0, cfg).Type != collision.TypeWall {
		t.Error("closed door should be a wall")
	}
	a = a.Activate(0)
	if a.Collider(uint64(cfg.DoorDelay), cfg).Type != collision.TypeNone {
		t.Error("open door should not collide")
	}
}

func TestAirlockPull(t *testing.T) {
	cfg := testConfig().Airlock
	a := NewAirlock(1, core.Rect{}, core.RectAt(core.C(0, 0), 20, 20))

	near := a.Pull(core.C(110, 10), cfg)
	if math.Abs(near.Magnitude()-cfg.PixelSpeed) > 1e-9 {
		t.Errorf("near pull = %v, expected full speed %v", near.Magnitude(), cfg.PixelSpeed)
	}
	if near.X >= 0 {
		t.Error("pull should point toward the vacuum")
	}
	far := a.Pull(core.C(10+640, 10), cfg)
	if want := cfg.PixelSpeed * cfg.PullFalloff / 640; math.Abs(far.Magnitude()-want) > 1e-9 {
		t.Errorf("far pull = %v, expected %v", far.Magnitude(), want)
	}
	if a.Pull(core.C(10, 10), cfg) != (core.Coord{}) {
		t.Error("pull at the centre should be zero")
	}
}

func TestShieldDoors(t *testing.T) {
	cfg := testConfig().Shield
	var doors ShieldDoors
	for i := range doors {
		doors[i].State = DoorOpen
	}
	if doors.AllClosed() {
		t.Fatal("open doors reported closed")
	}
	doors = doors.Activate(10)
	travel := uint64(cfg.SlatDelay*(cfg.Slats-1) + cfg.SlatTravel)
	doors = doors.Advance(10+travel, cfg)
	if !doors.AllClosed() {
		t.Fatalf("doors should be closed after %d frames", travel)
	}

	d := doors[1].EarlyOpen(500)
	if d.State != DoorOpening {
		t.Errorf("EarlyOpen() state = %v, expected opening", d.State)
	}
	if c := d.SlatCover(0, 500, cfg); c != 1 {
		t.Errorf("SlatCover(0) at start = %v, expected 1", c)
	}
	if c := d.SlatCover(cfg.Slats-1, 500+uint64(cfg.SlatDelay), cfg); c != 1 {
		t.Errorf("last slat should not have moved yet, cover = %v", c)
	}
}

func TestBlackHoleEasingAndCollapse(t *testing.T) {
	cfg := testConfig().Heavens
	b := BlackHole{}.Appear(10, cfg)
	for i := 0; i < 200; i++ {
		b = b.Step(cfg)
	}
	if math.Abs(b.Radius-cfg.BlackHoleRadius) > 0.01 {
		t.Errorf("Radius = %v, expected to approach %v", b.Radius, cfg.BlackHoleRadius)
	}
	if !b.Recent(10+719, 720) || b.Recent(10+720, 720) {
		t.Error("Recent() window boundaries are wrong")
	}
	b = b.Collapse()
	for i := 0; i < 200 && b.Present; i++ {
		b = b.Step(cfg)
	}
	if b.Present {
		t.Error("collapsed black hole should disappear")
	}
}

func TestDrifterSlingshot(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	cfg := testConfig().Heavens
	d := SpawnDrifter(640, 100, cfg, rng)
	if d.Vel.Magnitude() < cfg.DrifterMinSpeed || d.Vel.Magnitude() > cfg.DrifterMaxSpeed {
		t.Errorf("drifter speed %v out of range", d.Vel.Magnitude())
	}
	s := Drifter{Pos: core.C(10, 0), Vel: core.C(1, 0)}.Slingshot(core.C(0, 0), 4)
	if s.Vel != core.C(5, 0) || !s.Slung {
		t.Errorf("Slingshot() = %+v, expected vel (5,0) and slung", s)
	}
}

func TestShakerDeterministic(t *testing.T) {
	s := Shaker{}.WithLevel(ShakeSevere, 0)
	for f := uint64(0); f < 32; f++ {
		x1, y1 := s.Offset(f)
		x2, y2 := s.Offset(f)
		if x1 != x2 || y1 != y2 {
			t.Fatal("Offset() is not a function of the frame")
		}
	}
	if x, y := (Shaker{}).Offset(5); x != 0 || y != 0 {
		t.Error("no shake should have no offset")
	}
}
