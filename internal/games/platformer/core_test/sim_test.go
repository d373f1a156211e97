package core_test

import (
	"math"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
)

// testConfig returns compact tunables sized for tiny test levels: short
// phase timers, a small viewport, round scoring values.
func testConfig() core.Config {
	return core.Config{
		TickRate:      60,
		ViewportWidth: 20,

		Gravity:     0.05,
		MaxFall:     0.5,
		JumpImpulse: -0.4,
		WalkSpeed:   0.2,
		RunSpeed:    0.3,
		GroundAccel: 0.2,
		AirAccel:    0.1,
		GroundDecel: 0.2,
		StompBounce: -0.3,
		DeathLaunch: -0.4,

		EnemySpeed:    0.05,
		ItemSpeed:     0.06,
		FireballSpeed: 0.15,
		FireballAmp:   1.0,
		BossSpeed:     0.06,
		BossHealth:    3,
		BossFireTicks: 30,
		BossEnrage:    0.35,
		SpawnerTicks:  20,

		InvulnTicks:     12,
		BossInvulnTicks: 6,
		IntroTicks:      3,
		DeadWaitTicks:   2,
		ClearTicks:      4,

		StompScore:   100,
		CoinScore:    100,
		ItemScore:    500,
		BossScore:    1000,
		FlagBonusMin: 100,
		FlagBonusMax: 1000,
		TimeBonus:    10,

		StartLives: 3,
		DeadZone:   0.25,
	}
}

func mustParse(t *testing.T, rows []string, timeLimit int) *core.LevelData {
	t.Helper()
	data, err := levels.ParseLevel("test", "Test", rows, timeLimit)
	if err != nil {
		t.Fatalf("parse test level: %v", err)
	}
	return data
}

// newPlayingCfg builds a state and burns through the intro so tests start
// on the first playing tick.
func newPlayingCfg(t *testing.T, rows []string, timeLimit int, cfg core.Config) *core.State {
	t.Helper()
	s := core.New(mustParse(t, rows, timeLimit), cfg, 0, 1)
	for i := 0; i < cfg.IntroTicks+1 && s.Mode == core.ModeIntro; i++ {
		s.Step(core.Input{})
	}
	if s.Mode != core.ModePlaying {
		t.Fatalf("expected playing after the intro, got %v", s.Mode)
	}
	return s
}

func newPlaying(t *testing.T, rows []string, timeLimit int) *core.State {
	t.Helper()
	return newPlayingCfg(t, rows, timeLimit, testConfig())
}

func closeTo(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// flatRows is an open runway: empty sky, the spawn on the left, solid
// ground. The sky rows leave room for a full jump arc.
func flatRows() []string {
	return []string{
		"                              ",
		"                              ",
		"                              ",
		"                              ",
		"                              ",
		"P                             ",
		"##############################",
	}
}

// busyRows packs coins, blocks, enemies, and a spawner into one screen so
// scripted runs touch most of the interaction rules.
func busyRows() []string {
	return []string{
		"                    ",
		"                    ",
		"        ?           ",
		"                    ",
		"   oo        W      ",
		"     B?B            ",
		"                    ",
		"P         E    E    ",
		"####################",
	}
}

// script derives a pseudo-random but fully reproducible input stream.
func script(i int) core.Input {
	return core.Input{
		Right: i%7 != 0,
		Left:  i%31 == 0,
		Jump:  i%13 == 0,
		Run:   i%3 == 0,
	}
}

func TestIntroRunsBeforePlay(t *testing.T) {
	s := core.New(mustParse(t, flatRows(), 0), testConfig(), 0, 1)
	if s.Mode != core.ModeIntro {
		t.Fatalf("expected a fresh run to open with the intro, got %v", s.Mode)
	}
	if s.Cue != "LEVEL 1" {
		t.Errorf("expected cue LEVEL 1, got %q", s.Cue)
	}

	// The world is frozen until the intro burns down.
	x := s.Player.X
	s.Step(core.Input{Right: true})
	if s.Player.X != x {
		t.Error("expected the world frozen during the intro")
	}
	s.Step(core.Input{Right: true})
	s.Step(core.Input{Right: true})
	if s.Mode != core.ModePlaying {
		t.Errorf("expected play after the intro ticks, got %v", s.Mode)
	}
	if s.Cue != "" {
		t.Errorf("expected the cue cleared in play, got %q", s.Cue)
	}
}

func TestWalkAcceleratesToWalkSpeed(t *testing.T) {
	cfg := testConfig()
	s := newPlaying(t, flatRows(), 0)

	for i := 0; i < 30; i++ {
		s.Step(core.Input{Right: true})
	}
	if s.Player.VX != cfg.WalkSpeed {
		t.Errorf("expected walk speed %v, got %v", cfg.WalkSpeed, s.Player.VX)
	}

	for i := 0; i < 30; i++ {
		s.Step(core.Input{})
	}
	if s.Player.VX != 0 {
		t.Errorf("expected ground friction to stop the player, got vx %v", s.Player.VX)
	}
}

func TestRunRaisesTopSpeed(t *testing.T) {
	cfg := testConfig()
	s := newPlaying(t, flatRows(), 0)
	for i := 0; i < 30; i++ {
		s.Step(core.Input{Right: true, Run: true})
	}
	if s.Player.VX != cfg.RunSpeed {
		t.Errorf("expected run speed %v, got %v", cfg.RunSpeed, s.Player.VX)
	}
}

func TestJumpIsGroundedImpulse(t *testing.T) {
	cfg := testConfig()
	s := newPlaying(t, flatRows(), 0)
	s.Step(core.Input{})
	if !s.Player.OnGround {
		t.Fatal("expected the player settled on the ground")
	}

	s.Step(core.Input{Jump: true})
	if s.Player.OnGround {
		t.Fatal("expected the jump to leave the ground")
	}
	if !closeTo(s.Player.VY, cfg.JumpImpulse+cfg.Gravity) {
		t.Errorf("expected the jump impulse plus one gravity step, got vy %v", s.Player.VY)
	}

	// Holding jump in the air adds nothing; only gravity acts.
	s.Step(core.Input{Jump: true})
	if !closeTo(s.Player.VY, cfg.JumpImpulse+2*cfg.Gravity) {
		t.Errorf("expected no mid-air impulse, got vy %v", s.Player.VY)
	}

	for i := 0; i < 60 && !s.Player.OnGround; i++ {
		s.Step(core.Input{Jump: true})
	}
	if !s.Player.OnGround {
		t.Fatal("expected the player to land")
	}
	if s.Player.Y != 5.0 {
		t.Errorf("expected the landing snapped onto the tile top at y=5, got %v", s.Player.Y)
	}
}

func TestFallSpeedIsCapped(t *testing.T) {
	cfg := testConfig()
	rows := []string{
		"P             ",
		"              ",
		"              ",
		"              ",
		"              ",
		"              ",
		"              ",
		"              ",
		"              ",
		"              ",
		"              ",
		"              ",
		"              ",
		"##############",
	}
	s := newPlaying(t, rows, 0)
	maxSeen := 0.0
	for i := 0; i < 60; i++ {
		s.Step(core.Input{})
		if s.Player.VY > maxSeen {
			maxSeen = s.Player.VY
		}
	}
	if maxSeen != cfg.MaxFall {
		t.Errorf("expected fall speed capped at %v, got %v", cfg.MaxFall, maxSeen)
	}
}

func TestCoinPickup(t *testing.T) {
	cfg := testConfig()
	s := newPlaying(t, []string{"P o  ", "#####"}, 0)
	for i := 0; i < 30 && s.Coins == 0; i++ {
		s.Step(core.Input{Right: true})
	}
	if s.Coins != 1 {
		t.Fatalf("expected the coin collected, coins=%d", s.Coins)
	}
	if s.Score != cfg.CoinScore {
		t.Errorf("expected score %d, got %d", cfg.CoinScore, s.Score)
	}
	if s.Level.TileAt(2, 0) != core.TileEmpty {
		t.Error("expected the coin tile consumed")
	}
	if len(s.Particles) == 0 {
		t.Error("expected a burst of particles at the pickup")
	}
}

func TestQuestionBlockBump(t *testing.T) {
	rows := []string{
		"?",
		" ",
		"P",
		"#",
	}
	s := newPlaying(t, rows, 0)
	for i := 0; i < 20 && s.Level.TileAt(0, 0) == core.TileQuestion; i++ {
		s.Step(core.Input{Jump: true})
	}
	if s.Level.TileAt(0, 0) != core.TileUsed {
		t.Fatal("expected the question block spent by the head bump")
	}
	if len(s.Items) != 1 {
		t.Fatalf("expected one released item, got %d", len(s.Items))
	}
	it := s.Items[0]
	if it.X != 0 || it.Y != -1 {
		t.Errorf("expected the item released one tile above the block, got (%v, %v)", it.X, it.Y)
	}

	// A spent block releases nothing on further bumps.
	for i := 0; i < 20; i++ {
		s.Step(core.Input{Jump: true})
	}
	if len(s.Items) != 1 {
		t.Errorf("expected no further releases, got %d items", len(s.Items))
	}
}

func TestItemGrowsSmallPlayer(t *testing.T) {
	cfg := testConfig()
	s := newPlaying(t, flatRows(), 0)
	s.Step(core.Input{})

	s.Items = append(s.Items, core.Item{X: s.Player.X, Y: s.Player.Y, Alive: true})
	s.Step(core.Input{})
	if s.Player.Size != core.SizeBig {
		t.Fatal("expected the item to grow the player")
	}
	if s.Player.Y != 4.0 {
		t.Errorf("expected growth to extend upward to y=4, got %v", s.Player.Y)
	}
	if !s.Player.Invuln.Active() {
		t.Error("expected invulnerability on growth")
	}
	if s.Score != 0 {
		t.Errorf("expected no score for the growth pickup, got %d", s.Score)
	}
	if len(s.Items) != 0 {
		t.Error("expected the item consumed")
	}

	// A second item while already big pays points instead.
	s.Items = append(s.Items, core.Item{X: s.Player.X, Y: s.Player.Y, Alive: true})
	s.Step(core.Input{})
	if s.Player.Size != core.SizeBig {
		t.Error("expected the player to stay big")
	}
	if s.Score != cfg.ItemScore {
		t.Errorf("expected score %d for the redundant item, got %d", cfg.ItemScore, s.Score)
	}
}

func TestStompKillsEnemy(t *testing.T) {
	cfg := testConfig()
	rows := []string{
		"     ",
		"     ",
		"     ",
		"     ",
		"     ",
		"P  E ",
		"#####",
	}
	s := newPlaying(t, rows, 0)
	s.Step(core.Input{})

	// Drop the player onto the enemy: falling, bottom edge crossing the
	// enemy's top this tick.
	e := s.Enemies[0]
	s.Player.X = e.X
	s.Player.Y = e.Y - 1.2
	s.Player.VY = 0.2
	s.Step(core.Input{})

	if s.Enemies[0].Alive {
		t.Fatal("expected the stomp to kill the enemy")
	}
	if s.Score != cfg.StompScore {
		t.Errorf("expected score %d, got %d", cfg.StompScore, s.Score)
	}
	if !closeTo(s.Player.VY, cfg.StompBounce) {
		t.Errorf("expected the stomp bounce %v, got vy %v", cfg.StompBounce, s.Player.VY)
	}
	if s.Mode != core.ModePlaying {
		t.Errorf("expected play to continue, got %v", s.Mode)
	}
	if s.Lives != cfg.StartLives {
		t.Errorf("expected no life lost on a stomp, got %d", s.Lives)
	}
	if got := len(s.View().Enemies); got != 0 {
		t.Errorf("expected dead enemies filtered from the view, got %d", got)
	}
}

func TestLateralContactDamages(t *testing.T) {
	cfg := testConfig()
	s := newPlaying(t, []string{"P  E  ", "######"}, 0)
	for i := 0; i < 40 && s.Mode == core.ModePlaying; i++ {
		s.Step(core.Input{Right: true})
	}
	if s.Mode != core.ModeDead {
		t.Fatalf("expected lateral contact to kill, got %v", s.Mode)
	}
	if s.Cue != "OUCH!" {
		t.Errorf("expected cue OUCH!, got %q", s.Cue)
	}
	if s.Lives != cfg.StartLives-1 {
		t.Errorf("expected a life lost, got %d", s.Lives)
	}
	if !s.Enemies[0].Alive {
		t.Error("lateral contact must not kill the enemy")
	}
}

func TestInvulnerabilityIgnoresContact(t *testing.T) {
	cfg := testConfig()
	s := newPlaying(t, []string{"P  E  ", "######"}, 0)
	for i := 0; i < 60; i++ {
		s.Player.Invuln = core.NewCountdown(1000)
		s.Step(core.Input{Right: true})
		if s.Mode != core.ModePlaying {
			t.Fatalf("took damage at tick %d despite invulnerability", i)
		}
	}
	if s.Lives != cfg.StartLives {
		t.Errorf("expected no lives lost, got %d", s.Lives)
	}
	if !s.Enemies[0].Alive {
		t.Error("walking through an enemy must not kill it")
	}
}

func TestContactShrinksBigPlayer(t *testing.T) {
	cfg := testConfig()
	rows := []string{
		"      ",
		"P  E  ",
		"######",
	}
	s := newPlaying(t, rows, 0)
	s.Player.Size = core.SizeBig
	s.Player.Y -= 1

	for i := 0; i < 40 && s.Player.Size == core.SizeBig; i++ {
		s.Step(core.Input{Right: true})
	}
	if s.Player.Size != core.SizeSmall {
		t.Fatal("expected contact to shrink the big player")
	}
	if s.Mode != core.ModePlaying {
		t.Errorf("expected play to continue after shrinking, got %v", s.Mode)
	}
	if s.Lives != cfg.StartLives {
		t.Errorf("expected no life lost on a shrink, got %d", s.Lives)
	}
	if !s.Player.Invuln.Active() {
		t.Error("expected invulnerability after the shrink")
	}
}

func TestFireballBurnsOutOnHit(t *testing.T) {
	s := newPlaying(t, flatRows(), 0)
	s.Step(core.Input{})
	s.Fireballs = append(s.Fireballs, core.Fireball{
		X: s.Player.X, Y: s.Player.Y, BaseY: s.Player.Y, Pattern: core.PatternLinear, Alive: true,
	})
	s.Step(core.Input{})
	if s.Mode != core.ModeDead {
		t.Fatalf("expected the fireball to kill a small player, got %v", s.Mode)
	}
	if len(s.Fireballs) != 0 {
		t.Error("expected the fireball consumed by the hit")
	}
}

func TestFireballIgnoresInvulnerablePlayer(t *testing.T) {
	s := newPlaying(t, flatRows(), 0)
	s.Step(core.Input{})
	s.Player.Invuln = core.NewCountdown(1000)
	s.Fireballs = append(s.Fireballs, core.Fireball{
		X: s.Player.X, Y: s.Player.Y, BaseY: s.Player.Y, Pattern: core.PatternLinear, Alive: true,
	})
	s.Step(core.Input{})
	if s.Mode != core.ModePlaying {
		t.Fatalf("expected the hit swallowed, got %v", s.Mode)
	}
	if len(s.Fireballs) != 1 {
		t.Error("expected the projectile to survive a swallowed hit")
	}
}

func TestSpikesDamage(t *testing.T) {
	s := newPlaying(t, []string{"P ^   ", "######"}, 0)
	for i := 0; i < 20 && s.Mode == core.ModePlaying; i++ {
		s.Step(core.Input{Right: true})
	}
	if s.Mode != core.ModeDead {
		t.Fatalf("expected the spikes to kill, got %v", s.Mode)
	}
}

func TestPitFallIgnoresInvulnerability(t *testing.T) {
	cfg := testConfig()
	rows := []string{
		"      ",
		"P     ",
		"##  ##",
	}
	s := newPlaying(t, rows, 0)
	s.Player.Size = core.SizeBig
	s.Player.Y -= 1
	s.Player.Invuln = core.NewCountdown(100000)

	for i := 0; i < 200 && s.Mode == core.ModePlaying; i++ {
		s.Step(core.Input{Right: true})
	}
	if s.Mode != core.ModeDead {
		t.Fatalf("expected the pit to kill regardless of invulnerability, got %v", s.Mode)
	}
	if s.Player.Size != core.SizeBig {
		t.Error("a pit death must not shrink the player first")
	}
	if s.Lives != cfg.StartLives-1 {
		t.Errorf("expected a life lost, got %d", s.Lives)
	}
}

func TestClockDeath(t *testing.T) {
	cfg := testConfig()
	s := newPlaying(t, flatRows(), 1)
	if s.TimeLeft != cfg.TickRate {
		t.Fatalf("expected a 1-second budget of %d ticks, got %d", cfg.TickRate, s.TimeLeft)
	}
	for i := 0; i < cfg.TickRate; i++ {
		if s.Mode != core.ModePlaying {
			t.Fatalf("died early at tick %d", i)
		}
		s.Step(core.Input{})
	}
	if s.Mode != core.ModeDead {
		t.Errorf("expected the clock to kill on expiry, got %v", s.Mode)
	}
}

func TestUntimedLevelNeverExpires(t *testing.T) {
	s := newPlaying(t, flatRows(), 0)
	for i := 0; i < 300; i++ {
		s.Step(core.Input{})
	}
	if s.Mode != core.ModePlaying {
		t.Errorf("expected an untimed level to run forever, got %v", s.Mode)
	}
}

func TestDeathSequenceRespawns(t *testing.T) {
	cfg := testConfig()
	s := newPlaying(t, []string{"P o ^     ", "##########"}, 0)

	// Collect the coin on the way into the spikes.
	for i := 0; i < 60 && s.Mode == core.ModePlaying; i++ {
		s.Step(core.Input{Right: true})
	}
	if s.Mode != core.ModeDead {
		t.Fatalf("expected a death, got %v", s.Mode)
	}
	if s.Coins != 1 {
		t.Fatalf("expected the coin collected first, coins=%d", s.Coins)
	}

	for i := 0; i < 200 && s.Mode == core.ModeDead; i++ {
		s.Step(core.Input{})
	}
	if s.Mode != core.ModePlaying {
		t.Fatalf("expected a respawn, got %v", s.Mode)
	}
	if s.Player.X != 0 || s.Player.Y != 0 {
		t.Errorf("expected respawn at the spawn point, got (%v, %v)", s.Player.X, s.Player.Y)
	}
	if !s.Player.Invuln.Active() {
		t.Error("expected respawn invulnerability")
	}
	if s.Lives != cfg.StartLives-1 {
		t.Errorf("expected one life spent, got %d", s.Lives)
	}

	// Level mutations survive the respawn.
	if s.Level.TileAt(1, 0) != core.TileEmpty || s.Coins != 1 {
		t.Error("expected the collected coin to stay collected")
	}
}

func TestGameOverOnLastLife(t *testing.T) {
	s := newPlaying(t, []string{"P ^   ", "######"}, 0)
	s.Lives = 1
	for i := 0; i < 300 && !s.Mode.Terminal(); i++ {
		s.Step(core.Input{Right: true})
	}
	if s.Mode != core.ModeGameOver {
		t.Fatalf("expected game over on the last life, got %v", s.Mode)
	}
	if s.Lives != 0 {
		t.Errorf("expected zero lives, got %d", s.Lives)
	}
	if s.Cue != "GAME OVER" {
		t.Errorf("expected cue GAME OVER, got %q", s.Cue)
	}

	tick := s.Tick
	s.Step(core.Input{Right: true, Jump: true})
	if s.Tick != tick {
		t.Error("expected a terminal mode to freeze the tick counter")
	}
}

func TestFlagTouchClearsLevel(t *testing.T) {
	cfg := testConfig()
	rows := []string{
		"    G",
		"    F",
		"P   F",
		"#####",
	}
	s := newPlaying(t, rows, 0)
	for i := 0; i < 40 && s.Mode == core.ModePlaying; i++ {
		s.Step(core.Input{Right: true})
	}
	if s.Mode != core.ModeClear {
		t.Fatalf("expected the flag to clear the level, got %v", s.Mode)
	}
	if s.Cue != "LEVEL CLEAR!" {
		t.Errorf("expected cue LEVEL CLEAR!, got %q", s.Cue)
	}
	// Touched at the foot of the pole on an untimed level: the minimum
	// bonus exactly.
	if s.Score != cfg.FlagBonusMin {
		t.Errorf("expected the foot-of-pole bonus %d, got %d", cfg.FlagBonusMin, s.Score)
	}
	if s.Player.VX != 0 || s.Player.VY != 0 {
		t.Error("expected the player halted at the flag")
	}
}

func TestFlagBonusScalesWithHeight(t *testing.T) {
	cfg := testConfig()
	rows := []string{
		"     G",
		"     F",
		"P    F",
		"###  F",
		"     F",
		"     F",
		"######",
	}
	s := newPlaying(t, rows, 0)
	for i := 0; i < 60 && s.Mode == core.ModePlaying; i++ {
		s.Step(core.Input{Right: true})
	}
	if s.Mode != core.ModeClear {
		t.Fatalf("expected a mid-pole clear, got %v", s.Mode)
	}
	if s.Score <= cfg.FlagBonusMin || s.Score > cfg.FlagBonusMax {
		t.Errorf("expected a height-scaled bonus in (%d, %d], got %d",
			cfg.FlagBonusMin, cfg.FlagBonusMax, s.Score)
	}
}

func TestFlagBonusAddsTimeBonus(t *testing.T) {
	cfg := testConfig()
	rows := []string{
		"    G",
		"    F",
		"P   F",
		"#####",
	}
	// A 10 second clock; the walk to the pole takes a quarter second, so
	// nine full seconds remain at the touch.
	s := newPlayingCfg(t, rows, 10, cfg)
	for i := 0; i < 60 && s.Mode == core.ModePlaying; i++ {
		s.Step(core.Input{Right: true})
	}
	if s.Mode != core.ModeClear {
		t.Fatalf("expected the flag to clear the level, got %v", s.Mode)
	}
	want := cfg.FlagBonusMin + 9*cfg.TimeBonus
	if s.Score != want {
		t.Errorf("expected bonus %d with nine seconds left, got %d", want, s.Score)
	}
}

func TestLevelClearAdvance(t *testing.T) {
	cfg := testConfig()
	rows := []string{
		"    G",
		"    F",
		"P   F",
		"#####",
	}
	s := newPlaying(t, rows, 0)
	for i := 0; i < 40 && s.Mode == core.ModePlaying; i++ {
		s.Step(core.Input{Right: true})
	}
	if s.Mode != core.ModeClear {
		t.Fatalf("expected a clear, got %v", s.Mode)
	}

	// Advancing before the celebration finishes is a no-op.
	next := mustParse(t, flatRows(), 0)
	s.AdvanceLevel(next, cfg)
	if s.LevelIndex != 0 || s.Mode != core.ModeClear {
		t.Fatal("expected a premature advance to be ignored")
	}

	for i := 0; i < cfg.ClearTicks; i++ {
		s.Step(core.Input{})
	}
	if !s.AwaitingAdvance() {
		t.Fatal("expected the state to hold for the host after the celebration")
	}

	score, coins, lives := s.Score, s.Coins, s.Lives
	s.AdvanceLevel(next, cfg)
	if s.Mode != core.ModeIntro {
		t.Errorf("expected the next level to open with an intro, got %v", s.Mode)
	}
	if s.LevelIndex != 1 {
		t.Errorf("expected level index 1, got %d", s.LevelIndex)
	}
	if s.Cue != "LEVEL 2" {
		t.Errorf("expected cue LEVEL 2, got %q", s.Cue)
	}
	if s.Score != score || s.Coins != coins || s.Lives != lives {
		t.Error("expected score, coins, and lives carried across levels")
	}
	if s.Level.Width != 30 {
		t.Error("expected the new level grid installed")
	}
}

func TestFinishRunVictory(t *testing.T) {
	rows := []string{
		"    G",
		"    F",
		"P   F",
		"#####",
	}
	cfg := testConfig()
	s := newPlaying(t, rows, 0)
	for i := 0; i < 40 && s.Mode == core.ModePlaying; i++ {
		s.Step(core.Input{Right: true})
	}
	s.FinishRun()
	if s.Mode != core.ModeClear {
		t.Fatal("expected a premature finish to be ignored")
	}

	for i := 0; i < cfg.ClearTicks; i++ {
		s.Step(core.Input{})
	}
	s.FinishRun()
	if s.Mode != core.ModeVictory {
		t.Fatalf("expected victory, got %v", s.Mode)
	}
	if s.Cue != "YOU WIN!" {
		t.Errorf("expected cue YOU WIN!, got %q", s.Cue)
	}

	tick := s.Tick
	s.Step(core.Input{})
	if s.Tick != tick {
		t.Error("expected victory to freeze the simulation")
	}
}

func TestPauseFreezesEverything(t *testing.T) {
	s := newPlaying(t, busyRows(), 0)
	for i := 0; i < 30; i++ {
		s.Step(core.Input{Right: true})
	}

	s.TogglePause()
	if s.Mode != core.ModePaused {
		t.Fatalf("expected paused, got %v", s.Mode)
	}
	if s.Cue != "PAUSED" {
		t.Errorf("expected cue PAUSED, got %q", s.Cue)
	}

	before, err := core.Save(s).Hash()
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	for i := 0; i < 25; i++ {
		s.Step(core.Input{Right: true, Jump: true})
	}
	after, err := core.Save(s).Hash()
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if before != after {
		t.Error("expected the paused world byte-identical across ticks")
	}

	s.TogglePause()
	if s.Mode != core.ModePlaying {
		t.Fatalf("expected play to resume, got %v", s.Mode)
	}
	tick := s.Tick
	s.Step(core.Input{})
	if s.Tick != tick+1 {
		t.Error("expected the clock to run again after unpausing")
	}
}

func TestPauseOnlyTogglesDuringPlay(t *testing.T) {
	s := core.New(mustParse(t, flatRows(), 0), testConfig(), 0, 1)
	s.TogglePause()
	if s.Mode != core.ModeIntro {
		t.Errorf("pause during the intro must be ignored, mode %v", s.Mode)
	}

	s = newPlaying(t, []string{"P ^   ", "######"}, 0)
	for i := 0; i < 20 && s.Mode == core.ModePlaying; i++ {
		s.Step(core.Input{Right: true})
	}
	if s.Mode != core.ModeDead {
		t.Fatalf("expected a death to set up the scenario, got %v", s.Mode)
	}
	s.TogglePause()
	if s.Mode != core.ModeDead {
		t.Errorf("pause during the death sequence must be ignored, mode %v", s.Mode)
	}
}

func TestDeterministicReplay(t *testing.T) {
	run := func() uint64 {
		s := core.New(mustParse(t, busyRows(), 0), testConfig(), 0, 99)
		for i := 0; i < 600; i++ {
			s.Step(script(i))
		}
		h, err := core.Save(s).Hash()
		if err != nil {
			t.Fatalf("hash: %v", err)
		}
		return h
	}
	if run() != run() {
		t.Error("expected identical runs from the same seed and input script")
	}
}

func TestCameraScrollsOnlyPastDeadZone(t *testing.T) {
	rows := []string{
		"P                                       ",
		"########################################",
	}
	s := newPlaying(t, rows, 0)

	// Viewport 20, dead-zone margin 5: the camera holds at zero until the
	// player crosses column 15.
	for i := 0; i < 200 && s.Player.X <= 15; i++ {
		s.Step(core.Input{Right: true})
		if s.Player.X <= 15 && s.Camera != 0 {
			t.Fatalf("camera moved inside the dead zone: player %v camera %v", s.Player.X, s.Camera)
		}
	}
	if s.Player.X <= 15 {
		t.Fatal("player never crossed the dead zone")
	}
	if s.Camera != s.Player.X-15 {
		t.Errorf("expected the camera pinned to the margin, player %v camera %v", s.Player.X, s.Camera)
	}

	// Pushing to the right wall clamps the camera to the level edge.
	for i := 0; i < 200; i++ {
		s.Step(core.Input{Right: true})
	}
	if s.Camera != 20 {
		t.Errorf("expected the camera clamped at the level edge, got %v", s.Camera)
	}

	// Walking all the way back clamps at the origin.
	for i := 0; i < 250; i++ {
		s.Step(core.Input{Left: true})
	}
	if s.Camera != 0 {
		t.Errorf("expected the camera clamped at the origin, got %v", s.Camera)
	}
}

func TestSpawnerFiresNearViewport(t *testing.T) {
	cfg := testConfig()
	rows := []string{
		"          W         ",
		"P                   ",
		"####################",
	}
	s := newPlaying(t, rows, 0)
	for i := 0; i < cfg.SpawnerTicks && len(s.Fireballs) == 0; i++ {
		s.Step(core.Input{})
	}
	if len(s.Fireballs) != 1 {
		t.Fatalf("expected one shot after the spawner interval, got %d", len(s.Fireballs))
	}
	f := s.Fireballs[0]
	if f.VX >= 0 {
		t.Errorf("expected a leftward shot, got vx %v", f.VX)
	}
	if f.Pattern != core.PatternWave {
		t.Error("expected a wave-pattern shot from a W spawner")
	}

	x := f.X
	s.Step(core.Input{})
	if s.Fireballs[0].X >= x {
		t.Error("expected the shot to travel")
	}
}

func TestSpawnerIdlesOffScreen(t *testing.T) {
	cfg := testConfig()
	rows := []string{
		strings.Repeat(" ", 47) + "W",
		"P" + strings.Repeat(" ", 47),
		strings.Repeat("#", 48),
	}
	s := newPlaying(t, rows, 0)
	for i := 0; i < 3*cfg.SpawnerTicks; i++ {
		s.Step(core.Input{})
	}
	if len(s.Fireballs) != 0 {
		t.Errorf("expected an off-screen spawner to stay quiet, got %d shots", len(s.Fireballs))
	}
}

func TestBossStompAndEnrage(t *testing.T) {
	cfg := testConfig()
	cfg.BossFireTicks = 1000 // keep projectiles out of the exchange
	rows := []string{
		"            ",
		"            ",
		"            ",
		"            ",
		"            ",
		"P       X   ",
		"############",
	}
	s := newPlayingCfg(t, rows, 0, cfg)
	s.Step(core.Input{})
	if s.Boss == nil || !s.Boss.Alive {
		t.Fatal("expected a boss scanned from the map")
	}

	stomp := func() {
		s.Player.X = s.Boss.X + 0.5
		s.Player.Y = s.Boss.Y - 1.2
		s.Player.VY = 0.2
		s.Step(core.Input{})
	}

	stomp()
	if s.Boss.Health != cfg.BossHealth-1 {
		t.Fatalf("expected boss health %d, got %d", cfg.BossHealth-1, s.Boss.Health)
	}
	if !s.Boss.Invuln.Active() {
		t.Error("expected the boss flashing after a hit")
	}
	if !closeTo(s.Player.VY, cfg.StompBounce) {
		t.Errorf("expected the stomp bounce, got vy %v", s.Player.VY)
	}
	if !closeTo(math.Abs(s.Boss.VX), cfg.BossSpeed*(1+cfg.BossEnrage)) {
		t.Errorf("expected enraged speed %v, got %v", cfg.BossSpeed*(1+cfg.BossEnrage), math.Abs(s.Boss.VX))
	}
	if s.Boss.FireInterval >= cfg.BossFireTicks {
		t.Errorf("expected a faster fire interval, got %d", s.Boss.FireInterval)
	}

	// While flashing the boss neither takes nor deals damage.
	lives := s.Lives
	s.Player.X = s.Boss.X + 0.5
	s.Player.Y = s.Boss.Y + 0.5
	s.Player.VY = 0
	s.Step(core.Input{})
	if s.Boss.Health != cfg.BossHealth-1 {
		t.Error("an invulnerable boss must not take hits")
	}
	if s.Mode != core.ModePlaying || s.Lives != lives {
		t.Error("an invulnerable boss must not deal damage")
	}

	for guard := 0; s.Boss.Alive; guard++ {
		if guard > 200 {
			t.Fatal("boss never died")
		}
		if s.Boss.Invuln.Active() {
			// Park well away until the flash ends.
			s.Player.X, s.Player.Y, s.Player.VY = 0, 5, 0
			s.Step(core.Input{})
			continue
		}
		stomp()
	}
	if s.Mode != core.ModeClear {
		t.Errorf("expected the boss kill to clear the level, got %v", s.Mode)
	}
	if s.Score != cfg.BossScore {
		t.Errorf("expected score %d, got %d", cfg.BossScore, s.Score)
	}
	if s.View().Boss != nil {
		t.Error("expected a dead boss absent from the view")
	}
}

func TestBossFiresTowardPlayer(t *testing.T) {
	cfg := testConfig()
	cfg.BossFireTicks = 5
	rows := []string{
		"            ",
		"            ",
		"            ",
		"            ",
		"            ",
		"P       X   ",
		"############",
	}
	s := newPlayingCfg(t, rows, 0, cfg)
	for i := 0; i < cfg.BossFireTicks && len(s.Fireballs) == 0; i++ {
		s.Step(core.Input{})
	}
	if len(s.Fireballs) == 0 {
		t.Fatal("expected the boss to fire after its interval")
	}
	f := s.Fireballs[0]
	if f.VX >= 0 {
		t.Errorf("expected the shot aimed at the player on the left, got vx %v", f.VX)
	}
	if f.Pattern != core.PatternLinear {
		t.Error("expected a straight boss shot")
	}
}

func TestEnemyFallsOutAndDies(t *testing.T) {
	rows := []string{
		"   E  P",
		"###  ##",
	}
	s := newPlaying(t, rows, 0)
	for i := 0; i < 400 && s.Enemies[0].Alive; i++ {
		s.Step(core.Input{})
	}
	if s.Enemies[0].Alive {
		t.Fatal("expected the enemy to wander into the pit and die")
	}
	if len(s.Enemies) != 1 {
		t.Errorf("expected the dead enemy slot retained, got %d", len(s.Enemies))
	}
	if len(s.View().Enemies) != 0 {
		t.Error("expected dead enemies filtered from the view")
	}
}
