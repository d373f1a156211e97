package core

// Config holds every tunable the simulation reads. Distances are in tiles,
// speeds in tiles per tick, durations in ticks unless noted. The engine
// applies no defaults of its own: callers supply a complete config, and
// degenerate values (NaN, negative durations) are a caller bug, not
// something the hot path guards against.
type Config struct {
	TickRate      int // simulation ticks per second, used for time display and bonuses
	ViewportWidth int // visible columns; drives the camera and spawner activation

	// Player movement.
	Gravity     float64
	MaxFall     float64
	JumpImpulse float64 // negative is up
	WalkSpeed   float64
	RunSpeed    float64
	GroundAccel float64
	AirAccel    float64
	GroundDecel float64
	StompBounce float64 // vy granted by a successful stomp, negative is up
	DeathLaunch float64 // vy of the death-sequence hop, negative is up

	// Other entities.
	EnemySpeed    float64
	ItemSpeed     float64
	FireballSpeed float64
	FireballAmp   float64 // wave-pattern amplitude in tiles
	BossSpeed     float64
	BossHealth    int
	BossFireTicks int     // base ticks between boss shots
	BossEnrage    float64 // per-hit speed and fire-rate multiplier step
	SpawnerTicks  int     // ticks between spawner shots

	// Durations.
	InvulnTicks     int
	BossInvulnTicks int
	IntroTicks      int
	DeadWaitTicks   int
	ClearTicks      int

	// Scoring.
	StompScore   int
	CoinScore    int
	ItemScore    int // granted when an already-big player grabs an item
	BossScore    int
	FlagBonusMin int
	FlagBonusMax int
	TimeBonus    int // points per second remaining at the flag

	// Session.
	StartLives int
	DeadZone   float64 // camera margin as a fraction of viewport width
}
