package core

import "math"

const (
	// waveFrequency keys a wave fireball's phase to its X position, so the
	// path is a pure function of where it is and needs no extra clock.
	waveFrequency = 0.45

	// fireballMargin is how far past the level edge a fireball may drift
	// before it is culled.
	fireballMargin = 2.0

	// spawnerMargin extends the viewport for spawner activation, so shots
	// start just off screen instead of popping in at the edge.
	spawnerMargin = 4.0

	burstParticles = 4
	burstLifeTicks = 18
)

// approach moves cur toward target by at most step without overshooting.
func approach(cur, target, step float64) float64 {
	switch {
	case cur < target:
		cur += step
		if cur > target {
			cur = target
		}
	case cur > target:
		cur -= step
		if cur < target {
			cur = target
		}
	}
	return cur
}

// stepPlayer integrates the player one tick: ease horizontal velocity
// toward the requested target, apply a jump impulse when grounded, add
// gravity, then resolve against the grid one axis at a time.
func (s *State) stepPlayer(in Input) {
	p := &s.Player
	cfg := &s.cfg

	target := 0.0
	speed := cfg.WalkSpeed
	if in.Run {
		speed = cfg.RunSpeed
	}
	switch {
	case in.Left && !in.Right:
		target = -speed
		p.Facing = FacingLeft
	case in.Right && !in.Left:
		target = speed
		p.Facing = FacingRight
	}

	if target != 0 {
		accel := cfg.AirAccel
		if p.OnGround {
			accel = cfg.GroundAccel
		}
		p.VX = approach(p.VX, target, accel)
	} else if p.OnGround {
		p.VX = approach(p.VX, 0, cfg.GroundDecel)
	}
	// Airborne with no input keeps its momentum.

	// A jump is a discrete impulse, never additive, and only from the
	// ground; holding jump in the air does nothing.
	if in.Jump && p.OnGround {
		p.VY = cfg.JumpImpulse
		p.OnGround = false
	}

	p.VY += cfg.Gravity
	if p.VY > cfg.MaxFall {
		p.VY = cfg.MaxFall
	}

	// The pre-move bottom edge feeds the stomp classification later in
	// the tick.
	s.prevBottom = p.Y + p.Height()

	nx, blocked := moveHorizontal(s.Level, p.X, p.Y, p.Width(), p.Height(), p.VX)
	p.X = nx
	if blocked {
		p.VX = 0
	}
	ny, nvy, grounded, bumps := moveVertical(s.Level, p.X, p.Y, p.Width(), p.Height(), p.VY, true)
	p.Y = ny
	p.VY = nvy
	p.OnGround = grounded
	s.bumps = append(s.bumps, bumps...)

	p.Invuln.Tick()
}

// stepWalker advances a constant-speed, gravity-bound walker one tick.
// A horizontal block reverses direction instead of stopping.
func stepWalker(lv *Level, cfg *Config, x, y, w, h, vx, vy float64) (nx, ny, nvx, nvy float64, grounded bool) {
	nx, blocked := moveHorizontal(lv, x, y, w, h, vx)
	nvx = vx
	if blocked {
		nvx = -vx
	}
	nvy = vy + cfg.Gravity
	if nvy > cfg.MaxFall {
		nvy = cfg.MaxFall
	}
	ny, nvy, grounded, _ = moveVertical(lv, nx, y, w, h, nvy, true)
	return nx, ny, nvx, nvy, grounded
}

func (s *State) stepEnemies() {
	for i := range s.Enemies {
		e := &s.Enemies[i]
		if !e.Alive {
			continue
		}
		e.X, e.Y, e.VX, e.VY, e.OnGround = stepWalker(s.Level, &s.cfg, e.X, e.Y, 1, 1, e.VX, e.VY)
		if e.Y > float64(s.Level.Height) {
			e.Alive = false
		}
	}
}

func (s *State) stepItems() {
	for i := range s.Items {
		it := &s.Items[i]
		if !it.Alive {
			continue
		}
		it.X, it.Y, it.VX, it.VY, _ = stepWalker(s.Level, &s.cfg, it.X, it.Y, 1, 1, it.VX, it.VY)
		if it.Y > float64(s.Level.Height) {
			it.Alive = false
		}
	}
}

func (s *State) stepFireballs() {
	for i := range s.Fireballs {
		f := &s.Fireballs[i]
		if !f.Alive {
			continue
		}
		f.X += f.VX
		if f.Pattern == PatternWave {
			f.Y = f.BaseY + s.cfg.FireballAmp*math.Sin(f.X*waveFrequency)
		}
		if f.X < -fireballMargin || f.X > float64(s.Level.Width)+fireballMargin || f.Y > float64(s.Level.Height) {
			f.Alive = false
		}
	}
}

func (s *State) stepBoss() {
	b := s.Boss
	if b == nil || !b.Alive {
		return
	}
	b.X, b.Y, b.VX, b.VY, b.OnGround = stepWalker(s.Level, &s.cfg, b.X, b.Y, 2, 2, b.VX, b.VY)
	if b.Y > float64(s.Level.Height) {
		b.Alive = false
		return
	}
	b.Invuln.Tick()
	if b.FireTimer.Tick() {
		s.bossFire(b)
		b.FireTimer.Reset(b.FireInterval)
	}
}

// bossFire shoots a straight fireball from the boss toward the player's
// side of it.
func (s *State) bossFire(b *Boss) {
	dir := FacingLeft
	if s.Player.X > b.X {
		dir = FacingRight
	}
	cy := b.Y + 0.5
	s.Fireballs = append(s.Fireballs, Fireball{
		X:       b.X + 0.5,
		Y:       cy,
		VX:      float64(dir) * s.cfg.FireballSpeed,
		BaseY:   cy,
		Pattern: PatternLinear,
		Alive:   true,
	})
}

// stepSpawners ticks spawner timers and emits fireballs. Timers only run
// while the spawner is near the viewport, so areas the player has not
// reached stay quiet instead of accumulating shots.
func (s *State) stepSpawners() {
	for i := range s.Spawners {
		sp := &s.Spawners[i]
		if !s.nearViewport(sp.X) {
			continue
		}
		if sp.Timer.Tick() {
			s.Fireballs = append(s.Fireballs, Fireball{
				X:       sp.X,
				Y:       sp.Y,
				VX:      float64(sp.Dir) * s.cfg.FireballSpeed,
				BaseY:   sp.Y,
				Pattern: sp.Pattern,
				Alive:   true,
			})
			sp.Timer.Reset(sp.Interval)
		}
	}
}

// nearViewport reports whether a column is on screen or within the
// activation margin beside it.
func (s *State) nearViewport(x float64) bool {
	vw := float64(s.cfg.ViewportWidth)
	return x >= s.Camera-spawnerMargin && x <= s.Camera+vw+spawnerMargin
}

func (s *State) stepParticles() {
	for i := range s.Particles {
		p := &s.Particles[i]
		p.X += p.VX
		p.Y += p.VY
		p.Life.Tick()
	}
}

// spawnBurst emits a small spray of sparks where a coin or enemy popped.
func (s *State) spawnBurst(x, y float64) {
	for i := 0; i < burstParticles; i++ {
		vx := (s.rng.Float64() - 0.5) * 0.3
		vy := -0.05 - s.rng.Float64()*0.15
		s.Particles = append(s.Particles, Particle{
			X: x, Y: y, VX: vx, VY: vy,
			Life: NewCountdown(burstLifeTicks),
		})
	}
}

// compactTransient drops dead items, dead fireballs, and expired
// particles. Enemies and the boss stay in place when dead; their slots are
// stable for the whole level.
func (s *State) compactTransient() {
	items := s.Items[:0]
	for _, it := range s.Items {
		if it.Alive {
			items = append(items, it)
		}
	}
	s.Items = items

	fireballs := s.Fireballs[:0]
	for _, f := range s.Fireballs {
		if f.Alive {
			fireballs = append(fireballs, f)
		}
	}
	s.Fireballs = fireballs

	particles := s.Particles[:0]
	for _, p := range s.Particles {
		if p.Life.Active() {
			particles = append(particles, p)
		}
	}
	s.Particles = particles
}
