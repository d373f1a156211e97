package core

// Interactions run once per tick after movement, in a fixed order: enemies,
// boss, fireballs, items, head-bumps, coins, hazards, pit fall, flag. Each
// rule re-checks the mode first, because an earlier rule may have killed
// the player and nothing below should fire on a dead state.

type damageKind int

const (
	// damageContact respects invulnerability and shrinks a big player
	// before killing.
	damageContact damageKind = iota
	// damageFall is a pit or time-out death: no invulnerability, no
	// shrinking, straight to the death sequence.
	damageFall
)

func (s *State) runInteractions() {
	s.playerEnemyCollisions()
	s.playerBossCollision()
	s.playerFireballCollisions()
	s.playerItemCollisions()
	s.resolveHeadBumps()
	s.collectCoins()
	s.checkHazards()
	s.checkPitFall()
	s.checkFlagContact()
}

// stompedFrom classifies the current overlap: a stomp needs the player
// falling this tick with its bottom edge having crossed the target's top
// edge from above. Everything else is lateral contact.
func (s *State) stompedFrom(top float64) bool {
	p := &s.Player
	return p.VY > 0 && s.prevBottom <= top && p.Y+p.Height() >= top
}

// damagePlayer applies the shared damage resolution and reports whether
// anything actually happened. Contact damage is swallowed by
// invulnerability and demotes a big player instead of killing; fall damage
// always starts the death sequence.
func (s *State) damagePlayer(kind damageKind) bool {
	p := &s.Player
	if kind == damageContact {
		if p.Invuln.Active() {
			return false
		}
		if p.Size == SizeBig {
			p.Size = SizeSmall
			p.Y += playerHeights[SizeBig] - playerHeights[SizeSmall]
			p.Invuln = NewCountdown(s.cfg.InvulnTicks)
			return true
		}
	}
	s.startDeath()
	return true
}

func (s *State) playerEnemyCollisions() {
	if s.Mode != ModePlaying {
		return
	}
	pb := s.Player.Bounds()
	for i := range s.Enemies {
		e := &s.Enemies[i]
		if !e.Alive || !pb.Intersects(e.Bounds()) {
			continue
		}
		if s.stompedFrom(e.Y) {
			e.Alive = false
			s.addScore(s.cfg.StompScore)
			s.Player.VY = s.cfg.StompBounce
			s.spawnBurst(e.X+0.5, e.Y+0.5)
			continue
		}
		s.damagePlayer(damageContact)
		if s.Mode != ModePlaying {
			return
		}
	}
}

func (s *State) playerBossCollision() {
	if s.Mode != ModePlaying {
		return
	}
	b := s.Boss
	if b == nil || !b.Alive {
		return
	}
	if !s.Player.Bounds().Intersects(b.Bounds()) {
		return
	}
	// An invulnerable boss is inert on both sides of the exchange.
	if b.Invuln.Active() {
		return
	}
	if s.stompedFrom(b.Y) {
		b.Health--
		b.Invuln = NewCountdown(s.cfg.BossInvulnTicks)
		s.Player.VY = s.cfg.StompBounce
		if b.Health <= 0 {
			b.Alive = false
			s.addScore(s.cfg.BossScore)
			s.spawnBurst(b.X+1, b.Y+1)
			s.setMode(ModeClear)
			return
		}
		s.enrageBoss(b)
		return
	}
	s.damagePlayer(damageContact)
}

// enrageBoss rescales speed and fire rate from health lost. The scale is
// recomputed from scratch each hit, so restores land on the same numbers.
func (s *State) enrageBoss(b *Boss) {
	hits := b.MaxHealth - b.Health
	scale := 1 + s.cfg.BossEnrage*float64(hits)
	dir := 1.0
	if b.VX < 0 {
		dir = -1
	}
	b.VX = dir * s.cfg.BossSpeed * scale
	interval := int(float64(s.cfg.BossFireTicks) / scale)
	if interval < 1 {
		interval = 1
	}
	b.FireInterval = interval
}

func (s *State) playerFireballCollisions() {
	if s.Mode != ModePlaying {
		return
	}
	pb := s.Player.Bounds()
	for i := range s.Fireballs {
		f := &s.Fireballs[i]
		if !f.Alive || !pb.Intersects(f.Bounds()) {
			continue
		}
		// Never a stomp. The projectile burns out only when the hit
		// lands; an invulnerable player walks through it.
		if s.damagePlayer(damageContact) {
			f.Alive = false
		}
		if s.Mode != ModePlaying {
			return
		}
	}
}

func (s *State) playerItemCollisions() {
	if s.Mode != ModePlaying {
		return
	}
	pb := s.Player.Bounds()
	for i := range s.Items {
		it := &s.Items[i]
		if !it.Alive || !pb.Intersects(it.Bounds()) {
			continue
		}
		p := &s.Player
		if p.Size == SizeSmall {
			p.Size = SizeBig
			p.Y -= playerHeights[SizeBig] - playerHeights[SizeSmall]
			p.Invuln = NewCountdown(s.cfg.InvulnTicks)
		} else {
			s.addScore(s.cfg.ItemScore)
		}
		it.Alive = false
	}
}

// resolveHeadBumps converts bumped question blocks and releases their
// item one tile above. Bumps against every other tile kind are inert.
func (s *State) resolveHeadBumps() {
	if s.Mode != ModePlaying {
		s.bumps = s.bumps[:0]
		return
	}
	for _, b := range s.bumps {
		if s.Level.TileAt(b.X, b.Y) != TileQuestion {
			continue
		}
		s.Level.SetTile(b.X, b.Y, TileUsed)
		dir := FacingRight
		if s.rng.Intn(2) == 1 {
			dir = FacingLeft
		}
		s.Items = append(s.Items, Item{
			X:     float64(b.X),
			Y:     float64(b.Y) - 1,
			VX:    float64(dir) * s.cfg.ItemSpeed,
			Alive: true,
		})
	}
	s.bumps = s.bumps[:0]
}

func (s *State) collectCoins() {
	if s.Mode != ModePlaying {
		return
	}
	overlappedTiles(s.Level, s.Player.Bounds(), func(tx, ty int, t Tile) bool {
		if t == TileCoin {
			s.Level.SetTile(tx, ty, TileEmpty)
			s.Coins++
			s.addScore(s.cfg.CoinScore)
			s.spawnBurst(float64(tx)+0.5, float64(ty)+0.5)
		}
		return true
	})
}

func (s *State) checkHazards() {
	if s.Mode != ModePlaying {
		return
	}
	hit := false
	overlappedTiles(s.Level, s.Player.Bounds(), func(tx, ty int, t Tile) bool {
		if t.Hazard() {
			hit = true
			return false
		}
		return true
	})
	if hit {
		s.damagePlayer(damageContact)
	}
}

func (s *State) checkPitFall() {
	if s.Mode != ModePlaying {
		return
	}
	if s.Player.Y > float64(s.Level.Height) {
		s.damagePlayer(damageFall)
	}
}

// checkFlagContact ends the level when the player touches the flag. The
// bonus scales with how high on the contiguous flag run the touch landed,
// plus points for every second left on the clock.
func (s *State) checkFlagContact() {
	if s.Mode != ModePlaying {
		return
	}
	found := false
	var fx, fy int
	overlappedTiles(s.Level, s.Player.Bounds(), func(tx, ty int, t Tile) bool {
		if t.Goal() {
			found = true
			fx, fy = tx, ty
			return false
		}
		return true
	})
	if !found {
		return
	}

	top := fy
	for s.Level.TileAt(fx, top-1).Goal() {
		top--
	}
	bottom := fy
	for s.Level.TileAt(fx, bottom+1).Goal() {
		bottom++
	}
	frac := 1.0
	if bottom > top {
		frac = float64(bottom-fy) / float64(bottom-top)
	}
	bonus := s.cfg.FlagBonusMin + int(frac*float64(s.cfg.FlagBonusMax-s.cfg.FlagBonusMin))
	bonus += s.cfg.TimeBonus * s.TimeSeconds()
	s.addScore(bonus)

	s.Player.VX = 0
	s.Player.VY = 0
	s.setMode(ModeClear)
}
