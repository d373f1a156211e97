package core

// updateCamera keeps the player inside the dead-zone: a margin on each
// side of the viewport, sized as a fraction of its width, within which the
// player moves without scrolling. Only crossing the margin repositions the
// offset, which kills the constant re-centering jitter a locked camera
// would produce. The offset stays clamped to the level.
func (s *State) updateCamera() {
	vw := float64(s.cfg.ViewportWidth)
	margin := vw * s.cfg.DeadZone
	px := s.Player.X

	if px > s.Camera+vw-margin {
		s.Camera = px - (vw - margin)
	}
	if px < s.Camera+margin {
		s.Camera = px - margin
	}

	max := float64(s.Level.Width) - vw
	if s.Camera > max {
		s.Camera = max
	}
	if s.Camera < 0 {
		s.Camera = 0
	}
}

// centerCamera jumps the camera so the player sits mid-viewport, clamped
// to the level. Used on spawn and after a snapshot restore, where a pan
// from the old offset would be wrong.
func (s *State) centerCamera() {
	vw := float64(s.cfg.ViewportWidth)
	s.Camera = s.Player.X - vw/2
	max := float64(s.Level.Width) - vw
	if s.Camera > max {
		s.Camera = max
	}
	if s.Camera < 0 {
		s.Camera = 0
	}
}
