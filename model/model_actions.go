package model

// Advance steps the ball along its path by one tick. Progress past 1.0
// carries over into the next segment; past the last segment the ball
// snaps to its rest point and lands. No-op once landed.
func (b *Ball) Advance() {
	if b.Landed {
		return
	}
	b.T += b.Speed
	if b.T >= 1 {
		b.T -= 1
		b.Segment++
		if b.Segment >= len(b.Path)-1 {
			b.Landed = true
			last := b.Path[len(b.Path)-1]
			b.X, b.Y = last.X, last.Y
			return
		}
	}
	p0 := b.Path[b.Segment]
	p1 := b.Path[b.Segment+1]
	e := smoothstep(b.T)
	b.X = p0.X + (p1.X-p0.X)*e
	b.Y = p0.Y + (p1.Y-p0.Y)*e
}

// smoothstep eases segment timing; the path itself stays piecewise linear.
func smoothstep(t float64) float64 {
	return t * t * (3 - 2*t)
}
