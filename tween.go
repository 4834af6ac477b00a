package main

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Action ties a running tween to the game loop: onChange applies each
// update's value, onFinish fires once at completion, nexts queue follow-up
// tweens.
type Action struct {
	onChange func(float32)
	onFinish []func()
	nexts    []func(g *Game)
}

// updateTweens drains one frame of tween time; finished tweens fire their
// callbacks and queued successors, then drop out of the map.
func (g *Game) updateTweens(dt float32) {
	for t, a := range g.Tweens {
		curr, finished := t.Update(dt)
		if a.onChange != nil {
			a.onChange(curr)
		}
		if finished {
			for _, onFinish := range a.onFinish {
				onFinish()
			}
			for _, next := range a.nexts {
				next(g)
			}
			delete(g.Tweens, t)
		}
	}
}

// fade eases *target to the given value over d seconds.
func (g *Game) fade(target *float64, to float32, d float32, onFinish ...func()) {
	t := gween.New(float32(*target), to, d, ease.OutQuad)
	g.Tweens[t] = Action{
		onChange: func(v float32) { *target = float64(v) },
		onFinish: onFinish,
	}
}

// pulse bounces *target between two values until stopPulse.
func (g *Game) pulse(target *float64, from, to float32, d float32) {
	g.pulseTween = gween.New(from, to, d, ease.InOutQuad)
	g.Tweens[g.pulseTween] = Action{
		onChange: func(v float32) { *target = float64(v) },
		nexts: []func(g *Game){func(g *Game) {
			g.pulse(target, to, from, d)
		}},
	}
}

func (g *Game) stopPulse() {
	if g.pulseTween != nil {
		delete(g.Tweens, g.pulseTween)
		g.pulseTween = nil
	}
}
