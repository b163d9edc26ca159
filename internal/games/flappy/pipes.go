package flappy

import "github.com/vovakirdan/toybox/internal/entity"

// pipe is a pair of columns with a gap between them. The body spans the
// whole column; the gap is carved out by boxes.
type pipe struct {
	entity.Body
	gapY   int  // Top row of the gap
	gap    int  // Gap height in rows
	passed bool // Whether the bird has cleared this pipe
}

// boxes returns the collision boxes of the top and bottom sections.
func (p *pipe) boxes(floor float64) (top, bottom entity.Box) {
	top = entity.Box{X: p.Pos.X, Y: 0, W: p.W, H: float64(p.gapY)}
	by := float64(p.gapY + p.gap)
	bottom = entity.Box{X: p.Pos.X, Y: by, W: p.W, H: max(floor-by, 0)}
	return top, bottom
}

func (g *Game) speed() float64 {
	return g.diff.Speed(g.cfg.Physics.BaseSpeed, g.score, g.tick)
}

// movePipes scrolls pipes left, scores the ones the bird has cleared and
// drops the ones that left the screen.
func (g *Game) movePipes() {
	speed := g.speed()
	for _, p := range g.pipes.All() {
		p.Speed = speed
		entity.Step(&p.Body, 1)
		if !p.passed && p.Box().Right() < g.bird.Pos.X {
			p.passed = true
			g.score++
		}
	}
	g.pipes.RemoveFunc(func(_ entity.ID, p *pipe) bool {
		return p.Box().Right() < 0
	})
}

// spawnPipe adds a pipe at the right edge with a random gap.
func (g *Game) spawnPipe() {
	oc := g.cfg.Obstacles
	gap := oc.MinGapSize
	if oc.MaxGapSize > oc.MinGapSize {
		gap += g.rng.Intn(oc.MaxGapSize - oc.MinGapSize + 1)
	}
	gap = g.diff.Gap(gap, g.score, g.tick)

	lo := oc.TopMargin
	hi := int(g.floor) - oc.BottomMargin - gap
	gapY := lo
	if hi > lo {
		gapY += g.rng.Intn(hi - lo + 1)
	}

	g.pipes.Add(pipe{
		Body: entity.Body{
			Pos: entity.V(g.width, 0),
			Dir: entity.V(-1, 0),
			W:   float64(oc.PipeWidth),
			H:   g.floor,
		},
		gapY: gapY,
		gap:  gap,
	})
}
