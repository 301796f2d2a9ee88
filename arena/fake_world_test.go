package arena

type fakeBody struct {
	spec     BodySpec
	velocity Vec
	static   bool
	unfrozen int
}

func (b *fakeBody) Role() Role { return b.spec.Role }
func (b *fakeBody) Position() Vec { return Vec{X: b.spec.X, Y: b.spec.Y} }
func (b *fakeBody) Angle() float64 { return 0 }
func (b *fakeBody) Velocity() Vec { return b.velocity }
func (b *fakeBody) SetVelocity(v Vec) { b.velocity = v }
func (b *fakeBody) Static() bool { return b.static }
func (b *fakeBody) SetStatic(s bool) {
	if b.static && !s {
		b.unfrozen++
	}
	b.static = s
}

// fakeWorld records what the game asks of the physics collaborator.
type fakeWorld struct {
	added      []*fakeBody
	gravity    Vec
	gravitySet int
	handlers   []func(a, b Body)
}

func (w *fakeWorld) NewBody(spec BodySpec) Body {
	return &fakeBody{spec: spec, static: spec.Static}
}

func (w *fakeWorld) Add(bodies ...Body) {
	for _, b := range bodies {
		w.added = append(w.added, b.(*fakeBody))
	}
}

func (w *fakeWorld) SetGravity(g Vec) {
	w.gravity = g
	w.gravitySet++
}

func (w *fakeWorld) OnCollisionStart(handler func(a, b Body)) {
	w.handlers = append(w.handlers, handler)
}

func (w *fakeWorld) collide(a, b Body) {
	for _, h := range w.handlers {
		h(a, b)
	}
}

type fakePresenter struct {
	shown int
}

func (p *fakePresenter) ShowWin() { p.shown++ }
