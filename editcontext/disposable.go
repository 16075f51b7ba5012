package editcontext

// Disposable releases a resource. Dispose must be safe to call more than once.
type Disposable interface {
	Dispose()
}

// DisposableFunc adapts a func to Disposable.
type DisposableFunc func()

func (f DisposableFunc) Dispose() {
	if f != nil {
		f()
	}
}

// DisposableGroup disposes its members in reverse registration order.
type DisposableGroup struct {
	items    []Disposable
	disposed bool
}

// Add registers d. Adding to a disposed group disposes d immediately.
func (g *DisposableGroup) Add(d Disposable) {
	if d == nil {
		return
	}
	if g.disposed {
		d.Dispose()
		return
	}
	g.items = append(g.items, d)
}

func (g *DisposableGroup) Len() int { return len(g.items) }

func (g *DisposableGroup) IsDisposed() bool { return g.disposed }

func (g *DisposableGroup) Dispose() {
	if g.disposed {
		return
	}
	g.disposed = true
	for i := len(g.items) - 1; i >= 0; i-- {
		g.items[i].Dispose()
	}
	g.items = nil
}
