package realtime

import "sync"

// View drži poslednji projektovani snapshot za jedan ekran: praznu kolekciju
// na početku i loading zastavicu. Svaka isporuka zamenjuje celu kolekciju,
// bez inkrementalnog krpljenja. Ako kanal tiho stane, loading ostaje true.
type View[T any] struct {
	source Source[T]

	mu      sync.Mutex
	scopeID string
	gen     int
	cancel  CancelFunc
	items   []T
	loading bool
	notify  func([]T)
}

func NewView[T any](source Source[T]) *View[T] {
	return &View[T]{source: source, loading: true}
}

// Notify postavlja opcioni push hook, pozvan posle svake isporuke.
func (v *View[T]) Notify(fn func([]T)) {
	v.mu.Lock()
	v.notify = fn
	v.mu.Unlock()
}

// Bind otvara tačno jedan kanal za dati scope. Prazan scope znači da
// identitet još nije poznat i vezivanje se preskače u celosti. Promena
// identiteta scope-a otkazuje stari kanal i otvara novi.
func (v *View[T]) Bind(scopeID string) error {
	if scopeID == "" {
		return nil
	}

	v.mu.Lock()
	if v.cancel != nil && v.scopeID == scopeID {
		v.mu.Unlock()
		return nil
	}
	if v.cancel != nil {
		v.cancel()
		v.cancel = nil
		v.items = nil
		v.loading = true
	}
	v.scopeID = scopeID
	v.gen++
	gen := v.gen
	v.mu.Unlock()

	cancel, err := v.source.Subscribe(scopeID, func(items []T) {
		v.deliver(gen, items)
	})
	if err != nil {
		return err
	}

	v.mu.Lock()
	if v.gen != gen {
		// Scope se promenio dok smo se pretplaćivali.
		v.mu.Unlock()
		cancel()
		return nil
	}
	v.cancel = cancel
	v.mu.Unlock()
	return nil
}

func (v *View[T]) deliver(gen int, items []T) {
	v.mu.Lock()
	if v.gen != gen {
		v.mu.Unlock()
		return
	}
	v.items = items
	v.loading = false
	fn := v.notify
	v.mu.Unlock()

	if fn != nil {
		fn(items)
	}
}

func (v *View[T]) Items() []T {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]T, len(v.items))
	copy(out, v.items)
	return out
}

func (v *View[T]) Loading() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.loading
}

// Close otkazuje kanal; poziva se na unmount ekrana.
func (v *View[T]) Close() {
	v.mu.Lock()
	cancel := v.cancel
	v.cancel = nil
	v.gen++
	v.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}
