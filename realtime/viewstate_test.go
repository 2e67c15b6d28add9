package realtime

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSource beleži pretplate i dozvoljava ručno guranje snapshota.
type fakeSource struct {
	mu         sync.Mutex
	subscribed []string
	cancelled  int
	onChange   func([]string)
	err        error
}

func (f *fakeSource) Subscribe(scopeID string, onChange func([]string)) (CancelFunc, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.subscribed = append(f.subscribed, scopeID)
	f.onChange = onChange
	return func() {
		f.mu.Lock()
		f.cancelled++
		f.mu.Unlock()
	}, nil
}

func (f *fakeSource) push(items []string) {
	f.mu.Lock()
	fn := f.onChange
	f.mu.Unlock()
	fn(items)
}

func (f *fakeSource) cancelCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cancelled
}

func TestViewStartsEmptyAndLoading(t *testing.T) {
	view := NewView[string](&fakeSource{})

	assert.True(t, view.Loading())
	assert.Empty(t, view.Items())
}

func TestViewBindEmptyScopeIsSkipped(t *testing.T) {
	source := &fakeSource{}
	view := NewView[string](source)

	require.NoError(t, view.Bind(""))

	assert.Empty(t, source.subscribed)
	assert.True(t, view.Loading())
}

func TestViewDeliveryReplacesWholeCollection(t *testing.T) {
	source := &fakeSource{}
	view := NewView[string](source)
	require.NoError(t, view.Bind("p1"))

	source.push([]string{"a", "b"})
	assert.False(t, view.Loading())
	assert.Equal(t, []string{"a", "b"}, view.Items())

	source.push([]string{"c"})
	assert.Equal(t, []string{"c"}, view.Items())
}

func TestViewRebindSameScopeIsNoop(t *testing.T) {
	source := &fakeSource{}
	view := NewView[string](source)

	require.NoError(t, view.Bind("p1"))
	require.NoError(t, view.Bind("p1"))

	assert.Equal(t, []string{"p1"}, source.subscribed)
	assert.Equal(t, 0, source.cancelCount())
}

func TestViewRebindNewScopeCancelsOldChannel(t *testing.T) {
	source := &fakeSource{}
	view := NewView[string](source)

	require.NoError(t, view.Bind("p1"))
	source.push([]string{"old"})

	require.NoError(t, view.Bind("p2"))

	assert.Equal(t, []string{"p1", "p2"}, source.subscribed)
	assert.Equal(t, 1, source.cancelCount())
	// Stanje starog scope-a se ne prenosi na novi.
	assert.True(t, view.Loading())
	assert.Empty(t, view.Items())
}

func TestViewStaleDeliveryAfterRebindIsDropped(t *testing.T) {
	source := &fakeSource{}
	view := NewView[string](source)

	require.NoError(t, view.Bind("p1"))
	stale := source.onChange

	require.NoError(t, view.Bind("p2"))
	stale([]string{"from-p1"})

	assert.True(t, view.Loading())
	assert.Empty(t, view.Items())
}

func TestViewNotifyHookFiresOnDelivery(t *testing.T) {
	source := &fakeSource{}
	view := NewView[string](source)

	var got [][]string
	view.Notify(func(items []string) {
		got = append(got, items)
	})

	require.NoError(t, view.Bind("p1"))
	source.push([]string{"a"})
	source.push([]string{"a", "b"})

	require.Len(t, got, 2)
	assert.Equal(t, []string{"a", "b"}, got[1])
}

func TestViewCloseCancelsAndIgnoresLateDeliveries(t *testing.T) {
	source := &fakeSource{}
	view := NewView[string](source)
	require.NoError(t, view.Bind("p1"))

	view.Close()
	assert.Equal(t, 1, source.cancelCount())

	source.push([]string{"late"})
	assert.Empty(t, view.Items())
}

func TestViewBindPropagatesSubscribeError(t *testing.T) {
	source := &fakeSource{err: ErrEmptyScope}
	view := NewView[string](source)

	assert.Error(t, view.Bind("p1"))
	assert.True(t, view.Loading())
}
