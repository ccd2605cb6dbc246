package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/sync/errgroup"

	"github.com/randalmurphal/multicore/pkg/multicore"
	"github.com/randalmurphal/multicore/pkg/multicore/core"
	"github.com/randalmurphal/multicore/pkg/multicore/mocks"
	"github.com/randalmurphal/multicore/pkg/multicore/observability"
)

func TestView_NotifyInRegistrationOrder(t *testing.T) {
	k, key := newTestKernel(t)
	view := k.View(key)

	var mu sync.Mutex
	var calls []string
	record := func(label string) multicore.NotifyFunc {
		return func(*multicore.Notification) {
			mu.Lock()
			defer mu.Unlock()
			calls = append(calls, label)
		}
	}
	for _, label := range []string{"H1", "H2", "H3"} {
		view.RegisterObserver("E", multicore.NewObserver(record(label), label))
	}

	view.NotifyObservers(multicore.NewNotification("E", nil, ""))
	assert.Equal(t, []string{"H1", "H2", "H3"}, calls)

	// Same order when published from another goroutine.
	calls = nil
	var g errgroup.Group
	g.Go(func() error {
		view.NotifyObservers(multicore.NewNotification("E", nil, ""))
		return nil
	})
	require.NoError(t, g.Wait())
	assert.Equal(t, []string{"H1", "H2", "H3"}, calls)
}

func TestView_NotifyUnknownName(t *testing.T) {
	metrics := &recordingMetrics{}
	k, key := newTestKernel(t, core.WithMetrics(metrics))

	assert.NotPanics(t, func() {
		k.View(key).NotifyObservers(multicore.NewNotification("NOBODY", nil, ""))
		k.View(key).NotifyObservers(nil)
	})
	assert.Equal(t, []string{"NOBODY"}, metrics.notifications)
	assert.Equal(t, []int{0}, metrics.observers)
}

func TestView_ObserversIsSnapshot(t *testing.T) {
	k, key := newTestKernel(t)
	view := k.View(key)

	a, b := new(int), new(int)
	view.RegisterObserver("E", multicore.NewObserver(func(*multicore.Notification) {}, a))

	snapshot := view.Observers("E")
	view.RegisterObserver("E", multicore.NewObserver(func(*multicore.Notification) {}, b))
	view.RemoveObserver("E", a)

	require.Len(t, snapshot, 1)
	assert.Same(t, a, snapshot[0].NotifyContext())
	require.Len(t, view.Observers("E"), 1)
	assert.Same(t, b, view.Observers("E")[0].NotifyContext())
	assert.Empty(t, view.Observers("MISSING"))
}

func TestView_UnsubscribeDuringDispatch(t *testing.T) {
	k, key := newTestKernel(t)
	view := k.View(key)

	var calls []string
	self := new(int)
	view.RegisterObserver("E", multicore.NewObserver(func(*multicore.Notification) {
		calls = append(calls, "self")
		view.RemoveObserver("E", self)
	}, self))
	view.RegisterObserver("E", multicore.NewObserver(func(*multicore.Notification) {
		calls = append(calls, "second")
	}, new(int)))
	view.RegisterObserver("E", multicore.NewObserver(func(*multicore.Notification) {
		calls = append(calls, "third")
	}, new(int)))

	view.NotifyObservers(multicore.NewNotification("E", nil, ""))
	assert.Equal(t, []string{"self", "second", "third"}, calls)

	calls = nil
	view.NotifyObservers(multicore.NewNotification("E", nil, ""))
	assert.Equal(t, []string{"second", "third"}, calls)
}

func TestView_SubscribeDuringDispatch(t *testing.T) {
	k, key := newTestKernel(t)
	view := k.View(key)

	late := 0
	added := false
	view.RegisterObserver("E", multicore.NewObserver(func(*multicore.Notification) {
		if added {
			return
		}
		added = true
		view.RegisterObserver("E", multicore.NewObserver(func(*multicore.Notification) {
			late++
		}, new(int)))
	}, new(int)))

	view.NotifyObservers(multicore.NewNotification("E", nil, ""))
	assert.Equal(t, 0, late, "observer added mid-dispatch waits for the next publish")

	view.NotifyObservers(multicore.NewNotification("E", nil, ""))
	assert.Equal(t, 1, late)
}

func TestView_RemoveObserver(t *testing.T) {
	k, key := newTestKernel(t)
	view := k.View(key)

	a, b := new(int), new(int)
	view.RegisterObserver("E", multicore.NewObserver(func(*multicore.Notification) {}, a))
	view.RegisterObserver("E", multicore.NewObserver(func(*multicore.Notification) {}, b))

	t.Run("unknown context is ignored", func(t *testing.T) {
		view.RemoveObserver("E", new(int))
		assert.Len(t, view.Observers("E"), 2)
	})

	t.Run("unknown name is ignored", func(t *testing.T) {
		assert.NotPanics(t, func() { view.RemoveObserver("MISSING", a) })
		assert.False(t, view.HasObservers("MISSING"))
	})

	t.Run("emptied list is dropped", func(t *testing.T) {
		view.RemoveObserver("E", a)
		assert.True(t, view.HasObservers("E"))
		view.RemoveObserver("E", b)
		assert.False(t, view.HasObservers("E"))
		assert.Nil(t, view.Observers("E"))
	})
}

func TestView_ObserverPanicPropagates(t *testing.T) {
	k, key := newTestKernel(t)
	view := k.View(key)

	view.RegisterObserver("E", multicore.NewObserver(func(*multicore.Notification) {
		panic("observer failed")
	}, new(int)))

	assert.PanicsWithValue(t, "observer failed", func() {
		view.NotifyObservers(multicore.NewNotification("E", nil, ""))
	})
}

func expectMediator(m *mocks.MockMediator, name string, interests ...string) {
	m.EXPECT().Name().Return(name).AnyTimes()
	m.EXPECT().Interests().Return(interests).AnyTimes()
}

func TestView_RegisterMediator(t *testing.T) {
	metrics := &recordingMetrics{}
	k, key := newTestKernel(t, core.WithMetrics(metrics))
	view := k.View(key)

	ctrl := gomock.NewController(t)
	m := mocks.NewMockMediator(ctrl)
	expectMediator(m, "Panel", "A", "B")

	gomock.InOrder(
		m.EXPECT().Bind(key),
		m.EXPECT().OnRegister(),
	)

	view.RegisterMediator(m)

	got, ok := view.RetrieveMediator("Panel")
	require.True(t, ok)
	assert.Same(t, m, got)
	assert.True(t, view.HasMediator("Panel"))

	obsA := view.Observers("A")
	obsB := view.Observers("B")
	require.Len(t, obsA, 1)
	require.Len(t, obsB, 1)
	assert.Same(t, obsA[0], obsB[0], "one observer shared across interests")
	assert.True(t, obsA[0].CompareNotifyContext(m))

	n := multicore.NewNotification("B", "payload", "")
	m.EXPECT().HandleNotification(n)
	view.NotifyObservers(n)

	assert.Equal(t, []commandRecord{{command: observability.OpRegister, kind: observability.KindMediator}}, metrics.registrations)
}

func TestView_RegisterMediatorTwiceIsIgnored(t *testing.T) {
	k, key := newTestKernel(t)
	view := k.View(key)

	ctrl := gomock.NewController(t)
	first := mocks.NewMockMediator(ctrl)
	expectMediator(first, "M", "A", "B")
	first.EXPECT().Bind(key).Times(1)
	first.EXPECT().OnRegister().Times(1)

	second := mocks.NewMockMediator(ctrl)
	second.EXPECT().Name().Return("M").AnyTimes()

	view.RegisterMediator(first)
	view.RegisterMediator(first)
	view.RegisterMediator(second)

	assert.Len(t, view.Observers("A"), 1)
	assert.Len(t, view.Observers("B"), 1)
	got, _ := view.RetrieveMediator("M")
	assert.Same(t, first, got)
}

func TestView_RegisterMediatorWithoutInterests(t *testing.T) {
	k, key := newTestKernel(t)
	view := k.View(key)

	ctrl := gomock.NewController(t)
	m := mocks.NewMockMediator(ctrl)
	expectMediator(m, "Quiet")
	m.EXPECT().Bind(key)
	m.EXPECT().OnRegister()

	view.RegisterMediator(m)
	assert.True(t, view.HasMediator("Quiet"))

	m.EXPECT().OnRemove()
	_, ok := view.RemoveMediator("Quiet")
	assert.True(t, ok)
}

func TestView_RemoveMediator(t *testing.T) {
	k, key := newTestKernel(t)
	view := k.View(key)

	ctrl := gomock.NewController(t)
	m := mocks.NewMockMediator(ctrl)
	expectMediator(m, "Panel", "A", "B")
	m.EXPECT().Bind(key)
	m.EXPECT().OnRegister()

	other := new(int)
	view.RegisterObserver("A", multicore.NewObserver(func(*multicore.Notification) {}, other))
	view.RegisterMediator(m)

	m.EXPECT().OnRemove().Do(func() {
		assert.False(t, view.HasMediator("Panel"), "removed before OnRemove")
	}).Times(1)

	removed, ok := view.RemoveMediator("Panel")
	require.True(t, ok)
	assert.Same(t, m, removed)
	assert.False(t, view.HasObservers("B"))
	require.Len(t, view.Observers("A"), 1)
	assert.Same(t, other, view.Observers("A")[0].NotifyContext())

	removed, ok = view.RemoveMediator("Panel")
	assert.False(t, ok)
	assert.Nil(t, removed)
}

func TestView_ConcurrentRemoveMediatorRunsHookOnce(t *testing.T) {
	k, key := newTestKernel(t)
	view := k.View(key)

	ctrl := gomock.NewController(t)
	m := mocks.NewMockMediator(ctrl)
	expectMediator(m, "Panel", "A")
	m.EXPECT().Bind(gomock.Any())
	m.EXPECT().OnRegister()
	m.EXPECT().OnRemove().Times(1)

	view.RegisterMediator(m)

	var g errgroup.Group
	for range 16 {
		g.Go(func() error {
			view.RemoveMediator("Panel")
			return nil
		})
	}
	require.NoError(t, g.Wait())
	assert.False(t, view.HasMediator("Panel"))
	assert.False(t, view.HasObservers("A"))
}

func TestView_StaleRemoveMediatorKeepsReplacement(t *testing.T) {
	k, key := newTestKernel(t)
	view := k.View(key)

	ctrl := gomock.NewController(t)
	first := mocks.NewMockMediator(ctrl)
	first.EXPECT().Name().Return("Panel").AnyTimes()
	first.EXPECT().Bind(gomock.Any())
	first.EXPECT().OnRegister()
	first.EXPECT().OnRemove().Times(1)

	entered := make(chan struct{})
	release := make(chan struct{})
	gomock.InOrder(
		first.EXPECT().Interests().Return([]string{"A"}),
		first.EXPECT().Interests().DoAndReturn(func() []string {
			close(entered)
			<-release
			return []string{"A"}
		}),
		first.EXPECT().Interests().Return([]string{"A"}),
	)

	view.RegisterMediator(first)

	staleDone := make(chan bool)
	go func() {
		_, ok := view.RemoveMediator("Panel")
		staleDone <- ok
	}()
	<-entered

	removed, ok := view.RemoveMediator("Panel")
	require.True(t, ok)
	assert.Same(t, first, removed)

	second := mocks.NewMockMediator(ctrl)
	expectMediator(second, "Panel", "A")
	second.EXPECT().Bind(key)
	second.EXPECT().OnRegister()
	second.EXPECT().HandleNotification(gomock.Any()).Times(1)
	view.RegisterMediator(second)

	close(release)
	assert.False(t, <-staleDone, "stale remover must not delete the replacement")

	got, ok := view.RetrieveMediator("Panel")
	require.True(t, ok)
	assert.Same(t, second, got)

	observers := view.Observers("A")
	require.Len(t, observers, 1)
	assert.Same(t, second, observers[0].NotifyContext())

	view.NotifyObservers(multicore.NewNotification("A", nil, ""))
}

func TestView_MediatorNames(t *testing.T) {
	k, key := newTestKernel(t)
	view := k.View(key)
	assert.Empty(t, view.MediatorNames())

	ctrl := gomock.NewController(t)
	for _, name := range []string{"Toolbar", "Editor"} {
		m := mocks.NewMockMediator(ctrl)
		expectMediator(m, name)
		m.EXPECT().Bind(key)
		m.EXPECT().OnRegister()
		view.RegisterMediator(m)
	}

	assert.Equal(t, []string{"Editor", "Toolbar"}, view.MediatorNames())
}
