package core_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/randalmurphal/multicore/pkg/multicore"
	"github.com/randalmurphal/multicore/pkg/multicore/core"
	"github.com/randalmurphal/multicore/pkg/multicore/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestKernel returns a quiet kernel and a key bound to a mock facade.
func newTestKernel(t *testing.T, opts ...core.Option) (*core.Kernel, multicore.Key) {
	t.Helper()
	ctrl := gomock.NewController(t)
	key := multicore.NewKey("core-1", mocks.NewMockFacade(ctrl))
	opts = append([]core.Option{core.WithLogger(discardLogger())}, opts...)
	return core.NewKernel(opts...), key
}

type commandRecord struct {
	command string
	kind    string
	panics  bool
}

// recordingMetrics captures what the kernel reports.
type recordingMetrics struct {
	mu            sync.Mutex
	notifications []string
	observers     []int
	commands      []commandRecord
	registrations []commandRecord
}

func (r *recordingMetrics) RecordNotification(_ context.Context, _, name string, observers int, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications = append(r.notifications, name)
	r.observers = append(r.observers, observers)
}

func (r *recordingMetrics) RecordCommandExecution(_ context.Context, _, name string, _ time.Duration, panicked bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.commands = append(r.commands, commandRecord{command: name, panics: panicked})
}

func (r *recordingMetrics) RecordRegistration(_ context.Context, _, kind, op string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.registrations = append(r.registrations, commandRecord{command: op, kind: kind})
}

// testCommand records every instance created and every Execute call.
type testCommand struct {
	multicore.Notifier
	executed []*multicore.Notification
	onExec   func(c *testCommand, n *multicore.Notification)
}

func (c *testCommand) Execute(n *multicore.Notification) {
	c.executed = append(c.executed, n)
	if c.onExec != nil {
		c.onExec(c, n)
	}
}
