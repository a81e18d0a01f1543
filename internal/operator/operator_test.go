package operator

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/flowfox-labs/finance-server/internal/config"
	"github.com/flowfox-labs/finance-server/internal/operator/actions"
	"github.com/flowfox-labs/finance-server/internal/storage"
)

// countingAction records how many actions ran before it and whether another
// Perform was in flight at the same time.
type countingAction struct {
	mu         *sync.Mutex
	inFlight   *int
	overlapped *bool
	err        error
	actions.IAction
}

func (a *countingAction) Perform(ctx context.Context, store *storage.Storage) error {
	a.mu.Lock()
	*a.inFlight++
	if *a.inFlight > 1 {
		*a.overlapped = true
	}
	a.mu.Unlock()

	a.mu.Lock()
	*a.inFlight--
	a.mu.Unlock()

	return a.err
}

func newTestDelegator(t *testing.T) *OperatorDelegator {
	t.Helper()
	store, err := storage.NewStorage(&config.Config{DataDir: t.TempDir()})
	assert.NoError(t, err)
	d := NewOperatorDelegator(store)
	d.Start()
	t.Cleanup(d.Stop)
	return d
}

func TestProcess_ReturnsActionError(t *testing.T) {
	d := newTestDelegator(t)

	var mu sync.Mutex
	var inFlight int
	var overlapped bool

	err := d.Process(context.Background(), &countingAction{
		mu: &mu, inFlight: &inFlight, overlapped: &overlapped,
		err: errors.New("boom"),
	})
	assert.EqualError(t, err, "boom")
}

func TestProcess_SerializesActions(t *testing.T) {
	d := newTestDelegator(t)

	var mu sync.Mutex
	var inFlight int
	var overlapped bool

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := d.Process(context.Background(), &countingAction{
				mu: &mu, inFlight: &inFlight, overlapped: &overlapped,
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.False(t, overlapped)
}

func TestProcess_CancelledContext(t *testing.T) {
	d := newTestDelegator(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var mu sync.Mutex
	var inFlight int
	var overlapped bool

	err := d.Process(ctx, &countingAction{mu: &mu, inFlight: &inFlight, overlapped: &overlapped})
	// The action may still complete before cancellation is observed; either
	// way the call must return promptly.
	if err != nil {
		assert.ErrorIs(t, err, context.Canceled)
	}
}
