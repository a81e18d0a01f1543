package operator

import (
	"context"
	"sync"

	"github.com/flowfox-labs/finance-server/internal/operator/actions"
	"github.com/flowfox-labs/finance-server/internal/storage"
)

// OperatorDelegator manages the queue, starts/stops the Operator, and
// enqueues items. Exactly one worker drains the queue: the store offers no
// isolation between concurrent read-modify-write cycles, so serializing them
// here is what makes every mutation an atomic replace-collection operation.
type OperatorDelegator struct {
	storage  *storage.Storage
	queue    chan ActionItem
	wg       sync.WaitGroup
	stopOnce sync.Once
}

func NewOperatorDelegator(s *storage.Storage) *OperatorDelegator {
	return &OperatorDelegator{
		storage: s,
		queue:   make(chan ActionItem, 1000),
	}
}

func (d *OperatorDelegator) Start() {
	d.wg.Add(1)
	op := NewOperator(d.storage, d.queue)
	go func() {
		defer d.wg.Done()
		op.Run()
	}()
}

func (d *OperatorDelegator) Stop() {
	d.stopOnce.Do(func() {
		close(d.queue)
		d.wg.Wait()
	})
}

// Process enqueues the action and waits for it to complete or for the
// context to be cancelled.
func (d *OperatorDelegator) Process(ctx context.Context, action actions.IAction) error {
	respCh := make(chan ActionItemResponse, 1)
	item := ActionItem{
		ctx:      ctx,
		action:   action,
		response: respCh,
	}

	d.queue <- item

	select {
	case resp := <-respCh:
		return resp.err
	case <-ctx.Done():
		return ctx.Err()
	}
}
