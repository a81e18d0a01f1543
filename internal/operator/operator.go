package operator

import (
	"context"

	"github.com/flowfox-labs/finance-server/internal/operator/actions"
	"github.com/flowfox-labs/finance-server/internal/storage"
)

// Operator is the worker that processes items from the queue. Each action's
// load → mutate → save cycle runs to completion before the next one starts,
// so store mutations never interleave within the process.
type Operator struct {
	storage *storage.Storage
	queue   chan ActionItem
}

func NewOperator(s *storage.Storage, queue chan ActionItem) *Operator {
	return &Operator{
		storage: s,
		queue:   queue,
	}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		o.processItem(item)
	}
}

func (o *Operator) processItem(item ActionItem) {
	err := item.action.Perform(item.ctx, o.storage)
	item.response <- ActionItemResponse{err: err}
}

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
}

type ActionItemResponse struct {
	err error
}
