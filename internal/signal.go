package internal

// Signal is a plain mutable reactive cell holding an any-typed value.
type Signal struct {
	value   any
	version int64

	subsHead, subsTail *Node
	scratch            *Node // current_node scratch slot, valid only during one consumer's prepare/cleanup bracket

	equal func(a, b any) bool
}

func NewSignal(initial any, equal func(a, b any) bool) *Signal {
	return &Signal{value: initial, equal: equal}
}

func (s *Signal) Version() int64 { return s.version }

func (s *Signal) refresh(e *Engine) bool { return true }

func (s *Signal) currentNode() *Node     { return s.scratch }
func (s *Signal) setCurrentNode(n *Node) { s.scratch = n }

func (s *Signal) subscribe(n *Node)   { attachSub(&s.subsHead, &s.subsTail, n) }
func (s *Signal) unsubscribe(n *Node) { detachSub(&s.subsHead, &s.subsTail, n) }

// Read returns the value, registering a dependency edge if a consumer
// context is active.
func (s *Signal) Read(e *Engine) any {
	node := trackRead(e, s)
	if node != nil {
		node.version = s.version
	}
	return s.value
}

// Peek returns the value without touching the context.
func (s *Signal) Peek() any { return s.value }

// Write stores v, bumping the version and notifying subscribers, unless
// v equals the existing value under the configured equality.
func (s *Signal) Write(e *Engine, v any) error {
	if _, isComputed := e.activeConsumer.(*Computed); isComputed {
		return violation(ErrMutationInComputed)
	}

	if valuesEqual(s.value, v, s.equal) {
		return nil
	}

	if e.batchIteration > MaxBatchIterations {
		return violation(ErrCycleDetected)
	}

	s.value = v
	s.version++

	e.startBatch()
	for n := s.subsHead; n != nil; n = n.nextSub {
		n.target.notify(e)
	}
	e.endBatch()

	return nil
}
