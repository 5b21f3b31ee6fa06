package internal

// trackRead implements add_dependency: called on every tracked read. ctx
// is the active consumer; if none is active, tracking is a no-op.
func trackRead(e *Engine, source Source) *Node {
	ctx := e.activeConsumer
	if ctx == nil {
		return nil
	}

	node := source.currentNode()

	switch {
	case node == nil || node.target != ctx:
		prev := source.currentNode()
		n := &Node{version: 0, source: source, target: ctx, rollback: prev}
		appendDep(ctx, n)
		source.setCurrentNode(n)
		if ctx.flags().Has(FlagTracking) {
			source.subscribe(n)
		}
		return n

	case node.version == -1:
		node.version = 0
		if ctx.depsTail() != node {
			unlinkDep(ctx, node)
			appendDep(ctx, node)
		}
		return node

	default:
		return node
	}
}

// prepareSources primes a consumer's dependency list before a compute
// pass so that reads during the pass can reuse existing nodes.
func prepareSources(target Target) {
	for n := target.depsHead(); n != nil; n = n.nextDep {
		n.rollback = n.source.currentNode()
		n.source.setCurrentNode(n)
		n.version = -1
	}
}

// cleanupSources walks the dependency list backwards from the tail,
// dropping any node not reconfirmed during the pass just finished (its
// source was not read this run) and restoring each source's scratch
// slot from rollback.
func cleanupSources(target Target) {
	var head, tail *Node

	for n, prev := target.depsTail(), (*Node)(nil); n != nil; n = prev {
		prev = n.prevDep

		if n.version == -1 {
			n.source.unsubscribe(n)
		} else {
			n.nextDep = head
			if head != nil {
				head.prevDep = n
			}
			head = n
			if tail == nil {
				tail = n
			}
		}

		n.source.setCurrentNode(n.rollback)
		n.rollback = nil
	}

	if head != nil {
		head.prevDep = nil
	}
	target.setDeps(head, tail)
}

// needsRecompute walks target's dependency list looking for the first
// source whose version drifted, either before or after refreshing it.
// Terminating at the first change is what makes recomputation
// glitch-free: only the first actually-changed dependency in read order
// triggers it.
func needsRecompute(e *Engine, target Target) bool {
	for n := target.depsHead(); n != nil; n = n.nextDep {
		if n.source.Version() != n.version {
			return true
		}
		if !n.source.refresh(e) {
			return true
		}
		if n.source.Version() != n.version {
			return true
		}
	}
	return false
}

// runCompute invokes fn, capturing an ordinary panic as a user error.
// Engine-detected violations (cycle, mutation-in-computed) are
// re-panicked unchanged rather than captured, per the propagation
// policy: those two kinds always bubble unchanged.
func runCompute(fn func() any) (value any, err error) {
	defer func() {
		if r := recover(); r != nil {
			if ee, ok := r.(*EngineError); ok && isViolation(ee.Cause) {
				panic(r)
			}
			err = normalizePanic(r)
		}
	}()
	value = fn()
	return value, nil
}

func valuesEqual(a, b any, equal func(a, b any) bool) bool {
	if equal != nil {
		return equal(a, b)
	}
	return a == b
}
