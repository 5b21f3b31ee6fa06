package internal

// Node is the intrusive link record for one (consumer, source) edge. It
// sits in two doubly-linked lists at once: the source's subscriber list
// (prevSub/nextSub) and the consumer's dependency list (prevDep/nextDep).
type Node struct {
	version int64 // source.Version() at last successful read, or -1 ("reused, unconfirmed this run")

	source Source
	target Target

	prevSub, nextSub *Node
	prevDep, nextDep *Node

	rollback *Node // source.currentNode() before this node took the scratch slot
}

// Source is the capability set a consumer needs from whatever it reads:
// a Signal or a Computed, behind one closed interface. Modeled as a
// tagged variant, not open inheritance.
type Source interface {
	Version() int64
	refresh(e *Engine) bool
	subscribe(n *Node)
	unsubscribe(n *Node)
	currentNode() *Node
	setCurrentNode(n *Node)
}

// Target is the capability set the dependency machinery needs from a
// consumer: a Computed or an Effect.
type Target interface {
	flags() *Flags
	depsHead() *Node
	depsTail() *Node
	setDeps(head, tail *Node)
	notify(e *Engine)
}

// appendDep inserts n as the new tail of ctx's dependency list.
func appendDep(ctx Target, n *Node) {
	head, tail := ctx.depsHead(), ctx.depsTail()
	n.prevDep = tail
	n.nextDep = nil
	if tail == nil {
		head = n
	} else {
		tail.nextDep = n
	}
	ctx.setDeps(head, n)
}

// unlinkDep splices n out of ctx's dependency list only; its
// subscriber-list position, if any, is untouched.
func unlinkDep(ctx Target, n *Node) {
	head, tail := ctx.depsHead(), ctx.depsTail()

	if n.prevDep != nil {
		n.prevDep.nextDep = n.nextDep
	} else {
		head = n.nextDep
	}
	if n.nextDep != nil {
		n.nextDep.prevDep = n.prevDep
	} else {
		tail = n.prevDep
	}
	n.prevDep, n.nextDep = nil, nil
	ctx.setDeps(head, tail)
}

// attachSub inserts n into a source's subscriber list, guarding against
// double-insertion (preserves the subscriber-list insertion guard from
// the design this was ported from).
func attachSub(headp, tailp **Node, n *Node) {
	if n.prevSub != nil || *headp == n {
		return
	}
	tail := *tailp
	n.prevSub = tail
	n.nextSub = nil
	if tail == nil {
		*headp = n
	} else {
		tail.nextSub = n
	}
	*tailp = n
}

func detachSub(headp, tailp **Node, n *Node) {
	if n.prevSub != nil {
		n.prevSub.nextSub = n.nextSub
	} else if *headp == n {
		*headp = n.nextSub
	}
	if n.nextSub != nil {
		n.nextSub.prevSub = n.prevSub
	} else if *tailp == n {
		*tailp = n.prevSub
	}
	n.prevSub, n.nextSub = nil, nil
}
