package internal

// uninitialized is the sentinel cached value before a Computed's first
// successful evaluation.
var uninitialized = new(struct{})

// Computed is a derived cell: is-a Signal to its own consumers, and a
// consumer of its own dependencies.
type Computed struct {
	value   any
	version int64

	subsHead, subsTail *Node // this computed's own subscribers
	scratch            *Node // current_node scratch slot when this computed is read as a source

	compute func() any
	equal   func(a, b any) bool

	depsH, depsT *Node // this computed's own dependencies
	flagbits     Flags
}

func NewComputed(compute func() any, equal func(a, b any) bool) *Computed {
	return &Computed{
		value:    uninitialized,
		compute:  compute,
		equal:    equal,
		flagbits: FlagOutdated,
	}
}

func (c *Computed) Version() int64 { return c.version }

func (c *Computed) currentNode() *Node     { return c.scratch }
func (c *Computed) setCurrentNode(n *Node) { c.scratch = n }

func (c *Computed) flags() *Flags      { return &c.flagbits }
func (c *Computed) depsHead() *Node    { return c.depsH }
func (c *Computed) depsTail() *Node    { return c.depsT }
func (c *Computed) setDeps(h, t *Node) { c.depsH, c.depsT = h, t }

// subscribe implements lazy subscription activation: gaining a first
// subscriber flips this computed from passive to tracking and
// subscribes it to its own sources.
func (c *Computed) subscribe(n *Node) {
	if c.subsHead == nil {
		c.flagbits.Set(FlagOutdated | FlagTracking)
		for d := c.depsH; d != nil; d = d.nextDep {
			d.source.subscribe(d)
		}
	}
	attachSub(&c.subsHead, &c.subsTail, n)
}

// unsubscribe implements lazy deactivation.
func (c *Computed) unsubscribe(n *Node) {
	detachSub(&c.subsHead, &c.subsTail, n)
	if c.subsHead == nil {
		c.flagbits.Clear(FlagTracking)
		for d := c.depsH; d != nil; d = d.nextDep {
			d.source.unsubscribe(d)
		}
	}
}

func (c *Computed) notify(e *Engine) {
	if !c.flagbits.Has(FlagNotified) {
		c.flagbits.Set(FlagOutdated | FlagNotified)
		for n := c.subsHead; n != nil; n = n.nextSub {
			n.target.notify(e)
		}
	}
}

// refresh implements _refresh. Returns false only to signal "cannot
// refresh, cycle".
func (c *Computed) refresh(e *Engine) bool {
	c.flagbits.Clear(FlagNotified)

	if c.flagbits.Has(FlagRunning) {
		return false
	}

	if c.flagbits.Has(FlagTracking) && !c.flagbits.Has(FlagOutdated) {
		return true
	}

	c.flagbits.Clear(FlagOutdated)

	c.flagbits.Set(FlagRunning)
	if c.version > 0 && !needsRecompute(e, c) {
		c.flagbits.Clear(FlagRunning)
		return true
	}

	prevConsumer := e.activeConsumer
	prepareSources(c)
	e.activeConsumer = c

	defer func() {
		e.activeConsumer = prevConsumer
		cleanupSources(c)
		c.flagbits.Clear(FlagRunning)
	}()

	newValue, err := runCompute(c.compute)

	if err != nil {
		c.value = err
		c.flagbits.Set(FlagHasError)
		c.version++
	} else if c.flagbits.Has(FlagHasError) || !valuesEqual(c.value, newValue, c.equal) || c.version == 0 {
		c.value = newValue
		c.flagbits.Clear(FlagHasError)
		c.version++
	}

	return true
}

// Read registers a dependency, refreshes if necessary, and returns the
// cached value (or re-raises the cached error).
func (c *Computed) Read(e *Engine) any {
	if c.flagbits.Has(FlagRunning) {
		panic(violation(ErrCycleDetected))
	}

	node := trackRead(e, c)

	if !c.refresh(e) {
		panic(violation(ErrCycleDetected))
	}

	if node != nil {
		node.version = c.version
	}

	if c.flagbits.Has(FlagHasError) {
		panic(c.value)
	}
	return c.value
}

// Peek returns the cached value (refreshing first) without touching the
// dependency context.
func (c *Computed) Peek(e *Engine) any {
	if !c.refresh(e) {
		panic(violation(ErrCycleDetected))
	}
	if c.flagbits.Has(FlagHasError) {
		panic(c.value)
	}
	return c.value
}
