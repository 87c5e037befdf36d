// Package pool provides a fixed-capacity free-list object pool used to reuse
// enemy and projectile instances instead of allocating per spawn. There is no
// eviction policy and no cross-goroutine access: the simulation is
// single-threaded and the pool is a plain slice of idle instances.
package pool

// Pool is a fixed-capacity free list of reusable instances.
// All capacity is allocated up front via the factory; Acquire hands out idle
// instances and reports exhaustion instead of growing.
type Pool[T any] struct {
	free     []T
	capacity int
	inUse    int
}

// New creates a pool of the given capacity, pre-filling it with instances
// produced by factory. A non-positive capacity yields an always-exhausted pool.
func New[T any](capacity int, factory func() T) *Pool[T] {
	if capacity < 0 {
		capacity = 0
	}
	p := &Pool[T]{
		free:     make([]T, 0, capacity),
		capacity: capacity,
	}
	for i := 0; i < capacity; i++ {
		p.free = append(p.free, factory())
	}
	return p
}

// Acquire takes an instance from the pool.
// Returns the zero value and false when the pool is exhausted.
func (p *Pool[T]) Acquire() (T, bool) {
	if len(p.free) == 0 {
		var zero T
		return zero, false
	}
	n := len(p.free) - 1
	item := p.free[n]
	p.free = p.free[:n]
	p.inUse++
	return item, true
}

// Release returns an instance to the pool for reuse.
// Releases beyond the pool's capacity are dropped so a buggy double-release
// cannot grow the pool.
func (p *Pool[T]) Release(item T) {
	if len(p.free) >= p.capacity {
		return
	}
	p.free = append(p.free, item)
	if p.inUse > 0 {
		p.inUse--
	}
}

// Available returns the number of idle instances.
func (p *Pool[T]) Available() int {
	return len(p.free)
}

// InUse returns the number of instances currently handed out.
func (p *Pool[T]) InUse() int {
	return p.inUse
}

// Capacity returns the fixed pool capacity.
func (p *Pool[T]) Capacity() int {
	return p.capacity
}
