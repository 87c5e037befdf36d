package pool

import "testing"

type thing struct {
	id int
}

func TestAcquireRelease(t *testing.T) {
	n := 0
	p := New(3, func() *thing {
		n++
		return &thing{id: n}
	})

	if p.Capacity() != 3 || p.Available() != 3 || p.InUse() != 0 {
		t.Fatalf("fresh pool: cap=%d avail=%d inuse=%d", p.Capacity(), p.Available(), p.InUse())
	}

	a, ok := p.Acquire()
	if !ok || a == nil {
		t.Fatal("Acquire from full pool should succeed")
	}
	if p.Available() != 2 || p.InUse() != 1 {
		t.Errorf("after acquire: avail=%d inuse=%d", p.Available(), p.InUse())
	}

	p.Release(a)
	if p.Available() != 3 || p.InUse() != 0 {
		t.Errorf("after release: avail=%d inuse=%d", p.Available(), p.InUse())
	}
}

func TestExhaustion(t *testing.T) {
	p := New(2, func() *thing { return &thing{} })

	if _, ok := p.Acquire(); !ok {
		t.Fatal("first acquire should succeed")
	}
	if _, ok := p.Acquire(); !ok {
		t.Fatal("second acquire should succeed")
	}

	got, ok := p.Acquire()
	if ok {
		t.Error("acquire from exhausted pool should fail")
	}
	if got != nil {
		t.Error("exhausted acquire should return zero value")
	}
}

func TestReuse(t *testing.T) {
	p := New(1, func() *thing { return &thing{id: 7} })

	a, _ := p.Acquire()
	p.Release(a)
	b, _ := p.Acquire()

	if a != b {
		t.Error("pool should reuse the released instance")
	}
}

func TestOverRelease(t *testing.T) {
	p := New(1, func() *thing { return &thing{} })

	a, _ := p.Acquire()
	p.Release(a)
	// Second release of the same item must not grow the pool past capacity.
	p.Release(a)

	if p.Available() != 1 {
		t.Errorf("available = %d, want 1 (capacity)", p.Available())
	}
	if p.InUse() != 0 {
		t.Errorf("inUse = %d, want 0", p.InUse())
	}
}

func TestZeroCapacity(t *testing.T) {
	p := New(0, func() *thing { return &thing{} })
	if _, ok := p.Acquire(); ok {
		t.Error("zero-capacity pool should always be exhausted")
	}

	p = New(-5, func() *thing { return &thing{} })
	if p.Capacity() != 0 {
		t.Errorf("negative capacity should clamp to 0, got %d", p.Capacity())
	}
}
