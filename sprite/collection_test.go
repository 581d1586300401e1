package sprite

import (
	"testing"

	"github.com/pthm-cable/catbox/vec"
)

func TestCollectionPushAndGet(t *testing.T) {
	c := NewCollection()
	if !c.IsEmpty() {
		t.Error("new collection should be empty")
	}

	a := testSprite(0, 0, 4, 4)
	b := testSprite(1, 1, 4, 4)
	c.Push(a)
	c.Push(b)

	if c.Len() != 2 {
		t.Fatalf("Len = %d, want 2", c.Len())
	}
	if c.Get(0) != a || c.Get(1) != b {
		t.Error("sprites should keep insertion order")
	}
	if c.Get(2) != nil || c.Get(-1) != nil {
		t.Error("Get out of range should return nil")
	}
}

func TestCollectionInsert(t *testing.T) {
	c := NewCollection()
	a := testSprite(0, 0, 4, 4)
	b := testSprite(1, 1, 4, 4)
	mid := testSprite(2, 2, 4, 4)

	c.Push(a)
	c.Push(b)
	c.Insert(mid, 1)

	if c.Len() != 3 {
		t.Fatalf("Len = %d, want 3", c.Len())
	}
	if c.Get(0) != a || c.Get(1) != mid || c.Get(2) != b {
		t.Error("Insert should shift later elements right")
	}
}

func TestCollectionRemove(t *testing.T) {
	c := NewCollection()
	a := testSprite(0, 0, 4, 4)
	b := testSprite(1, 1, 4, 4)
	d := testSprite(2, 2, 4, 4)
	c.Push(a)
	c.Push(b)
	c.Push(d)

	got := c.Remove(1)
	if got != b {
		t.Error("Remove should return the removed sprite")
	}
	if c.Len() != 2 || c.Get(0) != a || c.Get(1) != d {
		t.Error("Remove should shift later elements left")
	}
}

func TestCollectionRemoveOutOfRangePanics(t *testing.T) {
	c := NewCollection()
	c.Push(testSprite(0, 0, 4, 4))

	defer func() {
		if recover() == nil {
			t.Error("Remove with an out-of-range index must panic")
		}
	}()
	c.Remove(1)
}

func TestCollectionPop(t *testing.T) {
	c := NewCollection()
	if c.Pop() != nil {
		t.Error("Pop on empty collection should return nil")
	}

	a := testSprite(0, 0, 4, 4)
	b := testSprite(1, 1, 4, 4)
	c.Push(a)
	c.Push(b)

	if got := c.Pop(); got != b {
		t.Error("Pop should return the last sprite")
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1", c.Len())
	}
}

func TestCollectionConcatDrainsSource(t *testing.T) {
	c := NewCollection()
	other := NewCollection()

	a := testSprite(0, 0, 4, 4)
	b := testSprite(1, 1, 4, 4)
	d := testSprite(2, 2, 4, 4)
	c.Push(a)
	other.Push(b)
	other.Push(d)

	c.Concat(other)

	if c.Len() != 3 {
		t.Fatalf("Len = %d, want 3", c.Len())
	}
	if c.Get(0) != a || c.Get(1) != b || c.Get(2) != d {
		t.Error("Concat should append in order")
	}
	if !other.IsEmpty() {
		t.Error("Concat should empty the source collection")
	}
}

func TestCollectionEachMutates(t *testing.T) {
	c := WithCapacity(3)
	for i := int32(0); i < 3; i++ {
		c.Push(testSprite(i*10, 0, 4, 4))
	}

	c.Each(func(s *Sprite) {
		s.Translate(vec.V2i(0, 1))
	})

	for i := 0; i < c.Len(); i++ {
		if got := c.Get(i).Position().Y; got != -1 {
			t.Errorf("sprite %d y = %d, want -1", i, got)
		}
	}
}

func TestCollectionClear(t *testing.T) {
	c := NewCollection()
	c.Push(testSprite(0, 0, 4, 4))
	c.Push(testSprite(1, 1, 4, 4))

	c.Clear()

	if !c.IsEmpty() || c.Len() != 0 {
		t.Error("Clear should remove all sprites")
	}
}
