package engine

import "math/rand"

// Bag hands out shapes without replacement, refilling with one copy of every
// catalog shape whenever it runs dry. The same shape may appear twice in a
// row across a refill seam.
type Bag struct {
	catalog  *Catalog
	rng      *rand.Rand
	contents []int // catalog indices still in the bag
}

// NewBag creates an empty bag; the first Next call fills it.
func NewBag(catalog *Catalog, rng *rand.Rand) *Bag {
	return &Bag{catalog: catalog, rng: rng}
}

// Next removes and returns a uniformly random shape from the bag.
func (b *Bag) Next() Shape {
	if len(b.contents) == 0 {
		b.refill()
	}

	i := b.rng.Intn(len(b.contents))
	idx := b.contents[i]
	last := len(b.contents) - 1
	b.contents[i] = b.contents[last]
	b.contents = b.contents[:last]

	return b.catalog.Shape(idx)
}

// Remaining returns how many shapes are left before the next refill.
func (b *Bag) Remaining() int {
	return len(b.contents)
}

// Reset empties the bag.
func (b *Bag) Reset() {
	b.contents = b.contents[:0]
}

func (b *Bag) refill() {
	b.contents = b.contents[:0]
	for i := 0; i < b.catalog.Len(); i++ {
		b.contents = append(b.contents, i)
	}
}
