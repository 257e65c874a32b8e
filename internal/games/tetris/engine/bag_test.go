package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBagDrawsEachShapeOncePerRefill(t *testing.T) {
	c := newCatalog(t)
	b := NewBag(c, rand.New(rand.NewSource(7)))

	for round := 0; round < 20; round++ {
		seen := make(map[string]int)
		for _i := 0; _i < c.Len(); _i++ {
			seen[b.Next().Name]++
		}
		require.Len(t, seen, c.Len(), "round %d", round)
		for name, n := range seen {
			assert.Equal(t, 1, n, "round %d: shape %s drawn %d times", round, name, n)
		}
		assert.Equal(t, 0, b.Remaining())
	}
}

func TestBagRemaining(t *testing.T) {
	c := newCatalog(t)
	b := NewBag(c, rand.New(rand.NewSource(1)))

	assert.Equal(t, 0, b.Remaining(), "bag starts empty")
	b.Next()
	assert.Equal(t, c.Len()-1, b.Remaining())

	b.Reset()
	assert.Equal(t, 0, b.Remaining())
}

func TestBagDeterministicWithSeed(t *testing.T) {
	c := newCatalog(t)
	b1 := NewBag(c, rand.New(rand.NewSource(99)))
	b2 := NewBag(c, rand.New(rand.NewSource(99)))

	for _i := 0; _i < 50; _i++ {
		assert.Equal(t, b1.Next().Name, b2.Next().Name)
	}
}

func TestNewCatalogValidation(t *testing.T) {
	_, err := NewCatalog(nil)
	assert.ErrorIs(t, err, ErrEmptyCatalog)

	_, err = NewCatalog([]Shape{{Name: "empty"}})
	assert.Error(t, err)

	_, err = NewCatalog([]Shape{{Name: "dup", Offsets: pts(0, 0, 0, 0)}})
	assert.Error(t, err)
}

func TestCatalogCopiesInput(t *testing.T) {
	offsets := pts(0, 0, 1, 0)
	c, err := NewCatalog([]Shape{{Name: "domino", Offsets: offsets}})
	require.NoError(t, err)

	offsets[0] = Point{X: 5, Y: 5}
	assert.Equal(t, Point{X: 0, Y: 0}, c.Shape(0).Offsets[0])
}

func TestCatalogFitsBoard(t *testing.T) {
	c := newCatalog(t)
	assert.NoError(t, c.FitsBoard(10, 20, 2, 6, 4))

	tall := Shape{Name: "tall", Offsets: pts(0, 0, 0, 1, 0, 2, 0, 3)}
	c = newCatalog(t, tall)
	assert.Error(t, c.FitsBoard(10, 20, 2, 6, 4), "needs three rows above the top visible row")
	assert.NoError(t, c.FitsBoard(10, 20, 3, 6, 8))
}
