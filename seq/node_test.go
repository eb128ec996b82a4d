package seq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tychoish/dsa/alloc"
	"github.com/tychoish/dsa/ers"
	"github.com/tychoish/dsa/opt"
)

const errBoom ers.Error = "boom"

// makeRing builds a ring through a new root holding the values.
func makeRing(doubly bool, values ...int) *core[int] {
	c := (&core[int]{}).setup(doubly)
	prev := c.root
	for _, v := range values {
		n := &node[int]{}
		n.slot.Emplace(v)
		c.linkAfter(prev, n)
		prev = n
	}
	return c
}

func ringValues(c *core[int]) []int {
	out := []int{}
	for n := c.root.next; n != c.root; n = n.next {
		out = append(out, n.value())
	}
	return out
}

// checkLinks asserts that every element is constructed and, for
// doubly linked rings, that every prev pointer mirrors a next pointer.
func checkLinks[T any](t *testing.T, c *core[T]) {
	t.Helper()

	count := 0
	for n := c.root.next; n != c.root; n = n.next {
		count++
		require.True(t, n.slot.Live())
		require.Less(t, count, 1<<20, "ring does not close")
		if c.doubly {
			require.Same(t, n, n.next.prev)
		}
	}
	if c.doubly {
		require.Same(t, c.root, c.root.next.prev)
	}
	require.False(t, c.root.slot.Live())
}

func nodeAt(c *core[int], idx int) *node[int] { return c.nth(idx + 1) }

func newPool(t *testing.T, opts ...opt.Provider[*alloc.PoolConfig]) *alloc.Pool {
	t.Helper()
	pool, err := alloc.NewPool(opts...)
	require.NoError(t, err)
	return pool
}

func TestNode(t *testing.T) {
	for name, doubly := range map[string]bool{"Singly": false, "Doubly": true} {
		t.Run(name, func(t *testing.T) {
			t.Run("TransferWithinRing", func(t *testing.T) {
				c := makeRing(doubly, 0, 1, 2, 3, 4, 5)
				// move (0, 2] = {1, 2} after 4
				c.transfer(nodeAt(c, 4), nodeAt(c, 0), nodeAt(c, 2))
				assert.Equal(t, []int{0, 3, 4, 1, 2, 5}, ringValues(c))
				checkLinks(t, c)
			})
			t.Run("TransferToFront", func(t *testing.T) {
				c := makeRing(doubly, 0, 1, 2, 3)
				c.transfer(c.root, nodeAt(c, 1), nodeAt(c, 3))
				assert.Equal(t, []int{2, 3, 0, 1}, ringValues(c))
				checkLinks(t, c)
			})
			t.Run("TransferAdjacent", func(t *testing.T) {
				c := makeRing(doubly, 0, 1, 2, 3)
				// the destination directly follows the range.
				c.transfer(nodeAt(c, 2), nodeAt(c, 0), nodeAt(c, 1))
				assert.Equal(t, []int{0, 2, 1, 3}, ringValues(c))
				checkLinks(t, c)
			})
			t.Run("TransferEmptyRange", func(t *testing.T) {
				c := makeRing(doubly, 0, 1, 2)
				c.transfer(nodeAt(c, 2), nodeAt(c, 1), nodeAt(c, 1))
				c.transfer(nodeAt(c, 0), nodeAt(c, 0), nodeAt(c, 1))
				assert.Equal(t, []int{0, 1, 2}, ringValues(c))
				checkLinks(t, c)
			})
			t.Run("TransferBetweenRings", func(t *testing.T) {
				a := makeRing(doubly, 0, 1, 2)
				b := makeRing(doubly, 10, 11, 12)
				a.transfer(nodeAt(a, 0), b.root, nodeAt(b, 1))
				assert.Equal(t, []int{0, 10, 11, 1, 2}, ringValues(a))
				assert.Equal(t, []int{12}, ringValues(b))
				checkLinks(t, a)
				checkLinks(t, b)

				a.transfer(a.last(), b.root, b.last())
				assert.Equal(t, []int{0, 10, 11, 1, 2, 12}, ringValues(a))
				assert.Empty(t, ringValues(b))
				assert.True(t, b.empty())
				checkLinks(t, b)
			})
			t.Run("Reverse", func(t *testing.T) {
				for _, values := range [][]int{{}, {1}, {1, 2}, {1, 2, 3, 4, 5}} {
					c := makeRing(doubly, values...)
					c.reverse()
					expected := make([]int, 0, len(values))
					for i := len(values) - 1; i >= 0; i-- {
						expected = append(expected, values[i])
					}
					assert.Equal(t, expected, ringValues(c))
					checkLinks(t, c)
				}
			})
			t.Run("DetachRange", func(t *testing.T) {
				c := makeRing(doubly, 0, 1, 2, 3, 4)
				ch := c.detachRange(nodeAt(c, 0), nodeAt(c, 2))
				assert.Equal(t, 2, ch.size)
				assert.Equal(t, 1, ch.head.value())
				assert.Equal(t, 2, ch.tail.value())
				assert.Nil(t, ch.tail.next)
				assert.Equal(t, []int{0, 3, 4}, ringValues(c))
				checkLinks(t, c)

				c.linkChainAfter(c.last(), ch)
				assert.Equal(t, []int{0, 3, 4, 1, 2}, ringValues(c))
				checkLinks(t, c)

				assert.Zero(t, c.detachRange(c.root, c.root).size)
			})
			t.Run("Before", func(t *testing.T) {
				c := makeRing(doubly, 0, 1, 2)
				assert.Same(t, nodeAt(c, 1), c.before(nodeAt(c, 2)))
				assert.Same(t, c.root, c.before(nodeAt(c, 0)))
				assert.Same(t, nodeAt(c, 2), c.last())
			})
		})
	}
	t.Run("HookUnhook", func(t *testing.T) {
		c := makeRing(true, 0, 2)
		n := &node[int]{}
		n.slot.Emplace(1)
		n.hook(nodeAt(c, 1))
		assert.Equal(t, []int{0, 1, 2}, ringValues(c))
		checkLinks(t, c)

		nodeAt(c, 0).unhook()
		assert.Equal(t, []int{1, 2}, ringValues(c))
		checkLinks(t, c)
	})
	t.Run("Chain", func(t *testing.T) {
		var a, b chain[int]
		for i := 0; i < 3; i++ {
			n := &node[int]{}
			n.slot.Emplace(i)
			a.push(n)
		}
		assert.Equal(t, 3, a.size)

		b.extend(&a)
		assert.Equal(t, 3, b.size)
		assert.Zero(t, a.size)
		assert.Nil(t, a.head)

		assert.Equal(t, 0, b.pop().value())
		assert.Equal(t, 1, b.pop().value())
		assert.Equal(t, 2, b.pop().value())
		assert.Nil(t, b.head)
		assert.Nil(t, b.tail)
		assert.Zero(t, chainOf[int](nil).size)
	})
}
