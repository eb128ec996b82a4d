package seq

import (
	"fmt"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tychoish/dsa/dt/cmp"
)

type keyed struct {
	key   int
	index int
}

func lessByKey(a, b keyed) bool { return a.key < b.key }

// sortable is the subset of the list interface exercised by the
// sorting tests, satisfied by both lists.
type sortable[T any] interface {
	Sequence[T]
	Sortable[T]
	SortWith(Algorithm, cmp.LessThan[T])
	PushFront(T) error
	Len() int
}

func listKinds[T any]() map[string]func() sortable[T] {
	return map[string]func() sortable[T]{
		"SList": func() sortable[T] { return &SList[T]{} },
		"List":  func() sortable[T] { return &List[T]{} },
	}
}

func nodeSet[T any](c *core[T]) map[*node[T]]struct{} {
	out := map[*node[T]]struct{}{}
	for n := c.root.next; n != c.root; n = n.next {
		out[n] = struct{}{}
	}
	return out
}

func coreOf[T any](l sortable[T]) *core[T] {
	switch list := l.(type) {
	case *SList[T]:
		return &list.list
	case *List[T]:
		return &list.list
	default:
		panic(fmt.Sprintf("unknown list %T", l))
	}
}

func TestSort(t *testing.T) {
	t.Run("PushFrontScenario", func(t *testing.T) {
		for name, makeList := range listKinds[int]() {
			t.Run(name, func(t *testing.T) {
				l := makeList()
				for i := 0; i < 10; i++ {
					require.NoError(t, l.PushFront(i))
				}
				assert.Equal(t, []int{9, 8, 7, 6, 5, 4, 3, 2, 1, 0}, slices.Collect(l.Seq()))

				Sort[int](l)
				assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, slices.Collect(l.Seq()))
				assert.Equal(t, 10, l.Len())
				checkLinks(t, coreOf(l))
			})
		}
	})
	t.Run("Algorithms", func(t *testing.T) {
		for name, makeList := range listKinds[int]() {
			for _, alg := range Algorithms() {
				t.Run(fmt.Sprintf("%s/%s", name, alg), func(t *testing.T) {
					for _, size := range []int{0, 1, 2, 3, 7, 64, 257} {
						r := rand.New(rand.NewSource(int64(size)))
						l := makeList()
						input := make([]int, 0, size)
						for i := 0; i < size; i++ {
							v := r.Intn(size/2 + 1)
							input = append(input, v)
							require.NoError(t, l.PushFront(v))
						}
						nodes := nodeSet(coreOf(l))

						l.SortWith(alg, cmp.LessThanNative[int])

						assert.True(t, IsSorted(l, cmp.LessThanNative[int]))
						assert.Equal(t, slices.Sorted(slices.Values(input)), slices.Collect(l.Seq()))
						assert.Equal(t, size, l.Len())
						assert.Equal(t, nodes, nodeSet(coreOf(l)))
						checkLinks(t, coreOf(l))
					}
				})
			}
		}
	})
	t.Run("Descending", func(t *testing.T) {
		for _, alg := range Algorithms() {
			t.Run(alg.String(), func(t *testing.T) {
				l := SListOf(3, 1, 4, 1, 5, 9, 2, 6)
				l.SortWith(alg, cmp.Reverse(cmp.LessThanNative[int]))
				assert.Equal(t, []int{9, 6, 5, 4, 3, 2, 1, 1}, l.Slice())
			})
		}
	})
	t.Run("Stability", func(t *testing.T) {
		for name, makeList := range listKinds[keyed]() {
			for _, alg := range []Algorithm{Merge, Insertion, Bubble} {
				t.Run(fmt.Sprintf("%s/%s", name, alg), func(t *testing.T) {
					r := rand.New(rand.NewSource(99))
					l := makeList()
					for i := 300; i > 0; i-- {
						require.NoError(t, l.PushFront(keyed{key: r.Intn(10), index: i}))
					}

					l.SortWith(alg, lessByKey)

					values := slices.Collect(l.Seq())
					require.Len(t, values, 300)
					for i := 1; i < len(values); i++ {
						prev, cur := values[i-1], values[i]
						require.LessOrEqual(t, prev.key, cur.key)
						if prev.key == cur.key {
							require.Less(t, prev.index, cur.index, "equal keys reordered at %d", i)
						}
					}
				})
			}
		}
	})
	t.Run("Sorted", func(t *testing.T) {
		for _, alg := range Algorithms() {
			t.Run(alg.String(), func(t *testing.T) {
				l := ListOf(1, 2, 3, 4, 5, 6)
				l.SortWith(alg, cmp.LessThanNative[int])
				assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, l.Slice())
				checkLinks(t, &l.list)
			})
		}
	})
	t.Run("UnknownAlgorithm", func(t *testing.T) {
		l := ListOf(2, 1)
		l.SortWith(Algorithm(42), cmp.LessThanNative[int])
		assert.Equal(t, []int{1, 2}, l.Slice())
		assert.Equal(t, "Algorithm(42)", Algorithm(42).String())
	})
	t.Run("IsSorted", func(t *testing.T) {
		assert.True(t, IsSorted[int](&SList[int]{}, cmp.LessThanNative[int]))
		assert.True(t, IsSorted[int](ListOf(1, 1, 2), cmp.LessThanNative[int]))
		assert.False(t, IsSorted[int](ListOf(2, 1), cmp.LessThanNative[int]))
	})
	t.Run("MergeSortedLists", func(t *testing.T) {
		r := rand.New(rand.NewSource(5))
		a, b := &SList[keyed]{}, &SList[keyed]{}
		for i := 0; i < 100; i++ {
			require.NoError(t, a.PushFront(keyed{key: r.Intn(20), index: i}))
			require.NoError(t, b.PushFront(keyed{key: r.Intn(20), index: 1000 + i}))
		}
		a.Sort(lessByKey)
		b.Sort(lessByKey)

		a.Merge(b, lessByKey)
		assert.Equal(t, 200, a.Len())
		assert.True(t, b.IsEmpty())

		values := a.Slice()
		for i := 1; i < len(values); i++ {
			prev, cur := values[i-1], values[i]
			require.LessOrEqual(t, prev.key, cur.key)
			if prev.key == cur.key && prev.index >= 1000 {
				// elements of the receiver precede equal elements of the argument
				require.GreaterOrEqual(t, cur.index, 1000)
			}
		}
	})
}
