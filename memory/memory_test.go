package memory

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tychoish/dsa/ers"
)

const errBoom ers.Error = "boom"

// failOn returns a constructor that produces increasing values and
// fails on the nth call.
func failOn(n int) (Constructor[int], *int) {
	calls := 0
	return func() (int, error) {
		calls++
		if calls == n {
			return 0, errBoom
		}
		return calls, nil
	}, &calls
}

func TestSlot(t *testing.T) {
	t.Run("Lifecycle", func(t *testing.T) {
		var s Slot[string]
		assert.False(t, s.Live())

		require.NoError(t, s.Construct(Value("hello")))
		assert.True(t, s.Live())
		assert.Equal(t, "hello", s.Get())

		*s.Ptr() = "world"
		assert.Equal(t, "world", s.Get())
		s.Set("again")
		assert.Equal(t, "again", s.Take())
		assert.False(t, s.Live())

		s.Emplace("emplaced")
		assert.Equal(t, "emplaced", s.Get())
		s.Destroy()
		assert.False(t, s.Live())
		assert.NotPanics(t, s.Destroy)
	})
	t.Run("NilConstructor", func(t *testing.T) {
		var s Slot[int]
		require.NoError(t, s.Construct(nil))
		assert.True(t, s.Live())
		assert.Zero(t, s.Get())
	})
	t.Run("FailedConstruction", func(t *testing.T) {
		var s Slot[int]
		err := s.Construct(func() (int, error) { return 1, errBoom })
		assert.ErrorIs(t, err, errBoom)
		assert.False(t, s.Live())
	})
	t.Run("PanickingConstructor", func(t *testing.T) {
		var s Slot[int]
		err := s.Construct(func() (int, error) { panic("oops") })
		assert.ErrorIs(t, err, ers.ErrRecoveredPanic)
		assert.False(t, s.Live())
	})
	t.Run("Invariants", func(t *testing.T) {
		var s Slot[int]
		for name, fn := range map[string]func(){
			"Get":  func() { s.Get() },
			"Ptr":  func() { s.Ptr() },
			"Take": func() { s.Take() },
			"Set":  func() { s.Set(1) },
		} {
			t.Run(name, func(t *testing.T) {
				err := ers.WithRecoverCall(fn)
				assert.ErrorIs(t, err, ers.ErrInvariantViolation)
			})
		}

		s.Emplace(1)
		assert.ErrorIs(t, ers.WithRecoverCall(func() { s.Emplace(2) }), ers.ErrInvariantViolation)
		assert.ErrorIs(t, ers.WithRecoverCall(func() { _ = s.Construct(nil) }), ers.ErrInvariantViolation)
		assert.Equal(t, 1, s.Get())
	})
}

func TestConstruct(t *testing.T) {
	t.Run("Bind", func(t *testing.T) {
		v, err := Construct(Bind(nil, 7))
		require.NoError(t, err)
		assert.Equal(t, 7, v)

		v, err = Construct(Bind(func(in int) (int, error) { return in * 2, nil }, 7))
		require.NoError(t, err)
		assert.Equal(t, 14, v)
	})
	t.Run("Copy", func(t *testing.T) {
		v, err := Copy(nil, "x")
		require.NoError(t, err)
		assert.Equal(t, "x", v)

		_, err = Copy(func(string) (string, error) { panic(errBoom) }, "x")
		assert.ErrorIs(t, err, errBoom)
		assert.ErrorIs(t, err, ers.ErrRecoveredPanic)
	})
}

func TestUninitialized(t *testing.T) {
	t.Run("Construct", func(t *testing.T) {
		ctor, calls := failOn(-1)
		buf := make([]int, 5)
		require.NoError(t, UninitializedConstruct(buf, ctor))
		assert.Equal(t, []int{1, 2, 3, 4, 5}, buf)
		assert.Equal(t, 5, *calls)
	})
	t.Run("ConstructRollback", func(t *testing.T) {
		ctor, calls := failOn(4)
		buf := make([]int, 5)
		err := UninitializedConstruct(buf, ctor)
		assert.ErrorIs(t, err, errBoom)
		assert.Contains(t, err.Error(), "element 3")
		assert.Equal(t, []int{0, 0, 0, 0, 0}, buf)
		assert.Equal(t, 4, *calls)
	})
	t.Run("Fill", func(t *testing.T) {
		buf := make([]string, 3)
		require.NoError(t, UninitializedFill(buf, "a", nil))
		assert.Equal(t, []string{"a", "a", "a"}, buf)

		count := 0
		err := UninitializedFill(buf, "b", func(in string) (string, error) {
			count++
			if count == 2 {
				return "", errBoom
			}
			return in, nil
		})
		assert.ErrorIs(t, err, errBoom)
		assert.Equal(t, []string{"", "a", "a"}, buf)
	})
	t.Run("Copy", func(t *testing.T) {
		src := []int{1, 2, 3}
		dst := make([]int, 4)
		n, err := UninitializedCopy(src, dst, nil)
		require.NoError(t, err)
		assert.Equal(t, 3, n)
		assert.Equal(t, []int{1, 2, 3, 0}, dst)
		assert.Equal(t, []int{1, 2, 3}, src)
	})
	t.Run("CopyRollback", func(t *testing.T) {
		src := []int{1, 2, 3}
		dst := make([]int, 3)
		n, err := UninitializedCopy(src, dst, func(in int) (int, error) {
			if in == 3 {
				return 0, errors.New("three")
			}
			return in * 10, nil
		})
		assert.Error(t, err)
		assert.Zero(t, n)
		assert.Equal(t, []int{0, 0, 0}, dst)
	})
	t.Run("CopyTooSmall", func(t *testing.T) {
		err := ers.WithRecoverCall(func() { _, _ = UninitializedCopy([]int{1, 2}, make([]int, 1), nil) })
		assert.ErrorIs(t, err, ers.ErrInvariantViolation)
	})
	t.Run("Move", func(t *testing.T) {
		a, b, c := "a", "b", "c"
		src := []*string{&a, &b, &c}
		dst := make([]*string, 3)
		assert.Equal(t, 3, UninitializedMove(src, dst))
		assert.Equal(t, []*string{&a, &b, &c}, dst)
		assert.Equal(t, []*string{nil, nil, nil}, src)
	})
	t.Run("Shift", func(t *testing.T) {
		t.Run("Left", func(t *testing.T) {
			buf := []int{1, 2, 3, 4, 5}
			Shift(buf, 2, 0, 3)
			assert.Equal(t, []int{3, 4, 5, 0, 0}, buf)
		})
		t.Run("LeftOverlapping", func(t *testing.T) {
			buf := []int{1, 2, 3, 4, 5}
			Shift(buf, 1, 0, 4)
			assert.Equal(t, []int{2, 3, 4, 5, 0}, buf)
		})
		t.Run("Right", func(t *testing.T) {
			buf := []int{1, 2, 3, 0, 0}
			Shift(buf, 0, 2, 3)
			assert.Equal(t, []int{0, 0, 1, 2, 3}, buf)
		})
		t.Run("RightDisjoint", func(t *testing.T) {
			buf := []int{1, 2, 0, 0, 0}
			Shift(buf, 0, 3, 2)
			assert.Equal(t, []int{0, 0, 0, 1, 2}, buf)
		})
		t.Run("Noop", func(t *testing.T) {
			buf := []int{1, 2, 3}
			Shift(buf, 1, 1, 2)
			Shift(buf, 0, 2, 0)
			assert.Equal(t, []int{1, 2, 3}, buf)
		})
	})
}
