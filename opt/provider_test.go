package opt

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tychoish/dsa/ers"
)

type testConfig struct {
	Capacity  int
	Name      string
	Bounded   bool
	validated bool
}

func (t *testConfig) Validate() error {
	t.validated = true
	if t.Capacity < 0 {
		return errors.New("capacity must be non-negative")
	}
	return nil
}

func TestProvider(t *testing.T) {
	t.Run("Apply", func(t *testing.T) {
		t.Run("WithoutValidate", func(t *testing.T) {
			type simpleConfig struct {
				Capacity int
			}

			conf := &simpleConfig{}
			provider := New(func(c *simpleConfig) error {
				c.Capacity = 42
				return nil
			})

			require.NoError(t, provider.Apply(conf))
			assert.Equal(t, 42, conf.Capacity)
		})
		t.Run("WithValidate", func(t *testing.T) {
			conf := &testConfig{}
			provider := Provider[*testConfig](func(c *testConfig) error {
				c.Capacity = 10
				return nil
			})

			require.NoError(t, provider.Apply(conf))
			assert.Equal(t, 10, conf.Capacity)
			assert.True(t, conf.validated)
		})
		t.Run("ValidateReturnsError", func(t *testing.T) {
			conf := &testConfig{}
			provider := Provider[*testConfig](func(c *testConfig) error {
				c.Capacity = -5
				return nil
			})

			err := provider.Apply(conf)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "capacity must be non-negative")
		})
		t.Run("ProviderReturnsError", func(t *testing.T) {
			conf := &testConfig{}
			expected := errors.New("provider error")
			provider := Provider[*testConfig](func(*testConfig) error { return expected })

			assert.ErrorIs(t, provider.Apply(conf), expected)
			assert.True(t, conf.validated)
		})
		t.Run("PanicRecovery", func(t *testing.T) {
			conf := &testConfig{}
			provider := Provider[*testConfig](func(*testConfig) error { panic("test panic") })

			assert.NotPanics(t, func() {
				err := provider.Apply(conf)
				assert.ErrorIs(t, err, ers.ErrRecoveredPanic)
			})
		})
	})
	t.Run("Build", func(t *testing.T) {
		t.Run("Success", func(t *testing.T) {
			provider := Provider[*testConfig](func(c *testConfig) error {
				c.Capacity = 42
				c.Name = "test"
				return nil
			})

			result, err := provider.Build(&testConfig{})
			require.NoError(t, err)
			require.NotNil(t, result)
			assert.Equal(t, 42, result.Capacity)
			assert.Equal(t, "test", result.Name)
		})
		t.Run("Error", func(t *testing.T) {
			expected := errors.New("build error")
			provider := Provider[*testConfig](func(*testConfig) error { return expected })

			result, err := provider.Build(&testConfig{})
			assert.ErrorIs(t, err, expected)
			assert.Nil(t, result)
		})
	})
	t.Run("Join", func(t *testing.T) {
		t.Run("MultipleProviders", func(t *testing.T) {
			conf := &testConfig{}

			p1 := Provider[*testConfig](func(c *testConfig) error { c.Capacity = 10; return nil })
			p2 := Provider[*testConfig](func(c *testConfig) error { c.Name = "joined"; return nil })
			p3 := Provider[*testConfig](func(c *testConfig) error { c.Bounded = true; return nil })

			require.NoError(t, p1.Join(p2, p3).Apply(conf))
			assert.Equal(t, 10, conf.Capacity)
			assert.Equal(t, "joined", conf.Name)
			assert.True(t, conf.Bounded)
		})
		t.Run("SkipsNilProviders", func(t *testing.T) {
			conf := &testConfig{}
			p1 := Provider[*testConfig](func(c *testConfig) error { c.Capacity = 5; return nil })

			require.NoError(t, p1.Join(nil, nil, nil).Apply(conf))
			assert.Equal(t, 5, conf.Capacity)
		})
		t.Run("ErrorsAggregate", func(t *testing.T) {
			first := errors.New("first error")
			second := errors.New("second error")

			p1 := Provider[*testConfig](func(*testConfig) error { return first })
			p2 := Provider[*testConfig](func(*testConfig) error { return second })

			err := p1.Join(p2).Apply(&testConfig{})
			assert.ErrorIs(t, err, first)
			assert.ErrorIs(t, err, second)
		})
		t.Run("PanicRecovery", func(t *testing.T) {
			p1 := Provider[*testConfig](func(*testConfig) error { panic("test panic") })
			p2 := Provider[*testConfig](func(*testConfig) error { panic("test panic2") })

			assert.NotPanics(t, func() {
				assert.Error(t, p1.Join(p2).Apply(&testConfig{}))
			})
		})
		t.Run("OverridingValues", func(t *testing.T) {
			conf := &testConfig{}

			p1 := Provider[*testConfig](func(c *testConfig) error { c.Capacity = 10; return nil })
			p2 := Provider[*testConfig](func(c *testConfig) error { c.Capacity = 20; return nil })

			require.NoError(t, p1.Join(p2).Apply(conf))
			// last provider wins
			assert.Equal(t, 20, conf.Capacity)
		})
	})
	t.Run("JoinFunction", func(t *testing.T) {
		t.Run("EmptyProviders", func(t *testing.T) {
			conf := &testConfig{}
			require.NoError(t, Join[*testConfig]().Apply(conf))
			assert.Zero(t, conf.Capacity)
			assert.Empty(t, conf.Name)
			assert.False(t, conf.Bounded)
		})
		t.Run("MultipleProviders", func(t *testing.T) {
			conf := &testConfig{}

			p1 := Provider[*testConfig](func(c *testConfig) error { c.Capacity = 15; return nil })
			p2 := Provider[*testConfig](func(c *testConfig) error { c.Name = "combined"; return nil })

			require.NoError(t, Join(p1, p2).Apply(conf))
			assert.Equal(t, 15, conf.Capacity)
			assert.Equal(t, "combined", conf.Name)
		})
	})
}
