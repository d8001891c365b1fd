// Copyright (c) 2026 Uber Technologies, Inc.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package coffeemaker_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/dig"
	"go.uber.org/multierr"

	"github.com/syedbipul/coffeemaker"
)

func TestProvide(t *testing.T) {
	t.Parallel()

	t.Run("resolves a coffee maker", func(t *testing.T) {
		t.Parallel()

		c := dig.New()
		require.NoError(t, coffeemaker.Provide(c))

		m, err := coffeemaker.Resolve(c)
		require.NoError(t, err)
		assert.Equal(t, "heated water & pumped water", m.MakeCoffee())
	})

	t.Run("one container caches its coffee maker", func(t *testing.T) {
		t.Parallel()

		c := dig.New()
		require.NoError(t, coffeemaker.Provide(c))

		m1, err := coffeemaker.Resolve(c)
		require.NoError(t, err)
		m2, err := coffeemaker.Resolve(c)
		require.NoError(t, err)
		assert.Same(t, m1, m2)
	})

	t.Run("fresh containers build fresh graphs", func(t *testing.T) {
		t.Parallel()

		resolve := func() *coffeemaker.CoffeeMaker {
			c := dig.New()
			require.NoError(t, coffeemaker.Provide(c))
			m, err := coffeemaker.Resolve(c)
			require.NoError(t, err)
			return m
		}

		m1, m2 := resolve(), resolve()
		assert.NotSame(t, m1, m2)
		assert.NotSame(t, m1.Heater(), m2.Heater())
		assert.NotSame(t, m1.Pump(), m2.Pump())
	})

	t.Run("duplicate registration reports every constructor", func(t *testing.T) {
		t.Parallel()

		c := dig.New()
		require.NoError(t, coffeemaker.Provide(c))

		err := coffeemaker.Provide(c)
		require.Error(t, err)
		assert.Len(t, multierr.Errors(err), 3)
	})

	t.Run("resolve without provide", func(t *testing.T) {
		t.Parallel()

		m, err := coffeemaker.Resolve(dig.New())
		assert.Error(t, err)
		assert.Nil(t, m)
	})
}
