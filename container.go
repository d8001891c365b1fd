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

package coffeemaker

import (
	"go.uber.org/dig"
	"go.uber.org/multierr"
)

type constructor struct {
	fn   interface{}
	opts []dig.ProvideOption
}

// constructors lists everything Provide registers, leaves first.
var constructors = []constructor{
	{fn: NewElectricHeater, opts: []dig.ProvideOption{dig.As(new(Heater))}},
	{fn: NewPistonPump, opts: []dig.ProvideOption{dig.As(new(Pump))}},
	{fn: NewCoffeeMaker},
}

// Provide registers the CoffeeMaker constructors on c. Every constructor is
// attempted; failures are combined into the returned error.
func Provide(c *dig.Container) error {
	var err error
	for _, ctor := range constructors {
		err = multierr.Append(err, c.Provide(ctor.fn, ctor.opts...))
	}
	return err
}

// Resolve builds a *CoffeeMaker from a container that Provide was called on.
// Dig caches constructed values, so repeated calls on one container return
// the same CoffeeMaker.
func Resolve(c *dig.Container) (*CoffeeMaker, error) {
	var maker *CoffeeMaker
	if err := c.Invoke(func(m *CoffeeMaker) { maker = m }); err != nil {
		return nil, err
	}
	return maker, nil
}
