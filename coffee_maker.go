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
	"errors"
	"fmt"

	"go.uber.org/multierr"
)

// Separator joins the heater and pump output in MakeCoffee.
const Separator = " & "

// ErrMissingDependency is returned by NewCoffeeMaker when it is handed a nil
// Heater or Pump.
var ErrMissingDependency = errors.New("missing dependency")

// CoffeeMaker brews coffee from a Heater and a Pump supplied at construction.
// A CoffeeMaker is immutable once built.
type CoffeeMaker struct {
	heater Heater
	pump   Pump
}

// NewCoffeeMaker builds a CoffeeMaker from the given Heater and Pump. Both
// are required; every nil dependency is reported in the returned error.
func NewCoffeeMaker(heater Heater, pump Pump) (*CoffeeMaker, error) {
	var err error
	if heater == nil {
		err = multierr.Append(err, fmt.Errorf("heater: %w", ErrMissingDependency))
	}
	if pump == nil {
		err = multierr.Append(err, fmt.Errorf("pump: %w", ErrMissingDependency))
	}
	if err != nil {
		return nil, err
	}
	return &CoffeeMaker{heater: heater, pump: pump}, nil
}

// Heater returns the Heater this CoffeeMaker was built with.
func (m *CoffeeMaker) Heater() Heater { return m.heater }

// Pump returns the Pump this CoffeeMaker was built with.
func (m *CoffeeMaker) Pump() Pump { return m.pump }

// MakeCoffee heats and pumps the water, joining both results with Separator.
func (m *CoffeeMaker) MakeCoffee() string {
	return m.heater.HeatWater() + Separator + m.pump.PumpWater()
}
