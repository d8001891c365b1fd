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
	"github.com/google/wire"
	"go.uber.org/fx"
)

// Module provides a *CoffeeMaker, along with the Heater and Pump it is built
// from, to an Fx application.
//
//	app := fx.New(
//		coffeemaker.Module,
//		fx.Invoke(func(m *coffeemaker.CoffeeMaker) { ... }),
//	)
var Module = fx.Module("coffeemaker",
	fx.Provide(
		fx.Annotate(NewElectricHeater, fx.As(new(Heater))),
		fx.Annotate(NewPistonPump, fx.As(new(Pump))),
		NewCoffeeMaker,
	),
)

// ProviderSet is the Wire provider set for a *CoffeeMaker. It binds the
// stock capabilities to their interfaces.
var ProviderSet = wire.NewSet(
	NewElectricHeater,
	wire.Bind(new(Heater), new(*ElectricHeater)),
	NewPistonPump,
	wire.Bind(new(Pump), new(*PistonPump)),
	NewCoffeeMaker,
)
