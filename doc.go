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

// Package coffeemaker assembles a CoffeeMaker from a Heater and a Pump using
// constructor injection.
//
// A CoffeeMaker never builds its own dependencies. They are passed to
// NewCoffeeMaker, and the package offers several ways to do that wiring:
//
// InitializeCoffeeMaker is a Wire-generated factory. It calls the leaf
// constructors and hands their results to NewCoffeeMaker, with no
// reflection involved.
//
//	maker, err := coffeemaker.InitializeCoffeeMaker()
//
// Module is an Fx module for applications that already use Fx. NewComponent
// wraps it for callers that just want the assembled graph.
//
//	c, err := coffeemaker.NewComponent(coffeemaker.WithLogger(log))
//	fmt.Println(c.CoffeeMaker().MakeCoffee())
//
// Provide and Resolve do the same against a caller-owned dig.Container.
//
// Every entry point builds a fresh graph. Two CoffeeMakers never share a
// Heater or a Pump unless the caller supplies the same value to both.
package coffeemaker
