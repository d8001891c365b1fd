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
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// Component is an assembled CoffeeMaker object graph backed by an Fx
// application. Each call to NewComponent builds its own graph; nothing is
// shared between Components.
type Component struct {
	maker *CoffeeMaker
}

// Option configures a Component.
type Option interface {
	apply(*componentOptions)
}

type componentOptions struct {
	logger *zap.Logger
	fxOpts []fx.Option
}

type loggerOption struct{ logger *zap.Logger }

var _ Option = loggerOption{}

func (o loggerOption) apply(opts *componentOptions) {
	opts.logger = o.logger
}

// WithLogger sets the logger that receives the Component's own log entries
// and the Fx container events. Components log nothing by default.
func WithLogger(logger *zap.Logger) Option {
	return loggerOption{logger: logger}
}

type fxOptions []fx.Option

var _ Option = fxOptions(nil)

func (o fxOptions) apply(opts *componentOptions) {
	opts.fxOpts = append(opts.fxOpts, o...)
}

// WithFxOptions passes additional options to the underlying Fx application,
// after Module. Use it to swap out a capability:
//
//	coffeemaker.NewComponent(
//		coffeemaker.WithFxOptions(
//			fx.Decorate(func(coffeemaker.Heater) coffeemaker.Heater { return myHeater }),
//		),
//	)
func WithFxOptions(opts ...fx.Option) Option {
	return fxOptions(opts)
}

// NewComponent assembles a CoffeeMaker from Module.
func NewComponent(opts ...Option) (*Component, error) {
	options := componentOptions{logger: zap.NewNop()}
	for _, opt := range opts {
		opt.apply(&options)
	}
	log := options.logger

	var maker *CoffeeMaker
	fxOpts := make([]fx.Option, 0, len(options.fxOpts)+3)
	fxOpts = append(fxOpts,
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		Module,
	)
	fxOpts = append(fxOpts, options.fxOpts...)
	fxOpts = append(fxOpts, fx.Populate(&maker))

	app := fx.New(fxOpts...)
	if err := app.Err(); err != nil {
		return nil, fmt.Errorf("build coffee maker: %w", err)
	}

	log.Debug("coffee maker assembled",
		zap.String("heater", fmt.Sprintf("%T", maker.Heater())),
		zap.String("pump", fmt.Sprintf("%T", maker.Pump())),
	)
	return &Component{maker: maker}, nil
}

// CoffeeMaker returns the assembled CoffeeMaker.
func (c *Component) CoffeeMaker() *CoffeeMaker {
	return c.maker
}
