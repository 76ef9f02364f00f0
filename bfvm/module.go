package bfvm

import (
	"github.com/reusee/dscope"
	"github.com/reusee/taibf/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}

type NewEngine func(source string, options ...Option) (*Engine, error)

func (Module) NewEngine(
	logger logs.Logger,
) NewEngine {
	return func(source string, options ...Option) (*Engine, error) {
		return New(
			source,
			append([]Option{WithLogger(logger)}, options...)...,
		)
	}
}
