package bfconfigs

import (
	"errors"

	"github.com/reusee/taibf/bfvm"
	"github.com/reusee/taibf/cmds"
	"github.com/reusee/taibf/configs"
)

// nil until -tape-length is given, so that an explicit 0 still reaches
// validation.
var tapeLengthFlag *int

var (
	growableFlag = cmds.Switch("-growable", "grow the tape rightwards on demand")
	onEOFFlag    = cmds.Var[string]("-on-eof", "fail, zero or keep when input ends")
)

func init() {
	cmds.Define("-tape-length", cmds.Func(func(n int) {
		tapeLengthFlag = &n
	}).Desc("number of cells of a fixed tape"))
	cmds.Define("-tape-length.", cmds.Func(func() {
		tapeLengthFlag = nil
	}))
}

// fromConfig reads path into an engine option. A missing key gives nil, which
// the engine skips. A value the schema rejects fails the engine with
// ErrInvalidConfig.
func fromConfig[T any](loader configs.Loader, path string, option func(T) bfvm.Option) bfvm.Option {
	var value T
	if err := loader.AssignFirst(path, &value); err != nil {
		if errors.Is(err, configs.ErrValueNotFound) {
			return nil
		}
		return bfvm.Invalid(err)
	}
	return option(value)
}

// TapeLength is nil when neither a flag nor a config file sets it.
type TapeLength bfvm.Option

func (Module) TapeLength(
	loader configs.Loader,
) TapeLength {
	if tapeLengthFlag != nil {
		return TapeLength(bfvm.WithTapeLength(*tapeLengthFlag))
	}
	return TapeLength(fromConfig(loader, "tape_length", bfvm.WithTapeLength))
}

type TapePolicy bfvm.Option

func (Module) TapePolicy(
	loader configs.Loader,
) TapePolicy {
	if *growableFlag {
		return TapePolicy(bfvm.WithPolicy(bfvm.GrowableTape))
	}
	return TapePolicy(fromConfig(loader, "tape_policy", bfvm.WithPolicyName))
}

type EOFMode bfvm.Option

func (Module) EOFMode(
	loader configs.Loader,
) EOFMode {
	if *onEOFFlag != "" {
		return EOFMode(bfvm.WithEOFName(*onEOFFlag))
	}
	return EOFMode(fromConfig(loader, "on_eof", bfvm.WithEOFName))
}

// EngineOptions collects the configured engine options. Ports are left to the
// caller.
type EngineOptions []bfvm.Option

func (Module) EngineOptions(
	length TapeLength,
	policy TapePolicy,
	eof EOFMode,
) EngineOptions {
	return EngineOptions{
		bfvm.Option(length),
		bfvm.Option(policy),
		bfvm.Option(eof),
	}
}
