package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"slices"

	"github.com/reusee/dscope"
	"github.com/reusee/taibf/bfconfigs"
	"github.com/reusee/taibf/bfvm"
	"github.com/reusee/taibf/cmds"
	"github.com/reusee/taibf/debugs"
	"github.com/reusee/taibf/logs"
	"github.com/reusee/taibf/modes"
	"github.com/reusee/taibf/nets"
	"github.com/reusee/taibf/ports"
)

var (
	scriptFile  = cmds.Var[string]("-file", "program to run")
	connectAddr = cmds.Var[string]("-connect", "use a tcp connection for input and output")
	traceSteps  = cmds.Switch("-trace", "log every step, needs -log-debug")
	tapState    = cmds.Switch("-tap", "inspect the engine in a starlark repl after the run")
)

func main() {
	cmds.Execute(os.Args[1:])

	if *scriptFile == "" {
		fmt.Fprintln(os.Stderr, "Error: -file <program> is required")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	var err error
	scope.Call(func(
		newSpan logs.NewSpan,
		r Runner,
	) {
		ctx, _ = newSpan(ctx, "")
		err = r(ctx, *scriptFile)
		err = logs.WrapSpan(ctx, err)
	})
	if err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "Execution halted: %v\n", err)
		os.Exit(1)
	}
}

// Runner loads and executes a program file.
type Runner func(ctx context.Context, path string) error

func (Module) Runner(
	logger logs.Logger,
	newEngine bfvm.NewEngine,
	engineOptions bfconfigs.EngineOptions,
	dialer nets.Dialer,
	tap debugs.Tap,
) Runner {
	return func(ctx context.Context, path string) error {
		content, err := os.ReadFile(path)
		if err != nil {
			return wrap(err)
		}
		source := string(content)

		options := slices.Clone(engineOptions)
		if *connectAddr != "" {
			conn, err := ports.Dial(ctx, dialer, *connectAddr)
			if err != nil {
				return wrap(err)
			}
			defer conn.Close()
			options = append(options, bfvm.WithReader(conn), bfvm.WithWriter(conn))
		}

		engine, err := newEngine(source, options...)
		if err != nil {
			return err
		}
		defer engine.Stop()

		logger.InfoContext(ctx, "run",
			"file", path,
			"tokens", len(engine.Tokens()),
			"policy", engine.Policy(),
		)
		if *traceSteps {
			err = trace(ctx, logger, engine)
		} else {
			err = engine.RunContext(ctx)
		}

		if *tapState {
			tap(ctx, path, debugs.EngineGlobals(engine, source))
		}

		return err
	}
}

func trace(ctx context.Context, logger logs.Logger, engine *bfvm.Engine) error {
	for step, err := range engine.Steps {
		if err != nil {
			return err
		}
		logger.DebugContext(ctx, "step",
			"cursor", step.Cursor,
			"pointer", step.Pointer,
			"offset", step.Offset,
			"instruction", step.Instruction,
		)
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	return nil
}
