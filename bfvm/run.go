package bfvm

import "context"

// Steps starts the engine if needed and yields every step until the program
// ends. A fault is yielded once with its error, after which iteration stops.
//
//	for step, err := range engine.Steps {
//		...
//	}
func (e *Engine) Steps(yield func(Step, error) bool) {
	e.Start()
	for {
		step, ok, err := e.Step()
		if err != nil {
			yield(step, err)
			return
		}
		if !ok {
			return
		}
		if !yield(step, nil) {
			return
		}
	}
}

func (e *Engine) Run() error {
	for _, err := range e.Steps {
		if err != nil {
			return err
		}
	}
	return nil
}

// RunContext is Run with ctx checked between steps. A read blocked inside the
// port is not interrupted.
func (e *Engine) RunContext(ctx context.Context) error {
	for _, err := range e.Steps {
		if err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
	}
	return nil
}

func Exec(source string, options ...Option) error {
	engine, err := New(source, options...)
	if err != nil {
		return err
	}
	defer engine.Stop()
	return engine.Run()
}
