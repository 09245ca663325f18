package starlark

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/leapstack-labs/leapudf/pkg/udf"
	"go.starlark.net/starlark"
)

// Script entry points.
const (
	FuncInitialize    = "initialize"
	FuncEvaluate      = "evaluate"
	FuncDisplayString = "display_string"
)

// ScriptUDF is a udf.GenericUDF implemented by a Starlark script.
type ScriptUDF struct {
	name string
	file string

	initialize starlark.Callable
	evaluate   starlark.Callable
	display    starlark.Callable

	pool   *ThreadPool
	logger *slog.Logger
}

var _ udf.GenericUDF = (*ScriptUDF)(nil)

// NewScriptUDF executes the script source and binds its entry points.
// src is anything starlark.ExecFile accepts: []byte, string or nil to read file.
func NewScriptUDF(name, file string, src any, logger *slog.Logger) (*ScriptUDF, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	logger = logger.With("function", name)

	thread := NewThread("load:"+name, logger)
	globals, err := starlark.ExecFile(thread, file, src, Predeclared()) //nolint:staticcheck // SA1019: will migrate to ExecFileOptions later
	if err != nil {
		return nil, &EvalError{File: file, Function: "<module>", Message: err.Error(), Err: err}
	}

	u := &ScriptUDF{
		name:   name,
		file:   file,
		pool:   NewThreadPool(0, logger),
		logger: logger,
	}
	if u.initialize, err = entryPoint(globals, file, FuncInitialize, true); err != nil {
		return nil, err
	}
	if u.evaluate, err = entryPoint(globals, file, FuncEvaluate, false); err != nil {
		return nil, err
	}
	if u.display, err = entryPoint(globals, file, FuncDisplayString, false); err != nil {
		return nil, err
	}
	return u, nil
}

func entryPoint(globals starlark.StringDict, file, name string, required bool) (starlark.Callable, error) {
	v, ok := globals[name]
	if !ok {
		if required {
			return nil, &EvalError{File: file, Function: name, Message: "function is not defined"}
		}
		return nil, nil
	}
	fn, ok := v.(starlark.Callable)
	if !ok {
		return nil, &EvalError{File: file, Function: name, Message: fmt.Sprintf("must be a function, got %s", v.Type())}
	}
	return fn, nil
}

// Name returns the class name the script was registered under.
func (u *ScriptUDF) Name() string { return u.name }

// Initialize calls initialize(arguments). A script rejects its arguments
// with fail(); any failure is reported as a *udf.ArgumentError.
func (u *ScriptUDF) Initialize(arguments []udf.Inspector) (udf.Inspector, error) {
	args := make([]starlark.Value, len(arguments))
	for i, a := range arguments {
		args[i] = InspectorToStarlark(a)
	}

	result, err := u.call(u.initialize, starlark.Tuple{starlark.NewList(args)})
	if err != nil {
		return udf.Inspector{}, &udf.ArgumentError{Index: -1, Message: failMessage(err)}
	}

	inspector, err := InspectorFromStarlark(result)
	if err != nil {
		return udf.Inspector{}, &EvalError{File: u.file, Function: FuncInitialize, Message: err.Error()}
	}
	return inspector, nil
}

// Evaluate calls evaluate(*args) with the materialized arguments.
func (u *ScriptUDF) Evaluate(arguments []udf.DeferredObject) (any, error) {
	if u.evaluate == nil {
		return nil, &EvalError{File: u.file, Function: FuncEvaluate, Message: "function is not defined"}
	}

	args := make(starlark.Tuple, len(arguments))
	for i, d := range arguments {
		v, err := d.Get()
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		sv, err := GoToStarlark(v)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		args[i] = sv
	}

	result, err := u.call(u.evaluate, args)
	if err != nil {
		return nil, &EvalError{File: u.file, Function: FuncEvaluate, Message: err.Error(), Err: err}
	}
	return ToGo(result)
}

// DisplayString calls display_string(children), defaulting to name(children...).
func (u *ScriptUDF) DisplayString(children []string) string {
	fallback := u.name + "(" + strings.Join(children, ", ") + ")"
	if u.display == nil {
		return fallback
	}

	list := make([]starlark.Value, len(children))
	for i, c := range children {
		list[i] = starlark.String(c)
	}
	result, err := u.call(u.display, starlark.Tuple{starlark.NewList(list)})
	if err != nil {
		u.logger.Warn("display_string failed", "error", err)
		return fallback
	}
	if s, ok := starlark.AsString(result); ok {
		return s
	}
	return result.String()
}

func (u *ScriptUDF) call(fn starlark.Callable, args starlark.Tuple) (starlark.Value, error) {
	thread := u.pool.Get(u.name + "." + fn.Name())
	defer u.pool.Put(thread)
	return starlark.Call(thread, fn, args, nil)
}

// failMessage extracts the message a script passed to fail(), or the
// evaluation error message for any other failure.
func failMessage(err error) string {
	var evalErr *starlark.EvalError
	if errors.As(err, &evalErr) {
		return strings.TrimPrefix(evalErr.Msg, "fail: ")
	}
	return err.Error()
}

// EvalError represents an error while executing a function script.
type EvalError struct {
	File     string
	Function string
	Message  string
	Err      error
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.File, e.Function, e.Message)
}

// Unwrap returns the underlying Starlark error, if any.
func (e *EvalError) Unwrap() error {
	return e.Err
}
