package catalog

import (
	"errors"
	"sync/atomic"

	"github.com/leapstack-labs/leapudf/pkg/core"
	"github.com/leapstack-labs/leapudf/pkg/udf"
)

type stringIdentity struct{}

func (stringIdentity) Initialize(arguments []udf.Inspector) (udf.Inspector, error) {
	if len(arguments) != 1 || arguments[0] != udf.WritableStringInspector {
		return udf.Inspector{}, udf.NewArgumentError("expected one string argument")
	}
	return udf.WritableStringInspector, nil
}
func (stringIdentity) Evaluate(arguments []udf.DeferredObject) (any, error) {
	return arguments[0].Get()
}
func (stringIdentity) DisplayString(_ []string) string { return "string_identity()" }

type voidResult struct{}

func (voidResult) Initialize(_ []udf.Inspector) (udf.Inspector, error) { return udf.VoidInspector, nil }
func (voidResult) Evaluate(_ []udf.DeferredObject) (any, error)       { return nil, nil }
func (voidResult) DisplayString(_ []string) string                    { return "void()" }

// blocking waits on release before Initialize returns.
type blocking struct {
	release <-chan struct{}
}

func (b blocking) Initialize(_ []udf.Inspector) (udf.Inspector, error) {
	<-b.release
	return udf.WritableStringInspector, nil
}
func (blocking) Evaluate(_ []udf.DeferredObject) (any, error) { return nil, nil }
func (blocking) DisplayString(_ []string) string              { return "blocking()" }

// closing counts Close calls.
type closing struct {
	voidResult
	closed *atomic.Int32
}

func (c closing) Close() error {
	c.closed.Add(1)
	return nil
}

// slowClosing blocks like blocking and counts Close calls like closing.
type slowClosing struct {
	blocking
	started  *atomic.Int32
	closed   *atomic.Int32
	closeErr error
}

func (c slowClosing) Initialize(arguments []udf.Inspector) (udf.Inspector, error) {
	c.started.Add(1)
	return c.blocking.Initialize(arguments)
}

func (c slowClosing) Close() error {
	c.closed.Add(1)
	return c.closeErr
}

type overloaded struct{}

func (overloaded) Overloads() []udf.Overload {
	return []udf.Overload{
		{Args: []udf.PrimitiveCategory{udf.PrimitiveInt}, Result: udf.PrimitiveInt},
		{Args: []udf.PrimitiveCategory{udf.PrimitiveDouble}, Result: udf.PrimitiveDouble},
	}
}

type fixtures struct {
	loader  *udf.Registry
	release chan struct{}
	started *atomic.Int32
	closed  *atomic.Int32
}

func newFixtures() *fixtures {
	f := &fixtures{
		loader:  udf.NewRegistry(),
		release: make(chan struct{}),
		started: &atomic.Int32{},
		closed:  &atomic.Int32{},
	}
	f.loader.MustRegister(&udf.Class{
		Name: "test.StringIdentity",
		Kind: core.KindGeneric,
		New:  func() (any, error) { return stringIdentity{}, nil },
	})
	f.loader.MustRegister(&udf.Class{
		Name: "test.Void",
		Kind: core.KindGeneric,
		New:  func() (any, error) { return voidResult{}, nil },
	})
	f.loader.MustRegister(&udf.Class{
		Name: "test.Blocking",
		Kind: core.KindGeneric,
		New:  func() (any, error) { return blocking{release: f.release}, nil },
	})
	f.loader.MustRegister(&udf.Class{
		Name: "test.Closing",
		Kind: core.KindGeneric,
		New:  func() (any, error) { return closing{closed: f.closed}, nil },
	})
	f.loader.MustRegister(&udf.Class{
		Name: "test.SlowClosing",
		Kind: core.KindGeneric,
		New: func() (any, error) {
			return slowClosing{blocking: blocking{release: f.release}, started: f.started, closed: f.closed}, nil
		},
	})
	f.loader.MustRegister(&udf.Class{
		Name: "test.SlowFailingClose",
		Kind: core.KindGeneric,
		New: func() (any, error) {
			return slowClosing{
				blocking: blocking{release: f.release},
				started:  f.started,
				closed:   f.closed,
				closeErr: errors.New("handle busy"),
			}, nil
		},
	})
	f.loader.MustRegister(&udf.Class{
		Name: "test.Overloaded",
		Kind: core.KindSimple,
		New:  func() (any, error) { return overloaded{}, nil },
	})
	return f
}

func stringDef(name string) Definition {
	return Definition{
		Database: "default",
		Name:     name,
		Class:    "test.StringIdentity",
		Returns:  "string",
		Args:     []string{"string"},
	}
}
