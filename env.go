package alder

import "math"

// Env is the constant environment identifiers resolve against. It is
// populated at construction and read-only afterward; evaluation never
// mutates it, so one Env can serve any number of Eval calls.
type Env struct {
	names map[string]Value
}

// EnvOption is an option used when creating an environment.
type EnvOption interface {
	envOption(*Env)
}

type (
	constOpt struct {
		name string
		val  Value
	}
	constsOpt map[string]Value
)

func (o constOpt) envOption(e *Env) { e.names[o.name] = o.val.norm() }

func (o constsOpt) envOption(e *Env) {
	for k, v := range o {
		e.names[k] = v.norm()
	}
}

// WithConst adds a named constant to the environment.
func WithConst(name string, val Value) EnvOption {
	return constOpt{name, val}
}

// WithConsts adds any number of named constants to the environment.
func WithConsts(consts map[string]Value) EnvOption {
	return constsOpt(consts)
}

// NewEnv creates an environment holding the built-in mathematical constants
// pi, tau, e, and sqrt2, plus any constants given in options. Options apply
// in order, so later ones override earlier ones and the built-ins.
func NewEnv(opts ...EnvOption) *Env {
	e := &Env{names: map[string]Value{
		"pi":    FloatOf(math.Pi),
		"tau":   FloatOf(2 * math.Pi),
		"e":     FloatOf(math.E),
		"sqrt2": FloatOf(math.Sqrt2),
	}}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.envOption(e)
	}
	return e
}

// Lookup returns the value of a named constant.
func (e *Env) Lookup(name string) (Value, bool) {
	v, ok := e.names[name]
	return v, ok
}
