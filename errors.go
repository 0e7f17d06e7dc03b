package equimesh

import "errors"

var (
	// ErrUnknownPotential is returned when a potential name is not in the registry.
	ErrUnknownPotential = errors.New("unknown potential")
	// ErrBadArity is returned when the parameter count does not match the
	// named potential's declared arity.
	ErrBadArity = errors.New("wrong number of parameters for potential")
	// ErrNotEnoughParameters is returned by loose-argument front ends when
	// fewer than the three mandatory arguments (delta, max triangle count,
	// potential name) are present.
	ErrNotEnoughParameters = errors.New("not enough parameters")
)
