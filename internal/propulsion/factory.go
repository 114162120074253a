package propulsion

import (
	"errors"
	"fmt"

	"vessel-propsim/internal/model"
)

// ErrUnsupportedType is returned for a type tag outside the closed set
// {conventional, dual-fuel, hybrid}.
var ErrUnsupportedType = errors.New("unsupported propulsion type")

// New dispatches on the configuration's type tag to the matching variant
// constructor. Construction is fail-fast: an unknown tag or an invalid
// config returns an error and no partially built system.
func New(cfg model.Config) (System, error) {
	switch cfg.Type {
	case model.TypeConventional:
		return NewConventional(cfg)
	case model.TypeDualFuel:
		return NewDualFuel(cfg)
	case model.TypeHybrid:
		return NewHybrid(cfg)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedType, cfg.Type)
	}
}
