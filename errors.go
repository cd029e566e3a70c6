package optional

import "github.com/pkg/errors"

var (
	ErrEmpty        = errors.New("no value is present")
	ErrNilAction    = errors.New("action is nil")
	ErrNilPredicate = errors.New("predicate is nil")
	ErrNilMapper    = errors.New("mapper is nil")
	ErrNilSupplier  = errors.New("supplier is nil")
)
