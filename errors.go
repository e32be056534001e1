package rangestr

import (
	"github.com/pkg/errors"
)

// ErrInvalidRange is returned, wrapped with the offending token, for every
// expression Parse rejects.
var ErrInvalidRange = errors.New("invalid range expression")

func invalidf(format string, a ...interface{}) error {
	return errors.Wrapf(ErrInvalidRange, format, a...)
}
