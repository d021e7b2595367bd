package interp

import (
	"strconv"

	"github.com/cwbudde/amta/internal/amtaerr"
	"github.com/cwbudde/amta/internal/token"
)

func typeErrorf(pos token.Position, format string, args ...interface{}) error {
	return amtaerr.New(amtaerr.TypeError, pos, "", format, args...)
}

func arityErrorf(pos token.Position, format string, args ...interface{}) error {
	return amtaerr.New(amtaerr.ArityError, pos, "", format, args...)
}

func loopOverflowErrorf(pos token.Position, format string, args ...interface{}) error {
	return amtaerr.New(amtaerr.LoopOverflow, pos, "", format, args...)
}

// internalErrorf reports a condition the grammar should make unreachable
// (e.g. an AST node type the evaluator doesn't know about). It still
// surfaces as a TypeError rather than a panic, per §7's "no error is
// recovered inside the core; all propagate to the top level" contract.
func internalErrorf(pos token.Position, format string, args ...interface{}) error {
	return amtaerr.New(amtaerr.TypeError, pos, "", format, args...)
}

func itoa(i int) string {
	return strconv.Itoa(i)
}
