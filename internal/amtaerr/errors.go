// Package amtaerr formats the core's error kinds with source context,
// mirroring how the teacher's internal/errors package renders compiler
// diagnostics (file header, source line, caret, message).
package amtaerr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cwbudde/amta/internal/token"
)

// Kind identifies one of the error kinds fixed by the specification.
type Kind int

const (
	LexError Kind = iota
	ParseError
	TypeError
	ArityError
	LoopOverflow
	InvalidEscape
)

func (k Kind) String() string {
	switch k {
	case LexError:
		return "LexError"
	case ParseError:
		return "ParseError"
	case TypeError:
		return "TypeError"
	case ArityError:
		return "ArityError"
	case LoopOverflow:
		return "LoopOverflow"
	case InvalidEscape:
		return "InvalidEscape"
	default:
		return "Error"
	}
}

// Error is the single error type raised by every core component. Callers
// distinguish kinds with errors.As and the Kind field, never by parsing
// Error().
type Error struct {
	Kind    Kind
	Message string
	Source  string // full source text, for caret rendering; may be empty
	Pos     token.Position
}

// New constructs an Error at pos with a formatted message.
func New(kind Kind, pos token.Position, source string, format string, args ...interface{}) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Source:  source,
		Pos:     pos,
	}
}

// Error implements the error interface with plain (uncolored) formatting.
func (e *Error) Error() string {
	return e.Format(false)
}

// Format renders the error with a source-line caret, the way the teacher's
// CompilerError does. If color is true, ANSI codes highlight the caret.
func (e *Error) Format(color bool) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s at %d:%d\n", e.Kind, e.Pos.Line, e.Pos.Column)

	if line := e.sourceLine(e.Pos.Line); line != "" {
		prefix := fmt.Sprintf("%4d | ", e.Pos.Line)
		sb.WriteString(prefix)
		sb.WriteString(line)
		sb.WriteString("\n")

		sb.WriteString(strings.Repeat(" ", len(prefix)+max(e.Pos.Column-1, 0)))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(e.Message)
	if color {
		sb.WriteString("\033[0m")
	}

	return sb.String()
}

func (e *Error) sourceLine(line int) string {
	if e.Source == "" {
		return ""
	}
	lines := strings.Split(e.Source, "\n")
	if line < 1 || line > len(lines) {
		return ""
	}
	return lines[line-1]
}

// Is reports whether target is an *Error of the same Kind, so
// errors.Is(err, &amtaerr.Error{Kind: amtaerr.LexError}) matches any
// LexError regardless of message or position.
func (e *Error) Is(target error) bool {
	var other *Error
	if errors.As(target, &other) {
		return e.Kind == other.Kind
	}
	return false
}
