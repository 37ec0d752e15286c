package calc

import (
	"errors"
	"strconv"
)

// SymbolError indicates a run of characters that does not form a valid
// token. It implements InputError.
type SymbolError struct {
	// Col is the offset of the start of the offending run.
	Col int
	// Text is the scanned text, including the rune that invalidated it.
	Text string
}

func (err *SymbolError) Error() string {
	return errpos(err.Col, "unknown symbol")
}

func (err *SymbolError) Pos() int {
	return err.Col
}

// TokenError indicates a well-formed token in a position where the grammar
// does not allow it. It implements InputError.
type TokenError struct {
	// Col is the offset of the token.
	Col int
	// Token is the rendered token.
	Token string
}

func (err *TokenError) Error() string {
	return errpos(err.Col, "not expected here")
}

func (err *TokenError) Pos() int {
	return err.Col
}

// ErrIncomplete reports that the input ended before the grammar was
// satisfied, such as after a trailing operator or inside an unclosed
// parenthesis. It is a request for more input rather than a terminal error:
// an interactive caller should append the next line to its buffer and
// evaluate the concatenation, and should never display ErrIncomplete itself.
var ErrIncomplete = errors.New("incomplete expression")

// IsIncomplete reports whether err signals that more input is needed.
func IsIncomplete(err error) bool {
	return errors.Is(err, ErrIncomplete)
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting
// from invalid input, other than ErrIncomplete, implements InputError. The
// position is a 0-based rune offset into the original input, usable to
// align a caret under the offending character.
type InputError interface {
	error
	// Pos returns the offset of the token or symbol that caused the error.
	Pos() int
}

var (
	_ InputError = (*SymbolError)(nil)
	_ InputError = (*TokenError)(nil)
)
