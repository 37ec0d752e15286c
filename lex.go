package calc

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

type lexToken struct {
	kind tokenKind
	num  float64
	pos  int
}

func (t lexToken) String() string {
	if t.kind == tokenNum {
		return strconv.FormatFloat(t.num, 'g', -1, 64) + "@" + strconv.Itoa(t.pos)
	}
	return t.kind.String() + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenNum is a numeric literal token.
	tokenNum
	tokenLParen
	tokenRParen
	tokenPlus
	tokenDash
	tokenStar
	tokenSlash
	tokenPercent
	tokenCaret
)

var tokenNames = [...]string{
	tokenNone:    "None",
	tokenEOF:     "EOF",
	tokenNum:     "Num",
	tokenLParen:  "(",
	tokenRParen:  ")",
	tokenPlus:    "+",
	tokenDash:    "-",
	tokenStar:    "*",
	tokenSlash:   "/",
	tokenPercent: "%",
	tokenCaret:   "^",
}

func (k tokenKind) String() string {
	if 0 <= int(k) && int(k) < len(tokenNames) {
		return tokenNames[k]
	}
	return "tokenKind(" + strconv.Itoa(int(k)) + ")"
}

// Operators contains the characters which lex as single-rune tokens.
const Operators = "()+-*/%^"

// operKinds[i] is the token kind for Operators[i].
var operKinds = [...]tokenKind{
	tokenLParen,
	tokenRParen,
	tokenPlus,
	tokenDash,
	tokenStar,
	tokenSlash,
	tokenPercent,
	tokenCaret,
}

type lexer struct {
	src io.RuneScanner
	buf strings.Builder
	// rune is the 0-based offset of the next rune to scan.
	rune int
	p    lexToken
	eof  bool
}

func lex(src io.RuneScanner) *lexer {
	return &lexer{src: src}
}

// push unreads a token so that it is the next token returned from next. Panics
// if there is already a pushed token.
func (l *lexer) push(tok lexToken) {
	if l.p.kind != tokenNone {
		panic("calc: double push")
	}
	l.p = tok
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.rune++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.rune--
}

// next scans the next token from the input. End of input is reported as a
// tokenEOF token with a nil error; scanning again after that, if the EOF
// token is not pushed back, reports io.EOF. A run of characters that does
// not form a token is a SymbolError at the start of the run, and the lexer
// must not be scanned further after yielding one.
func (l *lexer) next() (lexToken, error) {
	if l.p.kind != tokenNone {
		tok := l.p
		l.p = lexToken{}
		return tok, nil
	}
	if l.eof {
		return lexToken{}, io.EOF
	}
	defer l.buf.Reset()
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				l.eof = true
				return lexToken{kind: tokenEOF, pos: l.rune}, nil
			}
			return lexToken{}, err
		}
		if unicode.IsSpace(r) {
			continue
		}
		if k := strings.IndexRune(Operators, r); k >= 0 {
			// Operators is all ASCII, so the byte index is the table index.
			return lexToken{kind: operKinds[k], pos: l.rune - 1}, nil
		}
		l.unreadRune()
		return l.scanNum()
	}
}

// scanNum scans a numeric literal: ASCII digits with at most one dot. Any
// other rune ends the literal without being consumed. Text that does not
// parse as a base-10 float, including a bare dot or an empty run, is a
// SymbolError at the start of the run.
func (l *lexer) scanNum() (lexToken, error) {
	start := l.rune
	dot := false
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return lexToken{}, err
		}
		if r == '.' && !dot {
			dot = true
			l.buf.WriteRune(r)
			continue
		}
		if '0' <= r && r <= '9' {
			l.buf.WriteRune(r)
			continue
		}
		l.unreadRune()
		break
	}
	if l.buf.Len() == 0 {
		// Consume the offending rune so that it shows up in the error.
		r, _ := l.readRune()
		l.buf.WriteRune(r)
		return lexToken{}, &SymbolError{Col: start, Text: l.buf.String()}
	}
	num, err := strconv.ParseFloat(l.buf.String(), 64)
	if err != nil {
		return lexToken{}, &SymbolError{Col: start, Text: l.buf.String()}
	}
	return lexToken{kind: tokenNum, num: num, pos: start}, nil
}
