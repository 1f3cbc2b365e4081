// SPDX-License-Identifier: GPL-2.0-or-later

package scene

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// field is one token of a scene line.
type field struct {
	s string
}

func (f field) String() string {
	return f.s
}

func (f field) Float32() (float32, error) {
	r, err := strconv.ParseFloat(f.s, 32)
	if err != nil {
		return 0, err
	}
	return float32(r), nil
}

// fields splits one line into tokens. Double quotes group words, a '#' or
// '//' token starts a comment running to the end of the line.
func fields(line string) ([]field, error) {
	var r []field
	l := lex(line)
	for {
		i := l.nextItem()
		switch i.typ {
		case itemWord:
			r = append(r, field{i.val})
		case itemString:
			s := strings.TrimPrefix(i.val, `"`)
			s = strings.TrimSuffix(s, `"`)
			r = append(r, field{s})
		case itemSpace:
			continue
		case itemEOF:
			return r, nil
		default:
			return r, fmt.Errorf("%s", i.val)
		}
	}
}

type itemType int

const (
	itemError itemType = iota
	itemEOF
	itemString // quoted string includes quotes
	itemSpace
	itemWord
)
const eof = -1

type item struct {
	typ itemType
	val string
}

func (i item) String() string {
	switch i.typ {
	case itemEOF:
		return "EOF"
	case itemError:
		return i.val
	}
	if len(i.val) > 10 {
		return fmt.Sprintf("%.10q...", i.val)
	}
	return fmt.Sprintf("%q", i.val)
}

type stateFn func(*lexer) stateFn

type lexer struct {
	input string
	start int
	pos   int
	width int
	items chan item
	state stateFn
}

func lex(input string) *lexer {
	l := &lexer{
		input: input,
		items: make(chan item, 2),
		state: lexAction,
	}
	return l
}

func (l *lexer) nextItem() item {
	for {
		select {
		case item := <-l.items:
			return item
		default:
			l.state = l.state(l)
		}
	}
}

func (l *lexer) emit(t itemType) {
	l.items <- item{t, l.input[l.start:l.pos]}
	l.start = l.pos
}

func (l *lexer) next() rune {
	if l.pos >= len(l.input) {
		l.width = 0
		return eof
	}
	r, w := utf8.DecodeRuneInString(l.input[l.pos:])
	l.width = w
	l.pos += l.width
	return r
}

func (l *lexer) backup() {
	l.pos -= l.width
}

func (l *lexer) peek() rune {
	r := l.next()
	l.backup()
	return r
}

func (l *lexer) errorf(format string, args ...interface{}) stateFn {
	l.items <- item{
		itemError,
		fmt.Sprintf(format, args...),
	}
	return lexEnd
}

// lexEnd keeps returning EOF once the line is done.
func lexEnd(l *lexer) stateFn {
	l.items <- item{itemEOF, ""}
	return lexEnd
}

func lexWord(l *lexer) stateFn {
	for isWordRune(l.next()) {
	}
	l.backup()
	l.emit(itemWord)
	return lexAction
}

func lexAction(l *lexer) stateFn {
	switch r := l.next(); {
	case r == eof || isEndOfLine(r):
		l.emit(itemEOF)
		return lexEnd
	case isSpace(r):
		return lexSpace
	case r == '"':
		return lexQuote
	case r == '#':
		l.emit(itemEOF)
		return lexEnd
	case r == '/':
		// special look-ahead so we don't break l.backup().
		if l.pos < len(l.input) && l.input[l.pos] == '/' {
			// just drop the rest of this line
			l.emit(itemEOF)
			return lexEnd
		}
		fallthrough
	case isWordRune(r):
		l.backup()
		return lexWord
	default:
		return l.errorf("unhandled char: %#U", r)
	}
}

func lexSpace(l *lexer) stateFn {
	for isSpace(l.peek()) {
		l.next()
	}
	l.emit(itemSpace)
	return lexAction
}

func lexQuote(l *lexer) stateFn {
Loop:
	for {
		switch l.next() {
		case '"':
			break Loop
		case eof, '\n':
			return l.errorf("unterminated string")
		}
	}
	l.emit(itemString)
	return lexAction
}

func isWordRune(r rune) bool {
	return r > ' ' && r != '"'
}

func isEndOfLine(r rune) bool {
	return r == '\r' || r == '\n'
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t'
}
