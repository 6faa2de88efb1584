package golisp

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

var macros map[rune]func(r *bufio.Reader) (Value, error)

func init() {
	macros = map[rune]func(r *bufio.Reader) (Value, error){
		';': commentReader,
		'(': listReader,
		')': unmatchedDelimiterReader,
	}
}

// errSkip is returned by macros that consume input without producing a value.
var errSkip = errors.New("skip")

func isWhitespace(ch rune) bool {
	return unicode.IsSpace(ch) || ch == ','
}

// Read reads one datum: an integer, a symbol or a parenthesized list.
// It returns io.EOF when the input holds nothing but whitespace and comments.
func Read(r *bufio.Reader) (Value, error) {
	for {
		ch, _, err := r.ReadRune()

		for err == nil && isWhitespace(ch) {
			ch, _, err = r.ReadRune()
		}

		if err != nil {
			return nil, err
		}

		macroFn, isMacro := macros[ch]
		if isMacro {
			ret, err := macroFn(r)
			if err == errSkip {
				continue
			}
			return ret, err
		}

		return interpretToken(readToken(r, ch)), nil
	}
}

// Parse reads a whole program. The text must hold exactly one top-level
// list.
func Parse(src string) (Value, error) {
	r := bufio.NewReader(strings.NewReader(src))
	val, err := Read(r)
	if err == io.EOF {
		return nil, &SyntaxError{Msg: "expected (, got end of input"}
	}
	if err != nil {
		return nil, err
	}
	if _, isList := val.(List); !isList {
		return nil, &SyntaxError{Msg: "expected (, got " + Print(val)}
	}

	extra, err := Read(r)
	if err == io.EOF {
		return val, nil
	}
	if err != nil {
		return nil, err
	}
	return nil, &SyntaxError{Msg: "unexpected data after program: " + Print(extra)}
}

func readToken(r *bufio.Reader, initch rune) string {
	var sb strings.Builder
	sb.WriteRune(initch)

	for {
		ch, _, err := r.ReadRune()
		if err != nil {
			return sb.String()
		}
		if isWhitespace(ch) || isMacro(ch) {
			r.UnreadRune()
			return sb.String()
		}

		sb.WriteRune(ch)
	}
}

// anything that does not parse as an int64 is a symbol
func interpretToken(s string) Value {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Integer(i)
	}
	return Symbol(s)
}

func isMacro(ch rune) bool {
	_, ismacro := macros[ch]
	return ismacro
}

func commentReader(r *bufio.Reader) (Value, error) {
	ch, _, err := r.ReadRune()
	for err == nil && ch != '\n' && ch != '\r' {
		ch, _, err = r.ReadRune()
	}
	return nil, errSkip
}

func listReader(r *bufio.Reader) (Value, error) {
	l := List{}
	err := readDelimitedList(r, ')', func(item Value) {
		l = append(l, item)
	})
	if err != nil {
		return nil, err
	}
	return l, nil
}

func unmatchedDelimiterReader(r *bufio.Reader) (Value, error) {
	return nil, &SyntaxError{Msg: "unmatched delimiter )"}
}

func readDelimitedList(r *bufio.Reader, delim rune, add func(Value)) error {
	for {
		ch, _, err := r.ReadRune()

		for err == nil && isWhitespace(ch) {
			ch, _, err = r.ReadRune()
		}

		if err == io.EOF {
			return &SyntaxError{Msg: "unexpected end of input, expected " + string(delim), Incomplete: true}
		}
		if err != nil {
			return err
		}

		if ch == delim {
			return nil
		}

		macroFn, isMacro := macros[ch]
		if isMacro {
			mret, err := macroFn(r)
			if err == errSkip {
				continue
			}
			if err != nil {
				return err
			}
			add(mret)
		} else {
			add(interpretToken(readToken(r, ch)))
		}
	}
}
