package engine

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/atomicstack/consolenav/internal/logging/events"
)

// ErrNotFinite is returned by ParseNumber for NaN and infinities.
var ErrNotFinite = errors.New("number is not finite")

// Number is the set of types ReadNumber can parse.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Check validates a parsed value. Valid is the base predicate; Against
// compares the value with Limit. Both must pass and a nil func always passes.
type Check[T Number] struct {
	Valid   func(T) bool
	Limit   T
	Against func(x, limit T) bool
}

// Accept applies both predicates.
func (c Check[T]) Accept(v T) bool {
	ok := true
	if c.Valid != nil {
		ok = c.Valid(v)
	}
	if c.Against != nil {
		ok = ok && c.Against(v, c.Limit)
	}
	return ok
}

// ParseNumber parses s as T, ignoring surrounding whitespace.
func ParseNumber[T Number](s string) (T, error) {
	var zero T
	s = strings.TrimSpace(s)
	rt := reflect.TypeOf(zero)
	switch rt.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v, err := strconv.ParseInt(s, 10, rt.Bits())
		if err != nil {
			return zero, err
		}
		return T(v), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v, err := strconv.ParseUint(s, 10, rt.Bits())
		if err != nil {
			return zero, err
		}
		return T(v), nil
	case reflect.Float32, reflect.Float64:
		v, err := strconv.ParseFloat(s, rt.Bits())
		if err != nil {
			return zero, err
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return zero, fmt.Errorf("%q: %w", s, ErrNotFinite)
		}
		return T(v), nil
	}
	return zero, fmt.Errorf("unsupported number type %s", rt)
}

// ReadNumber prompts until the line parses as T and passes check. On a bad
// value the error screen is shown: Escape gives up and returns the zero
// value with ok == false, any other key prompts again.
func ReadNumber[T Number](e *Engine, prompt string, check Check[T]) (T, bool, error) {
	var zero T
	e.trace.Input.Prompt(prompt)
	for {
		e.term.DrawInfo("", []string{prompt}, nil, false)
		line, err := e.term.ReadLine()
		if err != nil {
			return zero, false, err
		}
		v, perr := ParseNumber[T](line)
		switch {
		case perr != nil:
			e.trace.Input.Rejected(prompt, line, events.ReasonParse)
		case !check.Accept(v):
			e.trace.Input.Rejected(prompt, line, events.ReasonCheck)
		default:
			e.trace.Input.Accepted(prompt, line)
			return v, true, nil
		}
		again, err := e.retry(prompt)
		if err != nil || !again {
			return zero, false, err
		}
	}
}

// ReadString prompts for a line. With required, blank input is rejected and
// retried the same way ReadNumber retries.
func (e *Engine) ReadString(prompt string, required bool) (string, bool, error) {
	e.trace.Input.Prompt(prompt)
	for {
		e.term.DrawInfo("", []string{prompt}, nil, false)
		line, err := e.term.ReadLine()
		if err != nil {
			return "", false, err
		}
		if !required || strings.TrimSpace(line) != "" {
			e.trace.Input.Accepted(prompt, line)
			return line, true, nil
		}
		e.trace.Input.Rejected(prompt, line, events.ReasonEmpty)
		again, err := e.retry(prompt)
		if err != nil || !again {
			return "", false, err
		}
	}
}

// retry shows the error screen and reports whether to prompt again.
func (e *Engine) retry(prompt string) (bool, error) {
	e.term.DrawInfo(e.text.Get("error"), e.text.Lines("rerun"), nil, false)
	key, err := e.term.ReadKey()
	if err != nil {
		return false, err
	}
	if key == KeyEscape {
		e.trace.Input.Interrupted(prompt)
		return false, nil
	}
	return true, nil
}
