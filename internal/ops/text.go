package ops

import (
	"fmt"
	"strings"
)

func asString(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("want text, got %T", v)
	}
	return s, nil
}

func textOp(name, desc string, fn func(string) (string, error)) Op {
	return &funcOp{name: name, desc: desc, fn: func(v any) (any, error) {
		s, err := asString(v)
		if err != nil {
			return nil, err
		}
		return fn(s)
	}}
}

// Upper returns the uppercasing operation.
func Upper() Op {
	return textOp("upper", "uppercase the input text", func(s string) (string, error) {
		return strings.ToUpper(s), nil
	})
}

// Trim returns the whitespace-trimming operation.
func Trim() Op {
	return textOp("trim", "trim surrounding whitespace", func(s string) (string, error) {
		return strings.TrimSpace(s), nil
	})
}

// Reverse returns the text-reversal operation.
func Reverse() Op {
	return textOp("reverse", "reverse the input text", func(s string) (string, error) {
		runes := []rune(s)
		for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
			runes[i], runes[j] = runes[j], runes[i]
		}
		return string(runes), nil
	})
}

// Announce returns a pass-through operation that prints its input to
// standard output. Under StrictOutput the print fails the step, which
// makes announce the canonical demo for level-3 strictness.
func Announce() Op {
	return &funcOp{name: "announce", desc: "print the value to stdout and pass it through", fn: func(v any) (any, error) {
		fmt.Printf("announcing: %v\n", v)
		return v, nil
	}}
}
