package utils

import (
	"errors"
	"fmt"
)

// TypedErr normalizes a value into an error. Strings become errors, empty
// strings and unknown types become nil.
func TypedErr(e interface{}) error {
	switch t := e.(type) {
	case error:
		return t
	case string:
		if t == "" {
			return nil
		}
		return errors.New(t)
	default:
		return nil
	}
}

// WrapError combines a main error with a sub error. The main error stays
// matchable with errors.Is; the sub error is attached as detail.
func WrapError(mainErr, subErr interface{}) error {
	main := TypedErr(mainErr)
	sub := TypedErr(subErr)

	switch {
	case main == nil && sub == nil:
		return nil
	case main == nil:
		return sub
	case sub == nil:
		return main
	default:
		return fmt.Errorf("%w: %v", main, sub)
	}
}
