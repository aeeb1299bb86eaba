// Package validators holds generic single-predicate value validators.
package validators

import (
	"time"

	"github.com/cockroachdb/errors"
)

// UniqueList checks that a list has no repeated values.
func UniqueList[T comparable](v []T) error {
	seen := make(map[T]struct{}, len(v))
	for _, item := range v {
		if _, dup := seen[item]; dup {
			return errors.Newf("list must be unique, %v repeats", item)
		}
		seen[item] = struct{}{}
	}
	return nil
}

// DateTimeOrString checks that a value is a time.Time or a non-numeric
// string. Purely numeric strings are rejected since they are almost always
// a timestamp that lost its type on the way in.
func DateTimeOrString(v any) error {
	switch x := v.(type) {
	case time.Time:
		return nil
	case string:
		if isNumeric(x) {
			return errors.New("value must be a datetime or a non-numeric string")
		}
		return nil
	default:
		return errors.Newf("value type must be a datetime or a string, not %T", v)
	}
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
