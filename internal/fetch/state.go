// Package fetch models the lifecycle of one page section's data load.
package fetch

import (
	"context"
	"reflect"

	"github.com/Nixie-Tech-LLC/clubsite/internal/content"
)

type Status int

const (
	Idle Status = iota
	Loading
	Success
	Failure
)

func (s Status) String() string {
	switch s {
	case Loading:
		return "loading"
	case Success:
		return "success"
	case Failure:
		return "failure"
	}
	return "idle"
}

// State is Idle | Loading | Success(data) | Failure(err). The zero value is Idle.
type State[T any] struct {
	status Status
	data   T
	err    error
}

func Pending[T any]() State[T] { return State[T]{status: Loading} }

func Succeeded[T any](data T) State[T] { return State[T]{status: Success, data: data} }

func Failed[T any](err error) State[T] { return State[T]{status: Failure, err: err} }

// Load runs fn and folds its result into a settled State.
func Load[T any](ctx context.Context, fn func(context.Context) (T, error)) State[T] {
	data, err := fn(ctx)
	if err != nil {
		return Failed[T](err)
	}
	return Succeeded(data)
}

func (s State[T]) Status() Status { return s.status }
func (s State[T]) Data() T        { return s.data }
func (s State[T]) Err() error     { return s.err }

// The four predicates below are mutually exclusive; exactly one holds for
// every status, which is what templates branch on.

func (s State[T]) Pending() bool { return s.status == Idle || s.status == Loading }

func (s State[T]) Failed() bool { return s.status == Failure }

func (s State[T]) Empty() bool { return s.status == Success && isEmpty(s.data) }

func (s State[T]) Ready() bool { return s.status == Success && !isEmpty(s.data) }

// Message is the visitor-facing error text, empty unless Failed.
func (s State[T]) Message() string {
	if s.status != Failure {
		return ""
	}
	return content.Message(s.err)
}

// Or returns the data when Ready and fallback otherwise.
func (s State[T]) Or(fallback T) T {
	if s.Ready() {
		return s.data
	}
	return fallback
}

func isEmpty(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Invalid:
		return true
	case reflect.Slice, reflect.Map, reflect.Array, reflect.String:
		return rv.Len() == 0
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
