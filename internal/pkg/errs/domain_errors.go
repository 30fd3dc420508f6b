package errs

import "errors"

// Error classes shared by usecases, handlers and the booking client.
var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrForbidden  = errors.New("forbidden")
	ErrTransient  = errors.New("transient failure")
)

type Class string

const (
	ClassUnknown    Class = "unknown"
	ClassValidation Class = "validation"
	ClassNotFound   Class = "not_found"
	ClassConflict   Class = "conflict"
	ClassForbidden  Class = "forbidden"
	ClassTransient  Class = "transient"
)

var classes = []struct {
	class Class
	err   error
}{
	{ClassValidation, ErrValidation},
	{ClassNotFound, ErrNotFound},
	{ClassConflict, ErrConflict},
	{ClassForbidden, ErrForbidden},
	{ClassTransient, ErrTransient},
}

// Classify creates a sentinel that also matches its class error.
func Classify(msg string, class error) error {
	return Mark(New(msg), class)
}

// Tag marks err with sentinel and with the class the sentinel belongs to.
// Marks are not transitive, so wrapping with Mark alone would drop the class.
func Tag(err error, sentinel error) error {
	out := Mark(err, sentinel)
	for _, c := range classes {
		if Is(sentinel, c.err) {
			return Mark(out, c.err)
		}
	}
	return out
}

func ClassOf(err error) Class {
	if err == nil {
		return ClassUnknown
	}
	for _, c := range classes {
		if Is(err, c.err) {
			return c.class
		}
	}
	return ClassUnknown
}
