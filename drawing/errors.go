package drawing

import (
	"errors"
	"fmt"

	"github.com/gogpu/ggplot/backend"
)

// ErrorKind classifies a drawing failure.
type ErrorKind uint8

const (
	// KindBackend is a failure reported by the drawing backend.
	KindBackend ErrorKind = iota
	// KindFont is a failure while measuring text.
	KindFont
	// KindLayout is a request that cannot be laid out, such as splitting
	// an area into zero rows.
	KindLayout
)

var kindNames = [...]string{
	KindBackend: "backend",
	KindFont:    "font",
	KindLayout:  "layout",
}

func (k ErrorKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", k)
}

// Error is the single error type returned by drawing areas.
// Backend and font failures keep the original error reachable through
// errors.Is and errors.As.
type Error struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	return "drawing: " + e.Op + ": " + e.Err.Error()
}

// Unwrap returns the underlying failure.
func (e *Error) Unwrap() error {
	return e.Err
}

// wrap attaches kind and op to err. Errors that already are *Error pass
// through unchanged so a failure is reported once at the layer it
// occurred in.
func wrap(kind ErrorKind, op string, err error) error {
	if err == nil {
		return nil
	}
	var de *Error
	if errors.As(err, &de) {
		return err
	}
	if kind == KindBackend || kind == KindFont {
		err = backend.Wrap(op, err)
	}
	return &Error{Kind: kind, Op: op, Err: err}
}

// IsKind reports whether err is a drawing error of kind k.
func IsKind(err error, k ErrorKind) bool {
	var de *Error
	return errors.As(err, &de) && de.Kind == k
}
