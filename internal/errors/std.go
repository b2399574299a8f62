package errors

import stderrors "errors"

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool { return stderrors.Is(err, target) }

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool { return stderrors.As(err, target) }

// HasCode reports whether err's chain contains an *HxError with code.
func HasCode(err error, code string) bool {
	for err != nil {
		if he, ok := err.(*HxError); ok && he.Code == code {
			return true
		}
		err = stderrors.Unwrap(err)
	}
	return false
}
