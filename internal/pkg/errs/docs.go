// Package errs holds the error kinds shared by the domain and the
// application layer.
//
// Each kind pairs a sentinel (ErrObjectNotFound, ErrValueIsInvalid,
// ErrValueIsOutOfRange, ErrValueIsRequired, ErrStateIsInvalid) with a struct
// carrying the offending parameter. Unwrap returns the sentinel, so callers
// can branch with errors.Is and read details with errors.As. The HTTP
// adapter maps the kinds onto status codes.
package errs
