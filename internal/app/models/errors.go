package models

const (
	CodeInvalidRequest       = "INVALID_REQUEST"
	CodeInternalServerError  = "INTERNAL_ERROR"
	CodeResourceNotFound     = "RESOURCE_NOT_FOUND"
	CodeUnprocessableContent = "UNPROCESSABLE_CONTENT"
	CodeUnauthenticated      = "UNAUTHENTICATED"
	CodeForbidden            = "FORBIDDEN"
	CodeExpired              = "EXPIRED"
	CodeConflict             = "CONFLICT"
	CodeTimeout              = "TIMEOUT"
	CodeAlreadyExists        = "RESOURCE_ALREADY_EXISTS"
)

type UnauthenticatedError struct {
	Err error
}

func NewUnauthenticatedError(err error) UnauthenticatedError {
	return UnauthenticatedError{Err: err}
}

func (e UnauthenticatedError) Error() string {
	return e.Err.Error()
}

func (e UnauthenticatedError) Unwrap() error {
	return e.Err
}

type ForbiddenError struct {
	Err error
}

func NewForbiddenError(err error) ForbiddenError {
	return ForbiddenError{Err: err}
}

func (e ForbiddenError) Error() string {
	return e.Err.Error()
}

func (e ForbiddenError) Unwrap() error {
	return e.Err
}

type ResourceNotFoundError struct {
	Err error
}

func NewResourceNotFoundError(err error) ResourceNotFoundError {
	return ResourceNotFoundError{Err: err}
}

func (e ResourceNotFoundError) Error() string {
	return e.Err.Error()
}

func (e ResourceNotFoundError) Unwrap() error {
	return e.Err
}

// ExpiredError is returned for a token past its expiry. Clients render it differently from an unknown token.
type ExpiredError struct {
	Err error
}

func NewExpiredError(err error) ExpiredError {
	return ExpiredError{Err: err}
}

func (e ExpiredError) Error() string {
	return e.Err.Error()
}

func (e ExpiredError) Unwrap() error {
	return e.Err
}

type ConflictError struct {
	Err error
}

func NewConflictError(err error) ConflictError {
	return ConflictError{Err: err}
}

func (e ConflictError) Error() string {
	return e.Err.Error()
}

func (e ConflictError) Unwrap() error {
	return e.Err
}

type InvalidInputError struct {
	Err error
}

func NewInvalidInputError(err error) InvalidInputError {
	return InvalidInputError{Err: err}
}

func (e InvalidInputError) Error() string {
	return e.Err.Error()
}

func (e InvalidInputError) Unwrap() error {
	return e.Err
}

type ResourceAlreadyExistsError struct {
	Err error
}

func NewResourceAlreadyExistsError(err error) ResourceAlreadyExistsError {
	return ResourceAlreadyExistsError{Err: err}
}

func (e ResourceAlreadyExistsError) Error() string {
	return e.Err.Error()
}

func (e ResourceAlreadyExistsError) Unwrap() error {
	return e.Err
}
