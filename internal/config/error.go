package config

// Error reports bad arguments or configuration. It is always fatal.
type Error struct {
	msg string
	err error
}

func NewError(msg string, err error) *Error {
	return &Error{msg: msg, err: err}
}

func (e *Error) Error() string {
	if e.err == nil {
		return e.msg
	}
	return e.msg + ": " + e.err.Error()
}

func (e *Error) Unwrap() error {
	return e.err
}
