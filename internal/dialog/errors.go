package dialog

// Error carries a stable code surfaced in handler summary logs.
type Error struct {
	code string
	msg  string
}

// Error returns the human-readable message.
func (e *Error) Error() string { return e.msg }

// Code returns the machine-readable error code.
func (e *Error) Code() string { return e.code }

var (
	// ErrPermissionDenied rejects authoring entry for anyone but the admin.
	ErrPermissionDenied = &Error{code: "PERMISSION_DENIED", msg: "only the administrator can do that"}
	// ErrUnexpectedInput signals input that does not match the current stage.
	ErrUnexpectedInput = &Error{code: "INVALID_INPUT", msg: "unexpected input for the current step"}
	// ErrEmptyTitle rejects blank titles during the title stage.
	ErrEmptyTitle = &Error{code: "INVALID_INPUT", msg: "title must not be empty"}
)
