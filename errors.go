package mtrand

// Error represents a host globals registry error code.
type Error int

// Error codes.
const (
	ErrNone           Error = 0
	ErrGlobalExists   Error = 1
	ErrGlobalNotFound Error = 2
	ErrGlobalName     Error = 3
	ErrNilHost        Error = 4
)

// errMessages contains the message for each error code.
var errMessages = [5]string{
	"No error",
	"Global variable already exists",
	"Global variable not found",
	"Invalid global variable name",
	"Host is nil",
}

// Error implements the error interface.
func (e Error) Error() string {
	if e >= 0 && int(e) < len(errMessages) {
		return errMessages[e]
	}
	return "unknown error"
}
