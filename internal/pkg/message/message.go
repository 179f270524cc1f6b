package message

const (
	InvalidInput   = "Invalid input."
	ServerError    = "An unexpected error occurred."
	Unauthorized   = "Unauthorized: Invalid admin key"
	NameRequired   = "Name is required"
	RequestTimeout = "Request cancelled or timed out."
	EnvErrFmt      = "environment variable is not set: %s"
	FmtErrStatus   = "rec.Code = %d, want: %d"
)
