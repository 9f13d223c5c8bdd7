package response

const (
	MessageSuccess          = "Success"
	DefaultErrorMessage     = "Something went wrong"
	InternalServerErrorCode = 500

	// DateTimeFormat is the layout used for timestamps in responses.
	DateTimeFormat = "2006-01-02T15:04:05Z07:00"
)
