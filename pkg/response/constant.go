package response

const (
	DateTimeFormat = "2006-01-02T15:04:05Z07:00"

	MessageSuccess    = "Success"
	MessageInternal   = "Something went wrong"
	MessageBadRequest = "Bad request"
)
