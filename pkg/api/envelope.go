package api

// envelope is the uniform wrapper every vendor API endpoint returns:
// a success flag, an optional message, and payload fields next to them.
// Payload fields are only trustworthy when Success is true; when it is
// false the message travels out as a core.FetchError.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

func (e envelope) status() (bool, string) {
	return e.Success, e.Message
}

// responder is implemented by every response struct via an embedded
// envelope.
type responder interface {
	status() (bool, string)
}

// List is the shape of list-endpoint payloads: one page of items plus
// the total count for pagination.
type List[T any] struct {
	Items []T
	Count int
}
