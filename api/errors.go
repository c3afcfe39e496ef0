package api

// MalformedResponseError reports a protocol violation: the server sent a
// response envelope without a status. It fails the whole session regardless
// of how many well-formed responses preceded it.
type MalformedResponseError struct{}

func (e *MalformedResponseError) Error() string {
	return "response from the server does not contain a status"
}
