package domain

import "errors"

// Sentinel errors for domain operations
var (
	// ErrFetchFailed indicates a transport or decode failure talking to the API
	ErrFetchFailed = errors.New("failed to fetch data")

	// ErrNotFound indicates a name lookup returned no matches
	ErrNotFound = errors.New("character not found")
)

// User-visible error texts. Raw transport errors never reach the screen.
const (
	MsgFetchFailed = "Failed to fetch data"
	MsgNotFound    = "Character not found"
)

// UserMessage maps an error to the text a view displays
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, ErrNotFound) {
		return MsgNotFound
	}
	return MsgFetchFailed
}
