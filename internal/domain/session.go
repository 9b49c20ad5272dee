package domain

// User is the record the remote service keeps under /auth. The mock
// service stores plaintext passwords and embeds the favorites list
// directly in the user record; favorites mutations are read-modify-write
// against this whole struct.
type User struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Password  string   `json:"password,omitempty"`
	Favorites []string `json:"favorites"`
}

// Session is the authenticated-user context. At most one session is
// active per process. The token is an opaque placeholder the remote
// mock never validates; it is still sent as a bearer header so the
// client behaves like it would against a real backend.
type Session struct {
	UserID    string   `json:"id"`
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Favorites []string `json:"favorites"`
	Token     string   `json:"token"`
}

// RequestStatus tracks the lifecycle of an asynchronous operation
// against the remote service. Each slice keeps one shared status for
// all of its operations; the last operation to resolve wins.
type RequestStatus int

const (
	StatusIdle RequestStatus = iota
	StatusLoading
	StatusSucceeded
	StatusFailed
)

// String returns a human-readable request status.
func (s RequestStatus) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}
