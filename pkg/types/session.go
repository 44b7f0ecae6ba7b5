package types

// Session is the proof of an authenticated caller, extracted from a
// verified access token. Every mutation takes it explicitly; a nil
// session means the caller is anonymous.
type Session struct {
	UserID string
	Email  string
	Name   string
}

func (s *Session) Authenticated() bool {
	return s != nil && s.UserID != ""
}
