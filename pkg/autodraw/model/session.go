package model

// Session is the authenticated identity used for automation fetches. It is empty until a
// successful login and cleared by logout.
type Session struct {
	AuthToken   string
	CurrentUser string
	Role        string
	Verified    bool
}

// IsZero reports whether the session carries no token.
func (s Session) IsZero() bool {
	return s.AuthToken == ""
}
