package model

// Session is the authenticated identity of the signed-in agent or admin.
// The zero value is an unauthenticated session.
type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	Role         Role   `json:"role"`
	UserID       string `json:"user_id"`
}

// Authenticated reports whether the session carries an access token. The
// token's freshness is not validated locally; an expired token surfaces as
// an auth error on the first call that uses it.
func (s Session) Authenticated() bool {
	return s.AccessToken != ""
}
