package domain

type (
	UserProfile struct {
		Name  string
		Email string
	}

	// AuthSession is the client view of an authenticated session.
	// UserID addresses the server cart endpoints and is persisted
	// in its own storage slot, separate from the session blob.
	AuthSession struct {
		Authenticated bool
		UserID        string
		AccessToken   string
		Profile       UserProfile
	}

	Credentials struct {
		Email    string
		Password string
	}
)
