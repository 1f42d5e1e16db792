package models

// Principal is the authenticated identity extracted from a verified Firebase
// ID token by the auth middleware.
type Principal struct {
	UID       string `json:"uid"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url,omitempty"`
	Email     string `json:"email"`
}
