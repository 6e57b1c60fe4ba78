package models

// UserSession is echoed back by the stub auth endpoints. Nothing here is
// verified or persisted.
type UserSession struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}
