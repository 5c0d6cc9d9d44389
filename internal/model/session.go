package model

// Session is the result of a successful login.
type Session struct {
	Token string
	User  User
}
