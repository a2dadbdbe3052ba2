// Package models defines server-side records persisted by the repositories.
package models

import "time"

// User is an account. PasswordHash is the bcrypt hash and is never serialized
// to clients. Tokens are the currently valid auth tokens, oldest first.
type User struct {
	ID           string    `bson:"_id"`
	Email        string    `bson:"email"`
	PasswordHash string    `bson:"password"`
	Tokens       []Token   `bson:"tokens"`
	CreatedAt    time.Time `bson:"createdAt"`
}

// Token is one issued credential of a user.
type Token struct {
	Access string `bson:"access"`
	Token  string `bson:"token"`
}

// HasToken reports whether value is among the user's tokens.
func (u *User) HasToken(value string) bool {
	for _, t := range u.Tokens {
		if t.Token == value {
			return true
		}
	}
	return false
}
