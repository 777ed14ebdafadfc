package model

import "time"

type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Principal is the authenticated caller of a request.
type Principal struct {
	UserID int64  `json:"userId"`
	Email  string `json:"email"`
}
