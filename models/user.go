package models

type User struct {
	ID           int    `json:"id" db:"id"`
	Email        string `json:"email" db:"email"`
	PasswordHash string `json:"-" db:"password_hash"`
	Nickname     string `json:"nickname" db:"nickname"`
	Theme        string `json:"theme" db:"theme"`
}
