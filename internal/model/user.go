package model

type User struct {
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	Ctime        int64  `json:"ctime"`
}
