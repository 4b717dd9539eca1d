package user

import "time"

/*
* O pacote user fica dentro de `internal`: só pode ser importado por pacotes deste módulo.
* Ele cuida de cadastro e login; a sessão fica em internal/session.
 */

// User is a registered account. PasswordHash never leaves this package's callers through the API.
type User struct {
	ID           int64     `db:"id"`
	Username     string    `db:"username"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

// Public returns a copy without the password hash
func (u User) Public() User {
	u.PasswordHash = ""
	return u
}
