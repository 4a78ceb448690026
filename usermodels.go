package main

// Account adalah akun login (tabel accounts, dulu "t_login").
type Account struct {
	ID       int    `json:"id"`
	Sno      int    `json:"f_sno"`      // nomor urut, max+1 saat signup
	Username string `json:"f_userName"` // UNIQUE
	Email    string `json:"f_Email"`    // UNIQUE
	Password string `json:"-"`          // bcrypt hash, tidak pernah dikirim ke client
}
