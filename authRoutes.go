package main

import (
	"database/sql"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// Route setup
func AuthRoutes(r *gin.Engine, db *sql.DB) {
	r.POST("/signup", func(c *gin.Context) {
		handleSignup(c, db)
	})
	r.POST("/login", func(c *gin.Context) {
		handleLogin(c, db)
	})
}

// =================== SIGNUP ===================

type SignupInput struct {
	Username string `json:"f_userName"`
	Email    string `json:"f_Email"`
	Password string `json:"f_Pwd"`
}

func handleSignup(c *gin.Context, db *sql.DB) {
	var input SignupInput
	if err := c.ShouldBindJSON(&input); err != nil || input.Username == "" || input.Email == "" || input.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "❌ Username, email, dan password wajib diisi"})
		return
	}

	email := strings.ToLower(input.Email)

	// Untuk akun
	// periksa apakah username atau email sudah terdaftar
	// frontend lama mengharapkan 400, bukan 409
	if accountExists(db, input.Username, email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "❌ Username atau email sudah terdaftar"})
		return
	}

	hashedPwd, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "❌ Gagal mengenkripsi password"})
		return
	}

	// f_sno = MAX(f_sno)+1 dihitung di dalam INSERT supaya tetap benar setelah restart
	_, err = db.Exec(`
		INSERT INTO accounts (f_sno, f_username, f_email, f_pwd)
		SELECT COALESCE(MAX(f_sno), 0) + 1, ?, ?, ? FROM accounts
	`, input.Username, email, string(hashedPwd))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "❌ Gagal mendaftarkan akun"})
		return
	}

	// record yang dibuat tidak pernah dikembalikan, hanya konfirmasi
	c.JSON(http.StatusCreated, gin.H{"message": "✅ Registrasi berhasil"})
}

// =================== LOGIN ===================

type LoginInput struct {
	Email    string `json:"f_Email"`
	Password string `json:"f_Pwd"`
}

func handleLogin(c *gin.Context, db *sql.DB) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil || input.Email == "" || input.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "❌ Email dan password wajib diisi"})
		return
	}

	account, found := findAccountByEmail(db, strings.ToLower(input.Email))
	if !found {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "❌ Email atau password salah"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "❌ Email atau password salah"})
		return
	}

	token, err := GenerateToken(account.ID, account.Email, account.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "❌ Gagal membuat token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "✅ Login berhasil",
		"token":   token,
		"user":    account,
	})
}

// =================== DATABASE HELPER ===================

func accountExists(db *sql.DB, username, email string) bool {
	var exists bool
	err := db.QueryRow(
		"SELECT EXISTS(SELECT 1 FROM accounts WHERE f_username = ? OR f_email = ?)",
		username, email,
	).Scan(&exists)
	return err == nil && exists
}

func findAccountByEmail(db *sql.DB, email string) (Account, bool) {
	var a Account
	err := db.QueryRow("SELECT id, f_sno, f_username, f_email, f_pwd FROM accounts WHERE f_email = ?", email).
		Scan(&a.ID, &a.Sno, &a.Username, &a.Email, &a.Password)
	return a, err == nil
}
