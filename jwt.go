package main

import (
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/joho/godotenv"
)

// Inisialisasi secret key dari .env
var jwtSecret []byte

func init() {
	err := godotenv.Load()
	if err != nil {
		log.Println("⚠️ File .env tidak ditemukan, lanjut pakai environment bawaan")
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Println("⚠️ JWT_SECRET tidak di-set, pakai secret development (jangan dipakai di production)")
		secret = "employdir-dev-secret"
	}
	jwtSecret = []byte(secret)
}

// Claims sesuai payload token
type Claims struct {
	AccountID int    `json:"account_id"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	jwt.RegisteredClaims
}

// Fungsi untuk generate JWT token
func GenerateToken(accountID int, email string, username string) (string, error) {
	claims := Claims{
		AccountID: accountID,
		Email:     email,
		Username:  username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)), // Expired dalam 24 jam
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

// Middleware untuk validasi token dan set data akun ke context
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "❌ Token tidak ditemukan"})
			c.Abort()
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
			return jwtSecret, nil
		})

		if err != nil || !token.Valid {
			log.Printf("Token error: %v\n", err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "❌ Token tidak valid atau expired"})
			c.Abort()
			return
		}

		claims, ok := token.Claims.(*Claims)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "❌ Gagal parsing token"})
			c.Abort()
			return
		}

		// Simpan ke context
		c.Set("account_id", claims.AccountID)
		c.Set("email", claims.Email)
		c.Set("username", claims.Username)

		c.Next()
	}
}

// Helper untuk mengambil data dari context
func GetAccountID(c *gin.Context) int {
	return c.GetInt("account_id")
}

func GetEmail(c *gin.Context) string {
	return c.GetString("email")
}

func GetUsername(c *gin.Context) string {
	return c.GetString("username")
}
