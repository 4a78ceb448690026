// --- main.go ---
package main

import (
	"database/sql"
	"log"
	"os"

	"github.com/gin-gonic/gin"
)

func main() {
	// Koneksi ke database
	db, err := InitDB()
	if err != nil {
		log.Fatalf("❌ Gagal terhubung ke database: %v", err)
		return
	}

	r := SetupRouter(db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Menjalankan server
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Gagal menjalankan server: %v", err)
	}
}

// SetupRouter merakit engine Gin beserta semua route.
func SetupRouter(db *sql.DB) *gin.Engine {
	r := gin.Default()

	// CORS supaya frontend bisa akses API dari origin lain
	r.Use(CORSMiddleware())

	// Direktori upload di-serve sebagai static content
	// supaya path gambar di record bisa langsung dipakai browser
	r.Static("/uploads", UploadDir())

	AuthRoutes(r, db)
	EmployeeRoutes(r, db)

	return r
}

// CORSMiddleware mengizinkan request lintas origin dari frontend.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
