package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func protectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", AuthMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"account_id": GetAccountID(c),
			"email":      GetEmail(c),
			"username":   GetUsername(c),
		})
	})
	return r
}

func TestTokenRoundTrip(t *testing.T) {
	r := protectedRouter()

	token, err := GenerateToken(7, "a@x.com", "alice")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"alice"`)
	assert.Contains(t, w.Body.String(), `"account_id":7`)
}

func TestAuthMiddlewareRejects(t *testing.T) {
	r := protectedRouter()

	tests := []struct {
		name   string
		header string
	}{
		{name: "tanpa header", header: ""},
		{name: "tanpa prefix Bearer", header: "token-polos"},
		{name: "token rusak", header: "Bearer bukan.token.valid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}
