package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"posyandu_system/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/secure", JWTAuthMiddleware("rahasia"), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userID": c.MustGet(ContextUserID), "email": c.MustGet(ContextEmail)})
	})
	return r
}

func TestJWTAuthMiddleware(t *testing.T) {
	valid, err := utils.GenerateJWT(3, "ani@example.com", "rahasia", time.Hour)
	require.NoError(t, err)
	expired, err := utils.GenerateJWT(3, "ani@example.com", "rahasia", -time.Hour)
	require.NoError(t, err)
	foreign, err := utils.GenerateJWT(3, "ani@example.com", "lain", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name           string
		header         string
		expectedStatus int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized},
		{"expired token", "Bearer " + expired, http.StatusUnauthorized},
		{"wrong secret", "Bearer " + foreign, http.StatusUnauthorized},
		{"valid token", "Bearer " + valid, http.StatusOK},
	}
	router := newTestRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/secure", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
			if tt.expectedStatus == http.StatusOK {
				require.JSONEq(t, `{"userID":3,"email":"ani@example.com"}`, w.Body.String())
			}
		})
	}
}
