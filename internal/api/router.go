package api

import (
	"net/http" // HTTP status codes
	"time"     // CORS preflight cache

	"posyandu_system/internal/config"     // Application configuration
	"posyandu_system/internal/middleware" // JWT middleware

	"github.com/gin-contrib/cors" // CORS middleware
	"github.com/gin-gonic/gin"    // Gin web framework
	"github.com/sirupsen/logrus"  // Logrus for structured logging
	"gorm.io/gorm"                // GORM ORM library
)

// Deps are the collaborators the router wires into handlers
type Deps struct {
	Config  *config.Config
	DB      *gorm.DB
	Auth    Authenticator
	Records RecordService
}

// NewRouter builds the gin engine with every route registered
func NewRouter(d Deps) *gin.Engine {
	r := gin.Default() // Logger and Recovery middleware

	// Every origin is allowed
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
		MaxAge:          12 * time.Hour,
	}))

	r.GET("/health", HealthHandler(d.DB))

	// Auth routes
	r.POST("/register", RegisterHandler(d.Auth))
	r.POST("/login", LoginHandler(d.Auth))
	r.GET("/me", middleware.JWTAuthMiddleware(d.Config.JWTSecret), MeHandler(d.Auth))

	// Record routes, open unless REQUIRE_AUTH is set
	records := r.Group("")
	if d.Config.RequireAuth {
		records.Use(middleware.JWTAuthMiddleware(d.Config.JWTSecret))
	}
	records.GET("/hasil_pemeriksaan", ListHasilPemeriksaanHandler(d.Records))
	records.POST("/hasil_pemeriksaan", CreateHasilPemeriksaanHandler(d.Records))
	records.GET("/hasil_pemeriksaan/:id", GetHasilPemeriksaanHandler(d.Records))
	records.DELETE("/hasil_pemeriksaan/:id", DeleteHasilPemeriksaanHandler(d.Records))
	records.GET("/chartData", ChartDataHandler(d.Records))

	return r
}

// HealthHandler reports whether the database answers a ping
func HealthHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			logEntry(c).WithError(err).Warn("Health check failed")
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// logEntry tags a log line with the request it belongs to
func logEntry(c *gin.Context) *logrus.Entry {
	return logrus.WithFields(logrus.Fields{
		"method": c.Request.Method,
		"path":   c.FullPath(),
	})
}
