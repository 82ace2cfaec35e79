package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mood-mirror/internal/service"
)

// NewRouter configura el router de Gin con middlewares y rutas.
func NewRouter(
	logger *zap.Logger,
	jwtServ *service.JWTService,
	userH *UserHandler,
	moodH *MoodHandler,
	chatH *ChatHandler,
	personaH *PersonaHandler,
	statusH *StatusHandler,
) *gin.Engine {
	r := gin.New()

	// Middlewares basicos: logging, recovery y JSON content-type.
	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), jsonContentTypeMiddleware())

	// Rutas publicas.
	r.POST("/users", userH.Register)

	auth := r.Group("/auth")
	auth.POST("/login", userH.Login)
	auth.POST("/refresh", userH.RefreshToken)
	auth.POST("/logout", userH.Logout)

	r.GET("/status", statusH.GetStatus)
	r.GET("/healthz", statusH.Healthz)

	// Rutas autenticadas.
	protected := r.Group("")
	protected.Use(JWTAuthMiddleware(jwtServ))

	protected.POST("/analyze", moodH.Analyze)
	protected.POST("/compare", moodH.Compare)

	moods := protected.Group("/moods")
	moods.GET("/history", moodH.History)
	moods.GET("/analytics", moodH.Analytics)
	moods.GET("/similar", moodH.Similar)

	protected.POST("/chat", chatH.PostMessage)
	protected.GET("/chat/history", chatH.History)
	protected.DELETE("/chat/history", chatH.ClearHistory)

	personas := protected.Group("/personas")
	personas.GET("/:emotion", personaH.GetPersona)
	personas.GET("/:emotion/followup", personaH.GetFollowUp)

	return r
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// jsonContentTypeMiddleware fuerza Content-Type: application/json en responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}
