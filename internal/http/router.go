package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"persona-sim/internal/service"
)

// NewRouter configura el router de Gin con middlewares y rutas.
func NewRouter(
	logger *zap.Logger,
	jwtServ *service.JWTService,
	authH *AuthHandler,
	personaH *PersonaHandler,
	referenceH *ReferenceHandler,
) *gin.Engine {
	r := gin.New()

	// Middlewares basicos: logging, recovery y JSON content-type.
	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), jsonContentTypeMiddleware())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := r.Group("/auth")
	auth.POST("/register", authH.Register)
	auth.POST("/login", authH.Login)
	auth.POST("/refresh", authH.Refresh)
	auth.POST("/logout", authH.Logout)

	personas := r.Group("/personas")
	personas.Use(JWTAuthMiddleware(jwtServ))
	personas.POST("", personaH.CreatePersona)
	personas.GET("", personaH.ListPersonas)
	personas.GET("/:id", personaH.GetPersona)
	personas.DELETE("/:id", personaH.DeletePersona)
	personas.GET("/:id/timeline", personaH.Timeline)
	personas.POST("/:id/experiences", personaH.ApplyExperience)
	personas.GET("/:id/experiences", personaH.ListExperiences)
	personas.POST("/:id/interventions", personaH.ApplyIntervention)
	personas.GET("/:id/interventions", personaH.ListInterventions)

	reference := r.Group("/reference")
	reference.GET("/disorders", referenceH.ListDisorders)
	reference.GET("/disorders/:id", referenceH.GetDisorder)
	reference.GET("/therapies", referenceH.ListTherapies)
	reference.GET("/therapies/:id", referenceH.GetTherapy)
	reference.GET("/therapies/:id/match", referenceH.MatchTherapy)
	reference.GET("/stages/:age", referenceH.GetStage)

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
