package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"campussync/internal/auth"
	"campussync/internal/config"
	"campussync/internal/httpmiddleware"
	"campussync/internal/records"
	"campussync/internal/registry"
	"campussync/internal/router"
	"campussync/internal/session"
	"campussync/internal/store"
)

func main() {
	cfg := config.Load()

	if cfg.Env == "production" || cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := runHTTP(cfg); err != nil {
		log.Fatalf("http server failed: %v", err)
	}
}

func runHTTP(cfg config.App) error {
	db, err := store.NewDB(cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := context.Background()
	if err := db.Migrate(ctx); err != nil {
		return err
	}

	redisClient := store.NewRedis(cfg.RedisAddr)
	sessions := session.NewManager(redisClient, cfg.SessionIssuer, cfg.SessionSigningKey, cfg.SessionTTL)

	creds := auth.NewPGCredentials(db.Client)
	if cfg.AdminUsername != "" && cfg.AdminPassword != "" {
		if err := creds.EnsureAdmin(ctx, cfg.AdminUsername, cfg.AdminPassword); err != nil {
			log.Printf("warning: admin seed failed: %v", err)
		}
	}

	rt, err := router.New(router.Deps{
		Students: registry.NewStudents(db.Client),
		Faculty:  registry.NewFaculty(db.Client),
		Courses:  registry.NewCourses(db.Client),
		Subjects: registry.NewSubjects(db.Client),
		Notices:  registry.NewNotices(db.Client),
		Records:  records.NewRepository(db.Client),
	})
	if err != nil {
		return err
	}

	secureCookie := gin.Mode() == gin.ReleaseMode
	logins := router.NewAuthHandlers(auth.NewService(creds), sessions, secureCookie)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		SkipPaths: []string{"/healthz", "/metrics"},
	}))

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/healthz", func(c *gin.Context) {
		redisHealthy := redisClient.Healthy(c.Request.Context())
		dbHealthy := db.Client.PingContext(c.Request.Context()) == nil
		status := http.StatusOK
		if !redisHealthy || !dbHealthy {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, gin.H{"status": "ok", "redis": redisHealthy, "db": dbHealthy})
	})

	limiter := httpmiddleware.NewLoginLimiter(cfg.RateLimitPerMin, cfg.RateLimitPerMin)
	loginGroup := r.Group("/login", limiter.Middleware())
	loginGroup.POST("/admin", logins.LoginAdmin)
	loginGroup.POST("/student", logins.LoginStudent)
	loginGroup.POST("/faculty", logins.LoginFaculty)
	r.POST("/logout", logins.Logout)

	r.GET("/admin", session.RequireRole(sessions, session.RoleAdmin), rt.AdminGET)
	r.POST("/admin", session.RequireRole(sessions, session.RoleAdmin), rt.AdminPOST)
	r.GET("/student", session.RequireRole(sessions, session.RoleStudent), rt.StudentGET)
	r.GET("/faculty", session.RequireRole(sessions, session.RoleFaculty), rt.FacultyGET)

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Starting server on :%s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced shutdown: %v", err)
	}

	log.Println("Server exited")
	return nil
}
