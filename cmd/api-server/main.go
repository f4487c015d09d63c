package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"artisanhub/internal/auth"
	"artisanhub/internal/bookings"
	"artisanhub/internal/catalog"
	"artisanhub/internal/events"
	"artisanhub/internal/messaging"
	"artisanhub/internal/reviews"
	"artisanhub/internal/session"
	"artisanhub/internal/submit"
	"artisanhub/pkg/database"
	"artisanhub/pkg/utils"
)

func main() {
	cfg := database.DefaultConfig()
	db := database.MustOpen(cfg)
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("db migrate failed: %v", err)
	}

	store := catalog.MustLoad()
	log.Printf("catalog loaded: %d categories, %d artisans", len(store.Categories()), len(store.Artisans()))

	router := gin.Default()

	// Optional: avoid "trusted all proxies" warning
	_ = router.SetTrustedProxies([]string{"127.0.0.1"})

	eventHub := events.NewHub()
	chatHub := messaging.NewHub(0)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": cfg.Path})
	})

	router.GET("/ready", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":        "not_ready",
				"db_error":      err.Error(),
				"event_clients": eventHub.Count(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":        "ready",
			"db":            "ok",
			"event_clients": eventHub.Count(),
		})
	})

	// Catalog (public)
	catalogHandler := catalog.NewHandler(store)
	catalogHandler.RegisterRoutes(router.Group(""))

	// Sessions (public)
	sessions := session.NewManager()
	session.NewHandler(sessions).RegisterRoutes(router.Group(""))

	// Contact submissions (public, fire-and-forget upstream)
	submitSvc := submit.NewSimulatedService(time.Second)
	submit.NewHandler(submitSvc, store).RegisterRoutes(router.Group(""))

	// Messaging + booking events
	router.GET("/ws/chat", messaging.WSHandler(chatHub))
	router.GET("/chat/history", messaging.HistoryHandler(chatHub))
	router.GET("/ws/events", events.WSHandler(eventHub))

	// Auth
	authCfg := utils.LoadAuthConfig()
	tokenSvc := auth.TokenService{
		Secret:   []byte(authCfg.JWTSecret),
		Issuer:   authCfg.JWTIssuer,
		Duration: authCfg.JWTDuration,
	}
	authRepo := auth.NewRepo(db)
	authHandler := auth.NewHandler(authRepo, tokenSvc)
	authHandler.RegisterRoutes(router.Group("/auth"))

	// Reviews (public listing, protected writes)
	reviewRepo := reviews.NewRepo(db)
	reviewHandler := reviews.NewHandler(reviewRepo, store)
	reviewHandler.RegisterPublicRoutes(router.Group(""))

	// Protected routes
	protected := router.Group("/users")
	protected.Use(auth.AuthMiddleware(tokenSvc, authRepo))

	protected.GET("/me", func(c *gin.Context) {
		claims := auth.MustGetClaims(c)
		c.JSON(http.StatusOK, gin.H{
			"id":    claims.UserID,
			"name":  claims.Name,
			"email": claims.Email,
		})
	})

	reviewHandler.RegisterProtectedRoutes(protected)

	bookingRepo := bookings.NewRepo(db)
	bookingHandler := bookings.NewHandler(bookingRepo, store, eventHub)
	bookingHandler.RegisterRoutes(protected)

	srvCfg := utils.LoadServerConfig()
	httpSrv := &http.Server{
		Addr:    srvCfg.HTTPAddr,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("HTTP API server listening on %s", srvCfg.HTTPAddr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Printf("shutdown signal received: %s", sig)
	case err := <-errCh:
		log.Printf("server error: %v", err)
	}

	log.Println("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Printf("http shutdown error: %v", err)
	}
	log.Println("server stopped")
}
