package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/kaustubhgharat/rentify-sub000/internal/config"
	"github.com/kaustubhgharat/rentify-sub000/internal/handler"
	"github.com/kaustubhgharat/rentify-sub000/internal/middleware"
	appmongo "github.com/kaustubhgharat/rentify-sub000/internal/mongo"
	"github.com/kaustubhgharat/rentify-sub000/internal/repository"
	"github.com/kaustubhgharat/rentify-sub000/internal/service"
	"github.com/kaustubhgharat/rentify-sub000/internal/token"
)

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	log := logger.Sugar()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalw("configuration", "err", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := appmongo.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatalw("mongo", "err", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Warnw("mongo disconnect", "err", err)
		}
	}()

	db := client.Database(cfg.MongoDB)
	if err := appmongo.EnsureIndexes(ctx, db); err != nil {
		log.Fatalw("mongo indexes", "err", err)
	}

	users := repository.NewMongoUserRepository(db)
	listings := repository.NewMongoListingRepository(db)
	roommates := repository.NewMongoRoommateRepository(db)
	reviews := repository.NewMongoReviewRepository(db)
	images := repository.NewGridFSImageStore(db)

	issuer := token.NewIssuer(cfg.JWTSecret, cfg.TokenTTL)
	verifier := token.NewVerifier(cfg.JWTSecret)

	authSvc := service.NewAuthService(users, issuer)
	listingSvc := service.NewListingService(listings, reviews, log)
	roommateSvc := service.NewRoommateService(roommates)
	reviewSvc := service.NewReviewService(reviews, listings, log)
	favoriteSvc := service.NewFavoriteService(users, listings, roommates)

	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(log))

	api := router.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true, "status": "ok"})
	})

	(&handler.AuthHandler{
		Auth:         authSvc,
		Verifier:     verifier,
		Log:          log,
		CookieMaxAge: int(cfg.TokenTTL.Seconds()),
		CookieSecure: cfg.CookieSecure,
	}).RegisterRoutes(api)
	(&handler.ListingHandler{Listings: listingSvc, Reviews: reviewSvc, Verifier: verifier, Log: log}).RegisterRoutes(api)
	(&handler.RoommateHandler{Roommates: roommateSvc, Verifier: verifier, Log: log}).RegisterRoutes(api)
	(&handler.ReviewHandler{Reviews: reviewSvc, Verifier: verifier, Log: log}).RegisterRoutes(api)
	(&handler.FavoriteHandler{Favorites: favoriteSvc, Verifier: verifier, Log: log}).RegisterRoutes(api)
	(&handler.PhotoHandler{Images: images, Verifier: verifier, Log: log}).RegisterRoutes(api)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Infow("listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("server", "err", err)
		}
	}()

	<-ctx.Done()
	log.Infow("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("shutdown", "err", err)
	}
}
