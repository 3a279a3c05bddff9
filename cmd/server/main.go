package main // Entry point package

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"imovies/internal/config"
	"imovies/internal/database"
	"imovies/internal/handler"
	"imovies/internal/middleware"
	"imovies/internal/queue"
	"imovies/internal/repository"
	"imovies/internal/router"
)

func main() {
	// Load .env if present; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	migCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.Migrate(migCtx, db); err != nil {
		cancel()
		log.Fatalf("migrate: %v", err)
	}
	cancel()

	// Redis backs the public-route response cache and the rate limiter.
	// Both middlewares degrade to no-ops when the client is nil, so a
	// missing Redis never prevents startup.
	rdb := config.NewRedisClient()

	// Repositories
	users := repository.NewUserRepo(db)
	admins := repository.NewAdminRepo(db)
	movies := repository.NewMovieRepo(db)
	theatres := repository.NewTheatreRepo(db)
	shows := repository.NewShowRepo(db)
	tickets := repository.NewTicketRepo(db)
	bookings := repository.NewBookingRepo(db)
	favorites := repository.NewFavoriteRepo(db)
	reviews := repository.NewReviewRepo(db)

	// Handlers
	authH := handler.NewAuthHandler(cfg, users, admins)
	movieH := handler.NewMovieHandler(movies)
	theatreH := handler.NewTheatreHandler(theatres)
	showH := handler.NewShowHandler(shows, movies, theatres, tickets)
	bookingH := handler.NewBookingHandler(shows, movies, theatres, tickets, bookings)
	favoriteH := handler.NewFavoriteHandler(favorites, movies)
	reviewH := handler.NewReviewHandler(reviews, movies, users)

	e := echo.New()
	e.HideBanner = true

	router.RegisterRoutes(e)
	router.RegisterAuth(e, authH)
	router.RegisterAdmin(e, movieH, theatreH, showH, cfg.JWTSecret)
	router.RegisterUser(e, bookingH, favoriteH, reviewH, cfg.JWTSecret)
	router.RegisterPublic(e, movieH, theatreH, showH, reviewH,
		middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb),
		middleware.NewRedisCache(config.LoadCacheConfig(), rdb),
	)

	// Background consumer writing booking.created events to logs/booking.log.
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
