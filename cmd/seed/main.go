// Command seed populates a fresh database with a demo admin, a
// theatre, a handful of movies and one scheduled show per movie.
// Running it twice is safe for the admin and theatre (duplicates are
// skipped) but adds the movies and shows again, so it is meant for
// fresh development databases.
package main

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/joho/godotenv"

	"imovies/internal/config"
	"imovies/internal/database"
	"imovies/internal/model"
	"imovies/internal/repository"
)

const (
	adminUsername = "admin"
	adminEmail    = "admin@imovies.local"
	adminPassword = "admin1234"
	theatreName   = "Grand Central"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := database.Migrate(ctx, db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	admins := repository.NewAdminRepo(db)
	theatres := repository.NewTheatreRepo(db)
	movies := repository.NewMovieRepo(db)
	shows := repository.NewShowRepo(db)

	if _, err := admins.Create(ctx, adminUsername, adminEmail, adminPassword, cfg.BcryptCost); err != nil {
		if !errors.Is(err, repository.ErrEmailExists) {
			log.Fatalf("seed admin: %v", err)
		}
		log.Printf("admin %s already exists", adminEmail)
	}

	theatre := model.Theatre{
		TheatreName:  theatreName,
		Location:     "12 Station Road",
		BalconyPrice: 320,
		MiddlePrice:  250,
		LowerPrice:   180,
		Balcony:      model.SeatGrid{Rows: 2, Cols: 10},
		Middle:       model.SeatGrid{Rows: 4, Cols: 12},
		Lower:        model.SeatGrid{Rows: 3, Cols: 12},
		AdminEmail:   adminEmail,
	}
	if err := theatres.Create(ctx, &theatre); err != nil {
		if !errors.Is(err, repository.ErrConflict) {
			log.Fatalf("seed theatre: %v", err)
		}
		log.Printf("theatre %q already exists", theatreName)
	}

	catalog := []model.Movie{
		{
			MovieName:     "The Long Night",
			Description:   "A detective chases a case that refuses to close.",
			Genres:        "Crime,Drama",
			ReleaseDate:   "2025-11-07",
			Runtime:       128,
			Certification: "R",
			Media:         "https://images.imovies.local/the-long-night.jpg",
			AdminEmail:    adminEmail,
		},
		{
			MovieName:     "Paper Planes",
			Description:   "Two kids turn a schoolyard contest into a world championship.",
			Genres:        "Family,Comedy",
			ReleaseDate:   "2026-01-23",
			Runtime:       96,
			Certification: "PG",
			Media:         "https://images.imovies.local/paper-planes.jpg",
			AdminEmail:    adminEmail,
		},
		{
			MovieName:     "Orbital",
			Description:   "A repair crew is stranded on a decaying station.",
			Genres:        "Sci-Fi,Thriller",
			ReleaseDate:   "2026-03-13",
			Runtime:       141,
			Certification: "PG-13",
			Media:         "https://images.imovies.local/orbital.jpg",
			AdminEmail:    adminEmail,
		},
	}

	showTimes := []string{"14:30", "18:00", "21:15"}
	for i := range catalog {
		m := &catalog[i]
		if err := movies.Create(ctx, m); err != nil {
			log.Fatalf("seed movie %q: %v", m.MovieName, err)
		}
		s := model.Show{
			MovieID:     m.MovieID,
			TheatreName: theatreName,
			ShowDate:    time.Now().AddDate(0, 0, i+1).Format("2006-01-02"),
			ShowTime:    showTimes[i%len(showTimes)],
			AdminEmail:  adminEmail,
		}
		if err := shows.Create(ctx, &s); err != nil {
			log.Fatalf("seed show for %q: %v", m.MovieName, err)
		}
		log.Printf("seeded %q with show %s %s", m.MovieName, s.ShowDate, s.ShowTime)
	}

	log.Printf("seed complete: admin=%s password=%s", adminEmail, adminPassword)
}
