package hc

import (
	"context"
	"net/http"
	"time"

	"tokenledger/handler/render"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/twitchtv/twirp"
)

// Pinger reports whether a backend is reachable
type Pinger func(ctx context.Context) error

// Handle handle hc request
func Handle(ver string, ping Pinger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.NoCache)
	r.Handle("/", handle(ver, ping))
	return r
}

func handle(version string, ping Pinger) http.HandlerFunc {
	b := time.Now()
	return func(w http.ResponseWriter, r *http.Request) {
		if ping != nil {
			if err := ping(r.Context()); err != nil {
				render.Error(w, twirp.NewError(twirp.Unavailable, err.Error()))
				return
			}
		}

		uptime := time.Since(b).Truncate(time.Millisecond)
		render.JSON(w, render.H{
			"uptime":  uptime.String(),
			"version": version,
		})
	}
}
