package rest

import (
	"net/http"

	"tokenledger/core"
	"tokenledger/handler/render"
	"tokenledger/handler/views"

	"github.com/go-chi/chi"
)

func statsHandler(ledgers core.LedgerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := ledgers.Stats(r.Context())
		if err != nil {
			render.Error(w, err)
			return
		}

		statViews := make([]views.Stat, 0, len(stats))
		for _, stat := range stats {
			statViews = append(statViews, views.StatView(stat))
		}

		render.JSON(w, statViews)
	}
}

func statHandler(ledgers core.LedgerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stat, err := ledgers.Stat(r.Context(), chi.URLParam(r, "symbol"))
		if err != nil {
			render.Error(w, err)
			return
		}

		render.JSON(w, views.StatView(stat))
	}
}
