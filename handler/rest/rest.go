package rest

import (
	"errors"
	"net/http"

	"tokenledger/core"
	"tokenledger/handler/render"

	"github.com/go-chi/chi"
)

// Handle handle rest api request
func Handle(ledgers core.LedgerService) http.Handler {
	router := chi.NewRouter()

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		render.NotFoundRequest(w, errors.New("not found"))
	})

	router.Route("/actions", func(r chi.Router) {
		r.Post("/create", createHandler(ledgers, false))
		r.Post("/createlocked", createHandler(ledgers, true))
		r.Post("/issue", issueHandler(ledgers))
		r.Post("/transfer", transferHandler(ledgers))
		r.Post("/unlock", unlockHandler(ledgers))
		r.Post("/withdraw", withdrawHandler(ledgers))
		r.Post("/burn", burnHandler(ledgers))
	})

	router.Get("/stats", statsHandler(ledgers))
	router.Get("/stats/{symbol}", statHandler(ledgers))
	router.Get("/accounts/{owner}", balancesHandler(ledgers))
	router.Get("/accounts/{owner}/{symbol}", balanceHandler(ledgers))
	router.Get("/transactions", transactionsHandler(ledgers))

	return router
}
