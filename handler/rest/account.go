package rest

import (
	"net/http"

	"tokenledger/core"
	"tokenledger/handler/render"
	"tokenledger/handler/views"

	"github.com/go-chi/chi"
)

// balances of owner, an owner that never received funds has none
func balancesHandler(ledgers core.LedgerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner := chi.URLParam(r, "owner")
		balances, err := ledgers.Balances(r.Context(), owner)
		if err != nil {
			render.Error(w, err)
			return
		}

		balanceViews := make([]views.Balance, 0, len(balances))
		for _, b := range balances {
			balanceViews = append(balanceViews, views.BalanceView(b.Owner, b.Balance))
		}

		render.JSON(w, balanceViews)
	}
}

func balanceHandler(ledgers core.LedgerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner := chi.URLParam(r, "owner")
		balance, err := ledgers.Balance(r.Context(), owner, chi.URLParam(r, "symbol"))
		if err != nil {
			render.Error(w, err)
			return
		}

		render.JSON(w, views.BalanceView(owner, balance))
	}
}
