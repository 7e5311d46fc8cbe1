package rest

import (
	"net/http"

	"tokenledger/core"
	"tokenledger/handler/param"
	"tokenledger/handler/render"
)

// journal entries after id `from`
func transactionsHandler(ledgers core.LedgerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var params struct {
			From  int64 `json:"from"`
			Limit int   `json:"limit"`
		}

		if e := param.Binding(r, &params); e != nil {
			render.Error(w, e)
			return
		}

		transactions, e := ledgers.Transactions(ctx, params.From, params.Limit)
		if e != nil {
			render.Error(w, e)
			return
		}

		render.JSON(w, transactions)
	}
}
