package rest

import (
	"context"
	"net/http"

	"tokenledger/core"
	"tokenledger/handler/param"
	"tokenledger/handler/render"
	"tokenledger/handler/request"

	"github.com/fox-one/pkg/logger"
	"github.com/twitchtv/twirp"
)

type actionFunc func(ctx context.Context, auth core.Authorization) (*core.Transaction, error)

// handleAction bind req, run do as the authenticated actor and render the journal entry
func handleAction(w http.ResponseWriter, r *http.Request, req interface{}, do actionFunc) {
	ctx := r.Context()
	log := logger.FromContext(ctx)

	auth, ok := request.NewContext(ctx).GetAuthorization()
	if !ok {
		render.Error(w, twirp.NewError(twirp.Unauthenticated, "missing actor"))
		return
	}

	if err := param.Binding(r, req); err != nil {
		render.Error(w, err)
		return
	}

	tx, err := do(ctx, auth)
	if err != nil {
		log.WithError(err).Infoln("action rejected")
		render.Error(w, err)
		return
	}

	log.WithField("trace", tx.TraceID).Debugf("%s committed as #%d", tx.Action, tx.ID)
	render.JSON(w, tx)
}

func createHandler(ledgers core.LedgerService, locked bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req core.CreateRequest
		handleAction(w, r, &req, func(ctx context.Context, auth core.Authorization) (*core.Transaction, error) {
			if locked {
				return ledgers.CreateLocked(ctx, auth, &req)
			}

			return ledgers.Create(ctx, auth, &req)
		})
	}
}

func issueHandler(ledgers core.LedgerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req core.IssueRequest
		handleAction(w, r, &req, func(ctx context.Context, auth core.Authorization) (*core.Transaction, error) {
			return ledgers.Issue(ctx, auth, &req)
		})
	}
}

func transferHandler(ledgers core.LedgerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req core.TransferRequest
		handleAction(w, r, &req, func(ctx context.Context, auth core.Authorization) (*core.Transaction, error) {
			return ledgers.Transfer(ctx, auth, &req)
		})
	}
}

func unlockHandler(ledgers core.LedgerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req core.UnlockRequest
		handleAction(w, r, &req, func(ctx context.Context, auth core.Authorization) (*core.Transaction, error) {
			return ledgers.Unlock(ctx, auth, &req)
		})
	}
}

func withdrawHandler(ledgers core.LedgerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req core.WithdrawRequest
		handleAction(w, r, &req, func(ctx context.Context, auth core.Authorization) (*core.Transaction, error) {
			return ledgers.Withdraw(ctx, auth, &req)
		})
	}
}

func burnHandler(ledgers core.LedgerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req core.BurnRequest
		handleAction(w, r, &req, func(ctx context.Context, auth core.Authorization) (*core.Transaction, error) {
			return ledgers.Burn(ctx, auth, &req)
		})
	}
}
