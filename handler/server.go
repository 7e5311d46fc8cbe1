package handler

import (
	"net/http"

	"tokenledger/core"
	"tokenledger/handler/auth"
	"tokenledger/handler/hc"
	"tokenledger/handler/render"
	"tokenledger/handler/rest"

	"github.com/fox-one/pkg/logger"
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/rs/cors"
)

// Server server
type Server struct {
	version string
	ledgers core.LedgerService
	ping    hc.Pinger
}

// New new server function
func New(
	version string,
	ledgers core.LedgerService,
	ping hc.Pinger,
) Server {
	return Server{
		version: version,
		ledgers: ledgers,
		ping:    ping,
	}
}

// Handler root handler with hc and restful apis mounted
func (s Server) Handler() http.Handler {
	mux := chi.NewMux()
	mux.Use(middleware.Recoverer)
	mux.Use(middleware.StripSlashes)
	mux.Use(cors.AllowAll().Handler)
	mux.Use(logger.WithRequestID)
	mux.Use(middleware.Logger)
	mux.Use(middleware.NewCompressor(5).Handler)

	{
		//hc
		mux.Mount("/hc", hc.Handle(s.version, s.ping))
	}

	{
		//restful api
		mux.Mount("/api", s.HandleRestAPI())
	}

	return mux
}

// HandleRestAPI handle restful apis
func (s Server) HandleRestAPI() http.Handler {
	r := chi.NewRouter()
	r.Use(render.WrapResponse(true))
	r.Use(auth.HandleAuthentication())
	r.Mount("/", rest.Handle(s.ledgers))
	return r
}
