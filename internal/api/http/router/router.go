package router

import (
	"net/http"

	"github.com/acmedash/invoicer-server/internal/api/http/handler"
	"github.com/acmedash/invoicer-server/internal/api/http/middleware"
	"github.com/acmedash/invoicer-server/internal/logger"
	"github.com/acmedash/invoicer-server/internal/model"
)

// Router assembles the HTTP mux from handlers and middleware.
type Router struct {
	invoiceService handler.InvoiceService
	authService    handler.AuthService
	tokens         model.TokenManager
	logger         *logger.Logger
}

// New creates a Router over the given services.
func New(
	invoiceService handler.InvoiceService,
	authService handler.AuthService,
	tokens model.TokenManager,
	logger *logger.Logger,
) *Router {
	return &Router{
		invoiceService: invoiceService,
		authService:    authService,
		tokens:         tokens,
		logger:         logger,
	}
}

// Register builds the mux with all routes attached. Invoice mutations sit
// behind session-token authentication; login is the only open route.
func (r *Router) Register() http.Handler {
	invoiceHandler := handler.NewInvoice(r.invoiceService, r.logger)
	authHandler := handler.NewAuth(r.authService, r.logger)
	authn := middleware.NewAuthenticate(r.tokens, r.logger)

	mux := http.NewServeMux()
	mux.Handle("POST /invoices", authn.Handle(http.HandlerFunc(invoiceHandler.Create)))
	mux.Handle("POST /invoices/{id}", authn.Handle(http.HandlerFunc(invoiceHandler.Update)))
	mux.Handle("POST /invoices/{id}/delete", authn.Handle(http.HandlerFunc(invoiceHandler.Delete)))
	mux.HandleFunc("POST /login", authHandler.Login)

	return middleware.NewLogging(r.logger).Handle(mux)
}
