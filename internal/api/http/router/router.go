package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/ndbell/authstore/internal/api/http/handler"
	"github.com/ndbell/authstore/internal/api/http/middleware"
	"github.com/ndbell/authstore/internal/logger"
	"github.com/ndbell/authstore/internal/model"
)

// New constructs the storage API router. User and post route prefixes
// come from the static resource table.
func New(h *handler.Handler, auth *middleware.Authenticate, l *logger.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Logging(l))

	// Health endpoint stays outside the authenticated group.
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.Handle)

		r.Route(routeFor("users"), h.Users)
		r.Route(routeFor("posts"), h.Posts)
		r.Route("/sessions", h.Sessions)
		r.Route("/accounts", h.Accounts)
		r.Route("/verification-tokens", h.VerificationTokens)
	})

	return r
}

func routeFor(name string) string {
	res, ok := model.ResourceByName(name)
	if !ok {
		// Resources is a static table; a miss is a wiring bug.
		panic("unknown resource: " + name)
	}
	return res.Route
}
