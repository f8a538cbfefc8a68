// Package routing exposes the catalogue services over HTTP: a JSON API
// under /api, server-rendered pages, Prometheus metrics and a health
// check.
package routing

import (
	"net/http"

	"github.com/SystemBuilders/HouseRev/internal/service"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
)

// Services is everything the HTTP layer needs from the service layer.
type Services interface {
	service.PropertyService
	service.ReviewService
	service.CommentService
	service.FavoritesService
	service.ActivityService
	Stats() service.Stats
}

var _ Services = (*service.HousingService)(nil)

type handlerFunc func(w http.ResponseWriter, r *http.Request, svc Services)

func makeHandler(svc Services, h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h(w, r, svc)
	}
}

// SetupRouting adds all the routes on the http server. Metrics are
// registered on reg and exposed at /metrics.
func SetupRouting(svc Services, log zerolog.Logger, reg *prometheus.Registry, r *mux.Router) *mux.Router {
	m := newMetrics(reg, svc.Stats)

	r.Use(
		hlog.NewHandler(log),
		requestIDHandler(newIDSource()),
		hlog.AccessHandler(m.observe),
	)

	api := r.PathPrefix("/api").Subrouter()
	setupAPI(svc, api)
	setupPages(svc, r)

	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)
	return r
}

func setupAPI(svc Services, api *mux.Router) {
	api.HandleFunc("/properties", makeHandler(svc, createProperty)).Methods(http.MethodPost)
	api.HandleFunc("/properties", makeHandler(svc, listProperties)).Methods(http.MethodGet)
	api.HandleFunc("/properties/{id}", makeHandler(svc, getProperty)).Methods(http.MethodGet)
	api.HandleFunc("/properties/{id}", makeHandler(svc, updateProperty)).Methods(http.MethodPut)
	api.HandleFunc("/properties/{id}", makeHandler(svc, deleteProperty)).Methods(http.MethodDelete)

	api.HandleFunc("/properties/{id}/reviews", makeHandler(svc, createReview)).Methods(http.MethodPost)
	api.HandleFunc("/properties/{id}/reviews", makeHandler(svc, listReviews)).Methods(http.MethodGet)
	api.HandleFunc("/reviews/{id}", makeHandler(svc, getReview)).Methods(http.MethodGet)
	api.HandleFunc("/reviews/{id}", makeHandler(svc, updateReview)).Methods(http.MethodPut)
	api.HandleFunc("/reviews/{id}", makeHandler(svc, deleteReview)).Methods(http.MethodDelete)

	api.HandleFunc("/reviews/{id}/comments", makeHandler(svc, createComment)).Methods(http.MethodPost)
	api.HandleFunc("/reviews/{id}/comments", makeHandler(svc, listComments)).Methods(http.MethodGet)
	api.HandleFunc("/comments/{id}", makeHandler(svc, getComment)).Methods(http.MethodGet)
	api.HandleFunc("/comments/{id}", makeHandler(svc, updateComment)).Methods(http.MethodPut)
	api.HandleFunc("/comments/{id}", makeHandler(svc, deleteComment)).Methods(http.MethodDelete)

	api.HandleFunc("/favorites", makeHandler(svc, listFavorites)).Methods(http.MethodGet)
	api.HandleFunc("/favorites/{id}", makeHandler(svc, addFavorite)).Methods(http.MethodPost)
	api.HandleFunc("/favorites/{id}", makeHandler(svc, removeFavorite)).Methods(http.MethodDelete)

	api.HandleFunc("/activity", makeHandler(svc, listActivity)).Methods(http.MethodGet)
}
