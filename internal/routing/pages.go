package routing

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/SystemBuilders/HouseRev/internal/domain"
	"github.com/SystemBuilders/HouseRev/internal/service"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/hlog"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

const recentActivityOnIndex = 10

// pages holds one template set per page, each sharing the layout.
var pages = parsePages("index", "properties", "property", "favorites")

func parsePages(names ...string) map[string]*template.Template {
	parsed := make(map[string]*template.Template, len(names))
	for _, name := range names {
		parsed[name] = template.Must(template.ParseFS(templateFS,
			"templates/layout.html", "templates/"+name+".html"))
	}
	return parsed
}

type indexPage struct {
	Stats      service.Stats
	Activity   []domain.Activity
	Properties []*domain.Property
}

type propertiesPage struct {
	Properties []*domain.Property
}

type reviewView struct {
	Review   *domain.Review
	Comments []*domain.Comment
}

type propertyPage struct {
	Property *domain.Property
	Favorite bool
	Reviews  []reviewView
}

type favoritesPage struct {
	Properties []*domain.Property
}

func setupPages(svc Services, r *mux.Router) {
	static, _ := fs.Sub(staticFS, "static")
	r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServerFS(static)))

	r.HandleFunc("/", makeHandler(svc, indexHandler)).Methods(http.MethodGet)
	r.HandleFunc("/properties", makeHandler(svc, propertiesHandler)).Methods(http.MethodGet)
	r.HandleFunc("/properties", makeHandler(svc, createPropertyForm)).Methods(http.MethodPost)
	r.HandleFunc("/properties/{id}", makeHandler(svc, propertyHandler)).Methods(http.MethodGet)
	r.HandleFunc("/properties/{id}", makeHandler(svc, updatePropertyForm)).Methods(http.MethodPost)
	r.HandleFunc("/properties/{id}/delete", makeHandler(svc, deletePropertyForm)).Methods(http.MethodPost)
	r.HandleFunc("/properties/{id}/reviews", makeHandler(svc, createReviewForm)).Methods(http.MethodPost)
	r.HandleFunc("/reviews/{id}/delete", makeHandler(svc, deleteReviewForm)).Methods(http.MethodPost)
	r.HandleFunc("/reviews/{id}/comments", makeHandler(svc, createCommentForm)).Methods(http.MethodPost)
	r.HandleFunc("/comments/{id}/delete", makeHandler(svc, deleteCommentForm)).Methods(http.MethodPost)
	r.HandleFunc("/favorites", makeHandler(svc, favoritesHandler)).Methods(http.MethodGet)
	r.HandleFunc("/favorites/{id}", makeHandler(svc, addFavoriteForm)).Methods(http.MethodPost)
	r.HandleFunc("/favorites/{id}/delete", makeHandler(svc, removeFavoriteForm)).Methods(http.MethodPost)
}

// render executes a page into a buffer first so a template error never
// leaves a half written response.
func render(w http.ResponseWriter, r *http.Request, name string, data any) {
	var buf bytes.Buffer
	if err := pages[name].ExecuteTemplate(&buf, "layout", data); err != nil {
		hlog.FromRequest(r).Error().Err(err).Str("page", name).Msg("rendering page")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func redirect(w http.ResponseWriter, r *http.Request, format string, args ...any) {
	http.Redirect(w, r, fmt.Sprintf(format, args...), http.StatusSeeOther)
}

// pageError answers a page request that failed: 422 for bad input and the
// service mapping otherwise, as plain text.
func pageError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusNotFound
	detail := detailFor(err)
	if detail == "" {
		hlog.FromRequest(r).Error().Err(err).Msg("unexpected service error")
		status = http.StatusInternalServerError
		detail = "internal server error"
	}
	http.Error(w, detail, status)
}

// pageID parses {id} for a page, answering 422 when it isn't an integer.
func pageID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "id: must be an integer", http.StatusUnprocessableEntity)
		return 0, false
	}
	return id, true
}

func indexHandler(w http.ResponseWriter, r *http.Request, svc Services) {
	render(w, r, "index", indexPage{
		Stats:      svc.Stats(),
		Activity:   svc.RecentActivity(recentActivityOnIndex),
		Properties: svc.ListProperties(),
	})
}

func propertiesHandler(w http.ResponseWriter, r *http.Request, svc Services) {
	render(w, r, "properties", propertiesPage{Properties: svc.ListProperties()})
}

func propertyHandler(w http.ResponseWriter, r *http.Request, svc Services) {
	id, ok := pageID(w, r)
	if !ok {
		return
	}

	prop, err := svc.GetProperty(id)
	if err != nil {
		pageError(w, r, err)
		return
	}

	reviews := svc.ListReviewsByProperty(id)
	views := make([]reviewView, 0, len(reviews))
	for _, review := range reviews {
		views = append(views, reviewView{
			Review:   review,
			Comments: svc.ListCommentsByReview(review.ID),
		})
	}

	render(w, r, "property", propertyPage{
		Property: prop,
		Favorite: svc.IsFavorite(id),
		Reviews:  views,
	})
}

func favoritesHandler(w http.ResponseWriter, r *http.Request, svc Services) {
	render(w, r, "favorites", favoritesPage{Properties: svc.ListFavorites()})
}

func createPropertyForm(w http.ResponseWriter, r *http.Request, svc Services) {
	var req propertyRequest
	if err := fromForm(r, &req); err != nil {
		http.Error(w, describe(err), http.StatusUnprocessableEntity)
		return
	}

	prop := svc.CreateProperty(*req.Title, *req.Country, *req.City)
	redirect(w, r, "/properties/%d", prop.ID)
}

func updatePropertyForm(w http.ResponseWriter, r *http.Request, svc Services) {
	id, ok := pageID(w, r)
	if !ok {
		return
	}

	var req propertyRequest
	if err := fromForm(r, &req); err != nil {
		http.Error(w, describe(err), http.StatusUnprocessableEntity)
		return
	}

	if _, err := svc.UpdateProperty(id, *req.Title, *req.Country, *req.City); err != nil {
		pageError(w, r, err)
		return
	}
	redirect(w, r, "/properties/%d", id)
}

func deletePropertyForm(w http.ResponseWriter, r *http.Request, svc Services) {
	id, ok := pageID(w, r)
	if !ok {
		return
	}

	if err := svc.DeleteProperty(id); err != nil {
		pageError(w, r, err)
		return
	}
	redirect(w, r, "/properties")
}

func createReviewForm(w http.ResponseWriter, r *http.Request, svc Services) {
	propertyID, ok := pageID(w, r)
	if !ok {
		return
	}

	var req reviewRequest
	if err := fromForm(r, &req); err != nil {
		http.Error(w, describe(err), http.StatusUnprocessableEntity)
		return
	}

	if _, err := svc.CreateReview(propertyID, *req.Title, *req.Body, *req.Rating); err != nil {
		pageError(w, r, err)
		return
	}
	redirect(w, r, "/properties/%d", propertyID)
}

func deleteReviewForm(w http.ResponseWriter, r *http.Request, svc Services) {
	id, ok := pageID(w, r)
	if !ok {
		return
	}

	review, err := svc.GetReview(id)
	if err != nil {
		pageError(w, r, err)
		return
	}
	if err := svc.DeleteReview(id); err != nil {
		pageError(w, r, err)
		return
	}
	redirectToProperty(w, r, svc, review.PropertyID)
}

func createCommentForm(w http.ResponseWriter, r *http.Request, svc Services) {
	reviewID, ok := pageID(w, r)
	if !ok {
		return
	}

	var req commentRequest
	if err := fromForm(r, &req); err != nil {
		http.Error(w, describe(err), http.StatusUnprocessableEntity)
		return
	}

	if _, err := svc.CreateComment(reviewID, *req.Body); err != nil {
		pageError(w, r, err)
		return
	}
	review, err := svc.GetReview(reviewID)
	if err != nil {
		pageError(w, r, err)
		return
	}
	redirectToProperty(w, r, svc, review.PropertyID)
}

func deleteCommentForm(w http.ResponseWriter, r *http.Request, svc Services) {
	id, ok := pageID(w, r)
	if !ok {
		return
	}

	comment, err := svc.GetComment(id)
	if err != nil {
		pageError(w, r, err)
		return
	}
	if err := svc.DeleteComment(id); err != nil {
		pageError(w, r, err)
		return
	}

	review, err := svc.GetReview(comment.ReviewID)
	if err != nil {
		redirect(w, r, "/properties")
		return
	}
	redirectToProperty(w, r, svc, review.PropertyID)
}

func addFavoriteForm(w http.ResponseWriter, r *http.Request, svc Services) {
	propertyID, ok := pageID(w, r)
	if !ok {
		return
	}

	if err := svc.AddFavorite(propertyID); err != nil {
		pageError(w, r, err)
		return
	}
	redirect(w, r, "/properties/%d", propertyID)
}

func removeFavoriteForm(w http.ResponseWriter, r *http.Request, svc Services) {
	propertyID, ok := pageID(w, r)
	if !ok {
		return
	}

	if err := svc.RemoveFavorite(propertyID); err != nil {
		pageError(w, r, err)
		return
	}
	redirect(w, r, "/favorites")
}

// redirectToProperty goes back to the property page, or to the property
// list when the property has been deleted in the meantime.
func redirectToProperty(w http.ResponseWriter, r *http.Request, svc Services, propertyID int) {
	if _, err := svc.GetProperty(propertyID); err != nil {
		redirect(w, r, "/properties")
		return
	}
	redirect(w, r, "/properties/%d", propertyID)
}
