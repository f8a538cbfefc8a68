package routing

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/SystemBuilders/HouseRev/internal/service"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/hlog"
)

// Not found details returned to clients.
const (
	detailPropertyNotFound = "Property not found"
	detailReviewNotFound   = "Review not found"
	detailCommentNotFound  = "Comment not found"
	detailFavoriteNotFound = "Favorite not found"
)

type errorBody struct {
	Detail string `json:"detail"`
}

type messageBody struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorBody{Detail: detail})
}

func writeMessage(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, messageBody{Message: message})
}

// detailFor returns the not found detail matching err, or "" if err is
// not a not found error.
func detailFor(err error) string {
	switch {
	case errors.Is(err, service.ErrPropertyNotFound):
		return detailPropertyNotFound
	case errors.Is(err, service.ErrReviewNotFound):
		return detailReviewNotFound
	case errors.Is(err, service.ErrCommentNotFound):
		return detailCommentNotFound
	case errors.Is(err, service.ErrFavoriteNotFound):
		return detailFavoriteNotFound
	}
	return ""
}

// writeServiceError translates a service error into a client response.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	if detail := detailFor(err); detail != "" {
		writeError(w, http.StatusNotFound, detail)
		return
	}
	hlog.FromRequest(r).Error().Err(err).Msg("unexpected service error")
	writeError(w, http.StatusInternalServerError, "internal server error")
}

// pathID parses the {id} route variable.
func pathID(r *http.Request) (int, error) {
	return strconv.Atoi(mux.Vars(r)["id"])
}

// withID parses {id} and answers 422 when it isn't an integer.
func withID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "id: must be an integer")
		return 0, false
	}
	return id, true
}
