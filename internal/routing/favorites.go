package routing

import (
	"net/http"
	"strconv"
)

const defaultActivityLimit = 20

func addFavorite(w http.ResponseWriter, r *http.Request, svc Services) {
	propertyID, ok := withID(w, r)
	if !ok {
		return
	}

	if err := svc.AddFavorite(propertyID); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeMessage(w, "Added to favorites")
}

func removeFavorite(w http.ResponseWriter, r *http.Request, svc Services) {
	propertyID, ok := withID(w, r)
	if !ok {
		return
	}

	if err := svc.RemoveFavorite(propertyID); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeMessage(w, "Removed from favorites")
}

func listFavorites(w http.ResponseWriter, r *http.Request, svc Services) {
	writeJSON(w, http.StatusOK, svc.ListFavorites())
}

// listActivity answers with the newest activities. The limit query
// parameter defaults to 20; zero returns the whole feed.
func listActivity(w http.ResponseWriter, r *http.Request, svc Services) {
	limit := defaultActivityLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, http.StatusUnprocessableEntity, "limit: must be a non-negative integer")
			return
		}
		limit = n
	}
	writeJSON(w, http.StatusOK, svc.RecentActivity(limit))
}
