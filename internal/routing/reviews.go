package routing

import (
	"net/http"
)

func createReview(w http.ResponseWriter, r *http.Request, svc Services) {
	propertyID, ok := withID(w, r)
	if !ok {
		return
	}

	var req reviewRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, describe(err))
		return
	}

	review, err := svc.CreateReview(propertyID, *req.Title, *req.Body, *req.Rating)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, review)
}

// listReviews answers with an empty list for an unknown property.
func listReviews(w http.ResponseWriter, r *http.Request, svc Services) {
	propertyID, ok := withID(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, svc.ListReviewsByProperty(propertyID))
}

func getReview(w http.ResponseWriter, r *http.Request, svc Services) {
	id, ok := withID(w, r)
	if !ok {
		return
	}

	review, err := svc.GetReview(id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, review)
}

func updateReview(w http.ResponseWriter, r *http.Request, svc Services) {
	id, ok := withID(w, r)
	if !ok {
		return
	}

	var req reviewRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, describe(err))
		return
	}

	review, err := svc.UpdateReview(id, *req.Title, *req.Body, *req.Rating)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, review)
}

func deleteReview(w http.ResponseWriter, r *http.Request, svc Services) {
	id, ok := withID(w, r)
	if !ok {
		return
	}

	if err := svc.DeleteReview(id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeMessage(w, "Review deleted")
}
