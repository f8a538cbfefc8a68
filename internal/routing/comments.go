package routing

import (
	"net/http"
)

func createComment(w http.ResponseWriter, r *http.Request, svc Services) {
	reviewID, ok := withID(w, r)
	if !ok {
		return
	}

	var req commentRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, describe(err))
		return
	}

	comment, err := svc.CreateComment(reviewID, *req.Body)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, comment)
}

func listComments(w http.ResponseWriter, r *http.Request, svc Services) {
	reviewID, ok := withID(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, svc.ListCommentsByReview(reviewID))
}

func getComment(w http.ResponseWriter, r *http.Request, svc Services) {
	id, ok := withID(w, r)
	if !ok {
		return
	}

	comment, err := svc.GetComment(id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, comment)
}

func updateComment(w http.ResponseWriter, r *http.Request, svc Services) {
	id, ok := withID(w, r)
	if !ok {
		return
	}

	var req commentRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, describe(err))
		return
	}

	comment, err := svc.UpdateComment(id, *req.Body)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, comment)
}

func deleteComment(w http.ResponseWriter, r *http.Request, svc Services) {
	id, ok := withID(w, r)
	if !ok {
		return
	}

	if err := svc.DeleteComment(id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeMessage(w, "Comment deleted")
}
