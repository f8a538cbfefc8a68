package routing

import (
	"net/http"
)

func createProperty(w http.ResponseWriter, r *http.Request, svc Services) {
	var req propertyRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, describe(err))
		return
	}

	prop := svc.CreateProperty(*req.Title, *req.Country, *req.City)
	writeJSON(w, http.StatusOK, prop)
}

func listProperties(w http.ResponseWriter, r *http.Request, svc Services) {
	writeJSON(w, http.StatusOK, svc.ListProperties())
}

func getProperty(w http.ResponseWriter, r *http.Request, svc Services) {
	id, ok := withID(w, r)
	if !ok {
		return
	}

	prop, err := svc.GetProperty(id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, prop)
}

func updateProperty(w http.ResponseWriter, r *http.Request, svc Services) {
	id, ok := withID(w, r)
	if !ok {
		return
	}

	var req propertyRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, describe(err))
		return
	}

	prop, err := svc.UpdateProperty(id, *req.Title, *req.Country, *req.City)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, prop)
}

func deleteProperty(w http.ResponseWriter, r *http.Request, svc Services) {
	id, ok := withID(w, r)
	if !ok {
		return
	}

	if err := svc.DeleteProperty(id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeMessage(w, "Property deleted")
}
