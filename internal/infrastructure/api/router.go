package api

import (
	"net/http"

	"github.com/gorilla/mux"
)

func NewRouter(handler *AnalyzeFaceHandler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/analyzeFace", handler.HandleAnalyzeFace).Methods(http.MethodPost, http.MethodOptions)
	r.HandleFunc("/healthz", handler.HandleHealth).Methods(http.MethodGet)

	r.Use(AccessLog)
	r.Use(mux.CORSMethodMiddleware(r))
	r.Use(CORS)
	return r
}
