package http

import (
	"net/http"

	"clinica-medicos-api/internal/delivery/http/handler"
	"clinica-medicos-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router            *mux.Router
	medicoHandler     *handler.MedicoHandler
	horarioHandler    *handler.HorarioHandler
	corsMiddleware    *middleware.CORSMiddleware
	loggingMiddleware *middleware.LoggingMiddleware
}

func NewRouter(
	medicoHandler *handler.MedicoHandler,
	horarioHandler *handler.HorarioHandler,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
) *Router {
	return &Router{
		router:            mux.NewRouter(),
		medicoHandler:     medicoHandler,
		horarioHandler:    horarioHandler,
		corsMiddleware:    corsMiddleware,
		loggingMiddleware: loggingMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	api := r.router.PathPrefix("/api").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Medicos
	api.HandleFunc("/medicos", r.medicoHandler.ListMedicos).Methods(http.MethodGet)
	api.HandleFunc("/medico", r.medicoHandler.RegistrarMedico).Methods(http.MethodPost)
	api.HandleFunc("/medico/{id_medico}", r.medicoHandler.GetMedico).Methods(http.MethodGet)
	api.HandleFunc("/medico/{id_medico}/disponibilidad", r.medicoHandler.ActualizarDisponibilidad).Methods(http.MethodPut)
	api.HandleFunc("/medico/{id_medico}/inhabilitar", r.medicoHandler.InhabilitarMedico).Methods(http.MethodPut)

	// Horarios
	api.HandleFunc("/medico/{id_medico}/horarios", r.horarioHandler.ListHorarios).Methods(http.MethodGet)

	r.router.Use(r.corsMiddleware.Handle)
	r.router.Use(r.loggingMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
