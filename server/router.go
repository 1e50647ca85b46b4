package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// ClassHandlerAPI and DiscoveryHandlerAPI keep the router decoupled from
// concrete handlers so tests can register stubs.
type ClassHandlerAPI interface {
	SearchClasses(w http.ResponseWriter, r *http.Request)
	FindClassesBySchedule(w http.ResponseWriter, r *http.Request)
	CheckScheduleConflicts(w http.ResponseWriter, r *http.Request)
	SearchByInstructor(w http.ResponseWriter, r *http.Request)
	CompareSections(w http.ResponseWriter, r *http.Request)
	GetClassDetails(w http.ResponseWriter, r *http.Request)
	CheckAvailability(w http.ResponseWriter, r *http.Request)
	GetScheduleChart(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

type DiscoveryHandlerAPI interface {
	SuggestFilterValues(w http.ResponseWriter, r *http.Request)
	GetFilterOptions(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	classHandler     ClassHandlerAPI
	discoveryHandler DiscoveryHandlerAPI
	router           *mux.Router
}

// NewRouter creates a router with the app's routes.
func NewRouter(
	classHandler ClassHandlerAPI,
	discoveryHandler DiscoveryHandlerAPI,
	router *mux.Router) *Router {
	return &Router{
		classHandler:     classHandler,
		discoveryHandler: discoveryHandler,
		router:           router,
	}
}

func (r *Router) RegisterRoutes() {
	r.router.HandleFunc("/v1/classes/search", r.classHandler.SearchClasses).Methods("POST")
	r.router.HandleFunc("/v1/classes/fit-schedule", r.classHandler.FindClassesBySchedule).Methods("POST")
	r.router.HandleFunc("/v1/classes/check-conflicts", r.classHandler.CheckScheduleConflicts).Methods("POST")

	// expects ?term={termCode}&query={instructor name partial}
	r.router.HandleFunc("/v1/classes/instructor", r.classHandler.SearchByInstructor).Methods("GET")
	// expects ?term={termCode}&subject={subject}&catalogNumber={number}
	r.router.HandleFunc("/v1/classes/compare", r.classHandler.CompareSections).Methods("GET")
	r.router.HandleFunc("/v1/classes/{term}/{classNumbers}", r.classHandler.GetClassDetails).Methods("GET")
	r.router.HandleFunc("/v1/classes/{term}/{classNumber}/availability", r.classHandler.CheckAvailability).Methods("GET")

	// expects ?keyword={free text}
	r.router.HandleFunc("/v1/filters/suggest", r.discoveryHandler.SuggestFilterValues).Methods("GET")
	r.router.HandleFunc("/v1/filters/{field}", r.discoveryHandler.GetFilterOptions).Methods("GET")

	// expects ?term={termCode}&classNumbers={comma separated}
	r.router.HandleFunc("/v1/schedule/chart", r.classHandler.GetScheduleChart).Methods("GET")

	r.router.HandleFunc("/ping", r.classHandler.Ping).Methods("GET")
}
