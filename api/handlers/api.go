package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/fortimeet/fortimeet-api/api"
	"github.com/fortimeet/fortimeet-api/api/scheduler"
	"github.com/fortimeet/fortimeet-api/config"
	"github.com/fortimeet/fortimeet-api/databases"
	"github.com/fortimeet/fortimeet-api/models"
)

// App stores the router and db connection, so it can be reused
type App struct {
	Router    *mux.Router
	Config    config.Config
	Scheduler *scheduler.Scheduler
	dbHelper  databases.DatabaseHelper
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	r := mux.NewRouter()

	m := Meeting{DB: databases.NewMeetingDatabase(a.dbHelper)}
	d := Diagnostic{DB: a.dbHelper}

	r.Use(api.CORSMiddleware)
	r.Use(api.RequestLogger)
	r.Use(api.TimeoutMiddleware(30 * time.Second))

	// healthchex
	r.HandleFunc("/health", healthCheckHandler)

	r.HandleFunc("/", d.RootHandler).Methods("GET")
	r.HandleFunc("/test", d.DatabaseDiagnosticHandler).Methods("GET")

	apiCreate := r.PathPrefix("/api").Subrouter()

	apiCreate.HandleFunc("/meetings", m.CreateMeetingHandler).Methods("POST", "OPTIONS")
	apiCreate.HandleFunc("/meetings/join", m.JoinMeetingHandler).Methods("POST", "OPTIONS")
	apiCreate.HandleFunc("/meetings/end", m.EndMeetingHandler).Methods("POST", "OPTIONS")

	return r
}

// Initialize is invoked by main to connect with the database, start the
// expiry reaper and create a router
func (a *App) Initialize() error {

	client, err := databases.NewClient(&a.Config)
	if err != nil {
		// if we fail to create a new database client, then kill the pod
		zap.S().With(err).Error("failed to create new client")
		return err
	}

	a.dbHelper = databases.NewDatabase(&a.Config, client)
	err = client.Connect()
	if err != nil {
		// if we fail to connect to the database, then kill the pod
		zap.S().With(err).Error("failed to connect to database")
		return err
	}
	zap.S().Info("fortimeet-api has connected to the database")

	a.Scheduler = scheduler.NewScheduler(databases.NewMeetingDatabase(a.dbHelper))
	a.Scheduler.Start()

	// initialize api router
	a.initializeRoutes()
	return nil
}

func (a *App) initializeRoutes() {
	a.Router = a.New()
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	b, _ := json.Marshal(models.HealthCheckResponse{
		Alive: true,
	})
	_, _ = io.WriteString(w, string(b))
}
