package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/hr-registry-api/internal/middleware"
)

// Router wires the API routes
type Router struct {
	mux             *http.ServeMux
	logger          *slog.Logger
	unitHandler     *UnitHandler
	employeeHandler *EmployeeHandler
}

// NewRouter creates a new router
func NewRouter(unitHandler *UnitHandler, employeeHandler *EmployeeHandler, logger *slog.Logger) *Router {
	return &Router{
		mux:             http.NewServeMux(),
		logger:          logger,
		unitHandler:     unitHandler,
		employeeHandler: employeeHandler,
	}
}

// Setup registers all routes and the middleware chain
func (r *Router) Setup() http.Handler {
	r.mux.HandleFunc("/units", r.unitsRouter)
	r.mux.HandleFunc("/units/", r.unitsRouter)
	r.mux.HandleFunc("/employees", r.employeesRouter)
	r.mux.HandleFunc("/employees/", r.employeesRouter)

	// Health check
	r.mux.HandleFunc("/health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	handler := middleware.ContentType(r.mux)
	handler = middleware.Logger(r.logger)(handler)
	handler = middleware.Recoverer(r.logger)(handler)

	return handler
}

// unitsRouter dispatches all requests under /units
func (r *Router) unitsRouter(w http.ResponseWriter, req *http.Request) {
	parts := splitPath(req.URL.Path, "/units")

	switch {
	case len(parts) == 0:
		// /units
		switch req.Method {
		case http.MethodGet:
			r.unitHandler.List(w, req)
		case http.MethodPost:
			r.unitHandler.Create(w, req)
		default:
			methodNotAllowed(w)
		}

	case len(parts) == 1:
		// /units/{id}
		switch req.Method {
		case http.MethodGet:
			r.unitHandler.GetByID(w, req)
		case http.MethodPut:
			r.unitHandler.Update(w, req)
		case http.MethodDelete:
			r.unitHandler.Delete(w, req)
		default:
			methodNotAllowed(w)
		}

	case len(parts) == 2 && parts[0] == "code":
		// /units/code/{code}
		if req.Method == http.MethodGet {
			r.unitHandler.GetByCode(w, req)
			return
		}
		methodNotAllowed(w)

	case len(parts) == 2 && parts[1] == "employees":
		// /units/{id}/employees
		if req.Method == http.MethodGet {
			r.unitHandler.ListEmployees(w, req)
			return
		}
		methodNotAllowed(w)

	default:
		notFound(w)
	}
}

// employeesRouter dispatches all requests under /employees
func (r *Router) employeesRouter(w http.ResponseWriter, req *http.Request) {
	parts := splitPath(req.URL.Path, "/employees")

	switch {
	case len(parts) == 0:
		// /employees
		switch req.Method {
		case http.MethodGet:
			r.employeeHandler.List(w, req)
		case http.MethodPost:
			r.employeeHandler.Create(w, req)
		default:
			methodNotAllowed(w)
		}

	case len(parts) == 1:
		// /employees/{id}
		switch req.Method {
		case http.MethodGet:
			r.employeeHandler.GetByID(w, req)
		case http.MethodPut:
			r.employeeHandler.Update(w, req)
		case http.MethodDelete:
			r.employeeHandler.Delete(w, req)
		default:
			methodNotAllowed(w)
		}

	case len(parts) == 2 && parts[0] == "email":
		// /employees/email/{email}
		if req.Method == http.MethodGet {
			r.employeeHandler.GetByEmail(w, req)
			return
		}
		methodNotAllowed(w)

	default:
		notFound(w)
	}
}

func splitPath(path, prefix string) []string {
	path = strings.TrimPrefix(path, prefix)
	path = strings.Trim(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}

func methodNotAllowed(w http.ResponseWriter) {
	http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
}

func notFound(w http.ResponseWriter) {
	http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
}
