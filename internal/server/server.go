// Package server exposes golden-section solves over an HTTP API.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/copyleftdev/AURUM/internal/config"
	"github.com/copyleftdev/AURUM/internal/logging"
	"github.com/copyleftdev/AURUM/internal/optimization"
	"github.com/copyleftdev/AURUM/internal/optimization/goldensection"
)

// Server serves the optimization API.
type Server struct {
	cfg      *config.Config
	logger   *zap.Logger
	registry map[string]objectiveEntry
}

// NewServer creates a new server instance with the given config and logger.
func NewServer(cfg *config.Config, logger *zap.Logger) *Server {
	return &Server{
		cfg:      cfg,
		logger:   logger,
		registry: defaultRegistry(),
	}
}

// RegisterRoutes mounts the API under /api/v1.
func (s *Server) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/functions", s.handleFunctions)
		r.Post("/solve", s.handleSolve)
	})
}

type solveRequest struct {
	Function  string     `json:"function"`
	Direction string     `json:"direction"`
	Bracket   [2]float64 `json:"bracket"`

	// Optional overrides of the configured solver defaults.
	MaxIters *int     `json:"max_iters,omitempty"`
	XAbsTol  *float64 `json:"x_abs_tol,omitempty"`
	XRelTol  *float64 `json:"x_rel_tol,omitempty"`

	// RecoverFailures makes the observer answer evaluation failures with
	// assume-worse instead of aborting the solve.
	RecoverFailures bool `json:"recover_failures,omitempty"`
}

type solveResponse struct {
	Status    string  `json:"status"`
	X         float64 `json:"x"`
	Objective float64 `json:"objective"`
	Iters     int     `json:"iters"`
}

func (s *Server) handleFunctions(w http.ResponseWriter, r *http.Request) {
	entries := make([]objectiveEntry, 0, len(s.registry))
	for _, e := range s.registry {
		entries = append(entries, e)
	}
	s.respondJSON(w, http.StatusOK, entries)
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	logger := logging.FromContext(r.Context())

	var req solveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, ok := s.registry[req.Function]
	if !ok {
		s.respondError(w, http.StatusNotFound, "unknown function")
		return
	}

	direction := req.Direction
	if direction == "" {
		direction = "minimize"
	}
	if direction != "minimize" && direction != "maximize" {
		s.respondError(w, http.StatusBadRequest, "direction must be minimize or maximize")
		return
	}

	cfg, err := s.solverConfig(req)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	model := optimization.FuncModel{}
	problem := optimization.FuncProblem{F: entry.f}
	observer := newRequestObserver(r.Context(), logger, req.RecoverFailures)

	start := time.Now()
	var sol goldensection.Solution[float64, float64]
	if direction == "maximize" {
		sol, err = goldensection.Maximize[float64, float64](model, problem, req.Bracket, cfg, observer)
	} else {
		sol, err = goldensection.Minimize[float64, float64](model, problem, req.Bracket, cfg, observer)
	}
	solveDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		var bracketErr *goldensection.BracketError
		if errors.As(err, &bracketErr) {
			solvesTotal.WithLabelValues(req.Function, direction, "invalid_bracket").Inc()
			s.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		solvesTotal.WithLabelValues(req.Function, direction, "error").Inc()
		logger.Error("solve failed",
			zap.String("function", req.Function),
			zap.String("direction", direction),
			zap.Error(err),
		)
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	solvesTotal.WithLabelValues(req.Function, direction, sol.Status.String()).Inc()
	solveIterations.Observe(float64(sol.Iters))

	logger.Info("solve completed",
		zap.String("function", req.Function),
		zap.String("direction", direction),
		zap.String("status", sol.Status.String()),
		zap.Float64("x", sol.X),
		zap.Float64("objective", sol.Objective),
		zap.Int("iters", sol.Iters),
	)

	s.respondJSON(w, http.StatusOK, solveResponse{
		Status:    sol.Status.String(),
		X:         sol.X,
		Objective: sol.Objective,
		Iters:     sol.Iters,
	})
}

// solverConfig merges request overrides onto the configured defaults.
func (s *Server) solverConfig(req solveRequest) (goldensection.Config, error) {
	maxIters := s.cfg.Solver.MaxIters
	xAbsTol := s.cfg.Solver.XAbsTol
	xRelTol := s.cfg.Solver.XRelTol

	if req.MaxIters != nil {
		maxIters = *req.MaxIters
	}
	if req.XAbsTol != nil {
		xAbsTol = *req.XAbsTol
	}
	if req.XRelTol != nil {
		xRelTol = *req.XRelTol
	}

	return goldensection.NewConfig(maxIters, xAbsTol, xRelTol)
}

// newRequestObserver builds the observer attached to one solve request:
// it stops the search cooperatively once the request context is done,
// logs every event, and optionally recovers evaluation failures.
func newRequestObserver(ctx context.Context, logger *zap.Logger, recoverFailures bool) goldensection.Observer[float64, float64] {
	return goldensection.ObserverFunc[float64, float64](func(event goldensection.Event[float64, float64]) goldensection.Action {
		select {
		case <-ctx.Done():
			return goldensection.ActionStopEarly
		default:
		}

		switch ev := event.(type) {
		case goldensection.Evaluated[float64, float64]:
			logger.Debug("candidate evaluated",
				zap.Float64("x", ev.Point.X),
				zap.Float64("objective", ev.Point.Objective),
				zap.Float64("best_x", ev.Best.X),
			)
		case goldensection.ModelFailed[float64, float64]:
			logger.Warn("model evaluation failed",
				zap.Float64("x", ev.X),
				zap.Error(ev.Err),
			)
			if recoverFailures {
				return goldensection.ActionAssumeWorse
			}
		case goldensection.ProblemFailed[float64, float64]:
			logger.Warn("problem evaluation failed",
				zap.Float64("x", ev.X),
				zap.Error(ev.Err),
			)
			if recoverFailures {
				return goldensection.ActionAssumeWorse
			}
		}
		return goldensection.ActionNone
	})
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("failed to encode response", zap.Error(err))
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
