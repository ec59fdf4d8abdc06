// Package search runs one flight search end to end: it launches the engine
// and reads back the result document the engine wrote.
package search

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/go-logr/logr"
	"github.com/google/uuid"

	"github.com/ToderitaLoredana/PlaneBooking/internal/config"
	"github.com/ToderitaLoredana/PlaneBooking/internal/engine"
	"github.com/ToderitaLoredana/PlaneBooking/internal/logging"
	"github.com/ToderitaLoredana/PlaneBooking/internal/metrics"
	"github.com/ToderitaLoredana/PlaneBooking/internal/resultstore"
)

// Result pairs the engine outcome with the document returned to the caller.
type Result struct {
	Outcome  engine.Outcome
	Document resultstore.Document
	Status   resultstore.Status
}

// Service owns the engine configuration and the shared result file.
type Service struct {
	cfg     config.EngineConfig
	invoker engine.Invoker
	shared  *resultstore.Store
	logger  logr.Logger

	// mu serializes invoke+read and Latest in shared isolation mode.
	mu sync.Mutex
}

func NewService(cfg config.EngineConfig, invoker engine.Invoker, logger logr.Logger) *Service {
	return &Service{
		cfg:     cfg,
		invoker: invoker,
		shared:  resultstore.New(cfg.OutputFile),
		logger:  logger.WithName("search"),
	}
}

// Run blocks until the engine exits and its result has been read. Engine
// failures are reported in Result.Outcome, never as an error.
func (s *Service) Run(ctx context.Context, q engine.Query) Result {
	if s.cfg.Isolation == config.IsolationShared {
		return s.runShared(ctx, q)
	}
	return s.runPerRequest(ctx, q)
}

// Latest reads the shared result file without running the engine. In shared
// mode the engine writes that file in place, so Latest waits for a running
// search to finish.
func (s *Service) Latest() (resultstore.Document, resultstore.Status) {
	if s.cfg.Isolation == config.IsolationShared {
		s.mu.Lock()
		defer s.mu.Unlock()
	}
	doc, status := s.shared.Read()
	metrics.RecordResultLoad(string(status))
	return doc, status
}

func (s *Service) runShared(ctx context.Context, q engine.Query) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	outcome := s.invoke(ctx, s.invocation(s.cfg.OutputFile, q))
	doc, status := s.shared.Read()
	metrics.RecordResultLoad(string(status))
	return Result{Outcome: outcome, Document: doc, Status: status}
}

func (s *Service) runPerRequest(ctx context.Context, q engine.Query) Result {
	dir := s.scratchDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		s.logger.Error(err, "Failed to create scratch dir", "path", dir)
	}
	store := resultstore.New(filepath.Join(dir, "result-"+uuid.NewString()+".json"))
	defer func() {
		if err := store.Remove(); err != nil {
			s.logger.Error(err, "Failed to remove per-request result", "path", store.Path())
		}
	}()

	outcome := s.invoke(ctx, s.invocation(store.Path(), q))
	doc, status := store.Read()
	metrics.RecordResultLoad(string(status))

	if outcome.Succeeded() && status == resultstore.StatusOK {
		if err := s.shared.Publish(doc); err != nil {
			s.logger.Error(err, "Failed to publish latest result", "path", s.shared.Path())
		}
	}
	return Result{Outcome: outcome, Document: doc, Status: status}
}

func (s *Service) invocation(outputFile string, q engine.Query) engine.Invocation {
	return engine.Invocation{
		ExecutablePath: s.cfg.Path,
		InputFile:      s.cfg.InputFile,
		OutputFile:     outputFile,
		Query:          q,
	}
}

func (s *Service) invoke(ctx context.Context, inv engine.Invocation) engine.Outcome {
	log := s.logger.WithValues("source", inv.Query.Source, "destination", inv.Query.Destination, "day", inv.Query.Day, "departureTime", inv.Query.DepartureTime)
	log.V(logging.VERBOSE).Info("Invoking search engine", "executable", inv.ExecutablePath, "output", inv.OutputFile)

	outcome := s.invoker.Invoke(ctx, inv)
	metrics.RecordEngineInvocation(string(outcome.Kind), outcome.Duration)

	if err := outcome.Err(); err != nil {
		log.Error(err, "Search engine did not succeed", "outcome", outcome.Kind, "exitCode", outcome.ExitCode, "duration", outcome.Duration)
	} else {
		log.V(logging.DEFAULT).Info("Search engine finished", "duration", outcome.Duration)
	}
	if outcome.Stdout != "" || outcome.Stderr != "" {
		log.V(logging.DEBUG).Info("Search engine output", "stdout", outcome.Stdout, "stderr", outcome.Stderr)
	}
	return outcome
}

func (s *Service) scratchDir() string {
	if s.cfg.ScratchDir != "" {
		return s.cfg.ScratchDir
	}
	return os.TempDir()
}
