package syncserver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/sync/errgroup"

	"replog/internal/logging"
)

// Server is the sync endpoint the clients' synced key-value slots talk
// to. Writes are last-writer-wins per key; the server never merges. State
// lives in a flock-guarded JSON file so restarts keep the slots.
//
// Unlike the app core, handlers run on net/http's goroutines, so slot
// access is guarded by a mutex here.
type Server struct {
	httpServer *http.Server
	mu         sync.Mutex
	slots      map[string]slotEntry
	statePath  string
}

// NewServer creates a sync server listening on addr, persisting to
// statePath.
func NewServer(addr, statePath string) *Server {
	s := &Server{
		slots:     loadState(statePath),
		statePath: statePath,
	}

	router := mux.NewRouter()
	router.HandleFunc("/kv/{key}", s.handleGet).Methods(http.MethodGet)
	router.HandleFunc("/kv/{key}", s.handlePut).Methods(http.MethodPut)
	router.HandleFunc("/sync", s.handleSync).Methods(http.MethodPost)
	router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)

	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s
}

// Run serves until ctx is cancelled, then shuts down gracefully and
// flushes state to disk.
func (s *Server) Run(ctx context.Context) error {
	logging.Logger.Info("Starting sync server", "address", s.httpServer.Addr)
	fmt.Printf("Sync server listening on %s\n", s.httpServer.Addr)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("sync server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		logging.Logger.Info("Shutting down sync server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shutdown sync server: %w", err)
		}
		return nil
	})

	err := g.Wait()
	s.flush()
	logging.Logger.Info("Sync server stopped")
	return err
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]

	s.mu.Lock()
	entry, ok := s.slots[key]
	s.mu.Unlock()

	if !ok {
		http.Error(w, "key not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Last-Modified", entry.UpdatedAt.UTC().Format(http.TimeFormat))
	w.Write(entry.Value)
}

func (s *Server) handlePut(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]

	value, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "failed to read body", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	s.slots[key] = slotEntry{
		UpdatedAt: time.Now().UTC(),
		Value:     value,
	}
	s.mu.Unlock()

	logging.Logger.Debug("Slot updated", "key", key, "bytes", len(value))
	s.flush()

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSync(w http.ResponseWriter, r *http.Request) {
	s.flush()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "ok")
}

// flush persists the slot map, best effort.
func (s *Server) flush() {
	s.mu.Lock()
	slots := make(map[string]slotEntry, len(s.slots))
	for k, v := range s.slots {
		slots[k] = v
	}
	s.mu.Unlock()

	if err := saveState(s.statePath, slots); err != nil {
		logging.Logger.Warn("Failed to persist sync state", "error", err)
	}
}
