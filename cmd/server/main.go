/*
main.go - Application entry point

PURPOSE:
  Starts the salary calculator server: opens the SQLite store, loads the
  persisted session and day states, wires the HTTP router and handles
  graceful shutdown.

COMMAND-LINE FLAGS:
  -port    HTTP server port (default: 8080)
  -db      SQLite database path (default: kalkulator.db)
           Use ":memory:" for an in-memory database

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (30s timeout)
  3. Flush pending day-state writes and close the database
  4. Exit

EXAMPLES:
  ./server -db="./data/kalkulator.db"
  ./server -db=":memory:" -port=3000

SEE ALSO:
  - api/server.go: Router configuration
  - store/sqlite/sqlite.go: Persistence
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fastlonn/kalkulator/api"
	"github.com/fastlonn/kalkulator/calendar"
	"github.com/fastlonn/kalkulator/daystate"
	"github.com/fastlonn/kalkulator/state"
	"github.com/fastlonn/kalkulator/store/sqlite"
)

func main() {
	// Flags
	port := flag.Int("port", 8080, "HTTP server port")
	dbPath := flag.String("db", "kalkulator.db", "SQLite database path")
	flag.Parse()

	// Persistence
	store, err := sqlite.New(*dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer store.Close()

	ctx := context.Background()

	// Domain wiring
	cal := calendar.New()
	session := state.NewSession(ctx, store)
	days := daystate.NewStore(store)
	if err := days.Load(ctx, session.SelectedYear()); err != nil {
		log.Printf("Warning: failed to load day states: %v", err)
	}
	defer days.Close(ctx)

	handler := api.NewHandler(cal, days, session)
	router := api.NewRouter(handler)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", *port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Fastlønnskalkulator listening on http://localhost:%d", *port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}
