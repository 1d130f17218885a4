//go:build integration
// +build integration

package routes

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"testing"

	"communication-tracker-backend/internal/testutils"
)

// TestMain runs before all route tests and ensures proper Docker cleanup
func TestMain(m *testing.M) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Route tests interrupted, cleaning up Docker containers...")
		testutils.CleanupSharedContainer()
		os.Exit(1)
	}()

	code := m.Run()

	testutils.CleanupSharedContainer()
	os.Exit(code)
}
