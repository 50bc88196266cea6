package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"

	gfshutdown "github.com/gelmium/graceful-shutdown"

	"task-tracker/internal/api"
	"task-tracker/internal/config"
	"task-tracker/pkg/task"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	tasks := task.NewBus(task.NewMemStore())

	// Event streams never finish on their own; end them when shutdown starts.
	streams, stopStreams := context.WithCancel(context.Background())
	server := &http.Server{
		Addr:        cfg.Addr(),
		Handler:     api.New(tasks, tasks, cfg.StaticDir),
		BaseContext: func(net.Listener) context.Context { return streams },
	}
	server.RegisterOnShutdown(stopStreams)

	go func() {
		log.Printf("task-tracker listening on %s", cfg.Addr())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %v", err)
		}
	}()

	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		cfg.ShutdownTimeout,
		map[string]gfshutdown.Operation{
			"http-server": func(ctx context.Context) error {
				log.Println("task-tracker: shutting down")
				return server.Shutdown(ctx)
			},
		},
	)

	exitCode := <-wait
	log.Printf("task-tracker: exited with code %d", exitCode)
	os.Exit(exitCode)
}
