package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/example/calculator-api/modules/api"
	"github.com/example/calculator-api/modules/history"
	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/go-monolith/mono"
)

const shutdownTimeout = 30 * time.Second

func main() {
	log.Println("Starting calculator-api...")

	app, err := mono.NewMonoApplication(
		mono.WithShutdownTimeout(shutdownTimeout),
		mono.WithLogLevel(mono.LogLevelInfo),
		mono.WithLogFormat(mono.LogFormatText),
	)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}

	// Register modules. The api module declares a dependency on history, so
	// the framework wires its service container before api starts.
	app.Register(history.NewModule())
	app.Register(api.NewModule())

	if err := app.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}

	printStartupInfo()

	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		shutdownTimeout,
		map[string]gfshutdown.Operation{
			"mono-app": func(ctx context.Context) error {
				log.Println("Graceful shutdown initiated...")
				return app.Stop(ctx)
			},
		},
	)

	exitCode := <-wait
	log.Printf("Application exited with code: %d", exitCode)
	os.Exit(exitCode)
}

func printStartupInfo() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	log.Println("")
	log.Println("Application started successfully!")
	log.Println("")
	log.Println("Endpoints:")
	log.Printf("  POST http://localhost:%s/add       {\"a\": 2, \"b\": 3}", port)
	log.Printf("  POST http://localhost:%s/subtract  {\"a\": 10, \"b\": 4}", port)
	log.Printf("  POST http://localhost:%s/multiply  {\"a\": 6, \"b\": 7}", port)
	log.Printf("  POST http://localhost:%s/divide    {\"a\": 10, \"b\": 4}", port)
	log.Printf("  POST http://localhost:%s/modulus   {\"a\": 10, \"b\": 3}", port)
	log.Printf("  POST http://localhost:%s/power     {\"base\": 2, \"exponent\": 10}", port)
	log.Printf("  POST http://localhost:%s/sqrt      {\"value\": 16}", port)
	log.Printf("  POST http://localhost:%s/evaluate  {\"expression\": \"2 + 3 * 4\"}", port)
	log.Printf("  GET  http://localhost:%s/history", port)
	log.Printf("  DEL  http://localhost:%s/history", port)
	log.Println("")
	log.Println("Set HISTORY_DB_PATH to persist history to SQLite.")
	log.Println("Press Ctrl+C to shutdown gracefully")
}
