/*******************************************************************************
* Copyright (C) 2026 the Eclipse BaSyx Authors and Fraunhofer IESE
*
* Permission is hereby granted, free of charge, to any person obtaining
* a copy of this software and associated documentation files (the
* "Software"), to deal in the Software without restriction, including
* without limitation the rights to use, copy, modify, merge, publish,
* distribute, sublicense, and/or sell copies of the Software, and to
* permit persons to whom the Software is furnished to do so, subject to
* the following conditions:
*
* The above copyright notice and this permission notice shall be
* included in all copies or substantial portions of the Software.
*
* THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
* EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
* MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND
* NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE
* LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION
* OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION
* WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
*
* SPDX-License-Identifier: MIT
******************************************************************************/

// Package main implements the AAS Environment Service server.
package main

import (
	"context"
	"embed"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/go-chi/chi/v5"

	"github.com/rwth-iat/basyx-go-framework/internal/common"
	"github.com/rwth-iat/basyx-go-framework/internal/environment/api"
	"github.com/rwth-iat/basyx-go-framework/internal/environment/attachments"
	"github.com/rwth-iat/basyx-go-framework/internal/environment/persistence"
)

//go:embed openapi.yaml
var openapiSpec embed.FS

func newBackend(ctx context.Context, config *common.Config, databaseSchema string) (persistence.Backend, error) {
	switch config.Backend.Type {
	case "memory":
		return persistence.NewInMemoryBackend(), nil
	case "postgres":
		dsn := "postgres://" + config.Postgres.User + ":" + config.Postgres.Password +
			"@" + config.Postgres.Host + ":" + strconv.Itoa(config.Postgres.Port) +
			"/" + config.Postgres.DBName + "?sslmode=disable"
		return persistence.NewPostgreSQLBackend(dsn, config.Postgres.MaxOpenConnections,
			config.Postgres.MaxIdleConnections, config.Postgres.ConnMaxLifetimeMinutes, databaseSchema)
	case "mongo":
		return persistence.NewMongoBackend(ctx, config.Mongo.URI, config.Mongo.Database)
	default:
		return nil, fmt.Errorf("unknown backend type '%s'", config.Backend.Type)
	}
}

func newAttachmentStore(ctx context.Context, config *common.Config) (attachments.Store, error) {
	switch config.Attachments.Type {
	case "local":
		return attachments.NewLocalStore(config.Attachments.LocalDir)
	case "s3":
		return attachments.NewS3Store(ctx, config.S3)
	default:
		return nil, fmt.Errorf("unknown attachment store type '%s'", config.Attachments.Type)
	}
}

func runServer(ctx context.Context, configPath string, databaseSchema string) error {
	log.Default().Println("Loading AAS Environment Service...")
	log.Default().Println("Config Path:", configPath)
	// Load configuration
	config, err := common.LoadConfig(configPath)
	if err != nil {
		return err
	}

	// Create Chi router
	r := chi.NewRouter()

	// Enable CORS
	common.AddCors(r, config)

	// Add health endpoint
	common.AddHealthEndpoint(r, config)

	// Add Swagger UI
	if err := common.AddSwaggerUIFromFS(r, openapiSpec, "openapi.yaml", "AAS Environment API", "/swagger", "/api-docs/openapi.yaml", config); err != nil {
		log.Printf("Warning: failed to load OpenAPI spec for Swagger UI: %v", err)
	}

	// ==== AAS Environment Service ====

	backend, err := newBackend(ctx, config, databaseSchema)
	if err != nil {
		return err
	}
	defer func() {
		_ = backend.Close(context.Background())
	}()

	attachmentStore, err := newAttachmentStore(ctx, config)
	if err != nil {
		return err
	}

	envSvc := api.NewEnvironmentAPIService(backend, attachmentStore)
	envCtrl := api.NewEnvironmentAPIController(envSvc,
		api.WithContextPath(config.Server.ContextPath),
		api.WithStrictVerification(config.Server.StrictVerification),
	)
	for _, rt := range envCtrl.Routes() {
		r.Method(rt.Method, rt.Pattern, rt.HandlerFunc)
	}

	// Start the server
	addr := "0.0.0.0:" + fmt.Sprintf("%d", config.Server.Port)
	log.Printf("▶️  AAS Environment Service listening on %s\n", addr)
	server := &http.Server{Addr: addr, Handler: r}
	// Start server in a goroutine
	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down server...")
	return server.Shutdown(context.Background())
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// load config path from flag
	configPath := ""
	databaseSchema := ""
	flag.StringVar(&configPath, "config", "", "Path to config file")
	flag.StringVar(&databaseSchema, "databaseSchema", "", "Path to Database Schema")
	flag.Parse()

	if databaseSchema != "" {
		_, fileError := os.ReadFile(databaseSchema)
		if fileError != nil {
			_, _ = fmt.Println("The specified database schema path is invalid or the file was not found.")
			os.Exit(1)
		}
	}

	common.PrintSplash()

	if err := runServer(ctx, configPath, databaseSchema); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
