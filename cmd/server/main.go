/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package main is the entry point for starting the touchid lock server.
package main

import (
	"context"
	"crypto/tls"
	"errors"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path"
	"syscall"
	"time"

	"github.com/reenboog/touchid/internal/system/cert"
	"github.com/reenboog/touchid/internal/system/config"
	"github.com/reenboog/touchid/internal/system/constants"
	"github.com/reenboog/touchid/internal/system/log"
	"github.com/reenboog/touchid/internal/system/metrics"
	"github.com/reenboog/touchid/internal/system/middleware"
)

func main() {
	logger := log.GetLogger()
	defer logger.Sync()

	serverHome := getServerHome(logger)

	cfg := initServerConfigurations(logger, serverHome)
	if cfg == nil {
		logger.Fatal("Failed to initialize configurations")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mux := http.NewServeMux()
	lockService, err := registerServices(ctx, mux, cfg)
	if err != nil {
		logger.Fatal("Failed to register the services", log.Error(err))
	}
	defer func() {
		if err := lockService.Close(); err != nil {
			logger.Error("Failed to close the lock service", log.Error(err))
		}
	}()

	server, serverAddr := createHTTPServer(logger, cfg, mux)
	listener, scheme := createListener(logger, cfg, serverAddr, serverHome)

	serveErr := make(chan error, 1)
	go func() {
		logger.Info(fmt.Sprintf("touchid server started (%s)...", scheme), log.String("address", serverAddr))
		serveErr <- server.Serve(listener)
	}()

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Failed to serve requests", log.Error(err))
		}
	case <-ctx.Done():
		logger.Info("Shutdown signal received, draining connections")
		shutdownServer(logger, cfg, server)
	}
}

// getServerHome retrieves and returns the server home directory.
func getServerHome(logger *log.Logger) string {
	serverHome := ""
	serverHomeFlag := flag.String("home", "", "Path to the touchid home directory")
	flag.Parse()

	if *serverHomeFlag != "" {
		logger.Info("Using home from command line argument", log.String("home", *serverHomeFlag))
		serverHome = *serverHomeFlag
	} else {
		// If no command line argument is provided, use the current working directory.
		dir, dirErr := os.Getwd()
		if dirErr != nil {
			logger.Fatal("Failed to get current working directory", log.Error(dirErr))
		}
		serverHome = dir
	}

	return serverHome
}

// initServerConfigurations loads the deployment configuration and initializes the server runtime.
func initServerConfigurations(logger *log.Logger, serverHome string) *config.Config {
	configFilePath := path.Join(serverHome, constants.ConfigFileRelativePath)
	cfg, err := config.LoadConfig(configFilePath)
	if err != nil {
		logger.Fatal("Failed to load configurations", log.Error(err))
	}

	if err := config.InitializeServerRuntime(serverHome, cfg); err != nil {
		logger.Fatal("Failed to initialize server runtime", log.Error(err))
	}

	logger.Info("Configuration loaded", log.String("lockStore", cfg.Lock.Store),
		log.Bool("httpOnly", cfg.Server.HTTPOnly), log.Any("allowedOrigins", cfg.CORS.AllowedOrigins))

	return cfg
}

// createHTTPServer creates and configures an HTTP server with common settings.
func createHTTPServer(logger *log.Logger, cfg *config.Config, mux *http.ServeMux) (*http.Server, string) {
	var handler http.Handler = mux
	if cfg.Metrics.Enabled {
		handler = metrics.GetMetrics().InstrumentHandler(handler)
	}
	handler = middleware.RequestIDHandler(log.AccessLogHandler(logger, handler))

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Hostname, cfg.Server.Port)

	server := &http.Server{
		Addr:              serverAddr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second, // Mitigate Slowloris attacks
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return server, serverAddr
}

// createListener opens the plain or TLS listener for the server address.
func createListener(logger *log.Logger, cfg *config.Config, serverAddr, serverHome string) (net.Listener, string) {
	if cfg.Server.HTTPOnly {
		logger.Info("TLS is not enabled, starting server without TLS")
		ln, err := net.Listen("tcp", serverAddr)
		if err != nil {
			logger.Fatal("Failed to start listener", log.Error(err))
		}
		return ln, "HTTP"
	}

	sysCertSvc := cert.NewSystemCertificateService()
	tlsConfig, err := sysCertSvc.GetTLSConfig(cfg, serverHome)
	if err != nil {
		logger.Fatal("Failed to load TLS configuration", log.Error(err))
	}
	if thumbprint, err := sysCertSvc.GetCertificateThumbprint(tlsConfig); err == nil {
		logger.Info("Loaded server certificate", log.String("x5t#S256", thumbprint))
	}

	ln, err := tls.Listen("tcp", serverAddr, tlsConfig)
	if err != nil {
		logger.Fatal("Failed to start TLS listener", log.Error(err))
	}
	return ln, "HTTPS"
}

// shutdownServer stops accepting connections and waits for in-flight requests up to the shutdown timeout.
func shutdownServer(logger *log.Logger, cfg *config.Config, server *http.Server) {
	timeout := time.Duration(cfg.Server.ShutdownTimeout) * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Failed to shut down the server gracefully", log.Error(err))
		return
	}
	logger.Info("Server stopped")
}
