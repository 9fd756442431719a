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

// Package provider provides functionality for managing database connections and clients.
package provider

import (
	"database/sql"
	"fmt"
	"net"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/reenboog/touchid/internal/system/config"
	"github.com/reenboog/touchid/internal/system/database/client"
	"github.com/reenboog/touchid/internal/system/database/model"
	"github.com/reenboog/touchid/internal/system/log"
)

// RuntimeDBName is the name of the database holding runtime state such as locks.
const RuntimeDBName = "runtime"

// dbConfig represents the local database configuration.
type dbConfig struct {
	dsn        string
	driverName string
}

// DBProviderInterface defines the interface for getting database clients.
type DBProviderInterface interface {
	GetDBClient(dbName string) (client.DBClientInterface, error)
	Close() error
}

// DBProvider is the implementation of DBProviderInterface.
type DBProvider struct {
	runtimeClient client.DBClientInterface
	runtimeMutex  sync.RWMutex
}

var (
	instance *DBProvider
	once     sync.Once
)

// GetDBProvider returns the instance of DBProvider.
func GetDBProvider() DBProviderInterface {
	once.Do(func() {
		instance = &DBProvider{}
	})
	return instance
}

// GetDBClient returns a database client based on the provided database name.
// The client is opened on first use and shared afterwards; it manages its own connection pool.
func (d *DBProvider) GetDBClient(dbName string) (client.DBClientInterface, error) {
	switch dbName {
	case RuntimeDBName:
		runtimeDBConfig := config.GetServerRuntime().Config.Database.Runtime
		return d.getOrInitClient(&d.runtimeClient, &d.runtimeMutex, runtimeDBConfig)
	default:
		return nil, fmt.Errorf("unsupported database name: %s", dbName)
	}
}

// getOrInitClient gets or initializes a DB client with locking.
func (d *DBProvider) getOrInitClient(
	clientPtr *client.DBClientInterface,
	mutex *sync.RWMutex,
	dataSource config.DataSource,
) (client.DBClientInterface, error) {
	mutex.RLock()
	if *clientPtr != nil {
		c := *clientPtr
		mutex.RUnlock()
		return c, nil
	}
	mutex.RUnlock()

	mutex.Lock()
	defer mutex.Unlock()

	if *clientPtr != nil {
		return *clientPtr, nil
	}

	if err := d.initializeClient(clientPtr, dataSource); err != nil {
		return nil, err
	}

	return *clientPtr, nil
}

// initializeClient initializes a database client and assigns it to the provided pointer.
func (d *DBProvider) initializeClient(clientPtr *client.DBClientInterface, dataSource config.DataSource) error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "DBProvider"))

	dbConfig, err := d.getDBConfig(dataSource)
	if err != nil {
		return err
	}
	dbName := dataSource.Name
	if dbName == "" {
		dbName = dataSource.Path
	}

	db, err := sql.Open(dbConfig.driverName, dbConfig.dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database %s: %w", dbName, err)
	}

	db.SetMaxOpenConns(dataSource.MaxOpenConns)
	db.SetMaxIdleConns(dataSource.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(dataSource.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			return fmt.Errorf("failed to ping database %s: %w (close error: %w)", dbName, err, closeErr)
		}
		return fmt.Errorf("failed to ping database %s: %w", dbName, err)
	}

	logger.Info("Database connection established",
		log.String("type", dataSource.Type), log.String("database", dbName))
	*clientPtr = client.NewDBClient(model.NewDB(db), dbConfig.driverName)
	return nil
}

// getDBConfig returns the database configuration based on the provided data source.
func (d *DBProvider) getDBConfig(dataSource config.DataSource) (dbConfig, error) {
	var dbConfig dbConfig

	switch dataSource.Type {
	case model.DBTypePostgres:
		dbConfig.driverName = model.DBTypePostgres
		dbConfig.dsn = postgresDSN(dataSource)
	case model.DBTypeSQLite:
		dbConfig.driverName = model.DBTypeSQLite
		dbPath := path.Join(config.GetServerRuntime().ServerHome, dataSource.Path)
		// The sqlite driver creates the database file but not its parent directories.
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o750); err != nil {
			return dbConfig, fmt.Errorf("failed to create database directory for %s: %w", dbPath, err)
		}
		options := dataSource.Options
		if options != "" && options[0] != '?' {
			options = "?" + options
		}
		dbConfig.dsn = fmt.Sprintf("%s%s", dbPath, options)
	default:
		return dbConfig, fmt.Errorf("unsupported database type: %s", dataSource.Type)
	}

	return dbConfig, nil
}

// Close closes the database connections.
func (d *DBProvider) Close() error {
	return d.closeClient(&d.runtimeClient, &d.runtimeMutex, RuntimeDBName)
}

// closeClient is a helper to close a DB client with locking.
func (d *DBProvider) closeClient(clientPtr *client.DBClientInterface, mutex *sync.RWMutex,
	clientName string) error {
	mutex.Lock()
	defer mutex.Unlock()
	if *clientPtr != nil {
		if err := (*clientPtr).Close(); err != nil {
			return fmt.Errorf("failed to close %s client: %w", clientName, err)
		}
		*clientPtr = nil
	}
	return nil
}

// postgresDSN builds a postgres:// connection URL so credentials containing spaces,
// quotes or '=' reach the driver intact.
func postgresDSN(dataSource config.DataSource) string {
	dsn := url.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(dataSource.Hostname, strconv.Itoa(dataSource.Port)),
		Path:   "/" + dataSource.Name,
	}
	switch {
	case dataSource.Username != "" && dataSource.Password != "":
		dsn.User = url.UserPassword(dataSource.Username, dataSource.Password)
	case dataSource.Username != "":
		dsn.User = url.User(dataSource.Username)
	}
	if dataSource.SSLMode != "" {
		dsn.RawQuery = url.Values{"sslmode": {dataSource.SSLMode}}.Encode()
	}
	return dsn.String()
}
