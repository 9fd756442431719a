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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

const validDeploymentYAML = `
server:
  hostname: "localhost"
  port: 8080
  http_only: false
  shutdown_timeout: 30

security:
  cert_file: "repository/resources/security/server.cert"
  key_file: "repository/resources/security/server.key"

cors:
  allowed_origins:
    - "https://localhost:3000"

lock:
  store: "redis"
  ttl: 120
  cleanup_schedule: "@every 1m"

database:
  runtime:
    type: "postgres"
    hostname: "db"
    port: 5432
    name: "touchid"
    username: "touchid"
    password: "secret"
    sslmode: "disable"

redis:
  address: "redis:6379"
  db: 2

metrics:
  enabled: false
`

type ConfigTestSuite struct {
	suite.Suite
	dir string
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (suite *ConfigTestSuite) SetupTest() {
	suite.dir = suite.T().TempDir()
}

func (suite *ConfigTestSuite) writeFile(name, content string) string {
	path := filepath.Join(suite.dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		suite.T().Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func (suite *ConfigTestSuite) TestLoadConfigValid() {
	config, err := LoadConfig(suite.writeFile("deployment.yaml", validDeploymentYAML))

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), config)

	assert.Equal(suite.T(), "localhost", config.Server.Hostname)
	assert.Equal(suite.T(), 8080, config.Server.Port)
	assert.False(suite.T(), config.Server.HTTPOnly)
	assert.Equal(suite.T(), 30, config.Server.ShutdownTimeout)

	assert.Equal(suite.T(), "repository/resources/security/server.cert", config.Security.CertFile)
	assert.Equal(suite.T(), "repository/resources/security/server.key", config.Security.KeyFile)
	assert.Equal(suite.T(), []string{"https://localhost:3000"}, config.CORS.AllowedOrigins)

	assert.Equal(suite.T(), LockStoreRedis, config.Lock.Store)
	assert.Equal(suite.T(), int64(120), config.Lock.TTL)
	assert.Equal(suite.T(), "@every 1m", config.Lock.CleanupSchedule)

	assert.Equal(suite.T(), "postgres", config.Database.Runtime.Type)
	assert.Equal(suite.T(), "db", config.Database.Runtime.Hostname)
	assert.Equal(suite.T(), 5432, config.Database.Runtime.Port)

	assert.Equal(suite.T(), "redis:6379", config.Redis.Address)
	assert.Equal(suite.T(), 2, config.Redis.DB)
	assert.False(suite.T(), config.Metrics.Enabled)
}

func (suite *ConfigTestSuite) TestLoadConfigKeepsDefaultsForUnsetFields() {
	config, err := LoadConfig(suite.writeFile("deployment.yaml", "server:\n  port: 4000\n"))

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 4000, config.Server.Port)
	assert.Equal(suite.T(), "0.0.0.0", config.Server.Hostname)
	assert.Equal(suite.T(), LockStoreInMemory, config.Lock.Store)
	assert.Equal(suite.T(), "touchid:lock:", config.Redis.KeyPrefix)
	assert.True(suite.T(), config.Metrics.Enabled)
	assert.Equal(suite.T(), "/metrics", config.Metrics.Path)
}

func (suite *ConfigTestSuite) TestLoadConfigLockStoreSelectsRuntimeDatabase() {
	content := "lock:\n  store: postgres\ndatabase:\n  runtime:\n    type: sqlite\n    hostname: db\n"
	config, err := LoadConfig(suite.writeFile("deployment.yaml", content))

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), LockStorePostgres, config.Lock.Store)
	assert.Equal(suite.T(), "postgres", config.Database.Runtime.Type)
	assert.Equal(suite.T(), "db", config.Database.Runtime.Hostname)
}

func (suite *ConfigTestSuite) TestLoadConfigEmptyFile() {
	config, err := LoadConfig(suite.writeFile("deployment.yaml", ""))

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), DefaultConfig(), config)
}

func (suite *ConfigTestSuite) TestLoadConfigFileNotFound() {
	config, err := LoadConfig(filepath.Join(suite.dir, "non_existent_config.yaml"))

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), config)
	assert.Equal(suite.T(), 3000, config.Server.Port)
	assert.Equal(suite.T(), "0.0.0.0", config.Server.Hostname)
	assert.True(suite.T(), config.Server.HTTPOnly)
	assert.Equal(suite.T(), LockStoreInMemory, config.Lock.Store)
	assert.Equal(suite.T(), int64(0), config.Lock.TTL)
}

func (suite *ConfigTestSuite) TestLoadConfigInvalidYAML() {
	config, err := LoadConfig(suite.writeFile("invalid_deployment.yaml", "server: [unclosed\n"))

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), config)
}

func (suite *ConfigTestSuite) TestLoadConfigDirectory() {
	config, err := LoadConfig(suite.dir)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), config)
}
