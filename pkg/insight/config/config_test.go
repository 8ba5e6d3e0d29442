package config

import (
	"bytes"
	"context"
	"testing"

	"github.com/diwise/insight-client/pkg/insight/types"
	"github.com/matryer/is"
)

func TestLoadConfig(t *testing.T) {
	is, cfg := setupConfigTest(t)

	is.Equal(cfg.Endpoint, "https://jira.example.com")
	is.Equal(cfg.PageSize, 50)
	is.Equal(cfg.Schemas, []types.SchemaID{1, 3})
	is.Equal(cfg.Headers["Authorization"], "Bearer token")
	is.True(cfg.Debug)
}

func TestObjectTypeBindings(t *testing.T) {
	is, cfg := setupConfigTest(t)

	id, ok := cfg.ObjectTypeID("company")
	is.True(ok)
	is.Equal(id, types.ObjectTypeID(7))

	_, ok = cfg.ObjectTypeID("Laptop")
	is.True(!ok)
}

func TestEnvironmentOverridesConfig(t *testing.T) {
	is, cfg := setupConfigTest(t)

	t.Setenv("INSIGHT_ENDPOINT", "http://localhost:8080/")
	t.Setenv("INSIGHT_PAGE_SIZE", "10")
	t.Setenv("INSIGHT_SCHEMA_IDS", "4, 5")
	t.Setenv("INSIGHT_DEBUG", "false")

	cfg = FromEnv(context.Background(), cfg)

	is.Equal(cfg.Endpoint, "http://localhost:8080")
	is.Equal(cfg.PageSize, 10)
	is.Equal(cfg.Schemas, []types.SchemaID{4, 5})
	is.True(!cfg.Debug)
	is.Equal(len(cfg.ObjectTypes), 2) // bindings should be kept
}

func TestFromEnvWithoutConfig(t *testing.T) {
	is := is.New(t)

	t.Setenv("INSIGHT_ENDPOINT", "http://localhost:8080")

	cfg := FromEnv(context.Background(), nil)

	is.Equal(cfg.Endpoint, "http://localhost:8080")
	is.Equal(cfg.PageSize, 0)
}

func setupConfigTest(t *testing.T) (*is.I, *Config) {
	is := is.New(t)
	cfgData := bytes.NewBuffer([]byte(configFile))
	config, err := LoadConfiguration(cfgData)
	is.NoErr(err)

	return is, config
}

var configFile string = `
endpoint: https://jira.example.com
debug: true
pageSize: 50
schemas: [1, 3]
headers:
  Authorization: Bearer token
objectTypes:
  - name: Company
    id: 7
  - name: Country
    id: 8
`
