package config

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/diwise/insight-client/pkg/insight/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	yaml "gopkg.in/yaml.v2"
)

type ObjectTypeBinding struct {
	Name string             `yaml:"name"`
	ID   types.ObjectTypeID `yaml:"id"`
}

type Config struct {
	Endpoint    string              `yaml:"endpoint"`
	Debug       bool                `yaml:"debug"`
	PageSize    int                 `yaml:"pageSize"`
	Schemas     []types.SchemaID    `yaml:"schemas"`
	Headers     map[string]string   `yaml:"headers"`
	ObjectTypes []ObjectTypeBinding `yaml:"objectTypes"`
}

// ObjectTypeID returns the id bound to an object type name, ignoring case
func (c *Config) ObjectTypeID(name string) (types.ObjectTypeID, bool) {
	for _, ot := range c.ObjectTypes {
		if strings.EqualFold(ot.Name, name) {
			return ot.ID, true
		}
	}
	return 0, false
}

func LoadConfiguration(data io.Reader) (*Config, error) {

	buf, err := io.ReadAll(data)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	err = yaml.Unmarshal(buf, &cfg)

	return cfg, err
}

// FromEnv overlays cfg with the INSIGHT_* environment variables. A nil cfg starts out empty.
func FromEnv(ctx context.Context, cfg *Config) *Config {
	if cfg == nil {
		cfg = &Config{}
	}

	cfg.Endpoint = strings.TrimSuffix(env.GetVariableOrDefault(ctx, "INSIGHT_ENDPOINT", cfg.Endpoint), "/")
	cfg.Debug = env.GetVariableOrDefault(ctx, "INSIGHT_DEBUG", strconv.FormatBool(cfg.Debug)) == "true"

	if size, err := strconv.Atoi(env.GetVariableOrDefault(ctx, "INSIGHT_PAGE_SIZE", strconv.Itoa(cfg.PageSize))); err == nil {
		cfg.PageSize = size
	}

	if ids := env.GetVariableOrDefault(ctx, "INSIGHT_SCHEMA_IDS", ""); ids != "" {
		cfg.Schemas = []types.SchemaID{}
		for _, s := range strings.Split(ids, ",") {
			if id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64); err == nil {
				cfg.Schemas = append(cfg.Schemas, types.SchemaID(id))
			}
		}
	}

	return cfg
}
