package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"

	"github.com/diwise/insight-client/internal/pkg/application/cmdb"
	"github.com/diwise/insight-client/internal/pkg/infrastructure/router"
	"github.com/diwise/insight-client/internal/pkg/presentation/api/assets"
	"github.com/diwise/insight-client/pkg/insight/client"
	"github.com/diwise/insight-client/pkg/insight/config"
	"github.com/diwise/insight-client/pkg/insight/operator"
	"github.com/diwise/insight-client/pkg/insight/schemacache"
	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
)

const serviceName string = "insight-api"

func main() {
	serviceVersion := buildinfo.SourceVersion()

	ctx, log, cleanup := o11y.Init(context.Background(), serviceName, serviceVersion, "json")
	defer cleanup()

	flags := parseExternalConfig(FlagMap{
		listenAddress: env.GetVariableOrDefault(ctx, "LISTEN_ADDRESS", ""),
		servicePort:   env.GetVariableOrDefault(ctx, "SERVICE_PORT", "8080"),
		configPath:    env.GetVariableOrDefault(ctx, "INSIGHT_CONFIG_PATH", "/opt/diwise/config/insight.yaml"),
		opaPath:       env.GetVariableOrDefault(ctx, "POLICY_PATH", "/opt/diwise/config/authz.rego"),
	})

	handler, err := initialize(ctx, flags)
	if err != nil {
		log.Error("failed to initialize service", "err", err.Error())
		os.Exit(1)
	}

	address := net.JoinHostPort(flags[listenAddress], flags[servicePort])
	log.Info("starting to listen for connections", "address", address)

	err = http.ListenAndServe(address, handler)
	if err != nil {
		log.Error("failed to listen for connections", "err", err.Error())
		os.Exit(1)
	}
}

func initialize(ctx context.Context, flags FlagMap) (http.Handler, error) {
	cfgFile, err := openFile(flags[configPath])
	if err != nil {
		return nil, fmt.Errorf("failed to open configuration file: %w", err)
	}
	defer cfgFile.Close()

	cfg, err := config.LoadConfiguration(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	cfg = config.FromEnv(ctx, cfg)

	policies, err := openFile(flags[opaPath])
	if err != nil {
		return nil, fmt.Errorf("failed to open policy file: %w", err)
	}
	defer policies.Close()

	transport := client.NewFromConfig(cfg)

	cache, err := schemacache.New(ctx, transport, schemacache.Schemas(cfg.Schemas...))
	if err != nil {
		return nil, fmt.Errorf("failed to load insight schemas: %w", err)
	}

	app := cmdb.New(operator.New(transport, cache, operator.PageSize(cfg.PageSize)), cfg)

	r := router.New(ctx, serviceName, router.AllowedOrigins(origins(flags)...))

	err = assets.RegisterHandlers(ctx, r, policies, app)
	if err != nil {
		return nil, err
	}

	return r, nil
}
