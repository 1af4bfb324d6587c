package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/diwise/oncall-mgmt/internal/pkg/application/incidents"
	"github.com/diwise/oncall-mgmt/internal/pkg/application/oncall"
	"github.com/diwise/oncall-mgmt/internal/pkg/application/sweeper"
	"github.com/diwise/oncall-mgmt/internal/pkg/infrastructure/notifications"
	"github.com/diwise/oncall-mgmt/internal/pkg/infrastructure/router"
	"github.com/diwise/oncall-mgmt/internal/pkg/infrastructure/storage"
	"github.com/diwise/oncall-mgmt/internal/pkg/presentation/api"
	"github.com/diwise/oncall-mgmt/pkg/types"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"gopkg.in/yaml.v2"
)

const serviceName string = "oncall-mgmt"

type flagType int
type flagMap map[flagType]string

const (
	listenAddress flagType = iota
	servicePort

	policiesFile
	configurationFile

	dbHost
	dbUser
	dbPassword
	dbPort
	dbName
	dbSSLMode

	webhookSecret
)

func defaultFlags() flagMap {
	return flagMap{
		listenAddress: "0.0.0.0",
		servicePort:   "8080",

		policiesFile:      "/opt/diwise/config/authz.rego",
		configurationFile: "/opt/diwise/config/config.yaml",

		dbHost:     "",
		dbUser:     "",
		dbPassword: "",
		dbPort:     "5432",
		dbName:     "diwise",
		dbSSLMode:  "disable",

		webhookSecret: "",
	}
}

type appConfig struct {
	Notifications notifications.Config  `yaml:"notifications"`
	Sweeper       sweeper.Config        `yaml:"sweeper"`
	Teams         []storage.TeamRecord  `yaml:"teams"`
	Schedule      []types.ScheduleEntry `yaml:"schedule"`
}

func main() {
	ctx, flags := parseExternalConfig(context.Background(), defaultFlags())

	serviceVersion := buildinfo.SourceVersion()
	ctx, logger, cleanup := o11y.Init(ctx, serviceName, serviceVersion, "json")
	defer cleanup()

	cfgFile, err := os.Open(flags[configurationFile])
	exitIf(err, logger, "could not open configuration file")

	cfg, err := parseExternalConfigFile(cfgFile)
	exitIf(err, logger, "could not parse configuration file")

	policies, err := os.Open(flags[policiesFile])
	exitIf(err, logger, "unable to open opa policy file")
	defer policies.Close()

	err = run(ctx, flags, cfg, policies)
	exitIf(err, logger, "failed to run service")
}

func run(ctx context.Context, flags flagMap, cfg *appConfig, policies io.Reader) error {
	log := logging.GetFromContext(ctx)

	s, err := storage.New(ctx, storage.NewConfig(
		flags[dbHost], flags[dbUser], flags[dbPassword],
		flags[dbPort], flags[dbName], flags[dbSSLMode],
	))
	if err != nil {
		return fmt.Errorf("could not connect to database: %w", err)
	}
	defer s.Close()

	err = s.CreateTables(ctx)
	if err != nil {
		return fmt.Errorf("could not create database tables: %w", err)
	}

	err = storage.SeedDirectory(ctx, s, cfg.Teams)
	if err != nil {
		return fmt.Errorf("could not seed team directory: %w", err)
	}

	err = storage.SeedSchedule(ctx, s, cfg.Schedule)
	if err != nil {
		return fmt.Errorf("could not seed on-call schedule: %w", err)
	}

	messenger, err := messaging.Initialize(ctx, messaging.LoadConfiguration(ctx, serviceName, log))
	if err != nil {
		return fmt.Errorf("failed to init messenger: %w", err)
	}
	defer messenger.Close()

	resolver := oncall.NewResolver(s, s)
	notifier := notifications.New(cfg.Notifications)

	svc := incidents.New(s, resolver, notifier, messenger)
	sweep := sweeper.New(s, s, notifier, messenger, &cfg.Sweeper)

	messenger.Start()

	sweep.Start(ctx)
	defer sweep.Stop(ctx)

	r, err := api.RegisterHandlers(ctx, router.New(serviceName), policies, svc, sweep, flags[webhookSecret])
	if err != nil {
		return fmt.Errorf("failed to register handlers: %w", err)
	}

	apiPort := fmt.Sprintf("%s:%s", flags[listenAddress], flags[servicePort])
	webServer := &http.Server{Addr: apiPort, Handler: r}

	errChan := make(chan error, 1)

	go func() {
		log.Info("starting api server", "address", apiPort)

		err := webServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return err
	case sig := <-sigChan:
		log.Info("shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return webServer.Shutdown(shutdownCtx)
}

func parseExternalConfigFile(cfgFile io.ReadCloser) (*appConfig, error) {
	defer cfgFile.Close()

	b, err := io.ReadAll(cfgFile)
	if err != nil {
		return nil, err
	}

	cfg := &appConfig{}
	err = yaml.Unmarshal(b, cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func parseExternalConfig(ctx context.Context, flags flagMap) (context.Context, flagMap) {
	// Allow environment variables to override certain defaults
	envOrDef := env.GetVariableOrDefault

	flags[listenAddress] = envOrDef(ctx, "LISTEN_ADDRESS", flags[listenAddress])
	flags[servicePort] = envOrDef(ctx, "SERVICE_PORT", flags[servicePort])

	flags[policiesFile] = envOrDef(ctx, "POLICIES_FILE", flags[policiesFile])

	flags[dbHost] = envOrDef(ctx, "POSTGRES_HOST", flags[dbHost])
	flags[dbPort] = envOrDef(ctx, "POSTGRES_PORT", flags[dbPort])
	flags[dbName] = envOrDef(ctx, "POSTGRES_DBNAME", flags[dbName])
	flags[dbUser] = envOrDef(ctx, "POSTGRES_USER", flags[dbUser])
	flags[dbPassword] = envOrDef(ctx, "POSTGRES_PASSWORD", flags[dbPassword])
	flags[dbSSLMode] = envOrDef(ctx, "POSTGRES_SSLMODE", flags[dbSSLMode])

	flags[webhookSecret] = envOrDef(ctx, "WEBHOOK_SECRET", flags[webhookSecret])

	apply := func(f flagType) func(string) error {
		return func(value string) error {
			flags[f] = value
			return nil
		}
	}

	// Allow command line arguments to override defaults and environment variables
	flag.Func("policies", "an authorization policy file", apply(policiesFile))
	flag.Func("config", "service configuration file", apply(configurationFile))
	flag.Parse()

	return ctx, flags
}

func exitIf(err error, logger *slog.Logger, msg string, args ...any) {
	if err != nil {
		logger.With(args...).Error(msg, "err", err.Error())
		time.Sleep(2 * time.Second)
		os.Exit(1)
	}
}
