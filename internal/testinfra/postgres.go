// StreamerData - Streaming Platform Analytics and Reporting API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamerdata

//go:build integration

package testinfra

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/tomtom215/streamerdata/internal/config"
)

const (
	// DefaultPostgresImage is the Postgres image used by integration tests.
	DefaultPostgresImage = "postgres:16-alpine"
	// DefaultPostgresPort is the container-side Postgres port.
	DefaultPostgresPort = "5432"

	postgresUser     = "streamerdata"
	postgresPassword = "streamerdata"
	postgresDB       = "streamerdata"
)

//go:embed fixtures/system_antig.sql
var fixtureSchema string

// PostgresContainer is a running Postgres instance with the system_antig
// fixture schema loaded.
type PostgresContainer struct {
	testcontainers.Container
	Host string
	Port int
}

// PostgresOption configures the Postgres container.
type PostgresOption func(*postgresConfig)

type postgresConfig struct {
	image        string
	startTimeout time.Duration
	skipFixture  bool
}

// WithPostgresImage sets a custom Postgres image.
func WithPostgresImage(image string) PostgresOption {
	return func(c *postgresConfig) {
		c.image = image
	}
}

// WithPostgresStartTimeout sets how long to wait for the server to accept connections.
func WithPostgresStartTimeout(timeout time.Duration) PostgresOption {
	return func(c *postgresConfig) {
		c.startTimeout = timeout
	}
}

// WithoutFixture starts an empty database.
func WithoutFixture() PostgresOption {
	return func(c *postgresConfig) {
		c.skipFixture = true
	}
}

// NewPostgresContainer starts Postgres and applies the fixture schema.
//
//	pg, err := testinfra.NewPostgresContainer(ctx)
//	if err != nil {
//	    t.Fatal(err)
//	}
//	defer testinfra.CleanupContainer(t, ctx, pg)
//	db, err := database.New(pg.DatabaseConfig())
func NewPostgresContainer(ctx context.Context, opts ...PostgresOption) (*PostgresContainer, error) {
	cfg := &postgresConfig{
		image:        DefaultPostgresImage,
		startTimeout: 60 * time.Second,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	req := testcontainers.ContainerRequest{
		Image:        cfg.image,
		ExposedPorts: []string{DefaultPostgresPort + "/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     postgresUser,
			"POSTGRES_PASSWORD": postgresPassword,
			"POSTGRES_DB":       postgresDB,
		},
		// The server logs readiness twice: once for the init run, once for the real start.
		WaitingFor: wait.ForAll(
			wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
			wait.ForListeningPort(DefaultPostgresPort+"/tcp"),
		).WithStartupTimeout(cfg.startTimeout),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("create postgres container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		container.Terminate(ctx) //nolint:errcheck
		return nil, fmt.Errorf("get container host: %w", err)
	}

	port, err := container.MappedPort(ctx, DefaultPostgresPort)
	if err != nil {
		container.Terminate(ctx) //nolint:errcheck
		return nil, fmt.Errorf("get mapped port: %w", err)
	}

	pg := &PostgresContainer{Container: container, Host: host, Port: port.Int()}

	if !cfg.skipFixture {
		if err := pg.ApplySQL(ctx, fixtureSchema); err != nil {
			container.Terminate(ctx) //nolint:errcheck
			return nil, fmt.Errorf("apply fixture schema: %w", err)
		}
	}

	return pg, nil
}

// DatabaseConfig returns a config pointing at the container.
func (p *PostgresContainer) DatabaseConfig() *config.DatabaseConfig {
	return &config.DatabaseConfig{
		Host:            p.Host,
		Port:            p.Port,
		Name:            postgresDB,
		User:            postgresUser,
		Password:        postgresPassword,
		SSLMode:         "disable",
		MaxOpenConns:    10,
		MaxIdleConns:    2,
		ConnMaxLifetime: time.Hour,
		ConnMaxIdleTime: 5 * time.Minute,
		ConnectTimeout:  5 * time.Second,
		IDAllocation:    config.AllocationLocked,
	}
}

// DSN returns a postgres:// URL for the container.
func (p *PostgresContainer) DSN() string {
	return p.DatabaseConfig().DSN()
}

// ApplySQL runs a multi-statement script. Statements without parameters
// go over the simple protocol, so dollar-quoted bodies are accepted.
func (p *PostgresContainer) ApplySQL(ctx context.Context, script string) error {
	conn, err := sql.Open("pgx", p.DSN())
	if err != nil {
		return err
	}
	defer conn.Close()

	if _, err := conn.ExecContext(ctx, script); err != nil {
		return err
	}
	return nil
}

// Truncate empties the data tables, keeping the lookup rows.
func (p *PostgresContainer) Truncate(ctx context.Context) error {
	return p.ApplySQL(ctx, `TRUNCATE system_antig.doacao, system_antig.comentario, system_antig.video,
		system_antig.canal, system_antig.usuario, system_antig.plataforma;
		REFRESH MATERIALIZED VIEW system_antig.mv_performance_streamers;`)
}
