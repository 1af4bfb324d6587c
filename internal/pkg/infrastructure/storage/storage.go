package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Config struct {
	host     string
	user     string
	password string
	port     string
	dbname   string
	sslmode  string
}

func (c Config) ConnStr() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s", c.user, c.password, c.host, c.port, c.dbname, c.sslmode)
}

func NewConfig(host, user, password, port, dbname, sslmode string) Config {
	return Config{
		host:     host,
		user:     user,
		password: password,
		port:     port,
		dbname:   dbname,
		sslmode:  sslmode,
	}
}

func NewPool(ctx context.Context, config Config) (*pgxpool.Pool, error) {
	p, err := pgxpool.New(ctx, config.ConnStr())
	if err != nil {
		return nil, err
	}

	err = p.Ping(ctx)
	if err != nil {
		return nil, err
	}

	return p, nil
}

var (
	ErrNoRows        = errors.New("no rows in result set")
	ErrQueryRow      = errors.New("could not execute query")
	ErrStoreFailed   = errors.New("could not store data")
	ErrNoID          = errors.New("data contains no id")
	ErrAlreadyExists = errors.New("incident already exists")
)

type Storage struct {
	pool *pgxpool.Pool
}

func NewWithPool(pool *pgxpool.Pool) *Storage {
	return &Storage{pool: pool}
}

func New(ctx context.Context, config Config) (*Storage, error) {
	pool, err := NewPool(ctx, config)
	if err != nil {
		return nil, err
	}

	return &Storage{pool: pool}, nil
}

func (s *Storage) CreateTables(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS incidents (
			incident_id	TEXT 	NOT NULL,
			fingerprint	TEXT 	NOT NULL,
			source		TEXT 	NOT NULL,
			source_id	TEXT 	NOT NULL DEFAULT '',
			title		TEXT 	NOT NULL,
			description	TEXT 	NOT NULL DEFAULT '',
			severity	TEXT 	NOT NULL,
			status		TEXT 	NOT NULL DEFAULT 'new',
			team_id		TEXT 	NOT NULL DEFAULT '',
			assigned_to	TEXT 	NOT NULL DEFAULT '',
			tags 		JSONB	NULL,
			metadata 	JSONB	NULL,
			created_on  timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			modified_on	timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			acknowledged_on	timestamp with time zone NULL,
			closed_on	timestamp with time zone NULL,
			first_response_on	timestamp with time zone NULL,
			sla_response_deadline	timestamp with time zone NULL,
			sla_resolution_deadline	timestamp with time zone NULL,
			sla_response_breached	BOOLEAN NOT NULL DEFAULT FALSE,
			sla_resolution_breached	BOOLEAN NOT NULL DEFAULT FALSE,
			response_at_risk_notified	BOOLEAN NOT NULL DEFAULT FALSE,
			resolution_at_risk_notified	BOOLEAN NOT NULL DEFAULT FALSE,
			superseded	BOOLEAN NOT NULL DEFAULT FALSE,
			CONSTRAINT pkey_incidents PRIMARY KEY (incident_id)
		);

		CREATE UNIQUE INDEX IF NOT EXISTS incidents_live_fingerprint_idx ON incidents (fingerprint) WHERE NOT superseded;
		CREATE INDEX IF NOT EXISTS incidents_status_idx ON incidents (status) WHERE NOT superseded;

		CREATE TABLE IF NOT EXISTS incident_notes (
			note_id		TEXT 	NOT NULL,
			incident_id	TEXT 	NOT NULL,
			body		TEXT 	NOT NULL,
			system		BOOLEAN NOT NULL DEFAULT FALSE,
			created_on  timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT pkey_incident_notes PRIMARY KEY (note_id)
		);

		CREATE TABLE IF NOT EXISTS team_sla_settings (
			team_id		TEXT 	NOT NULL,
			enabled		BOOLEAN NOT NULL DEFAULT FALSE,
			response_targets	JSONB NOT NULL,
			resolution_targets	JSONB NOT NULL,
			business_hours_only	BOOLEAN NOT NULL DEFAULT FALSE,
			business_hours_start	TEXT NOT NULL DEFAULT '08:00',
			business_hours_end	TEXT NOT NULL DEFAULT '17:00',
			business_days	JSONB NOT NULL,
			timezone	TEXT NOT NULL DEFAULT 'UTC',
			modified_on	timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT pkey_team_sla_settings PRIMARY KEY (team_id)
		);

		CREATE TABLE IF NOT EXISTS teams (
			team_id		TEXT NOT NULL,
			name		TEXT NOT NULL,
			CONSTRAINT pkey_teams PRIMARY KEY (team_id)
		);

		CREATE TABLE IF NOT EXISTS team_members (
			team_id		TEXT NOT NULL,
			member_id	TEXT NOT NULL,
			owner		BOOLEAN NOT NULL DEFAULT FALSE,
			CONSTRAINT pkey_team_members PRIMARY KEY (team_id, member_id)
		);

		CREATE TABLE IF NOT EXISTS members (
			member_id	TEXT NOT NULL,
			name		TEXT NOT NULL,
			email		TEXT NOT NULL,
			CONSTRAINT pkey_members PRIMARY KEY (member_id)
		);

		CREATE TABLE IF NOT EXISTS oncall_schedule (
			date		TEXT NOT NULL,
			team_id		TEXT NOT NULL,
			member_ids	JSONB NOT NULL,
			CONSTRAINT pkey_oncall_schedule PRIMARY KEY (date, team_id)
		);
	`)
	if err != nil {
		return err
	}

	return nil
}

func (s *Storage) Close() {
	s.pool.Close()
}
