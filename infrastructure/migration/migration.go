package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-pacing-api/infrastructure/database/postgres"
)

// Step é uma alteração de schema versionada
type Step struct {
	Version int
	Name    string
	SQL     string
}

const createVersionTable = `CREATE TABLE IF NOT EXISTS schema_migrations (
	version INTEGER PRIMARY KEY,
	name VARCHAR(120) NOT NULL,
	applied_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`

// Steps em ordem crescente de versão
var Steps = []Step{
	{
		Version: 1,
		Name:    "create_users",
		SQL: `CREATE TABLE IF NOT EXISTS users (
	id SERIAL PRIMARY KEY,
	name VARCHAR(120) NOT NULL,
	lastname VARCHAR(120) NOT NULL DEFAULT '',
	email VARCHAR(255) NOT NULL UNIQUE,
	password_hash VARCHAR(255) NOT NULL,
	active BOOLEAN NOT NULL DEFAULT TRUE,
	role_id INTEGER NOT NULL DEFAULT 3,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`,
	},
	{
		Version: 2,
		Name:    "create_campaigns",
		SQL: `CREATE TABLE IF NOT EXISTS campaigns (
	id VARCHAR(10) PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	artist_name VARCHAR(255) NOT NULL DEFAULT '',
	platform VARCHAR(60) NOT NULL DEFAULT '',
	goal BIGINT NOT NULL DEFAULT 0,
	goal_metric VARCHAR(20) NOT NULL DEFAULT 'streams',
	start_date DATE,
	end_date DATE,
	status VARCHAR(20) NOT NULL DEFAULT 'active',
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`,
	},
	{
		Version: 3,
		Name:    "create_campaign_sources",
		SQL: `CREATE TABLE IF NOT EXISTS campaign_sources (
	id VARCHAR(10) PRIMARY KEY,
	campaign_id VARCHAR(10) NOT NULL REFERENCES campaigns(id) ON DELETE CASCADE,
	source_name VARCHAR(255) NOT NULL,
	category VARCHAR(20) NOT NULL DEFAULT 'other',
	last_24h BIGINT NOT NULL DEFAULT 0,
	last_7d BIGINT NOT NULL DEFAULT 0,
	last_12m BIGINT NOT NULL DEFAULT 0,
	updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	UNIQUE (campaign_id, source_name)
)`,
	},
	{
		Version: 4,
		Name:    "create_pacing_snapshots",
		SQL: `CREATE TABLE IF NOT EXISTS pacing_snapshots (
	id BIGSERIAL PRIMARY KEY,
	campaign_id VARCHAR(10) NOT NULL REFERENCES campaigns(id) ON DELETE CASCADE,
	campaign_name VARCHAR(255) NOT NULL,
	date DATE NOT NULL,
	status VARCHAR(20) NOT NULL,
	goal BIGINT NOT NULL,
	streams_delivered BIGINT NOT NULL,
	daily_rate BIGINT NOT NULL,
	required_daily_rate BIGINT NOT NULL,
	projected_at_end BIGINT NOT NULL,
	progress_percent NUMERIC(7,2) NOT NULL,
	goal_intersection_day INTEGER,
	attainment DOUBLE PRECISION NOT NULL,
	position INTEGER NOT NULL,
	position_change INTEGER NOT NULL DEFAULT 0,
	previous_position INTEGER NOT NULL DEFAULT 0,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	UNIQUE (campaign_id, date)
)`,
	},
}

// Run aplica os passos ainda não registrados em schema_migrations, um por transação
func Run(ctx context.Context, conn postgres.Conn, steps []Step) (int, error) {
	startTime := time.Now()

	if _, err := conn.ExecContext(ctx, createVersionTable); err != nil {
		return 0, fmt.Errorf("erro ao criar tabela de versões: %w", err)
	}

	var current int
	if err := conn.QueryRowContext(ctx, "SELECT COALESCE(MAX(version), 0) FROM schema_migrations").Scan(&current); err != nil {
		return 0, fmt.Errorf("erro ao consultar versão atual: %w", err)
	}

	applied := 0
	for _, step := range steps {
		if step.Version <= current {
			continue
		}

		err := conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
			if _, err := tx.ExecContext(ctx, step.SQL); err != nil {
				return err
			}
			_, err := tx.ExecContext(ctx, "INSERT INTO schema_migrations (version, name) VALUES ($1, $2)", step.Version, step.Name)
			return err
		})
		if err != nil {
			return applied, fmt.Errorf("erro ao aplicar migração %d (%s): %w", step.Version, step.Name, err)
		}

		logrus.WithFields(logrus.Fields{
			"version": step.Version,
			"name":    step.Name,
		}).Info("Migração aplicada")
		applied++
	}

	logrus.Infof("Migrações concluídas: %d aplicadas em %s (versão anterior: %d)", applied, time.Since(startTime), current)
	return applied, nil
}
