// Package mypostgres implements the node directory storage on PostgreSQL.
package mypostgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"openbare/registry/domain"
	"openbare/registry/service"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema is the nodes table. seq keeps insertion order for listings; status is limited to the three
// known values.
const Schema = `
CREATE TABLE IF NOT EXISTS nodes (
	seq            BIGSERIAL,
	id             TEXT PRIMARY KEY,
	url            TEXT NOT NULL,
	region         TEXT NOT NULL DEFAULT '',
	owner          TEXT NOT NULL DEFAULT '',
	version        TEXT NOT NULL DEFAULT '',
	status         TEXT NOT NULL DEFAULT 'unknown' CHECK (status IN ('unknown', 'healthy', 'unhealthy')),
	latency_ms     BIGINT NOT NULL DEFAULT 0,
	last_heartbeat TIMESTAMPTZ,
	created_at     TIMESTAMPTZ NOT NULL,
	updated_at     TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS nodes_seq_idx ON nodes (seq);
`

const nodeColumns = `id, url, region, owner, version, status, latency_ms, last_heartbeat, created_at, updated_at`

type nodeStore struct {
	pool *pgxpool.Pool
}

// NewPool parses dsn, opens a pgx pool and pings it.
func NewPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return pool, nil
}

// EnsureSchema creates the nodes table when it does not exist.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// NewNodeStore creates the PostgreSQL implementation of interfaces.NodeStore.
func NewNodeStore(pool *pgxpool.Pool) *nodeStore {
	return &nodeStore{pool: pool}
}

func (s *nodeStore) Upsert(ctx context.Context, reg domain.Registration, now time.Time) (domain.Node, error) {
	query := `
		INSERT INTO nodes (id, url, region, owner, version, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, 'unknown', $6, $6)
		ON CONFLICT (id) DO UPDATE
		SET url = EXCLUDED.url, region = EXCLUDED.region, owner = EXCLUDED.owner,
			version = EXCLUDED.version, updated_at = EXCLUDED.updated_at
		RETURNING ` + nodeColumns

	node, err := scanNode(s.pool.QueryRow(ctx, query, reg.ID, reg.URL, reg.Region, reg.Owner, reg.Version, now))
	if err != nil {
		return domain.Node{}, service.NewInternalServerError("Postgres upsert node error", fmt.Errorf("failed to upsert node %q: %w", reg.ID, err))
	}
	return node, nil
}

func (s *nodeStore) Get(ctx context.Context, id string) (domain.Node, error) {
	query := `SELECT ` + nodeColumns + ` FROM nodes WHERE id = $1`

	node, err := scanNode(s.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Node{}, service.NewNodeNotFoundError(id)
	}
	if err != nil {
		return domain.Node{}, service.NewInternalServerError("Postgres read node error", fmt.Errorf("failed to get node %q: %w", id, err))
	}
	return node, nil
}

func (s *nodeStore) List(ctx context.Context) ([]domain.Node, error) {
	query := `SELECT ` + nodeColumns + ` FROM nodes ORDER BY seq`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, service.NewInternalServerError("Postgres list nodes error", fmt.Errorf("failed to list nodes: %w", err))
	}
	defer rows.Close()

	nodes := make([]domain.Node, 0)
	for rows.Next() {
		node, err := scanNode(rows)
		if err != nil {
			return nil, service.NewInternalServerError("Postgres list nodes error", fmt.Errorf("failed to scan node: %w", err))
		}
		nodes = append(nodes, node)
	}
	if err := rows.Err(); err != nil {
		return nil, service.NewInternalServerError("Postgres list nodes error", fmt.Errorf("failed to iterate nodes: %w", err))
	}
	return nodes, nil
}

// Update applies the patch in one statement; NULL parameters keep the current column value.
func (s *nodeStore) Update(ctx context.Context, id string, patch domain.NodePatch) error {
	query := `
		UPDATE nodes
		SET status = COALESCE($2, status),
			latency_ms = COALESCE($3, latency_ms),
			last_heartbeat = COALESCE($4, last_heartbeat),
			updated_at = $5
		WHERE id = $1
	`

	var status *string
	if patch.Status != nil {
		v := string(*patch.Status)
		status = &v
	}
	result, err := s.pool.Exec(ctx, query, id, status, patch.LatencyMs, patch.LastHeartbeat, patch.UpdatedAt)
	if err != nil {
		return service.NewInternalServerError("Postgres update node error", fmt.Errorf("failed to update node %q: %w", id, err))
	}
	if result.RowsAffected() == 0 {
		return service.NewNodeNotFoundError(id)
	}
	return nil
}

func (s *nodeStore) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM nodes WHERE id = $1`
	result, err := s.pool.Exec(ctx, query, id)
	if err != nil {
		return service.NewInternalServerError("Postgres delete node error", fmt.Errorf("failed to delete node %q: %w", id, err))
	}
	if result.RowsAffected() == 0 {
		return service.NewNodeNotFoundError(id)
	}
	return nil
}

func scanNode(row pgx.Row) (domain.Node, error) {
	var n domain.Node
	var status string
	err := row.Scan(
		&n.ID,
		&n.URL,
		&n.Region,
		&n.Owner,
		&n.Version,
		&status,
		&n.LatencyMs,
		&n.LastHeartbeat,
		&n.CreatedAt,
		&n.UpdatedAt,
	)
	if err != nil {
		return domain.Node{}, err
	}
	n.Status = domain.NodeStatus(status)
	return n, nil
}
