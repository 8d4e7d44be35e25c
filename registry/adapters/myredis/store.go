// Package myredis implements the node directory storage on Redis.
//
// Layout under prefix P: P:node:{id} holds the JSON record, P:index is a sorted set of ids scored by
// a creation sequence taken from P:seq, which gives List a stable insertion order.
package myredis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"openbare/registry/domain"
	"openbare/registry/service"

	"github.com/go-redis/redis/v8"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// maxTxAttempts bounds optimistic-lock retries on a single key.
const maxTxAttempts = 10

// nodeRecord is the stored JSON shape of domain.Node.
type nodeRecord struct {
	ID            string     `json:"id"`
	URL           string     `json:"url"`
	Region        string     `json:"region,omitempty"`
	Owner         string     `json:"owner,omitempty"`
	Version       string     `json:"version,omitempty"`
	Status        string     `json:"status"`
	LatencyMs     int64      `json:"latency_ms"`
	LastHeartbeat *time.Time `json:"last_heartbeat,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func toRecord(n domain.Node) nodeRecord {
	return nodeRecord{
		ID:            n.ID,
		URL:           n.URL,
		Region:        n.Region,
		Owner:         n.Owner,
		Version:       n.Version,
		Status:        string(n.Status),
		LatencyMs:     n.LatencyMs,
		LastHeartbeat: n.LastHeartbeat,
		CreatedAt:     n.CreatedAt,
		UpdatedAt:     n.UpdatedAt,
	}
}

func (r nodeRecord) toNode() domain.Node {
	return domain.Node{
		ID:            r.ID,
		URL:           r.URL,
		Region:        r.Region,
		Owner:         r.Owner,
		Version:       r.Version,
		Status:        domain.NodeStatus(r.Status),
		LatencyMs:     r.LatencyMs,
		LastHeartbeat: r.LastHeartbeat,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

type nodeStore struct {
	client redis.UniversalClient
	prefix string
}

// NewNodeStore creates the redis implementation of interfaces.NodeStore.
func NewNodeStore(client redis.UniversalClient, prefix string) *nodeStore {
	return &nodeStore{
		client: client,
		prefix: prefix,
	}
}

func (r *nodeStore) Upsert(ctx context.Context, reg domain.Registration, now time.Time) (domain.Node, error) {
	key := r.generateKey(reg.ID)
	var stored domain.Node

	err := r.watch(ctx, key, func(tx *redis.Tx) error {
		existing, found, err := r.read(ctx, tx, key)
		if err != nil {
			return err
		}

		var seq int64
		if found {
			stored = existing
			stored.URL = reg.URL
			stored.Region = reg.Region
			stored.Owner = reg.Owner
			stored.Version = reg.Version
			stored.UpdatedAt = now
		} else {
			seq, err = r.client.Incr(ctx, r.seqKey()).Result()
			if err != nil {
				return fmt.Errorf("can't allocate sequence for node '%s', err: %w", reg.ID, err)
			}
			stored = domain.Node{
				ID:        reg.ID,
				URL:       reg.URL,
				Region:    reg.Region,
				Owner:     reg.Owner,
				Version:   reg.Version,
				Status:    domain.NodeStatusUnknown,
				CreatedAt: now,
				UpdatedAt: now,
			}
		}

		bytes, err := json.Marshal(toRecord(stored))
		if err != nil {
			return fmt.Errorf("can't marshal node '%s', err: %w", reg.ID, err)
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, bytes, 0)
			if !found {
				pipe.ZAdd(ctx, r.indexKey(), &redis.Z{Score: float64(seq), Member: reg.ID})
			}
			return nil
		})
		return err
	})
	if err != nil {
		return domain.Node{}, service.NewInternalServerError("Redis upsert node error", fmt.Errorf("can't upsert node (key='%s'), err: %w", key, err))
	}
	return stored, nil
}

func (r *nodeStore) Get(ctx context.Context, id string) (domain.Node, error) {
	node, found, err := r.read(ctx, r.client, r.generateKey(id))
	if err != nil {
		return domain.Node{}, service.NewInternalServerError("Redis read node error", err)
	}
	if !found {
		return domain.Node{}, service.NewNodeNotFoundError(id)
	}
	return node, nil
}

// List reads the creation index then fetches the records in one MGET. Ids whose record vanished
// between the two reads are skipped.
func (r *nodeStore) List(ctx context.Context) ([]domain.Node, error) {
	ids, err := r.client.ZRange(ctx, r.indexKey(), 0, -1).Result()
	if err != nil {
		return nil, service.NewInternalServerError("Redis read index error", fmt.Errorf("redis zrange error, err: %w", err))
	}
	if len(ids) == 0 {
		return []domain.Node{}, nil
	}

	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, r.generateKey(id))
	}
	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, service.NewInternalServerError("Redis read nodes error", fmt.Errorf("redis mget error, err: %w", err))
	}

	nodes := make([]domain.Node, 0, len(values))
	for i, v := range values {
		s, ok := v.(string)
		if !ok {
			continue
		}
		var rec nodeRecord
		if err := json.Unmarshal([]byte(s), &rec); err != nil {
			return nil, service.NewInternalServerError("Redis decode node error", fmt.Errorf("can't unmarshal node (key='%s'), err: %w", keys[i], err))
		}
		nodes = append(nodes, rec.toNode())
	}
	return nodes, nil
}

func (r *nodeStore) Update(ctx context.Context, id string, patch domain.NodePatch) error {
	key := r.generateKey(id)
	err := r.watch(ctx, key, func(tx *redis.Tx) error {
		node, found, err := r.read(ctx, tx, key)
		if err != nil {
			return err
		}
		if !found {
			return service.NewNodeNotFoundError(id)
		}
		patch.Apply(&node)
		bytes, err := json.Marshal(toRecord(node))
		if err != nil {
			return fmt.Errorf("can't marshal node '%s', err: %w", id, err)
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, bytes, 0)
			return nil
		})
		return err
	})
	if err != nil {
		return service.NewInternalServerError("Redis update node error", fmt.Errorf("can't update node (key='%s'), err: %w", key, err))
	}
	return nil
}

func (r *nodeStore) Delete(ctx context.Context, id string) error {
	key := r.generateKey(id)
	var del *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		del = pipe.Del(ctx, key)
		pipe.ZRem(ctx, r.indexKey(), id)
		return nil
	})
	if err != nil {
		return service.NewInternalServerError("Redis delete node error", fmt.Errorf("can't delete node (key='%s'), err: %w", key, err))
	}
	if del.Val() == 0 {
		return service.NewNodeNotFoundError(id)
	}
	return nil
}

// watch runs fn under WATCH key, retrying when another writer touched the key first.
func (r *nodeStore) watch(ctx context.Context, key string, fn func(tx *redis.Tx) error) error {
	for attempt := 0; attempt < maxTxAttempts; attempt++ {
		err := r.client.Watch(ctx, fn, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return err
	}
	return fmt.Errorf("optimistic lock on '%s' failed after %d attempts", key, maxTxAttempts)
}

func (r *nodeStore) read(ctx context.Context, c redis.Cmdable, key string) (domain.Node, bool, error) {
	bytes, err := c.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Node{}, false, nil
	}
	if err != nil {
		return domain.Node{}, false, fmt.Errorf("can't read node (key='%s'), err: %w", key, err)
	}
	var rec nodeRecord
	if err := json.Unmarshal(bytes, &rec); err != nil {
		return domain.Node{}, false, fmt.Errorf("can't unmarshal node (key='%s'), err: %w", key, err)
	}
	return rec.toNode(), true, nil
}

func (r *nodeStore) generateKey(id string) string {
	return r.prefix + ":node:" + id
}

func (r *nodeStore) indexKey() string {
	return r.prefix + ":index"
}

func (r *nodeStore) seqKey() string {
	return r.prefix + ":seq"
}
