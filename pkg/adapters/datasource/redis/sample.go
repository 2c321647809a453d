package redis

import (
	"context"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/privalens/privalens-engine/pkg/adapters/datasource"
)

// SampleRows reads up to limit keys from the keyspace via SCAN and returns
// one row per key. String values land in "value"; hash fields become
// individual row entries; list/set members are sampled into "value".
func (a *Adapter) SampleRows(ctx context.Context, _, keyspaceName string, limit int) ([]map[string]any, error) {
	idx, ok := dbIndexFromName(keyspaceName)
	if !ok {
		return nil, fmt.Errorf("invalid keyspace name %q", keyspaceName)
	}
	client := a.client(idx)
	limit = datasource.ClampSampleLimit(limit)

	var rows []map[string]any
	var cursor uint64
	for len(rows) < limit {
		keys, next, err := client.Scan(ctx, cursor, "*", int64(limit-len(rows))).Result()
		if err != nil {
			return nil, fmt.Errorf("scan keyspace %s: %w", keyspaceName, err)
		}

		for _, key := range keys {
			if len(rows) >= limit {
				break
			}
			row, err := readKey(ctx, client, key)
			if err != nil {
				// One unreadable key (expired mid-scan, wrong type race)
				// must not abort the sample.
				continue
			}
			rows = append(rows, row)
		}

		cursor = next
		if cursor == 0 {
			break
		}
	}

	return rows, nil
}

// sampleMembers caps how many list/set members are read per key.
const sampleMembers = 5

// readKey materializes one key into a row map keyed by field name.
func readKey(ctx context.Context, client *redis.Client, key string) (map[string]any, error) {
	keyType, err := client.Type(ctx, key).Result()
	if err != nil {
		return nil, err
	}

	row := map[string]any{"key": key}
	switch keyType {
	case "string":
		val, err := client.Get(ctx, key).Result()
		if err != nil {
			return nil, err
		}
		row["value"] = val
	case "hash":
		fields, err := client.HGetAll(ctx, key).Result()
		if err != nil {
			return nil, err
		}
		for field, val := range fields {
			row[field] = val
		}
	case "list":
		members, err := client.LRange(ctx, key, 0, sampleMembers-1).Result()
		if err != nil {
			return nil, err
		}
		row["value"] = strings.Join(members, " ")
	case "set":
		members, err := client.SRandMemberN(ctx, key, sampleMembers).Result()
		if err != nil {
			return nil, err
		}
		row["value"] = strings.Join(members, " ")
	default:
		// zset, stream and module types carry scores/ids rather than
		// user content; skip them.
		return nil, fmt.Errorf("unsupported key type %s", keyType)
	}

	return row, nil
}
