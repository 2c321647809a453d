package redis

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/privalens/privalens-engine/pkg/adapters/datasource"
)

// schemaSampleKeys is how many keys are inspected per keyspace to infer a
// column-like schema approximation.
const schemaSampleKeys = 10

// DiscoverTables enumerates populated logical databases as keyspace tables.
// Key counts come from INFO keyspace statistics, no key iteration happens.
func (a *Adapter) DiscoverTables(ctx context.Context) ([]datasource.TableInfo, error) {
	info, err := a.client(a.config.DB).Info(ctx, "keyspace").Result()
	if err != nil {
		return nil, fmt.Errorf("info keyspace: %w", err)
	}

	tables := parseKeyspaceInfo(info)
	sort.Slice(tables, func(i, j int) bool { return tables[i].TableName < tables[j].TableName })
	return tables, nil
}

// parseKeyspaceInfo extracts "dbN:keys=K,..." lines from INFO output.
func parseKeyspaceInfo(info string) []datasource.TableInfo {
	var tables []datasource.TableInfo
	for _, line := range strings.Split(info, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "db") {
			continue
		}

		name, fields, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		if _, valid := dbIndexFromName(name); !valid {
			continue
		}

		var keys int64
		for _, field := range strings.Split(fields, ",") {
			if v, found := strings.CutPrefix(field, "keys="); found {
				if n, err := strconv.ParseInt(v, 10, 64); err == nil {
					keys = n
				}
			}
		}
		tables = append(tables, datasource.TableInfo{TableName: name, RowCount: keys})
	}
	return tables
}

// DiscoverColumns infers a field schema for one keyspace by sampling a few
// keys: string keys contribute a "value" column, hash keys contribute their
// field names.
func (a *Adapter) DiscoverColumns(ctx context.Context, _, keyspaceName string) ([]datasource.ColumnInfo, error) {
	idx, ok := dbIndexFromName(keyspaceName)
	if !ok {
		return nil, fmt.Errorf("invalid keyspace name %q", keyspaceName)
	}
	client := a.client(idx)

	keys, _, err := client.Scan(ctx, 0, "*", schemaSampleKeys).Result()
	if err != nil {
		return nil, fmt.Errorf("scan keyspace %s: %w", keyspaceName, err)
	}

	fieldTypes := map[string]string{"key": "string"}
	for _, key := range keys {
		keyType, err := client.Type(ctx, key).Result()
		if err != nil {
			continue
		}
		switch keyType {
		case "hash":
			fields, err := client.HKeys(ctx, key).Result()
			if err != nil {
				continue
			}
			for _, field := range fields {
				fieldTypes[field] = "hash_field"
			}
		default:
			fieldTypes["value"] = keyType
		}
	}

	names := make([]string, 0, len(fieldTypes))
	for name := range fieldTypes {
		names = append(names, name)
	}
	sort.Strings(names)

	columns := make([]datasource.ColumnInfo, 0, len(names))
	for _, name := range names {
		columns = append(columns, datasource.ColumnInfo{ColumnName: name, DataType: fieldTypes[name]})
	}
	return columns, nil
}
