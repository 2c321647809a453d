package redis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKeyspaceInfo(t *testing.T) {
	info := "# Keyspace\r\ndb0:keys=120,expires=3,avg_ttl=0\r\ndb2:keys=7,expires=0,avg_ttl=0\r\n"

	tables := parseKeyspaceInfo(info)

	require.Len(t, tables, 2)
	assert.Equal(t, "db0", tables[0].TableName)
	assert.Equal(t, int64(120), tables[0].RowCount)
	assert.Equal(t, "db2", tables[1].TableName)
	assert.Equal(t, int64(7), tables[1].RowCount)
}

func TestParseKeyspaceInfoIgnoresGarbage(t *testing.T) {
	info := "# Keyspace\r\ndbx:keys=1\r\nnot a line\r\ndb1:malformed\r\n"

	tables := parseKeyspaceInfo(info)

	require.Len(t, tables, 1)
	assert.Equal(t, "db1", tables[0].TableName)
	assert.Zero(t, tables[0].RowCount)
}

func TestDBIndexFromName(t *testing.T) {
	tests := []struct {
		name  string
		idx   int
		valid bool
	}{
		{"db0", 0, true},
		{"db15", 15, true},
		{"db-1", 0, false},
		{"database0", 0, false},
		{"keys", 0, false},
	}

	for _, tc := range tests {
		idx, ok := dbIndexFromName(tc.name)
		assert.Equal(t, tc.valid, ok, tc.name)
		if tc.valid {
			assert.Equal(t, tc.idx, idx, tc.name)
		}
	}
}
