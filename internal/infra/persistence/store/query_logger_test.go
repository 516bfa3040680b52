package store

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"holocron/config"
	deliverycontext "holocron/internal/delivery/context"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestQueryLogger(t *testing.T, cfg *config.Config) (*queryLogger, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	ql, ok := newQueryLogger(base, cfg).(*queryLogger)
	require.True(t, ok)

	return ql, &buf
}

func records(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var record map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &record))
		out = append(out, record)
	}

	return out
}

func statement(sql string) func() (string, int64) {
	return func() (string, int64) { return sql, 1 }
}

func TestQueryLogger_CarriesRequestID(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Debug = true
	ql, buf := newTestQueryLogger(t, cfg)

	ctx := deliverycontext.WithRequestID(context.Background(), "req-42")
	ql.Trace(ctx, time.Now(), statement(`SELECT * FROM "planet"`), nil)
	ql.Trace(context.Background(), time.Now(), statement(`SELECT * FROM "film"`), nil)

	logged := records(t, buf)
	require.Len(t, logged, 2)
	assert.Equal(t, "GORM query", logged[0]["msg"])
	assert.Equal(t, "req-42", logged[0]["request_id"])
	assert.Equal(t, `SELECT * FROM "planet"`, logged[0]["sql"])
	assert.NotContains(t, logged[1], "request_id")
}

func TestQueryLogger_SlowThresholdFromConfig(t *testing.T) {
	ql, _ := newTestQueryLogger(t, nil)
	assert.Equal(t, defaultSlowQueryThreshold, ql.slowThreshold)

	ql, buf := newTestQueryLogger(t, &config.Config{Database: &config.DatabaseConfig{SlowQueryThreshold: time.Millisecond}})
	assert.Equal(t, time.Millisecond, ql.slowThreshold)

	ql.Trace(context.Background(), time.Now().Add(-time.Second), statement(`SELECT 1`), nil)
	ql.Trace(context.Background(), time.Now(), statement(`SELECT 2`), nil)

	logged := records(t, buf)
	require.Len(t, logged, 1, "fast statements are not logged outside debug")
	assert.Equal(t, "GORM slow query", logged[0]["msg"])
	assert.Equal(t, "WARN", logged[0]["level"])
}

func TestQueryLogger_NegativeThresholdDisablesSlowWarnings(t *testing.T) {
	ql, buf := newTestQueryLogger(t, &config.Config{Database: &config.DatabaseConfig{SlowQueryThreshold: -1}})

	ql.Trace(context.Background(), time.Now().Add(-time.Hour), statement(`SELECT 1`), nil)

	assert.Empty(t, buf.String())
}

func TestQueryLogger_ErrorLevels(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantMsg   string
		wantLevel string
	}{
		{name: "constraint violation", err: gorm.ErrDuplicatedKey, wantMsg: "GORM constraint violation", wantLevel: "WARN"},
		{name: "other failure", err: assert.AnError, wantMsg: "GORM query failed", wantLevel: "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ql, buf := newTestQueryLogger(t, nil)

			ql.Trace(context.Background(), time.Now(), statement(`INSERT INTO "planet"`), tt.err)

			logged := records(t, buf)
			require.Len(t, logged, 1)
			assert.Equal(t, tt.wantMsg, logged[0]["msg"])
			assert.Equal(t, tt.wantLevel, logged[0]["level"])
			assert.Equal(t, tt.err.Error(), logged[0]["error"])
		})
	}
}

func TestQueryLogger_RecordNotFoundStaysQuiet(t *testing.T) {
	ql, buf := newTestQueryLogger(t, nil)

	ql.Trace(context.Background(), time.Now(), statement(`SELECT * FROM "user" WHERE id = 999`), gorm.ErrRecordNotFound)

	assert.Empty(t, buf.String())
}
