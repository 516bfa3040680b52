package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequenceResetSQL(t *testing.T) {
	assert.Equal(t,
		`SELECT setval(pg_get_serial_sequence(?, 'id'), COALESCE(MAX(id), 1), MAX(id) IS NOT NULL) FROM "planet"`,
		sequenceResetSQL("planet"),
	)
}
