package migration_test

import (
	"context"
	"testing"

	"holocron/internal/errors"
	"holocron/internal/infra/persistence/migration"
	"holocron/internal/infra/persistence/storetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var allTables = []string{
	"planet", "film", "starship", "vehicle", "species", "character",
	"starships_films", "vehicles_films", "species_films", "films_planets",
	"user", "favoritos",
}

func newMigrator(t *testing.T) (*migration.Migrator, *gorm.DB) {
	db := storetest.OpenEmpty(t)

	migrator, err := migration.New(db, storetest.DiscardLogger())
	require.NoError(t, err)

	return migrator, db
}

func TestMigrator_UpgradeToHead(t *testing.T) {
	migrator, db := newMigrator(t)
	ctx := context.Background()

	current, err := migrator.Current(ctx)
	require.NoError(t, err)
	assert.Empty(t, current)

	applied, err := migrator.Upgrade(ctx, migration.Head)
	require.NoError(t, err)
	assert.Len(t, applied, len(migration.Revisions()))

	current, err = migrator.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, migration.RevisionFavoritesCreated, current)

	for _, table := range allTables {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
	assert.True(t, db.Migrator().HasColumn("favoritos", "created_at"))

	// A second upgrade is a no-op.
	applied, err = migrator.Upgrade(ctx, migration.Head)
	require.NoError(t, err)
	assert.Empty(t, applied)
}

func TestMigrator_DowngradeAndUpgradeAgain(t *testing.T) {
	migrator, db := newMigrator(t)
	ctx := context.Background()

	_, err := migrator.Upgrade(ctx, migration.Head)
	require.NoError(t, err)

	reverted, err := migrator.Downgrade(ctx, migration.RevisionFavorites)
	require.NoError(t, err)
	assert.Equal(t, []string{migration.RevisionFavoritesCreated, migration.RevisionFavoritesUnique}, reverted)
	assert.False(t, db.Migrator().HasColumn("favoritos", "created_at"))
	assert.False(t, db.Migrator().HasIndex("favoritos", "idx_favoritos_user_planet"))

	reverted, err = migrator.Downgrade(ctx, migration.Base)
	require.NoError(t, err)
	assert.Len(t, reverted, 3)
	for _, table := range allTables {
		assert.False(t, db.Migrator().HasTable(table), table)
	}

	current, err := migrator.Current(ctx)
	require.NoError(t, err)
	assert.Empty(t, current)

	_, err = migrator.Upgrade(ctx, migration.Head)
	require.NoError(t, err)
	assert.True(t, db.Migrator().HasIndex("favoritos", "idx_favoritos_user_planet"))
}

func TestMigrator_UpgradeStepwise(t *testing.T) {
	migrator, db := newMigrator(t)
	ctx := context.Background()

	applied, err := migrator.Upgrade(ctx, migration.RevisionUsers)
	require.NoError(t, err)
	assert.Equal(t, []string{migration.RevisionCatalog, migration.RevisionUsers}, applied)
	assert.True(t, db.Migrator().HasTable("user"))
	assert.False(t, db.Migrator().HasTable("favoritos"))

	_, err = migrator.Downgrade(ctx, migration.RevisionFavorites)
	assert.True(t, errors.Is(err, migration.ErrWrongDirection))

	_, err = migrator.Upgrade(ctx, "9999_missing")
	assert.True(t, errors.Is(err, migration.ErrUnknownRevision))
}

func TestMigrator_SchemaRejectsRowsWithoutSingleTarget(t *testing.T) {
	migrator, db := newMigrator(t)
	ctx := context.Background()

	_, err := migrator.Upgrade(ctx, migration.Head)
	require.NoError(t, err)

	require.NoError(t, db.Exec(
		"INSERT INTO planet (name, url, created, edited) VALUES ('Tatooine', 'https://swapi.dev/api/planets/1/', CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)",
	).Error)
	require.NoError(t, db.Exec(
		"INSERT INTO film (title, episode_id, url, created, edited) VALUES ('A New Hope', 4, 'https://swapi.dev/api/films/1/', CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)",
	).Error)
	require.NoError(t, db.Exec(
		"INSERT INTO `user` (email, username, password, is_active) VALUES ('luke@rebellion.org', 'luke', 'x', true)",
	).Error)

	// No target.
	err = db.Exec("INSERT INTO favoritos (user_id) VALUES (1)").Error
	assert.ErrorContains(t, err, "CHECK constraint failed")

	// Two targets.
	err = db.Exec("INSERT INTO favoritos (user_id, planet_id, film_id) VALUES (1, 1, 1)").Error
	assert.ErrorContains(t, err, "CHECK constraint failed")

	// Exactly one target, twice.
	require.NoError(t, db.Exec("INSERT INTO favoritos (user_id, planet_id) VALUES (1, 1)").Error)
	err = db.Exec("INSERT INTO favoritos (user_id, planet_id) VALUES (1, 1)").Error
	assert.ErrorContains(t, err, "UNIQUE constraint failed")

	// Missing user.
	err = db.Exec("INSERT INTO favoritos (user_id, film_id) VALUES (42, 1)").Error
	assert.ErrorContains(t, err, "FOREIGN KEY constraint failed")
}

func TestNewWithRevisions_RejectsBrokenChain(t *testing.T) {
	noop := func(*gorm.DB) error { return nil }

	_, err := migration.NewWithRevisions(nil, nil, []migration.Revision{
		{ID: "a", Up: noop, Down: noop},
		{ID: "b", DownRevision: "x", Up: noop, Down: noop},
	})
	assert.True(t, errors.Is(err, migration.ErrBrokenChain))

	_, err = migration.NewWithRevisions(nil, nil, []migration.Revision{
		{ID: "a", Up: noop, Down: noop},
		{ID: "a", DownRevision: "a", Up: noop, Down: noop},
	})
	assert.True(t, errors.Is(err, migration.ErrBrokenChain))

	m, err := migration.NewWithRevisions(nil, nil, migration.Revisions())
	require.NoError(t, err)
	assert.Len(t, m.History(), 5)
}
