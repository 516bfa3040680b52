package store

import (
	"context"
	"fmt"
	"slices"

	"holocron/internal/domain/entity"
	domainerrors "holocron/internal/domain/errors"
	"holocron/internal/domain/repository"
	"holocron/internal/errors"
	"holocron/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// catalogSpec describes how one catalog kind maps between entity and model.
type catalogSpec[E repository.CatalogEntity, M any] struct {
	kind       entity.CatalogKind
	toDomain   func(*M) *E
	fromDomain func(*E) *M
	modelID    func(*M) uint
	preloads   []string

	// films is set for kinds with a film association table.
	films *filmLinkSpec[E]

	// references lists the catalog rows an item points at, checked before writes.
	references func(*E) []catalogReference

	// dependents are rows in other tables to detach when an item is deleted.
	dependents []dependentRows
}

type filmLinkSpec[E any] struct {
	table       string
	ownerColumn string
	get         func(*E) []uint
	set         func(*E, []uint)
}

type catalogReference struct {
	kind entity.CatalogKind
	ids  []uint
}

type dependentRows struct {
	table   string
	column  string
	nullify bool // set the column to NULL instead of deleting the row
}

type filmLinkRow struct {
	OwnerID uint
	FilmID  uint
}

// catalogRepository implements repository.CatalogRepository for one kind.
type catalogRepository[E repository.CatalogEntity, M any] struct {
	db   *gorm.DB
	spec *catalogSpec[E, M]
}

// Create inserts the item, writes its film links and returns the stored row.
func (repo *catalogRepository[E, M]) Create(ctx context.Context, item *E) (*E, error) {
	if err := repo.checkReferences(ctx, item); err != nil {
		return nil, err
	}

	itemM := repo.spec.fromDomain(item)
	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(itemM).Error; err != nil {
		return nil, repo.translateWriteError(err, "create")
	}

	id := repo.spec.modelID(itemM)
	if links := repo.spec.films; links != nil {
		if err := repo.replaceFilmLinks(ctx, id, links.get(item)); err != nil {
			return nil, err
		}
	}

	return repo.FindByID(ctx, id)
}

// FindByID retrieves one item with its relations and film links.
func (repo *catalogRepository[E, M]) FindByID(ctx context.Context, id uint) (*E, error) {
	itemM := new(M)
	if err := repo.withRelations(ctx).
		Where("id = ?", id).
		First(itemM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCatalogItemNotFound
		}

		return nil, errors.Wrapf(err, "failed to find %s by ID", repo.spec.kind)
	}

	items := []*E{repo.spec.toDomain(itemM)}
	if err := repo.attachFilmLinks(ctx, items, []uint{id}); err != nil {
		return nil, err
	}

	return items[0], nil
}

// FindAll retrieves every item ordered by ID.
func (repo *catalogRepository[E, M]) FindAll(ctx context.Context) ([]*E, error) {
	var itemModels []*M
	if err := repo.withRelations(ctx).
		Order("id").
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrapf(err, "failed to list %s", repo.spec.kind)
	}

	items := make([]*E, 0, len(itemModels))
	ids := make([]uint, 0, len(itemModels))
	for _, itemM := range itemModels {
		items = append(items, repo.spec.toDomain(itemM))
		ids = append(ids, repo.spec.modelID(itemM))
	}

	if err := repo.attachFilmLinks(ctx, items, ids); err != nil {
		return nil, err
	}

	return items, nil
}

// Update overwrites every column except created and replaces the film links.
func (repo *catalogRepository[E, M]) Update(ctx context.Context, item *E) (*E, error) {
	if err := repo.checkReferences(ctx, item); err != nil {
		return nil, err
	}

	itemM := repo.spec.fromDomain(item)
	id := repo.spec.modelID(itemM)

	result := repo.db.WithContext(ctx).
		Model(itemM).
		Select("*").
		Omit("created", clause.Associations).
		Updates(itemM)
	if result.Error != nil {
		return nil, repo.translateWriteError(result.Error, "update")
	}

	if result.RowsAffected == 0 {
		return nil, repository.ErrCatalogItemNotFound
	}

	if links := repo.spec.films; links != nil {
		if err := repo.replaceFilmLinks(ctx, id, links.get(item)); err != nil {
			return nil, err
		}
	}

	return repo.FindByID(ctx, id)
}

// Delete removes the item, its film links and detaches rows that reference it.
func (repo *catalogRepository[E, M]) Delete(ctx context.Context, id uint) error {
	db := repo.db.WithContext(ctx)

	if links := repo.spec.films; links != nil {
		if err := deleteRows(db, links.table, links.ownerColumn, id); err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to delete film links")
		}
	}

	for _, dependent := range repo.spec.dependents {
		var err error
		if dependent.nullify {
			err = db.Exec("UPDATE ? SET ? = NULL WHERE ? = ?",
				clause.Table{Name: dependent.table}, clause.Column{Name: dependent.column},
				clause.Column{Name: dependent.column}, id).Error
		} else {
			err = deleteRows(db, dependent.table, dependent.column, id)
		}
		if err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to detach "+dependent.table)
		}
	}

	result := db.Where("id = ?", id).Delete(new(M))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete "+repo.spec.kind.String())
	}

	if result.RowsAffected == 0 {
		return repository.ErrCatalogItemNotFound
	}

	return nil
}

// SyncIDSequence resets the Postgres serial sequence of the kind's table. SQLite derives the
// next rowid from the table itself, so there it does nothing.
func (repo *catalogRepository[E, M]) SyncIDSequence(ctx context.Context) error {
	if repo.db.Dialector.Name() != "postgres" {
		return nil
	}

	table := model.TableForKind(repo.spec.kind)
	if err := repo.db.WithContext(ctx).Exec(sequenceResetSQL(table), table).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to sync "+table+" id sequence")
	}

	return nil
}

// sequenceResetSQL makes the next generated id MAX(id)+1, or 1 on an empty table.
func sequenceResetSQL(table string) string {
	return fmt.Sprintf(`SELECT setval(pg_get_serial_sequence(?, 'id'), COALESCE(MAX(id), 1), MAX(id) IS NOT NULL) FROM %q`, table)
}

func (repo *catalogRepository[E, M]) withRelations(ctx context.Context) *gorm.DB {
	query := repo.db.WithContext(ctx)
	for _, relation := range repo.spec.preloads {
		query = query.Preload(relation)
	}

	return query
}

// checkReferences verifies homeworld, film and film link ids before writing.
func (repo *catalogRepository[E, M]) checkReferences(ctx context.Context, item *E) error {
	if repo.spec.references == nil {
		return nil
	}

	for _, ref := range repo.spec.references(item) {
		ids := uniqueIDs(ref.ids)
		if len(ids) == 0 {
			continue
		}

		var count int64
		if err := repo.db.WithContext(ctx).
			Table(model.TableForKind(ref.kind)).
			Where("id IN ?", ids).
			Count(&count).Error; err != nil {
			return errors.Wrapf(err, "failed to check %s references", ref.kind)
		}

		if count != int64(len(ids)) {
			return errors.Wrapf(repository.ErrInvalidReference, "unknown %s id", ref.kind)
		}
	}

	return nil
}

func (repo *catalogRepository[E, M]) replaceFilmLinks(ctx context.Context, ownerID uint, filmIDs []uint) error {
	links := repo.spec.films
	db := repo.db.WithContext(ctx)

	if err := deleteRows(db, links.table, links.ownerColumn, ownerID); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear film links")
	}

	for _, filmID := range uniqueIDs(filmIDs) {
		if err := db.Exec("INSERT INTO ? (?, ?) VALUES (?, ?)",
			clause.Table{Name: links.table}, clause.Column{Name: links.ownerColumn}, clause.Column{Name: "film_id"},
			ownerID, filmID).Error; err != nil {
			if isForeignKeyConstraintViolation(err) {
				return errors.Wrap(repository.ErrInvalidReference, "unknown film id")
			}

			return domainerrors.NewDatabaseExecuteError(err, "failed to write film links")
		}
	}

	return nil
}

// attachFilmLinks loads film links for ids in one query and sets them on the matching items.
func (repo *catalogRepository[E, M]) attachFilmLinks(ctx context.Context, items []*E, ids []uint) error {
	links := repo.spec.films
	if links == nil || len(ids) == 0 {
		return nil
	}

	var rows []filmLinkRow
	if err := repo.db.WithContext(ctx).
		Table(links.table).
		Select("? AS owner_id, film_id", clause.Column{Name: links.ownerColumn}).
		Where(clause.IN{Column: clause.Column{Name: links.ownerColumn}, Values: toValues(ids)}).
		Order("film_id").
		Scan(&rows).Error; err != nil {
		return errors.Wrap(err, "failed to load film links")
	}

	byOwner := make(map[uint][]uint, len(ids))
	for _, row := range rows {
		byOwner[row.OwnerID] = append(byOwner[row.OwnerID], row.FilmID)
	}

	for idx, item := range items {
		filmIDs := byOwner[ids[idx]]
		if filmIDs == nil {
			filmIDs = []uint{}
		}
		links.set(item, filmIDs)
	}

	return nil
}

func (repo *catalogRepository[E, M]) translateWriteError(err error, op string) error {
	switch {
	case isUniqueConstraintViolation(err):
		return repository.ErrDuplicateCatalogItem
	case isForeignKeyConstraintViolation(err):
		return repository.ErrInvalidReference
	}

	return domainerrors.NewDatabaseExecuteError(err, "failed to "+op+" "+repo.spec.kind.String())
}

func deleteRows(db *gorm.DB, table, column string, id uint) error {
	return db.Exec("DELETE FROM ? WHERE ? = ?", clause.Table{Name: table}, clause.Column{Name: column}, id).Error
}

func uniqueIDs(ids []uint) []uint {
	out := slices.Clone(ids)
	slices.Sort(out)

	return slices.Compact(out)
}

func toValues(ids []uint) []any {
	values := make([]any, 0, len(ids))
	for _, id := range ids {
		values = append(values, id)
	}

	return values
}
