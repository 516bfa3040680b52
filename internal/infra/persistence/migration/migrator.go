// Package migration applies the chained schema revisions and tracks the applied one in schema_version.
package migration

import (
	"context"
	"log/slog"

	"holocron/internal/errors"

	"gorm.io/gorm"
)

// Special targets accepted by Upgrade and Downgrade.
const (
	Head = "head"
	Base = "base"
)

var (
	// ErrUnknownRevision is returned for a target that is not in the chain.
	ErrUnknownRevision = errors.New("unknown revision")

	// ErrWrongDirection is returned when a target lies on the other side of the current revision.
	ErrWrongDirection = errors.New("target revision is in the other direction")

	// ErrBrokenChain is returned when revisions do not form a single linear chain.
	ErrBrokenChain = errors.New("revision chain is broken")
)

// Revision is one forward/backward schema delta.
type Revision struct {
	ID           string
	DownRevision string // empty for the first revision
	Description  string
	Up           func(tx *gorm.DB) error
	Down         func(tx *gorm.DB) error
}

// Migrator walks the revision chain one transaction per step.
type Migrator struct {
	db        *gorm.DB
	logger    *slog.Logger
	revisions []Revision
}

// New returns a Migrator over the built-in revision chain.
func New(db *gorm.DB, logger *slog.Logger) (*Migrator, error) {
	return NewWithRevisions(db, logger, Revisions())
}

// NewWithRevisions returns a Migrator over revisions, which must be ordered oldest first.
func NewWithRevisions(db *gorm.DB, logger *slog.Logger, revisions []Revision) (*Migrator, error) {
	if err := validateChain(revisions); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Migrator{db: db, logger: logger, revisions: revisions}, nil
}

// History returns the revisions oldest first.
func (m *Migrator) History() []Revision {
	history := make([]Revision, len(m.revisions))
	copy(history, m.revisions)

	return history
}

// Current returns the applied revision id, or "" when the schema is empty.
func (m *Migrator) Current(ctx context.Context) (string, error) {
	db := m.db.WithContext(ctx)
	if err := ensureVersionTable(db); err != nil {
		return "", err
	}

	return currentVersion(db)
}

// Upgrade applies revisions after the current one up to target (Head or a revision id).
// It returns the ids it applied.
func (m *Migrator) Upgrade(ctx context.Context, target string) ([]string, error) {
	from, to, err := m.plan(ctx, target, Head)
	if err != nil {
		return nil, err
	}
	if to < from {
		return nil, errors.Wrapf(ErrWrongDirection, "upgrade to %s", target)
	}

	applied := make([]string, 0, to-from)
	for idx := from + 1; idx <= to; idx++ {
		rev := m.revisions[idx]
		if err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := rev.Up(tx); err != nil {
				return err
			}

			return setVersion(tx, rev.ID)
		}); err != nil {
			return applied, errors.Wrapf(err, "upgrade %s", rev.ID)
		}

		m.logger.InfoContext(ctx, "Applied revision",
			slog.String("revision", rev.ID),
			slog.String("description", rev.Description),
		)
		applied = append(applied, rev.ID)
	}

	return applied, nil
}

// Downgrade reverts revisions down to target (Base or a revision id), which stays applied.
// It returns the ids it reverted.
func (m *Migrator) Downgrade(ctx context.Context, target string) ([]string, error) {
	from, to, err := m.plan(ctx, target, Base)
	if err != nil {
		return nil, err
	}
	if to > from {
		return nil, errors.Wrapf(ErrWrongDirection, "downgrade to %s", target)
	}

	reverted := make([]string, 0, from-to)
	for idx := from; idx > to; idx-- {
		rev := m.revisions[idx]
		if err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := rev.Down(tx); err != nil {
				return err
			}

			return setVersion(tx, rev.DownRevision)
		}); err != nil {
			return reverted, errors.Wrapf(err, "downgrade %s", rev.ID)
		}

		m.logger.InfoContext(ctx, "Reverted revision",
			slog.String("revision", rev.ID),
			slog.String("description", rev.Description),
		)
		reverted = append(reverted, rev.ID)
	}

	return reverted, nil
}

// plan resolves the current and target positions in the chain; -1 stands for an empty schema.
func (m *Migrator) plan(ctx context.Context, target, alias string) (from, to int, err error) {
	current, err := m.Current(ctx)
	if err != nil {
		return 0, 0, err
	}

	if from, err = m.indexOf(current); err != nil {
		return 0, 0, errors.Wrapf(err, "schema_version holds %q", current)
	}

	if target == "" {
		target = alias
	}

	switch target {
	case Head:
		to = len(m.revisions) - 1
	case Base:
		to = -1
	default:
		if to, err = m.indexOf(target); err != nil {
			return 0, 0, err
		}
	}

	return from, to, nil
}

func (m *Migrator) indexOf(id string) (int, error) {
	if id == "" {
		return -1, nil
	}

	for idx, rev := range m.revisions {
		if rev.ID == id {
			return idx, nil
		}
	}

	return 0, errors.Wrapf(ErrUnknownRevision, "%q", id)
}

func validateChain(revisions []Revision) error {
	seen := make(map[string]struct{}, len(revisions))
	previous := ""
	for _, rev := range revisions {
		if rev.ID == "" || rev.Up == nil || rev.Down == nil {
			return errors.Wrapf(ErrBrokenChain, "revision %q is incomplete", rev.ID)
		}
		if _, dup := seen[rev.ID]; dup {
			return errors.Wrapf(ErrBrokenChain, "revision %q appears twice", rev.ID)
		}
		if rev.DownRevision != previous {
			return errors.Wrapf(ErrBrokenChain, "revision %q follows %q, not %q", rev.ID, rev.DownRevision, previous)
		}

		seen[rev.ID] = struct{}{}
		previous = rev.ID
	}

	return nil
}
