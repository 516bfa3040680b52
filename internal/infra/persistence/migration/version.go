package migration

import (
	"holocron/internal/errors"

	"gorm.io/gorm"
)

// schemaVersion holds a single row naming the applied revision.
type schemaVersion struct {
	VersionNum string `gorm:"primaryKey;size:32"`
}

func (schemaVersion) TableName() string {
	return "schema_version"
}

func ensureVersionTable(db *gorm.DB) error {
	if db.Migrator().HasTable(&schemaVersion{}) {
		return nil
	}

	return errors.Wrap(db.Migrator().CreateTable(&schemaVersion{}), "create schema_version")
}

func currentVersion(db *gorm.DB) (string, error) {
	var versions []schemaVersion
	if err := db.Limit(1).Find(&versions).Error; err != nil {
		return "", errors.Wrap(err, "read schema_version")
	}

	if len(versions) == 0 {
		return "", nil
	}

	return versions[0].VersionNum, nil
}

// setVersion replaces the stored revision; an empty id clears it.
func setVersion(tx *gorm.DB, id string) error {
	if err := tx.Where("1 = 1").Delete(&schemaVersion{}).Error; err != nil {
		return errors.Wrap(err, "clear schema_version")
	}

	if id == "" {
		return nil
	}

	return errors.Wrap(tx.Create(&schemaVersion{VersionNum: id}).Error, "write schema_version")
}
