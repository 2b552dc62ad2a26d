// Package database manages the SQLite store: connection setup, migrations,
// and the idempotent bootstrap of the reserved admin account.
package database

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"path"

	"github.com/fzscripts/fzscripts/config"
	"github.com/fzscripts/fzscripts/database/model"
	"github.com/fzscripts/fzscripts/util/crypto"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var db *gorm.DB

// BootstrapUsername is the single reserved account provisioned with admin and
// verified flags at first startup.
const (
	BootstrapUsername = "Faze"
	bootstrapPassword = "fzx"
)

func initModels() error {
	models := []any{
		&model.User{},
		&model.Script{},
	}
	for _, m := range models {
		if err := db.AutoMigrate(m); err != nil {
			log.Printf("Error auto migrating model: %v", err)
			return err
		}
	}
	return nil
}

// initBootstrapUser seeds the reserved admin account and its sample script.
// The unique constraint on username is the real guard against concurrent
// startup; the existence pre-check only avoids hashing on the common path.
func initBootstrapUser() error {
	var count int64
	err := db.Model(&model.User{}).
		Where("username = ?", BootstrapUsername).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := crypto.HashPassword(bootstrapPassword)
	if err != nil {
		return err
	}
	admin := &model.User{
		Username: BootstrapUsername,
		Password: hashed,
		Verified: true,
		IsAdmin:  true,
	}
	if err := db.Create(admin).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		return err
	}

	sample := &model.Script{
		Title:       "Auto Game Bot",
		Description: "A powerful automation script for Roblox games that handles resource collection and combat.",
		Code:        sampleScriptCode,
		Language:    "lua",
		Category:    "combat",
		UserId:      admin.Id,
	}
	return db.Create(sample).Error
}

// InitDB opens the SQLite database at dbPath, runs migrations and seeds the
// bootstrap admin.
func InitDB(dbPath string) error {
	dir := path.Dir(dbPath)
	err := os.MkdirAll(dir, fs.ModePerm)
	if err != nil {
		return err
	}

	var gormLogger logger.Interface

	if config.IsDebug() {
		gormLogger = logger.Default
	} else {
		gormLogger = logger.Discard
	}

	c := &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
		TranslateError:         true,
	}

	dsn := dbPath + "?_journal_mode=WAL&_synchronous=NORMAL&_busy_timeout=10000"
	db, err = gorm.Open(sqlite.Open(dsn), c)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	_, err = sqlDB.Exec("PRAGMA cache_size = -64000;")
	if err != nil {
		return err
	}
	_, err = sqlDB.Exec("PRAGMA temp_store = MEMORY;")
	if err != nil {
		return err
	}
	_, err = sqlDB.Exec("PRAGMA foreign_keys = ON;")
	if err != nil {
		return err
	}

	if err := initModels(); err != nil {
		return err
	}
	return initBootstrapUser()
}

func CloseDB() error {
	if db != nil {
		if err := Checkpoint(); err != nil {
			log.Printf("error executing checkpoint: %v", err)
		}

		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		if err := sqlDB.Close(); err != nil {
			return err
		}
		db = nil
	}
	return nil
}

func GetDB() *gorm.DB {
	return db
}

func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// Checkpoint flushes the WAL into the main database file.
func Checkpoint() error {
	return db.Exec("PRAGMA wal_checkpoint;").Error
}
