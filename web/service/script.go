package service

import (
	"context"

	"github.com/fzscripts/fzscripts/database"
	"github.com/fzscripts/fzscripts/database/model"

	"gorm.io/gorm"
)

// ScriptService handles script listings, publication and download counting.
type ScriptService struct{}

// GetScripts returns all scripts ordered by id ascending.
func (s *ScriptService) GetScripts(ctx context.Context) ([]model.Script, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	db := database.GetDB().WithContext(ctx)

	scripts := make([]model.Script, 0)
	err := db.Order("id asc").Find(&scripts).Error
	if err != nil {
		return nil, err
	}
	return scripts, nil
}

func (s *ScriptService) GetScript(ctx context.Context, id int) (*model.Script, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	db := database.GetDB().WithContext(ctx)

	script := &model.Script{}
	err := db.First(script, id).Error
	if database.IsNotFound(err) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return script, nil
}

// GetScriptsByUser returns the scripts owned by userId, ordered by id
// ascending. A user with no scripts yields an empty slice.
func (s *ScriptService) GetScriptsByUser(ctx context.Context, userId int) ([]model.Script, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	db := database.GetDB().WithContext(ctx)

	scripts := make([]model.Script, 0)
	err := db.Where("user_id = ?", userId).Order("id asc").Find(&scripts).Error
	if err != nil {
		return nil, err
	}
	return scripts, nil
}

// CreateScript persists a new script. The id, creation time and zeroed
// counters are assigned by the store; the owner id must come from the
// authenticated session.
func (s *ScriptService) CreateScript(ctx context.Context, script *model.Script) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	db := database.GetDB().WithContext(ctx)

	script.Id = 0
	script.Downloads = 0
	script.Rating = 0
	return db.Create(script).Error
}

// RecordDownload bumps the download counter with a single atomic UPDATE so
// concurrent downloads never lose increments, then returns the fresh record.
func (s *ScriptService) RecordDownload(ctx context.Context, id int) (*model.Script, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()
	db := database.GetDB().WithContext(ctx)

	result := db.Model(&model.Script{}).
		Where("id = ?", id).
		UpdateColumn("downloads", gorm.Expr("downloads + ?", 1))
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.GetScript(ctx, id)
}
