package sqlite

import (
	"context"

	"gorm.io/gorm"

	"feffi-backend/internal/domain/hierarchy"
)

type ZapRepository struct{ db *gorm.DB }

func NewZapRepository(db *gorm.DB) *ZapRepository { return &ZapRepository{db: db} }

func (r *ZapRepository) Create(ctx context.Context, z *hierarchy.Zap) error {
	return r.db.WithContext(ctx).Create(z).Error
}

func (r *ZapRepository) List(ctx context.Context) ([]hierarchy.ZapRow, error) {
	var out []hierarchy.ZapRow
	err := r.db.WithContext(ctx).
		Table("zap").
		Select("zap.*, cisco.nom AS cisco_nom").
		Joins("LEFT JOIN cisco ON cisco.id = zap.cisco_id").
		Scan(&out).Error
	return out, err
}

func (r *ZapRepository) ListByCisco(ctx context.Context, ciscoID string) ([]hierarchy.Zap, error) {
	var out []hierarchy.Zap
	err := r.db.WithContext(ctx).Where("cisco_id = ?", ciscoID).Find(&out).Error
	return out, err
}

func (r *ZapRepository) CountByCisco(ctx context.Context, ciscoID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&hierarchy.Zap{}).Where("cisco_id = ?", ciscoID).Count(&n).Error
	return n, err
}

func (r *ZapRepository) Update(ctx context.Context, z *hierarchy.Zap) error {
	res := r.db.WithContext(ctx).Model(&hierarchy.Zap{}).Where("id = ?", z.ID).
		Updates(map[string]any{"cisco_id": z.CiscoID, "nom": z.Nom})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return hierarchy.ErrNotFound
	}
	return nil
}

func (r *ZapRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&hierarchy.Zap{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return hierarchy.ErrNotFound
	}
	return nil
}
