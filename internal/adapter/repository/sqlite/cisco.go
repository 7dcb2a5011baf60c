package sqlite

import (
	"context"

	"gorm.io/gorm"

	"feffi-backend/internal/domain/hierarchy"
)

type CiscoRepository struct{ db *gorm.DB }

func NewCiscoRepository(db *gorm.DB) *CiscoRepository { return &CiscoRepository{db: db} }

func (r *CiscoRepository) Create(ctx context.Context, c *hierarchy.Cisco) error {
	return r.db.WithContext(ctx).Create(c).Error
}

// List joins the parent name so callers get the breadcrumb in one query.
// LEFT JOIN keeps orphaned rows visible, with an empty dren_nom.
func (r *CiscoRepository) List(ctx context.Context) ([]hierarchy.CiscoRow, error) {
	var out []hierarchy.CiscoRow
	err := r.db.WithContext(ctx).
		Table("cisco").
		Select("cisco.*, dren.nom AS dren_nom").
		Joins("LEFT JOIN dren ON dren.id = cisco.dren_id").
		Scan(&out).Error
	return out, err
}

func (r *CiscoRepository) ListByDren(ctx context.Context, drenID string) ([]hierarchy.Cisco, error) {
	var out []hierarchy.Cisco
	err := r.db.WithContext(ctx).Where("dren_id = ?", drenID).Find(&out).Error
	return out, err
}

func (r *CiscoRepository) CountByDren(ctx context.Context, drenID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&hierarchy.Cisco{}).Where("dren_id = ?", drenID).Count(&n).Error
	return n, err
}

func (r *CiscoRepository) Update(ctx context.Context, c *hierarchy.Cisco) error {
	res := r.db.WithContext(ctx).Model(&hierarchy.Cisco{}).Where("id = ?", c.ID).
		Updates(map[string]any{"dren_id": c.DrenID, "nom": c.Nom})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return hierarchy.ErrNotFound
	}
	return nil
}

func (r *CiscoRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&hierarchy.Cisco{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return hierarchy.ErrNotFound
	}
	return nil
}
