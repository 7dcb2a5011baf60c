package sqlite

import (
	"context"

	"gorm.io/gorm"

	"feffi-backend/internal/domain/hierarchy"
)

type EtablissementRepository struct{ db *gorm.DB }

func NewEtablissementRepository(db *gorm.DB) *EtablissementRepository {
	return &EtablissementRepository{db: db}
}

func (r *EtablissementRepository) Create(ctx context.Context, e *hierarchy.Etablissement) error {
	return r.db.WithContext(ctx).Create(e).Error
}

// List joins every ancestor level through the stored (denormalized) ids, not
// through the zap's own chain. An inconsistent chain therefore shows exactly
// what was stored.
func (r *EtablissementRepository) List(ctx context.Context) ([]hierarchy.EtablissementRow, error) {
	var out []hierarchy.EtablissementRow
	err := r.db.WithContext(ctx).
		Table("etablissement").
		Select("etablissement.*, dren.nom AS dren_nom, cisco.nom AS cisco_nom, zap.nom AS zap_nom").
		Joins("LEFT JOIN dren ON dren.id = etablissement.dren_id").
		Joins("LEFT JOIN cisco ON cisco.id = etablissement.cisco_id").
		Joins("LEFT JOIN zap ON zap.id = etablissement.zap_id").
		Scan(&out).Error
	return out, err
}

func (r *EtablissementRepository) ListByZap(ctx context.Context, zapID string) ([]hierarchy.Etablissement, error) {
	var out []hierarchy.Etablissement
	err := r.db.WithContext(ctx).Where("zap_id = ?", zapID).Find(&out).Error
	return out, err
}

func (r *EtablissementRepository) CountByZap(ctx context.Context, zapID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&hierarchy.Etablissement{}).Where("zap_id = ?", zapID).Count(&n).Error
	return n, err
}

func (r *EtablissementRepository) GetByID(ctx context.Context, id string) (*hierarchy.Etablissement, error) {
	var out hierarchy.Etablissement
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *EtablissementRepository) Update(ctx context.Context, e *hierarchy.Etablissement) error {
	res := r.db.WithContext(ctx).Model(&hierarchy.Etablissement{}).Where("id = ?", e.ID).
		Updates(map[string]any{
			"dren_id":  e.DrenID,
			"cisco_id": e.CiscoID,
			"zap_id":   e.ZapID,
			"code":     e.Code,
			"nom":      e.Nom,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return hierarchy.ErrNotFound
	}
	return nil
}

func (r *EtablissementRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&hierarchy.Etablissement{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return hierarchy.ErrNotFound
	}
	return nil
}
