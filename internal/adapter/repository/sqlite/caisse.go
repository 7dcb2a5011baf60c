package sqlite

import (
	"context"

	"gorm.io/gorm"

	"feffi-backend/internal/domain/caisse"
)

type CaisseRepository struct{ db *gorm.DB }

func NewCaisseRepository(db *gorm.DB) *CaisseRepository { return &CaisseRepository{db: db} }

func (r *CaisseRepository) Create(ctx context.Context, e *caisse.Caisse) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *CaisseRepository) List(ctx context.Context) ([]caisse.Row, error) {
	var out []caisse.Row
	err := r.db.WithContext(ctx).
		Table("caisse").
		Select("caisse.*, dren.nom AS dren_nom, cisco.nom AS cisco_nom, zap.nom AS zap_nom, etablissement.nom AS etablissement_nom").
		Joins("LEFT JOIN dren ON dren.id = caisse.dren_id").
		Joins("LEFT JOIN cisco ON cisco.id = caisse.cisco_id").
		Joins("LEFT JOIN zap ON zap.id = caisse.zap_id").
		Joins("LEFT JOIN etablissement ON etablissement.id = caisse.etablissement_id").
		Scan(&out).Error
	return out, err
}

func (r *CaisseRepository) ListByEtablissement(ctx context.Context, etablissementID string) ([]caisse.Caisse, error) {
	var out []caisse.Caisse
	err := r.db.WithContext(ctx).Where("etablissement_id = ?", etablissementID).Find(&out).Error
	return out, err
}

func (r *CaisseRepository) CountByEtablissement(ctx context.Context, etablissementID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&caisse.Caisse{}).
		Where("etablissement_id = ?", etablissementID).Count(&n).Error
	return n, err
}

func (r *CaisseRepository) Update(ctx context.Context, e *caisse.Caisse) error {
	res := r.db.WithContext(ctx).Model(&caisse.Caisse{}).Where("id = ?", e.ID).
		Updates(map[string]any{
			"dren_id":          e.DrenID,
			"cisco_id":         e.CiscoID,
			"zap_id":           e.ZapID,
			"etablissement_id": e.EtablissementID,
			"montant_ariary":   e.MontantAriary,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return caisse.ErrNotFound
	}
	return nil
}

func (r *CaisseRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&caisse.Caisse{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return caisse.ErrNotFound
	}
	return nil
}
