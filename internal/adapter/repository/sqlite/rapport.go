package sqlite

import (
	"context"

	"gorm.io/gorm"

	"feffi-backend/internal/domain/rapport"
)

type RapportRepository struct{ db *gorm.DB }

func NewRapportRepository(db *gorm.DB) *RapportRepository { return &RapportRepository{db: db} }

func (r *RapportRepository) Create(ctx context.Context, rp *rapport.Rapport) error {
	return r.db.WithContext(ctx).Create(rp).Error
}

func (r *RapportRepository) List(ctx context.Context) ([]rapport.Row, error) {
	var out []rapport.Row
	err := r.db.WithContext(ctx).
		Table("rapport").
		Select("rapport.*, dren.nom AS dren_nom, cisco.nom AS cisco_nom, zap.nom AS zap_nom, etablissement.nom AS etablissement_nom").
		Joins("LEFT JOIN dren ON dren.id = rapport.dren_id").
		Joins("LEFT JOIN cisco ON cisco.id = rapport.cisco_id").
		Joins("LEFT JOIN zap ON zap.id = rapport.zap_id").
		Joins("LEFT JOIN etablissement ON etablissement.id = rapport.etablissement_id").
		Scan(&out).Error
	return out, err
}

func (r *RapportRepository) ListByEtablissementDate(ctx context.Context, etablissementID, from, to string) ([]rapport.Rapport, error) {
	var out []rapport.Rapport
	err := r.db.WithContext(ctx).
		Where("etablissement_id = ? AND date BETWEEN ? AND ?", etablissementID, from, to).
		Find(&out).Error
	return out, err
}

func (r *RapportRepository) CountByEtablissement(ctx context.Context, etablissementID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&rapport.Rapport{}).
		Where("etablissement_id = ?", etablissementID).Count(&n).Error
	return n, err
}

func (r *RapportRepository) Update(ctx context.Context, rp *rapport.Rapport) error {
	res := r.db.WithContext(ctx).Model(&rapport.Rapport{}).Where("id = ?", rp.ID).
		Updates(map[string]any{
			"dren_id":            rp.DrenID,
			"cisco_id":           rp.CiscoID,
			"zap_id":             rp.ZapID,
			"etablissement_id":   rp.EtablissementID,
			"date":               rp.Date,
			"situation":          rp.Situation,
			"activites":          rp.Activites,
			"fonction":           rp.Fonction,
			"prix_unitaire":      rp.PrixUnitaire,
			"quantite":           rp.Quantite,
			"total":              rp.Total,
			"source_financement": rp.SourceFinancement,
			"executeur":          rp.Executeur,
			"superviseur":        rp.Superviseur,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return rapport.ErrNotFound
	}
	return nil
}

func (r *RapportRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&rapport.Rapport{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return rapport.ErrNotFound
	}
	return nil
}
