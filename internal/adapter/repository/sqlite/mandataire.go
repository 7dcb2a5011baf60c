package sqlite

import (
	"context"

	"gorm.io/gorm"

	"feffi-backend/internal/domain/mandataire"
)

type MandataireRepository struct{ db *gorm.DB }

func NewMandataireRepository(db *gorm.DB) *MandataireRepository {
	return &MandataireRepository{db: db}
}

func (r *MandataireRepository) Create(ctx context.Context, m *mandataire.Mandataire) error {
	return r.db.WithContext(ctx).Create(m).Error
}

// List carries the etablissement name and code plus its zap name, which is
// everything the screen and the Excel projection need.
func (r *MandataireRepository) List(ctx context.Context) ([]mandataire.Row, error) {
	var out []mandataire.Row
	err := r.db.WithContext(ctx).
		Table("mandataire").
		Select("mandataire.*, etablissement.nom AS etablissement_nom, etablissement.code AS etablissement_code, zap.nom AS zap_nom").
		Joins("LEFT JOIN etablissement ON etablissement.id = mandataire.etablissement_id").
		Joins("LEFT JOIN zap ON zap.id = etablissement.zap_id").
		Scan(&out).Error
	return out, err
}

func (r *MandataireRepository) ListByEtablissement(ctx context.Context, etablissementID string) ([]mandataire.Mandataire, error) {
	var out []mandataire.Mandataire
	err := r.db.WithContext(ctx).Where("etablissement_id = ?", etablissementID).Find(&out).Error
	return out, err
}

func (r *MandataireRepository) CountByEtablissement(ctx context.Context, etablissementID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&mandataire.Mandataire{}).
		Where("etablissement_id = ?", etablissementID).Count(&n).Error
	return n, err
}

func (r *MandataireRepository) Update(ctx context.Context, m *mandataire.Mandataire) error {
	res := r.db.WithContext(ctx).Model(&mandataire.Mandataire{}).Where("id = ?", m.ID).
		Updates(map[string]any{
			"etablissement_id": m.EtablissementID,
			"nom":              m.Nom,
			"prenom":           m.Prenom,
			"fonction":         m.Fonction,
			"cin":              m.CIN,
			"contact":          m.Contact,
			"adresse":          m.Adresse,
			"email":            m.Email,
			"observation":      m.Observation,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return mandataire.ErrNotFound
	}
	return nil
}

func (r *MandataireRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&mandataire.Mandataire{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return mandataire.ErrNotFound
	}
	return nil
}
