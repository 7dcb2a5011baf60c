package sqlite

import (
	"context"

	"gorm.io/gorm"

	"feffi-backend/internal/domain/hierarchy"
)

type DrenRepository struct{ db *gorm.DB }

func NewDrenRepository(db *gorm.DB) *DrenRepository { return &DrenRepository{db: db} }

func (r *DrenRepository) Create(ctx context.Context, d *hierarchy.Dren) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *DrenRepository) List(ctx context.Context) ([]hierarchy.Dren, error) {
	var out []hierarchy.Dren
	err := r.db.WithContext(ctx).Find(&out).Error
	return out, err
}

func (r *DrenRepository) SearchByNom(ctx context.Context, term string) ([]hierarchy.Dren, error) {
	var out []hierarchy.Dren
	err := r.db.WithContext(ctx).Where("nom LIKE ?", "%"+term+"%").Find(&out).Error
	return out, err
}

func (r *DrenRepository) Update(ctx context.Context, d *hierarchy.Dren) error {
	res := r.db.WithContext(ctx).Model(&hierarchy.Dren{}).Where("id = ?", d.ID).
		Update("nom", d.Nom)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return hierarchy.ErrNotFound
	}
	return nil
}

// Delete removes only the dren row. Dependent ciscos are left untouched;
// the restrict policy lives in the usecase layer.
func (r *DrenRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&hierarchy.Dren{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return hierarchy.ErrNotFound
	}
	return nil
}
