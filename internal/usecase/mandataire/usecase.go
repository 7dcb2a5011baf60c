package mandataire

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	domain "feffi-backend/internal/domain/mandataire"
	"feffi-backend/pkg/id"
)

type Usecase struct{ repo domain.Repository }

func NewUsecase(r domain.Repository) *Usecase { return &Usecase{repo: r} }

func invalid(msg string) error {
	return fmt.Errorf("%w: %s", domain.ErrInvalid, msg)
}

func normalize(m *domain.Mandataire) {
	// empty email must stay NULL so the unique index ignores it
	if m.Email != nil && *m.Email == "" {
		m.Email = nil
	}
}

func (u *Usecase) Create(ctx context.Context, m *domain.Mandataire) error {
	if m.Nom == "" || m.Prenom == "" || m.Fonction == "" || m.CIN == "" || m.EtablissementID == "" {
		return invalid("nom, prenom, fonction, cin and etablissement_id are required")
	}
	if m.ID == "" {
		m.ID = id.NewID32()
	}
	normalize(m)
	if err := u.repo.Create(ctx, m); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicate
		}
		return err
	}
	return nil
}

func (u *Usecase) Read(ctx context.Context) ([]domain.Row, error) {
	return u.repo.List(ctx)
}

func (u *Usecase) SearchByEtablissement(ctx context.Context, etablissementID string) ([]domain.Mandataire, error) {
	return u.repo.ListByEtablissement(ctx, etablissementID)
}

func (u *Usecase) Update(ctx context.Context, m *domain.Mandataire) error {
	if m.ID == "" {
		return invalid("id is required")
	}
	if m.Nom == "" || m.Prenom == "" || m.Fonction == "" || m.CIN == "" || m.EtablissementID == "" {
		return invalid("nom, prenom, fonction, cin and etablissement_id are required")
	}
	normalize(m)
	if err := u.repo.Update(ctx, m); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicate
		}
		return err
	}
	return nil
}

func (u *Usecase) Delete(ctx context.Context, mandataireID string) error {
	return u.repo.Delete(ctx, mandataireID)
}
