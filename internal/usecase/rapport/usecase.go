package rapport

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	domain "feffi-backend/internal/domain/rapport"
	"feffi-backend/pkg/id"
)

type Usecase struct{ repo domain.Repository }

func NewUsecase(r domain.Repository) *Usecase { return &Usecase{repo: r} }

// validate checks presence and shape only. Total is accepted as submitted:
// the screens compute prix_unitaire × quantite and the backend stores the
// result without recomputing it.
func invalid(msg string) error {
	return fmt.Errorf("%w: %s", domain.ErrInvalid, msg)
}

func validate(r *domain.Rapport) error {
	if r.EtablissementID == "" {
		return invalid("etablissement_id is required")
	}
	if _, err := time.Parse("2006-01-02", r.Date); err != nil {
		return invalid("date must be YYYY-MM-DD")
	}
	if r.Situation == "" || r.Activites == "" || r.Fonction == "" {
		return invalid("situation, activites and fonction are required")
	}
	if r.PrixUnitaire.IsNegative() || r.Quantite < 0 || r.Total.IsNegative() {
		return invalid("prix_unitaire, quantite and total must be >= 0")
	}
	if r.SourceFinancement == "" || r.Executeur == "" || r.Superviseur == "" {
		return invalid("source_financement, executeur and superviseur are required")
	}
	return nil
}

func (u *Usecase) Create(ctx context.Context, r *domain.Rapport) error {
	if err := validate(r); err != nil {
		return err
	}
	if r.ID == "" {
		r.ID = id.NewID32()
	}
	if err := u.repo.Create(ctx, r); err != nil {
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

func (u *Usecase) SearchByEtablissementDate(ctx context.Context, etablissementID, from, to string) ([]domain.Rapport, error) {
	if etablissementID == "" {
		return nil, invalid("etablissement_id is required")
	}
	for _, d := range []string{from, to} {
		if _, err := time.Parse("2006-01-02", d); err != nil {
			return nil, invalid("dates must be YYYY-MM-DD")
		}
	}
	return u.repo.ListByEtablissementDate(ctx, etablissementID, from, to)
}

func (u *Usecase) Update(ctx context.Context, r *domain.Rapport) error {
	if r.ID == "" {
		return invalid("id is required")
	}
	if err := validate(r); err != nil {
		return err
	}
	return u.repo.Update(ctx, r)
}

func (u *Usecase) Delete(ctx context.Context, rapportID string) error {
	return u.repo.Delete(ctx, rapportID)
}
