package caisse

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	domain "feffi-backend/internal/domain/caisse"
	"feffi-backend/pkg/id"
)

type Usecase struct{ repo domain.Repository }

func NewUsecase(r domain.Repository) *Usecase { return &Usecase{repo: r} }

func invalid(msg string) error {
	return fmt.Errorf("%w: %s", domain.ErrInvalid, msg)
}

func validate(e *domain.Caisse) error {
	if e.DrenID == "" || e.CiscoID == "" || e.ZapID == "" || e.EtablissementID == "" {
		return invalid("dren_id, cisco_id, zap_id and etablissement_id are required")
	}
	if e.MontantAriary.IsNegative() {
		return invalid("montant_ariary must be >= 0")
	}
	return nil
}

func (u *Usecase) Create(ctx context.Context, e *domain.Caisse) error {
	if err := validate(e); err != nil {
		return err
	}
	if e.ID == "" {
		e.ID = id.NewID32()
	}
	if err := u.repo.Create(ctx, e); err != nil {
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

func (u *Usecase) SearchByEtablissement(ctx context.Context, etablissementID string) ([]domain.Caisse, error) {
	return u.repo.ListByEtablissement(ctx, etablissementID)
}

func (u *Usecase) Update(ctx context.Context, e *domain.Caisse) error {
	if e.ID == "" {
		return invalid("id is required")
	}
	if err := validate(e); err != nil {
		return err
	}
	return u.repo.Update(ctx, e)
}

func (u *Usecase) Delete(ctx context.Context, caisseID string) error {
	return u.repo.Delete(ctx, caisseID)
}
