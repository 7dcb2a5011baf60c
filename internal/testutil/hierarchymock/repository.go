package hierarchymock

import (
	"context"
	"errors"

	domain "feffi-backend/internal/domain/hierarchy"
)

// Function-backed mocks satisfying the four hierarchy repositories. Only
// the methods a test sets are live; the rest return zero values.

type DrenRepo struct {
	CreateFn      func(ctx context.Context, d *domain.Dren) error
	ListFn        func(ctx context.Context) ([]domain.Dren, error)
	SearchByNomFn func(ctx context.Context, term string) ([]domain.Dren, error)
	UpdateFn      func(ctx context.Context, d *domain.Dren) error
	DeleteFn      func(ctx context.Context, id string) error
}

func (m *DrenRepo) Create(ctx context.Context, d *domain.Dren) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, d)
	}
	return nil
}
func (m *DrenRepo) List(ctx context.Context) ([]domain.Dren, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}
func (m *DrenRepo) SearchByNom(ctx context.Context, term string) ([]domain.Dren, error) {
	if m.SearchByNomFn != nil {
		return m.SearchByNomFn(ctx, term)
	}
	return nil, nil
}
func (m *DrenRepo) Update(ctx context.Context, d *domain.Dren) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, d)
	}
	return nil
}
func (m *DrenRepo) Delete(ctx context.Context, id string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

type CiscoRepo struct {
	CreateFn      func(ctx context.Context, c *domain.Cisco) error
	ListFn        func(ctx context.Context) ([]domain.CiscoRow, error)
	ListByDrenFn  func(ctx context.Context, drenID string) ([]domain.Cisco, error)
	CountByDrenFn func(ctx context.Context, drenID string) (int64, error)
	UpdateFn      func(ctx context.Context, c *domain.Cisco) error
	DeleteFn      func(ctx context.Context, id string) error
}

func (m *CiscoRepo) Create(ctx context.Context, c *domain.Cisco) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return nil
}
func (m *CiscoRepo) List(ctx context.Context) ([]domain.CiscoRow, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}
func (m *CiscoRepo) ListByDren(ctx context.Context, drenID string) ([]domain.Cisco, error) {
	if m.ListByDrenFn != nil {
		return m.ListByDrenFn(ctx, drenID)
	}
	return nil, nil
}
func (m *CiscoRepo) CountByDren(ctx context.Context, drenID string) (int64, error) {
	if m.CountByDrenFn != nil {
		return m.CountByDrenFn(ctx, drenID)
	}
	return 0, nil
}
func (m *CiscoRepo) Update(ctx context.Context, c *domain.Cisco) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, c)
	}
	return nil
}
func (m *CiscoRepo) Delete(ctx context.Context, id string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

type ZapRepo struct {
	CreateFn       func(ctx context.Context, z *domain.Zap) error
	ListFn         func(ctx context.Context) ([]domain.ZapRow, error)
	ListByCiscoFn  func(ctx context.Context, ciscoID string) ([]domain.Zap, error)
	CountByCiscoFn func(ctx context.Context, ciscoID string) (int64, error)
	UpdateFn       func(ctx context.Context, z *domain.Zap) error
	DeleteFn       func(ctx context.Context, id string) error
}

func (m *ZapRepo) Create(ctx context.Context, z *domain.Zap) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, z)
	}
	return nil
}
func (m *ZapRepo) List(ctx context.Context) ([]domain.ZapRow, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}
func (m *ZapRepo) ListByCisco(ctx context.Context, ciscoID string) ([]domain.Zap, error) {
	if m.ListByCiscoFn != nil {
		return m.ListByCiscoFn(ctx, ciscoID)
	}
	return nil, nil
}
func (m *ZapRepo) CountByCisco(ctx context.Context, ciscoID string) (int64, error) {
	if m.CountByCiscoFn != nil {
		return m.CountByCiscoFn(ctx, ciscoID)
	}
	return 0, nil
}
func (m *ZapRepo) Update(ctx context.Context, z *domain.Zap) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, z)
	}
	return nil
}
func (m *ZapRepo) Delete(ctx context.Context, id string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

type EtablissementRepo struct {
	CreateFn     func(ctx context.Context, e *domain.Etablissement) error
	ListFn       func(ctx context.Context) ([]domain.EtablissementRow, error)
	ListByZapFn  func(ctx context.Context, zapID string) ([]domain.Etablissement, error)
	CountByZapFn func(ctx context.Context, zapID string) (int64, error)
	UpdateFn     func(ctx context.Context, e *domain.Etablissement) error
	DeleteFn     func(ctx context.Context, id string) error
	GetByIDFn    func(ctx context.Context, id string) (*domain.Etablissement, error)
}

func (m *EtablissementRepo) Create(ctx context.Context, e *domain.Etablissement) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, e)
	}
	return nil
}
func (m *EtablissementRepo) List(ctx context.Context) ([]domain.EtablissementRow, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}
func (m *EtablissementRepo) ListByZap(ctx context.Context, zapID string) ([]domain.Etablissement, error) {
	if m.ListByZapFn != nil {
		return m.ListByZapFn(ctx, zapID)
	}
	return nil, nil
}
func (m *EtablissementRepo) CountByZap(ctx context.Context, zapID string) (int64, error) {
	if m.CountByZapFn != nil {
		return m.CountByZapFn(ctx, zapID)
	}
	return 0, nil
}
func (m *EtablissementRepo) Update(ctx context.Context, e *domain.Etablissement) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, e)
	}
	return nil
}
func (m *EtablissementRepo) Delete(ctx context.Context, id string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}
func (m *EtablissementRepo) GetByID(ctx context.Context, id string) (*domain.Etablissement, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errors.New("not implemented")
}
