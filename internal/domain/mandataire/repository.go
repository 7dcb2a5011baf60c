package mandataire

import "context"

type Repository interface {
	Create(ctx context.Context, m *Mandataire) error
	List(ctx context.Context) ([]Row, error)
	ListByEtablissement(ctx context.Context, etablissementID string) ([]Mandataire, error)
	CountByEtablissement(ctx context.Context, etablissementID string) (int64, error)
	Update(ctx context.Context, m *Mandataire) error
	Delete(ctx context.Context, id string) error
}
