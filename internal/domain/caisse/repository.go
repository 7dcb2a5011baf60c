package caisse

import "context"

type Repository interface {
	Create(ctx context.Context, e *Caisse) error
	List(ctx context.Context) ([]Row, error)
	ListByEtablissement(ctx context.Context, etablissementID string) ([]Caisse, error)
	CountByEtablissement(ctx context.Context, etablissementID string) (int64, error)
	Update(ctx context.Context, e *Caisse) error
	Delete(ctx context.Context, id string) error
}
