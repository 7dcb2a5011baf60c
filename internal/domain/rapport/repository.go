package rapport

import "context"

type Repository interface {
	Create(ctx context.Context, r *Rapport) error
	List(ctx context.Context) ([]Row, error)
	// ListByEtablissementDate returns rows for one etablissement whose date
	// falls within [from, to], both bounds inclusive (YYYY-MM-DD).
	ListByEtablissementDate(ctx context.Context, etablissementID, from, to string) ([]Rapport, error)
	CountByEtablissement(ctx context.Context, etablissementID string) (int64, error)
	Update(ctx context.Context, r *Rapport) error
	Delete(ctx context.Context, id string) error
}
