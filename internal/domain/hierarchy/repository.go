package hierarchy

import "context"

type DrenRepository interface {
	Create(ctx context.Context, d *Dren) error
	List(ctx context.Context) ([]Dren, error)
	SearchByNom(ctx context.Context, term string) ([]Dren, error)
	Update(ctx context.Context, d *Dren) error
	// Delete removes the row only; it neither cascades nor restricts.
	Delete(ctx context.Context, id string) error
}

type CiscoRepository interface {
	Create(ctx context.Context, c *Cisco) error
	List(ctx context.Context) ([]CiscoRow, error)
	ListByDren(ctx context.Context, drenID string) ([]Cisco, error)
	CountByDren(ctx context.Context, drenID string) (int64, error)
	Update(ctx context.Context, c *Cisco) error
	Delete(ctx context.Context, id string) error
}

type ZapRepository interface {
	Create(ctx context.Context, z *Zap) error
	List(ctx context.Context) ([]ZapRow, error)
	ListByCisco(ctx context.Context, ciscoID string) ([]Zap, error)
	CountByCisco(ctx context.Context, ciscoID string) (int64, error)
	Update(ctx context.Context, z *Zap) error
	Delete(ctx context.Context, id string) error
}

type EtablissementRepository interface {
	Create(ctx context.Context, e *Etablissement) error
	List(ctx context.Context) ([]EtablissementRow, error)
	ListByZap(ctx context.Context, zapID string) ([]Etablissement, error)
	CountByZap(ctx context.Context, zapID string) (int64, error)
	Update(ctx context.Context, e *Etablissement) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*Etablissement, error)
}
