package hierarchy

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"gorm.io/gorm"

	domain "feffi-backend/internal/domain/hierarchy"
	"feffi-backend/pkg/id"
)

// Option is one selectable entry of a cascading dropdown.
type Option struct {
	ID  string `json:"id"`
	Nom string `json:"nom"`
}

// DependentCounter reports how many child rows reference an etablissement.
type DependentCounter interface {
	CountByEtablissement(ctx context.Context, etablissementID string) (int64, error)
}

// Usecase is the single shared implementation of the cascade that every
// screen of the original re-implemented by hand, plus validated CRUD for
// the four hierarchy levels.
type Usecase struct {
	drens          domain.DrenRepository
	ciscos         domain.CiscoRepository
	zaps           domain.ZapRepository
	etablissements domain.EtablissementRepository

	// dependents of an etablissement, consulted before delete
	etabDependents []DependentCounter
}

func NewUsecase(
	drens domain.DrenRepository,
	ciscos domain.CiscoRepository,
	zaps domain.ZapRepository,
	etablissements domain.EtablissementRepository,
	etabDependents ...DependentCounter,
) *Usecase {
	return &Usecase{
		drens:          drens,
		ciscos:         ciscos,
		zaps:           zaps,
		etablissements: etablissements,
		etabDependents: etabDependents,
	}
}

// sortOptions orders by display name ascending, locale-aware and
// case-insensitive ("zap" and "Zone" sort independently of case). Stable, so
// ties keep store iteration order.
func sortOptions(opts []Option) {
	c := collate.New(language.French, collate.IgnoreCase)
	sort.SliceStable(opts, func(i, j int) bool {
		return c.CompareString(opts[i].Nom, opts[j].Nom) < 0
	})
}

// ListDrens returns the root level, always fully populated.
func (u *Usecase) ListDrens(ctx context.Context) ([]Option, error) {
	rows, err := u.drens.List(ctx)
	if err != nil {
		return nil, err
	}
	opts := make([]Option, 0, len(rows))
	for _, d := range rows {
		opts = append(opts, Option{ID: d.ID, Nom: d.Nom})
	}
	sortOptions(opts)
	return opts, nil
}

// ListChildren returns the valid, sorted children one level below the given
// parent level. An empty parentID yields an empty list, never "all
// children".
func (u *Usecase) ListChildren(ctx context.Context, parent Level, parentID string) ([]Option, error) {
	if parentID == "" {
		return []Option{}, nil
	}
	var opts []Option
	switch parent {
	case LevelDren:
		rows, err := u.ciscos.ListByDren(ctx, parentID)
		if err != nil {
			return nil, err
		}
		for _, c := range rows {
			opts = append(opts, Option{ID: c.ID, Nom: c.Nom})
		}
	case LevelCisco:
		rows, err := u.zaps.ListByCisco(ctx, parentID)
		if err != nil {
			return nil, err
		}
		for _, z := range rows {
			opts = append(opts, Option{ID: z.ID, Nom: z.Nom})
		}
	case LevelZap:
		rows, err := u.etablissements.ListByZap(ctx, parentID)
		if err != nil {
			return nil, err
		}
		for _, e := range rows {
			opts = append(opts, Option{ID: e.ID, Nom: e.Nom})
		}
	default:
		return nil, domain.ErrNotFound
	}
	if opts == nil {
		opts = []Option{}
	}
	sortOptions(opts)
	return opts, nil
}

// Hydration is the replayed cascade for one stored entity: the selection as
// far as it could be resolved, and the option list of every level that was
// reached. Levels past a failed fetch stay empty (placeholder-only).
type Hydration struct {
	Selection      Selection `json:"selection"`
	Drens          []Option  `json:"drens"`
	Ciscos         []Option  `json:"ciscos"`
	Zaps           []Option  `json:"zaps"`
	Etablissements []Option  `json:"etablissements"`
}

// Hydrate replays the cascade top-down from a stored ancestor chain. Each
// step is gated on the previous fetch. The stored ids are applied as-is:
// an id pointing outside its parent's children is selected anyway, never
// silently corrected. On a fetch failure the partial hydration is returned
// together with the error: upstream selections survive, downstream levels
// are left for the user to redo.
func (u *Usecase) Hydrate(ctx context.Context, sel Selection) (*Hydration, error) {
	h := &Hydration{
		Drens:          []Option{},
		Ciscos:         []Option{},
		Zaps:           []Option{},
		Etablissements: []Option{},
	}

	drens, err := u.ListDrens(ctx)
	if err != nil {
		return h, err
	}
	h.Drens = drens
	if sel.DrenID == "" {
		return h, nil
	}
	h.Selection = h.Selection.WithDren(sel.DrenID)

	ciscos, err := u.ListChildren(ctx, LevelDren, sel.DrenID)
	if err != nil {
		return h, err
	}
	h.Ciscos = ciscos
	if sel.CiscoID == "" {
		return h, nil
	}
	h.Selection = h.Selection.WithCisco(sel.CiscoID)

	zaps, err := u.ListChildren(ctx, LevelCisco, sel.CiscoID)
	if err != nil {
		return h, err
	}
	h.Zaps = zaps
	if sel.ZapID == "" {
		return h, nil
	}
	h.Selection = h.Selection.WithZap(sel.ZapID)

	etabs, err := u.ListChildren(ctx, LevelZap, sel.ZapID)
	if err != nil {
		return h, err
	}
	h.Etablissements = etabs
	if sel.EtablissementID != "" {
		h.Selection = h.Selection.WithEtablissement(sel.EtablissementID)
	}
	return h, nil
}

// ---- CRUD for the four levels ----

func dup(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrDuplicate
	}
	return err
}

// invalid marks an input rejection so handlers can tell it from a store
// failure.
func invalid(msg string) error {
	return fmt.Errorf("%w: %s", domain.ErrInvalid, msg)
}

func (u *Usecase) CreateDren(ctx context.Context, d *domain.Dren) error {
	if d.Nom == "" {
		return invalid("nom is required")
	}
	if d.ID == "" {
		d.ID = id.NewID32()
	}
	return dup(u.drens.Create(ctx, d))
}

func (u *Usecase) ReadDrens(ctx context.Context) ([]domain.Dren, error) {
	return u.drens.List(ctx)
}

func (u *Usecase) SearchDrens(ctx context.Context, term string) ([]domain.Dren, error) {
	return u.drens.SearchByNom(ctx, term)
}

func (u *Usecase) UpdateDren(ctx context.Context, d *domain.Dren) error {
	if d.ID == "" || d.Nom == "" {
		return invalid("id and nom are required")
	}
	return u.drens.Update(ctx, d)
}

// DeleteDren refuses while ciscos still reference the dren. The storage
// layer itself would happily orphan them; the policy lives here.
func (u *Usecase) DeleteDren(ctx context.Context, drenID string) error {
	n, err := u.ciscos.CountByDren(ctx, drenID)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.ErrHasDependents
	}
	return u.drens.Delete(ctx, drenID)
}

func (u *Usecase) CreateCisco(ctx context.Context, c *domain.Cisco) error {
	if c.Nom == "" || c.DrenID == "" {
		return invalid("nom and dren_id are required")
	}
	if c.ID == "" {
		c.ID = id.NewID32()
	}
	return dup(u.ciscos.Create(ctx, c))
}

func (u *Usecase) ReadCiscos(ctx context.Context) ([]domain.CiscoRow, error) {
	return u.ciscos.List(ctx)
}

func (u *Usecase) UpdateCisco(ctx context.Context, c *domain.Cisco) error {
	if c.ID == "" || c.Nom == "" || c.DrenID == "" {
		return invalid("id, nom and dren_id are required")
	}
	return u.ciscos.Update(ctx, c)
}

func (u *Usecase) DeleteCisco(ctx context.Context, ciscoID string) error {
	n, err := u.zaps.CountByCisco(ctx, ciscoID)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.ErrHasDependents
	}
	return u.ciscos.Delete(ctx, ciscoID)
}

func (u *Usecase) CreateZap(ctx context.Context, z *domain.Zap) error {
	if z.Nom == "" || z.CiscoID == "" {
		return invalid("nom and cisco_id are required")
	}
	if z.ID == "" {
		z.ID = id.NewID32()
	}
	return dup(u.zaps.Create(ctx, z))
}

func (u *Usecase) ReadZaps(ctx context.Context) ([]domain.ZapRow, error) {
	return u.zaps.List(ctx)
}

func (u *Usecase) UpdateZap(ctx context.Context, z *domain.Zap) error {
	if z.ID == "" || z.Nom == "" || z.CiscoID == "" {
		return invalid("id, nom and cisco_id are required")
	}
	return u.zaps.Update(ctx, z)
}

func (u *Usecase) DeleteZap(ctx context.Context, zapID string) error {
	n, err := u.etablissements.CountByZap(ctx, zapID)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.ErrHasDependents
	}
	return u.zaps.Delete(ctx, zapID)
}

func (u *Usecase) CreateEtablissement(ctx context.Context, e *domain.Etablissement) error {
	if e.Nom == "" || e.Code == "" || e.ZapID == "" {
		return invalid("nom, code and zap_id are required")
	}
	if e.ID == "" {
		e.ID = id.NewID32()
	}
	return dup(u.etablissements.Create(ctx, e))
}

func (u *Usecase) ReadEtablissements(ctx context.Context) ([]domain.EtablissementRow, error) {
	return u.etablissements.List(ctx)
}

// UpdateEtablissement replaces the full row, denormalized ancestor ids
// included, without cross-checking them against the zap's own chain.
func (u *Usecase) UpdateEtablissement(ctx context.Context, e *domain.Etablissement) error {
	if e.ID == "" || e.Nom == "" || e.Code == "" || e.ZapID == "" {
		return invalid("id, nom, code and zap_id are required")
	}
	return u.etablissements.Update(ctx, e)
}

func (u *Usecase) DeleteEtablissement(ctx context.Context, etabID string) error {
	for _, dc := range u.etabDependents {
		n, err := dc.CountByEtablissement(ctx, etabID)
		if err != nil {
			return err
		}
		if n > 0 {
			return domain.ErrHasDependents
		}
	}
	return u.etablissements.Delete(ctx, etabID)
}

// HydrateEtablissement loads the stored chain of an etablissement and
// replays the cascade from it.
func (u *Usecase) HydrateEtablissement(ctx context.Context, etabID string) (*Hydration, error) {
	e, err := u.etablissements.GetByID(ctx, etabID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return u.Hydrate(ctx, Selection{
		DrenID:          e.DrenID,
		CiscoID:         e.CiscoID,
		ZapID:           e.ZapID,
		EtablissementID: e.ID,
	})
}
