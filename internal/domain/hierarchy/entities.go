package hierarchy

import "errors"

var (
	ErrNotFound      = errors.New("row not found")
	ErrDuplicate     = errors.New("duplicate id")
	ErrHasDependents = errors.New("row still has dependents")
	ErrInvalid       = errors.New("invalid input")
)

// Dren: Direction Régionale de l'Education Nationale (region level).
type Dren struct {
	ID  string `gorm:"column:id;primaryKey" json:"id"`
	Nom string `gorm:"column:nom;not null" json:"nom"`
}

func (Dren) TableName() string { return "dren" }

// Cisco: Circonscription Scolaire (district level).
type Cisco struct {
	ID     string `gorm:"column:id;primaryKey" json:"id"`
	DrenID string `gorm:"column:dren_id;not null;index" json:"dren_id" validate:"entid"`
	Nom    string `gorm:"column:nom;not null" json:"nom"`
}

func (Cisco) TableName() string { return "cisco" }

// Zap: Zone Administrative et Pédagogique (zone level).
type Zap struct {
	ID      string `gorm:"column:id;primaryKey" json:"id"`
	CiscoID string `gorm:"column:cisco_id;not null;index" json:"cisco_id" validate:"entid"`
	Nom     string `gorm:"column:nom;not null" json:"nom"`
}

func (Zap) TableName() string { return "zap" }

// Etablissement carries its full ancestor chain. dren_id and cisco_id are
// denormalized copies of the zap's own chain; they are stored as given and
// never reconciled against it (display names come from read-time joins).
type Etablissement struct {
	ID      string `gorm:"column:id;primaryKey" json:"id"`
	DrenID  string `gorm:"column:dren_id" json:"dren_id"`
	CiscoID string `gorm:"column:cisco_id" json:"cisco_id"`
	ZapID   string `gorm:"column:zap_id;not null;index" json:"zap_id" validate:"entid"`
	Code    string `gorm:"column:code;not null" json:"code"`
	Nom     string `gorm:"column:nom;not null" json:"nom"`
}

func (Etablissement) TableName() string { return "etablissement" }

// Read-side rows: entity plus the ancestor display names joined in, so
// screens never need a second round trip for a breadcrumb.

type CiscoRow struct {
	Cisco
	DrenNom string `gorm:"column:dren_nom" json:"dren_nom"`
}

type ZapRow struct {
	Zap
	CiscoNom string `gorm:"column:cisco_nom" json:"cisco_nom"`
}

type EtablissementRow struct {
	Etablissement
	DrenNom  string `gorm:"column:dren_nom" json:"dren_nom"`
	CiscoNom string `gorm:"column:cisco_nom" json:"cisco_nom"`
	ZapNom   string `gorm:"column:zap_nom" json:"zap_nom"`
}
