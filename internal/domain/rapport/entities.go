package rapport

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound  = errors.New("rapport not found")
	ErrDuplicate = errors.New("duplicate rapport")
	ErrInvalid   = errors.New("invalid input")
)

// Rapport is a periodic activity/expenditure record for one etablissement.
// Total is computed by the caller (prix_unitaire × quantite) and stored as
// given; the backend does not recompute it. Date is the canonical
// YYYY-MM-DD string, which also keeps range queries lexicographic.
type Rapport struct {
	ID                string          `gorm:"column:id;primaryKey" json:"id"`
	DrenID            string          `gorm:"column:dren_id" json:"dren_id"`
	CiscoID           string          `gorm:"column:cisco_id" json:"cisco_id"`
	ZapID             string          `gorm:"column:zap_id" json:"zap_id"`
	EtablissementID   string          `gorm:"column:etablissement_id;not null;index" json:"etablissement_id" validate:"entid"`
	Date              string          `gorm:"column:date;type:date;not null" json:"date"`
	Situation         string          `gorm:"column:situation;not null" json:"situation"`
	Activites         string          `gorm:"column:activites;not null" json:"activites"`
	Fonction          string          `gorm:"column:fonction;not null" json:"fonction"`
	PrixUnitaire      decimal.Decimal `gorm:"column:prix_unitaire;type:decimal(18,2);not null" json:"prix_unitaire"`
	Quantite          int             `gorm:"column:quantite;not null" json:"quantite"`
	Total             decimal.Decimal `gorm:"column:total;type:decimal(18,2);not null" json:"total"`
	SourceFinancement string          `gorm:"column:source_financement;not null" json:"source_financement"`
	Executeur         string          `gorm:"column:executeur;not null" json:"executeur"`
	Superviseur       string          `gorm:"column:superviseur;not null" json:"superviseur"`
}

func (Rapport) TableName() string { return "rapport" }

type Row struct {
	Rapport
	DrenNom          string `gorm:"column:dren_nom" json:"dren_nom"`
	CiscoNom         string `gorm:"column:cisco_nom" json:"cisco_nom"`
	ZapNom           string `gorm:"column:zap_nom" json:"zap_nom"`
	EtablissementNom string `gorm:"column:etablissement_nom" json:"etablissement_nom"`
}
