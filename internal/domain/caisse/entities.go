package caisse

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound  = errors.New("caisse entry not found")
	ErrDuplicate = errors.New("duplicate caisse entry")
	ErrInvalid   = errors.New("invalid input")
)

// Caisse is a cash allotment for one etablissement. Several entries per
// etablissement are allowed. The dren/cisco/zap ids duplicate the
// etablissement's chain and are stored exactly as submitted.
type Caisse struct {
	ID              string          `gorm:"column:id;primaryKey" json:"id"`
	DrenID          string          `gorm:"column:dren_id;not null" json:"dren_id" validate:"entid"`
	CiscoID         string          `gorm:"column:cisco_id;not null" json:"cisco_id" validate:"entid"`
	ZapID           string          `gorm:"column:zap_id;not null" json:"zap_id" validate:"entid"`
	EtablissementID string          `gorm:"column:etablissement_id;not null;index" json:"etablissement_id" validate:"entid"`
	MontantAriary   decimal.Decimal `gorm:"column:montant_ariary;type:decimal(18,2);not null" json:"montant_ariary"`
}

func (Caisse) TableName() string { return "caisse" }

type Row struct {
	Caisse
	DrenNom          string `gorm:"column:dren_nom" json:"dren_nom"`
	CiscoNom         string `gorm:"column:cisco_nom" json:"cisco_nom"`
	ZapNom           string `gorm:"column:zap_nom" json:"zap_nom"`
	EtablissementNom string `gorm:"column:etablissement_nom" json:"etablissement_nom"`
}
