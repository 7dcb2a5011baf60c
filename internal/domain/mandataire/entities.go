package mandataire

import "errors"

var (
	ErrNotFound = errors.New("mandataire not found")
	// ErrDuplicate covers the id as well as the unique natural keys (cin, email).
	ErrDuplicate = errors.New("duplicate mandataire")
	ErrInvalid   = errors.New("invalid input")
)

// Mandataire is a named contact attached to one etablissement. CIN is the
// national id card number, unique across all mandataires; email is unique
// when present.
type Mandataire struct {
	ID              string  `gorm:"column:id;primaryKey" json:"id"`
	EtablissementID string  `gorm:"column:etablissement_id;not null;index" json:"etablissement_id" validate:"entid"`
	Nom             string  `gorm:"column:nom;not null" json:"nom"`
	Prenom          string  `gorm:"column:prenom;not null" json:"prenom"`
	Fonction        string  `gorm:"column:fonction;not null" json:"fonction"`
	CIN             string  `gorm:"column:cin;not null;uniqueIndex:ux_mandataire_cin" json:"cin"`
	Contact         string  `gorm:"column:contact" json:"contact"`
	Adresse         string  `gorm:"column:adresse" json:"adresse"`
	Email           *string `gorm:"column:email;uniqueIndex:ux_mandataire_email" json:"email"`
	Observation     string  `gorm:"column:observation" json:"observation"`
}

func (Mandataire) TableName() string { return "mandataire" }

type Row struct {
	Mandataire
	EtablissementNom  string `gorm:"column:etablissement_nom" json:"etablissement_nom"`
	EtablissementCode string `gorm:"column:etablissement_code" json:"etablissement_code"`
	ZapNom            string `gorm:"column:zap_nom" json:"zap_nom"`
}
