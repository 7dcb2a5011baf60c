package export

import (
	"sort"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"feffi-backend/internal/domain/mandataire"
)

const mandataireSheet = "Liste Mandataires"

var mandataireHeaders = []string{
	"N°", "ZAP", "Etablissement", "Code", "NOM & Prénoms",
	"Fonction", "CIN", "Contact Téléphonique", "Adresse mail",
}

var mandataireWidths = []float64{4, 15, 30, 12, 30, 15, 15, 20, 25}

// Mandataires builds the contact list, ordered by etablissement name.
func Mandataires(rows []mandataire.Row) (*excelize.File, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyDataset
	}

	sorted := make([]mandataire.Row, len(rows))
	copy(sorted, rows)
	c := collate.New(language.French, collate.IgnoreCase)
	sort.SliceStable(sorted, func(i, j int) bool {
		return c.CompareString(sorted[i].EtablissementNom, sorted[j].EtablissementNom) < 0
	})

	f, err := newSheet(mandataireSheet, mandataireHeaders, mandataireWidths)
	if err != nil {
		return nil, err
	}
	for i, m := range sorted {
		email := ""
		if m.Email != nil {
			email = *m.Email
		}
		values := []any{
			i + 1,
			m.ZapNom,
			m.EtablissementNom,
			m.EtablissementCode,
			m.Nom + " " + m.Prenom,
			m.Fonction,
			m.CIN,
			m.Contact,
			email,
		}
		if err := setRow(f, mandataireSheet, i+2, values); err != nil {
			f.Close()
			return nil, err
		}
	}
	return f, nil
}
