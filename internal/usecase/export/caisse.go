package export

import (
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"feffi-backend/internal/domain/caisse"
)

const caisseSheet = "Liste Caisse"

var caisseHeaders = []string{"DREN", "CISCO", "ZAP", "Etablissement", "Montant (Ar)"}

var caisseWidths = []float64{20, 20, 20, 30, 18}

// Caisses builds the allotment sheet; a financial screen, so a bold TOTAL
// row is appended after the data.
func Caisses(rows []caisse.Row) (*excelize.File, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyDataset
	}

	f, err := newSheet(caisseSheet, caisseHeaders, caisseWidths)
	if err != nil {
		return nil, err
	}
	money, err := moneyStyle(f)
	if err != nil {
		f.Close()
		return nil, err
	}

	sum := decimal.Zero
	for i, e := range rows {
		values := []any{
			e.DrenNom,
			e.CiscoNom,
			e.ZapNom,
			e.EtablissementNom,
			e.MontantAriary.InexactFloat64(),
		}
		if err := setRow(f, caisseSheet, i+2, values); err != nil {
			f.Close()
			return nil, err
		}
		if err := styleCell(f, caisseSheet, 5, i+2, money); err != nil {
			f.Close()
			return nil, err
		}
		sum = sum.Add(e.MontantAriary)
	}

	totalStyle, err := totalRowStyle(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	totalRow := len(rows) + 2
	if err := setRow(f, caisseSheet, totalRow, []any{"TOTAL", "", "", "", sum.InexactFloat64()}); err != nil {
		f.Close()
		return nil, err
	}
	if err := styleCell(f, caisseSheet, 5, totalRow, totalStyle); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}
