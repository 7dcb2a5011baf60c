package export

import (
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"feffi-backend/internal/domain/rapport"
)

const rapportSheet = "Liste Rapports"

var rapportHeaders = []string{
	"N°", "Date", "DREN", "CISCO", "ZAP", "Établissement",
	"Situation", "Activités", "Fonction", "Prix Unitaire",
	"Quantité", "Total", "Source de Financement", "Exécuteur", "Superviseur",
}

var rapportWidths = []float64{4, 12, 20, 20, 20, 30, 25, 40, 15, 12, 10, 12, 25, 25, 25}

// Rapports builds the activity report sheet with money formatting on
// Prix Unitaire and Total, plus a bold TOTAL row.
func Rapports(rows []rapport.Row) (*excelize.File, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyDataset
	}

	f, err := newSheet(rapportSheet, rapportHeaders, rapportWidths)
	if err != nil {
		return nil, err
	}
	money, err := moneyStyle(f)
	if err != nil {
		f.Close()
		return nil, err
	}

	sum := decimal.Zero
	for i, r := range rows {
		values := []any{
			i + 1,
			r.Date,
			r.DrenNom,
			r.CiscoNom,
			r.ZapNom,
			r.EtablissementNom,
			r.Situation,
			r.Activites,
			r.Fonction,
			r.PrixUnitaire.InexactFloat64(),
			r.Quantite,
			r.Total.InexactFloat64(),
			r.SourceFinancement,
			r.Executeur,
			r.Superviseur,
		}
		rowIdx := i + 2
		if err := setRow(f, rapportSheet, rowIdx, values); err != nil {
			f.Close()
			return nil, err
		}
		for _, col := range []int{10, 12} {
			if err := styleCell(f, rapportSheet, col, rowIdx, money); err != nil {
				f.Close()
				return nil, err
			}
		}
		sum = sum.Add(r.Total)
	}

	totalStyle, err := totalRowStyle(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	totalRow := len(rows) + 2
	if err := setRow(f, rapportSheet, totalRow, []any{"TOTAL"}); err != nil {
		f.Close()
		return nil, err
	}
	totalCell, err := excelize.CoordinatesToCellName(12, totalRow)
	if err != nil {
		f.Close()
		return nil, err
	}
	if err := f.SetCellValue(rapportSheet, totalCell, sum.InexactFloat64()); err != nil {
		f.Close()
		return nil, err
	}
	if err := styleCell(f, rapportSheet, 12, totalRow, totalStyle); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}
