package http

import (
	"bytes"
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
)

func rapportBody(drenID, ciscoID, zapID, etabID, date string) map[string]any {
	return map[string]any{
		"dren_id": drenID, "cisco_id": ciscoID, "zap_id": zapID,
		"etablissement_id":   etabID,
		"date":               date,
		"situation":          "En cours",
		"activites":          "Achat de fournitures",
		"fonction":           "Président",
		"prix_unitaire":      2500,
		"quantite":           4,
		"total":              10000,
		"source_financement": "FEFFI",
		"executeur":          "RAKOTO Jean",
		"superviseur":        "RABE Paul",
	}
}

func seedRapports(t *testing.T, e *echo.Echo, dates ...string) string {
	t.Helper()
	drenID, ciscoID, zapID, etabID := seedChain(t, e)
	for _, d := range dates {
		createEntity(t, e, "/rapports", rapportBody(drenID, ciscoID, zapID, etabID, d))
	}
	return etabID
}

func TestRapportCreateAndRead(t *testing.T) {
	e := newTestServer(t)
	seedRapports(t, e, "2026-01-15")

	env := decodeEnvelope(t, doJSON(t, e, http.MethodGet, "/rapports", nil))
	rows := env.Data.([]any)
	if len(rows) != 1 {
		t.Fatalf("unexpected rows: %+v", rows)
	}
	row := rows[0].(map[string]any)
	if row["date"] != "2026-01-15" || row["etablissement_nom"] != "EPP Ambohijatovo" {
		t.Fatalf("unexpected row: %v", row)
	}
}

func TestRapportCreate_BadDate(t *testing.T) {
	e := newTestServer(t)
	drenID, ciscoID, zapID, etabID := seedChain(t, e)

	rec := doJSON(t, e, http.MethodPost, "/rapports",
		rapportBody(drenID, ciscoID, zapID, etabID, "15/01/2026"))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if env.Success || !strings.Contains(env.Error, "YYYY-MM-DD") {
		t.Fatalf("expected failure envelope naming the format, got %+v", env)
	}
}

func TestRapportRead_DateRange(t *testing.T) {
	e := newTestServer(t)
	etabID := seedRapports(t, e, "2026-01-10", "2026-02-20", "2026-05-01")

	env := decodeEnvelope(t, doJSON(t, e, http.MethodGet,
		"/rapports?etablissement_id="+etabID+"&from=2026-01-01&to=2026-03-31", nil))
	rows := env.Data.([]any)
	if len(rows) != 2 {
		t.Fatalf("range query: %+v", rows)
	}

	// malformed bounds are rejected
	rec := doJSON(t, e, http.MethodGet,
		"/rapports?etablissement_id="+etabID+"&from=bad&to=2026-03-31", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestRapportExport_WithTotalRow(t *testing.T) {
	e := newTestServer(t)
	seedRapports(t, e, "2026-01-15", "2026-02-20")

	rec := doJSON(t, e, http.MethodGet, "/rapports/export", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer f.Close()

	label, err := f.GetCellValue("Liste Rapports", "A4")
	if err != nil {
		t.Fatal(err)
	}
	if label != "TOTAL" {
		t.Fatalf("A4 = %q", label)
	}
	total, _ := f.GetCellValue("Liste Rapports", "L4", excelize.Options{RawCellValue: true})
	if total != "20000" {
		t.Fatalf("L4 = %q", total)
	}
}

func TestRapportExport_EmptyDataset(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(t, e, http.MethodGet, "/rapports/export", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
