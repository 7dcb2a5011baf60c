package hierarchy

// Level names one tier of the dren → cisco → zap → etablissement chain.
type Level string

const (
	LevelDren          Level = "dren"
	LevelCisco         Level = "cisco"
	LevelZap           Level = "zap"
	LevelEtablissement Level = "etablissement"
)

// Selection is the in-flight cascade state, threaded explicitly through
// calls instead of living in per-screen globals. Zero value = nothing
// selected.
type Selection struct {
	DrenID          string `json:"dren_id"`
	CiscoID         string `json:"cisco_id"`
	ZapID           string `json:"zap_id"`
	EtablissementID string `json:"etablissement_id"`
}

// WithDren selects a dren and invalidates every level below it. An empty id
// means "no selection" and clears the whole chain.
func (s Selection) WithDren(id string) Selection {
	return Selection{DrenID: id}
}

func (s Selection) WithCisco(id string) Selection {
	return Selection{DrenID: s.DrenID, CiscoID: id}
}

func (s Selection) WithZap(id string) Selection {
	return Selection{DrenID: s.DrenID, CiscoID: s.CiscoID, ZapID: id}
}

func (s Selection) WithEtablissement(id string) Selection {
	s.EtablissementID = id
	return s
}

// ChildChanged applies a selection change at the given level, resetting all
// descendant levels. Unknown levels leave the selection untouched.
func (s Selection) ChildChanged(level Level, id string) Selection {
	switch level {
	case LevelDren:
		return s.WithDren(id)
	case LevelCisco:
		return s.WithCisco(id)
	case LevelZap:
		return s.WithZap(id)
	case LevelEtablissement:
		return s.WithEtablissement(id)
	}
	return s
}
