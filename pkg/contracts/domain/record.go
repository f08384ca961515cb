package domain

// Apparatus identifies one of the four women's artistic gymnastics events.
type Apparatus string

const (
	Vault       Apparatus = "Vault"
	UnevenBars  Apparatus = "UnevenBars"
	BalanceBeam Apparatus = "BalanceBeam"
	Floor       Apparatus = "Floor"
)

// Apparatuses lists the four apparatus in canonical column order.
var Apparatuses = [4]Apparatus{Vault, UnevenBars, BalanceBeam, Floor}

// ApparatusScore holds the five per-apparatus fields of one performance.
// A group is either fully resolved or entirely unknown, never partial.
type ApparatusScore struct {
	Score Value `json:"score"`
	D     Value `json:"d"`
	E     Value `json:"e"`
	Pen   Value `json:"pen"`
	Rk    Value `json:"rk"`
}

// UnknownApparatusScore returns a group with every field set to the
// unknown marker.
func UnknownApparatusScore() ApparatusScore {
	return ApparatusScore{
		Score: Unknown(),
		D:     Unknown(),
		E:     Unknown(),
		Pen:   Unknown(),
		Rk:    Unknown(),
	}
}

// IsResolved reports whether the group carries a score (the team report
// never publishes per-apparatus ranks, so Rk is not consulted).
func (a ApparatusScore) IsResolved() bool {
	return !a.Score.IsUnknown()
}

// Record is one output row of the all-around pipelines: athlete identity
// plus per-apparatus score groups and the total.
type Record struct {
	Rank      int               `json:"rank" validate:"min=1"`
	Bib       int               `json:"bib" validate:"min=1"`
	Name      string            `json:"name" validate:"required,athlete_name"`
	NOC       string            `json:"noc" validate:"required,noc"`
	Apparatus [4]ApparatusScore `json:"apparatus"`
	Total     Value             `json:"total"`
}

// ResolvedApparatusCount returns how many of the four apparatus groups
// carry scores.
func (r *Record) ResolvedApparatusCount() int {
	n := 0
	for _, a := range r.Apparatus {
		if a.IsResolved() {
			n++
		}
	}
	return n
}

// RecordColumns is the canonical column order shared by the all-around
// pipelines: identity, five fields per apparatus, then the total.
func RecordColumns() []string {
	cols := []string{"Rank", "Bib", "Name", "NOC"}
	for _, app := range Apparatuses {
		for _, f := range []string{"Score", "D", "E", "Pen", "Rk"} {
			cols = append(cols, string(app)+"_"+f)
		}
	}
	return append(cols, "Total")
}

// Row flattens the record into Values following RecordColumns order.
func (r *Record) Row() []Value {
	row := []Value{
		Number(float64(r.Rank)),
		Number(float64(r.Bib)),
		Text(r.Name),
		Text(r.NOC),
	}
	for _, a := range r.Apparatus {
		row = append(row, a.Score, a.D, a.E, a.Pen, a.Rk)
	}
	return append(row, r.Total)
}
