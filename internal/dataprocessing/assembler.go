package dataprocessing

import (
	"context"
	"log/slog"
	"math"
	"strings"

	"gymcli/pkg/contracts/domain"
)

// IndividualAssembler stitches individual all-around records by fixed
// offsets: each identity line must have the difficulty/score/rank line
// immediately above it and the execution/penalty line immediately below.
// The policy is all-or-nothing: a candidate missing either neighbor, or
// with fewer than four groups on either side, is discarded whole. No
// partial individual records are ever emitted.
type IndividualAssembler struct {
	logger *slog.Logger
}

// NewIndividualAssembler creates an individual all-around assembler.
func NewIndividualAssembler(logger *slog.Logger) *IndividualAssembler {
	if logger == nil {
		logger = slog.Default()
	}
	return &IndividualAssembler{logger: logger}
}

// Assemble walks the normalized line sequence and emits one record per
// complete identity block.
func (a *IndividualAssembler) Assemble(ctx context.Context, lines []string) []domain.Record {
	var records []domain.Record

	for i, line := range lines {
		if ClassifyLine(line) != RoleAthleteIdentity {
			continue
		}
		id, _ := MatchIdentity(line)
		if i-1 < 0 || i+1 >= len(lines) {
			continue
		}

		triplets, total := ParseDScoreLine(lines[i-1])
		epen := ParseEPenTokens(strings.Fields(NormalizeText(lines[i+1])), 4)

		if len(triplets) < 4 || len(epen) < 4 {
			a.logger.DebugContext(ctx, "discarding incomplete identity block",
				slog.Int("line", i),
				slog.Int("triplets", len(triplets)),
				slog.Int("epen_groups", len(epen)))
			continue
		}

		rec := domain.Record{
			Rank:  id.Rank,
			Bib:   id.Bib,
			Name:  id.Name,
			NOC:   id.NOC,
			Total: total,
		}
		for j := range rec.Apparatus {
			rec.Apparatus[j] = domain.ApparatusScore{
				Score: domain.Number(triplets[j].Score),
				D:     domain.Number(triplets[j].D),
				E:     domain.Number(epen[j].E),
				Pen:   domain.Number(epen[j].Pen),
				Rk:    domain.Number(float64(triplets[j].Rk)),
			}
		}
		records = append(records, rec)
	}

	a.logger.InfoContext(ctx, "individual assembly complete",
		slog.Int("lines", len(lines)),
		slog.Int("records", len(records)))
	return records
}

// teamContext is the running context of the team scan: the team header
// most recently seen. It is replaced on each new header and never cleared.
type teamContext struct {
	rank int
	noc  string
}

// TeamAssembler stitches team all-around records in a single forward scan.
// Athlete lines are only considered once a team header has set the
// context. For each athlete, difficulty/score tokens start on the athlete
// line itself; execution/penalty tokens are consumed from following lines
// until the next team or athlete header, which is left for the next
// iteration. There is deliberately no upper bound on that forward scan:
// the source format always terminates an athlete block with another
// header, and guessing a tighter bound would silently change acceptance.
type TeamAssembler struct {
	logger *slog.Logger
}

// NewTeamAssembler creates a team all-around assembler.
func NewTeamAssembler(logger *slog.Logger) *TeamAssembler {
	if logger == nil {
		logger = slog.Default()
	}
	return &TeamAssembler{logger: logger}
}

// Assemble scans the normalized line sequence and emits one record per
// athlete line seen under a team context. Records with fewer than four
// resolved apparatus are kept (partial acceptance) and carry the unknown
// marker in the unresolved slots.
func (a *TeamAssembler) Assemble(ctx context.Context, lines []string) []domain.Record {
	var records []domain.Record
	var tc *teamContext

	i := 0
	for i < len(lines) {
		line := lines[i]

		role := ClassifyLine(line)
		if role == RoleTeamHeader {
			th, _ := MatchTeamHeader(line)
			tc = &teamContext{rank: th.Rank, noc: th.NOC}
			i++
			continue
		}
		if role != RoleAthleteHeader || tc == nil {
			i++
			continue
		}
		ah, _ := MatchAthleteHeader(line)

		dsTokens := FloatTokens(ah.Trail)

		// Consume following lines' numeric tokens until the next header;
		// that header line is not consumed here.
		var eTokens []string
		j := i + 1
		for j < len(lines) {
			if r := ClassifyLine(lines[j]); r == RoleTeamHeader || r == RoleAthleteHeader {
				break
			}
			eTokens = append(eTokens, FloatTokens(lines[j])...)
			j++
		}

		dsPairs := ParseDSPairs(dsTokens)
		epen := ParseEPenTokens(eTokens, 4)

		k := len(dsPairs)
		if len(epen) < k {
			k = len(epen)
		}
		if k > 4 {
			k = 4
		}

		rec := domain.Record{
			Rank: tc.rank,
			Bib:  ah.Bib,
			Name: ah.Name,
			NOC:  tc.noc,
		}
		total := 0.0
		for idx := range rec.Apparatus {
			if idx < k {
				rec.Apparatus[idx] = domain.ApparatusScore{
					Score: domain.Number(dsPairs[idx][1]),
					D:     domain.Number(dsPairs[idx][0]),
					E:     domain.Number(epen[idx].E),
					Pen:   domain.Number(epen[idx].Pen),
					// The team report does not publish per-athlete
					// apparatus ranks.
					Rk: domain.Unknown(),
				}
				total += dsPairs[idx][1]
			} else {
				rec.Apparatus[idx] = domain.UnknownApparatusScore()
			}
		}
		if k > 0 {
			rec.Total = domain.Number(math.Round(total*1000) / 1000)
		} else {
			rec.Total = domain.Unknown()
		}

		if k < 4 {
			a.logger.DebugContext(ctx, "partial team record",
				slog.Int("bib", ah.Bib),
				slog.String("noc", tc.noc),
				slog.Int("resolved_apparatus", k))
		}
		records = append(records, rec)

		i = j
	}

	a.logger.InfoContext(ctx, "team assembly complete",
		slog.Int("lines", len(lines)),
		slog.Int("records", len(records)))
	return records
}
