package dataprocessing

import (
	"regexp"
	"strconv"
	"strings"

	"gymcli/pkg/contracts/domain"
)

// Pattern literals. These encode the three report layouts; changing one
// changes what the pipelines accept, so each has dedicated unit tests.
const (
	// identityPattern matches an individual all-around identity line:
	// "<rank> <bib> <name, no digits> <NOC> D E".
	identityPattern = `^\s*(?P<rank>\d+)\s+(?P<bib>\d+)\s+(?P<name>(?:[A-Z][^\d]{0,40}\s?)+?)\s+(?P<noc>[A-Z]{3})\s+D\s+E\s*$`

	// teamHeaderPattern matches a team header line: team rank, NOC, team
	// name, four parenthesized per-apparatus scores, then the team total.
	// The apparatus scores here are display values; the assembler
	// recomputes the total from athlete-level data instead.
	teamHeaderPattern = `^\s*(?P<trank>\d+)\s+(?P<noc>[A-Z]{3})\s*-\s*.*?` +
		`(?P<v>\d{1,3}\.\d{3})\s*\(\d+\)\s+` +
		`(?P<ub>\d{1,3}\.\d{3})\s*\(\d+\)\s+` +
		`(?P<bb>\d{1,3}\.\d{3})\s*\(\d+\)\s+` +
		`(?P<fx>\d{1,3}\.\d{3})\s*\(\d+\)\s+` +
		`(?P<ttotal>\d{2,3}\.\d{3})\s*$`

	// athleteHeaderPattern matches a team-report athlete line:
	// "<bib> <name> D E <trailing tokens>". The trail keeps same-line
	// numeric tokens that open the athlete's difficulty/score pool.
	athleteHeaderPattern = `^\s*(?P<bib>\d{3,})\s+(?P<name>[A-Z][A-Za-z'\-]+(?:\s[A-Z][A-Za-z'\-]+)*)\s+D\s+E\s*(?P<trail>.*)$`

	// dScoreRkPattern matches one difficulty/score/rank group,
	// e.g. "6.400 15.766 (1)".
	dScoreRkPattern = `(?P<d>\d{1,2}\.\d{3})\s+(?P<score>\d{1,2}\.\d{3})\s+\((?P<rk>\d+)\)`

	// threeDecimalPattern finds any 3-decimal float; the last one on a
	// difficulty/score line is the athlete's total.
	threeDecimalPattern = `\d{1,2}\.\d{3}`

	// floatTokenPattern accepts a full token as a float, optionally
	// negative (penalties).
	floatTokenPattern = `^-?\d+(?:\.\d+)?$`

	// gluedFloatsPattern finds a 3-decimal float glued directly onto the
	// next number, an artifact of stream extraction merging columns.
	gluedFloatsPattern = `(\d\.\d{3})(\d)`
)

var (
	identityRe      = regexp.MustCompile(identityPattern)
	teamHeaderRe    = regexp.MustCompile(teamHeaderPattern)
	athleteHeaderRe = regexp.MustCompile(athleteHeaderPattern)
	dScoreRkRe      = regexp.MustCompile(dScoreRkPattern)
	threeDecimalRe  = regexp.MustCompile(threeDecimalPattern)
	floatTokenRe    = regexp.MustCompile(floatTokenPattern)
	gluedFloatsRe   = regexp.MustCompile(gluedFloatsPattern)
)

// Role tags the structural role a matcher recognized in a line.
type Role int

const (
	RoleUnmatched Role = iota
	RoleTeamHeader
	RoleAthleteIdentity
	RoleAthleteHeader
)

// IdentityMatch holds the fields of an individual identity line.
type IdentityMatch struct {
	Rank int
	Bib  int
	Name string
	NOC  string
}

// TeamHeaderMatch holds the context fields of a team header line.
type TeamHeaderMatch struct {
	Rank int
	NOC  string
}

// AthleteHeaderMatch holds the fields of a team-report athlete line.
type AthleteHeaderMatch struct {
	Bib  int
	Name string
	// Trail is the text after the literal "D E", holding the first
	// difficulty/score tokens of this athlete.
	Trail string
}

// Triplet is one difficulty/score/rank group from a D-score line.
type Triplet struct {
	D     float64
	Score float64
	Rk    int
}

// EPen is one execution score with its (non-positive) penalty.
type EPen struct {
	E   float64
	Pen float64
}

// MatchIdentity tests a line against the individual identity pattern.
func MatchIdentity(line string) (IdentityMatch, bool) {
	m := identityRe.FindStringSubmatch(line)
	if m == nil {
		return IdentityMatch{}, false
	}
	rank, _ := strconv.Atoi(m[identityRe.SubexpIndex("rank")])
	bib, _ := strconv.Atoi(m[identityRe.SubexpIndex("bib")])
	return IdentityMatch{
		Rank: rank,
		Bib:  bib,
		Name: strings.TrimSpace(m[identityRe.SubexpIndex("name")]),
		NOC:  m[identityRe.SubexpIndex("noc")],
	}, true
}

// MatchTeamHeader tests a line against the team header pattern.
func MatchTeamHeader(line string) (TeamHeaderMatch, bool) {
	m := teamHeaderRe.FindStringSubmatch(line)
	if m == nil {
		return TeamHeaderMatch{}, false
	}
	rank, _ := strconv.Atoi(m[teamHeaderRe.SubexpIndex("trank")])
	return TeamHeaderMatch{
		Rank: rank,
		NOC:  m[teamHeaderRe.SubexpIndex("noc")],
	}, true
}

// MatchAthleteHeader tests a line against the team-report athlete pattern.
func MatchAthleteHeader(line string) (AthleteHeaderMatch, bool) {
	m := athleteHeaderRe.FindStringSubmatch(line)
	if m == nil {
		return AthleteHeaderMatch{}, false
	}
	bib, _ := strconv.Atoi(m[athleteHeaderRe.SubexpIndex("bib")])
	return AthleteHeaderMatch{
		Bib:   bib,
		Name:  strings.TrimSpace(m[athleteHeaderRe.SubexpIndex("name")]),
		Trail: m[athleteHeaderRe.SubexpIndex("trail")],
	}, true
}

// ClassifyLine reports the structural role of a line, trying headers
// before identity lines (a team header also starts with "<digits> <NOC>"
// and must win).
func ClassifyLine(line string) Role {
	if _, ok := MatchTeamHeader(line); ok {
		return RoleTeamHeader
	}
	if _, ok := MatchIdentity(line); ok {
		return RoleAthleteIdentity
	}
	if _, ok := MatchAthleteHeader(line); ok {
		return RoleAthleteHeader
	}
	return RoleUnmatched
}

// SplitGluedFloats inserts a space wherever a 3-decimal float runs
// directly into the next number. Applied repeatedly so chains of glued
// values all separate.
func SplitGluedFloats(line string) string {
	for {
		split := gluedFloatsRe.ReplaceAllString(line, "$1 $2")
		if split == line {
			return split
		}
		line = split
	}
}

// ParseDScoreLine extracts all difficulty/score/rank triplets from a line,
// plus the line's total: the last 3-decimal float found anywhere on it,
// independent of the triplet matches. The total is Unknown when the line
// carries no 3-decimal float.
func ParseDScoreLine(line string) ([]Triplet, domain.Value) {
	line = SplitGluedFloats(NormalizeText(line))

	var triplets []Triplet
	for _, m := range dScoreRkRe.FindAllStringSubmatch(line, -1) {
		d, _ := strconv.ParseFloat(m[dScoreRkRe.SubexpIndex("d")], 64)
		score, _ := strconv.ParseFloat(m[dScoreRkRe.SubexpIndex("score")], 64)
		rk, _ := strconv.Atoi(m[dScoreRkRe.SubexpIndex("rk")])
		triplets = append(triplets, Triplet{D: d, Score: score, Rk: rk})
	}

	total := domain.Unknown()
	if floats := threeDecimalRe.FindAllString(line, -1); len(floats) > 0 {
		if f, err := strconv.ParseFloat(floats[len(floats)-1], 64); err == nil {
			total = domain.Number(f)
		}
	}
	return triplets, total
}

// FloatTokens returns the tokens of s that parse as (optionally negative)
// floats, in order.
func FloatTokens(s string) []string {
	var out []string
	for _, tok := range strings.Fields(s) {
		if floatTokenRe.MatchString(tok) {
			out = append(out, tok)
		}
	}
	return out
}

// ParseEPenTokens reads execution/penalty groups from a flat token list,
// left to right: a float opens a group, an immediately following negative
// float is its penalty, otherwise the penalty is zero. Parsing stops at
// the first non-float token or after maxGroups groups; a short result is
// allowed and left to the caller's acceptance policy.
func ParseEPenTokens(tokens []string, maxGroups int) []EPen {
	var out []EPen
	i := 0
	for len(out) < maxGroups && i < len(tokens) {
		if !floatTokenRe.MatchString(tokens[i]) {
			break
		}
		e, _ := strconv.ParseFloat(tokens[i], 64)
		i++
		pen := 0.0
		if i < len(tokens) && strings.HasPrefix(tokens[i], "-") && floatTokenRe.MatchString(tokens[i]) {
			pen, _ = strconv.ParseFloat(tokens[i], 64)
			i++
		}
		out = append(out, EPen{E: e, Pen: pen})
	}
	return out
}

// ParseDSPairs pairs a flat float token list into consecutive
// (difficulty, score) pairs: D1 S1 D2 S2 ..., up to four pairs. An odd
// trailing token is ignored.
func ParseDSPairs(tokens []string) [][2]float64 {
	var pairs [][2]float64
	for i := 0; i+1 < len(tokens) && len(pairs) < 4; i += 2 {
		d, errD := strconv.ParseFloat(tokens[i], 64)
		s, errS := strconv.ParseFloat(tokens[i+1], 64)
		if errD != nil || errS != nil {
			break
		}
		pairs = append(pairs, [2]float64{d, s})
	}
	return pairs
}
