// Package analysis reshapes raw API tables into season records and
// cross-season aggregates for the reports and charts.
package analysis

import (
	"github.com/pable/go-nba-metrics/internal/model"
	"github.com/pable/go-nba-metrics/internal/nbastats"
)

// BinLabels lists the five shot-distance bands, nearest first.
var BinLabels = [5]string{"0-3 ft", "3-10 ft", "10-16 ft", "16-23 ft", "23+ ft"}

// binIndex assigns a shot distance in feet to one of the five bands.
// Bands are closed on the right and the last one is open-ended, so
// every attempt lands somewhere.
func binIndex(distance float64) int {
	switch {
	case distance <= 3:
		return 0
	case distance <= 10:
		return 1
	case distance <= 16:
		return 2
	case distance <= 23:
		return 3
	default:
		return 4
	}
}

func labelIndex(label string) int {
	for i, l := range BinLabels {
		if l == label {
			return i
		}
	}
	return -1
}

// ---- Row extraction ----

// ClutchBaseFromRow maps one base dash-table row to a season record.
// The same columns serve the clutch split and the regular baseline.
func ClutchBaseFromRow(r nbastats.Row) *model.ClutchBase {
	return &model.ClutchBase{
		GamesPlayed: r.Int("GP"),
		Minutes:     r.Float("MIN"),
		Points:      r.Float("PTS"),
		FGPct:       r.Float("FG_PCT"),
		FG3Pct:      r.Float("FG3_PCT"),
		FTPct:       r.Float("FT_PCT"),
		Assists:     r.Float("AST"),
		Turnovers:   r.Float("TOV"),
		Steals:      r.Float("STL"),
		Blocks:      r.Float("BLK"),
		PlusMinus:   r.Float("PLUS_MINUS"),
	}
}

// ClutchAdvancedFromRow maps one advanced dash-table row. AST_PCT stays
// optional because older seasons omit the column entirely.
func ClutchAdvancedFromRow(r nbastats.Row) *model.ClutchAdvanced {
	return &model.ClutchAdvanced{
		UsagePct:        r.Float("USG_PCT"),
		TrueShootingPct: r.Float("TS_PCT"),
		NetRating:       r.Float("NET_RATING"),
		OffRating:       r.Float("OFF_RATING"),
		DefRating:       r.Float("DEF_RATING"),
		AssistPct:       r.MaybeFloat("AST_PCT"),
		PIE:             r.Float("PIE"),
	}
}

// ShotsFromTable pulls the attempt list out of a shot-chart table.
func ShotsFromTable(t *nbastats.Table) []model.Shot {
	shots := make([]model.Shot, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		r := t.Row(i)
		shots = append(shots, model.Shot{
			Distance: r.Float("SHOT_DISTANCE"),
			Made:     r.Float("SHOT_MADE_FLAG") == 1,
		})
	}
	return shots
}

// ---- Shot binning ----

// BucketShots groups attempts into the five distance bands. All five
// bins are always returned, nearest first. AttemptShare fractions sum
// to 1 whenever at least one shot was taken.
func BucketShots(shots []model.Shot) []model.ShotBin {
	bins := make([]model.ShotBin, len(BinLabels))
	for i, label := range BinLabels {
		bins[i].Label = label
	}
	for _, s := range shots {
		i := binIndex(s.Distance)
		bins[i].Attempts++
		if s.Made {
			bins[i].Made++
		}
	}
	if len(shots) > 0 {
		total := float64(len(shots))
		for i := range bins {
			bins[i].AttemptShare = float64(bins[i].Attempts) / total
		}
	}
	return bins
}

// ---- Cross-season aggregates ----

// Compare averages the regular and clutch base lines over the seasons
// that carry both sides, so a season missing either never skews the
// comparison.
func Compare(seasons []model.SeasonClutch) model.Comparison {
	var regular, clutch model.ComparisonLine
	n := 0
	for _, s := range seasons {
		if s.Base == nil || s.Regular == nil {
			continue
		}
		addLine(&regular, *s.Regular)
		addLine(&clutch, *s.Base)
		n++
	}
	if n == 0 {
		return model.Comparison{}
	}
	scaleLine(&regular, float64(n))
	scaleLine(&clutch, float64(n))
	return model.Comparison{Regular: regular, Clutch: clutch, Seasons: n}
}

func addLine(dst *model.ComparisonLine, b model.ClutchBase) {
	dst.Points += b.Points
	dst.FGPct += b.FGPct
	dst.FG3Pct += b.FG3Pct
	dst.FTPct += b.FTPct
	dst.Assists += b.Assists
	dst.Turnovers += b.Turnovers
	dst.AssistToTurnover += b.AssistToTurnover()
}

func scaleLine(l *model.ComparisonLine, n float64) {
	l.Points /= n
	l.FGPct /= n
	l.FG3Pct /= n
	l.FTPct /= n
	l.Assists /= n
	l.Turnovers /= n
	l.AssistToTurnover /= n
}

// ShotProfile averages the per-season shot distributions. Attempt
// shares average over seasons that recorded at least one attempt; the
// percentage for a band averages only over seasons that attempted a
// shot from it, and stays nil when none did.
func ShotProfile(seasons []model.SeasonClutch) []model.ShotProfileBin {
	type acc struct {
		shareSum float64
		pctSum   float64
		pctN     int
	}
	accs := make([]acc, len(BinLabels))
	withShots := 0

	for _, s := range seasons {
		attempts := 0
		for _, b := range s.Shots {
			attempts += b.Attempts
		}
		if attempts == 0 {
			continue
		}
		withShots++
		for _, b := range s.Shots {
			i := labelIndex(b.Label)
			if i < 0 {
				continue
			}
			accs[i].shareSum += b.AttemptShare
			if b.Attempts > 0 {
				accs[i].pctSum += b.Pct()
				accs[i].pctN++
			}
		}
	}

	out := make([]model.ShotProfileBin, len(BinLabels))
	for i, label := range BinLabels {
		out[i].Label = label
		if withShots > 0 {
			out[i].AttemptShare = accs[i].shareSum / float64(withShots)
		}
		if accs[i].pctN > 0 {
			pct := accs[i].pctSum / float64(accs[i].pctN)
			out[i].Pct = &pct
		}
	}
	return out
}

// NetRatingAverages computes the mean rating per situation over the
// seasons where that situation has data. A situation with no data at
// all yields nil.
func NetRatingAverages(rows []model.NetRatingSeason) (regular, clutch, playoffs *float64) {
	regular = meanOf(rows, func(r model.NetRatingSeason) *float64 { return r.Regular })
	clutch = meanOf(rows, func(r model.NetRatingSeason) *float64 { return r.Clutch })
	playoffs = meanOf(rows, func(r model.NetRatingSeason) *float64 { return r.Playoffs })
	return regular, clutch, playoffs
}

func meanOf(rows []model.NetRatingSeason, pick func(model.NetRatingSeason) *float64) *float64 {
	sum, n := 0.0, 0
	for _, r := range rows {
		if v := pick(r); v != nil {
			sum += *v
			n++
		}
	}
	if n == 0 {
		return nil
	}
	mean := sum / float64(n)
	return &mean
}
