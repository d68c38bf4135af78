// Package model defines the shared data structures assembled from stats
// API responses and consumed by analysis, reporting, and charting.
package model

// ---- Player identity ----

// Player identifies a single player in the league index.
type Player struct {
	ID       int
	Name     string
	Active   bool
	FromYear string
	ToYear   string
}

// PlayerProfile carries the biographical fields shown in report headers.
type PlayerProfile struct {
	PlayerID  int
	Name      string
	Team      string
	Position  string
	Height    string // e.g. "6-3"
	Weight    string // pounds, as reported by the API
	Country   string
	DraftYear string
}

// ---- Per-season records ----

// ClutchBase holds the base box-score line for one season. The same
// shape serves both the clutch split and the regular-season baseline;
// rate fields are per-36 when fetched with that mode.
type ClutchBase struct {
	GamesPlayed int
	Minutes     float64
	Points      float64
	FGPct       float64
	FG3Pct      float64
	FTPct       float64
	Assists     float64
	Turnovers   float64
	Steals      float64
	Blocks      float64
	PlusMinus   float64
}

// AssistToTurnover returns assists per turnover. With zero turnovers
// the raw assist figure is reported instead of dividing by zero.
func (b ClutchBase) AssistToTurnover() float64 {
	if b.Turnovers == 0 {
		return b.Assists
	}
	return b.Assists / b.Turnovers
}

// ClutchAdvanced holds the advanced-split line for one season.
type ClutchAdvanced struct {
	UsagePct        float64
	TrueShootingPct float64
	NetRating       float64
	OffRating       float64
	DefRating       float64
	AssistPct       *float64 // column missing from some older seasons
	PIE             float64
}

// ShotBin aggregates the shots taken from one distance band.
type ShotBin struct {
	Label        string
	Made         int
	Attempts     int
	AttemptShare float64 // fraction of all attempts that landed in this bin
}

// Pct returns the field-goal percentage for the bin, 0 when no shots
// were attempted from this distance.
func (b ShotBin) Pct() float64 {
	if b.Attempts == 0 {
		return 0
	}
	return float64(b.Made) / float64(b.Attempts)
}

// Shot is a single field-goal attempt from the shot chart feed.
type Shot struct {
	Distance float64 // feet from the basket
	Made     bool
}

// SeasonClutch bundles everything gathered for one season. Each section
// is optional: a failed or empty fetch leaves the pointer nil (or the
// slice empty) and the rest of the season intact.
type SeasonClutch struct {
	Season   string
	Base     *ClutchBase
	Advanced *ClutchAdvanced
	Shots    []ShotBin
	Regular  *ClutchBase // regular-season per-36 baseline
}

// ---- Aggregates across seasons ----

// ComparisonLine is one side of the regular-vs-clutch comparison,
// averaged over the contributing seasons.
type ComparisonLine struct {
	Points           float64
	FGPct            float64
	FG3Pct           float64
	FTPct            float64
	Assists          float64
	Turnovers        float64
	AssistToTurnover float64
}

// Comparison pairs the averaged regular and clutch lines. Seasons is
// the number of seasons that had both sides available.
type Comparison struct {
	Regular ComparisonLine
	Clutch  ComparisonLine
	Seasons int
}

// ShotProfileBin is one distance band averaged across seasons. Pct is
// nil when no contributing season attempted a shot from the band.
type ShotProfileBin struct {
	Label        string
	AttemptShare float64
	Pct          *float64
}

// ---- Net rating ----

// NetRatingSeason holds the three net-rating readings for one season.
// A nil field means that situation had no data (e.g. a missed playoff
// run) or the fetch failed.
type NetRatingSeason struct {
	Season   string
	Regular  *float64
	Clutch   *float64
	Playoffs *float64
}
