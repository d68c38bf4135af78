package chart

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pable/go-nba-metrics/internal/model"
)

func sampleSeasons() []model.SeasonClutch {
	ast := 0.25
	return []model.SeasonClutch{
		{
			Season: "2022-23",
			Base: &model.ClutchBase{
				GamesPlayed: 60, Minutes: 4.5, Points: 9.1,
				FGPct: 0.48, FG3Pct: 0.39, FTPct: 0.88,
				Assists: 2.2, Turnovers: 0.8,
			},
			Advanced: &model.ClutchAdvanced{
				UsagePct: 0.29, TrueShootingPct: 0.61,
				NetRating: 3.4, OffRating: 114, DefRating: 110.6,
				AssistPct: &ast, PIE: 0.13,
			},
			Shots: []model.ShotBin{
				{Label: "0-3 ft", Made: 10, Attempts: 16, AttemptShare: 0.4},
				{Label: "23+ ft", Made: 9, Attempts: 24, AttemptShare: 0.6},
			},
			Regular: &model.ClutchBase{
				Points: 24.0, FGPct: 0.47, FG3Pct: 0.37, FTPct: 0.85,
				Assists: 8.9, Turnovers: 2.8,
			},
		},
		{
			Season: "2023-24",
			Base: &model.ClutchBase{
				GamesPlayed: 55, Minutes: 4.1, Points: 7.4,
				FGPct: 0.44, FG3Pct: 0.35, FTPct: 0.91,
				Assists: 1.9, Turnovers: 0,
			},
			Advanced: &model.ClutchAdvanced{
				UsagePct: 0.27, TrueShootingPct: 0.58,
				NetRating: -1.2, OffRating: 109, DefRating: 110.2, PIE: 0.1,
			},
		},
	}
}

// TestClutchOverviewSmoke renders a populated dataset and checks the
// document structure plus panel landmarks.
func TestClutchOverviewSmoke(t *testing.T) {
	var buf bytes.Buffer
	ClutchOverview(&buf, "Chris Paul", sampleSeasons())

	out := buf.String()
	wants := []string{
		"<svg",
		"</svg>",
		"Chris Paul Clutch Analysis (2022-23 to 2023-24)",
		"Clutch Shooting by Season",
		"Regular Season vs Clutch (Averages)",
		"Clutch Shot Distance Profile",
		"Clutch Advanced Trend",
		"2022-23",
		"2023-24",
		"NET RTG",
		"0-3 ft",
	}
	for _, want := range wants {
		if !strings.Contains(out, want) {
			t.Errorf("SVG missing %q", want)
		}
	}
}

// TestClutchOverviewDeterministic renders the same dataset twice and
// expects byte-identical output.
func TestClutchOverviewDeterministic(t *testing.T) {
	var a, b bytes.Buffer
	ClutchOverview(&a, "Chris Paul", sampleSeasons())
	ClutchOverview(&b, "Chris Paul", sampleSeasons())
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Error("two renders of the same dataset differ")
	}
}

// TestClutchOverviewEmpty checks the placeholder notes when nothing was
// fetched.
func TestClutchOverviewEmpty(t *testing.T) {
	var buf bytes.Buffer
	ClutchOverview(&buf, "Chris Paul", nil)

	out := buf.String()
	wants := []string{
		"No clutch data",
		"No seasons with both splits",
		"No shot data",
		"No advanced data",
	}
	for _, want := range wants {
		if !strings.Contains(out, want) {
			t.Errorf("SVG missing placeholder %q", want)
		}
	}
}

// TestNetRatingChart checks the grouped bars, the legend, and the zero
// reference line for a mixed dataset with gaps.
func TestNetRatingChart(t *testing.T) {
	f := func(v float64) *float64 { return &v }
	rows := []model.NetRatingSeason{
		{Season: "2022-23", Regular: f(2.5), Clutch: f(-4.0)},
		{Season: "2023-24", Regular: f(5.1), Clutch: f(1.3), Playoffs: f(8.2)},
	}

	var buf bytes.Buffer
	NetRatingChart(&buf, "Chris Paul", rows)

	out := buf.String()
	wants := []string{
		"<svg",
		"</svg>",
		"Chris Paul Net Rating by Situation",
		"2022-23",
		"2023-24",
		"Playoffs",
		"stroke-opacity:0.3", // zero reference line
	}
	for _, want := range wants {
		if !strings.Contains(out, want) {
			t.Errorf("SVG missing %q", want)
		}
	}
}
