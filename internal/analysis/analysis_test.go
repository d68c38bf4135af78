package analysis

import (
	"math"
	"testing"

	"github.com/pable/go-nba-metrics/internal/model"
	"github.com/pable/go-nba-metrics/internal/nbastats"
)

func makeTable(t *testing.T, headers []string, rows [][]interface{}) *nbastats.Table {
	t.Helper()
	resp := &nbastats.Response{ResultSets: []nbastats.ResultSet{
		{Name: "Test", Headers: headers, RowSet: rows},
	}}
	tbl, err := resp.Table("Test")
	if err != nil {
		t.Fatalf("build table: %v", err)
	}
	return tbl
}

func floatEq(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// TestBucketShotsEveryShotAssigned walks the band boundaries and checks
// that no attempt is ever dropped, including far heaves past the last
// edge.
func TestBucketShotsEveryShotAssigned(t *testing.T) {
	distances := []float64{0, 1, 3, 4, 9, 10, 11, 16, 17, 22, 23, 24, 40, 80}
	shots := make([]model.Shot, 0, len(distances))
	for _, d := range distances {
		shots = append(shots, model.Shot{Distance: d})
	}

	bins := BucketShots(shots)
	if len(bins) != 5 {
		t.Fatalf("got %d bins, want 5", len(bins))
	}

	total := 0
	for _, b := range bins {
		total += b.Attempts
	}
	if total != len(shots) {
		t.Errorf("binned %d attempts, want %d", total, len(shots))
	}

	wantAttempts := map[string]int{
		"0-3 ft":   3, // 0, 1, 3
		"3-10 ft":  3, // 4, 9, 10
		"10-16 ft": 2, // 11, 16
		"16-23 ft": 3, // 17, 22, 23
		"23+ ft":   3, // 24, 40, 80
	}
	for _, b := range bins {
		if b.Attempts != wantAttempts[b.Label] {
			t.Errorf("%s: %d attempts, want %d", b.Label, b.Attempts, wantAttempts[b.Label])
		}
	}
}

// TestBucketShotsFrequenciesSumToOne checks the attempt-share
// distribution over a non-empty shot set.
func TestBucketShotsFrequenciesSumToOne(t *testing.T) {
	shots := []model.Shot{
		{Distance: 2, Made: true},
		{Distance: 2, Made: false},
		{Distance: 8, Made: true},
		{Distance: 14, Made: false},
		{Distance: 25, Made: true},
		{Distance: 26, Made: false},
		{Distance: 27, Made: true},
	}

	bins := BucketShots(shots)
	sum := 0.0
	for _, b := range bins {
		sum += b.AttemptShare
	}
	if !floatEq(sum, 1.0) {
		t.Errorf("attempt shares sum to %v, want 1", sum)
	}

	if !floatEq(bins[4].AttemptShare, 3.0/7.0) {
		t.Errorf("23+ ft share = %v, want 3/7", bins[4].AttemptShare)
	}
	if !floatEq(bins[4].Pct(), 2.0/3.0) {
		t.Errorf("23+ ft pct = %v, want 2/3", bins[4].Pct())
	}
}

// TestBucketShotsEmpty checks that an empty attempt set still yields
// the five labeled bins with zeroed stats.
func TestBucketShotsEmpty(t *testing.T) {
	bins := BucketShots(nil)
	if len(bins) != 5 {
		t.Fatalf("got %d bins, want 5", len(bins))
	}
	for i, b := range bins {
		if b.Label != BinLabels[i] {
			t.Errorf("bin %d label = %q, want %q", i, b.Label, BinLabels[i])
		}
		if b.Attempts != 0 || b.Made != 0 || b.AttemptShare != 0 {
			t.Errorf("bin %q not zeroed: %+v", b.Label, b)
		}
	}
}

// TestCompare checks that only seasons carrying both the clutch and the
// regular line contribute, and that the zero-turnover ratio fallback
// flows through the averages.
func TestCompare(t *testing.T) {
	seasons := []model.SeasonClutch{
		{
			Season:  "2021-22",
			Base:    &model.ClutchBase{Points: 30, Assists: 6, Turnovers: 0}, // ratio falls back to 6
			Regular: &model.ClutchBase{Points: 20, Assists: 4, Turnovers: 2},
		},
		{
			Season:  "2022-23",
			Base:    &model.ClutchBase{Points: 20, Assists: 2, Turnovers: 4},
			Regular: &model.ClutchBase{Points: 10, Assists: 2, Turnovers: 1},
		},
		{
			// No regular baseline fetched; must not contribute.
			Season: "2023-24",
			Base:   &model.ClutchBase{Points: 99, Assists: 9, Turnovers: 9},
		},
	}

	cmp := Compare(seasons)
	if cmp.Seasons != 2 {
		t.Fatalf("Seasons = %d, want 2", cmp.Seasons)
	}
	if !floatEq(cmp.Regular.Points, 15) {
		t.Errorf("Regular.Points = %v, want 15", cmp.Regular.Points)
	}
	if !floatEq(cmp.Clutch.Points, 25) {
		t.Errorf("Clutch.Points = %v, want 25", cmp.Clutch.Points)
	}
	if !floatEq(cmp.Clutch.AssistToTurnover, 3.25) {
		t.Errorf("Clutch.AssistToTurnover = %v, want (6+0.5)/2", cmp.Clutch.AssistToTurnover)
	}
	if !floatEq(cmp.Regular.AssistToTurnover, 2) {
		t.Errorf("Regular.AssistToTurnover = %v, want 2", cmp.Regular.AssistToTurnover)
	}
}

// TestCompareEmpty checks the no-contributing-seasons case.
func TestCompareEmpty(t *testing.T) {
	cmp := Compare([]model.SeasonClutch{{Season: "2023-24"}})
	if cmp.Seasons != 0 {
		t.Errorf("Seasons = %d, want 0", cmp.Seasons)
	}
	if cmp.Clutch.Points != 0 || cmp.Regular.Points != 0 {
		t.Errorf("empty comparison not zeroed: %+v", cmp)
	}
}

// TestShotProfile checks the two averaging rules: attempt shares divide
// by seasons with any shot data, percentages divide only by seasons
// that attempted from the band.
func TestShotProfile(t *testing.T) {
	season1 := BucketShots([]model.Shot{
		{Distance: 1, Made: true},
		{Distance: 1, Made: false},
		{Distance: 25, Made: true},
		{Distance: 25, Made: false},
	})
	season2 := BucketShots([]model.Shot{
		{Distance: 1, Made: true},
		{Distance: 1, Made: true},
		{Distance: 1, Made: true},
		{Distance: 1, Made: true},
	})

	seasons := []model.SeasonClutch{
		{Season: "2021-22", Shots: season1},
		{Season: "2022-23", Shots: season2},
		{Season: "2023-24"}, // no shot data; must not dilute anything
	}

	profile := ShotProfile(seasons)
	if len(profile) != 5 {
		t.Fatalf("got %d profile bins, want 5", len(profile))
	}

	rim := profile[0] // 0-3 ft
	if !floatEq(rim.AttemptShare, 0.75) {
		t.Errorf("rim share = %v, want (0.5+1)/2", rim.AttemptShare)
	}
	if rim.Pct == nil || !floatEq(*rim.Pct, 0.75) {
		t.Errorf("rim pct = %v, want (0.5+1)/2", rim.Pct)
	}

	three := profile[4] // 23+ ft, only season1 attempted
	if !floatEq(three.AttemptShare, 0.25) {
		t.Errorf("23+ share = %v, want (0.5+0)/2", three.AttemptShare)
	}
	if three.Pct == nil || !floatEq(*three.Pct, 0.5) {
		t.Errorf("23+ pct = %v, want 0.5 from the single contributing season", three.Pct)
	}

	mid := profile[2] // 10-16 ft, never attempted
	if mid.AttemptShare != 0 {
		t.Errorf("10-16 share = %v, want 0", mid.AttemptShare)
	}
	if mid.Pct != nil {
		t.Errorf("10-16 pct = %v, want nil", *mid.Pct)
	}
}

// TestNetRatingAverages checks per-situation means over available
// seasons only.
func TestNetRatingAverages(t *testing.T) {
	f := func(v float64) *float64 { return &v }

	rows := []model.NetRatingSeason{
		{Season: "2021-22", Regular: f(5), Playoffs: f(10)},
		{Season: "2022-23", Regular: f(-3), Clutch: f(2)},
		{Season: "2023-24"},
	}

	regular, clutch, playoffs := NetRatingAverages(rows)
	if regular == nil || !floatEq(*regular, 1) {
		t.Errorf("regular avg = %v, want 1", regular)
	}
	if clutch == nil || !floatEq(*clutch, 2) {
		t.Errorf("clutch avg = %v, want 2", clutch)
	}
	if playoffs == nil || !floatEq(*playoffs, 10) {
		t.Errorf("playoffs avg = %v, want 10", playoffs)
	}

	_, emptyClutch, _ := NetRatingAverages([]model.NetRatingSeason{{Season: "2023-24"}})
	if emptyClutch != nil {
		t.Errorf("clutch avg over empty data = %v, want nil", *emptyClutch)
	}
}

// TestClutchBaseFromRow checks the column mapping for the base line.
func TestClutchBaseFromRow(t *testing.T) {
	tbl := makeTable(t,
		[]string{"GP", "MIN", "PTS", "FG_PCT", "FG3_PCT", "FT_PCT", "AST", "TOV", "STL", "BLK", "PLUS_MINUS"},
		[][]interface{}{{58, 4.8, 8.2, 0.471, 0.388, 0.901, 2.1, 0.9, 0.5, 0.2, 1.4}},
	)

	b := ClutchBaseFromRow(tbl.Row(0))
	if b.GamesPlayed != 58 {
		t.Errorf("GamesPlayed = %d, want 58", b.GamesPlayed)
	}
	if !floatEq(b.Points, 8.2) {
		t.Errorf("Points = %v, want 8.2", b.Points)
	}
	if !floatEq(b.FTPct, 0.901) {
		t.Errorf("FTPct = %v, want 0.901", b.FTPct)
	}
	if !floatEq(b.PlusMinus, 1.4) {
		t.Errorf("PlusMinus = %v, want 1.4", b.PlusMinus)
	}
}

// TestClutchAdvancedFromRow checks the optional assist-percentage
// column in all three shapes: present, null, and missing.
func TestClutchAdvancedFromRow(t *testing.T) {
	headers := []string{"USG_PCT", "TS_PCT", "NET_RATING", "OFF_RATING", "DEF_RATING", "AST_PCT", "PIE"}

	withVal := makeTable(t, headers, [][]interface{}{{0.31, 0.62, 4.2, 115.0, 110.8, 0.28, 0.12}})
	a := ClutchAdvancedFromRow(withVal.Row(0))
	if a.AssistPct == nil || !floatEq(*a.AssistPct, 0.28) {
		t.Errorf("AssistPct = %v, want 0.28", a.AssistPct)
	}
	if !floatEq(a.NetRating, 4.2) {
		t.Errorf("NetRating = %v, want 4.2", a.NetRating)
	}

	withNull := makeTable(t, headers, [][]interface{}{{0.31, 0.62, 4.2, 115.0, 110.8, nil, 0.12}})
	if a := ClutchAdvancedFromRow(withNull.Row(0)); a.AssistPct != nil {
		t.Errorf("AssistPct from null cell = %v, want nil", *a.AssistPct)
	}

	withoutCol := makeTable(t,
		[]string{"USG_PCT", "TS_PCT", "NET_RATING", "OFF_RATING", "DEF_RATING", "PIE"},
		[][]interface{}{{0.31, 0.62, 4.2, 115.0, 110.8, 0.12}},
	)
	if a := ClutchAdvancedFromRow(withoutCol.Row(0)); a.AssistPct != nil {
		t.Errorf("AssistPct from missing column = %v, want nil", *a.AssistPct)
	}
}

// TestShotsFromTable checks the made-flag conversion.
func TestShotsFromTable(t *testing.T) {
	tbl := makeTable(t,
		[]string{"GRID_TYPE", "SHOT_DISTANCE", "SHOT_MADE_FLAG"},
		[][]interface{}{
			{"Shot Chart Detail", 2, 1},
			{"Shot Chart Detail", 26, 0},
		},
	)

	shots := ShotsFromTable(tbl)
	if len(shots) != 2 {
		t.Fatalf("got %d shots, want 2", len(shots))
	}
	if !shots[0].Made || shots[0].Distance != 2 {
		t.Errorf("shots[0] = %+v", shots[0])
	}
	if shots[1].Made || shots[1].Distance != 26 {
		t.Errorf("shots[1] = %+v", shots[1])
	}
}
