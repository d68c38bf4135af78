package nbastats

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/pable/go-nba-metrics/internal/model"
)

// Query parameter values the endpoints understand.
const (
	SeasonTypeRegular  = "Regular Season"
	SeasonTypePlayoffs = "Playoffs"

	MeasureBase     = "Base"
	MeasureAdvanced = "Advanced"

	PerModePer36   = "Per36"
	PerModePerGame = "PerGame"

	// ClutchTimeLast5 restricts stats to the final five minutes of
	// close games.
	ClutchTimeLast5 = "Last 5 Minutes"

	LeagueNBA = "00"
)

// CommonAllPlayers fetches the league-wide player index, historical
// players included.
func (c *Client) CommonAllPlayers(ctx context.Context, season string) ([]model.Player, error) {
	params := url.Values{
		"LeagueID":            {LeagueNBA},
		"Season":              {season},
		"IsOnlyCurrentSeason": {"0"},
	}
	resp, err := c.get(ctx, "commonallplayers", params)
	if err != nil {
		return nil, err
	}
	t, err := resp.Table("CommonAllPlayers")
	if err != nil {
		return nil, err
	}

	players := make([]model.Player, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		r := t.Row(i)
		players = append(players, model.Player{
			ID:       r.Int("PERSON_ID"),
			Name:     r.Str("DISPLAY_FIRST_LAST"),
			Active:   r.Float("ROSTERSTATUS") == 1,
			FromYear: r.Str("FROM_YEAR"),
			ToYear:   r.Str("TO_YEAR"),
		})
	}
	return players, nil
}

// CommonPlayerInfo fetches the biographical record for one player.
func (c *Client) CommonPlayerInfo(ctx context.Context, playerID int) (*model.PlayerProfile, error) {
	params := url.Values{
		"LeagueID": {LeagueNBA},
		"PlayerID": {strconv.Itoa(playerID)},
	}
	resp, err := c.get(ctx, "commonplayerinfo", params)
	if err != nil {
		return nil, err
	}
	t, err := resp.Table("CommonPlayerInfo")
	if err != nil {
		return nil, err
	}
	if t.Len() == 0 {
		return nil, fmt.Errorf("no player info for ID %d", playerID)
	}

	r := t.Row(0)
	return &model.PlayerProfile{
		PlayerID:  r.Int("PERSON_ID"),
		Name:      r.Str("DISPLAY_FIRST_LAST"),
		Team:      r.Str("TEAM_NAME"),
		Position:  r.Str("POSITION"),
		Height:    r.Str("HEIGHT"),
		Weight:    r.Str("WEIGHT"),
		Country:   r.Str("COUNTRY"),
		DraftYear: r.Str("DRAFT_YEAR"),
	}, nil
}

// ClutchQuery selects one league-wide clutch slice.
type ClutchQuery struct {
	Season     string
	SeasonType string
	Measure    string
	PerMode    string
	ClutchTime string
	PointDiff  int
}

// LeagueDashPlayerClutch fetches per-player stats restricted to clutch
// situations. The returned table has one row per qualifying player.
func (c *Client) LeagueDashPlayerClutch(ctx context.Context, q ClutchQuery) (*Table, error) {
	params := dashParams(q.Season, q.SeasonType, q.Measure, q.PerMode)
	params.Set("AheadBehind", "Ahead or Behind")
	params.Set("ClutchTime", q.ClutchTime)
	params.Set("PointDiff", strconv.Itoa(q.PointDiff))

	resp, err := c.get(ctx, "leaguedashplayerclutch", params)
	if err != nil {
		return nil, err
	}
	return resp.Table("LeagueDashPlayerClutch")
}

// StatsQuery selects one league-wide (non-clutch) stats slice.
type StatsQuery struct {
	Season     string
	SeasonType string
	Measure    string
	PerMode    string
}

// LeagueDashPlayerStats fetches per-player season stats, one row per
// qualifying player.
func (c *Client) LeagueDashPlayerStats(ctx context.Context, q StatsQuery) (*Table, error) {
	params := dashParams(q.Season, q.SeasonType, q.Measure, q.PerMode)

	resp, err := c.get(ctx, "leaguedashplayerstats", params)
	if err != nil {
		return nil, err
	}
	return resp.Table("LeagueDashPlayerStats")
}

// ShotChartQuery selects the shot chart for one player season,
// optionally restricted to clutch situations.
type ShotChartQuery struct {
	PlayerID       int
	TeamID         int
	Season         string
	SeasonType     string
	ContextMeasure string // "FGA" for all attempts
	ClutchTime     string
	PointDiff      int
}

// ShotChartDetail fetches individual shot attempts, one row per shot.
func (c *Client) ShotChartDetail(ctx context.Context, q ShotChartQuery) (*Table, error) {
	pointDiff := ""
	if q.PointDiff > 0 {
		pointDiff = strconv.Itoa(q.PointDiff)
	}
	params := url.Values{
		"AheadBehind":    {""},
		"ClutchTime":     {q.ClutchTime},
		"ContextFilter":  {""},
		"ContextMeasure": {q.ContextMeasure},
		"DateFrom":       {""},
		"DateTo":         {""},
		"EndPeriod":      {"10"},
		"EndRange":       {"28800"},
		"GameID":         {""},
		"GameSegment":    {""},
		"LastNGames":     {"0"},
		"LeagueID":       {LeagueNBA},
		"Location":       {""},
		"Month":          {"0"},
		"OpponentTeamID": {"0"},
		"Outcome":        {""},
		"Period":         {"0"},
		"PlayerID":       {strconv.Itoa(q.PlayerID)},
		"PlayerPosition": {""},
		"PointDiff":      {pointDiff},
		"Position":       {""},
		"RangeType":      {"0"},
		"RookieYear":     {""},
		"Season":         {q.Season},
		"SeasonSegment":  {""},
		"SeasonType":     {q.SeasonType},
		"StartPeriod":    {"1"},
		"StartRange":     {"0"},
		"TeamID":         {strconv.Itoa(q.TeamID)},
		"VsConference":   {""},
		"VsDivision":     {""},
	}

	resp, err := c.get(ctx, "shotchartdetail", params)
	if err != nil {
		return nil, err
	}
	return resp.Table("Shot_Chart_Detail")
}

// dashParams builds the shared filter set for the league dash
// endpoints. The API validates the full list and rejects requests with
// any filter missing, so every one is sent even when empty.
func dashParams(season, seasonType, measure, perMode string) url.Values {
	return url.Values{
		"College":          {""},
		"Conference":       {""},
		"Country":          {""},
		"DateFrom":         {""},
		"DateTo":           {""},
		"Division":         {""},
		"DraftPick":        {""},
		"DraftYear":        {""},
		"GameScope":        {""},
		"GameSegment":      {""},
		"Height":           {""},
		"LastNGames":       {"0"},
		"LeagueID":         {LeagueNBA},
		"Location":         {""},
		"MeasureType":      {measure},
		"Month":            {"0"},
		"OpponentTeamID":   {"0"},
		"Outcome":          {""},
		"PORound":          {"0"},
		"PaceAdjust":       {"N"},
		"PerMode":          {perMode},
		"Period":           {"0"},
		"PlayerExperience": {""},
		"PlayerPosition":   {""},
		"PlusMinus":        {"N"},
		"Rank":             {"N"},
		"Season":           {season},
		"SeasonSegment":    {""},
		"SeasonType":       {seasonType},
		"ShotClockRange":   {""},
		"StarterBench":     {""},
		"TeamID":           {"0"},
		"VsConference":     {""},
		"VsDivision":       {""},
		"Weight":           {""},
	}
}

// SearchPlayers filters the index by case-insensitive name match.
// Exact matches win; otherwise every player whose name contains the
// query is returned.
func SearchPlayers(players []model.Player, query string) []model.Player {
	q := strings.ToLower(strings.TrimSpace(query))
	var exact, partial []model.Player
	for _, p := range players {
		name := strings.ToLower(p.Name)
		switch {
		case name == q:
			exact = append(exact, p)
		case strings.Contains(name, q):
			partial = append(partial, p)
		}
	}
	if len(exact) > 0 {
		return exact
	}
	return partial
}
