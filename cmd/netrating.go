package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pable/go-nba-metrics/internal/analysis"
	"github.com/pable/go-nba-metrics/internal/chart"
	"github.com/pable/go-nba-metrics/internal/model"
	"github.com/pable/go-nba-metrics/internal/nbastats"
	"github.com/pable/go-nba-metrics/internal/report"
)

var (
	nrSeasons   string
	nrPlayerID  int
	nrWindow    string
	nrPointDiff int
	nrDelay     time.Duration
	nrChartPath string
)

var netratingCmd = &cobra.Command{
	Use:   "netrating <player name>",
	Short: "Compare regular, clutch, and playoff net rating by season",
	Long: `Fetch a player's net rating in three situations per season: regular
season overall, regular season clutch minutes, and playoffs. Prints
the table with per-situation averages and renders a grouped bar chart.

A missing split (no playoff run, no clutch minutes) shows as a dash
and is left out of that column's average.

Examples:
  nbametrics netrating "jimmy butler"
  nbametrics netrating "jamal murray" --seasons 2019-20,2022-23,2023-24`,
	Args: cobra.MinimumNArgs(1),
	RunE: runNetRating,
}

func init() {
	netratingCmd.Flags().StringVar(&nrSeasons, "seasons", "", "comma-separated seasons, e.g. 2022-23,2023-24 (default: last five)")
	netratingCmd.Flags().IntVar(&nrPlayerID, "player-id", 0, "player ID, skips the name lookup")
	netratingCmd.Flags().StringVar(&nrWindow, "clutch-time", nbastats.ClutchTimeLast5, "clutch window on the game clock")
	netratingCmd.Flags().IntVar(&nrPointDiff, "point-diff", 5, "max score margin that counts as clutch")
	netratingCmd.Flags().DurationVar(&nrDelay, "delay", time.Second, "spacing between API requests")
	netratingCmd.Flags().StringVar(&nrChartPath, "chart", "netrating.svg", "SVG output path, empty to skip the chart")
}

func runNetRating(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	client := newStatsClient(nrDelay)

	seasons, err := parseSeasons(nrSeasons)
	if err != nil {
		return err
	}

	player, err := resolvePlayer(ctx, client, strings.Join(args, " "), nrPlayerID)
	if err != nil {
		return err
	}

	rows := collectNetRatings(ctx, client, player, seasons, nrWindow, nrPointDiff)

	any := false
	for _, r := range rows {
		if r.Regular != nil || r.Clutch != nil || r.Playoffs != nil {
			any = true
			break
		}
	}
	if !any {
		return fmt.Errorf("no net rating data for %s in any requested season", player.Name)
	}

	regAvg, clutchAvg, playoffAvg := analysis.NetRatingAverages(rows)

	fmt.Fprintf(os.Stdout, "\n=== %s Net Rating ===\n\n", player.Name)
	report.PrintNetRatingTable(os.Stdout, rows, regAvg, clutchAvg, playoffAvg)

	if nrChartPath != "" {
		var buf bytes.Buffer
		chart.NetRatingChart(&buf, player.Name, rows)
		if err := os.WriteFile(nrChartPath, buf.Bytes(), 0644); err != nil {
			return fmt.Errorf("write chart: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Wrote %s\n", nrChartPath)
	}
	return nil
}

// collectNetRatings fetches the three splits for every season. Fetch
// failures and absent splits leave a nil in that slot.
func collectNetRatings(ctx context.Context, client *nbastats.Client, player model.Player, seasons []string, clutchTime string, pointDiff int) []model.NetRatingSeason {
	rows := make([]model.NetRatingSeason, 0, len(seasons))
	for i, season := range seasons {
		fmt.Fprintf(os.Stderr, "[%d/%d] %s %s\n", i+1, len(seasons), player.Name, season)

		row := model.NetRatingSeason{Season: season}

		tbl, err := client.LeagueDashPlayerStats(ctx, nbastats.StatsQuery{
			Season:     season,
			SeasonType: nbastats.SeasonTypeRegular,
			Measure:    nbastats.MeasureAdvanced,
			PerMode:    nbastats.PerModePerGame,
		})
		row.Regular = netRatingFrom(tbl, err, player.ID, season, "regular")

		ctbl, err := client.LeagueDashPlayerClutch(ctx, nbastats.ClutchQuery{
			Season:     season,
			SeasonType: nbastats.SeasonTypeRegular,
			Measure:    nbastats.MeasureAdvanced,
			PerMode:    nbastats.PerModePerGame,
			ClutchTime: clutchTime,
			PointDiff:  pointDiff,
		})
		row.Clutch = netRatingFrom(ctbl, err, player.ID, season, "clutch")

		ptbl, err := client.LeagueDashPlayerStats(ctx, nbastats.StatsQuery{
			Season:     season,
			SeasonType: nbastats.SeasonTypePlayoffs,
			Measure:    nbastats.MeasureAdvanced,
			PerMode:    nbastats.PerModePerGame,
		})
		row.Playoffs = netRatingFrom(ptbl, err, player.ID, season, "playoffs")

		rows = append(rows, row)
	}
	return rows
}

// netRatingFrom pulls one player's NET_RATING out of a dash table,
// logging and returning nil when the fetch failed or the player has no
// row in that split.
func netRatingFrom(tbl *nbastats.Table, err error, playerID int, season, situation string) *float64 {
	if err != nil {
		fmt.Fprintf(os.Stderr, "  [error] %s %s: %v\n", situation, season, err)
		return nil
	}
	row, ok := tbl.FindFloat("PLAYER_ID", float64(playerID))
	if !ok {
		fmt.Fprintf(os.Stderr, "  [skip] no %s appearances in %s\n", situation, season)
		return nil
	}
	return row.MaybeFloat("NET_RATING")
}
