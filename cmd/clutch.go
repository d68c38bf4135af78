package cmd

import (
	"bytes"
	"context"
	"fmt"
	"io"
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
	// clutchSeasons is a comma-separated season list, e.g. "2022-23,2023-24".
	clutchSeasons string
	// clutchPlayerID skips the name lookup when set.
	clutchPlayerID int
	// clutchWindow is the game-clock window that counts as clutch.
	clutchWindow string
	// clutchPointDiff is the score margin that counts as close.
	clutchPointDiff int
	// clutchDelay overrides the configured request spacing.
	clutchDelay time.Duration
	// clutchChartPath is the SVG output path; empty disables the chart.
	clutchChartPath string
)

var clutchCmd = &cobra.Command{
	Use:   "clutch <player name>",
	Short: "Report a player's clutch performance by season",
	Long: `Fetch per-season clutch splits for one player and print the report:
clutch box score (per 36), advanced line, shot-distance profile, and
the averaged regular-vs-clutch comparison. Also renders a four-panel
SVG chart unless --chart is set to the empty string.

Seasons default to the last five. Requests are spaced out to stay
under the stats API rate limit, so a five-season run takes a while.

Examples:
  nbametrics clutch "chris paul"
  nbametrics clutch "stephen curry" --seasons 2021-22,2023-24
  nbametrics clutch lebron --player-id 2544 --chart lebron.svg
  nbametrics clutch "luka doncic" --clutch-time "Last 2 Minutes" --point-diff 3`,
	Args: cobra.MinimumNArgs(1),
	RunE: runClutch,
}

func init() {
	clutchCmd.Flags().StringVar(&clutchSeasons, "seasons", "", "comma-separated seasons, e.g. 2022-23,2023-24 (default: last five)")
	clutchCmd.Flags().IntVar(&clutchPlayerID, "player-id", 0, "player ID, skips the name lookup")
	clutchCmd.Flags().StringVar(&clutchWindow, "clutch-time", nbastats.ClutchTimeLast5, "clutch window on the game clock")
	clutchCmd.Flags().IntVar(&clutchPointDiff, "point-diff", 5, "max score margin that counts as clutch")
	clutchCmd.Flags().DurationVar(&clutchDelay, "delay", 0, "spacing between API requests (default: NBA_REQUEST_DELAY)")
	clutchCmd.Flags().StringVar(&clutchChartPath, "chart", "clutch.svg", "SVG output path, empty to skip the chart")
}

func runClutch(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	client := newStatsClient(clutchDelay)

	seasons, err := parseSeasons(clutchSeasons)
	if err != nil {
		return err
	}

	player, err := resolvePlayer(ctx, client, strings.Join(args, " "), clutchPlayerID)
	if err != nil {
		return err
	}

	ds, err := collectClutch(ctx, client, player, seasons, clutchWindow, clutchPointDiff)
	if err != nil {
		return err
	}

	printClutchReport(os.Stdout, ds)

	if clutchChartPath != "" {
		var buf bytes.Buffer
		chart.ClutchOverview(&buf, ds.Player.Name, ds.Seasons)
		if err := os.WriteFile(clutchChartPath, buf.Bytes(), 0644); err != nil {
			return fmt.Errorf("write chart: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Wrote %s\n", clutchChartPath)
	}
	return nil
}

// clutchDataset is everything one run gathers for a player. The export
// and ask commands reuse it.
type clutchDataset struct {
	Player     model.Player
	Profile    *model.PlayerProfile
	Seasons    []model.SeasonClutch
	ClutchTime string
	PointDiff  int
}

// parseSeasons validates the --seasons flag, defaulting to the last
// five seasons.
func parseSeasons(flag string) ([]string, error) {
	if strings.TrimSpace(flag) == "" {
		return nbastats.LastSeasons(5, time.Now()), nil
	}
	parts := strings.Split(flag, ",")
	seasons := make([]string, 0, len(parts))
	for _, p := range parts {
		s := strings.TrimSpace(p)
		if s == "" {
			continue
		}
		if !nbastats.ValidSeason(s) {
			return nil, fmt.Errorf("bad season %q, want YYYY-YY like 2023-24", s)
		}
		seasons = append(seasons, s)
	}
	if len(seasons) == 0 {
		return nil, fmt.Errorf("no seasons given")
	}
	return seasons, nil
}

// resolvePlayer turns a name (or an explicit ID) into a player record.
// An ambiguous name fails with the candidate list on stderr so the user
// can rerun with --player-id.
func resolvePlayer(ctx context.Context, client *nbastats.Client, name string, id int) (model.Player, error) {
	if id != 0 {
		info, err := client.CommonPlayerInfo(ctx, id)
		if err != nil {
			return model.Player{}, fmt.Errorf("resolve player %d: %w", id, err)
		}
		return model.Player{ID: info.PlayerID, Name: info.Name}, nil
	}

	index, err := client.CommonAllPlayers(ctx, nbastats.CurrentSeason(time.Now()))
	if err != nil {
		return model.Player{}, fmt.Errorf("fetch player index: %w", err)
	}

	matches := nbastats.SearchPlayers(index, name)
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return model.Player{}, fmt.Errorf("no player matching %q", name)
	default:
		fmt.Fprintf(os.Stderr, "%q matches %d players:\n", name, len(matches))
		for _, p := range matches {
			fmt.Fprintf(os.Stderr, "  %-10d %s (%s-%s)\n", p.ID, p.Name, p.FromYear, p.ToYear)
		}
		return model.Player{}, fmt.Errorf("ambiguous player name %q, rerun with --player-id", name)
	}
}

// collectClutch walks the requested seasons and gathers the dataset.
// A season without clutch appearances is skipped entirely; later fetch
// failures within a season keep whatever it already has.
func collectClutch(ctx context.Context, client *nbastats.Client, player model.Player, seasons []string, clutchTime string, pointDiff int) (*clutchDataset, error) {
	ds := &clutchDataset{Player: player, ClutchTime: clutchTime, PointDiff: pointDiff}

	profile, err := client.CommonPlayerInfo(ctx, player.ID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[warn] player profile: %v\n", err)
	} else {
		ds.Profile = profile
	}

	for i, season := range seasons {
		fmt.Fprintf(os.Stderr, "[%d/%d] %s %s\n", i+1, len(seasons), player.Name, season)

		sc := model.SeasonClutch{Season: season}

		baseTbl, err := client.LeagueDashPlayerClutch(ctx, nbastats.ClutchQuery{
			Season:     season,
			SeasonType: nbastats.SeasonTypeRegular,
			Measure:    nbastats.MeasureBase,
			PerMode:    nbastats.PerModePer36,
			ClutchTime: clutchTime,
			PointDiff:  pointDiff,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "  [error] clutch base: %v\n", err)
			continue
		}
		row, ok := baseTbl.FindFloat("PLAYER_ID", float64(player.ID))
		if !ok {
			fmt.Fprintf(os.Stderr, "  [skip] no clutch appearances in %s\n", season)
			continue
		}
		sc.Base = analysis.ClutchBaseFromRow(row)

		advTbl, err := client.LeagueDashPlayerClutch(ctx, nbastats.ClutchQuery{
			Season:     season,
			SeasonType: nbastats.SeasonTypeRegular,
			Measure:    nbastats.MeasureAdvanced,
			PerMode:    nbastats.PerModePer36,
			ClutchTime: clutchTime,
			PointDiff:  pointDiff,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "  [error] clutch advanced: %v\n", err)
		} else if row, ok := advTbl.FindFloat("PLAYER_ID", float64(player.ID)); ok {
			sc.Advanced = analysis.ClutchAdvancedFromRow(row)
		}

		shotTbl, err := client.ShotChartDetail(ctx, nbastats.ShotChartQuery{
			PlayerID:       player.ID,
			Season:         season,
			SeasonType:     nbastats.SeasonTypeRegular,
			ContextMeasure: "FGA",
			ClutchTime:     clutchTime,
			PointDiff:      pointDiff,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "  [error] shot chart: %v\n", err)
		} else if shots := analysis.ShotsFromTable(shotTbl); len(shots) > 0 {
			sc.Shots = analysis.BucketShots(shots)
		}

		regTbl, err := client.LeagueDashPlayerStats(ctx, nbastats.StatsQuery{
			Season:     season,
			SeasonType: nbastats.SeasonTypeRegular,
			Measure:    nbastats.MeasureBase,
			PerMode:    nbastats.PerModePer36,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "  [error] regular baseline: %v\n", err)
		} else if row, ok := regTbl.FindFloat("PLAYER_ID", float64(player.ID)); ok {
			sc.Regular = analysis.ClutchBaseFromRow(row)
		}

		ds.Seasons = append(ds.Seasons, sc)
	}

	if len(ds.Seasons) == 0 {
		return nil, fmt.Errorf("no clutch data for %s in any requested season", player.Name)
	}

	fmt.Fprintf(os.Stderr, "Done: %d of %d seasons with clutch data.\n", len(ds.Seasons), len(seasons))
	return ds, nil
}

// printClutchReport writes the full text report for one dataset.
func printClutchReport(w io.Writer, ds *clutchDataset) {
	if ds.Profile != nil {
		report.PrintProfile(w, *ds.Profile)
	} else {
		fmt.Fprintf(w, "\n=== %s ===\n", ds.Player.Name)
	}

	fmt.Fprintf(w, "\n--- Clutch Box Score (%s, within %d pts, per 36) ---\n\n", ds.ClutchTime, ds.PointDiff)
	report.PrintSeasonTable(w, ds.Seasons)

	fmt.Fprintf(w, "\n--- Clutch Advanced ---\n\n")
	report.PrintAdvancedTable(w, ds.Seasons)

	fmt.Fprintf(w, "\n--- Shot Distance Profile (avg across seasons) ---\n\n")
	report.PrintShotProfileTable(w, analysis.ShotProfile(ds.Seasons))

	fmt.Fprintf(w, "\n--- Regular Season vs Clutch (avg per 36) ---\n\n")
	report.PrintComparisonTable(w, analysis.Compare(ds.Seasons))
}
