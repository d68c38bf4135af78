package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pable/go-nba-metrics/internal/model"
	"github.com/pable/go-nba-metrics/internal/nbastats"
)

var (
	exportSeasons   string
	exportPlayerID  int
	exportWindow    string
	exportPointDiff int
	exportDelay     time.Duration
	exportOut       string
)

var exportCmd = &cobra.Command{
	Use:   "export <player name>",
	Short: "Export a player's clutch dataset as JSON",
	Long: `Gathers the same per-season dataset the clutch command reports and
writes it as JSON, to stdout or to a file with --out. Seasons without
clutch appearances are left out.

Example:
  nbametrics export "devin booker" --out booker.json
  nbametrics export "devin booker" --seasons 2023-24 | jq .seasons`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportSeasons, "seasons", "", "comma-separated seasons, e.g. 2022-23,2023-24 (default: last five)")
	exportCmd.Flags().IntVar(&exportPlayerID, "player-id", 0, "player ID, skips the name lookup")
	exportCmd.Flags().StringVar(&exportWindow, "clutch-time", nbastats.ClutchTimeLast5, "clutch window on the game clock")
	exportCmd.Flags().IntVar(&exportPointDiff, "point-diff", 5, "max score margin that counts as clutch")
	exportCmd.Flags().DurationVar(&exportDelay, "delay", 0, "spacing between API requests (default: NBA_REQUEST_DELAY)")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output file path (default: stdout)")
}

func runExport(_ *cobra.Command, args []string) error {
	ctx := context.Background()
	client := newStatsClient(exportDelay)

	seasons, err := parseSeasons(exportSeasons)
	if err != nil {
		return err
	}

	player, err := resolvePlayer(ctx, client, strings.Join(args, " "), exportPlayerID)
	if err != nil {
		return err
	}

	ds, err := collectClutch(ctx, client, player, seasons, exportWindow, exportPointDiff)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(buildExportDoc(ds), "", "  ")
	if err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}

	if exportOut == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(exportOut, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write %s: %w", exportOut, err)
	}
	fmt.Fprintf(os.Stderr, "Wrote %s\n", exportOut)
	return nil
}

// ---- export schema ----

// exportDoc is the top-level JSON shape for one player's clutch
// dataset. The ask command feeds the same document to the model.
type exportDoc struct {
	GeneratedAt string         `json:"generated_at"`
	Player      exportPlayer   `json:"player"`
	ClutchTime  string         `json:"clutch_time"`
	PointDiff   int            `json:"point_diff"`
	Seasons     []exportSeason `json:"seasons"`
}

type exportPlayer struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Team      string `json:"team,omitempty"`
	Position  string `json:"position,omitempty"`
	Height    string `json:"height,omitempty"`
	Weight    string `json:"weight,omitempty"`
	Country   string `json:"country,omitempty"`
	DraftYear string `json:"draft_year,omitempty"`
}

type exportSeason struct {
	Season         string          `json:"season"`
	Clutch         *exportBase     `json:"clutch,omitempty"`
	ClutchAdvanced *exportAdvanced `json:"clutch_advanced,omitempty"`
	ShotDistance   []exportShotBin `json:"shot_distance,omitempty"`
	Regular        *exportBase     `json:"regular,omitempty"`
}

// exportBase carries the per-36 box score plus the derived AST/TOV.
type exportBase struct {
	GamesPlayed int     `json:"gp"`
	Minutes     float64 `json:"min"`
	Points      float64 `json:"pts"`
	FGPct       float64 `json:"fg_pct"`
	FG3Pct      float64 `json:"fg3_pct"`
	FTPct       float64 `json:"ft_pct"`
	Assists     float64 `json:"ast"`
	Turnovers   float64 `json:"tov"`
	Steals      float64 `json:"stl"`
	Blocks      float64 `json:"blk"`
	PlusMinus   float64 `json:"plus_minus"`
	AstToTov    float64 `json:"ast_to_tov"`
}

type exportAdvanced struct {
	UsagePct        float64  `json:"usg_pct"`
	TrueShootingPct float64  `json:"ts_pct"`
	NetRating       float64  `json:"net_rating"`
	OffRating       float64  `json:"off_rating"`
	DefRating       float64  `json:"def_rating"`
	AssistPct       *float64 `json:"ast_pct,omitempty"`
	PIE             float64  `json:"pie"`
}

type exportShotBin struct {
	Distance string  `json:"distance"`
	Made     int     `json:"fgm"`
	Attempts int     `json:"fga"`
	FGPct    float64 `json:"fg_pct"`
	PctFGA   float64 `json:"pct_fga"`
}

// buildExportDoc flattens a dataset into the export shape.
func buildExportDoc(ds *clutchDataset) exportDoc {
	doc := exportDoc{
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Player:      exportPlayer{ID: ds.Player.ID, Name: ds.Player.Name},
		ClutchTime:  ds.ClutchTime,
		PointDiff:   ds.PointDiff,
		Seasons:     make([]exportSeason, 0, len(ds.Seasons)),
	}
	if p := ds.Profile; p != nil {
		doc.Player.Team = p.Team
		doc.Player.Position = p.Position
		doc.Player.Height = p.Height
		doc.Player.Weight = p.Weight
		doc.Player.Country = p.Country
		doc.Player.DraftYear = p.DraftYear
	}

	for _, sc := range ds.Seasons {
		es := exportSeason{
			Season:  sc.Season,
			Clutch:  exportBaseFrom(sc.Base),
			Regular: exportBaseFrom(sc.Regular),
		}
		if a := sc.Advanced; a != nil {
			es.ClutchAdvanced = &exportAdvanced{
				UsagePct:        a.UsagePct,
				TrueShootingPct: a.TrueShootingPct,
				NetRating:       a.NetRating,
				OffRating:       a.OffRating,
				DefRating:       a.DefRating,
				AssistPct:       a.AssistPct,
				PIE:             a.PIE,
			}
		}
		for _, bin := range sc.Shots {
			es.ShotDistance = append(es.ShotDistance, exportShotBin{
				Distance: bin.Label,
				Made:     bin.Made,
				Attempts: bin.Attempts,
				FGPct:    bin.Pct(),
				PctFGA:   bin.AttemptShare,
			})
		}
		doc.Seasons = append(doc.Seasons, es)
	}
	return doc
}

func exportBaseFrom(b *model.ClutchBase) *exportBase {
	if b == nil {
		return nil
	}
	return &exportBase{
		GamesPlayed: b.GamesPlayed,
		Minutes:     b.Minutes,
		Points:      b.Points,
		FGPct:       b.FGPct,
		FG3Pct:      b.FG3Pct,
		FTPct:       b.FTPct,
		Assists:     b.Assists,
		Turnovers:   b.Turnovers,
		Steals:      b.Steals,
		Blocks:      b.Blocks,
		PlusMinus:   b.PlusMinus,
		AstToTov:    b.AssistToTurnover(),
	}
}
