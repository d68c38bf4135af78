package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/pable/go-nba-metrics/internal/model"
)

// PrintProfile prints the biographical header block for a player.
func PrintProfile(w io.Writer, p model.PlayerProfile) {
	fmt.Fprintf(w, "\n=== %s ===\n\n", p.Name)
	fmt.Fprintf(w, "  Team      : %s\n", orDash(p.Team))
	fmt.Fprintf(w, "  Position  : %s\n", orDash(p.Position))
	fmt.Fprintf(w, "  Height    : %s\n", orDash(p.Height))
	fmt.Fprintf(w, "  Weight    : %s lbs\n", orDash(p.Weight))
	fmt.Fprintf(w, "  Country   : %s\n", orDash(p.Country))
	fmt.Fprintf(w, "  Draft year: %s\n", orDash(p.DraftYear))
}

// PrintSeasonTable prints the per-season clutch box score. Seasons
// without a base line are omitted; they never made it into the dataset
// anyway.
func PrintSeasonTable(w io.Writer, seasons []model.SeasonClutch) {
	table := tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))

	table.Header("SEASON", "GP", "MIN", "PTS", "FG%", "3P%", "FT%", "AST", "TOV", "AST/TOV", "STL", "BLK", "+/-")

	for _, s := range seasons {
		if s.Base == nil {
			continue
		}
		b := s.Base
		table.Append(
			s.Season,
			strconv.Itoa(b.GamesPlayed),
			fmt.Sprintf("%.1f", b.Minutes),
			fmt.Sprintf("%.1f", b.Points),
			fmt.Sprintf("%.3f", b.FGPct),
			fmt.Sprintf("%.3f", b.FG3Pct),
			fmt.Sprintf("%.3f", b.FTPct),
			fmt.Sprintf("%.1f", b.Assists),
			fmt.Sprintf("%.1f", b.Turnovers),
			fmt.Sprintf("%.2f", b.AssistToTurnover()),
			fmt.Sprintf("%.1f", b.Steals),
			fmt.Sprintf("%.1f", b.Blocks),
			fmt.Sprintf("%.1f", b.PlusMinus),
		)
	}
	table.Render()
}

// PrintAdvancedTable prints the per-season advanced clutch line. A
// season whose advanced fetch came up empty keeps its row, dashed out.
func PrintAdvancedTable(w io.Writer, seasons []model.SeasonClutch) {
	table := tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))

	table.Header("SEASON", "NET_RTG", "OFF_RTG", "DEF_RTG", "USG%", "TS%", "AST%", "PIE")

	for _, s := range seasons {
		if s.Advanced == nil {
			table.Append(s.Season, "—", "—", "—", "—", "—", "—", "—")
			continue
		}
		a := s.Advanced
		astPct := "—"
		if a.AssistPct != nil {
			astPct = fmt.Sprintf("%.1f%%", *a.AssistPct*100)
		}
		table.Append(
			s.Season,
			fmt.Sprintf("%.1f", a.NetRating),
			fmt.Sprintf("%.1f", a.OffRating),
			fmt.Sprintf("%.1f", a.DefRating),
			fmt.Sprintf("%.1f%%", a.UsagePct*100),
			fmt.Sprintf("%.1f%%", a.TrueShootingPct*100),
			astPct,
			fmt.Sprintf("%.3f", a.PIE),
		)
	}
	table.Render()
}

// PrintShotProfileTable prints the averaged shot-distance mix. Bands
// nobody shot from show a dash instead of a misleading 0%.
func PrintShotProfileTable(w io.Writer, bins []model.ShotProfileBin) {
	table := tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))

	table.Header("DISTANCE", "%FGA", "FG%")

	for _, b := range bins {
		pct := "—"
		if b.Pct != nil {
			pct = fmt.Sprintf("%.1f%%", *b.Pct*100)
		}
		table.Append(
			b.Label,
			fmt.Sprintf("%.0f%%", b.AttemptShare*100),
			pct,
		)
	}
	table.Render()
}

// PrintComparisonTable prints the averaged regular-vs-clutch lines side
// by side, one metric per row.
func PrintComparisonTable(w io.Writer, cmp model.Comparison) {
	if cmp.Seasons == 0 {
		fmt.Fprintln(w, "No seasons with both regular and clutch data.")
		return
	}

	table := tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))

	table.Header("METRIC", "REGULAR", "CLUTCH")
	table.Append("PTS", fmt.Sprintf("%.1f", cmp.Regular.Points), fmt.Sprintf("%.1f", cmp.Clutch.Points))
	table.Append("AST", fmt.Sprintf("%.1f", cmp.Regular.Assists), fmt.Sprintf("%.1f", cmp.Clutch.Assists))
	table.Append("TOV", fmt.Sprintf("%.1f", cmp.Regular.Turnovers), fmt.Sprintf("%.1f", cmp.Clutch.Turnovers))
	table.Append("AST/TOV", fmt.Sprintf("%.2f", cmp.Regular.AssistToTurnover), fmt.Sprintf("%.2f", cmp.Clutch.AssistToTurnover))
	table.Append("FG%", fmt.Sprintf("%.3f", cmp.Regular.FGPct), fmt.Sprintf("%.3f", cmp.Clutch.FGPct))
	table.Append("3P%", fmt.Sprintf("%.3f", cmp.Regular.FG3Pct), fmt.Sprintf("%.3f", cmp.Clutch.FG3Pct))
	table.Append("FT%", fmt.Sprintf("%.3f", cmp.Regular.FTPct), fmt.Sprintf("%.3f", cmp.Clutch.FTPct))
	table.Render()

	fmt.Fprintf(w, "\nAveraged over %d season(s) with both splits.\n", cmp.Seasons)
}

// PrintNetRatingTable prints the season-by-season net ratings with an
// average row at the bottom. Missing situations stay dashed.
func PrintNetRatingTable(w io.Writer, rows []model.NetRatingSeason, regAvg, clutchAvg, playoffAvg *float64) {
	table := tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))

	table.Header("SEASON", "REGULAR", "CLUTCH", "PLAYOFFS")

	for _, r := range rows {
		table.Append(r.Season, fmtRating(r.Regular), fmtRating(r.Clutch), fmtRating(r.Playoffs))
	}
	table.Append("AVERAGE", fmtRating(regAvg), fmtRating(clutchAvg), fmtRating(playoffAvg))
	table.Render()
}

func fmtRating(v *float64) string {
	if v == nil {
		return "—"
	}
	return fmt.Sprintf("%.1f", *v)
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
