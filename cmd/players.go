package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pable/go-nba-metrics/internal/nbastats"
)

// playersActiveOnly restricts the listing to players on a current roster.
var playersActiveOnly bool

var playersCmd = &cobra.Command{
	Use:   "players <name>",
	Short: "Search the league player index by name",
	Long: `Search the full player index (historical players included) by
case-insensitive name match and print the matching IDs. Use the ID with
--player-id on the other commands when a name is ambiguous.

Examples:
  nbametrics players "chris paul"
  nbametrics players johnson --active`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPlayers,
}

func init() {
	playersCmd.Flags().BoolVar(&playersActiveOnly, "active", false, "only show players on a current roster")
}

func runPlayers(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")
	client := newStatsClient(0)

	index, err := client.CommonAllPlayers(context.Background(), nbastats.CurrentSeason(time.Now()))
	if err != nil {
		return fmt.Errorf("fetch player index: %w", err)
	}

	matches := nbastats.SearchPlayers(index, query)
	if playersActiveOnly {
		active := matches[:0]
		for _, p := range matches {
			if p.Active {
				active = append(active, p)
			}
		}
		matches = active
	}
	if len(matches) == 0 {
		fmt.Fprintf(os.Stdout, "No players matching %q.\n", query)
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-10s  %-28s  %-6s  %s\n", "ID", "NAME", "ACTIVE", "YEARS")
	fmt.Fprintf(os.Stdout, "%-10s  %-28s  %-6s  %s\n", "──────────", "────────────────────────────", "──────", "─────────")
	for _, p := range matches {
		active := ""
		if p.Active {
			active = "yes"
		}
		fmt.Fprintf(os.Stdout, "%-10d  %-28s  %-6s  %s-%s\n", p.ID, p.Name, active, p.FromYear, p.ToYear)
	}
	fmt.Fprintf(os.Stdout, "\n%d player(s).\n", len(matches))
	return nil
}
