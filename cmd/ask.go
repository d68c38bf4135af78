package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/spf13/cobra"

	"github.com/pable/go-nba-metrics/internal/nbastats"
)

const askSystemPrompt = `You are an NBA performance analyst. You are given structured clutch-play
data fetched from the league stats API and a question about the player.

Rules:
- Answer ONLY from the data provided. Never invent or estimate statistics.
- Always cite specific numbers when making a claim.
- If the data is insufficient to answer confidently, say so explicitly.
- Be concise and concrete. Focus on how the player's game changes in the clutch.
- Avoid generic basketball advice unless it directly explains a pattern in the data.

Metrics glossary:
- Clutch: the final minutes of a close game; clutch_time and point_diff in the data give the exact window.
- Box score rates (pts, ast, tov, stl, blk) are per 36 minutes unless noted.
- Shooting percentages (fg_pct, fg3_pct, ft_pct, ts_pct) are fractions: 0.45 = 45%.
- ast_to_tov: assists per turnover. Equals raw assists when turnovers are zero.
- usg_pct: share of team possessions the player finishes. Stars run 0.28-0.35 in the clutch.
- net_rating: team point differential per 100 possessions with the player on court.
- off_rating / def_rating: points scored / allowed per 100 possessions on court.
- pie: Player Impact Estimate, the player's share of game events. League average is about 0.10.
- shot_distance bins: pct_fga is the share of attempts from that range, fg_pct the accuracy there.
- plus_minus: raw score margin while the player is on the floor.`

var (
	askModel  string
	askAPIKey string

	askSeasons   string
	askPlayerID  int
	askWindow    string
	askPointDiff int
	askDelay     time.Duration
)

var askCmd = &cobra.Command{
	Use:   "ask <player name> <question>",
	Short: "AI-powered grounded clutch analysis (requires ANTHROPIC_API_KEY)",
	Long: `Gathers the player's clutch dataset and asks an Anthropic model the
question, grounded on that data only. The model streams its answer to
stdout.

Example:
  nbametrics ask "damian lillard" "does his three-point shot hold up late in close games?"
  nbametrics ask "jalen brunson" "is he turnover-prone in the clutch?" --seasons 2023-24`,
	Args: cobra.ExactArgs(2),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().StringVar(&askModel, "model", "", "Anthropic model to use (default: $NBAMETRICS_MODEL)")
	askCmd.Flags().StringVar(&askAPIKey, "api-key", "", "Anthropic API key (falls back to $ANTHROPIC_API_KEY)")

	askCmd.Flags().StringVar(&askSeasons, "seasons", "", "comma-separated seasons, e.g. 2022-23,2023-24 (default: last five)")
	askCmd.Flags().IntVar(&askPlayerID, "player-id", 0, "player ID, skips the name lookup")
	askCmd.Flags().StringVar(&askWindow, "clutch-time", nbastats.ClutchTimeLast5, "clutch window on the game clock")
	askCmd.Flags().IntVar(&askPointDiff, "point-diff", 5, "max score margin that counts as clutch")
	askCmd.Flags().DurationVar(&askDelay, "delay", 0, "spacing between API requests (default: NBA_REQUEST_DELAY)")
}

func runAsk(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	question := args[1]

	client := newStatsClient(askDelay)

	seasons, err := parseSeasons(askSeasons)
	if err != nil {
		return err
	}

	player, err := resolvePlayer(ctx, client, args[0], askPlayerID)
	if err != nil {
		return err
	}

	ds, err := collectClutch(ctx, client, player, seasons, askWindow, askPointDiff)
	if err != nil {
		return err
	}

	contextJSON, err := json.Marshal(buildExportDoc(ds))
	if err != nil {
		return fmt.Errorf("build context: %w", err)
	}

	modelID := askModel
	if modelID == "" {
		modelID = cfg.Model
	}
	return callAnthropic(ctx, askAPIKey, modelID, string(contextJSON), question)
}

// callAnthropic streams a response from the Anthropic API and prints it to stdout.
func callAnthropic(ctx context.Context, apiKey, modelID, dataJSON, question string) error {
	if apiKey == "" {
		apiKey = os.Getenv("ANTHROPIC_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("no API key: set ANTHROPIC_API_KEY or use --api-key")
	}

	client := anthropic.NewClient(option.WithAPIKey(apiKey))

	userMsg := fmt.Sprintf("DATA:\n%s\n\nQUESTION: %s", dataJSON, question)

	fmt.Fprintln(os.Stdout, "\n─── AI Analysis ─────────────────────────────────────")

	stream := client.Messages.NewStreaming(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(modelID),
		MaxTokens: 1024,
		System: []anthropic.TextBlockParam{
			{Text: askSystemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userMsg)),
		},
	})

	for stream.Next() {
		evt := stream.Current()
		if evt.Type == "content_block_delta" {
			delta := evt.AsContentBlockDelta()
			if delta.Delta.Type == "text_delta" {
				fmt.Fprint(os.Stdout, delta.Delta.AsTextDelta().Text)
			}
		}
	}
	fmt.Fprintln(os.Stdout, "\n─────────────────────────────────────────────────────")

	if err := stream.Err(); err != nil {
		// Provide a cleaner error message for common API errors.
		errStr := err.Error()
		if strings.Contains(errStr, "401") || strings.Contains(errStr, "authentication") {
			return fmt.Errorf("API authentication failed: check your API key")
		}
		return fmt.Errorf("streaming error: %w", err)
	}
	return nil
}
