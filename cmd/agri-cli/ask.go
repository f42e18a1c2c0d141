package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/SYLESH-1125/SIH/internal/engine"
	"github.com/SYLESH-1125/SIH/internal/knowledge"
)

// newAskCmd creates the ask subcommand.
func newAskCmd() *cobra.Command {
	var (
		language string
		userType string
		cropType string
		landSize string
		soilType string
	)

	cmd := &cobra.Command{
		Use:   "ask [question]",
		Short: "Ask a farming question",
		Long: `Ask answers a farming question from the knowledge base.

The question can be asked in English, Tamil, Telugu, Malayalam, or
Hindi; the answer comes back in the same language. Profile flags
(--crop, --soil, --land) personalize the advice.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			ui := NewUI(outputJSON, noColor)
			query := strings.Join(args, " ")

			stop := ui.Spinner("Thinking...")
			store := knowledge.Load(cfg.Knowledge, logger)
			assistant, err := engine.New(store, cfg.Retrieval, logger)
			if err != nil {
				stop()
				return fmt.Errorf("initialize assistant: %w", err)
			}

			resp := assistant.Answer(ctx, engine.AnswerRequest{
				Query:    query,
				Language: language,
				UserType: userType,
				CropType: cropType,
				LandSize: landSize,
				SoilType: soilType,
			})
			stop()

			if outputJSON {
				return json.NewEncoder(os.Stdout).Encode(resp)
			}

			ui.Heading("Answer")
			fmt.Println(resp.Answer)
			fmt.Println()
			for _, src := range resp.Sources {
				ui.Info("source: %s/%s (%.3f)", src.Category, src.Item, src.Similarity)
			}
			ui.Success("confidence %.2f, %dms, mode %s", resp.Confidence, resp.LatencyMs, resp.Mode)
			return nil
		},
	}

	cmd.Flags().StringVarP(&language, "language", "l", "en", "query language (en, ta, te, ml, hi)")
	cmd.Flags().StringVar(&userType, "user", "farmer", "user profile (farmer, expert, student)")
	cmd.Flags().StringVar(&cropType, "crop", "", "crop grown (e.g. rice, wheat)")
	cmd.Flags().StringVar(&landSize, "land", "", "land size (small, medium, large)")
	cmd.Flags().StringVar(&soilType, "soil", "", "soil type (clay, sandy, loamy)")

	return cmd
}
