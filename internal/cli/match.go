package cli

import (
	"github.com/spf13/cobra"
)

func newMatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match",
		Short: "Match lifecycle commands",
	}

	cmd.AddCommand(newMatchCreateCmd())
	cmd.AddCommand(newMatchGetCmd())
	cmd.AddCommand(newMatchListCmd())
	cmd.AddCommand(newMatchAwardCmd())
	cmd.AddCommand(newMatchEndCmd())
	cmd.AddCommand(newMatchDisqualifyCmd())

	return cmd
}

func newMatchCreateCmd() *cobra.Command {
	var player1, player2 string
	var entryFee, prize int64

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a match between two players",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"player1_id":      player1,
				"player2_id":      player2,
				"entry_fee_cents": entryFee,
				"prize_cents":     prize,
			}
			var result Match

			if err := client.Post("/api/v1/matches", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&player1, "player1", "", "First player id (required)")
	cmd.Flags().StringVar(&player2, "player2", "", "Second player id (required)")
	cmd.Flags().Int64Var(&entryFee, "entry-fee", 0, "Entry fee in cents")
	cmd.Flags().Int64Var(&prize, "prize", 0, "Prize in cents")
	_ = cmd.MarkFlagRequired("player1")
	_ = cmd.MarkFlagRequired("player2")

	return cmd
}

func newMatchGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <match-id>",
		Short: "Get a match by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Match

			if err := client.Get("/api/v1/matches/"+args[0], &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newMatchListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List active matches and recently ended ones",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Match

			if err := client.Get("/api/v1/matches", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newMatchAwardCmd() *cobra.Command {
	var points int64

	cmd := &cobra.Command{
		Use:   "award <match-id> <player-id>",
		Short: "Award points to a player in a match",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{"points": points}
			var result Match

			if err := client.Post("/api/v1/matches/"+args[0]+"/award/"+args[1], req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().Int64Var(&points, "points", 0, "Points to award (required)")
	_ = cmd.MarkFlagRequired("points")

	return cmd
}

func newMatchEndCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "end <match-id>",
		Short: "End a match, crediting the leader",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Match

			if err := client.Post("/api/v1/matches/"+args[0]+"/end", nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newMatchDisqualifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "disqualify <match-id> <player-id>",
		Short: "Disqualify a player, awarding the match to their opponent",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Match

			if err := client.Post("/api/v1/matches/"+args[0]+"/disqualify/"+args[1], nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
