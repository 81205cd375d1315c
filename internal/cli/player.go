package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPlayerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Player management commands",
	}

	cmd.AddCommand(newPlayerCreateCmd())
	cmd.AddCommand(newPlayerGetCmd())
	cmd.AddCommand(newPlayerListCmd())
	cmd.AddCommand(newPlayerUpdateCmd())
	cmd.AddCommand(newPlayerDeleteCmd())
	cmd.AddCommand(newPlayerDepositCmd())

	return cmd
}

func newPlayerCreateCmd() *cobra.Command {
	var firstName, lastName, handedness string
	var balance int64

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new player",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"first_name":            firstName,
				"handedness":            handedness,
				"initial_balance_cents": balance,
			}
			if lastName != "" {
				req["last_name"] = lastName
			}
			var result Player

			if err := client.Post("/api/v1/players", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&firstName, "first-name", "", "First name (required)")
	cmd.Flags().StringVar(&lastName, "last-name", "", "Last name")
	cmd.Flags().StringVar(&handedness, "handedness", "", "left, right, or ambidextrous (required)")
	cmd.Flags().Int64Var(&balance, "balance", 0, "Initial balance in cents")
	_ = cmd.MarkFlagRequired("first-name")
	_ = cmd.MarkFlagRequired("handedness")

	return cmd
}

func newPlayerGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <player-id>",
		Short: "Get a player by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Player

			if err := client.Get("/api/v1/players/"+args[0], &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPlayerListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all players sorted by name",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Player

			if err := client.Get("/api/v1/players", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPlayerUpdateCmd() *cobra.Command {
	var lastName string
	var active bool

	cmd := &cobra.Command{
		Use:   "update <player-id>",
		Short: "Update a player's last name or active flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{}
			if cmd.Flags().Changed("last-name") {
				req["last_name"] = lastName
			}
			if cmd.Flags().Changed("active") {
				req["active"] = active
			}
			if len(req) == 0 {
				return fmt.Errorf("nothing to update: pass --last-name or --active")
			}
			var result Player

			if err := client.Patch("/api/v1/players/"+args[0], req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&lastName, "last-name", "", "New last name")
	cmd.Flags().BoolVar(&active, "active", true, "Active flag")

	return cmd
}

func newPlayerDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <player-id>",
		Short: "Delete a player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete("/api/v1/players/" + args[0]); err != nil {
				return err
			}

			fmt.Println("Player deleted")
			return nil
		},
	}
}

func newPlayerDepositCmd() *cobra.Command {
	var amount int64

	cmd := &cobra.Command{
		Use:   "deposit <player-id>",
		Short: "Deposit funds into a player's balance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{"amount_cents": amount}
			var result DepositResult

			if err := client.Post("/api/v1/players/"+args[0]+"/deposit", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().Int64Var(&amount, "amount", 0, "Amount in cents (required)")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}
