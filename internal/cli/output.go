package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Player:
		o.printPlayer(v)
	case []Player:
		o.printPlayerList(v)
	case DepositResult:
		o.printDepositResult(v)
	case Match:
		o.printMatch(v)
	case []Match:
		o.printMatchList(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Player response type (matches API)
type Player struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Handedness        string  `json:"handedness"`
	Active            bool    `json:"active"`
	BalanceCents      int64   `json:"balance_cents"`
	Joins             int     `json:"joins"`
	Wins              int     `json:"wins"`
	Disqualifications int     `json:"disqualifications"`
	TotalPoints       int64   `json:"total_points"`
	TotalPrizeCents   int64   `json:"total_prize_cents"`
	Efficiency        float64 `json:"efficiency"`
	ActiveMatchID     *string `json:"active_match_id"`
}

// DepositResult response type
type DepositResult struct {
	OldBalanceCents int64 `json:"old_balance_cents"`
	NewBalanceCents int64 `json:"new_balance_cents"`
}

// Match response type
type Match struct {
	ID            string  `json:"id"`
	Player1ID     string  `json:"player1_id"`
	Player1Name   string  `json:"player1_name"`
	Player1Points int64   `json:"player1_points"`
	Player2ID     string  `json:"player2_id"`
	Player2Name   string  `json:"player2_name"`
	Player2Points int64   `json:"player2_points"`
	EntryFeeCents int64   `json:"entry_fee_cents"`
	PrizeCents    int64   `json:"prize_cents"`
	WinnerID      *string `json:"winner_id"`
	Disqualified  bool    `json:"disqualified"`
	IsActive      bool    `json:"is_active"`
	AgeSeconds    int64   `json:"age_seconds"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printPlayer(p Player) {
	activeStr := "no"
	if p.Active {
		activeStr = "yes"
	}
	fmt.Printf("Player: %s (%s)\n", p.Name, p.ID)
	fmt.Printf("Handedness: %s\n", p.Handedness)
	fmt.Printf("Active: %s\n", activeStr)
	fmt.Printf("Balance: %d cents\n", p.BalanceCents)
	fmt.Printf("Record: %d joins, %d wins, %d DQs (efficiency %.2f)\n",
		p.Joins, p.Wins, p.Disqualifications, p.Efficiency)
	fmt.Printf("Total: %d points, %d cents in prizes\n", p.TotalPoints, p.TotalPrizeCents)
	if p.ActiveMatchID != nil {
		fmt.Printf("In match: %s\n", *p.ActiveMatchID)
	}
}

func (o *Output) printPlayerList(players []Player) {
	fmt.Printf("Players (%d):\n", len(players))
	for _, p := range players {
		inMatch := ""
		if p.ActiveMatchID != nil {
			inMatch = " [in match]"
		}
		fmt.Printf("  - %s (%s) - %d cents%s\n", p.Name, p.ID, p.BalanceCents, inMatch)
	}
}

func (o *Output) printDepositResult(d DepositResult) {
	fmt.Printf("Balance: %d -> %d cents\n", d.OldBalanceCents, d.NewBalanceCents)
}

func (o *Output) printMatch(m Match) {
	stateStr := "ended"
	if m.IsActive {
		stateStr = "active"
	}
	fmt.Printf("Match: %s (%s)\n", m.ID, stateStr)
	fmt.Printf("  %s: %d points\n", m.Player1Name, m.Player1Points)
	fmt.Printf("  %s: %d points\n", m.Player2Name, m.Player2Points)
	fmt.Printf("Entry fee: %d cents, prize: %d cents\n", m.EntryFeeCents, m.PrizeCents)
	if m.WinnerID != nil {
		fmt.Printf("Winner: %s\n", *m.WinnerID)
	}
	if m.Disqualified {
		fmt.Println("Ended by disqualification")
	}
}

func (o *Output) printMatchList(matches []Match) {
	fmt.Printf("Matches (%d):\n", len(matches))
	for _, m := range matches {
		stateStr := "ended"
		if m.IsActive {
			stateStr = "active"
		}
		fmt.Printf("  - %s [%s] %s (%d) vs %s (%d), prize %d cents\n",
			m.ID, stateStr, m.Player1Name, m.Player1Points,
			m.Player2Name, m.Player2Points, m.PrizeCents)
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
