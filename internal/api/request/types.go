package request

// CreatePlayerRequest is the request body for creating a player
type CreatePlayerRequest struct {
	FirstName           string `json:"first_name"`
	LastName            string `json:"last_name,omitempty"`
	Handedness          string `json:"handedness"`
	InitialBalanceCents int64  `json:"initial_balance_cents"`
}

// UpdatePlayerRequest is the request body for a partial player update.
// Omitted fields are left unchanged.
type UpdatePlayerRequest struct {
	LastName *string `json:"last_name,omitempty"`
	Active   *bool   `json:"active,omitempty"`
}

// DepositRequest is the request body for depositing funds
type DepositRequest struct {
	AmountCents int64 `json:"amount_cents"`
}

// CreateMatchRequest is the request body for creating a match
type CreateMatchRequest struct {
	Player1ID     string `json:"player1_id"`
	Player2ID     string `json:"player2_id"`
	EntryFeeCents int64  `json:"entry_fee_cents"`
	PrizeCents    int64  `json:"prize_cents"`
}

// AwardPointsRequest is the request body for awarding points
type AwardPointsRequest struct {
	Points int64 `json:"points"`
}
