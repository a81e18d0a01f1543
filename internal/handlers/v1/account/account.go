package account

// Account is the API response model for an account.
type Account struct {
	ID              int64  `json:"id" doc:"Account id"`
	Name            string `json:"name" doc:"Account name"`
	Type            string `json:"type" doc:"Account type: bank, wallet, or card"`
	StartingBalance string `json:"startingBalance" doc:"Decimal starting balance"`
	CreatedAt       string `json:"createdAt" doc:"RFC3339 creation time"`
}
