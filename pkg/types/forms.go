package types

// CreateNeedInput is the decoded proposer-un-besoin form payload. City
// and category stay raw strings here; the needs service validates them
// against the closed sets.
type CreateNeedInput struct {
	Title          string `form:"title"`
	Description    string `form:"description"`
	City           string `form:"city"`
	Category       string `form:"category"`
	WhatsappNumber string `form:"whatsapp_number"`
}
