package request

type MagicLinkRequest struct {
	Email string `json:"email" binding:"required"`
}

// MagicLinkCallback carries the token hash from the emailed link, either as
// query parameters or as a JSON body.
type MagicLinkCallback struct {
	TokenHash string `json:"token_hash" form:"token_hash"`
	Type      string `json:"type" form:"type"`
}
