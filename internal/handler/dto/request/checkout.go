package request

type SubmitCheckoutRequest struct {
	ConfirmationToken string `json:"confirmation_token" binding:"required,uuid"`
}
