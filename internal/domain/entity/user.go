package entity

// PaymentDetails is the reusable authorization issued by the processor after a
// card has been verified once. It is everything needed to charge the card
// again without the user re-entering it.
type PaymentDetails struct {
	AuthorizationCode string `json:"authorization_code" firestore:"authorization_code"`
	Last4             string `json:"last4" firestore:"last4"`
	ExpMonth          string `json:"exp_month" firestore:"exp_month"`
	ExpYear           string `json:"exp_year" firestore:"exp_year"`
	Brand             string `json:"brand" firestore:"brand"`
}

type User struct {
	ID             string          `json:"id" firestore:"id,omitempty"`
	Email          string          `json:"email,omitempty" firestore:"email,omitempty"`
	PaymentDetails *PaymentDetails `json:"payment_details,omitempty" firestore:"payment_details,omitempty"`
}
