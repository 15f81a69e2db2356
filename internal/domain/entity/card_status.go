package entity

import (
	"time"
)

// MerchantIdentity is the receiving party of a card purchase, stored on the
// card record as primary_seller.
type MerchantIdentity struct {
	Name              string `json:"name" firestore:"name"`
	Identifier        string `json:"identifier" firestore:"identifier"`
	AuthorizationCode string `json:"authorization_code,omitempty" firestore:"authorization_code,omitempty"`
}

// CardStatus lives at users/{userId}/card_status/{cardId}. Sales only ever
// grows; card_onSale is toggled by the listing endpoints and cleared again
// when a sale is finalized.
type CardStatus struct {
	Active          bool              `json:"card_status" firestore:"card_status"`
	ActiveUntil     time.Time         `json:"activeUntil" firestore:"activeUntil"`
	Sales           int64             `json:"sales" firestore:"sales"`
	OnSale          bool              `json:"card_onSale" firestore:"card_onSale"`
	Title           string            `json:"title,omitempty" firestore:"title,omitempty"`
	PrimarySeller   *MerchantIdentity `json:"primary_seller,omitempty" firestore:"primary_seller,omitempty"`
	SecondarySeller *PaymentDetails   `json:"secondary_seller,omitempty" firestore:"secondary_seller,omitempty"`
}

// Activation windows by card title. Unknown cards fall back to the shortest
// window rather than failing the purchase.
var activePeriodDays = map[string]int{
	"Pinkies":    10,
	"Kleepa":     20,
	"Two Kleepa": 30,
}

const defaultActivePeriodDays = 10

func ActivePeriod(title string) time.Duration {
	days, ok := activePeriodDays[title]
	if !ok {
		days = defaultActivePeriodDays
	}
	return time.Duration(days) * 24 * time.Hour
}
