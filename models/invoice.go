package models

import (
	"time"

	"gorm.io/datatypes"
)

// Invoice is a bill issued to a client for completed cleaning work.
// BankAccountID loosely references BankAccount.ID; dangling references are
// permitted, so there is no foreign key constraint.
type Invoice struct {
	ID            uint           `gorm:"primaryKey"                     json:"id"`
	Date          string         `gorm:"column:date;not null"           json:"date"`
	ClientName    string         `gorm:"column:client_name;not null"    json:"clientName"`
	ClientAddress string         `gorm:"column:client_address;not null" json:"clientAddress"`
	Items         datatypes.JSON `gorm:"column:items"                   json:"items"`
	PaymentMethod string         `gorm:"column:payment_method;not null" json:"paymentMethod"`
	BankAccountID *string        `gorm:"column:bank_account_id"         json:"bankAccountId"`
	Notes         string         `gorm:"column:notes"                   json:"notes"`
	CreatedAt     time.Time      `gorm:"autoCreateTime"                 json:"-"`
}

// ApplyDefaults substitutes the documented fallbacks for fields the client
// omitted on create. PaymentMethod falls back to "cash"; any other string is
// accepted as-is.
func (i *Invoice) ApplyDefaults() {
	i.NormalizeItems()
	if i.PaymentMethod == "" {
		i.PaymentMethod = "cash"
	}
}

// NormalizeItems substitutes an empty item list when none is set. Patch
// paths use it instead of ApplyDefaults: a paymentMethod the client
// explicitly cleared is stored verbatim.
func (i *Invoice) NormalizeItems() {
	if len(i.Items) == 0 {
		i.Items = datatypes.JSON("[]")
	}
}
