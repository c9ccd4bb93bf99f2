package models

import "time"

// BankAccount holds payment details printed on invoices. The ID is supplied
// by the client and used verbatim as the primary key.
type BankAccount struct {
	ID            string    `gorm:"column:id;primaryKey"           json:"id"`
	BankName      string    `gorm:"column:bank_name;not null"      json:"bankName"`
	AccountName   string    `gorm:"column:account_name;not null"   json:"accountName"`
	SortCode      string    `gorm:"column:sort_code;not null"      json:"sortCode"`
	AccountNumber string    `gorm:"column:account_number;not null" json:"accountNumber"`
	IBAN          *string   `gorm:"column:iban"                    json:"iban"`
	ReferenceNote *string   `gorm:"column:reference_note"          json:"referenceNote"`
	CreatedAt     time.Time `gorm:"autoCreateTime"                 json:"-"`
}
