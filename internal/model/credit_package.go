package model

import "github.com/google/uuid"

type CreditPackage struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	CreditAmount int       `db:"credit_amount" json:"credit_amount"`
	Price        int       `db:"price" json:"price"`
}
