package api

// swagger:model api.CreateCreditPackageRequest
type CreateCreditPackageRequest struct {
	Name         string `json:"name" validate:"required" example:"7 堂組合包方案"`
	CreditAmount *int   `json:"credit_amount" validate:"required" example:"7"`
	Price        *int   `json:"price" validate:"required" example:"1400"`
}
