package model

// TaxEstimate is the output of the federal income tax estimator.
type TaxEstimate struct {
	Year         int     `json:"year"`
	FilingStatus string  `json:"filing_status"`
	GrossIncome  float64 `json:"gross_income"`

	StandardDeduction float64 `json:"standard_deduction"`
	TaxableIncome     float64 `json:"taxable_income"`

	FederalTax     float64 `json:"federal_tax"`
	SocialSecurity float64 `json:"social_security"`
	Medicare       float64 `json:"medicare"`
	StateTax       float64 `json:"state_tax"`
	TotalTax       float64 `json:"total_tax"`

	EffectiveRate float64 `json:"effective_rate"` // total tax / gross, 0-1
	MarginalRate  float64 `json:"marginal_rate"`  // top federal bracket reached, 0-1

	TakeHome        float64 `json:"take_home"`
	MonthlyTakeHome float64 `json:"monthly_take_home"`
}
