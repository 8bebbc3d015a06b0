package model

// ProjectionYear is one year-end row of an investment projection.
type ProjectionYear struct {
	Year        int     `json:"year"`
	Balance     float64 `json:"balance"`
	Contributed float64 `json:"contributed"` // cumulative, including initial
	Growth      float64 `json:"growth"`      // cumulative
	RealBalance float64 `json:"real_balance"`
}

// Projection is the full investment growth schedule.
type Projection struct {
	Initial       float64          `json:"initial"`
	Monthly       float64          `json:"monthly"`
	AnnualReturn  float64          `json:"annual_return"`  // percent
	InflationRate float64          `json:"inflation_rate"` // percent
	Years         []ProjectionYear `json:"years"`

	FinalBalance     float64 `json:"final_balance"`
	TotalContributed float64 `json:"total_contributed"`
	TotalGrowth      float64 `json:"total_growth"`
}
