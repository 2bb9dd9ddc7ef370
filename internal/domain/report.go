package domain

// Charts holds absolute spend series with zero groups dropped, ready for pie and bar charts
type Charts struct {
	ByCategory []CategoryTotal `json:"by_category,omitempty"`
	ByMonth    []MonthTotal    `json:"by_month,omitempty"`
}

// Report contains everything a single analysis run produced
type Report struct {
	RunID        string          `json:"run_id"`
	Sources      []string        `json:"sources"`
	Transactions []Transaction   `json:"transactions"`
	Summary      AggregateResult `json:"summary"`
	Charts       Charts          `json:"charts"`
	Alerts       []Alert         `json:"alerts,omitempty"`
	Overages     []MonthOverage  `json:"overages,omitempty"`
}
