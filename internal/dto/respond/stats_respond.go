package respond

// StatsRespond carries the derived savings figures for one member.
// EstimatedPayout equals TotalSaved; there is no interest or fee model.
type StatsRespond struct {
	TotalSaved        int `json:"totalSaved"`
	MonthsContributed int `json:"monthsContributed"`
	EstimatedPayout   int `json:"estimatedPayout"`
}
