package dto

import "github.com/shopspring/decimal"

// DashboardResponse carries the headline counters of the original dashboard.
type DashboardResponse struct {
	TotalStudents      int64           `json:"totalStudents"`
	TotalFeesCollected decimal.Decimal `json:"totalFeesCollected"`
}
