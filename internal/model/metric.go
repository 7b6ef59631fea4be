package model

import "time"

// AdminMetric is one recorded analytics data point. The analytics
// service snapshots computed metrics here on each run.
type AdminMetric struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	MetricName   string    `gorm:"index;not null;size:100" json:"metric_name"`
	MetricValue  float64   `gorm:"not null" json:"metric_value"`
	DateRecorded time.Time `gorm:"index" json:"date_recorded"`
}

// TableName sets the table name.
func (AdminMetric) TableName() string {
	return "admin_analytics"
}
