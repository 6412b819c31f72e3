package entity

type StatusCount struct {
	Status JobStatus `json:"status"`
	Count  int64     `json:"count"`
}

// AdminStats is the aggregate view over all jobs. SuccessRate is the share of
// completed jobs among terminal ones, as a 0-100 percentage.
type AdminStats struct {
	TotalJobs   int64         `json:"totalJobs"`
	TotalUsers  int64         `json:"totalUsers"`
	SuccessRate float64       `json:"successRate"`
	ByStatus    []StatusCount `json:"byStatus"`
	RecentJobs  []Job         `json:"recentJobs"`
}
