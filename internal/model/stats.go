package model

// Stats is a point-in-time snapshot of business metrics. Revenue counts
// completed orders only and is recomputed on every call, never cached.
// Cancelled orders are derivable as TotalOrders minus the three reported
// status counts.
type Stats struct {
	TotalCustomers   int64   `json:"totalCustomers"`
	TotalProducts    int64   `json:"totalProducts"`
	TotalOrders      int64   `json:"totalOrders"`
	PendingOrders    int64   `json:"pendingOrders"`
	InProgressOrders int64   `json:"inProgressOrders"`
	CompletedOrders  int64   `json:"completedOrders"`
	TotalRevenue     float64 `json:"totalRevenue"`
}
