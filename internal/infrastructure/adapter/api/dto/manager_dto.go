package dto

// PoolStats represents the connection pool of one manager's database
type PoolStats struct {
	OpenConnections    int   `json:"openConnections"`
	IdleConnections    int   `json:"idleConnections"`
	InUse              int   `json:"inUse"`
	MaxOpenConnections int   `json:"maxOpenConnections"`
	WaitCount          int64 `json:"waitCount"`
	WaitDurationMs     int64 `json:"waitDurationMs"`
}

// ManagerResponse describes one registered entity manager
type ManagerResponse struct {
	Name          string     `json:"name"`
	PendingWrites int        `json:"pendingWrites"`
	Pool          *PoolStats `json:"pool,omitempty"`
}

// ManagersResponse lists the registered entity managers in registration order
type ManagersResponse struct {
	Managers []ManagerResponse `json:"managers"`
}

// HealthResponse represents the service health
type HealthResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}
