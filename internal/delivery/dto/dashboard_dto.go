package dto

// DashboardStatsResponse holds the aggregate counts shown on the landing screen.
type DashboardStatsResponse struct {
	TotalPatients     int64 `json:"total_patients"`
	TotalDoctors      int64 `json:"total_doctors"`
	TotalAppointments int64 `json:"total_appointments"`
	TotalStaff        int64 `json:"total_staff"`
	PendingBills      int64 `json:"pending_bills"`
}

// MessageResponse is returned by operations that have no record to echo back.
type MessageResponse struct {
	Message string `json:"message"`
}
