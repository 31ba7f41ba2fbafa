package booking

// PackageStat is one row of the per-package breakdown. Count and
// Revenue are restricted to appointments whose payment completed.
type PackageStat struct {
	PackageName string  `json:"packageName"`
	Count       int64   `json:"count"`
	Revenue     float64 `json:"revenue"`
}

type MonthlyReport struct {
	TotalAppointments     int64         `json:"totalAppointments"`
	TotalRevenue          float64       `json:"totalRevenue"`
	CompletedAppointments int64         `json:"completedAppointments"`
	PendingAppointments   int64         `json:"pendingAppointments"`
	AppointmentsByPackage []PackageStat `json:"appointmentsByPackage"`
}
