package handlers

import (
	"sort"
	"time"

	"dental-center-server/internal/models"
	"dental-center-server/internal/repository"
	"dental-center-server/internal/utils"

	"github.com/gin-gonic/gin"
)

// averageAppointmentRevenue is the flat demo figure used for the monthly
// revenue stat.
const averageAppointmentRevenue = 200

// DashboardHandler serves the practice overview statistics.
type DashboardHandler struct {
	Patients     *repository.PatientRepository
	Appointments *repository.AppointmentRepository
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(patients *repository.PatientRepository, appointments *repository.AppointmentRepository) *DashboardHandler {
	return &DashboardHandler{Patients: patients, Appointments: appointments}
}

// DashboardStats is the aggregate view over patients and appointments.
type DashboardStats struct {
	TotalPatients        int                  `json:"totalPatients"`
	TodayAppointments    int                  `json:"todayAppointments"`
	MonthlyRevenue       float64              `json:"monthlyRevenue"`
	CompletedTreatments  int                  `json:"completedTreatments"`
	UpcomingAppointments []models.Appointment `json:"upcomingAppointments"`
	RecentPatients       []models.Patient     `json:"recentPatients"`
}

// GetStats handles fetching the dashboard statistics: derived arithmetic over
// the stored records, recomputed on every request.
func (h *DashboardHandler) GetStats(c *gin.Context) {
	patients := h.Patients.GetAll()
	appointments := h.Appointments.GetAll()

	today := time.Now().Format("2006-01-02")
	todayCount := 0
	completedCount := 0
	var upcoming []models.Appointment
	for _, a := range appointments {
		if a.Date == today {
			todayCount++
		}
		switch a.Status {
		case models.StatusCompleted:
			completedCount++
		case models.StatusScheduled, models.StatusConfirmed:
			upcoming = append(upcoming, a)
		}
	}

	sort.Slice(upcoming, func(i, j int) bool {
		if upcoming[i].Date != upcoming[j].Date {
			return upcoming[i].Date < upcoming[j].Date
		}
		return upcoming[i].Time < upcoming[j].Time
	})
	if len(upcoming) > 5 {
		upcoming = upcoming[:5]
	}

	recent := make([]models.Patient, len(patients))
	copy(recent, patients)
	sort.Slice(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	if len(recent) > 5 {
		recent = recent[:5]
	}

	stats := DashboardStats{
		TotalPatients:        len(patients),
		TodayAppointments:    todayCount,
		MonthlyRevenue:       float64(completedCount * averageAppointmentRevenue),
		CompletedTreatments:  completedCount,
		UpcomingAppointments: upcoming,
		RecentPatients:       recent,
	}

	utils.Success(c, "Dashboard stats fetched successfully", stats)
}
