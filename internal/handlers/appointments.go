package handlers

import (
	"time"

	"dental-center-server/internal/models"
	"dental-center-server/internal/repository"
	"dental-center-server/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AppointmentHandler handles appointment related requests.
type AppointmentHandler struct {
	Appointments *repository.AppointmentRepository
	Patients     *repository.PatientRepository
	Services     *repository.ServiceRepository
}

// NewAppointmentHandler creates a new AppointmentHandler.
func NewAppointmentHandler(appointments *repository.AppointmentRepository, patients *repository.PatientRepository, services *repository.ServiceRepository) *AppointmentHandler {
	return &AppointmentHandler{Appointments: appointments, Patients: patients, Services: services}
}

// CreateAppointmentRequest represents the request body for creating an appointment.
type CreateAppointmentRequest struct {
	PatientID string `json:"patientId" binding:"required"`
	ServiceID string `json:"serviceId" binding:"required"`
	Date      string `json:"date" binding:"required,datetime=2006-01-02"`
	Time      string `json:"time" binding:"required"`
	Notes     string `json:"notes"`
}

// CreateAppointment handles booking a new appointment. The patient and
// service names are captured here as snapshots; later edits to either record
// do not flow back into the appointment.
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var req CreateAppointmentRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	if !utils.ValidTimeSlot(req.Time) {
		utils.BadRequest(c, "Appointment time must be on the 30-minute schedule grid")
		return
	}

	patient, ok := h.Patients.GetByID(req.PatientID)
	if !ok {
		utils.NotFound(c, "Patient not found")
		return
	}
	service, ok := h.Services.GetByID(req.ServiceID)
	if !ok {
		utils.NotFound(c, "Service not found")
		return
	}
	if !service.IsActive {
		utils.BadRequest(c, "Service is not available for scheduling")
		return
	}

	now := time.Now().UTC()
	appointment := models.Appointment{
		ID:          uuid.New().String(),
		PatientID:   patient.ID,
		PatientName: patient.FullName(),
		ServiceID:   service.ID,
		ServiceName: service.Name,
		Date:        req.Date,
		Time:        req.Time,
		Status:      models.StatusScheduled,
		Notes:       req.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	h.Appointments.Add(appointment)

	utils.Created(c, "Appointment created successfully", appointment)
}

// GetAppointments handles fetching all appointments. Optional ?status= and
// ?date= parameters filter at the call site.
func (h *AppointmentHandler) GetAppointments(c *gin.Context) {
	appointments := h.Appointments.GetAll()

	status := c.Query("status")
	date := c.Query("date")
	if status != "" || date != "" {
		filtered := make([]models.Appointment, 0, len(appointments))
		for _, a := range appointments {
			if status != "" && string(a.Status) != status {
				continue
			}
			if date != "" && a.Date != date {
				continue
			}
			filtered = append(filtered, a)
		}
		appointments = filtered
	}

	utils.Success(c, "Appointments fetched successfully", appointments)
}

// GetAppointmentByID handles fetching a single appointment by its ID.
func (h *AppointmentHandler) GetAppointmentByID(c *gin.Context) {
	appointment, ok := h.Appointments.GetByID(c.Param("id"))
	if !ok {
		utils.NotFound(c, "Appointment not found")
		return
	}
	utils.Success(c, "Appointment fetched successfully", appointment)
}

// UpdateAppointment handles a partial update of an appointment. When the
// patient or service reference changes, the matching name snapshot is
// re-captured from the referenced record.
func (h *AppointmentHandler) UpdateAppointment(c *gin.Context) {
	var patch models.AppointmentPatch
	if !utils.BindAndValidate(c, &patch) {
		return
	}

	if patch.Time != nil && !utils.ValidTimeSlot(*patch.Time) {
		utils.BadRequest(c, "Appointment time must be on the 30-minute schedule grid")
		return
	}

	if patch.PatientID != nil {
		patient, ok := h.Patients.GetByID(*patch.PatientID)
		if !ok {
			utils.NotFound(c, "Patient not found")
			return
		}
		name := patient.FullName()
		patch.PatientName = &name
	}
	if patch.ServiceID != nil {
		service, ok := h.Services.GetByID(*patch.ServiceID)
		if !ok {
			utils.NotFound(c, "Service not found")
			return
		}
		patch.ServiceName = &service.Name
	}

	id := c.Param("id")
	if !h.Appointments.Update(id, patch) {
		utils.NotFound(c, "Appointment not found")
		return
	}

	appointment, _ := h.Appointments.GetByID(id)
	utils.Success(c, "Appointment updated successfully", appointment)
}

// UpdateAppointmentStatusRequest represents the request body for updating an
// appointment's status.
type UpdateAppointmentStatusRequest struct {
	Status models.AppointmentStatus `json:"status" binding:"required,oneof=scheduled confirmed completed cancelled"`
	Notes  string                   `json:"notes"` // Optional notes for status change (e.g., cancellation reason)
}

// UpdateAppointmentStatus handles moving an appointment through its
// lifecycle. Only the legal transitions are accepted: scheduled to confirmed
// to completed, with cancellation from scheduled or confirmed.
func (h *AppointmentHandler) UpdateAppointmentStatus(c *gin.Context) {
	var req UpdateAppointmentStatusRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	id := c.Param("id")
	appointment, ok := h.Appointments.GetByID(id)
	if !ok {
		utils.NotFound(c, "Appointment not found")
		return
	}

	if !appointment.Status.CanTransitionTo(req.Status) {
		utils.BadRequest(c, "Cannot change appointment status from "+string(appointment.Status)+" to "+string(req.Status))
		return
	}

	patch := models.AppointmentPatch{Status: &req.Status}
	if req.Notes != "" {
		patch.Notes = &req.Notes
	}
	h.Appointments.Update(id, patch)

	updated, _ := h.Appointments.GetByID(id)
	utils.Success(c, "Appointment status updated successfully", updated)
}

// DeleteAppointment handles deleting an appointment by ID.
func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	id := c.Param("id")
	if _, ok := h.Appointments.GetByID(id); !ok {
		utils.NotFound(c, "Appointment not found")
		return
	}

	h.Appointments.Delete(id)
	utils.Success(c, "Appointment deleted successfully", nil)
}
