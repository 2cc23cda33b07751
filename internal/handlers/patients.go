package handlers

import (
	"strings"
	"time"

	"dental-center-server/internal/models"
	"dental-center-server/internal/repository"
	"dental-center-server/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PatientHandler handles patient record requests.
type PatientHandler struct {
	Patients *repository.PatientRepository
}

// NewPatientHandler creates a new PatientHandler.
func NewPatientHandler(patients *repository.PatientRepository) *PatientHandler {
	return &PatientHandler{Patients: patients}
}

// CreatePatientRequest represents the request body for creating a patient.
type CreatePatientRequest struct {
	FirstName        string `json:"firstName" binding:"required"`
	LastName         string `json:"lastName" binding:"required"`
	Email            string `json:"email" binding:"required,email"`
	Phone            string `json:"phone" binding:"required"`
	DateOfBirth      string `json:"dateOfBirth" binding:"required,datetime=2006-01-02"`
	Address          string `json:"address"`
	EmergencyContact string `json:"emergencyContact"`
	MedicalHistory   string `json:"medicalHistory"`
	Allergies        string `json:"allergies"`
}

// CreatePatient handles creating a new patient record.
func (h *PatientHandler) CreatePatient(c *gin.Context) {
	var req CreatePatientRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	now := time.Now().UTC()
	patient := models.Patient{
		ID:               uuid.New().String(),
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Email:            req.Email,
		Phone:            req.Phone,
		DateOfBirth:      req.DateOfBirth,
		Address:          req.Address,
		EmergencyContact: req.EmergencyContact,
		MedicalHistory:   req.MedicalHistory,
		Allergies:        req.Allergies,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	h.Patients.Add(patient)

	utils.Created(c, "Patient created successfully", patient)
}

// GetPatients handles fetching all patients. An optional ?q= parameter
// filters by name, email, or phone, the same search the patient list offers.
func (h *PatientHandler) GetPatients(c *gin.Context) {
	patients := h.Patients.GetAll()

	if q := strings.ToLower(strings.TrimSpace(c.Query("q"))); q != "" {
		filtered := make([]models.Patient, 0, len(patients))
		for _, p := range patients {
			if strings.Contains(strings.ToLower(p.FullName()), q) ||
				strings.Contains(strings.ToLower(p.Email), q) ||
				strings.Contains(p.Phone, q) {
				filtered = append(filtered, p)
			}
		}
		patients = filtered
	}

	utils.Success(c, "Patients fetched successfully", patients)
}

// GetPatientByID handles fetching a single patient by ID.
func (h *PatientHandler) GetPatientByID(c *gin.Context) {
	patient, ok := h.Patients.GetByID(c.Param("id"))
	if !ok {
		utils.NotFound(c, "Patient not found")
		return
	}
	utils.Success(c, "Patient fetched successfully", patient)
}

// UpdatePatient handles a partial update of a patient record.
func (h *PatientHandler) UpdatePatient(c *gin.Context) {
	var patch models.PatientPatch
	if !utils.BindAndValidate(c, &patch) {
		return
	}

	id := c.Param("id")
	if !h.Patients.Update(id, patch) {
		utils.NotFound(c, "Patient not found")
		return
	}

	patient, _ := h.Patients.GetByID(id)
	utils.Success(c, "Patient updated successfully", patient)
}

// DeletePatient handles deleting a patient by ID.
func (h *PatientHandler) DeletePatient(c *gin.Context) {
	id := c.Param("id")
	if _, ok := h.Patients.GetByID(id); !ok {
		utils.NotFound(c, "Patient not found")
		return
	}

	h.Patients.Delete(id)
	utils.Success(c, "Patient deleted successfully", nil)
}
