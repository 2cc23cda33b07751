package models

import (
	"time"
)

// Patient represents a patient record in the clinic.
type Patient struct {
	ID               string    `json:"id"`
	FirstName        string    `json:"firstName"`
	LastName         string    `json:"lastName"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	DateOfBirth      string    `json:"dateOfBirth"` // YYYY-MM-DD
	Address          string    `json:"address"`
	EmergencyContact string    `json:"emergencyContact"`
	MedicalHistory   string    `json:"medicalHistory"`
	Allergies        string    `json:"allergies"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// EntityID returns the record identifier.
func (p Patient) EntityID() string { return p.ID }

// FullName returns the patient's display name as captured on appointment
// snapshots.
func (p Patient) FullName() string {
	return p.FirstName + " " + p.LastName
}

// PatientPatch is a partial field set for updating a patient. Nil fields are
// left untouched by the merge.
type PatientPatch struct {
	FirstName        *string `json:"firstName,omitempty"`
	LastName         *string `json:"lastName,omitempty"`
	Email            *string `json:"email,omitempty" binding:"omitempty,email"`
	Phone            *string `json:"phone,omitempty"`
	DateOfBirth      *string `json:"dateOfBirth,omitempty" binding:"omitempty,datetime=2006-01-02"`
	Address          *string `json:"address,omitempty"`
	EmergencyContact *string `json:"emergencyContact,omitempty"`
	MedicalHistory   *string `json:"medicalHistory,omitempty"`
	Allergies        *string `json:"allergies,omitempty"`
}

// Apply merges the patch over the patient record.
func (patch PatientPatch) Apply(p *Patient) {
	if patch.FirstName != nil {
		p.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		p.LastName = *patch.LastName
	}
	if patch.Email != nil {
		p.Email = *patch.Email
	}
	if patch.Phone != nil {
		p.Phone = *patch.Phone
	}
	if patch.DateOfBirth != nil {
		p.DateOfBirth = *patch.DateOfBirth
	}
	if patch.Address != nil {
		p.Address = *patch.Address
	}
	if patch.EmergencyContact != nil {
		p.EmergencyContact = *patch.EmergencyContact
	}
	if patch.MedicalHistory != nil {
		p.MedicalHistory = *patch.MedicalHistory
	}
	if patch.Allergies != nil {
		p.Allergies = *patch.Allergies
	}
}
