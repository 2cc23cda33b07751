package models

import (
	"time"
)

// AppointmentStatus represents the status of an appointment.
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// CanTransitionTo reports whether a status change is a legal step in the
// appointment lifecycle: scheduled -> confirmed -> completed, with
// cancellation allowed from scheduled or confirmed.
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	switch s {
	case StatusScheduled:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCompleted || next == StatusCancelled
	default:
		return false
	}
}

// Appointment represents a scheduled visit. PatientName and ServiceName are
// snapshots captured when the appointment is written, not live joins; editing
// a patient later does not touch existing appointments.
type Appointment struct {
	ID          string            `json:"id"`
	PatientID   string            `json:"patientId"`
	PatientName string            `json:"patientName"`
	ServiceID   string            `json:"serviceId"`
	ServiceName string            `json:"serviceName"`
	Date        string            `json:"date"` // YYYY-MM-DD
	Time        string            `json:"time"` // HH:MM, 30-minute grid
	Status      AppointmentStatus `json:"status"`
	Notes       string            `json:"notes"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// EntityID returns the record identifier.
func (a Appointment) EntityID() string { return a.ID }

// AppointmentPatch is a partial field set for updating an appointment. The
// name snapshots are set by the caller when the referenced ids change.
type AppointmentPatch struct {
	PatientID   *string            `json:"patientId,omitempty"`
	PatientName *string            `json:"-"`
	ServiceID   *string            `json:"serviceId,omitempty"`
	ServiceName *string            `json:"-"`
	Date        *string            `json:"date,omitempty" binding:"omitempty,datetime=2006-01-02"`
	Time        *string            `json:"time,omitempty"`
	Status      *AppointmentStatus `json:"status,omitempty" binding:"omitempty,oneof=scheduled confirmed completed cancelled"`
	Notes       *string            `json:"notes,omitempty"`
}

// Apply merges the patch over the appointment record.
func (patch AppointmentPatch) Apply(a *Appointment) {
	if patch.PatientID != nil {
		a.PatientID = *patch.PatientID
	}
	if patch.PatientName != nil {
		a.PatientName = *patch.PatientName
	}
	if patch.ServiceID != nil {
		a.ServiceID = *patch.ServiceID
	}
	if patch.ServiceName != nil {
		a.ServiceName = *patch.ServiceName
	}
	if patch.Date != nil {
		a.Date = *patch.Date
	}
	if patch.Time != nil {
		a.Time = *patch.Time
	}
	if patch.Status != nil {
		a.Status = *patch.Status
	}
	if patch.Notes != nil {
		a.Notes = *patch.Notes
	}
}
