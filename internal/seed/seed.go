// Package seed populates empty storage slots with demonstration data on
// first run. Each slot is checked independently; a slot that has ever been
// written, even with an empty list, is left alone.
package seed

import (
	"time"

	"dental-center-server/internal/models"
	"dental-center-server/internal/storage"
)

// DemoPatients is the first-run patient list.
var DemoPatients = []models.Patient{
	{
		ID:               "1",
		FirstName:        "John",
		LastName:         "Doe",
		Email:            "john.doe@email.com",
		Phone:            "1234567890",
		DateOfBirth:      "1985-05-10",
		Address:          "123 Main St, Anytown, ST 12345",
		EmergencyContact: "Jane Doe - +1 (555) 123-4568",
		MedicalHistory:   "No significant medical history",
		Allergies:        "None known",
		CreatedAt:        time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
		UpdatedAt:        time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
	},
	{
		ID:               "2",
		FirstName:        "Sarah",
		LastName:         "Johnson",
		Email:            "sarah.johnson@email.com",
		Phone:            "+1 (555) 234-5678",
		DateOfBirth:      "1990-07-22",
		Address:          "456 Oak Ave, Somewhere, ST 67890",
		EmergencyContact: "Mike Johnson - +1 (555) 234-5679",
		MedicalHistory:   "Hypertension, managed with medication",
		Allergies:        "Penicillin",
		CreatedAt:        time.Date(2024, 1, 10, 14, 30, 0, 0, time.UTC),
		UpdatedAt:        time.Date(2024, 1, 10, 14, 30, 0, 0, time.UTC),
	},
	{
		ID:               "3",
		FirstName:        "Michael",
		LastName:         "Brown",
		Email:            "michael.brown@email.com",
		Phone:            "+1 (555) 345-6789",
		DateOfBirth:      "1978-11-08",
		Address:          "789 Pine Rd, Elsewhere, ST 13579",
		EmergencyContact: "Lisa Brown - +1 (555) 345-6790",
		MedicalHistory:   "Diabetes Type 2",
		Allergies:        "Latex",
		CreatedAt:        time.Date(2024, 1, 5, 9, 15, 0, 0, time.UTC),
		UpdatedAt:        time.Date(2024, 1, 5, 9, 15, 0, 0, time.UTC),
	},
}

// DemoServices is the first-run service catalog.
var DemoServices = []models.Service{
	{
		ID:          "1",
		Name:        "Regular Cleaning",
		Description: "Professional dental cleaning and examination",
		Duration:    60,
		Price:       125,
		Category:    models.CategoryGeneral,
		IsActive:    true,
	},
	{
		ID:          "2",
		Name:        "Teeth Whitening",
		Description: "Professional teeth whitening treatment",
		Duration:    90,
		Price:       350,
		Category:    models.CategoryCosmetic,
		IsActive:    true,
	},
	{
		ID:          "3",
		Name:        "Dental Filling",
		Description: "Composite or amalgam filling for cavities",
		Duration:    45,
		Price:       180,
		Category:    models.CategoryGeneral,
		IsActive:    true,
	},
	{
		ID:          "4",
		Name:        "Root Canal Treatment",
		Description: "Endodontic treatment for infected tooth",
		Duration:    120,
		Price:       850,
		Category:    models.CategoryGeneral,
		IsActive:    true,
	},
	{
		ID:          "5",
		Name:        "Dental Crown",
		Description: "Porcelain or metal crown restoration",
		Duration:    90,
		Price:       1200,
		Category:    models.CategoryGeneral,
		IsActive:    true,
	},
	{
		ID:          "6",
		Name:        "Orthodontic Consultation",
		Description: "Initial consultation for braces or aligners",
		Duration:    45,
		Price:       150,
		Category:    models.CategoryOrthodontics,
		IsActive:    true,
	},
}

// DemoAppointments is the first-run appointment book.
var DemoAppointments = []models.Appointment{
	{
		ID:          "1",
		PatientID:   "1",
		PatientName: "John Doe",
		ServiceID:   "1",
		ServiceName: "Regular Cleaning",
		Date:        "2024-02-15",
		Time:        "09:00",
		Status:      models.StatusScheduled,
		Notes:       "Patient prefers morning appointments",
		CreatedAt:   time.Date(2024, 1, 20, 10, 0, 0, 0, time.UTC),
		UpdatedAt:   time.Date(2024, 1, 20, 10, 0, 0, 0, time.UTC),
	},
	{
		ID:          "2",
		PatientID:   "2",
		PatientName: "Sarah Johnson",
		ServiceID:   "3",
		ServiceName: "Dental Filling",
		Date:        "2024-02-16",
		Time:        "14:30",
		Status:      models.StatusConfirmed,
		Notes:       "Filling for upper left molar",
		CreatedAt:   time.Date(2024, 1, 18, 15, 30, 0, 0, time.UTC),
		UpdatedAt:   time.Date(2024, 1, 18, 15, 30, 0, 0, time.UTC),
	},
}

// Initialize writes the demo lists into any slot that has never been
// written. Idempotent: later runs see the slots as present and do nothing.
func Initialize(store *storage.Store) {
	if !store.Has(storage.KeyPatients) {
		storage.SetList(store, storage.KeyPatients, DemoPatients)
	}
	if !store.Has(storage.KeyServices) {
		storage.SetList(store, storage.KeyServices, DemoServices)
	}
	if !store.Has(storage.KeyAppointments) {
		storage.SetList(store, storage.KeyAppointments, DemoAppointments)
	}
}
