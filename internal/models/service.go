package models

// ServiceCategory represents the treatment category of a service.
type ServiceCategory string

const (
	CategoryGeneral      ServiceCategory = "general"
	CategoryCosmetic     ServiceCategory = "cosmetic"
	CategoryOrthodontics ServiceCategory = "orthodontics"
	CategorySurgery      ServiceCategory = "surgery"
	CategoryEmergency    ServiceCategory = "emergency"
)

// Service represents an offered treatment in the clinic's catalog.
type Service struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Duration    int             `json:"duration"` // minutes
	Price       float64         `json:"price"`
	Category    ServiceCategory `json:"category"`
	IsActive    bool            `json:"isActive"`
}

// EntityID returns the record identifier.
func (s Service) EntityID() string { return s.ID }

// ServicePatch is a partial field set for updating a service.
type ServicePatch struct {
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	Duration    *int             `json:"duration,omitempty" binding:"omitempty,gt=0"`
	Price       *float64         `json:"price,omitempty" binding:"omitempty,gte=0"`
	Category    *ServiceCategory `json:"category,omitempty" binding:"omitempty,oneof=general cosmetic orthodontics surgery emergency"`
	IsActive    *bool            `json:"isActive,omitempty"`
}

// Apply merges the patch over the service record.
func (patch ServicePatch) Apply(s *Service) {
	if patch.Name != nil {
		s.Name = *patch.Name
	}
	if patch.Description != nil {
		s.Description = *patch.Description
	}
	if patch.Duration != nil {
		s.Duration = *patch.Duration
	}
	if patch.Price != nil {
		s.Price = *patch.Price
	}
	if patch.Category != nil {
		s.Category = *patch.Category
	}
	if patch.IsActive != nil {
		s.IsActive = *patch.IsActive
	}
}
