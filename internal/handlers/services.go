package handlers

import (
	"dental-center-server/internal/models"
	"dental-center-server/internal/repository"
	"dental-center-server/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ServiceHandler handles service catalog requests.
type ServiceHandler struct {
	Services *repository.ServiceRepository
}

// NewServiceHandler creates a new ServiceHandler.
func NewServiceHandler(services *repository.ServiceRepository) *ServiceHandler {
	return &ServiceHandler{Services: services}
}

// CreateServiceRequest represents the request body for adding a catalog entry.
type CreateServiceRequest struct {
	Name        string                 `json:"name" binding:"required"`
	Description string                 `json:"description"`
	Duration    int                    `json:"duration" binding:"required,gt=0"`
	Price       float64                `json:"price" binding:"gte=0"`
	Category    models.ServiceCategory `json:"category" binding:"required,oneof=general cosmetic orthodontics surgery emergency"`
	IsActive    *bool                  `json:"isActive"`
}

// CreateService handles adding a service to the catalog. New services are
// active unless the request says otherwise.
func (h *ServiceHandler) CreateService(c *gin.Context) {
	var req CreateServiceRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	service := models.Service{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Description: req.Description,
		Duration:    req.Duration,
		Price:       req.Price,
		Category:    req.Category,
		IsActive:    active,
	}
	h.Services.Add(service)

	utils.Created(c, "Service created successfully", service)
}

// GetServices handles fetching the catalog. Optional ?category= and
// ?active=true|false parameters filter at the call site; the repository
// itself only knows GetAll.
func (h *ServiceHandler) GetServices(c *gin.Context) {
	services := h.Services.GetAll()

	category := c.Query("category")
	active := c.Query("active")
	if category != "" || active != "" {
		filtered := make([]models.Service, 0, len(services))
		for _, s := range services {
			if category != "" && string(s.Category) != category {
				continue
			}
			if active == "true" && !s.IsActive {
				continue
			}
			if active == "false" && s.IsActive {
				continue
			}
			filtered = append(filtered, s)
		}
		services = filtered
	}

	utils.Success(c, "Services fetched successfully", services)
}

// GetServiceByID handles fetching a single service by ID.
func (h *ServiceHandler) GetServiceByID(c *gin.Context) {
	service, ok := h.Services.GetByID(c.Param("id"))
	if !ok {
		utils.NotFound(c, "Service not found")
		return
	}
	utils.Success(c, "Service fetched successfully", service)
}

// UpdateService handles a partial update of a catalog entry.
func (h *ServiceHandler) UpdateService(c *gin.Context) {
	var patch models.ServicePatch
	if !utils.BindAndValidate(c, &patch) {
		return
	}

	id := c.Param("id")
	if !h.Services.Update(id, patch) {
		utils.NotFound(c, "Service not found")
		return
	}

	service, _ := h.Services.GetByID(id)
	utils.Success(c, "Service updated successfully", service)
}

// DeleteService handles deleting a service by ID.
func (h *ServiceHandler) DeleteService(c *gin.Context) {
	id := c.Param("id")
	if _, ok := h.Services.GetByID(id); !ok {
		utils.NotFound(c, "Service not found")
		return
	}

	h.Services.Delete(id)
	utils.Success(c, "Service deleted successfully", nil)
}
