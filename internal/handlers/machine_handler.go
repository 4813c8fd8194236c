package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "vendstock/internal/errors"
	"vendstock/internal/pagination"
	"vendstock/internal/services"
)

// MachineHandler handles machine-related requests.
type MachineHandler struct {
	machineService services.MachineServicer
	auditService   services.AuditServicer
}

// NewMachineHandler creates a new MachineHandler.
func NewMachineHandler(machineService services.MachineServicer, auditService services.AuditServicer) *MachineHandler {
	return &MachineHandler{machineService: machineService, auditService: auditService}
}

// RegisterMachineRequest represents the request payload for registering a machine.
type RegisterMachineRequest struct {
	Name     string `json:"name" binding:"required,entity_name,max=50"`
	Location string `json:"location" binding:"max=100"`
}

// UpdateMachineRequest represents the request payload for updating a machine.
type UpdateMachineRequest struct {
	Name     string `json:"name" binding:"required,entity_name,max=50"`
	Location string `json:"location" binding:"max=100"`
}

// RegisterMachine handles the registration of a new vending machine
// @Summary     Register a machine
// @Description Register a new vending machine with a unique name
// @Tags        machines
// @Accept      json
// @Produce     json
// @Param       request body RegisterMachineRequest true "Machine details"
// @Success     201 {object} models.Machine "Machine created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     409 {object} ErrorResponse "Duplicate machine name"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /machines [post]
func (h *MachineHandler) RegisterMachine(c *gin.Context) {
	var req RegisterMachineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	machine, err := h.machineService.RegisterMachine(req.Name, req.Location)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("REGISTER_MACHINE", "machine", machine.ID, c.ClientIP(),
		map[string]interface{}{"name": req.Name, "location": req.Location})

	c.JSON(http.StatusCreated, gin.H{"machine": machine})
}

// GetMachine handles retrieving a single machine by ID
// @Summary     Get a machine
// @Description Get a vending machine by its ID
// @Tags        machines
// @Produce     json
// @Param       id path int true "Machine ID"
// @Success     200 {object} models.Machine "Machine"
// @Failure     404 {object} ErrorResponse "Machine not found"
// @Router      /machines/{id} [get]
func (h *MachineHandler) GetMachine(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	machine, err := h.machineService.GetMachineByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"machine": machine})
}

// ListMachines handles listing all machines
// @Summary     List machines
// @Description List all vending machines, paginated
// @Tags        machines
// @Produce     json
// @Param       page query int false "Page number"
// @Param       page_size query int false "Page size"
// @Success     200 {object} pagination.PageResponse[models.Machine] "Machines"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /machines [get]
func (h *MachineHandler) ListMachines(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	machines, err := h.machineService.ListMachines(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, machines)
}

// UpdateMachine handles updating a machine's name and location
// @Summary     Update a machine
// @Description Update a vending machine's name and location
// @Tags        machines
// @Accept      json
// @Produce     json
// @Param       id path int true "Machine ID"
// @Param       request body UpdateMachineRequest true "Machine details"
// @Success     200 {object} models.Machine "Updated machine"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Machine not found"
// @Failure     409 {object} ErrorResponse "Duplicate machine name"
// @Router      /machines/{id} [put]
func (h *MachineHandler) UpdateMachine(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateMachineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	machine, err := h.machineService.UpdateMachine(id, req.Name, req.Location)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("UPDATE_MACHINE", "machine", machine.ID, c.ClientIP(),
		map[string]interface{}{"name": req.Name, "location": req.Location})

	c.JSON(http.StatusOK, gin.H{"machine": machine})
}

// DeleteMachine handles deleting a machine
// @Summary     Delete a machine
// @Description Delete a vending machine that has no products stocked in it
// @Tags        machines
// @Produce     json
// @Param       id path int true "Machine ID"
// @Success     204 "Machine deleted"
// @Failure     404 {object} ErrorResponse "Machine not found"
// @Failure     409 {object} ErrorResponse "Machine still has products"
// @Router      /machines/{id} [delete]
func (h *MachineHandler) DeleteMachine(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.machineService.DeleteMachine(id); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("DELETE_MACHINE", "machine", id, c.ClientIP(), nil)

	c.Status(http.StatusNoContent)
}
