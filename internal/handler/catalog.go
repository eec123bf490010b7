package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/psds-microservice/repairshop-service/internal/service"
)

// CatalogHandler exposes the device taxonomy. The store appends without
// duplicate checks, so the handler performs the membership check the intake
// forms used to do before adding.
type CatalogHandler struct {
	svc *service.CatalogService
}

func NewCatalogHandler(svc *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

func (h *CatalogHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Snapshot())
}

type catalogValueRequest struct {
	Value string `json:"value" binding:"required"`
}

type catalogRenameRequest struct {
	Old string `json:"old" binding:"required"`
	New string `json:"new" binding:"required"`
}

func (h *CatalogHandler) AddDeviceType(c *gin.Context) {
	var req catalogValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	if h.svc.HasDeviceType(req.Value) {
		c.JSON(http.StatusOK, gin.H{"value": req.Value, "existed": true})
		return
	}
	if err := h.svc.AddDeviceType(req.Value); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"value": req.Value})
}

func (h *CatalogHandler) RemoveDeviceType(c *gin.Context) {
	if err := h.svc.RemoveDeviceType(c.Param("value")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) RenameDeviceType(c *gin.Context) {
	var req catalogRenameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	if err := h.svc.UpdateDeviceType(req.Old, req.New); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"value": req.New})
}

func (h *CatalogHandler) AddBrand(c *gin.Context) {
	var req catalogValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	if h.svc.HasBrand(req.Value) {
		c.JSON(http.StatusOK, gin.H{"value": req.Value, "existed": true})
		return
	}
	if err := h.svc.AddBrand(req.Value); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"value": req.Value})
}

// RemoveBrand also drops every model of that brand (cascading delete).
func (h *CatalogHandler) RemoveBrand(c *gin.Context) {
	if err := h.svc.RemoveBrand(c.Param("value")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) RenameBrand(c *gin.Context) {
	var req catalogRenameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	if err := h.svc.UpdateBrand(req.Old, req.New); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"value": req.New})
}

type addModelRequest struct {
	Name    string `json:"name" binding:"required"`
	BrandID string `json:"brand_id" binding:"required"`
}

func (h *CatalogHandler) AddModel(c *gin.Context) {
	var req addModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	m, err := h.svc.AddModel(req.Name, req.BrandID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, m)
}

func (h *CatalogHandler) RemoveModel(c *gin.Context) {
	if err := h.svc.RemoveModel(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type renameModelRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *CatalogHandler) RenameModel(c *gin.Context) {
	var req renameModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	if err := h.svc.UpdateModel(c.Param("id"), req.Name); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "name": req.Name})
}

func (h *CatalogHandler) AddTask(c *gin.Context) {
	var req catalogValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	if h.svc.HasTask(req.Value) {
		c.JSON(http.StatusOK, gin.H{"value": req.Value, "existed": true})
		return
	}
	if err := h.svc.AddTask(req.Value); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"value": req.Value})
}

func (h *CatalogHandler) RemoveTask(c *gin.Context) {
	if err := h.svc.RemoveTask(c.Param("value")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) RenameTask(c *gin.Context) {
	var req catalogRenameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	if err := h.svc.UpdateTask(req.Old, req.New); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"value": req.New})
}
