package service

import (
	"sync"

	"github.com/google/uuid"

	"github.com/psds-microservice/repairshop-service/internal/errs"
	"github.com/psds-microservice/repairshop-service/internal/model"
)

// CatalogService manages the device taxonomy: device types, brands, models
// and the repair-task vocabulary. Adds append without duplicate checks —
// callers are expected to verify non-membership first. Renames and deletes
// never touch tickets that already reference the old strings; the catalog is
// a vocabulary, not a foreign key.
type CatalogService struct {
	mu      sync.Mutex
	catalog model.Catalog
}

func NewCatalogService() *CatalogService {
	return &CatalogService{}
}

// Snapshot returns a deep copy of the current catalog.
func (s *CatalogService) Snapshot() model.Catalog {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := model.Catalog{
		DeviceTypes: append([]string(nil), s.catalog.DeviceTypes...),
		Brands:      append([]string(nil), s.catalog.Brands...),
		Models:      append([]model.DeviceModel(nil), s.catalog.Models...),
		Tasks:       append([]string(nil), s.catalog.Tasks...),
	}
	return out
}

func (s *CatalogService) AddDeviceType(t string) error {
	if t == "" {
		return errs.Validationf("device type is required")
	}
	s.mu.Lock()
	s.catalog.DeviceTypes = append(s.catalog.DeviceTypes, t)
	s.mu.Unlock()
	return nil
}

func (s *CatalogService) RemoveDeviceType(t string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept, removed := removeString(s.catalog.DeviceTypes, t)
	if !removed {
		return errs.NotFoundf("device type %q", t)
	}
	s.catalog.DeviceTypes = kept
	return nil
}

func (s *CatalogService) UpdateDeviceType(oldType, newType string) error {
	if newType == "" {
		return errs.Validationf("device type is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !renameString(s.catalog.DeviceTypes, oldType, newType) {
		return errs.NotFoundf("device type %q", oldType)
	}
	return nil
}

func (s *CatalogService) AddBrand(b string) error {
	if b == "" {
		return errs.Validationf("brand is required")
	}
	s.mu.Lock()
	s.catalog.Brands = append(s.catalog.Brands, b)
	s.mu.Unlock()
	return nil
}

// RemoveBrand removes the brand and every model referencing it.
func (s *CatalogService) RemoveBrand(b string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept, removed := removeString(s.catalog.Brands, b)
	if !removed {
		return errs.NotFoundf("brand %q", b)
	}
	s.catalog.Brands = kept
	models := s.catalog.Models[:0]
	for _, m := range s.catalog.Models {
		if m.BrandID != b {
			models = append(models, m)
		}
	}
	s.catalog.Models = models
	return nil
}

// UpdateBrand renames the brand and rewrites BrandID on every model that
// referenced the old name. Brand identity is its display string.
func (s *CatalogService) UpdateBrand(oldBrand, newBrand string) error {
	if newBrand == "" {
		return errs.Validationf("brand is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !renameString(s.catalog.Brands, oldBrand, newBrand) {
		return errs.NotFoundf("brand %q", oldBrand)
	}
	for i := range s.catalog.Models {
		if s.catalog.Models[i].BrandID == oldBrand {
			s.catalog.Models[i].BrandID = newBrand
		}
	}
	return nil
}

func (s *CatalogService) AddModel(name, brandID string) (*model.DeviceModel, error) {
	if name == "" {
		return nil, errs.Validationf("model name is required")
	}
	if brandID == "" {
		return nil, errs.Validationf("model brand is required")
	}
	m := model.DeviceModel{ID: uuid.NewString(), Name: name, BrandID: brandID}
	s.mu.Lock()
	s.catalog.Models = append(s.catalog.Models, m)
	s.mu.Unlock()
	return &m, nil
}

func (s *CatalogService) RemoveModel(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.catalog.Models {
		if s.catalog.Models[i].ID == id {
			s.catalog.Models = append(s.catalog.Models[:i], s.catalog.Models[i+1:]...)
			return nil
		}
	}
	return errs.NotFoundf("model %s", id)
}

func (s *CatalogService) UpdateModel(id, name string) error {
	if name == "" {
		return errs.Validationf("model name is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.catalog.Models {
		if s.catalog.Models[i].ID == id {
			s.catalog.Models[i].Name = name
			return nil
		}
	}
	return errs.NotFoundf("model %s", id)
}

func (s *CatalogService) AddTask(t string) error {
	if t == "" {
		return errs.Validationf("task is required")
	}
	s.mu.Lock()
	s.catalog.Tasks = append(s.catalog.Tasks, t)
	s.mu.Unlock()
	return nil
}

func (s *CatalogService) RemoveTask(t string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept, removed := removeString(s.catalog.Tasks, t)
	if !removed {
		return errs.NotFoundf("task %q", t)
	}
	s.catalog.Tasks = kept
	return nil
}

func (s *CatalogService) UpdateTask(oldTask, newTask string) error {
	if newTask == "" {
		return errs.Validationf("task is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !renameString(s.catalog.Tasks, oldTask, newTask) {
		return errs.NotFoundf("task %q", oldTask)
	}
	return nil
}

// HasDeviceType, HasBrand and HasTask are the membership checks callers run
// before adding, since Add* appends unconditionally.
func (s *CatalogService) HasDeviceType(t string) bool { return s.has(func(c *model.Catalog) []string { return c.DeviceTypes }, t) }
func (s *CatalogService) HasBrand(b string) bool      { return s.has(func(c *model.Catalog) []string { return c.Brands }, b) }
func (s *CatalogService) HasTask(t string) bool       { return s.has(func(c *model.Catalog) []string { return c.Tasks }, t) }

func (s *CatalogService) has(field func(*model.Catalog) []string, v string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, x := range field(&s.catalog) {
		if x == v {
			return true
		}
	}
	return false
}

func removeString(xs []string, v string) ([]string, bool) {
	for i, x := range xs {
		if x == v {
			return append(xs[:i], xs[i+1:]...), true
		}
	}
	return xs, false
}

func renameString(xs []string, oldV, newV string) bool {
	for i, x := range xs {
		if x == oldV {
			xs[i] = newV
			return true
		}
	}
	return false
}
