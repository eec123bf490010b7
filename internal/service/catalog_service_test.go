package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psds-microservice/repairshop-service/internal/errs"
)

func TestRemoveBrandCascadesModels(t *testing.T) {
	svc := NewCatalogService()
	require.NoError(t, svc.AddBrand("Apple"))
	require.NoError(t, svc.AddBrand("Samsung"))
	_, err := svc.AddModel("iPhone 14", "Apple")
	require.NoError(t, err)
	_, err = svc.AddModel("Galaxy S23", "Samsung")
	require.NoError(t, err)

	require.NoError(t, svc.RemoveBrand("Apple"))

	cat := svc.Snapshot()
	assert.NotContains(t, cat.Brands, "Apple")
	require.Len(t, cat.Models, 1)
	assert.Equal(t, "Galaxy S23", cat.Models[0].Name)
}

func TestUpdateBrandRewritesModelReferences(t *testing.T) {
	svc := NewCatalogService()
	require.NoError(t, svc.AddBrand("Apple"))
	_, err := svc.AddModel("iPhone 14", "Apple")
	require.NoError(t, err)

	require.NoError(t, svc.UpdateBrand("Apple", "Apple Inc."))

	cat := svc.Snapshot()
	assert.Contains(t, cat.Brands, "Apple Inc.")
	assert.NotContains(t, cat.Brands, "Apple")
	require.Len(t, cat.Models, 1, "model count unchanged by a rename")
	assert.Equal(t, "iPhone 14", cat.Models[0].Name)
	assert.Equal(t, "Apple Inc.", cat.Models[0].BrandID)
}

func TestCatalogRemoveMissingValue(t *testing.T) {
	svc := NewCatalogService()
	assert.ErrorIs(t, svc.RemoveDeviceType("Mobile"), errs.ErrNotFound)
	assert.ErrorIs(t, svc.RemoveBrand("Apple"), errs.ErrNotFound)
	assert.ErrorIs(t, svc.RemoveTask("Screen"), errs.ErrNotFound)
	assert.ErrorIs(t, svc.RemoveModel("nope"), errs.ErrNotFound)
}

func TestCatalogAddDoesNotDeduplicate(t *testing.T) {
	// The store appends unconditionally; membership checks are the caller's
	// job.
	svc := NewCatalogService()
	require.NoError(t, svc.AddTask("Screen"))
	require.NoError(t, svc.AddTask("Screen"))
	assert.Len(t, svc.Snapshot().Tasks, 2)
	assert.True(t, svc.HasTask("Screen"))
}

func TestCatalogRenames(t *testing.T) {
	svc := NewCatalogService()
	require.NoError(t, svc.AddDeviceType("PC"))
	require.NoError(t, svc.UpdateDeviceType("PC", "Desktop"))
	assert.ErrorIs(t, svc.UpdateDeviceType("PC", "Desktop"), errs.ErrNotFound)

	require.NoError(t, svc.AddTask("Battery"))
	require.NoError(t, svc.UpdateTask("Battery", "Battery Replacement"))

	cat := svc.Snapshot()
	assert.Equal(t, []string{"Desktop"}, cat.DeviceTypes)
	assert.Equal(t, []string{"Battery Replacement"}, cat.Tasks)
}

func TestModelRename(t *testing.T) {
	svc := NewCatalogService()
	require.NoError(t, svc.AddBrand("Apple"))
	m, err := svc.AddModel("iPhone 13", "Apple")
	require.NoError(t, err)

	require.NoError(t, svc.UpdateModel(m.ID, "iPhone 14"))
	cat := svc.Snapshot()
	require.Len(t, cat.Models, 1)
	assert.Equal(t, "iPhone 14", cat.Models[0].Name)
	assert.Equal(t, "Apple", cat.Models[0].BrandID)
}
