package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backend/internal/model"
)

func openConfigs(t *testing.T) *ConfigStore {
	t.Helper()
	s, err := OpenConfigStore(t.TempDir())
	require.NoError(t, err)
	return s
}

func addConfig(t *testing.T, s *ConfigStore, typ model.ConfigType, title string, order int, active bool) model.ConfigItem {
	t.Helper()
	item, err := s.CreateConfig(model.ConfigItem{
		Type:        typ,
		Title:       title,
		Description: "desc " + title,
		Content:     "content " + title,
		Order:       order,
		IsActive:    active,
	})
	require.NoError(t, err)
	return item
}

func TestGetByTypeOrdersAndFiltersInactive(t *testing.T) {
	s := openConfigs(t)

	addConfig(t, s, model.ConfigFAQ, "third", 3, true)
	addConfig(t, s, model.ConfigFAQ, "hidden", 1, false)
	addConfig(t, s, model.ConfigFAQ, "first", 1, true)
	addConfig(t, s, model.ConfigFAQ, "second", 2, true)
	addConfig(t, s, model.ConfigService, "other type", 0, true)

	got := s.GetByType(model.ConfigFAQ)
	require.Len(t, got, 3)
	assert.Equal(t, "first", got[0].Title)
	assert.Equal(t, "second", got[1].Title)
	assert.Equal(t, "third", got[2].Title)
}

func TestGetByTypeAndID(t *testing.T) {
	s := openConfigs(t)

	item := addConfig(t, s, model.ConfigCoach, "教练", 0, true)

	got, err := s.GetByTypeAndID(model.ConfigCoach, item.ID)
	require.NoError(t, err)
	assert.Equal(t, item.ID, got.ID)

	// Right id under the wrong type must not match.
	_, err = s.GetByTypeAndID(model.ConfigFAQ, item.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateConfigShieldsIdentity(t *testing.T) {
	s := openConfigs(t)

	item := addConfig(t, s, model.ConfigService, "原标题", 0, true)

	updated, err := s.UpdateConfig(item.ID, func(c *model.ConfigItem) {
		c.ID = "forged"
		c.CreatedAt = time.Time{}
		c.Title = "新标题"
	})
	require.NoError(t, err)

	assert.Equal(t, item.ID, updated.ID)
	assert.True(t, updated.CreatedAt.Equal(item.CreatedAt))
	assert.Equal(t, "新标题", updated.Title)
	assert.True(t, updated.UpdatedAt.After(item.UpdatedAt) || updated.UpdatedAt.Equal(item.UpdatedAt))
}

func TestUpdateOrderBatch(t *testing.T) {
	s := openConfigs(t)

	a := addConfig(t, s, model.ConfigFeature, "a", 1, true)
	b := addConfig(t, s, model.ConfigFeature, "b", 2, true)
	c := addConfig(t, s, model.ConfigFeature, "c", 3, true)
	foreign := addConfig(t, s, model.ConfigFAQ, "faq", 1, true)

	err := s.UpdateOrder(model.ConfigFeature, []OrderUpdate{
		{ID: a.ID, Order: 3},
		{ID: c.ID, Order: 1},
		{ID: foreign.ID, Order: 9}, // wrong type, must be skipped
		{ID: "missing", Order: 5},
	})
	require.NoError(t, err)

	got := s.GetByType(model.ConfigFeature)
	require.Len(t, got, 3)
	assert.Equal(t, c.ID, got[0].ID)
	assert.Equal(t, b.ID, got[1].ID)
	assert.Equal(t, a.ID, got[2].ID)

	untouched, err := s.GetByID(foreign.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, untouched.Order)
}

func TestSeedDefaultConfigsIdempotent(t *testing.T) {
	s := openConfigs(t)

	inserted, err := SeedDefaultConfigs(s)
	require.NoError(t, err)
	assert.Equal(t, len(DefaultConfigItems()), inserted)
	assert.Equal(t, inserted, s.Count())

	// A second run against a populated store is a no-op.
	again, err := SeedDefaultConfigs(s)
	require.NoError(t, err)
	assert.Equal(t, 0, again)
	assert.Equal(t, inserted, s.Count())
}

func TestSeedCatalogContents(t *testing.T) {
	s := openConfigs(t)

	_, err := SeedDefaultConfigs(s)
	require.NoError(t, err)

	packages := s.GetByType(model.ConfigServicePackage)
	require.Len(t, packages, 5)
	ids := map[string]bool{}
	for _, p := range packages {
		require.NotNil(t, p.Extra, "package %q must carry extra data", p.Title)
		require.NotNil(t, p.Extra.Price, "package %q must carry a price", p.Title)
		assert.True(t, p.Extra.Price.IsPositive())
		assert.Greater(t, p.Extra.Duration, 0)
		ids[p.Extra.PackageID] = true
	}
	for _, id := range []string{"basic", "standard", "premium", "group", "online"} {
		assert.True(t, ids[id], "missing seeded package %q", id)
	}

	assert.NotEmpty(t, s.GetByType(model.ConfigCoach))
	assert.NotEmpty(t, s.GetByType(model.ConfigFAQ))
	assert.NotEmpty(t, s.GetByType(model.ConfigSystemSettings))
}
