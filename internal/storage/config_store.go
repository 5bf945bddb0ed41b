package storage

import (
	"path/filepath"
	"sort"
	"time"

	"backend/internal/model"
)

// ConfigStore persists CMS content and site settings in configs.json.
type ConfigStore struct {
	*Store[model.ConfigItem, *model.ConfigItem]
}

// OpenConfigStore opens or creates dir/configs.json.
func OpenConfigStore(dir string) (*ConfigStore, error) {
	s, err := Open[model.ConfigItem, *model.ConfigItem](filepath.Join(dir, "configs.json"))
	if err != nil {
		return nil, err
	}
	return &ConfigStore{Store: s}, nil
}

// GetByType returns the active items of one type sorted ascending by
// order, ties resolved by insertion order. Inactive items stay stored but
// never show up here; GetAll returns everything regardless of state.
func (s *ConfigStore) GetByType(t model.ConfigType) []model.ConfigItem {
	out := s.Find(func(c model.ConfigItem) bool {
		return c.Type == t && c.IsActive
	})
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Order < out[j].Order
	})
	return out
}

// GetByTypeAndID returns the item only when both type and id match.
func (s *ConfigStore) GetByTypeAndID(t model.ConfigType, id string) (model.ConfigItem, error) {
	matches := s.Find(func(c model.ConfigItem) bool {
		return c.Type == t && c.ID == id
	})
	if len(matches) == 0 {
		return model.ConfigItem{}, ErrNotFound
	}
	return matches[0], nil
}

// CreateConfig stamps both timestamps and stores the item under a fresh
// id; whatever id the caller put on the item is discarded.
func (s *ConfigStore) CreateConfig(item model.ConfigItem) (model.ConfigItem, error) {
	now := time.Now()
	item.CreatedAt = now
	item.UpdatedAt = now
	return s.Add(item)
}

// UpdateConfig applies mutate to the stored item, refreshing UpdatedAt
// and shielding ID and CreatedAt from the mutator.
func (s *ConfigStore) UpdateConfig(id string, mutate func(*model.ConfigItem)) (model.ConfigItem, error) {
	return s.Update(id, func(c *model.ConfigItem) {
		created := c.CreatedAt
		mutate(c)
		c.ID = id
		c.CreatedAt = created
		c.UpdatedAt = time.Now()
	})
}

// OrderUpdate reassigns one item's position within its type.
type OrderUpdate struct {
	ID    string `json:"id" binding:"required"`
	Order int    `json:"order"`
}

// UpdateOrder batch-reassigns the order field across items of one type
// and persists once, so a drag-and-drop reorder costs a single file
// rewrite. Ids that do not match an item of the type are skipped.
func (s *ConfigStore) UpdateOrder(t model.ConfigType, updates []OrderUpdate) error {
	return s.mutateAll(func(items *[]model.ConfigItem) {
		now := time.Now()
		for _, upd := range updates {
			for i := range *items {
				it := &(*items)[i]
				if it.ID == upd.ID && it.Type == t {
					it.Order = upd.Order
					it.UpdatedAt = now
				}
			}
		}
	})
}
