package service

import (
	"errors"
	"fmt"
	"log"

	"backend/internal/model"
	"backend/internal/storage"
)

// DTOs for request validation
type CreateConfigRequest struct {
	Type        model.ConfigType   `json:"type" binding:"required"`
	Title       string             `json:"title" binding:"required,min=2"`
	Description string             `json:"description" binding:"required,min=5"`
	Content     string             `json:"content" binding:"required,min=10"`
	Image       string             `json:"image"`
	Order       int                `json:"order"`
	IsActive    *bool              `json:"isActive"`
	Extra       *model.ConfigExtra `json:"extra"`
}

type UpdateConfigRequest struct {
	Title       string             `json:"title" binding:"required,min=2"`
	Description string             `json:"description" binding:"required,min=5"`
	Content     string             `json:"content" binding:"required,min=10"`
	Image       string             `json:"image"`
	Order       *int               `json:"order"`
	IsActive    *bool              `json:"isActive"`
	Extra       *model.ConfigExtra `json:"extra"`
}

type ReorderRequest struct {
	Type    model.ConfigType      `json:"type" binding:"required"`
	Updates []storage.OrderUpdate `json:"updates" binding:"required,min=1,dive"`
}

type InitStatus struct {
	NeedsInitialization bool `json:"needsInitialization"`
	ConfigCount         int  `json:"configCount"`
}

// ConfigService owns the content CRUD behind the admin config screens
// and the first-boot seeding of the default catalog.
type ConfigService interface {
	GetConfigs(configType string) ([]model.ConfigItem, error)
	GetConfig(id string) (*model.ConfigItem, error)
	CreateConfig(req CreateConfigRequest) (*model.ConfigItem, error)
	UpdateConfig(id string, req UpdateConfigRequest) (*model.ConfigItem, error)
	DeleteConfig(id string) (*model.ConfigItem, error)
	Reorder(req ReorderRequest) error
	Initialize() (int, error)
	Status() InitStatus
}

type configService struct {
	configs *storage.ConfigStore
}

func NewConfigService(configs *storage.ConfigStore) ConfigService {
	return &configService{configs: configs}
}

// GetConfigs returns the active, ordered items of one type, or every
// stored item (any state) when configType is empty.
func (s *configService) GetConfigs(configType string) ([]model.ConfigItem, error) {
	if configType == "" {
		return s.configs.GetAll(), nil
	}
	t := model.ConfigType(configType)
	if !t.Valid() {
		return nil, fmt.Errorf("invalid config type %q", configType)
	}
	return s.configs.GetByType(t), nil
}

func (s *configService) GetConfig(id string) (*model.ConfigItem, error) {
	item, err := s.configs.GetByID(id)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *configService) CreateConfig(req CreateConfigRequest) (*model.ConfigItem, error) {
	if !req.Type.Valid() {
		return nil, fmt.Errorf("invalid config type %q", req.Type)
	}
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	item, err := s.configs.CreateConfig(model.ConfigItem{
		Type:        req.Type,
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
		Image:       req.Image,
		Order:       req.Order,
		IsActive:    active,
		Extra:       req.Extra,
	})
	if err != nil {
		return nil, err
	}
	log.Printf("config created: id=%s type=%s title=%s", item.ID, item.Type, item.Title)
	return &item, nil
}

func (s *configService) UpdateConfig(id string, req UpdateConfigRequest) (*model.ConfigItem, error) {
	item, err := s.configs.UpdateConfig(id, func(c *model.ConfigItem) {
		c.Title = req.Title
		c.Description = req.Description
		c.Content = req.Content
		c.Image = req.Image
		if req.Order != nil {
			c.Order = *req.Order
		}
		if req.IsActive != nil {
			c.IsActive = *req.IsActive
		}
		if req.Extra != nil {
			c.Extra = req.Extra
		}
	})
	if err != nil {
		return nil, err
	}
	log.Printf("config updated: id=%s type=%s title=%s", item.ID, item.Type, item.Title)
	return &item, nil
}

func (s *configService) DeleteConfig(id string) (*model.ConfigItem, error) {
	item, err := s.configs.Delete(id)
	if err != nil {
		return nil, err
	}
	log.Printf("config deleted: id=%s type=%s title=%s", item.ID, item.Type, item.Title)
	return &item, nil
}

func (s *configService) Reorder(req ReorderRequest) error {
	if !req.Type.Valid() {
		return errors.New("invalid config type")
	}
	return s.configs.UpdateOrder(req.Type, req.Updates)
}

func (s *configService) Initialize() (int, error) {
	return storage.SeedDefaultConfigs(s.configs)
}

func (s *configService) Status() InitStatus {
	count := s.configs.Count()
	return InitStatus{NeedsInitialization: count == 0, ConfigCount: count}
}
