package handler

import (
	"errors"
	"net/http"

	"backend/internal/middleware"
	"backend/internal/service"
	"backend/internal/storage"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type ConfigHandler struct {
	configService service.ConfigService
}

// NewConfigHandler sets up the routing dependencies for site content endpoints
func NewConfigHandler(configService service.ConfigService) *ConfigHandler {
	return &ConfigHandler{configService: configService}
}

// RegisterRoutes binds the endpoints to the gin Engine or RouterGroup
func (h *ConfigHandler) RegisterRoutes(router *gin.RouterGroup) {
	config := router.Group("/config")
	{
		// Public reads power the marketing pages
		config.GET("", h.GetConfigs)
		config.GET("/:id", h.GetConfig)

		// Admin content management
		config.POST("", middleware.RequireAdmin(), h.CreateConfig)
		config.PUT("/order", middleware.RequireAdmin(), h.Reorder)
		config.PUT("/:id", middleware.RequireAdmin(), h.UpdateConfig)
		config.DELETE("/:id", middleware.RequireAdmin(), h.DeleteConfig)
	}

	router.GET("/init", h.InitStatus)
	router.POST("/init", middleware.RequireAdmin(), h.Initialize)
}

// GetConfigs handles GET /config with an optional type filter
// @Summary      List config items
// @Description  Returns active content items of one type ordered for display, or every item when no type is given
// @Tags         config
// @Produce      json
// @Param        type  query     string  false  "Config type filter"
// @Success      200   {object}  response.Response{data=[]model.ConfigItem}
// @Failure      400   {object}  response.Response
// @Router       /config [get]
func (h *ConfigHandler) GetConfigs(c *gin.Context) {
	items, err := h.configService.GetConfigs(c.Query("type"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Fail(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.OK(items, ""))
}

// GetConfig handles GET /config/:id
// @Summary      Get config item
// @Description  Fetch a single content item by ID
// @Tags         config
// @Produce      json
// @Param        id   path      string  true  "Config ID"
// @Success      200  {object}  response.Response{data=model.ConfigItem}
// @Failure      404  {object}  response.Response
// @Router       /config/{id} [get]
func (h *ConfigHandler) GetConfig(c *gin.Context) {
	item, err := h.configService.GetConfig(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, response.Fail("Config not found"))
		return
	}

	c.JSON(http.StatusOK, response.OK(item, ""))
}

// CreateConfig handles POST /config
// @Summary      Create config item
// @Description  Creates a new content item of the given type
// @Tags         config
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      service.CreateConfigRequest  true  "Config Payload"
// @Success      201      {object}  response.Response{data=model.ConfigItem}
// @Failure      400      {object}  response.Response
// @Router       /config [post]
func (h *ConfigHandler) CreateConfig(c *gin.Context) {
	var req service.CreateConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Fail("Invalid request payload: "+err.Error()))
		return
	}

	item, err := h.configService.CreateConfig(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Fail(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.OK(item, "配置已创建"))
}

// UpdateConfig handles PUT /config/:id
// @Summary      Update config item
// @Description  Updates a content item's fields, preserving its ID and creation time
// @Tags         config
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                       true  "Config ID"
// @Param        payload  body      service.UpdateConfigRequest  true  "Config Payload"
// @Success      200      {object}  response.Response{data=model.ConfigItem}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /config/{id} [put]
func (h *ConfigHandler) UpdateConfig(c *gin.Context) {
	var req service.UpdateConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Fail("Invalid request payload: "+err.Error()))
		return
	}

	item, err := h.configService.UpdateConfig(c.Param("id"), req)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, response.Fail("Config not found"))
			return
		}
		c.JSON(http.StatusBadRequest, response.Fail(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.OK(item, "配置已更新"))
}

// DeleteConfig handles DELETE /config/:id
// @Summary      Delete config item
// @Description  Removes a content item
// @Tags         config
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Config ID"
// @Success      200  {object}  response.Response{data=model.ConfigItem}
// @Failure      404  {object}  response.Response
// @Router       /config/{id} [delete]
func (h *ConfigHandler) DeleteConfig(c *gin.Context) {
	item, err := h.configService.DeleteConfig(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, response.Fail("Config not found"))
		return
	}

	c.JSON(http.StatusOK, response.OK(item, "配置已删除"))
}

// Reorder handles PUT /config/order
// @Summary      Reorder config items
// @Description  Applies new display orders to items of one type in a single write
// @Tags         config
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      service.ReorderRequest  true  "Reorder Payload"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Router       /config/order [put]
func (h *ConfigHandler) Reorder(c *gin.Context) {
	var req service.ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Fail("Invalid request payload: "+err.Error()))
		return
	}

	if err := h.configService.Reorder(req); err != nil {
		c.JSON(http.StatusBadRequest, response.Fail(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.OK(nil, "排序已更新"))
}

// InitStatus handles GET /init
// @Summary      Seed status
// @Description  Reports whether the default content catalog still needs seeding
// @Tags         config
// @Produce      json
// @Success      200  {object}  response.Response{data=service.InitStatus}
// @Router       /init [get]
func (h *ConfigHandler) InitStatus(c *gin.Context) {
	c.JSON(http.StatusOK, response.OK(h.configService.Status(), ""))
}

// Initialize handles POST /init
// @Summary      Seed default content
// @Description  Inserts the default content catalog once; subsequent calls are no-ops
// @Tags         config
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=object}
// @Failure      500  {object}  response.Response
// @Router       /init [post]
func (h *ConfigHandler) Initialize(c *gin.Context) {
	inserted, err := h.configService.Initialize()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Fail(err.Error()))
		return
	}

	message := "初始化完成"
	if inserted == 0 {
		message = "数据已存在，跳过初始化"
	}
	c.JSON(http.StatusOK, response.OK(gin.H{"inserted": inserted}, message))
}
