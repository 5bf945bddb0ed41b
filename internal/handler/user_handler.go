package handler

import (
	"errors"
	"net/http"

	"backend/internal/middleware"
	"backend/internal/service"
	"backend/internal/storage"
	"backend/pkg/pagination"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService service.UserService
}

// NewUserHandler sets up the routing dependencies for auth and user endpoints
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// RegisterRoutes binds the endpoints to the gin Engine or RouterGroup
func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup) {
	// Public routes
	router.POST("/register", h.Register)
	router.POST("/login", h.Login)
	router.POST("/admin/login", h.AdminLogin)
	router.POST("/logout", h.Logout)

	// Admin-managed users routes
	users := router.Group("/users")
	{
		users.POST("/check-name", h.CheckName)
		users.GET("", middleware.RequireAdmin(), h.ListUsers)
		users.GET("/:id", middleware.RequireAdmin(), h.GetUserByID)
		users.GET("/:id/details", middleware.RequireAdmin(), h.GetUserDetails)
		users.PUT("/:id", middleware.RequireAdmin(), h.UpdateUser)
		users.DELETE("/:id", middleware.RequireAdmin(), h.DeleteUser)
	}
}

// Register handles POST /register to create a member account
// @Summary      Register user
// @Description  Creates a member account with a unique name, email and phone
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.RegisterRequest  true  "Registration Payload"
// @Success      201      {object}  response.Response{data=service.UserResponse}
// @Failure      400      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Router       /register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req service.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Fail("Invalid request payload: "+err.Error()))
		return
	}

	user, err := h.userService.Register(req)
	if err != nil {
		if errors.Is(err, service.ErrConflict) {
			c.JSON(http.StatusConflict, response.Fail(err.Error()))
			return
		}
		c.JSON(http.StatusBadRequest, response.Fail(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.OK(user, "注册成功"))
}

// Login handles POST /login to authenticate a member
// @Summary      Login user
// @Description  Authenticates a member by email and password, returning a JWT token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.LoginRequest  true  "Login Credentials"
// @Success      200      {object}  response.Response{data=service.AuthResponse}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Fail("Invalid request payload"))
		return
	}

	auth, err := h.userService.Login(req)
	if err != nil {
		if errors.Is(err, service.ErrUnknownEmail) {
			c.JSON(http.StatusNotFound, response.Fail(err.Error()))
			return
		}
		c.JSON(http.StatusUnauthorized, response.Fail(service.ErrInvalidCredentials.Error()))
		return
	}

	middleware.SetAuthCookie(c, auth.Token)
	c.JSON(http.StatusOK, response.OK(auth, "登录成功"))
}

// AdminLogin handles POST /admin/login for back-office access
// @Summary      Admin login
// @Description  Authenticates the administrator account, returning an admin JWT token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.AdminLoginRequest  true  "Admin Credentials"
// @Success      200      {object}  response.Response{data=object}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Router       /admin/login [post]
func (h *UserHandler) AdminLogin(c *gin.Context) {
	var req service.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Fail("Invalid request payload"))
		return
	}

	token, err := h.userService.AdminLogin(req)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.Fail(err.Error()))
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusOK, response.OK(gin.H{"token": token}, "登录成功"))
}

// Logout handles POST /logout to clear the auth cookie
// @Summary      Logout
// @Description  Clears the access token cookie
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /logout [post]
func (h *UserHandler) Logout(c *gin.Context) {
	middleware.ClearAuthCookie(c)
	c.JSON(http.StatusOK, response.OK(nil, "Logged out"))
}

// CheckName handles POST /users/check-name for registration forms
// @Summary      Check name availability
// @Description  Reports whether a display name is still free to register
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        payload  body      object{name=string}  true  "Name to check"
// @Success      200      {object}  response.Response{data=object}
// @Failure      400      {object}  response.Response
// @Router       /users/check-name [post]
func (h *UserHandler) CheckName(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Fail("Invalid request payload"))
		return
	}

	c.JSON(http.StatusOK, response.OK(gin.H{
		"available": h.userService.NameAvailable(req.Name),
	}, ""))
}

// ListUsers handles GET /users and extracts pagination controls
// @Summary      List users
// @Description  Retrieves a paginated list of registered members
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page number (default 1)"
// @Param        limit  query     int  false  "Number of items per page (default 10)"
// @Success      200    {object}  response.Response{data=object}
// @Failure      500    {object}  response.Response
// @Router       /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	params := pagination.Parse(c)

	users, total, err := h.userService.ListUsers(params.Page, params.Limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Fail("Failed to fetch users"))
		return
	}

	c.JSON(http.StatusOK, response.OK(gin.H{
		"users": users,
		"total": total,
		"page":  params.Page,
		"limit": params.Limit,
	}, ""))
}

// GetUserByID handles GET /users/:id
// @Summary      Get user by ID
// @Description  Fetch a single member by their UUID
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  response.Response{data=service.UserResponse}
// @Failure      404  {object}  response.Response
// @Router       /users/{id} [get]
func (h *UserHandler) GetUserByID(c *gin.Context) {
	user, err := h.userService.GetUser(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, response.Fail("User not found"))
		return
	}

	c.JSON(http.StatusOK, response.OK(user, ""))
}

// GetUserDetails handles GET /users/:id/details with booking history and spend totals
// @Summary      Get user details
// @Description  Fetch a member together with their booking history and spend statistics
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  response.Response{data=service.UserDetails}
// @Failure      404  {object}  response.Response
// @Router       /users/{id}/details [get]
func (h *UserHandler) GetUserDetails(c *gin.Context) {
	details, err := h.userService.UserDetails(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, response.Fail("User not found"))
		return
	}

	c.JSON(http.StatusOK, response.OK(details, ""))
}

// UpdateUser handles PUT /users/:id
// @Summary      Update user
// @Description  Updates a member's profile fields, re-checking uniqueness on change
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                     true  "User ID"
// @Param        payload  body      service.UpdateUserRequest  true  "Update User Payload"
// @Success      200      {object}  response.Response{data=service.UserResponse}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Router       /users/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req service.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Fail("Invalid request payload"))
		return
	}

	user, err := h.userService.UpdateUser(c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			c.JSON(http.StatusNotFound, response.Fail("User not found"))
		case errors.Is(err, service.ErrConflict):
			c.JSON(http.StatusConflict, response.Fail(err.Error()))
		default:
			c.JSON(http.StatusBadRequest, response.Fail(err.Error()))
		}
		return
	}

	c.JSON(http.StatusOK, response.OK(user, "用户信息已更新"))
}

// DeleteUser handles DELETE /users/:id, cascading to the member's bookings
// @Summary      Delete user
// @Description  Deletes a member and every booking made under their phone number
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  response.Response{data=service.DeleteUserResult}
// @Failure      404  {object}  response.Response
// @Router       /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	result, err := h.userService.DeleteUser(c.Param("id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, response.Fail("User not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.Fail(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.OK(result, "用户已删除"))
}
