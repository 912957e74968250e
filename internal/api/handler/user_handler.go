package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/planisoins/planning-api/internal/core/domain"
	"github.com/planisoins/planning-api/internal/core/ports"
)

// UserHandler handles the admin-only roster management endpoints.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type createUserRequest struct {
	Username string `json:"username" validate:"required,min=2,max=64"`
	Password string `json:"password" validate:"required,min=8"`
}

type usersResponse struct {
	Users []domain.User `json:"users"`
}

// List handles GET /v1/users.
//
// @Summary      List staff accounts
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  usersResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.ListStaff(c.Request().Context())
	if err != nil {
		return err
	}
	if users == nil {
		users = []domain.User{}
	}
	return c.JSON(http.StatusOK, usersResponse{Users: users})
}

// Create handles POST /v1/users.
//
// @Summary      Create a nurse account
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createUserRequest  true  "New account details"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	user, err := h.service.CreateNurse(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, user)
}

// Delete handles DELETE /v1/users/:id. The user's planning entries cascade
// away with the account.
//
// @Summary      Delete a staff account
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "User id"
// @Success      204  "deleted"
// @Failure      404  {object}  errorResponse
// @Router       /v1/users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteUser(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
