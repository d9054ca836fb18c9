package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/khulna-traveller/travel-api/internal/api/metrics"
	"github.com/khulna-traveller/travel-api/internal/core/domain"
	"github.com/khulna-traveller/travel-api/internal/core/ports"
)

// UserHandler handles HTTP requests for account management.
type UserHandler struct {
	users ports.UserService
}

func NewUserHandler(users ports.UserService) *UserHandler {
	return &UserHandler{users: users}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" validate:"required,email"`
	PhotoURL string `json:"photoURL"`
}

type conflictResponse struct {
	Errors string `json:"errors"`
}

type adminStatusResponse struct {
	Admin bool `json:"admin"`
}

// Register creates a new account.
//
// A duplicate email is reported inside a 200 response, not as an HTTP error:
// the browser client treats it as a form-level notice. Wire compatibility.
//
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Profile details"
// @Success      200   {object}  domain.InsertResult
// @Failure      400   {object}  map[string]string
// @Router       /users [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	res, err := h.users.Register(c.Request().Context(), &domain.User{
		Name:      req.Name,
		Email:     req.Email,
		PhotoURL:  req.PhotoURL,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return c.JSON(http.StatusOK, conflictResponse{Errors: "This email already exist"})
		}
		return err
	}

	metrics.StoreWritesTotal.WithLabelValues("users", "insert").Inc()
	return c.JSON(http.StatusOK, res)
}

// List returns every registered user. Admin only.
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Success      200  {array}   domain.User
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.users.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Get returns a single user by id; an unknown id yields a JSON null.
//
// @Summary      Get a user by id
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  domain.User
// @Failure      400  {object}  map[string]string
// @Router       /users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.users.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusOK, nil)
		}
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// GetByEmail returns a single user by email; unknown emails yield JSON null.
//
// @Summary      Get a user by email
// @Tags         users
// @Produce      json
// @Param        email  path      string  true  "Email address"
// @Success      200    {object}  domain.User
// @Router       /users/email/{email} [get]
func (h *UserHandler) GetByEmail(c echo.Context) error {
	user, err := h.users.GetByEmail(c.Request().Context(), c.Param("email"))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusOK, nil)
		}
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// AdminStatus reports whether the given email holds the admin role. A caller
// may only ask about its own session email.
//
// @Summary      Check admin status for the session's own email
// @Tags         users
// @Produce      json
// @Param        email  path      string  true  "Email address"
// @Success      200    {object}  adminStatusResponse
// @Failure      401    {object}  map[string]string
// @Failure      403    {object}  adminStatusResponse
// @Router       /users/admin/{email} [get]
func (h *UserHandler) AdminStatus(c echo.Context) error {
	claimEmail, err := ctxEmail(c)
	if err != nil {
		return err
	}

	email := c.Param("email")
	if email != claimEmail {
		return c.JSON(http.StatusForbidden, adminStatusResponse{Admin: false})
	}

	isAdmin, err := h.users.IsAdmin(c.Request().Context(), email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, adminStatusResponse{Admin: isAdmin})
}

// UpdateProfile field-merges the payload into the user document, creating it
// when the id is absent. Authenticated; not admin-gated — users maintain
// their own profile.
//
// @Summary      Upsert a user profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path      string           true  "User id"
// @Param        body  body      map[string]any   true  "Profile fields"
// @Success      200   {object}  domain.UpdateResult
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /users/{id} [put]
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	var fields domain.Document
	if err := c.Bind(&fields); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	res, err := h.users.UpdateProfile(c.Request().Context(), c.Param("id"), fields)
	if err != nil {
		return err
	}
	metrics.StoreWritesTotal.WithLabelValues("users", "update").Inc()
	return c.JSON(http.StatusOK, res)
}

// Promote sets the user's role to admin. Admin only.
//
// @Summary      Promote a user to admin
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  domain.UpdateResult
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /users/{id}/promote [patch]
func (h *UserHandler) Promote(c echo.Context) error {
	res, err := h.users.Promote(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	metrics.StoreWritesTotal.WithLabelValues("users", "update").Inc()
	return c.JSON(http.StatusOK, res)
}

// Delete removes a user by id. Deleting an unknown id reports zero affected
// documents rather than an error. Admin only.
//
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  domain.DeleteResult
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	res, err := h.users.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	metrics.StoreWritesTotal.WithLabelValues("users", "delete").Inc()
	return c.JSON(http.StatusOK, res)
}
