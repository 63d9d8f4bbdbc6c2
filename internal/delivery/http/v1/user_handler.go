package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userUC domain.UserUsecase
}

// NewUserHandler registers the role directory and the admin-only user
// management routes.
func NewUserHandler(protected *gin.RouterGroup, userUC domain.UserUsecase) {
	handler := &UserHandler{userUC: userUC}

	protected.GET("/users", handler.ListByRole)

	admin := protected.Group("/admin")
	admin.Use(middleware.RequireRoles(domain.RoleAdmin))
	{
		admin.GET("/users", handler.ListAll)
		admin.DELETE("/users/:id", handler.Delete)
	}
}

// ListByRole godoc
// @Summary      List users by role
// @Description  Role directory, e.g. ?role=company for the companies page
// @Tags         users
// @Produce      json
// @Param        role  query     string  true  "seeker | company | admin"
// @Success      200   {object}  response.Response{data=[]domain.User}
// @Failure      400   {object}  response.Response
// @Router       /users [get]
// @Security     BearerAuth
func (h *UserHandler) ListByRole(c *gin.Context) {
	users, err := h.userUC.ListByRole(c.Request.Context(), c.Query("role"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Users retrieved", users)
}

// ListAll godoc
// @Summary      List all users (admin)
// @Tags         users
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.User}
// @Failure      403  {object}  response.Response
// @Router       /admin/users [get]
// @Security     BearerAuth
func (h *UserHandler) ListAll(c *gin.Context) {
	users, err := h.userUC.ListAll(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Users retrieved", users)
}

// Delete godoc
// @Summary      Delete a user (admin)
// @Tags         users
// @Produce      json
// @Param        id  path      string  true  "User ID"
// @Success      200 {object}  response.Response
// @Failure      403 {object}  response.Response
// @Failure      404 {object}  response.Response
// @Router       /admin/users/{id} [delete]
// @Security     BearerAuth
func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.userUC.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "User removed successfully", nil)
}
