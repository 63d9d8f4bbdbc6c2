package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

// NewApplicationHandler registers the application workflow routes.
func NewApplicationHandler(protected *gin.RouterGroup, applicationUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	jobs := protected.Group("/jobs")
	{
		jobs.POST("/:id/apply", middleware.RequireRoles(domain.RoleSeeker), handler.Apply)
		jobs.GET("/:id/applications", middleware.RequireRoles(domain.RoleCompany), handler.ListForJob)
	}

	applications := protected.Group("/applications")
	{
		applications.GET("", middleware.RequireRoles(domain.RoleSeeker), handler.ListMine)
		applications.PUT("/:id/status", middleware.RequireRoles(domain.RoleCompany, domain.RoleAdmin), handler.UpdateStatus)
	}
}

// Apply godoc
// @Summary      Apply to a job
// @Description  Seeker only; a second apply for the same job returns 409
// @Tags         applications
// @Produce      json
// @Param        id  path      int  true  "Job ID"
// @Success      201 {object}  response.Response{data=domain.Application}
// @Failure      403 {object}  response.Response
// @Failure      404 {object}  response.Response
// @Failure      409 {object}  response.Response
// @Router       /jobs/{id}/apply [post]
// @Security     BearerAuth
func (h *ApplicationHandler) Apply(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))

	jobID, err := parseID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	app, err := h.applicationUC.Apply(c.Request.Context(), userID, role, jobID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Application submitted successfully", app)
}

// ListMine godoc
// @Summary      List my applications
// @Description  Seeker's own applications, newest first, with job and employer projections
// @Tags         applications
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Application}
// @Router       /applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListMine(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))

	applications, err := h.applicationUC.ListForSeeker(c.Request.Context(), userID, role)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applications retrieved", applications)
}

// ListForJob godoc
// @Summary      List applications for a job
// @Description  Owning company or admin; each row carries the seeker's public profile
// @Tags         applications
// @Produce      json
// @Param        id  path      int  true  "Job ID"
// @Success      200 {object}  response.Response{data=[]domain.Application}
// @Failure      404 {object}  response.Response
// @Router       /jobs/{id}/applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListForJob(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))

	jobID, err := parseID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	applications, err := h.applicationUC.ListForJob(c.Request.Context(), userID, role, jobID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applications retrieved", applications)
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateStatus godoc
// @Summary      Update application status
// @Description  Job's owning company or admin; status must be Shortlisted, Interviewed, Hired or Rejected
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id    path      int                  true  "Application ID"
// @Param        body  body      UpdateStatusRequest  true  "New status"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /applications/{id}/status [put]
// @Security     BearerAuth
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))

	id, err := parseID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.applicationUC.UpdateStatus(c.Request.Context(), userID, role, id, req.Status); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application status updated", nil)
}
