package v1

import (
	"net/http"
	"strconv"

	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

// NewJobHandler registers the public listing/detail routes and the
// role-gated posting lifecycle routes.
func NewJobHandler(public *gin.RouterGroup, protected *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	publicJobs := public.Group("/jobs")
	{
		publicJobs.GET("", handler.List)
		publicJobs.GET("/:id", handler.GetDetails)
	}

	protectedJobs := protected.Group("/jobs")
	{
		protectedJobs.POST("", middleware.RequireRoles(domain.RoleCompany), handler.Create)
		protectedJobs.PUT("/:id", middleware.RequireRoles(domain.RoleCompany), handler.Update)
		protectedJobs.DELETE("/:id", middleware.RequireRoles(domain.RoleCompany, domain.RoleAdmin), handler.Delete)
	}

	// Kept outside /jobs so the static segment cannot collide with :id.
	protected.GET("/employer/jobs", middleware.RequireRoles(domain.RoleCompany), handler.ListByEmployer)
}

type CreateJobRequest struct {
	Title           string  `json:"title" binding:"required"`
	Description     string  `json:"description" binding:"required"`
	Location        string  `json:"location" binding:"required"`
	SalaryMin       float64 `json:"salaryMin" binding:"min=0"`
	SalaryMax       float64 `json:"salaryMax" binding:"min=0"`
	JobType         string  `json:"jobType" binding:"required,oneof=Full-time Part-time Contract Internship"`
	LocationType    string  `json:"locationType" binding:"required,oneof=On-site Remote Hybrid"`
	ExperienceLevel string  `json:"experienceLevel" binding:"required"`
}

// List godoc
// @Summary      List job postings
// @Description  Public listing with optional filters
// @Tags         jobs
// @Produce      json
// @Param        keyword          query  string  false  "Matches title or location"
// @Param        type             query  string  false  "Employment type"
// @Param        minSalary        query  number  false  "Salary floor"
// @Param        experienceLevel  query  string  false  "Experience level"
// @Param        companyName      query  string  false  "Company name substring"
// @Success      200  {object}  response.Response{data=[]domain.JobWithEmployer}
// @Router       /jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	filter := domain.JobFilter{
		Keyword:         c.Query("keyword"),
		JobType:         c.Query("type"),
		ExperienceLevel: c.Query("experienceLevel"),
		CompanyName:     c.Query("companyName"),
	}
	if raw := c.Query("minSalary"); raw != "" {
		minSalary, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.Error(apperror.BadRequest("Invalid minSalary"))
			return
		}
		filter.MinSalary = &minSalary
	}

	jobs, err := h.jobUC.ListJobs(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Jobs retrieved", jobs)
}

// GetDetails godoc
// @Summary      Get a job posting
// @Tags         jobs
// @Produce      json
// @Param        id  path      int  true  "Job ID"
// @Success      200 {object}  response.Response{data=domain.JobWithEmployer}
// @Failure      404 {object}  response.Response
// @Router       /jobs/{id} [get]
func (h *JobHandler) GetDetails(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	job, err := h.jobUC.GetJobDetails(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job retrieved", job)
}

// Create godoc
// @Summary      Create a job posting
// @Description  Company only
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        body  body      CreateJobRequest  true  "Job posting"
// @Success      201   {object}  response.Response{data=domain.Job}
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Router       /jobs [post]
// @Security     BearerAuth
func (h *JobHandler) Create(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	job := &domain.Job{
		Title:           req.Title,
		Description:     req.Description,
		Location:        req.Location,
		SalaryMin:       req.SalaryMin,
		SalaryMax:       req.SalaryMax,
		JobType:         req.JobType,
		LocationType:    req.LocationType,
		ExperienceLevel: req.ExperienceLevel,
	}

	if err := h.jobUC.CreateJob(c.Request.Context(), userID, job); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job created", job)
}

// Update godoc
// @Summary      Update a job posting
// @Description  Owner only; absent fields are left unchanged
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id    path      int               true  "Job ID"
// @Param        body  body      domain.JobUpdate  true  "Fields to update"
// @Success      200   {object}  response.Response{data=domain.Job}
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /jobs/{id} [put]
// @Security     BearerAuth
func (h *JobHandler) Update(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	id, err := parseID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	var req domain.JobUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	job, err := h.jobUC.UpdateJob(c.Request.Context(), userID, id, &req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job updated", job)
}

// Delete godoc
// @Summary      Delete a job posting
// @Description  Owner or admin; cascades to its applications
// @Tags         jobs
// @Produce      json
// @Param        id  path      int  true  "Job ID"
// @Success      200 {object}  response.Response
// @Failure      403 {object}  response.Response
// @Failure      404 {object}  response.Response
// @Router       /jobs/{id} [delete]
// @Security     BearerAuth
func (h *JobHandler) Delete(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))

	id, err := parseID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.jobUC.DeleteJob(c.Request.Context(), userID, role, id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job removed", nil)
}

// ListByEmployer godoc
// @Summary      List my job postings
// @Tags         jobs
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Job}
// @Router       /employer/jobs [get]
// @Security     BearerAuth
func (h *JobHandler) ListByEmployer(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	jobs, err := h.jobUC.ListJobsByEmployer(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Jobs retrieved", jobs)
}

func parseID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, apperror.BadRequest("Invalid " + name)
	}
	return id, nil
}
