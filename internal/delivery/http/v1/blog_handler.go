package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type BlogHandler struct {
	blogUC domain.BlogUsecase
}

// NewBlogHandler registers the feed routes. The feed itself is public;
// everything that writes requires an identity.
func NewBlogHandler(public *gin.RouterGroup, protected *gin.RouterGroup, blogUC domain.BlogUsecase) {
	handler := &BlogHandler{blogUC: blogUC}

	public.GET("/blog", handler.Feed)

	blog := protected.Group("/blog")
	{
		blog.POST("", handler.CreatePost)
		blog.PUT("/:id", handler.UpdatePost)
		blog.DELETE("/:id", handler.DeletePost)
		blog.PUT("/:id/react", handler.React)
		blog.POST("/:id/comment", handler.AddComment)
		blog.PUT("/:id/comment/:commentId", handler.UpdateComment)
		blog.DELETE("/:id/comment/:commentId", handler.DeleteComment)
	}
}

type CreatePostRequest struct {
	Content  string  `json:"content" binding:"required"`
	ImageURL *string `json:"imageUrl"`
}

type ReactRequest struct {
	Type string `json:"type" binding:"required"`
}

type CommentRequest struct {
	Content string `json:"content" binding:"required"`
}

type UpdateCommentRequest struct {
	Content string `json:"content"`
}

// Feed godoc
// @Summary      Get the feed
// @Description  All posts newest-first with current author identity, comments and reactions
// @Tags         blog
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.BlogPost}
// @Router       /blog [get]
func (h *BlogHandler) Feed(c *gin.Context) {
	posts, err := h.blogUC.Feed(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Feed retrieved", posts)
}

// CreatePost godoc
// @Summary      Create a post
// @Tags         blog
// @Accept       json
// @Produce      json
// @Param        body  body      CreatePostRequest  true  "Post content"
// @Success      201   {object}  response.Response{data=domain.BlogPost}
// @Failure      400   {object}  response.Response
// @Router       /blog [post]
// @Security     BearerAuth
func (h *BlogHandler) CreatePost(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	post, err := h.blogUC.CreatePost(c.Request.Context(), userID, req.Content, req.ImageURL)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "New blog post created", post)
}

// UpdatePost godoc
// @Summary      Update a post
// @Description  Author or admin; an explicit empty imageUrl clears the image
// @Tags         blog
// @Accept       json
// @Produce      json
// @Param        id    path      int                true  "Post ID"
// @Param        body  body      domain.PostUpdate  true  "Fields to update"
// @Success      200   {object}  response.Response{data=domain.BlogPost}
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /blog/{id} [put]
// @Security     BearerAuth
func (h *BlogHandler) UpdatePost(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))

	postID, err := parseID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	var req domain.PostUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	post, err := h.blogUC.UpdatePost(c.Request.Context(), userID, role, postID, &req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Post updated", post)
}

// DeletePost godoc
// @Summary      Delete a post
// @Tags         blog
// @Param        id  path  int  true  "Post ID"
// @Success      204
// @Failure      403 {object}  response.Response
// @Failure      404 {object}  response.Response
// @Router       /blog/{id} [delete]
// @Security     BearerAuth
func (h *BlogHandler) DeletePost(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))

	postID, err := parseID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.blogUC.DeletePost(c.Request.Context(), userID, role, postID); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

// React godoc
// @Summary      React to a post
// @Description  Toggle semantics: same type removes, different type overwrites
// @Tags         blog
// @Accept       json
// @Produce      json
// @Param        id    path      int           true  "Post ID"
// @Param        body  body      ReactRequest  true  "Reaction type"
// @Success      200   {object}  response.Response{data=domain.BlogPost}
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /blog/{id}/react [put]
// @Security     BearerAuth
func (h *BlogHandler) React(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	postID, err := parseID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	var req ReactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	post, err := h.blogUC.React(c.Request.Context(), userID, postID, req.Type)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Reaction updated", post)
}

// AddComment godoc
// @Summary      Comment on a post
// @Tags         blog
// @Accept       json
// @Produce      json
// @Param        id    path      int             true  "Post ID"
// @Param        body  body      CommentRequest  true  "Comment content"
// @Success      200   {object}  response.Response{data=domain.BlogPost}
// @Failure      404   {object}  response.Response
// @Router       /blog/{id}/comment [post]
// @Security     BearerAuth
func (h *BlogHandler) AddComment(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	postID, err := parseID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	post, err := h.blogUC.AddComment(c.Request.Context(), userID, postID, req.Content)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Comment added", post)
}

// UpdateComment godoc
// @Summary      Update a comment
// @Tags         blog
// @Accept       json
// @Produce      json
// @Param        id         path      int                   true  "Post ID"
// @Param        commentId  path      int                   true  "Comment ID"
// @Param        body       body      UpdateCommentRequest  true  "New content"
// @Success      200        {object}  response.Response{data=domain.BlogPost}
// @Failure      403        {object}  response.Response
// @Failure      404        {object}  response.Response
// @Router       /blog/{id}/comment/{commentId} [put]
// @Security     BearerAuth
func (h *BlogHandler) UpdateComment(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))

	postID, err := parseID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}
	commentID, err := parseID(c, "commentId")
	if err != nil {
		c.Error(err)
		return
	}

	var req UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	post, err := h.blogUC.UpdateComment(c.Request.Context(), userID, role, postID, commentID, req.Content)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Comment updated", post)
}

// DeleteComment godoc
// @Summary      Delete a comment
// @Tags         blog
// @Produce      json
// @Param        id         path      int  true  "Post ID"
// @Param        commentId  path      int  true  "Comment ID"
// @Success      200        {object}  response.Response{data=domain.BlogPost}
// @Failure      403        {object}  response.Response
// @Failure      404        {object}  response.Response
// @Router       /blog/{id}/comment/{commentId} [delete]
// @Security     BearerAuth
func (h *BlogHandler) DeleteComment(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))

	postID, err := parseID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}
	commentID, err := parseID(c, "commentId")
	if err != nil {
		c.Error(err)
		return
	}

	post, err := h.blogUC.DeleteComment(c.Request.Context(), userID, role, postID, commentID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Comment removed", post)
}
