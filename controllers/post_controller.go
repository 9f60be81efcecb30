package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"skatelog/middleware"
	"skatelog/models"
	"skatelog/services"
	"skatelog/utils"

	"github.com/gin-gonic/gin"
)

type PostController struct {
	postService    *services.PostService
	commentService *services.CommentService
	uploadDir      string
}

func NewPostController(postService *services.PostService, commentService *services.CommentService, uploadDir string) *PostController {
	return &PostController{
		postService:    postService,
		commentService: commentService,
		uploadDir:      uploadDir,
	}
}

// List renders the post listing, optionally narrowed by the `query`
// prefecture filter.
func (pc *PostController) List(c *gin.Context) {
	query := c.Query("query")

	posts, err := pc.postService.ListPosts(query)
	if err != nil {
		renderError(c, http.StatusInternalServerError, "Failed to load posts")
		return
	}

	c.HTML(http.StatusOK, "list.html", gin.H{
		"Posts":       posts,
		"Prefectures": models.Prefectures(),
		"Query":       query,
	})
}

// Detail renders a post with its comments, the comment form and the
// current weather for the skatepark's prefecture.
func (pc *PostController) Detail(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}

	detail, err := pc.postService.GetPostDetail(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			renderError(c, http.StatusNotFound, "Post not found")
			return
		}
		renderError(c, http.StatusInternalServerError, "Failed to load post")
		return
	}

	pc.renderDetail(c, detail, nil, "")
}

// SubmitComment validates and appends a comment. A validation failure
// redisplays the same detail page with field errors; success redirects
// back to the detail page.
func (pc *PostController) SubmitComment(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}
	userID, _ := middleware.UserID(c)

	var form models.CommentForm
	if err := c.ShouldBind(&form); err != nil {
		detail, derr := pc.postService.GetPostDetail(c.Request.Context(), id)
		if derr != nil {
			if errors.Is(derr, services.ErrNotFound) {
				renderError(c, http.StatusNotFound, "Post not found")
				return
			}
			renderError(c, http.StatusInternalServerError, "Failed to load post")
			return
		}
		pc.renderDetail(c, detail, utils.FormErrors(err), form.Body)
		return
	}

	if _, err := pc.commentService.Create(id, userID, &form); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			renderError(c, http.StatusNotFound, "Post not found")
			return
		}
		renderError(c, http.StatusInternalServerError, "Failed to save comment")
		return
	}

	c.Redirect(http.StatusFound, "/posts/detail/"+strconv.FormatUint(uint64(id), 10))
}

// CreateForm renders the empty post + skatepark forms.
func (pc *PostController) CreateForm(c *gin.Context) {
	c.HTML(http.StatusOK, "create.html", gin.H{
		"Prefectures": models.Prefectures(),
		"PostForm":    models.PostForm{},
		"ParkForm":    models.SkateparkForm{},
	})
}

// Create validates both forms. Either one failing redisplays the page
// with both error maps and nothing persisted; success creates the
// skatepark and post together and redirects to the listing.
func (pc *PostController) Create(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	var postForm models.PostForm
	var parkForm models.SkateparkForm

	postErrors := map[string]string{}
	parkErrors := map[string]string{}
	if err := c.ShouldBind(&postForm); err != nil {
		postErrors = utils.FormErrors(err)
	}
	if err := c.ShouldBind(&parkForm); err != nil {
		parkErrors = utils.FormErrors(err)
	}

	if len(postErrors) > 0 || len(parkErrors) > 0 {
		c.HTML(http.StatusOK, "create.html", gin.H{
			"Prefectures": models.Prefectures(),
			"PostForm":    postForm,
			"ParkForm":    parkForm,
			"PostErrors":  postErrors,
			"ParkErrors":  parkErrors,
		})
		return
	}

	imagePath, err := pc.saveImage(c)
	if err != nil {
		renderError(c, http.StatusInternalServerError, "Failed to save image")
		return
	}
	parkForm.Image = imagePath

	if _, err := pc.postService.CreatePost(userID, &postForm, &parkForm); err != nil {
		renderError(c, http.StatusInternalServerError, "Failed to create post")
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// saveImage stores an uploaded skatepark photo and returns its path.
// The upload is optional; a request without one yields an empty path.
func (pc *PostController) saveImage(c *gin.Context) (string, error) {
	file, err := c.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return "", nil
		}
		return "", err
	}

	name := fmt.Sprintf("%d_%s", time.Now().UnixNano(), filepath.Base(file.Filename))
	dst := filepath.Join(pc.uploadDir, name)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		return "", err
	}
	return dst, nil
}

// DeleteConfirm renders the delete confirmation page. Only the author
// gets this far; anyone else is sent back to the detail page.
func (pc *PostController) DeleteConfirm(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}
	userID, _ := middleware.UserID(c)

	post, err := pc.postService.GetPost(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			renderError(c, http.StatusNotFound, "Post not found")
			return
		}
		renderError(c, http.StatusInternalServerError, "Failed to load post")
		return
	}

	if post.AuthorID != userID {
		c.Redirect(http.StatusFound, "/posts/detail/"+strconv.FormatUint(uint64(id), 10))
		return
	}

	c.HTML(http.StatusOK, "delete.html", gin.H{
		"Post": post,
	})
}

// Delete removes the post and redirects to the listing. A non-author
// is redirected to the detail page with the post intact.
func (pc *PostController) Delete(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}
	userID, _ := middleware.UserID(c)

	if err := pc.postService.DeletePost(id, userID); err != nil {
		switch {
		case errors.Is(err, services.ErrNotOwner):
			c.Redirect(http.StatusFound, "/posts/detail/"+strconv.FormatUint(uint64(id), 10))
		case errors.Is(err, services.ErrNotFound):
			renderError(c, http.StatusNotFound, "Post not found")
		default:
			renderError(c, http.StatusInternalServerError, "Failed to delete post")
		}
		return
	}

	c.Redirect(http.StatusFound, "/")
}

func (pc *PostController) renderDetail(c *gin.Context, detail *services.PostDetail, formErrors map[string]string, body string) {
	c.HTML(http.StatusOK, "detail.html", gin.H{
		"Post":        detail.Post,
		"Comments":    detail.Comments,
		"Weather":     detail.Weather,
		"Prefectures": models.Prefectures(),
		"CommentBody": body,
		"FormErrors":  formErrors,
	})
}

func postID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		renderError(c, http.StatusNotFound, "Post not found")
		return 0, false
	}
	return uint(id), true
}

func renderError(c *gin.Context, status int, message string) {
	c.HTML(status, "error.html", gin.H{
		"Status":  status,
		"Message": message,
	})
}
