package handlers

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"blog-api/internal/config"
	"blog-api/internal/middleware"
	"blog-api/internal/models"
	"blog-api/internal/requests"
	"blog-api/internal/services"
	"blog-api/pkg/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostHandler struct {
	db      *gorm.DB
	uploads *services.UploadService
}

func NewPostHandler(db *gorm.DB, uploads *services.UploadService) *PostHandler {
	return &PostHandler{db: db, uploads: uploads}
}

// preloadAuthor limits the embedded author to its public fields.
func preloadAuthor(db *gorm.DB) *gorm.DB {
	return db.Select("id", "full_name", "image")
}

// Create handles post creation by the authenticated caller
func (h *PostHandler) Create(c *fiber.Ctx) error {
	user, ok := middleware.AuthenticatedUser(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, config.Messages.Auth.Error.TokenRequired, nil)
	}

	var input requests.CreatePostRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, config.Messages.Validation.Error.InvalidRequest, err)
	}

	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Content) == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, config.Messages.Post.Error.TitleContentRequired, nil)
	}

	if input.Category != "" && !models.IsValidCategory(input.Category) {
		message := fmt.Sprintf(config.Messages.Post.Error.InvalidCategory, strings.Join(models.PostCategories, ", "))
		return utils.ErrorResponse(c, fiber.StatusBadRequest, message, nil)
	}

	image := input.Image
	if ref, err := h.saveUploadedImage(c); err != nil {
		return h.uploadErrorResponse(c, err)
	} else if ref != "" {
		image = ref
	}

	post := models.Post{
		Title:    strings.TrimSpace(input.Title),
		Content:  input.Content,
		Excerpt:  strings.TrimSpace(input.Excerpt),
		Image:    image,
		Category: input.Category,
		AuthorID: user.ID,
	}

	if input.Published {
		post.Publish(time.Now())
	}

	if err := h.db.Create(&post).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, config.Messages.Server.Error.Internal, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, config.Messages.Post.Success.Created, fiber.Map{
		"post": post,
	})
}

// List returns all published, non-deleted posts, newest first
func (h *PostHandler) List(c *fiber.Ctx) error {
	var posts []models.Post
	err := h.db.
		Where("published = ? AND is_deleted = ?", true, false).
		Preload("Author", preloadAuthor).
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, config.Messages.Server.Error.Internal, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "", fiber.Map{
		"count": len(posts),
		"posts": posts,
	})
}

// MyPosts returns the caller's own posts. The listing mode is explicit:
// scope=all (default) includes drafts, scope=published does not.
func (h *PostHandler) MyPosts(c *fiber.Ctx) error {
	user, ok := middleware.AuthenticatedUser(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, config.Messages.Auth.Error.TokenRequired, nil)
	}

	query := h.db.
		Where("author_id = ? AND is_deleted = ?", user.ID, false).
		Order("created_at DESC")

	if c.Query("scope", "all") == "published" {
		query = query.Where("published = ?", true)
	}

	var posts []models.Post
	if err := query.Find(&posts).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, config.Messages.Server.Error.Internal, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "", fiber.Map{
		"count": len(posts),
		"posts": posts,
	})
}

// Get returns a single post. Drafts are visible to their author only.
func (h *PostHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, config.Messages.Post.Error.InvalidID, nil)
	}

	var post models.Post
	result := h.db.Preload("Author", preloadAuthor).First(&post, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, config.Messages.Post.Error.NotFound, nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, config.Messages.Server.Error.Internal, result.Error)
	}

	// Soft-deleted posts are gone as far as the public surface is concerned
	if post.IsDeleted {
		return utils.ErrorResponse(c, fiber.StatusNotFound, config.Messages.Post.Error.NotFound, nil)
	}

	viewer, authenticated := middleware.AuthenticatedUser(c)
	isAuthor := authenticated && viewer.ID == post.AuthorID

	if !post.Published && !isAuthor {
		return utils.ErrorResponse(c, fiber.StatusForbidden, config.Messages.Post.Error.NotPublished, nil)
	}

	if post.Published && !isAuthor {
		if err := h.db.Model(&models.Post{}).
			Where("id = ?", post.ID).
			UpdateColumn("views", gorm.Expr("views + ?", 1)).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, config.Messages.Server.Error.Internal, err)
		}
		post.Views++
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "", fiber.Map{
		"post": post,
	})
}

// Update applies a partial update to the caller's own post
func (h *PostHandler) Update(c *fiber.Ctx) error {
	user, ok := middleware.AuthenticatedUser(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, config.Messages.Auth.Error.TokenRequired, nil)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, config.Messages.Post.Error.InvalidID, nil)
	}

	var post models.Post
	result := h.db.First(&post, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, config.Messages.Post.Error.NotFound, nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, config.Messages.Server.Error.Internal, result.Error)
	}

	if post.AuthorID != user.ID {
		return utils.ErrorResponse(c, fiber.StatusForbidden, config.Messages.Post.Error.NotAuthor, nil)
	}

	var input requests.UpdatePostRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, config.Messages.Validation.Error.InvalidRequest, err)
	}

	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, config.Messages.Post.Error.TitleContentRequired, nil)
		}
		post.Title = strings.TrimSpace(*input.Title)
	}
	if input.Content != nil {
		if strings.TrimSpace(*input.Content) == "" {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, config.Messages.Post.Error.TitleContentRequired, nil)
		}
		post.Content = *input.Content
	}
	if input.Excerpt != nil {
		post.Excerpt = strings.TrimSpace(*input.Excerpt)
	}
	if input.Category != nil {
		if *input.Category != "" && !models.IsValidCategory(*input.Category) {
			message := fmt.Sprintf(config.Messages.Post.Error.InvalidCategory, strings.Join(models.PostCategories, ", "))
			return utils.ErrorResponse(c, fiber.StatusBadRequest, message, nil)
		}
		post.Category = *input.Category
	}

	// A freshly uploaded file wins over an image URL in the body; replacing a
	// locally-stored upload releases the old file first.
	newImage := ""
	if ref, err := h.saveUploadedImage(c); err != nil {
		return h.uploadErrorResponse(c, err)
	} else if ref != "" {
		newImage = ref
	} else if input.Image != nil {
		newImage = *input.Image
	}
	if newImage != "" && newImage != post.Image {
		if h.uploads.IsLocal(post.Image) {
			if err := h.uploads.Delete(post.Image); err != nil {
				return utils.ErrorResponse(c, fiber.StatusInternalServerError, config.Messages.Server.Error.Internal, err)
			}
		}
		post.Image = newImage
	}

	if input.Published != nil {
		if *input.Published {
			post.Publish(time.Now())
		} else {
			post.Unpublish()
		}
	}

	if err := h.db.Save(&post).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, config.Messages.Server.Error.Internal, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, config.Messages.Post.Success.Updated, fiber.Map{
		"post": post,
	})
}

// Delete hard-removes the caller's own post and releases its local image
func (h *PostHandler) Delete(c *fiber.Ctx) error {
	user, ok := middleware.AuthenticatedUser(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, config.Messages.Auth.Error.TokenRequired, nil)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, config.Messages.Post.Error.InvalidID, nil)
	}

	var post models.Post
	result := h.db.First(&post, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, config.Messages.Post.Error.NotFound, nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, config.Messages.Server.Error.Internal, result.Error)
	}

	if post.AuthorID != user.ID {
		return utils.ErrorResponse(c, fiber.StatusForbidden, config.Messages.Post.Error.NotAuthor, nil)
	}

	if err := h.db.Delete(&post).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, config.Messages.Server.Error.Internal, err)
	}

	if h.uploads.IsLocal(post.Image) {
		if err := h.uploads.Delete(post.Image); err != nil {
			utils.LogError("release post image", err)
		}
	}

	return utils.SuccessResponse(c, fiber.StatusOK, config.Messages.Post.Success.Deleted, nil)
}

// saveUploadedImage stores the multipart "image" file when one was sent.
// It returns an empty reference when the request carries no file.
func (h *PostHandler) saveUploadedImage(c *fiber.Ctx) (string, error) {
	file, err := c.FormFile("image")
	if err != nil {
		return "", nil
	}
	return h.uploads.SaveImage(file)
}

func (h *PostHandler) uploadErrorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrFileTooLarge):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, config.Messages.Upload.Error.TooLarge, nil)
	case errors.Is(err, services.ErrUnsupportedImage):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, config.Messages.Upload.Error.UnsupportedType, nil)
	default:
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, config.Messages.Server.Error.Internal, err)
	}
}
