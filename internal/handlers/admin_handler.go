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
	"blog-api/pkg/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AdminHandler struct {
	db *gorm.DB
}

func NewAdminHandler(db *gorm.DB) *AdminHandler {
	return &AdminHandler{db: db}
}

func preloadModerator(db *gorm.DB) *gorm.DB {
	return db.Select("id", "full_name", "email")
}

func preloadAuthorAdmin(db *gorm.DB) *gorm.DB {
	return db.Select("id", "full_name", "email", "image", "status")
}

// ListUsers returns users matching the given status/role/search filters
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	query := h.db.Model(&models.User{}).Order("created_at DESC")

	if status := c.Query("status"); status != "" && models.IsValidUserStatus(status) {
		query = query.Where("status = ?", status)
	}
	if role := c.Query("role"); role != "" && models.IsValidRole(role) {
		query = query.Where("role = ?", role)
	}
	if search := c.Query("search"); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(full_name) LIKE ? OR LOWER(email) LIKE ?", pattern, pattern)
	}

	var users []models.User
	if err := query.Find(&users).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, config.Messages.Server.Error.Internal, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "", fiber.Map{
		"count": len(users),
		"users": users,
	})
}

// ListPosts returns posts for moderation, including drafts and, on request,
// soft-deleted ones.
func (h *AdminHandler) ListPosts(c *fiber.Ctx) error {
	query := h.db.Model(&models.Post{}).
		Preload("Author", preloadAuthorAdmin).
		Preload("DeletedBy", preloadModerator).
		Order("created_at DESC")

	if published := c.Query("published"); published != "" {
		query = query.Where("published = ?", published == "true")
	}
	// By default, show only non-deleted posts
	if isDeleted := c.Query("isDeleted"); isDeleted != "" {
		query = query.Where("is_deleted = ?", isDeleted == "true")
	} else {
		query = query.Where("is_deleted = ?", false)
	}
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if author := c.Query("author"); author != "" {
		pattern := "%" + strings.ToLower(author) + "%"
		query = query.Where(
			"author_id IN (?)",
			h.db.Model(&models.User{}).Select("id").Where("LOWER(full_name) LIKE ?", pattern),
		)
	}
	if search := c.Query("search"); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(content) LIKE ?", pattern, pattern)
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

// SoftDelete marks a post deleted without removing the record
func (h *AdminHandler) SoftDelete(c *fiber.Ctx) error {
	admin, ok := middleware.AuthenticatedUser(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, config.Messages.Auth.Error.TokenRequired, nil)
	}

	var input requests.SoftDeletePostRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, config.Messages.Validation.Error.InvalidRequest, err)
	}

	if !models.IsValidDeletionReason(input.Reason) {
		message := fmt.Sprintf(config.Messages.Post.Error.InvalidReason, joinReasons())
		return utils.ErrorResponse(c, fiber.StatusBadRequest, message, nil)
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

	if post.IsDeleted {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, config.Messages.Post.Error.AlreadyDeleted, nil)
	}

	// All four moderation columns move in one update
	columns := post.SoftDelete(admin.ID, models.DeletionReason(input.Reason), time.Now())
	if err := h.db.Model(&post).Updates(columns).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, config.Messages.Server.Error.Internal, err)
	}

	deleted, err := h.reloadPost(post.ID)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, config.Messages.Server.Error.Internal, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, config.Messages.Post.Success.Deleted, fiber.Map{
		"post": deleted,
	})
}

// Restore reverses a soft delete
func (h *AdminHandler) Restore(c *fiber.Ctx) error {
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

	if !post.IsDeleted {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, config.Messages.Post.Error.NotDeleted, nil)
	}

	if err := h.db.Model(&post).Updates(post.Restore()).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, config.Messages.Server.Error.Internal, err)
	}

	restored, err := h.reloadPost(post.ID)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, config.Messages.Server.Error.Internal, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, config.Messages.Post.Success.Restored, fiber.Map{
		"post": restored,
	})
}

// UpdateUserStatus suspends, bans or reactivates a user account
func (h *AdminHandler) UpdateUserStatus(c *fiber.Ctx) error {
	admin, ok := middleware.AuthenticatedUser(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, config.Messages.Auth.Error.TokenRequired, nil)
	}

	var input requests.UpdateUserStatusRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, config.Messages.Validation.Error.InvalidRequest, err)
	}

	if !models.IsValidUserStatus(input.Status) {
		message := fmt.Sprintf(config.Messages.Admin.Error.InvalidStatus,
			strings.Join([]string{string(models.StatusActive), string(models.StatusSuspended), string(models.StatusBanned)}, ", "))
		return utils.ErrorResponse(c, fiber.StatusBadRequest, message, nil)
	}

	id, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, config.Messages.Admin.Error.InvalidUserID, nil)
	}

	var user models.User
	result := h.db.First(&user, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, config.Messages.Admin.Error.UserNotFound, nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, config.Messages.Server.Error.Internal, result.Error)
	}

	// Admins cannot moderate themselves or each other
	if user.ID == admin.ID {
		return utils.ErrorResponse(c, fiber.StatusForbidden, config.Messages.Admin.Error.OwnStatus, nil)
	}
	if user.Role == models.RoleAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, config.Messages.Admin.Error.AdminStatus, nil)
	}

	var reason *string
	if input.Reason != "" {
		reason = &input.Reason
	}

	columns := user.SetStatus(models.UserStatus(input.Status), reason, time.Now())
	if err := h.db.Model(&user).Updates(columns).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, config.Messages.Server.Error.Internal, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK,
		fmt.Sprintf(config.Messages.Admin.Success.StatusUpdated, input.Status),
		fiber.Map{"user": user})
}

// Dashboard returns aggregate counts plus recent activity
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	userCounts := map[models.UserStatus]int64{}
	var totalUsers int64
	if err := h.db.Model(&models.User{}).Count(&totalUsers).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, config.Messages.Server.Error.Internal, err)
	}
	for _, status := range []models.UserStatus{models.StatusActive, models.StatusSuspended, models.StatusBanned} {
		var n int64
		if err := h.db.Model(&models.User{}).Where("status = ?", status).Count(&n).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, config.Messages.Server.Error.Internal, err)
		}
		userCounts[status] = n
	}

	var totalPosts, publishedPosts, draftPosts, deletedPosts int64
	postCounts := []struct {
		dest  *int64
		where map[string]interface{}
	}{
		{&totalPosts, map[string]interface{}{"is_deleted": false}},
		{&publishedPosts, map[string]interface{}{"is_deleted": false, "published": true}},
		{&draftPosts, map[string]interface{}{"is_deleted": false, "published": false}},
		{&deletedPosts, map[string]interface{}{"is_deleted": true}},
	}
	for _, count := range postCounts {
		if err := h.db.Model(&models.Post{}).Where(count.where).Count(count.dest).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, config.Messages.Server.Error.Internal, err)
		}
	}

	var recentUsers []models.User
	if err := h.db.Order("created_at DESC").Limit(5).Find(&recentUsers).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, config.Messages.Server.Error.Internal, err)
	}

	var recentPosts []models.Post
	if err := h.db.Where("is_deleted = ?", false).
		Preload("Author", preloadModerator).
		Order("created_at DESC").Limit(5).Find(&recentPosts).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, config.Messages.Server.Error.Internal, err)
	}

	var recentDeletedPosts []models.Post
	if err := h.db.Where("is_deleted = ?", true).
		Preload("Author", preloadModerator).
		Preload("DeletedBy", preloadModerator).
		Order("deleted_at DESC").Limit(5).Find(&recentDeletedPosts).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, config.Messages.Server.Error.Internal, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "", fiber.Map{
		"users": fiber.Map{
			"total":     totalUsers,
			"active":    userCounts[models.StatusActive],
			"suspended": userCounts[models.StatusSuspended],
			"banned":    userCounts[models.StatusBanned],
		},
		"posts": fiber.Map{
			"total":     totalPosts,
			"published": publishedPosts,
			"drafts":    draftPosts,
			"deleted":   deletedPosts,
		},
		"recentActivity": fiber.Map{
			"users":        recentUsers,
			"posts":        recentPosts,
			"deletedPosts": recentDeletedPosts,
		},
	})
}

func (h *AdminHandler) reloadPost(id uuid.UUID) (*models.Post, error) {
	var post models.Post
	err := h.db.
		Preload("Author", preloadModerator).
		Preload("DeletedBy", preloadModerator).
		First(&post, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func joinReasons() string {
	reasons := make([]string, len(models.DeletionReasons))
	for i, reason := range models.DeletionReasons {
		reasons[i] = string(reason)
	}
	return strings.Join(reasons, ", ")
}
