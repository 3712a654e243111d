package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DeletionReason string

const (
	ReasonSpam      DeletionReason = "spam"
	ReasonAbuse     DeletionReason = "abuse"
	ReasonIllegal   DeletionReason = "illegal"
	ReasonViolation DeletionReason = "violation"
	ReasonOther     DeletionReason = "other"
)

// DeletionReasons lists the accepted moderation reasons, in the order they
// are reported in validation messages.
var DeletionReasons = []DeletionReason{
	ReasonSpam,
	ReasonAbuse,
	ReasonIllegal,
	ReasonViolation,
	ReasonOther,
}

// PostCategories lists the accepted post categories.
var PostCategories = []string{
	"Technology",
	"Nature",
	"Travel",
	"Lifestyle",
	"Programming",
	"Personal",
}

// DefaultPostImageURL is used when a post is created without an image.
const DefaultPostImageURL = "https://via.placeholder.com/800x400?text=No+Image"

type Post struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title    string    `gorm:"not null" json:"title"`
	Content  string    `gorm:"not null" json:"content"`
	Excerpt  string    `json:"excerpt,omitempty"`
	Image    string    `json:"image"`
	Category string    `gorm:"type:varchar(32)" json:"category,omitempty"`

	AuthorID uuid.UUID `gorm:"type:uuid;not null;index" json:"authorId"`
	Author   *User     `gorm:"foreignKey:AuthorID" json:"author,omitempty"`

	Published   bool       `gorm:"default:false;index:idx_posts_published_created,priority:1" json:"published"`
	PublishedAt *time.Time `gorm:"default:null" json:"publishedAt,omitempty"`
	Views       int64      `gorm:"default:0" json:"views"`

	// Soft-delete block: the four columns change only together, through
	// SoftDelete and Restore.
	IsDeleted      bool            `gorm:"default:false;index" json:"isDeleted"`
	DeletedByID    *uuid.UUID      `gorm:"type:uuid;default:null" json:"deletedById,omitempty"`
	DeletedBy      *User           `gorm:"foreignKey:DeletedByID" json:"deletedBy,omitempty"`
	DeletedAt      *time.Time      `gorm:"default:null" json:"deletedAt,omitempty"`
	DeletionReason *DeletionReason `gorm:"type:varchar(16);default:null" json:"deletionReason,omitempty"`

	CreatedAt time.Time `gorm:"index:idx_posts_published_created,priority:2,sort:desc" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Image == "" {
		p.Image = DefaultPostImageURL
	}
	return nil
}

// IsValidDeletionReason reports whether r is one of the fixed reasons.
func IsValidDeletionReason(r string) bool {
	for _, reason := range DeletionReasons {
		if DeletionReason(r) == reason {
			return true
		}
	}
	return false
}

// IsValidCategory reports whether c is one of the fixed categories.
func IsValidCategory(c string) bool {
	for _, category := range PostCategories {
		if c == category {
			return true
		}
	}
	return false
}

// SoftDelete marks the post deleted by an admin. All four moderation columns
// move together; the returned map is meant for a single Updates call.
func (p *Post) SoftDelete(by uuid.UUID, reason DeletionReason, at time.Time) map[string]interface{} {
	p.IsDeleted = true
	p.DeletedByID = &by
	p.DeletedAt = &at
	p.DeletionReason = &reason
	return map[string]interface{}{
		"is_deleted":      true,
		"deleted_by_id":   &by,
		"deleted_at":      &at,
		"deletion_reason": &reason,
	}
}

// Restore clears the soft-delete block, the inverse of SoftDelete.
func (p *Post) Restore() map[string]interface{} {
	p.IsDeleted = false
	p.DeletedByID = nil
	p.DeletedBy = nil
	p.DeletedAt = nil
	p.DeletionReason = nil
	return map[string]interface{}{
		"is_deleted":      false,
		"deleted_by_id":   nil,
		"deleted_at":      nil,
		"deletion_reason": nil,
	}
}

// Publish moves the post to the published state. PublishedAt is set only the
// first time within a publish cycle, so repeated publish calls are idempotent.
func (p *Post) Publish(at time.Time) {
	p.Published = true
	if p.PublishedAt == nil {
		p.PublishedAt = &at
	}
}

// Unpublish reverts the post to a draft and resets the publish cycle.
func (p *Post) Unpublish() {
	p.Published = false
	p.PublishedAt = nil
}
