package repository

import (
	"geeksboard/config"

	"gorm.io/gorm"
)

// Well known category slugs referenced by badge criteria and the reward job.
const (
	SlugHomework      = "homework"
	SlugParticipation = "participation"
	SlugAttendance    = "attendance"
)

type PointCategory struct {
	Id          int    `gorm:"primaryKey"`
	Name        string `gorm:"uniqueIndex;not null"`
	Slug        string `gorm:"uniqueIndex;not null"`
	Description string `gorm:"null"`
	MaxScore    int    `gorm:"not null;default:10"`
	IsActive    bool   `gorm:"not null;default:true"`
}

type PointCategoryRepository struct {
	DB *gorm.DB
}

func NewPointCategoryRepository() *PointCategoryRepository {
	return &PointCategoryRepository{DB: config.DatabaseConnection()}
}

func (r *PointCategoryRepository) GetCategoryById(categoryId int) (*PointCategory, error) {
	var category PointCategory
	result := r.DB.First(&category, "id = ?", categoryId)
	if result.Error != nil {
		return nil, result.Error
	}
	return &category, nil
}

// GetCategoryBySlug returns nil without an error when the slug is unknown.
// Badge criteria that reference a missing category must fail closed, not loudly.
func (r *PointCategoryRepository) GetCategoryBySlug(slug string) (*PointCategory, error) {
	var category PointCategory
	result := r.DB.First(&category, "slug = ?", slug)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, result.Error
	}
	return &category, nil
}

func (r *PointCategoryRepository) GetActiveCategories() ([]*PointCategory, error) {
	var categories []*PointCategory
	result := r.DB.Order("name").Find(&categories, "is_active = ?", true)
	if result.Error != nil {
		return nil, result.Error
	}
	return categories, nil
}

// FirstCategory is the fallback target for reward events when the homework
// category has been deleted.
func (r *PointCategoryRepository) FirstCategory() (*PointCategory, error) {
	var category PointCategory
	result := r.DB.Order("id").First(&category)
	if result.Error != nil {
		return nil, result.Error
	}
	return &category, nil
}

func (r *PointCategoryRepository) Save(category *PointCategory) (*PointCategory, error) {
	result := r.DB.Save(category)
	if result.Error != nil {
		return nil, result.Error
	}
	return category, nil
}

func (r *PointCategoryRepository) Delete(categoryId int) error {
	result := r.DB.Delete(&PointCategory{}, "id = ?", categoryId)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
