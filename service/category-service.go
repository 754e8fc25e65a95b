package service

import (
	"geeksboard/repository"
)

type CategoryService struct {
	categoryRepository *repository.PointCategoryRepository
}

func NewCategoryService() *CategoryService {
	return &CategoryService{
		categoryRepository: repository.NewPointCategoryRepository(),
	}
}

func (e *CategoryService) GetActiveCategories() ([]*repository.PointCategory, error) {
	return e.categoryRepository.GetActiveCategories()
}

func (e *CategoryService) GetCategoryById(categoryId int) (*repository.PointCategory, error) {
	return e.categoryRepository.GetCategoryById(categoryId)
}

func (e *CategoryService) SaveCategory(category *repository.PointCategory) (*repository.PointCategory, error) {
	return e.categoryRepository.Save(category)
}

func (e *CategoryService) DeleteCategory(categoryId int) error {
	return e.categoryRepository.Delete(categoryId)
}
