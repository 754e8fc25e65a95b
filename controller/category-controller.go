package controller

import (
	"strconv"

	"geeksboard/app_error"
	"geeksboard/repository"
	"geeksboard/service"
	"geeksboard/utils"

	"github.com/gin-gonic/gin"
)

type CategoryController struct {
	categoryService *service.CategoryService
}

func NewCategoryController() *CategoryController {
	return &CategoryController{
		categoryService: service.NewCategoryService(),
	}
}

func setupCategoryController() []RouteInfo {
	e := NewCategoryController()
	basePath := "/categories"
	routes := []RouteInfo{
		{Method: "GET", Path: "", HandlerFunc: e.getCategoriesHandler(), Authenticated: true},
		{Method: "PUT", Path: "", HandlerFunc: e.createCategoryHandler(), Authenticated: true},
		{Method: "DELETE", Path: "/:category_id", HandlerFunc: e.deleteCategoryHandler(), Authenticated: true},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

// @id GetCategories
// @Description Fetches all active point categories
// @Tags categories
// @Produce json
// @Success 200 {array} Category
// @Router /categories [get]
func (e *CategoryController) getCategoriesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := e.categoryService.GetActiveCategories()
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, utils.Map(categories, toCategoryResponse))
	}
}

// @id CreateCategory
// @Description Creates or updates a point category
// @Tags categories
// @Accept json
// @Produce json
// @Param body body CategoryCreate true "Category"
// @Success 201 {object} Category
// @Router /categories [put]
func (e *CategoryController) createCategoryHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var category CategoryCreate
		if err := c.BindJSON(&category); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		dbcategory, err := e.categoryService.SaveCategory(category.toModel())
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(201, toCategoryResponse(dbcategory))
	}
}

// @id DeleteCategory
// @Description Deletes a point category
// @Tags categories
// @Param category_id path int true "Category Id"
// @Success 204
// @Router /categories/{category_id} [delete]
func (e *CategoryController) deleteCategoryHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		categoryId, err := strconv.Atoi(c.Param("category_id"))
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		if err := e.categoryService.DeleteCategory(categoryId); err != nil {
			app_error.Respond(c, err)
			return
		}
		c.Status(204)
	}
}

type CategoryCreate struct {
	Id          *int   `json:"id"`
	Name        string `json:"name" binding:"required"`
	Slug        string `json:"slug" binding:"required"`
	Description string `json:"description"`
	MaxScore    int    `json:"max_score" binding:"required"`
	IsActive    *bool  `json:"is_active"`
}

type Category struct {
	Id          int    `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	MaxScore    int    `json:"max_score"`
	IsActive    bool   `json:"is_active"`
}

func (e *CategoryCreate) toModel() *repository.PointCategory {
	category := &repository.PointCategory{
		Name:        e.Name,
		Slug:        e.Slug,
		Description: e.Description,
		MaxScore:    e.MaxScore,
		IsActive:    true,
	}
	if e.Id != nil {
		category.Id = *e.Id
	}
	if e.IsActive != nil {
		category.IsActive = *e.IsActive
	}
	return category
}

func toCategoryResponse(category *repository.PointCategory) *Category {
	return &Category{
		Id:          category.Id,
		Name:        category.Name,
		Slug:        category.Slug,
		Description: category.Description,
		MaxScore:    category.MaxScore,
		IsActive:    category.IsActive,
	}
}
