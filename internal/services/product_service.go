package services

import (
	"errors"
	"fmt"

	"github.com/devmarket/devmarket-backend/internal/dto"
	"github.com/devmarket/devmarket-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrProductNotFound      = errors.New("product not found")
	ErrNotOwner             = errors.New("product belongs to another developer")
	ErrFieldRequired        = errors.New("required field missing")
	ErrInvalidCategory      = errors.New("category must be Website or WebApp")
	ErrInvalidPrice         = errors.New("price must be zero or positive")
	ErrInvalidDiscount      = errors.New("discount must be between 0 and 100")
	ErrInvalidProductStatus = errors.New("status must be pending, approved, or rejected")
)

type ProductService struct {
	db *gorm.DB
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

// Create persists a new product owned by the calling developer. Status
// is always pending on creation; nothing the client sends can change
// that.
func (s *ProductService) Create(developerID uuid.UUID, req *dto.CreateProductRequest) (*models.Product, error) {
	if err := validateCreate(req); err != nil {
		return nil, err
	}

	discount := 0
	if req.Discount != nil {
		discount = *req.Discount
	}

	product := models.Product{
		ID:          uuid.New(),
		DeveloperID: developerID,
		Title:       req.Title,
		Category:    req.Category,
		Price:       *req.Price,
		Discount:    discount,
		Href:        req.Href,
		Image:       req.Image,
		Description: req.Description,
		Tools:       datatypes.NewJSONSlice(req.Tools),
		Status:      models.StatusPending,
	}

	if err := s.db.Create(&product).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return &product, nil
}

// Update applies a partial edit to a product owned by the calling
// developer. Any successful edit resets status to pending; status and
// admin notes can never be set through this path.
func (s *ProductService) Update(developerID uuid.UUID, req *dto.UpdateProductRequest) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, "id = ?", req.ID).Error; err != nil {
		return nil, ErrProductNotFound
	}
	if product.DeveloperID != developerID {
		return nil, ErrNotOwner
	}

	updates, err := buildUpdates(req)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(&product).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return &product, nil
}

func (s *ProductService) Delete(developerID, productID uuid.UUID) error {
	var product models.Product
	if err := s.db.First(&product, "id = ?", productID).Error; err != nil {
		return ErrProductNotFound
	}
	if product.DeveloperID != developerID {
		return ErrNotOwner
	}
	return s.db.Delete(&product).Error
}

func (s *ProductService) ListByDeveloper(developerID uuid.UUID) ([]models.Product, error) {
	var products []models.Product
	if err := s.db.Where("developer_id = ?", developerID).
		Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// ListAll returns every product, optionally filtered by status and
// category, with each row joined to its developer's contact fields.
func (s *ProductService) ListAll(status, category string) ([]dto.AdminProduct, error) {
	query := s.db.Model(&models.Product{}).Preload("Developer")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var products []models.Product
	if err := query.Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, err
	}

	result := make([]dto.AdminProduct, len(products))
	for i, p := range products {
		result[i] = dto.AdminProduct{
			Product:        p,
			DeveloperName:  p.Developer.FullName,
			DeveloperEmail: p.Developer.Email,
			DeveloperPhone: p.Developer.Phone,
		}
	}
	return result, nil
}

// UpdateStatus is the admin review path and the only way a product's
// status moves off pending. No ownership check; repeated transitions
// are no-ops.
func (s *ProductService) UpdateStatus(req *dto.UpdateProductStatusRequest) (*models.Product, error) {
	if !models.ValidStatus(req.Status) {
		return nil, ErrInvalidProductStatus
	}

	var product models.Product
	if err := s.db.First(&product, "id = ?", req.ID).Error; err != nil {
		return nil, ErrProductNotFound
	}

	updates := map[string]interface{}{"status": req.Status}
	if req.AdminNotes != nil {
		updates["admin_notes"] = *req.AdminNotes
	}

	if err := s.db.Model(&product).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update product status: %w", err)
	}
	return &product, nil
}

func validateCreate(req *dto.CreateProductRequest) error {
	required := map[string]bool{
		"title":       req.Title == "",
		"category":    req.Category == "",
		"price":       req.Price == nil,
		"href":        req.Href == "",
		"image":       req.Image == "",
		"description": req.Description == "",
	}
	for field, missing := range required {
		if missing {
			return fmt.Errorf("%w: %s", ErrFieldRequired, field)
		}
	}
	if !models.ValidCategory(req.Category) {
		return ErrInvalidCategory
	}
	if *req.Price < 0 {
		return ErrInvalidPrice
	}
	if req.Discount != nil && (*req.Discount < 0 || *req.Discount > 100) {
		return ErrInvalidDiscount
	}
	return nil
}

// buildUpdates turns a partial edit into a GORM updates map. The status
// reset to pending is unconditional.
func buildUpdates(req *dto.UpdateProductRequest) (map[string]interface{}, error) {
	updates := map[string]interface{}{"status": models.StatusPending}

	if req.Title != nil {
		if *req.Title == "" {
			return nil, fmt.Errorf("%w: title", ErrFieldRequired)
		}
		updates["title"] = *req.Title
	}
	if req.Category != nil {
		if !models.ValidCategory(*req.Category) {
			return nil, ErrInvalidCategory
		}
		updates["category"] = *req.Category
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, ErrInvalidPrice
		}
		updates["price"] = *req.Price
	}
	if req.Discount != nil {
		if *req.Discount < 0 || *req.Discount > 100 {
			return nil, ErrInvalidDiscount
		}
		updates["discount"] = *req.Discount
	}
	if req.Href != nil {
		if *req.Href == "" {
			return nil, fmt.Errorf("%w: href", ErrFieldRequired)
		}
		updates["href"] = *req.Href
	}
	if req.Image != nil {
		if *req.Image == "" {
			return nil, fmt.Errorf("%w: image", ErrFieldRequired)
		}
		updates["image"] = *req.Image
	}
	if req.Description != nil {
		if *req.Description == "" {
			return nil, fmt.Errorf("%w: description", ErrFieldRequired)
		}
		updates["description"] = *req.Description
	}
	if req.Tools != nil {
		updates["tools"] = datatypes.NewJSONSlice(*req.Tools)
	}

	return updates, nil
}
