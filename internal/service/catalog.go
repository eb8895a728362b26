package service

import (
	"fmt"
	"strconv"
	"strings"

	"tiendabot/internal/domain"
	"tiendabot/internal/repository"
)

// CatalogService handles category and product management
type CatalogService struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(categoryRepo repository.CategoryRepository, productRepo repository.ProductRepository) *CatalogService {
	return &CatalogService{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
	}
}

// Categories returns all categories
func (s *CatalogService) Categories() ([]domain.Category, error) {
	return s.categoryRepo.List()
}

// Category returns one category, failing with ErrNotFound when missing
func (s *CatalogService) Category(id int64) (*domain.Category, error) {
	category, err := s.categoryRepo.Get(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, fmt.Errorf("%w: category %d", ErrNotFound, id)
	}
	return category, nil
}

// CreateCategory validates and stores a new category
func (s *CatalogService) CreateCategory(createdBy int64, name, icon string) (int64, error) {
	name = strings.TrimSpace(name)
	icon = strings.TrimSpace(icon)
	if name == "" {
		return 0, fmt.Errorf("%w: category name cannot be empty", ErrValidation)
	}
	if icon == "" {
		return 0, fmt.Errorf("%w: category icon cannot be empty", ErrValidation)
	}
	return s.categoryRepo.Create(name, icon, createdBy)
}

// UpdateCategory validates and replaces a category's name and icon
func (s *CatalogService) UpdateCategory(id int64, name, icon string) error {
	name = strings.TrimSpace(name)
	icon = strings.TrimSpace(icon)
	if name == "" {
		return fmt.Errorf("%w: category name cannot be empty", ErrValidation)
	}
	if icon == "" {
		return fmt.Errorf("%w: category icon cannot be empty", ErrValidation)
	}
	return s.categoryRepo.Update(id, name, icon)
}

// DeleteCategory removes a category
func (s *CatalogService) DeleteCategory(id int64) error {
	return s.categoryRepo.Delete(id)
}

// Products returns all products
func (s *CatalogService) Products() ([]domain.Product, error) {
	return s.productRepo.List()
}

// ProductsByCategory returns the products of one category
func (s *CatalogService) ProductsByCategory(categoryID int64) ([]domain.Product, error) {
	return s.productRepo.ListByCategory(categoryID)
}

// Product returns one product, failing with ErrNotFound when missing
func (s *CatalogService) Product(id int64) (*domain.Product, error) {
	product, err := s.productRepo.Get(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("%w: product %d", ErrNotFound, id)
	}
	return product, nil
}

// CreateProduct validates and stores a new product
func (s *CatalogService) CreateProduct(p domain.Product) (int64, error) {
	if err := validateProduct(p); err != nil {
		return 0, err
	}
	return s.productRepo.Create(p)
}

// UpdateProduct validates and replaces a product
func (s *CatalogService) UpdateProduct(p domain.Product) error {
	if err := validateProduct(p); err != nil {
		return err
	}
	return s.productRepo.Update(p)
}

// DeleteProduct removes a product
func (s *CatalogService) DeleteProduct(id int64) error {
	return s.productRepo.Delete(id)
}

func validateProduct(p domain.Product) error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: product name cannot be empty", ErrValidation)
	}
	if p.Price <= 0 {
		return fmt.Errorf("%w: product price must be positive", ErrValidation)
	}
	if p.PhotoID == "" {
		return fmt.Errorf("%w: product photo is required", ErrValidation)
	}
	return nil
}

// ParsePrice extracts a positive price from free text, tolerating
// currency symbols and thousands separators the way users type them
func ParsePrice(text string) (float64, error) {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			return r
		}
		if r == ',' {
			return '.'
		}
		return -1
	}, text)

	price, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a price", ErrValidation, text)
	}
	if price <= 0 {
		return 0, fmt.Errorf("%w: price must be positive", ErrValidation)
	}
	return price, nil
}
