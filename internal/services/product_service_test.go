package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/devmarket/devmarket-backend/internal/dto"
	"github.com/devmarket/devmarket-backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }
func strPtr(s string) *string     { return &s }

func validCreateRequest() dto.CreateProductRequest {
	return dto.CreateProductRequest{
		Title:       "Shop",
		Category:    models.CategoryWebsite,
		Price:       floatPtr(100000),
		Href:        "https://x.com",
		Image:       "https://img",
		Description: "d",
	}
}

func TestValidateCreate(t *testing.T) {
	t.Run("complete request passes", func(t *testing.T) {
		req := validCreateRequest()
		assert.NoError(t, validateCreate(&req))
	})

	t.Run("missing mandatory fields", func(t *testing.T) {
		mutations := map[string]func(*dto.CreateProductRequest){
			"title":       func(r *dto.CreateProductRequest) { r.Title = "" },
			"category":    func(r *dto.CreateProductRequest) { r.Category = "" },
			"price":       func(r *dto.CreateProductRequest) { r.Price = nil },
			"href":        func(r *dto.CreateProductRequest) { r.Href = "" },
			"image":       func(r *dto.CreateProductRequest) { r.Image = "" },
			"description": func(r *dto.CreateProductRequest) { r.Description = "" },
		}
		for field, mutate := range mutations {
			req := validCreateRequest()
			mutate(&req)
			err := validateCreate(&req)
			assert.ErrorIs(t, err, ErrFieldRequired, "field %s", field)
		}
	})

	t.Run("category enum", func(t *testing.T) {
		req := validCreateRequest()
		req.Category = "MobileApp"
		assert.ErrorIs(t, validateCreate(&req), ErrInvalidCategory)

		req.Category = models.CategoryWebApp
		assert.NoError(t, validateCreate(&req))
	})

	t.Run("negative price", func(t *testing.T) {
		req := validCreateRequest()
		req.Price = floatPtr(-1)
		assert.ErrorIs(t, validateCreate(&req), ErrInvalidPrice)
	})

	t.Run("discount bounds", func(t *testing.T) {
		for _, d := range []int{-1, 101} {
			req := validCreateRequest()
			req.Discount = intPtr(d)
			assert.ErrorIs(t, validateCreate(&req), ErrInvalidDiscount, "discount %d", d)
		}
		for _, d := range []int{0, 100} {
			req := validCreateRequest()
			req.Discount = intPtr(d)
			assert.NoError(t, validateCreate(&req), "discount %d", d)
		}
	})
}

func TestBuildUpdates(t *testing.T) {
	t.Run("always resets status to pending", func(t *testing.T) {
		updates, err := buildUpdates(&dto.UpdateProductRequest{})
		assert.NoError(t, err)
		assert.Equal(t, models.StatusPending, updates["status"])
	})

	t.Run("edit cannot touch status or admin notes", func(t *testing.T) {
		updates, err := buildUpdates(&dto.UpdateProductRequest{
			Title: strPtr("New title"),
			Price: floatPtr(42),
		})
		assert.NoError(t, err)
		assert.Equal(t, models.StatusPending, updates["status"])
		assert.NotContains(t, updates, "admin_notes")
		assert.Equal(t, "New title", updates["title"])
		assert.Equal(t, float64(42), updates["price"])
	})

	t.Run("partial validation", func(t *testing.T) {
		_, err := buildUpdates(&dto.UpdateProductRequest{Category: strPtr("Desktop")})
		assert.ErrorIs(t, err, ErrInvalidCategory)

		_, err = buildUpdates(&dto.UpdateProductRequest{Discount: intPtr(250)})
		assert.ErrorIs(t, err, ErrInvalidDiscount)

		_, err = buildUpdates(&dto.UpdateProductRequest{Price: floatPtr(-5)})
		assert.ErrorIs(t, err, ErrInvalidPrice)

		_, err = buildUpdates(&dto.UpdateProductRequest{Title: strPtr("")})
		assert.ErrorIs(t, err, ErrFieldRequired)
	})
}

func TestCreate_ForcesPendingStatus(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewProductService(db)

	devID := uuid.New()
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "products"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.NewString()))
	mock.ExpectCommit()

	req := validCreateRequest()
	req.Discount = intPtr(10)
	product, err := svc.Create(devID, &req)
	assert.NoError(t, err)
	assert.Equal(t, models.StatusPending, product.Status)
	assert.Equal(t, devID, product.DeveloperID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductUpdateStatus_RejectsUnknownStatus(t *testing.T) {
	svc := NewProductService(nil) // validation fails before any query

	_, err := svc.UpdateStatus(&dto.UpdateProductStatusRequest{
		ID:     uuid.New(),
		Status: "archived",
	})
	assert.ErrorIs(t, err, ErrInvalidProductStatus)
}

func TestUpdate_OwnershipEnforced(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewProductService(db)

	owner := uuid.New()
	stranger := uuid.New()
	productID := uuid.New()

	mock.ExpectQuery(`SELECT (.+) FROM "products"`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "developer_id", "title", "category", "status"}).
			AddRow(productID.String(), owner.String(), "Shop",
				models.CategoryWebsite, models.StatusApproved))

	_, err := svc.Update(stranger, &dto.UpdateProductRequest{
		ID:    productID,
		Title: strPtr("Hijacked"),
	})
	assert.ErrorIs(t, err, ErrNotOwner)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_OwnershipEnforced(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewProductService(db)

	owner := uuid.New()
	productID := uuid.New()

	mock.ExpectQuery(`SELECT (.+) FROM "products"`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "developer_id", "title", "category", "status"}).
			AddRow(productID.String(), owner.String(), "Shop",
				models.CategoryWebsite, models.StatusPending))

	err := svc.Delete(uuid.New(), productID)
	assert.ErrorIs(t, err, ErrNotOwner)
}

func TestUpdate_MissingProduct(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewProductService(db)

	mock.ExpectQuery(`SELECT (.+) FROM "products"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := svc.Update(uuid.New(), &dto.UpdateProductRequest{ID: uuid.New()})
	assert.ErrorIs(t, err, ErrProductNotFound)
}
