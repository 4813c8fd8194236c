package services

import (
	"gorm.io/gorm"

	apperrors "vendstock/internal/errors"
	"vendstock/internal/models"
	"vendstock/internal/pagination"
	"vendstock/internal/repository"
)

// inventoryService handles product stock and ledger business logic.
type inventoryService struct {
	db *gorm.DB
}

// NewInventoryService creates a new InventoryServicer.
func NewInventoryService(db *gorm.DB) InventoryServicer {
	return &inventoryService{db: db}
}

// StockProduct sets the stock level for a product in a machine. The first
// call for a (name, stored) pair inserts the product; later calls
// overwrite its quantity in place. Each successful call appends a ledger
// row with the resulting quantity, in the same transaction as the stock
// write, so the quantity and the ledger can never diverge.
func (s *inventoryService) StockProduct(name string, quantity int, stored string) (*models.Product, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "product name is required")
	}
	if stored == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "machine name is required")
	}
	if quantity < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "quantity must not be negative")
	}

	var product *models.Product
	err := runInTx(s.db, func(tx *gorm.DB) error {
		repo := repository.New(tx)

		machine, txErr := repo.FindMachineByName(stored)
		if txErr != nil {
			return txErr
		}

		product, txErr = repo.UpsertProduct(name, quantity, stored)
		if txErr != nil {
			return txErr
		}

		_, txErr = repo.AppendHistory(product.ID, machine.ID, product.Quantity)
		return txErr
	})
	if err != nil {
		return nil, err
	}
	return product, nil
}

// PurchaseProduct removes quantity units from a product's stock and
// appends a ledger row with the post-decrement quantity, atomically.
// Purchasing exactly the remaining stock succeeds and leaves quantity 0.
func (s *inventoryService) PurchaseProduct(id uint, quantity int) (*models.Product, error) {
	if quantity <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "quantity must be greater than zero")
	}

	var product *models.Product
	err := runInTx(s.db, func(tx *gorm.DB) error {
		repo := repository.New(tx)

		current, txErr := repo.GetProduct(id)
		if txErr != nil {
			return txErr
		}

		// A product whose machine no longer resolves is a data-integrity
		// violation; refuse the purchase rather than orphan the ledger row.
		machine, txErr := repo.FindMachineByName(current.Stored)
		if txErr != nil {
			return txErr
		}

		product, txErr = repo.DecrementQuantity(id, quantity)
		if txErr != nil {
			return txErr
		}

		_, txErr = repo.AppendHistory(product.ID, machine.ID, product.Quantity)
		return txErr
	})
	if err != nil {
		return nil, err
	}
	return product, nil
}

// GetProductByID retrieves a single product.
func (s *inventoryService) GetProductByID(id uint) (*models.Product, error) {
	return repository.New(s.db).GetProduct(id)
}

// ListProducts retrieves a paginated list of all products.
func (s *inventoryService) ListProducts(page pagination.PageRequest) (*pagination.PageResponse[models.Product], error) {
	return s.listProducts(page, "")
}

// ListProductsByMachine retrieves the products stocked in the named
// machine. A name that matches no machine simply yields an empty page;
// no existence check is performed.
func (s *inventoryService) ListProductsByMachine(machineName string, page pagination.PageRequest) (*pagination.PageResponse[models.Product], error) {
	return s.listProducts(page, machineName)
}

func (s *inventoryService) listProducts(page pagination.PageRequest, machineName string) (*pagination.PageResponse[models.Product], error) {
	page.Defaults()

	base := s.db.Model(&models.Product{})
	if machineName != "" {
		base = base.Where("stored = ?", machineName)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var products []models.Product
	if err := base.Scopes(pagination.Paginate(page)).
		Order("id ASC").
		Find(&products).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(products, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// UpdateProduct replaces a product's name, quantity, and machine. Moving
// a product to another machine requires that machine to exist. The ledger
// is not written here; only stock and purchase operations append to it.
func (s *inventoryService) UpdateProduct(id uint, name string, quantity int, stored string) (*models.Product, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "product name is required")
	}
	if quantity < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "quantity must not be negative")
	}

	var product *models.Product
	err := runInTx(s.db, func(tx *gorm.DB) error {
		repo := repository.New(tx)

		var txErr error
		product, txErr = repo.GetProduct(id)
		if txErr != nil {
			return txErr
		}

		if stored != product.Stored {
			if _, txErr = repo.FindMachineByName(stored); txErr != nil {
				return txErr
			}
		}

		product.Name = name
		product.Quantity = quantity
		product.Stored = stored
		if txErr := tx.Save(product).Error; txErr != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, txErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct removes a product row. Its stock-history rows are
// retained as ledger.
func (s *inventoryService) DeleteProduct(id uint) error {
	return runInTx(s.db, func(tx *gorm.DB) error {
		repo := repository.New(tx)

		product, err := repo.GetProduct(id)
		if err != nil {
			return err
		}

		if err := tx.Delete(product).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
}

// ListStockHistory retrieves the ledger rows for a machine/product pair
// in ascending timestamp order. A pair with no events yields an empty
// page, never an error.
func (s *inventoryService) ListStockHistory(machineID, productID uint, page pagination.PageRequest) (*pagination.PageResponse[models.StockHistory], error) {
	page.Defaults()

	base := s.db.Model(&models.StockHistory{}).
		Where("machine_id = ? AND product_id = ?", machineID, productID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var entries []models.StockHistory
	if err := base.Scopes(pagination.Paginate(page)).
		Order("recorded_at ASC, id ASC").
		Find(&entries).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(entries, page.Page, page.PageSize, totalItems)
	return &result, nil
}
