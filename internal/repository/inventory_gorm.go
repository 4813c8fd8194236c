package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "vendstock/internal/errors"
	"vendstock/internal/models"
)

// inventoryGorm implements Inventory on top of GORM.
type inventoryGorm struct {
	db *gorm.DB
}

// New creates an Inventory backed by the given GORM handle. Pass a
// transaction handle to scope all operations to that transaction.
func New(db *gorm.DB) Inventory {
	return &inventoryGorm{db: db}
}

func (r *inventoryGorm) GetMachine(id uint) (*models.Machine, error) {
	var machine models.Machine
	if err := r.db.First(&machine, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMachineNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &machine, nil
}

func (r *inventoryGorm) FindMachineByName(name string) (*models.Machine, error) {
	var machine models.Machine
	if err := r.db.Where("name = ?", name).First(&machine).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMachineNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &machine, nil
}

func (r *inventoryGorm) GetProduct(id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProductNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &product, nil
}

func (r *inventoryGorm) FindProductByNameAndLocation(name, stored string) (*models.Product, error) {
	var product models.Product
	if err := r.db.Where("name = ? AND stored = ?", name, stored).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProductNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &product, nil
}

func (r *inventoryGorm) UpsertProduct(name string, quantity int, stored string) (*models.Product, error) {
	product, err := r.FindProductByNameAndLocation(name, stored)
	if err == nil {
		res := r.db.Model(product).Update("quantity", quantity)
		if res.Error != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
		}
		product.Quantity = quantity
		return product, nil
	}
	if !errors.Is(err, apperrors.ErrProductNotFound) {
		return nil, err
	}

	product = &models.Product{Name: name, Quantity: quantity, Stored: stored}
	if err := r.db.Create(product).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return product, nil
}

func (r *inventoryGorm) DecrementQuantity(productID uint, amount int) (*models.Product, error) {
	// Conditional update so two concurrent purchases can never both read
	// the same pre-decrement quantity and lose one of the writes.
	res := r.db.Model(&models.Product{}).
		Where("id = ? AND quantity >= ?", productID, amount).
		Update("quantity", gorm.Expr("quantity - ?", amount))
	if res.Error != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	if res.RowsAffected == 0 {
		// Nothing matched: either the product is gone or the stock ran out.
		if _, err := r.GetProduct(productID); err != nil {
			return nil, err
		}
		return nil, apperrors.ErrInsufficientStock
	}

	return r.GetProduct(productID)
}

func (r *inventoryGorm) AppendHistory(productID, machineID uint, quantity int) (*models.StockHistory, error) {
	entry := &models.StockHistory{
		ProductID: productID,
		MachineID: machineID,
		Quantity:  quantity,
		Timestamp: time.Now().UTC(),
	}
	if err := r.db.Create(entry).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return entry, nil
}

func (r *inventoryGorm) CountProductsStoredIn(machineName string) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Product{}).Where("stored = ?", machineName).Count(&count).Error; err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return count, nil
}
