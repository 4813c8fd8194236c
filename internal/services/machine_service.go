package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "vendstock/internal/errors"
	"vendstock/internal/models"
	"vendstock/internal/pagination"
	"vendstock/internal/repository"
)

// machineService handles machine-related business logic.
type machineService struct {
	db *gorm.DB
}

// NewMachineService creates a new MachineServicer.
func NewMachineService(db *gorm.DB) MachineServicer {
	return &machineService{db: db}
}

// RegisterMachine creates a new machine. Name uniqueness is enforced by
// the store's unique index; a collision surfaces as DUPLICATE_NAME and
// leaves no row behind.
func (s *machineService) RegisterMachine(name, location string) (*models.Machine, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "machine name is required")
	}

	machine := &models.Machine{
		Name:     name,
		Location: location,
	}

	if err := s.db.Create(machine).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrDuplicateMachineName
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return machine, nil
}

// GetMachineByID retrieves a single machine.
func (s *machineService) GetMachineByID(id uint) (*models.Machine, error) {
	return repository.New(s.db).GetMachine(id)
}

// ListMachines retrieves a paginated list of all machines.
func (s *machineService) ListMachines(page pagination.PageRequest) (*pagination.PageResponse[models.Machine], error) {
	page.Defaults()

	base := s.db.Model(&models.Machine{})

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var machines []models.Machine
	if err := base.Scopes(pagination.Paginate(page)).
		Order("id ASC").
		Find(&machines).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(machines, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// UpdateMachine replaces a machine's name and location. Renaming does not
// cascade to products that reference the old name; they keep pointing at
// the name they were stocked under.
func (s *machineService) UpdateMachine(id uint, name, location string) (*models.Machine, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "machine name is required")
	}

	var machine *models.Machine
	err := runInTx(s.db, func(tx *gorm.DB) error {
		repo := repository.New(tx)

		var txErr error
		machine, txErr = repo.GetMachine(id)
		if txErr != nil {
			return txErr
		}

		machine.Name = name
		machine.Location = location
		if txErr := tx.Save(machine).Error; txErr != nil {
			if errors.Is(txErr, gorm.ErrDuplicatedKey) {
				return apperrors.ErrDuplicateMachineName
			}
			return apperrors.Wrap(apperrors.ErrInternalServer, txErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return machine, nil
}

// DeleteMachine removes a machine. Deletion is restricted while products
// are still stocked in it; stock-history rows are retained as ledger.
func (s *machineService) DeleteMachine(id uint) error {
	return runInTx(s.db, func(tx *gorm.DB) error {
		repo := repository.New(tx)

		machine, err := repo.GetMachine(id)
		if err != nil {
			return err
		}

		count, err := repo.CountProductsStoredIn(machine.Name)
		if err != nil {
			return err
		}
		if count > 0 {
			return apperrors.ErrMachineInUse
		}

		if err := tx.Delete(machine).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
}
