package postgres

import (
	"github.com/frahmantamala/org-directory/internal/core/datamodel/employee"
	employeeDomain "github.com/frahmantamala/org-directory/internal/employee"
	"gorm.io/gorm"
)

// EmployeeRepository implements the employee.RepositoryAPI store using GORM.
type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) employeeDomain.RepositoryAPI {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) FindByID(id int64) (*employee.Employee, error) {
	var emp employee.Employee
	err := r.db.Preload("Addresses").Where("id = ?", id).First(&emp).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &emp, nil
}

func (r *EmployeeRepository) FindByEmail(email string) (*employee.Employee, error) {
	var emp employee.Employee
	err := r.db.Preload("Addresses").Where("official_email = ?", email).First(&emp).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &emp, nil
}

func (r *EmployeeRepository) FindByContactNumber(contactNumber string) (*employee.Employee, error) {
	var emp employee.Employee
	err := r.db.Where("contact_number = ?", contactNumber).First(&emp).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &emp, nil
}

func (r *EmployeeRepository) FindByRole(role string) ([]*employee.Employee, error) {
	var emps []*employee.Employee
	err := r.db.Preload("Addresses").Where("role = ?", role).Find(&emps).Error
	return emps, err
}

func (r *EmployeeRepository) FindByManager(managerID int64) ([]*employee.Employee, error) {
	var emps []*employee.Employee
	err := r.db.Preload("Addresses").
		Where("reporting_manager_id = ?", managerID).
		Find(&emps).Error
	return emps, err
}

func (r *EmployeeRepository) FindByDepartmentAndRole(departmentID int64, role string) ([]*employee.Employee, error) {
	var emps []*employee.Employee
	err := r.db.Where("department_id = ? AND role = ?", departmentID, role).Find(&emps).Error
	return emps, err
}

func (r *EmployeeRepository) FindAll() ([]*employee.Employee, error) {
	var emps []*employee.Employee
	err := r.db.Preload("Addresses").Order("id ASC").Find(&emps).Error
	return emps, err
}

func (r *EmployeeRepository) Save(emp *employee.Employee) error {
	return r.db.Session(&gorm.Session{FullSaveAssociations: true}).Save(emp).Error
}

// DeleteByID reports an error for a missing row so the service can fold it
// into its uniform not-found translation.
func (r *EmployeeRepository) DeleteByID(id int64) error {
	tx := r.db.Select("Addresses").Delete(&employee.Employee{ID: id})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
