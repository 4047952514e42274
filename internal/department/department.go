package department

import (
	"time"

	departmentDatamodel "github.com/frahmantamala/org-directory/internal/core/datamodel/department"
)

// Department data is owned by an upstream system; this service only reads it.
type Department struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// View is the department representation used in responses.
type View struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (d *Department) ToView() View {
	return View{ID: d.ID, Name: d.Name}
}

func FromDataModel(dm *departmentDatamodel.Department) *Department {
	return &Department{
		ID:        dm.ID,
		Name:      dm.Name,
		CreatedAt: dm.CreatedAt,
		UpdatedAt: dm.UpdatedAt,
	}
}
