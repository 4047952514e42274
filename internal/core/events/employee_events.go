package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventTypeEmployeeCreated = "employee.created"
	EventTypeEmployeeUpdated = "employee.updated"
	EventTypeEmployeeDeleted = "employee.deleted"
)

type EmployeeCreatedEvent struct {
	BaseEvent
	EmployeeID int64  `json:"employee_id"`
	Email      string `json:"email"`
	Role       string `json:"role"`
}

func NewEmployeeCreatedEvent(employeeID int64, email, role string) *EmployeeCreatedEvent {
	return &EmployeeCreatedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeEmployeeCreated,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"employee_id": employeeID,
				"email":       email,
				"role":        role,
			},
		},
		EmployeeID: employeeID,
		Email:      email,
		Role:       role,
	}
}

type EmployeeUpdatedEvent struct {
	BaseEvent
	EmployeeID int64 `json:"employee_id"`
}

func NewEmployeeUpdatedEvent(employeeID int64) *EmployeeUpdatedEvent {
	return &EmployeeUpdatedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeEmployeeUpdated,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"employee_id": employeeID,
			},
		},
		EmployeeID: employeeID,
	}
}

type EmployeeDeletedEvent struct {
	BaseEvent
	EmployeeID int64 `json:"employee_id"`
}

func NewEmployeeDeletedEvent(employeeID int64) *EmployeeDeletedEvent {
	return &EmployeeDeletedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeEmployeeDeleted,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"employee_id": employeeID,
			},
		},
		EmployeeID: employeeID,
	}
}
