// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Version guards concurrent writers; the history lives in order_status_history.
type OrderDTO struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	BusinessID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	DeliveryPersonID *uuid.UUID `gorm:"type:uuid;index"`
	Status           string     `gorm:"size:16;not null;index"`
	Version          int64      `gorm:"not null"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        gorm.DeletedAt `gorm:"index"`

	History []StatusHistoryDTO `gorm:"foreignKey:OrderID"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// StatusHistoryDTO is one append-only line of an order's status history.
type StatusHistoryDTO struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Status    string    `gorm:"size:16;not null"`
	ActorID   uuid.UUID `gorm:"type:uuid;not null"`
	Notes     string
	CreatedAt time.Time `gorm:"not null"`
}

func (StatusHistoryDTO) TableName() string {
	return "order_status_history"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:               o.ID().Bytes(),
		CustomerID:       o.CustomerID().Bytes(),
		BusinessID:       o.BusinessID().Bytes(),
		DeliveryPersonID: kernel.PtrBytes(o.DeliveryPerson()),
		Status:           o.Status().String(),
		Version:          o.Version(),
		CreatedAt:        o.CreatedAt(),
	}
}

func historyFromDomain(orderID kernel.UUID, entries []order.HistoryEntry) []StatusHistoryDTO {
	dtos := make([]StatusHistoryDTO, 0, len(entries))
	for _, e := range entries {
		dtos = append(dtos, StatusHistoryDTO{
			OrderID:   orderID.Bytes(),
			Status:    e.Status.String(),
			ActorID:   e.ActorID.Bytes(),
			Notes:     e.Notes,
			CreatedAt: e.At,
		})
	}
	return dtos
}

// toDomain converts a database DTO with its preloaded history to an order aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	businessID, err := kernel.UUIDFromBytes(dto.BusinessID[:])
	if err != nil {
		return nil, err
	}
	driverID, err := kernel.UUIDPtrFromBytes(dto.DeliveryPersonID)
	if err != nil {
		return nil, err
	}
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	history := make([]order.HistoryEntry, 0, len(dto.History))
	for _, h := range dto.History {
		entryStatus, statusErr := order.ParseStatus(h.Status)
		if statusErr != nil {
			return nil, statusErr
		}
		actor, actorErr := kernel.UUIDFromBytes(h.ActorID[:])
		if actorErr != nil {
			return nil, actorErr
		}
		history = append(history, order.HistoryEntry{Status: entryStatus, At: h.CreatedAt, ActorID: actor, Notes: h.Notes})
	}

	return order.RestoreOrder(order.State{
		ID:               id,
		CustomerID:       customerID,
		BusinessID:       businessID,
		Status:           status,
		History:          history,
		DeliveryPersonID: driverID,
		CreatedAt:        dto.CreatedAt,
		Version:          dto.Version,
	})
}
