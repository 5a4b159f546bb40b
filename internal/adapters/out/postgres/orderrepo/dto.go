// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"encoding/json"
	"time"

	"mealtrack/internal/core/domain/model/kernel"
	"mealtrack/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The update history lives in its own table; items are stored as a JSON
// column since the core never queries into them.
type OrderDTO struct {
	ID                    uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Status                string     `gorm:"type:varchar(32);index"`
	Items                 string     `gorm:"type:jsonb"`
	TotalAmount           float64    `gorm:"type:numeric(10,2)"`
	CreatedAt             time.Time  `gorm:"index"`
	EstimatedDeliveryTime time.Time
	Address               AddressDTO `gorm:"embedded;embeddedPrefix:address_"`
	DriverName            *string
	DriverPhone           *string
	DriverVehicle         *string
	Updates               []UpdateDTO `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// AddressDTO represents the embedded delivery destination within the order table.
type AddressDTO struct {
	Street    string
	City      string
	State     string
	Zip       string
	Latitude  float64
	Longitude float64
}

// UpdateDTO represents one append-only row of an order's history.
// Location columns are null for status-only updates.
type UpdateDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID          uuid.UUID `gorm:"type:uuid;index"`
	Status           string    `gorm:"type:varchar(32)"`
	Message          string
	Timestamp        time.Time `gorm:"index"`
	EstimatedMinutes *int
	Latitude         *float64
	Longitude        *float64
	Address          *string
	RecordedAt       *time.Time
}

// TableName specifies the database table name for history entries.
func (UpdateDTO) TableName() string {
	return "order_updates"
}

// itemDTO is the JSON shape of one line item inside the items column.
type itemDTO struct {
	Name          string  `json:"name"`
	Quantity      int     `json:"quantity"`
	UnitPrice     float64 `json:"unitPrice"`
	Customization string  `json:"customization,omitempty"`
}

// fromDomain converts an order domain aggregate to its database representation,
// including the full update history.
func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	items := make([]itemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, itemDTO{
			Name:          item.Name(),
			Quantity:      item.Quantity(),
			UnitPrice:     item.UnitPrice(),
			Customization: item.Customization(),
		})
	}
	itemsJSON, err := json.Marshal(items)
	if err != nil {
		return OrderDTO{}, err
	}

	address := aggregate.Address()
	dto := OrderDTO{
		ID:                    aggregate.ID().Bytes(),
		Status:                aggregate.Status().String(),
		Items:                 string(itemsJSON),
		TotalAmount:           aggregate.TotalAmount(),
		CreatedAt:             aggregate.CreatedAt(),
		EstimatedDeliveryTime: aggregate.EstimatedDeliveryTime(),
		Address: AddressDTO{
			Street:    address.Street(),
			City:      address.City(),
			State:     address.State(),
			Zip:       address.Zip(),
			Latitude:  address.Point().Latitude(),
			Longitude: address.Point().Longitude(),
		},
	}

	if driver := aggregate.Driver(); driver != nil {
		name, phone, vehicle := driver.Name(), driver.Phone(), driver.Vehicle()
		dto.DriverName = &name
		dto.DriverPhone = &phone
		dto.DriverVehicle = &vehicle
	}

	for _, update := range aggregate.Updates() {
		dto.Updates = append(dto.Updates, updateFromDomain(update))
	}

	return dto, nil
}

func updateFromDomain(update *order.Update) UpdateDTO {
	row := UpdateDTO{
		ID:               update.ID().Bytes(),
		OrderID:          update.OrderID().Bytes(),
		Status:           update.Status().String(),
		Message:          update.Message(),
		Timestamp:        update.Timestamp(),
		EstimatedMinutes: update.EstimatedMinutes(),
	}

	if location := update.Location(); location != nil {
		latitude := location.Point().Latitude()
		longitude := location.Point().Longitude()
		address := location.Address()
		recordedAt := location.RecordedAt()
		row.Latitude = &latitude
		row.Longitude = &longitude
		row.Address = &address
		row.RecordedAt = &recordedAt
	}

	return row
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including history using RestoreOrder;
// the Updates slice must already be ordered oldest first.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var itemRows []itemDTO
	if err = json.Unmarshal([]byte(dto.Items), &itemRows); err != nil {
		return nil, err
	}
	items := make([]order.Item, 0, len(itemRows))
	for _, row := range itemRows {
		item, itemErr := order.NewItem(row.Name, row.Quantity, row.UnitPrice, row.Customization)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	point, err := kernel.NewGeoPoint(dto.Address.Latitude, dto.Address.Longitude)
	if err != nil {
		return nil, err
	}
	address, err := order.NewAddress(dto.Address.Street, dto.Address.City, dto.Address.State, dto.Address.Zip, point)
	if err != nil {
		return nil, err
	}

	var driver *order.Driver
	if dto.DriverName != nil {
		phone, vehicle := "", ""
		if dto.DriverPhone != nil {
			phone = *dto.DriverPhone
		}
		if dto.DriverVehicle != nil {
			vehicle = *dto.DriverVehicle
		}
		restored, driverErr := order.NewDriver(*dto.DriverName, phone, vehicle)
		if driverErr != nil {
			return nil, driverErr
		}
		driver = &restored
	}

	updates := make([]*order.Update, 0, len(dto.Updates))
	for _, row := range dto.Updates {
		update, updateErr := updateToDomain(row)
		if updateErr != nil {
			return nil, updateErr
		}
		updates = append(updates, update)
	}

	return order.RestoreOrder(
		id, status, items, dto.TotalAmount, address,
		dto.CreatedAt, dto.EstimatedDeliveryTime, driver, updates)
}

func updateToDomain(row UpdateDTO) (*order.Update, error) {
	id, err := kernel.UUIDFromBytes(row.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(row.OrderID[:])
	if err != nil {
		return nil, err
	}
	status, err := order.StatusFromString(row.Status)
	if err != nil {
		return nil, err
	}

	var location *order.TrackingPoint
	if row.Latitude != nil && row.Longitude != nil && row.Address != nil && row.RecordedAt != nil {
		point, pointErr := kernel.NewGeoPoint(*row.Latitude, *row.Longitude)
		if pointErr != nil {
			return nil, pointErr
		}
		trackingPoint, tpErr := order.NewTrackingPoint(point, *row.Address, *row.RecordedAt)
		if tpErr != nil {
			return nil, tpErr
		}
		location = &trackingPoint
	}

	return order.RestoreUpdate(id, orderID, status, row.Message, row.Timestamp, row.EstimatedMinutes, location)
}
