// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Statuses are stored as their wire strings so rows stay readable and the
// conditional status update can compare against them directly. The order
// number carries a unique index; a violated constraint surfaces a concurrent
// draw of the same sequence.
type OrderDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderNumber     string     `gorm:"size:32;uniqueIndex"`
	CustomerID      string     `gorm:"index"`
	StoreID         string     `gorm:"index"`
	Items           []ItemDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Status          string     `gorm:"size:16;index"`
	PaymentStatus   string     `gorm:"size:16"`
	PaymentMethod   string     `gorm:"size:32"`
	ShippingAddress AddressDTO `gorm:"embedded;embeddedPrefix:shipping_"`
	ShippingCost    decimal.Decimal `gorm:"type:numeric(12,2)"`
	Subtotal        decimal.Decimal `gorm:"type:numeric(12,2)"`
	TaxAmount       decimal.Decimal `gorm:"type:numeric(12,2)"`
	TotalAmount     decimal.Decimal `gorm:"type:numeric(12,2)"`
	TrackingNumber  string
	OrderDate       time.Time
	DeliveredAt     *time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one order line item row.
type ItemDTO struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	ProductID string
	Name      string
	Quantity  int
	Price     decimal.Decimal `gorm:"type:numeric(12,2)"`
	Image     string
}

// TableName specifies the database table name for order line items.
func (ItemDTO) TableName() string {
	return "order_items"
}

// AddressDTO represents the embedded shipping destination within the order table.
type AddressDTO struct {
	Street     string
	City       string
	State      string
	PostalCode string
	Country    string
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := aggregate.Items()
	itemDTOs := make([]ItemDTO, 0, len(items))
	for _, item := range items {
		itemDTOs = append(itemDTOs, ItemDTO{
			OrderID:   aggregate.ID().Bytes(),
			ProductID: item.ProductID(),
			Name:      item.Name(),
			Quantity:  item.Quantity(),
			Price:     item.Price(),
			Image:     item.Image(),
		})
	}

	address := aggregate.ShippingAddress()
	totals := aggregate.Totals()

	return OrderDTO{
		ID:            aggregate.ID().Bytes(),
		OrderNumber:   aggregate.OrderNumber().String(),
		CustomerID:    aggregate.CustomerID(),
		StoreID:       aggregate.StoreID(),
		Items:         itemDTOs,
		Status:        aggregate.Status().String(),
		PaymentStatus: aggregate.PaymentStatus().String(),
		PaymentMethod: aggregate.PaymentMethod().String(),
		ShippingAddress: AddressDTO{
			Street:     address.Street(),
			City:       address.City(),
			State:      address.State(),
			PostalCode: address.PostalCode(),
			Country:    address.Country(),
		},
		ShippingCost:   totals.ShippingCost(),
		Subtotal:       totals.Subtotal(),
		TaxAmount:      totals.TaxAmount(),
		TotalAmount:    totals.TotalAmount(),
		TrackingNumber: aggregate.TrackingNumber(),
		OrderDate:      aggregate.OrderDate(),
		DeliveredAt:    aggregate.DeliveredAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status and payment state using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromUUID(dto.ID)
	if err != nil {
		return nil, err
	}

	orderNumber, err := order.ParseOrderNumber(dto.OrderNumber)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := order.NewItem(
			itemDTO.ProductID,
			itemDTO.Name,
			itemDTO.Quantity,
			itemDTO.Price,
			itemDTO.Image,
		)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	paymentStatus, err := order.PaymentStatusFromString(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}

	paymentMethod, err := order.PaymentMethodFromString(dto.PaymentMethod)
	if err != nil {
		return nil, err
	}

	address, err := order.NewAddress(
		dto.ShippingAddress.Street,
		dto.ShippingAddress.City,
		dto.ShippingAddress.State,
		dto.ShippingAddress.PostalCode,
		dto.ShippingAddress.Country,
	)
	if err != nil {
		return nil, err
	}

	totals, err := order.NewTotals(dto.ShippingCost, dto.Subtotal, dto.TaxAmount, dto.TotalAmount)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		orderNumber,
		dto.CustomerID,
		dto.StoreID,
		items,
		status,
		paymentStatus,
		paymentMethod,
		address,
		totals,
		dto.TrackingNumber,
		dto.OrderDate,
		dto.DeliveredAt,
	)
}
