package queries

import (
	"context"
	"database/sql"

	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetStoreOrdersQueryHandler reads a store's order history from the database.
//
// Example:
//
//	handler := NewGetStoreOrdersQueryHandler(db)
//	query, _ := NewGetStoreOrdersQuery("store-1")
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get store orders: %w", err)
//	}
//	fmt.Printf("%d orders for store\n", len(orders))
type GetStoreOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetStoreOrdersQueryHandler creates a handler for store order queries.
// Requires a GORM database connection for query execution.
func NewGetStoreOrdersQueryHandler(db *gorm.DB) GetStoreOrdersQueryHandler {
	return GetStoreOrdersQueryHandler{db: db}
}

// Handle executes the query and returns the store's orders, newest first.
func (h GetStoreOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetStoreOrdersQuery,
) ([]GetStoreOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetStoreOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_number,
			customer_id,
			status,
			payment_status,
			payment_method,
			total_amount,
			order_date,
			delivered_at
		FROM orders
		WHERE store_id = ?
		ORDER BY order_date DESC
	`, query.StoreID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetStoreOrdersQueryResponse
		var id uuid.UUID
		var deliveredAt sql.NullTime

		err = rows.Scan(
			&id,
			&orderResp.OrderNumber,
			&orderResp.CustomerID,
			&orderResp.Status,
			&orderResp.PaymentStatus,
			&orderResp.PaymentMethod,
			&orderResp.TotalAmount,
			&orderResp.OrderDate,
			&deliveredAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromUUID(id)
		if idErr != nil {
			return nil, idErr
		}
		orderResp.ID = orderID

		if deliveredAt.Valid {
			t := deliveredAt.Time
			orderResp.DeliveredAt = &t
		}

		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
