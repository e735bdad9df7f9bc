package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/irabeny89/ebbs-io/internal/domain/entity"
)

// OrderModel mirrors the 'orders' table.
type OrderModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ClientID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Phone          string    `gorm:"type:varchar(30);not null"`
	State          string    `gorm:"type:varchar(100);not null"`
	Address        string    `gorm:"type:text;not null"`
	NearestBusStop string    `gorm:"type:varchar(255)"`
	DeliveryDate   *time.Time
	TotalCost      float64 `gorm:"not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Items []OrderItemModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table. Product name, price and the
// provider title are denormalized at order time so later catalog edits never
// rewrite order history.
type OrderItemModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID       uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID     uuid.UUID `gorm:"type:uuid;not null"`
	ProviderID    uuid.UUID `gorm:"type:uuid;not null;index"`
	ProviderTitle string    `gorm:"type:varchar(100);not null"`
	Name          string    `gorm:"type:varchar(100);not null"`
	Price         float64   `gorm:"not null"`
	Quantity      int       `gorm:"not null"`
	Cost          float64   `gorm:"not null"`
	Status        string    `gorm:"type:varchar(20);not null;default:'PENDING'"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}

// ToEntity converts the row and its items into a domain entity.
func (m *OrderModel) ToEntity() *entity.Order {
	items := make([]entity.OrderItem, 0, len(m.Items))
	for i := range m.Items {
		items = append(items, m.Items[i].ToEntity())
	}

	return &entity.Order{
		ID:             m.ID,
		ClientID:       m.ClientID,
		Items:          items,
		Phone:          m.Phone,
		State:          m.State,
		Address:        m.Address,
		NearestBusStop: m.NearestBusStop,
		DeliveryDate:   m.DeliveryDate,
		TotalCost:      m.TotalCost,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// ToEntity converts the item row into a domain value.
func (m *OrderItemModel) ToEntity() entity.OrderItem {
	return entity.OrderItem{
		ID:            m.ID,
		ProductID:     m.ProductID,
		ProviderID:    m.ProviderID,
		ProviderTitle: m.ProviderTitle,
		Name:          m.Name,
		Price:         m.Price,
		Quantity:      m.Quantity,
		Cost:          m.Cost,
		Status:        entity.OrderStatus(m.Status),
	}
}

// OrderModelFromEntity converts a domain entity into rows.
func OrderModelFromEntity(order *entity.Order) *OrderModel {
	items := make([]OrderItemModel, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderItemModel{
			ID:            item.ID,
			OrderID:       order.ID,
			ProductID:     item.ProductID,
			ProviderID:    item.ProviderID,
			ProviderTitle: item.ProviderTitle,
			Name:          item.Name,
			Price:         item.Price,
			Quantity:      item.Quantity,
			Cost:          item.Cost,
			Status:        item.Status.String(),
		})
	}

	return &OrderModel{
		ID:             order.ID,
		ClientID:       order.ClientID,
		Phone:          order.Phone,
		State:          order.State,
		Address:        order.Address,
		NearestBusStop: order.NearestBusStop,
		DeliveryDate:   order.DeliveryDate,
		TotalCost:      order.TotalCost,
		CreatedAt:      order.CreatedAt,
		UpdatedAt:      order.UpdatedAt,
		Items:          items,
	}
}
