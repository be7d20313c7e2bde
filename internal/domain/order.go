package domain

type Order struct {
	ID            int64   `json:"id"`
	AccountID     int64   `json:"accountId"`
	CatalogItemID int64   `json:"catalogItemId"`
	Quantity      int     `json:"quantity"`
	TotalPrice    float64 `json:"totalPrice"`
	Status        string  `json:"status"`
}

func (o Order) RecordID() int64 { return o.ID }

const (
	OrderStatusPending   = "PENDING"
	OrderStatusConfirmed = "CONFIRMED"
	OrderStatusShipped   = "SHIPPED"
	OrderStatusDelivered = "DELIVERED"
	OrderStatusCancelled = "CANCELLED"
)

func OrderStatuses() []string {
	return []string{
		OrderStatusPending,
		OrderStatusConfirmed,
		OrderStatusShipped,
		OrderStatusDelivered,
		OrderStatusCancelled,
	}
}

const ActionConfirm = "confirm"

// OrderTransitions lists the validated one-click actions. Everything else
// goes through the edit form's unchecked status selector.
func OrderTransitions() []Transition {
	return []Transition{
		{
			Action: ActionConfirm,
			From:   OrderStatusPending,
			Target: OrderStatusConfirmed,
			Kind:   TransitionStatusPatch,
		},
	}
}
