package domain

type Payment struct {
	ID            int64   `json:"id"`
	OrderID       int64   `json:"orderId"`
	Amount        float64 `json:"amount"`
	PaymentMode   string  `json:"paymentMode"`
	PaymentStatus string  `json:"paymentStatus"`
}

func (p Payment) RecordID() int64 { return p.ID }

const (
	PaymentModeCreditCard = "CREDIT_CARD"
	PaymentModeDebitCard  = "DEBIT_CARD"
	PaymentModeUPI        = "UPI"
	PaymentModeNetBanking = "NET_BANKING"
	PaymentModeCash       = "CASH"
)

func PaymentModes() []string {
	return []string{
		PaymentModeCreditCard,
		PaymentModeDebitCard,
		PaymentModeUPI,
		PaymentModeNetBanking,
		PaymentModeCash,
	}
}

const (
	PaymentStatusPending  = "PENDING"
	PaymentStatusSuccess  = "SUCCESS"
	PaymentStatusFailed   = "FAILED"
	PaymentStatusRefunded = "REFUNDED"
)

func PaymentStatuses() []string {
	return []string{
		PaymentStatusPending,
		PaymentStatusSuccess,
		PaymentStatusFailed,
		PaymentStatusRefunded,
	}
}

const (
	ActionProcess = "process"
	ActionRefund  = "refund"
)

func PaymentTransitions() []Transition {
	return []Transition{
		{
			// the backend decides SUCCESS or FAILED, so Target stays empty
			Action: ActionProcess,
			From:   PaymentStatusPending,
			Kind:   TransitionProcess,
		},
		{
			Action: ActionRefund,
			From:   PaymentStatusSuccess,
			Target: PaymentStatusRefunded,
			Kind:   TransitionStatusPatch,
		},
	}
}
