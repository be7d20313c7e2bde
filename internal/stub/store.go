package stub

import (
	"math/rand"
	"sync"

	"backoffice/internal/domain"
)

// Store holds the stub backend's state for all four domains. Everything is
// in-memory and insertion-ordered, which is exactly what list responses
// must preserve.
type Store struct {
	mu  sync.Mutex
	rng *rand.Rand

	accounts     []domain.Account
	catalogItems []domain.CatalogItem
	orders       []domain.Order
	payments     []domain.Payment

	nextAccountID     int64
	nextCatalogItemID int64
	nextOrderID       int64
	nextPaymentID     int64
}

// NewStore creates an empty store. The seed drives payment processing
// outcomes so tests can replay a run.
func NewStore(seed int64) *Store {
	return &Store{
		rng:               rand.New(rand.NewSource(seed)),
		nextAccountID:     1,
		nextCatalogItemID: 1,
		nextOrderID:       1,
		nextPaymentID:     1,
	}
}

func (s *Store) ListAccounts() []domain.Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Account, len(s.accounts))
	copy(out, s.accounts)
	return out
}

func (s *Store) CreateAccount(a domain.Account) domain.Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	a.ID = s.nextAccountID
	s.nextAccountID++
	s.accounts = append(s.accounts, a)
	return a
}

func (s *Store) GetAccount(id int64) (domain.Account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.accounts {
		if a.ID == id {
			return a, true
		}
	}
	return domain.Account{}, false
}

func (s *Store) UpdateAccount(id int64, a domain.Account) (domain.Account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.accounts {
		if s.accounts[i].ID == id {
			a.ID = id
			s.accounts[i] = a
			return a, true
		}
	}
	return domain.Account{}, false
}

func (s *Store) DeleteAccount(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.accounts {
		if s.accounts[i].ID == id {
			s.accounts = append(s.accounts[:i], s.accounts[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Store) ListCatalogItems() []domain.CatalogItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.CatalogItem, len(s.catalogItems))
	copy(out, s.catalogItems)
	return out
}

func (s *Store) CreateCatalogItem(c domain.CatalogItem) domain.CatalogItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = s.nextCatalogItemID
	s.nextCatalogItemID++
	s.catalogItems = append(s.catalogItems, c)
	return c
}

func (s *Store) GetCatalogItem(id int64) (domain.CatalogItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.catalogItems {
		if c.ID == id {
			return c, true
		}
	}
	return domain.CatalogItem{}, false
}

func (s *Store) UpdateCatalogItem(id int64, c domain.CatalogItem) (domain.CatalogItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.catalogItems {
		if s.catalogItems[i].ID == id {
			c.ID = id
			s.catalogItems[i] = c
			return c, true
		}
	}
	return domain.CatalogItem{}, false
}

func (s *Store) DeleteCatalogItem(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.catalogItems {
		if s.catalogItems[i].ID == id {
			s.catalogItems = append(s.catalogItems[:i], s.catalogItems[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Store) ListOrders() []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

func (s *Store) CreateOrder(o domain.Order) domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	o.ID = s.nextOrderID
	s.nextOrderID++
	if o.Status == "" {
		o.Status = domain.OrderStatusPending
	}
	s.orders = append(s.orders, o)
	return o
}

func (s *Store) GetOrder(id int64) (domain.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.orders {
		if o.ID == id {
			return o, true
		}
	}
	return domain.Order{}, false
}

func (s *Store) UpdateOrder(id int64, o domain.Order) (domain.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == id {
			o.ID = id
			s.orders[i] = o
			return o, true
		}
	}
	return domain.Order{}, false
}

func (s *Store) DeleteOrder(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders = append(s.orders[:i], s.orders[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Store) SetOrderStatus(id int64, status string) (domain.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i].Status = status
			return s.orders[i], true
		}
	}
	return domain.Order{}, false
}

func (s *Store) ListPayments() []domain.Payment {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Payment, len(s.payments))
	copy(out, s.payments)
	return out
}

func (s *Store) CreatePayment(p domain.Payment) domain.Payment {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = s.nextPaymentID
	s.nextPaymentID++
	if p.PaymentStatus == "" {
		p.PaymentStatus = domain.PaymentStatusPending
	}
	s.payments = append(s.payments, p)
	return p
}

func (s *Store) GetPayment(id int64) (domain.Payment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.payments {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Payment{}, false
}

func (s *Store) UpdatePayment(id int64, p domain.Payment) (domain.Payment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.payments {
		if s.payments[i].ID == id {
			p.ID = id
			s.payments[i] = p
			return p, true
		}
	}
	return domain.Payment{}, false
}

func (s *Store) DeletePayment(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.payments {
		if s.payments[i].ID == id {
			s.payments = append(s.payments[:i], s.payments[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Store) SetPaymentStatus(id int64, status string) (domain.Payment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.payments {
		if s.payments[i].ID == id {
			s.payments[i].PaymentStatus = status
			return s.payments[i], true
		}
	}
	return domain.Payment{}, false
}

// ProcessPayment settles a pending payment. The outcome is the stub's call,
// like the real processor: roughly half succeed.
func (s *Store) ProcessPayment(id int64) (domain.Payment, bool, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.payments {
		if s.payments[i].ID != id {
			continue
		}
		if s.payments[i].PaymentStatus != domain.PaymentStatusPending {
			return s.payments[i], true, false
		}
		if s.rng.Intn(2) == 0 {
			s.payments[i].PaymentStatus = domain.PaymentStatusSuccess
		} else {
			s.payments[i].PaymentStatus = domain.PaymentStatusFailed
		}
		return s.payments[i], true, true
	}
	return domain.Payment{}, false, false
}
