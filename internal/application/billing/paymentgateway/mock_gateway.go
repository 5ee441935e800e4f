package paymentgateway

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hireloop/hireloop/internal/domain/billing"
	"github.com/hireloop/hireloop/internal/shared/biztime"
	"github.com/hireloop/hireloop/internal/shared/id"
)

const mockIDLength = 14

type testCard struct {
	brand string
	err   string
}

// testCards mirrors the processor's published test numbers.
var testCards = map[string]testCard{
	"4242424242424242": {brand: "visa"},
	"4000056655665556": {brand: "visa"},
	"5555555555554444": {brand: "mastercard"},
	"378282246310005":  {brand: "amex"},
	"4000000000000002": {brand: "visa", err: "Your card was declined."},
	"4000000000009995": {brand: "visa", err: "Your card has insufficient funds."},
	"4000000000000069": {brand: "visa", err: "Your card has expired."},
	"4000000000000127": {brand: "visa", err: "Your card's security code is incorrect."},
}

type MockCustomer struct {
	ID                   string
	Email                string
	Name                 string
	DefaultPaymentMethod string
	CreatedAt            time.Time
}

type MockSubscription struct {
	ID          string
	CustomerID  string
	Tier        billing.Tier
	Cycle       billing.BillingCycle
	Status      string
	PeriodStart time.Time
	PeriodEnd   time.Time
	CanceledAt  *time.Time
	// CancelAtPeriodEnd is set by a deferred cancellation.
	CancelAtPeriodEnd bool
}

type MockCharge struct {
	ID          string
	CustomerID  string
	Amount      decimal.Decimal
	Description string
}

// MemoryStore holds the in-memory gateway's objects. It is injected so tests and the
// server can share or reset it.
type MemoryStore struct {
	mu             sync.Mutex
	customers      map[string]*MockCustomer
	paymentMethods map[string]*billing.PaymentMethod
	subscriptions  map[string]*MockSubscription
	charges        []MockCharge
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		customers:      make(map[string]*MockCustomer),
		paymentMethods: make(map[string]*billing.PaymentMethod),
		subscriptions:  make(map[string]*MockSubscription),
	}
}

func (s *MemoryStore) Customer(id string) (MockCustomer, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.customers[id]
	if !ok {
		return MockCustomer{}, false
	}
	return *c, true
}

func (s *MemoryStore) Subscription(id string) (MockSubscription, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sub, ok := s.subscriptions[id]
	if !ok {
		return MockSubscription{}, false
	}
	return *sub, true
}

func (s *MemoryStore) Charges() []MockCharge {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]MockCharge(nil), s.charges...)
}

// MockGateway is an in-memory PaymentGateway that accepts the processor's test cards
// and any other Luhn-valid number.
type MockGateway struct {
	store *MemoryStore
	now   func() time.Time
}

var _ PaymentGateway = (*MockGateway)(nil)

func NewMockGateway(store *MemoryStore) *MockGateway {
	if store == nil {
		store = NewMemoryStore()
	}
	return &MockGateway{store: store, now: biztime.NowUTC}
}

func (g *MockGateway) CreateCustomer(ctx context.Context, email, name string) (*Result, error) {
	customerID, err := id.GenerateWithPrefix(id.PrefixCustomer, mockIDLength)
	if err != nil {
		return nil, err
	}

	g.store.mu.Lock()
	defer g.store.mu.Unlock()
	g.store.customers[customerID] = &MockCustomer{ID: customerID, Email: email, Name: name, CreatedAt: g.now()}
	return &Result{Success: true, CustomerID: customerID}, nil
}

func (g *MockGateway) AttachPaymentMethod(ctx context.Context, customerID string, card CardDetails) (*Result, error) {
	number := NormalizeCardNumber(card.Number)
	brand, msg := ValidateCard(number)
	if msg != "" {
		return failed(msg), nil
	}

	pmID, err := id.GenerateWithPrefix(id.PrefixPaymentMethod, mockIDLength)
	if err != nil {
		return nil, err
	}
	pm := &billing.PaymentMethod{
		Last4:    number[len(number)-4:],
		Brand:    brand,
		ExpMonth: card.ExpMonth,
		ExpYear:  card.ExpYear,
	}

	g.store.mu.Lock()
	defer g.store.mu.Unlock()
	g.store.paymentMethods[pmID] = pm
	if c, ok := g.store.customers[customerID]; ok {
		c.DefaultPaymentMethod = pmID
	}

	cardCopy := *pm
	return &Result{Success: true, CustomerID: customerID, PaymentMethodID: pmID, Card: &cardCopy}, nil
}

func (g *MockGateway) CreateSubscription(ctx context.Context, customerID string, tier billing.Tier, cycle billing.BillingCycle) (*Result, error) {
	subID, err := id.GenerateWithPrefix(id.PrefixSubscription, mockIDLength)
	if err != nil {
		return nil, err
	}

	g.store.mu.Lock()
	defer g.store.mu.Unlock()

	c, ok := g.store.customers[customerID]
	if !ok {
		return failed("Customer not found"), nil
	}
	pm, ok := g.store.paymentMethods[c.DefaultPaymentMethod]
	if !ok {
		return failed("No payment method on file"), nil
	}

	start := g.now()
	sub := &MockSubscription{
		ID:          subID,
		CustomerID:  customerID,
		Tier:        tier,
		Cycle:       cycle,
		Status:      string(billing.StatusActive),
		PeriodStart: start,
		PeriodEnd:   biztime.AddMonths(start, cycle.Months()),
	}
	g.store.subscriptions[subID] = sub

	cardCopy := *pm
	return &Result{
		Success:        true,
		CustomerID:     customerID,
		SubscriptionID: subID,
		Status:         sub.Status,
		PeriodStart:    sub.PeriodStart,
		PeriodEnd:      sub.PeriodEnd,
		Card:           &cardCopy,
	}, nil
}

func (g *MockGateway) CancelSubscription(ctx context.Context, subscriptionID string, atPeriodEnd bool) (*Result, error) {
	g.store.mu.Lock()
	defer g.store.mu.Unlock()

	sub, ok := g.store.subscriptions[subscriptionID]
	if !ok {
		return failed("Subscription not found"), nil
	}
	now := g.now()
	sub.CanceledAt = &now
	if atPeriodEnd {
		sub.CancelAtPeriodEnd = true
	} else {
		sub.Status = string(billing.StatusCanceled)
	}
	return &Result{Success: true, SubscriptionID: sub.ID, CustomerID: sub.CustomerID, Status: sub.Status}, nil
}

func (g *MockGateway) UpdateSubscription(ctx context.Context, subscriptionID string, tier billing.Tier, cycle billing.BillingCycle) (*Result, error) {
	g.store.mu.Lock()
	defer g.store.mu.Unlock()

	sub, ok := g.store.subscriptions[subscriptionID]
	if !ok {
		return failed("Subscription not found"), nil
	}
	if tier != "" {
		sub.Tier = tier
	}
	if cycle != "" {
		sub.Cycle = cycle
	}
	return &Result{
		Success:        true,
		SubscriptionID: sub.ID,
		CustomerID:     sub.CustomerID,
		Status:         sub.Status,
		PeriodStart:    sub.PeriodStart,
		PeriodEnd:      sub.PeriodEnd,
	}, nil
}

func (g *MockGateway) ChargeOnce(ctx context.Context, customerID string, amount decimal.Decimal, description string) (*Result, error) {
	paymentID, err := id.GenerateWithPrefix(id.PrefixPaymentIntent, mockIDLength)
	if err != nil {
		return nil, err
	}

	g.store.mu.Lock()
	defer g.store.mu.Unlock()

	c, ok := g.store.customers[customerID]
	if !ok {
		return failed("Customer not found"), nil
	}
	if c.DefaultPaymentMethod == "" {
		return failed("No payment method on file"), nil
	}

	g.store.charges = append(g.store.charges, MockCharge{
		ID:          paymentID,
		CustomerID:  customerID,
		Amount:      amount,
		Description: description,
	})
	return &Result{Success: true, CustomerID: customerID, PaymentID: paymentID}, nil
}

// NormalizeCardNumber strips spaces and dashes.
func NormalizeCardNumber(number string) string {
	return strings.NewReplacer(" ", "", "-", "").Replace(number)
}

// ValidateCard returns the card brand, or a non-empty decline message.
func ValidateCard(number string) (brand string, declineMessage string) {
	if tc, ok := testCards[number]; ok {
		return tc.brand, tc.err
	}
	if len(number) < 13 || len(number) > 19 || !isDigits(number) || !luhnValid(number) {
		return "unknown", "Invalid card number"
	}
	return DetectBrand(number), ""
}

func DetectBrand(number string) string {
	switch {
	case strings.HasPrefix(number, "4"):
		return "visa"
	case len(number) >= 2 && number[0] == '5' && number[1] >= '1' && number[1] <= '5':
		return "mastercard"
	case strings.HasPrefix(number, "34"), strings.HasPrefix(number, "37"):
		return "amex"
	case strings.HasPrefix(number, "6011"):
		return "discover"
	}
	return "unknown"
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

func luhnValid(number string) bool {
	sum := 0
	double := false
	for i := len(number) - 1; i >= 0; i-- {
		d := int(number[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}
