package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// FinancialEvent is a scheduled, year-anchored change to the household's
// cash flow or balance sheet. The set of variants is sealed so per-kind
// handling can be checked exhaustively at build time.
//
// Multiple events may share a year; they apply in input-list order with no
// other tie-break.
type FinancialEvent interface {
	EventYear() int
	EventName() string
	isFinancialEvent()
}

// PropertyPurchase buys a property: the down payment leaves liquid wealth,
// the price joins the property value, the new loan principal joins the
// mortgage balance, and NewMonthlyPayment replaces the running monthly
// mortgage payment from the event year onward.
type PropertyPurchase struct {
	Year              int
	Name              string
	PropertyPrice     decimal.Decimal
	DownPayment       decimal.Decimal
	MortgageAmount    decimal.Decimal
	NewMonthlyPayment decimal.Decimal
}

// PropertySale sells the property and pays off the full outstanding
// mortgage balance: net proceeds (sale price minus balance minus selling
// costs) join liquid wealth, the property value and mortgage balance drop
// to zero, and the monthly mortgage payment is cleared from the event year
// onward.
type PropertySale struct {
	Year         int
	Name         string
	SalePrice    decimal.Decimal
	SellingCosts decimal.Decimal
}

// ExpenseChange adds MonthlyDelta (possibly negative) to the running
// monthly living expenses from the event year onward.
type ExpenseChange struct {
	Year         int
	Name         string
	MonthlyDelta decimal.Decimal
}

// RentalIncome replaces the running monthly rental income from the event
// year onward.
type RentalIncome struct {
	Year          int
	Name          string
	MonthlyAmount decimal.Decimal
}

// Windfall adds Amount to liquid wealth once, at the event year.
type Windfall struct {
	Year   int
	Name   string
	Amount decimal.Decimal
}

// OneTimeExpense subtracts Amount from liquid wealth once, at the event year.
type OneTimeExpense struct {
	Year   int
	Name   string
	Amount decimal.Decimal
}

func (e PropertyPurchase) EventYear() int { return e.Year }
func (e PropertySale) EventYear() int     { return e.Year }
func (e ExpenseChange) EventYear() int    { return e.Year }
func (e RentalIncome) EventYear() int     { return e.Year }
func (e Windfall) EventYear() int         { return e.Year }
func (e OneTimeExpense) EventYear() int   { return e.Year }

func (e PropertyPurchase) EventName() string { return e.Name }
func (e PropertySale) EventName() string     { return e.Name }
func (e ExpenseChange) EventName() string    { return e.Name }
func (e RentalIncome) EventName() string     { return e.Name }
func (e Windfall) EventName() string         { return e.Name }
func (e OneTimeExpense) EventName() string   { return e.Name }

func (PropertyPurchase) isFinancialEvent() {}
func (PropertySale) isFinancialEvent()     {}
func (ExpenseChange) isFinancialEvent()    {}
func (RentalIncome) isFinancialEvent()     {}
func (Windfall) isFinancialEvent()         {}
func (OneTimeExpense) isFinancialEvent()   {}

// Event kind tags used on the wire (YAML config files and the JSON
// flattening in the results store).
const (
	KindPropertyPurchase = "property_purchase"
	KindPropertySale     = "property_sale"
	KindExpenseChange    = "expense_change"
	KindRentalIncome     = "rental_income"
	KindWindfall         = "windfall"
	KindOneTimeExpense   = "one_time_expense"
)

// EventList decodes a heterogeneous list of financial events from a
// kind-tagged envelope representation.
type EventList []FinancialEvent

// eventEnvelope is the superset wire shape for all event kinds.
type eventEnvelope struct {
	Kind              string          `yaml:"kind" json:"kind"`
	Year              int             `yaml:"year" json:"year"`
	Name              string          `yaml:"name" json:"name"`
	PropertyPrice     decimal.Decimal `yaml:"property_price,omitempty" json:"property_price,omitempty"`
	DownPayment       decimal.Decimal `yaml:"down_payment,omitempty" json:"down_payment,omitempty"`
	MortgageAmount    decimal.Decimal `yaml:"mortgage_amount,omitempty" json:"mortgage_amount,omitempty"`
	NewMonthlyPayment decimal.Decimal `yaml:"new_monthly_payment,omitempty" json:"new_monthly_payment,omitempty"`
	SalePrice         decimal.Decimal `yaml:"sale_price,omitempty" json:"sale_price,omitempty"`
	SellingCosts      decimal.Decimal `yaml:"selling_costs,omitempty" json:"selling_costs,omitempty"`
	MonthlyDelta      decimal.Decimal `yaml:"monthly_delta,omitempty" json:"monthly_delta,omitempty"`
	MonthlyAmount     decimal.Decimal `yaml:"monthly_amount,omitempty" json:"monthly_amount,omitempty"`
	Amount            decimal.Decimal `yaml:"amount,omitempty" json:"amount,omitempty"`
}

func (env eventEnvelope) toEvent() (FinancialEvent, error) {
	switch env.Kind {
	case KindPropertyPurchase:
		return PropertyPurchase{
			Year:              env.Year,
			Name:              env.Name,
			PropertyPrice:     env.PropertyPrice,
			DownPayment:       env.DownPayment,
			MortgageAmount:    env.MortgageAmount,
			NewMonthlyPayment: env.NewMonthlyPayment,
		}, nil
	case KindPropertySale:
		return PropertySale{Year: env.Year, Name: env.Name, SalePrice: env.SalePrice, SellingCosts: env.SellingCosts}, nil
	case KindExpenseChange:
		return ExpenseChange{Year: env.Year, Name: env.Name, MonthlyDelta: env.MonthlyDelta}, nil
	case KindRentalIncome:
		return RentalIncome{Year: env.Year, Name: env.Name, MonthlyAmount: env.MonthlyAmount}, nil
	case KindWindfall:
		return Windfall{Year: env.Year, Name: env.Name, Amount: env.Amount}, nil
	case KindOneTimeExpense:
		return OneTimeExpense{Year: env.Year, Name: env.Name, Amount: env.Amount}, nil
	default:
		return nil, fmt.Errorf("unknown event kind %q", env.Kind)
	}
}

func envelopeFor(ev FinancialEvent) eventEnvelope {
	switch e := ev.(type) {
	case PropertyPurchase:
		return eventEnvelope{
			Kind:              KindPropertyPurchase,
			Year:              e.Year,
			Name:              e.Name,
			PropertyPrice:     e.PropertyPrice,
			DownPayment:       e.DownPayment,
			MortgageAmount:    e.MortgageAmount,
			NewMonthlyPayment: e.NewMonthlyPayment,
		}
	case PropertySale:
		return eventEnvelope{Kind: KindPropertySale, Year: e.Year, Name: e.Name, SalePrice: e.SalePrice, SellingCosts: e.SellingCosts}
	case ExpenseChange:
		return eventEnvelope{Kind: KindExpenseChange, Year: e.Year, Name: e.Name, MonthlyDelta: e.MonthlyDelta}
	case RentalIncome:
		return eventEnvelope{Kind: KindRentalIncome, Year: e.Year, Name: e.Name, MonthlyAmount: e.MonthlyAmount}
	case Windfall:
		return eventEnvelope{Kind: KindWindfall, Year: e.Year, Name: e.Name, Amount: e.Amount}
	case OneTimeExpense:
		return eventEnvelope{Kind: KindOneTimeExpense, Year: e.Year, Name: e.Name, Amount: e.Amount}
	default:
		panic(fmt.Sprintf("unhandled event type %T", ev))
	}
}

// UnmarshalYAML implements yaml.Unmarshaler for kind-tagged event lists.
func (el *EventList) UnmarshalYAML(value *yaml.Node) error {
	var envelopes []eventEnvelope
	if err := value.Decode(&envelopes); err != nil {
		return err
	}
	events := make(EventList, 0, len(envelopes))
	for _, env := range envelopes {
		ev, err := env.toEvent()
		if err != nil {
			return err
		}
		events = append(events, ev)
	}
	*el = events
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (el EventList) MarshalYAML() (interface{}, error) {
	envelopes := make([]eventEnvelope, len(el))
	for i, ev := range el {
		envelopes[i] = envelopeFor(ev)
	}
	return envelopes, nil
}

// MarshalJSON implements json.Marshaler for the results store.
func (el EventList) MarshalJSON() ([]byte, error) {
	envelopes := make([]eventEnvelope, len(el))
	for i, ev := range el {
		envelopes[i] = envelopeFor(ev)
	}
	return jsonMarshal(envelopes)
}

// UnmarshalJSON implements json.Unmarshaler.
func (el *EventList) UnmarshalJSON(data []byte) error {
	var envelopes []eventEnvelope
	if err := jsonUnmarshal(data, &envelopes); err != nil {
		return err
	}
	events := make(EventList, 0, len(envelopes))
	for _, env := range envelopes {
		ev, err := env.toEvent()
		if err != nil {
			return err
		}
		events = append(events, ev)
	}
	*el = events
	return nil
}
