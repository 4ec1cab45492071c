package order

import (
	"errors"
	"fmt"
	"strings"

	"packflow/internal/pkg/errs"
	"packflow/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrItemIsNotConstructed is returned when an Item was not built via NewItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Prices are stored as numeric(12,2).
const priceScale = 2

var MaxPrice = decimal.RequireFromString("9999999999.99")

// ItemType is the product family of a line item. It loosely maps to the
// processing section that handles it but is not enforced by the workflow.
type ItemType int

const (
	UnknownItemType ItemType = iota
	ItemTypeA
	ItemTypeB
	ItemTypeC
)

var itemTypeCodes = map[ItemType]string{
	ItemTypeA: "A",
	ItemTypeB: "B",
	ItemTypeC: "C",
}

// ParseItemType maps "A", "B" or "C" to an ItemType.
func ParseItemType(code string) (ItemType, error) {
	for t, c := range itemTypeCodes {
		if c == code {
			return t, nil
		}
	}
	return UnknownItemType, errs.NewValueIsInvalidErrorWithCause("itemType", fmt.Errorf("%q is not one of A, B, C", code))
}

func (t ItemType) String() string {
	if c, ok := itemTypeCodes[t]; ok {
		return c
	}
	return "Unknown"
}

// Item is one order line. Items are embedded in the order and are not
// independently addressable.
type Item struct {
	itemType    ItemType
	quantity    int
	price       decimal.Decimal
	description string
	photoPath   string

	guard guard.ConstructorGuard
}

// NewItem validates and builds an order line.
//
// Business rules:
//   - itemType must be A, B or C
//   - quantity must be at least 1
//   - price must be between 0 and MaxPrice with at most two decimals
//   - description is required
//   - photoPath is an optional reference to an externally stored image
func NewItem(itemType ItemType, quantity int, price decimal.Decimal, description, photoPath string) (Item, error) {
	item := Item{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		item.setItemType(itemType),
		item.setQuantity(quantity),
		item.setPrice(price),
		item.setDescription(description),
	); err != nil {
		return Item{}, err
	}
	item.photoPath = strings.TrimSpace(photoPath)

	return item, nil
}

// Validate ensures the Item was built through NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i Item) Type() ItemType         { return i.itemType }
func (i Item) Quantity() int          { return i.quantity }
func (i Item) Price() decimal.Decimal { return i.price }
func (i Item) Description() string    { return i.description }
func (i Item) PhotoPath() string      { return i.photoPath }

// Subtotal is quantity × price.
func (i Item) Subtotal() decimal.Decimal {
	return i.price.Mul(decimal.NewFromInt(int64(i.quantity)))
}

func (i *Item) setItemType(t ItemType) error {
	if _, ok := itemTypeCodes[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("itemType", fmt.Errorf("%d is not a valid item type", t))
	}
	i.itemType = t
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is less than 1", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setPrice(price decimal.Decimal) error {
	if price.IsNegative() || price.GreaterThan(MaxPrice) {
		return errs.NewValueIsOutOfRangeError("price", price.String(), "0", MaxPrice.String())
	}
	if !price.Equal(price.Truncate(priceScale)) {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%s has more than %d decimals", price, priceScale))
	}
	i.price = price
	return nil
}

func (i *Item) setDescription(description string) error {
	description = strings.TrimSpace(description)
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	i.description = description
	return nil
}
