package order

import (
	"errors"
	"fmt"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory functions.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrOrderAlreadyProcessed is returned when a structural modification (items,
	// customer, discount, deletion) is attempted on an order that has left the
	// Created status.
	ErrOrderAlreadyProcessed = errors.New("order cannot be modified as it has already been processed")

	// ErrDuplicateProduct is the sentinel for item batches or aggregates that
	// reference the same product more than once.
	ErrDuplicateProduct = errors.New("duplicate product")
)

// DuplicateProductError indicates that two items reference the same product.
// The offending product id is carried for the caller to act on.
type DuplicateProductError struct {
	ProductID kernel.UUID
}

// NewDuplicateProductError creates a DuplicateProductError naming the product.
func NewDuplicateProductError(productID kernel.UUID) *DuplicateProductError {
	return &DuplicateProductError{ProductID: productID}
}

func (e *DuplicateProductError) Error() string {
	return fmt.Sprintf("duplicate product ID: %s", e.ProductID)
}

func (e *DuplicateProductError) Unwrap() error {
	return ErrDuplicateProduct
}

// Order represents a customer order in the system. It is the aggregate root
// that owns its items and manages the order lifecycle from creation through
// processing to delivery or cancellation.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and customer reference
//   - Product identifiers among its items are unique at all times
//   - Total is derived: max(0, sum of item price x quantity minus discount)
//   - Items, discount, and customer are mutable only while status is Created
//   - Status transitions follow the transition table in Status
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods. Item iteration order is the
// insertion order, which keeps total computation deterministic.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID references the ordering customer (weak reference)
	customerID kernel.UUID

	// items is the owned collection of order lines, in insertion order
	items []*Item

	// discount is subtracted from the item sum; the total never goes negative
	discount kernel.Money

	// status represents the current state in the order lifecycle
	status Status

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new empty Order in Created status for the given customer.
// Items are added afterwards via AddItem; an order must hold at least one
// item before it is first persisted.
//
// A zero-value discount can be expressed with kernel.ZeroMoney().
func NewOrder(id, customerID kernel.UUID, discount kernel.Money) (*Order, error) {
	order := &Order{
		status:        Created,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setDiscount(discount),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence.
// The status must be valid and the item set free of duplicate products;
// persistence cannot be trusted to have preserved the invariant across
// manual interventions, so it is re-checked here.
func RestoreOrder(
	id, customerID kernel.UUID,
	items []*Item,
	discount kernel.Money,
	status Status,
) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	order := &Order{
		status:        status,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setDiscount(discount),
	); err != nil {
		return nil, err
	}

	seen := make(map[kernel.UUID]struct{}, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
		if _, ok := seen[item.ProductID()]; ok {
			return nil, NewDuplicateProductError(item.ProductID())
		}
		seen[item.ProductID()] = struct{}{}
	}
	order.items = items

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a factory function.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the ordering customer.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Items returns the order lines in insertion order.
// The returned slice is a copy; the items themselves are the aggregate's.
func (o *Order) Items() []*Item {
	items := make([]*Item, len(o.items))
	copy(items, o.items)
	return items
}

// HasItems reports whether the order holds at least one item.
func (o *Order) HasItems() bool {
	return len(o.items) > 0
}

// Discount returns the order discount.
func (o *Order) Discount() kernel.Money {
	return o.discount
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CanBeModified reports whether structural modifications (items, customer,
// discount, deletion) are currently permitted. True only in Created status.
func (o *Order) CanBeModified() bool {
	return o.status == Created
}

// Total computes the derived order total:
//
//	total = max(0, sum(item.price x item.quantity) - discount)
//
// The discount may exceed the item sum; the total never goes negative.
// Total is pure: it never mutates state and never fails.
func (o *Order) Total() kernel.Money {
	sum := kernel.ZeroMoney()
	for _, item := range o.items {
		sum = sum.Add(item.Subtotal())
	}
	return sum.SubFloorZero(o.discount)
}

// AddItem appends a new order line with a snapshot unit price.
//
// This method enforces the following business rules:
//   - The order must still be in Created status
//   - No existing item may reference the same product
//   - Quantity must be positive and price non-negative
//
// Fails with ErrOrderAlreadyProcessed or DuplicateProductError accordingly.
func (o *Order) AddItem(productID kernel.UUID, quantity int, price kernel.Money) error {
	if !o.CanBeModified() {
		return ErrOrderAlreadyProcessed
	}

	if o.findItem(productID) != nil {
		return NewDuplicateProductError(productID)
	}

	item, err := NewItem(productID, quantity, price)
	if err != nil {
		return err
	}

	o.items = append(o.items, item)
	return nil
}

// ReplaceItems clears and replaces the entire item collection.
// The caller must have already validated that newItems contains no duplicate
// product identifiers; this is the full-update path, not a merge.
func (o *Order) ReplaceItems(newItems []*Item) error {
	if !o.CanBeModified() {
		return ErrOrderAlreadyProcessed
	}

	for _, item := range newItems {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = newItems
	return nil
}

// UpdateItem replaces quantity and price of the line referencing productID,
// preserving item identity. Fails with an object-not-found error naming the
// product when no line matches.
func (o *Order) UpdateItem(productID kernel.UUID, quantity int, price kernel.Money) error {
	if !o.CanBeModified() {
		return ErrOrderAlreadyProcessed
	}

	item := o.findItem(productID)
	if item == nil {
		return errs.NewObjectNotFoundError("product", productID.String())
	}

	return item.update(quantity, price)
}

// RemoveItem removes the line referencing productID.
// Removing the last item is permitted; the at-least-one-item rule applies
// only at creation time.
func (o *Order) RemoveItem(productID kernel.UUID) error {
	if !o.CanBeModified() {
		return ErrOrderAlreadyProcessed
	}

	for i, item := range o.items {
		if item.ProductID().IsEqual(productID) {
			o.items = append(o.items[:i], o.items[i+1:]...)
			return nil
		}
	}

	return errs.NewObjectNotFoundError("product", productID.String())
}

// ChangeCustomer re-points the order at a different customer.
func (o *Order) ChangeCustomer(customerID kernel.UUID) error {
	if !o.CanBeModified() {
		return ErrOrderAlreadyProcessed
	}

	return o.setCustomerID(customerID)
}

// ChangeDiscount replaces the order discount.
func (o *Order) ChangeDiscount(discount kernel.Money) error {
	if !o.CanBeModified() {
		return ErrOrderAlreadyProcessed
	}

	return o.setDiscount(discount)
}

// ChangeStatus transitions the order to a new status.
//
// Legality is decided solely by the status transition table; a request for
// the current status is rejected like any other illegal transition.
// On failure the order is left unchanged and an *InvalidTransitionError
// carrying the from/to pair is returned.
func (o *Order) ChangeStatus(to Status) error {
	newStatus, err := o.status.TransitionTo(to)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// findItem returns the line referencing productID, or nil.
func (o *Order) findItem(productID kernel.UUID) *Item {
	for _, item := range o.items {
		if item.ProductID().IsEqual(productID) {
			return item
		}
	}
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setDiscount(discount kernel.Money) error {
	if err := discount.Validate(); err != nil {
		return err
	}
	o.discount = discount
	return nil
}
