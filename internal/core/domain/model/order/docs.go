// Package order contains the order aggregate and its value objects: the
// lifecycle Status state machine, payment enums, the ORD-YYYYMMDD-NNNN order
// number, line items, the shipping address and the monetary totals.
//
// The aggregate mediates every write to order status, payment status and the
// delivery timestamp; repositories persist it and the application layer drives
// it through commands.
package order
