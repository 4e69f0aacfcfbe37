// Package orderupdate provides the audit trail entity for driver-initiated
// order status transitions. Each successful driver transition appends exactly
// one immutable OrderUpdate; records are never modified or deleted.
package orderupdate
