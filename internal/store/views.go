package store

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// ViewCounter tracks per-product page views in the local store, one key per
// product id. The counts are purely informational and live outside the
// Dataset document.
type ViewCounter struct {
	mu    sync.Mutex
	local *LocalStore
}

func NewViewCounter(local *LocalStore) *ViewCounter {
	return &ViewCounter{local: local}
}

func viewKey(productID int64) string {
	return fmt.Sprintf("vues_produit_%d", productID)
}

// Increment bumps the view count for a product and returns the new total.
func (v *ViewCounter) Increment(productID int64) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	count, err := v.read(productID)
	if err != nil {
		return 0, err
	}
	count++
	if err := v.local.Set(viewKey(productID), []byte(strconv.Itoa(count))); err != nil {
		return 0, err
	}
	return count, nil
}

// Count returns the current view count for a product (0 if never viewed).
func (v *ViewCounter) Count(productID int64) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.read(productID)
}

func (v *ViewCounter) read(productID int64) (int, error) {
	raw, ok, err := v.local.Get(viewKey(productID))
	if err != nil || !ok {
		return 0, err
	}
	count, err := strconv.Atoi(strings.TrimSpace(string(raw)))
	if err != nil {
		// A mangled counter file resets to zero rather than poisoning reads.
		return 0, nil
	}
	return count, nil
}
