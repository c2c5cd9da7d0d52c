package store

// Identified is satisfied by any record carrying a numeric primary id.
type Identified interface {
	RecordID() int
}

// NextID allocates the next id within one collection: 1 when the collection
// is empty, max+1 otherwise. Allocation is only unique under the store's
// single-writer discipline; two mutations working from the same snapshot
// would mint the same id.
func NextID[R Identified](items []R) int {
	max := 0
	for _, item := range items {
		if id := item.RecordID(); id > max {
			max = id
		}
	}
	return max + 1
}
