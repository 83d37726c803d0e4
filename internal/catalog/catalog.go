package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"gotclass/internal/models"
)

// ErrNotFound is returned when a pair id does not exist in the catalog
var ErrNotFound = errors.New("pair not found")

// Catalog holds the immutable set of real/fake class pairs built at startup
type Catalog struct {
	pairs []models.Pair
	byID  map[int]models.Pair
}

// Load reads a JSON array of class records and builds pairs by zipping the
// real and fake classes positionally. Surplus records on the longer side
// are dropped. Errors here are startup errors; the caller should treat
// them as fatal.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read class list %s: %w", path, err)
	}

	var classes []models.ClassRecord
	if err := json.Unmarshal(data, &classes); err != nil {
		return nil, fmt.Errorf("failed to parse class list %s: %w", path, err)
	}

	return New(classes), nil
}

// New builds a catalog from an in-memory class list. Pair IDs are dense
// and start at 1, in source order.
func New(classes []models.ClassRecord) *Catalog {
	var real, fake []models.ClassRecord
	for _, cls := range classes {
		if cls.Real {
			real = append(real, cls)
		} else {
			fake = append(fake, cls)
		}
	}

	count := len(real)
	if len(fake) < count {
		count = len(fake)
	}

	pairs := make([]models.Pair, 0, count)
	byID := make(map[int]models.Pair, count)
	for i := 0; i < count; i++ {
		pair := models.Pair{
			ID:        i + 1,
			RealClass: real[i],
			FakeClass: fake[i],
		}
		pairs = append(pairs, pair)
		byID[pair.ID] = pair
	}

	return &Catalog{pairs: pairs, byID: byID}
}

// Lookup returns the pair with the given id
func (c *Catalog) Lookup(id int) (models.Pair, error) {
	pair, ok := c.byID[id]
	if !ok {
		return models.Pair{}, fmt.Errorf("pair %d: %w", id, ErrNotFound)
	}
	return pair, nil
}

// Count returns the number of pairs in the catalog
func (c *Catalog) Count() int {
	return len(c.pairs)
}

// Pairs returns all pairs in id order
func (c *Catalog) Pairs() []models.Pair {
	return c.pairs
}
