package battleship

import (
	"maps"
	"slices"
	"strconv"
	"strings"

	cerr "github.com/saeidalz13/battleship-board/internal/error"
)

// Schema maps a ship length to how many ships of that length the
// fleet has.
type Schema map[int]int

// ParseSchema reads the "length:count" list used in configs,
// e.g. "4:1,3:2,2:3,1:4".
func ParseSchema(raw string) (Schema, error) {
	schema := make(Schema)

	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		lengthStr, countStr, found := strings.Cut(entry, ":")
		if !found {
			return nil, cerr.ErrInvalidSchemaEntry(entry)
		}

		length, err := strconv.Atoi(strings.TrimSpace(lengthStr))
		if err != nil {
			return nil, cerr.ErrInvalidSchemaEntry(entry)
		}
		count, err := strconv.Atoi(strings.TrimSpace(countStr))
		if err != nil {
			return nil, cerr.ErrInvalidSchemaEntry(entry)
		}

		schema[length] += count
	}

	if err := schema.Validate(); err != nil {
		return nil, err
	}
	return schema, nil
}

func (s Schema) Validate() error {
	for length, count := range s {
		if length <= 0 {
			return cerr.ErrInvalidShipLength(length)
		}
		if count <= 0 {
			return cerr.ErrInvalidShipCount(length, count)
		}
	}
	return nil
}

// Lengths returns the ship lengths in ascending order.
func (s Schema) Lengths() []int {
	return slices.Sorted(maps.Keys(s))
}

// Cells is the number of cells the whole fleet occupies.
func (s Schema) Cells() int {
	total := 0
	for length, count := range s {
		total += length * count
	}
	return total
}

func (s Schema) Ships() int {
	total := 0
	for _, count := range s {
		total += count
	}
	return total
}

// MaxLength is the longest ship in the fleet, 0 for an empty schema.
func (s Schema) MaxLength() int {
	maxLength := 0
	for length := range s {
		maxLength = max(maxLength, length)
	}
	return maxLength
}

// FitsGrid refuses fleets that random placement could never finish
// on a size x size grid: a ship longer than the grid, or more cells
// than the grid has. Passing it does not prove an arrangement exists.
func (s Schema) FitsGrid(size int) error {
	if length := s.MaxLength(); length > size {
		return cerr.ErrShipTooLong(length, size)
	}
	if cells := s.Cells(); cells > size*size {
		return cerr.ErrInfeasibleSchema(cells, size)
	}
	return nil
}
