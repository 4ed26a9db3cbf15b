package members

import (
	"fmt"

	"github.com/lindenb1/impress/internal/domain/entities"
)

// Shade is the background of a row, derived from its position.
type Shade int

const (
	ShadeEven Shade = iota
	ShadeOdd
)

func (s Shade) String() string {
	if s == ShadeOdd {
		return "odd"
	}
	return "even"
}

// Row is one rendered member. Index is the position of the access in the full
// accumulated list, including accesses that are not rendered.
type Row struct {
	Key    string
	Index  int
	Shade  Shade
	Access entities.Access
}

// Accumulate concatenates the results of pages in arrival order. The input is
// never modified.
func Accumulate(pages []entities.AccessPage) []entities.Access {
	n := 0
	for _, p := range pages {
		n += len(p.Results)
	}

	accesses := make([]entities.Access, 0, n)
	for _, p := range pages {
		accesses = append(accesses, p.Results...)
	}

	return accesses
}

// BuildRows turns accesses into rows, skipping accesses without a user.
// Keys combine id and index since ids may repeat across pages.
func BuildRows(accesses []entities.Access) []Row {
	rows := make([]Row, 0, len(accesses))
	for i, access := range accesses {
		if access.User == nil {
			continue
		}

		shade := ShadeEven
		if i%2 != 0 {
			shade = ShadeOdd
		}

		rows = append(rows, Row{
			Key:    fmt.Sprintf("%s-%d", access.ID, i),
			Index:  i,
			Shade:  shade,
			Access: access,
		})
	}

	return rows
}
