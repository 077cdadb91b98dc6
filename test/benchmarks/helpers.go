// test/benchmarks/helpers.go
package benchmarks

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ammerola/stowage/internal/core/domain"
)

const intakeHeader = "Timestamp,Tote Number,Tote Description,Tote Location,Item Name,Category,Condition or Status,QTY,Expiration Date if One,Item Photo\n"

var intakeItems = []struct {
	name      string
	category  string
	condition string
}{
	{"Wool scarf", "Clothing", "Good"},
	{"Hardcover atlas", "Books", "Used"},
	{"Cordless drill", "Tools", "Working"},
	{"Canned beans", "Food", "Sealed"},
	{"Board game", "Toys", "Complete"},
	{"String lights", "Holiday", "Good"},
	{"Ceramic vase", "Decor", "Chipped"},
	{"First aid kit", "Medical", "New"},
}

// createIntakeCSV builds an intake sheet spreading numItems rows over
// containers of ten items each.
func createIntakeCSV(numItems int) []byte {
	var b strings.Builder
	b.WriteString(intakeHeader)

	for i := 0; i < numItems; i++ {
		item := intakeItems[i%len(intakeItems)]
		bin := i/10 + 1
		location := "Garage"
		if bin%2 == 0 {
			location = "Basement"
		}
		fmt.Fprintf(&b, "1/2/2024 10:00:00,Bin #%d,Bin %d,%s,%s %d,%s,%s,%d,,\n",
			bin, bin, location, item.name, i, item.category, item.condition, i%3+1)
	}
	return []byte(b.String())
}

// createFillItems returns n stored items with volumes between 1 and 5 cubic
// units.
func createFillItems(n int) []domain.Item {
	items := make([]domain.Item, n)
	for i := range items {
		v := decimal.NewFromInt(int64(i%5 + 1))
		items[i] = domain.Item{
			ID:       uuid.New(),
			Name:     fmt.Sprintf("Item %d", i),
			Status:   domain.StatusInStorage,
			Quantity: 1,
			Volume:   &v,
		}
	}
	return items
}
