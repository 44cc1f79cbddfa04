// Package render draws the ledger views on a writer. It is a thin
// presentation layer over the record sequence and its category totals.
package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"kakeibo/internal/core"
)

// NoRecordsNotice is printed whenever a view has nothing to show.
const NoRecordsNotice = "家計簿の登録がありません。"

// Table renders one grid row per record with the field labels as
// column headers. An empty ledger prints a notice instead of a grid.
func Table(w io.Writer, records []core.Transaction) {
	if len(records) == 0 {
		fmt.Fprintln(w, NoRecordsNotice)
		return
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader(core.FieldLabels())
	table.SetAutoFormatHeaders(false)
	table.SetRowLine(true)
	for _, r := range records {
		table.Append([]string{
			r.Date.String(),
			r.Category.String(),
			strconv.FormatInt(r.Amount.Yen, 10),
		})
	}
	table.Render()
}
