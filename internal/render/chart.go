package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"kakeibo/internal/core"
)

// NoChartNotice is printed when there is nothing to chart.
const NoChartNotice = "家計簿の登録がないため、グラフを表示できません。"

// maxBarWidth is the bar length, in cells, of the largest total.
const maxBarWidth = 40

// BarChart draws one horizontal bar per category, scaled so the largest
// absolute total spans maxBarWidth cells, with a title, axis labels and
// dotted gridlines between bars. The call returns once the chart has
// been written in full.
func BarChart(w io.Writer, totals []core.CategoryTotal) {
	if len(totals) == 0 {
		fmt.Fprintln(w, NoChartNotice)
		return
	}

	labelWidth := 0
	var maxYen int64
	for _, t := range totals {
		if lw := runewidth.StringWidth(t.Category.String()); lw > labelWidth {
			labelWidth = lw
		}
		if a := abs(t.Total.Yen); a > maxYen {
			maxYen = a
		}
	}

	gridline := strings.Repeat("･", labelWidth+maxBarWidth+10)

	fmt.Fprintln(w, "カテゴリ別支出")
	fmt.Fprintf(w, "%s | 金額(円)\n", pad("カテゴリ", labelWidth))
	fmt.Fprintln(w, gridline)
	for _, t := range totals {
		fmt.Fprintf(w, "%s | %s %d\n",
			pad(t.Category.String(), labelWidth),
			strings.Repeat("■", barLength(t.Total.Yen, maxYen)),
			t.Total.Yen)
		fmt.Fprintln(w, gridline)
	}
}

// barLength scales yen to a cell count. Any non-zero total gets at
// least one cell so small amounts stay visible.
func barLength(yen, maxYen int64) int {
	if yen == 0 || maxYen == 0 {
		return 0
	}
	n := int(abs(yen) * maxBarWidth / maxYen)
	if n < 1 {
		n = 1
	}
	return n
}

// pad right-pads s with spaces to the given display width, counting
// double-width runes as two cells.
func pad(s string, width int) string {
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
