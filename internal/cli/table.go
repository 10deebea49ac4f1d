package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/gosuri/uitable"

	"github.com/five82/marquee/internal/catalog"
)

const descriptionWidth = 72

// writeItems prints items as a table. Ordinals come from the full catalog,
// not the row number.
func writeItems(w io.Writer, store *catalog.Store, items []catalog.Item) error {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("#", "ID", "YEAR", "PHASE", "TITLE")
	for _, item := range items {
		_, pos, err := store.Lookup(item.ID)
		if err != nil {
			return err
		}
		tbl.AddRow(strconv.Itoa(pos.Ordinal), item.ID, item.Year, item.Phase, item.Title)
	}
	tbl.RightAlign(0)
	_, err := fmt.Fprintln(w, tbl)
	return err
}

// writeDetail prints one item as label/value rows.
func writeDetail(w io.Writer, item catalog.Item, pos catalog.Position) error {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.Wrap = true
	tbl.MaxColWidth = descriptionWidth
	tbl.AddRow("Title", item.Title)
	tbl.AddRow("Year", item.Year)
	tbl.AddRow("Phase", item.Phase)
	tbl.AddRow("Order", fmt.Sprintf("%d of %d", pos.Ordinal, pos.Total))
	if item.WatchURL != "" {
		tbl.AddRow("Watch", item.WatchURL)
	}
	if item.Description != "" {
		tbl.AddRow("About", item.Description)
	}
	_, err := fmt.Fprintln(w, tbl)
	return err
}
