package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/bloodlink/admincli/internal/models"
	"github.com/bloodlink/admincli/internal/nav"
)

func (a *App) listRanks() {
	if err := a.ranks.Err(); err != nil {
		fmt.Fprintf(a.out, "Could not load ranks: %s (try 'refresh')\n", err.Error())
		return
	}

	items := a.ranks.Items()
	page := a.page[nav.PathRanks]
	if page < 1 {
		page = 1
	}
	rows, totalPages := Paginate(items, page, a.config.PageSize)
	if totalPages == 0 {
		fmt.Fprintln(a.out, "No ranks yet")
		return
	}
	if page > totalPages {
		page = totalPages
		a.page[nav.PathRanks] = page
	}

	table := make([][]string, 0, len(rows))
	for _, r := range rows {
		table = append(table, []string{strconv.FormatInt(r.ID, 10), r.Name})
	}
	RenderTable(a.out, []string{"ID", "Name"}, table, (page-1)*a.config.PageSize)
	fmt.Fprintf(a.out, "Page %d of %d (%d ranks)\n", page, totalPages, len(items))
}

func (a *App) addRankCmd(ctx context.Context) {
	name, err := readLine(a.reader, "Rank name", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}
	form := models.RankForm{Name: name}
	if v := form.Validate(); !v.Empty() {
		fmt.Fprintln(a.out, v.String())
		return
	}
	if a.ranks.Create(ctx, form) == nil {
		a.listRanks()
	}
}

func (a *App) editRankCmd(ctx context.Context, id int64) {
	var current *models.Rank
	items := a.ranks.Items()
	for i := range items {
		if items[i].ID == id {
			current = &items[i]
			break
		}
	}
	if current == nil {
		fmt.Fprintf(a.out, "No rank with id %d\n", id)
		return
	}

	name, err := ReadDefault(a.reader, "Rank name", current.Name, a.out)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}
	form := models.RankForm{Name: name}
	if v := form.Validate(); !v.Empty() {
		fmt.Fprintln(a.out, v.String())
		return
	}
	if a.ranks.Update(ctx, id, form) == nil {
		a.listRanks()
	}
}
