package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/bloodlink/admincli/internal/models"
	"github.com/bloodlink/admincli/internal/nav"
)

func (a *App) listOffices() {
	if err := a.offices.Err(); err != nil {
		fmt.Fprintf(a.out, "Could not load offices: %s (try 'refresh')\n", err.Error())
		return
	}

	items := a.offices.Items()
	page := a.page[nav.PathOffices]
	if page < 1 {
		page = 1
	}
	rows, totalPages := Paginate(items, page, a.config.PageSize)
	if totalPages == 0 {
		fmt.Fprintln(a.out, "No offices yet")
		return
	}
	if page > totalPages {
		page = totalPages
		a.page[nav.PathOffices] = page
	}

	table := make([][]string, 0, len(rows))
	for _, o := range rows {
		table = append(table, []string{
			strconv.FormatInt(o.ID, 10),
			o.Name,
			o.Email,
			o.PhoneNumber,
			o.Address,
		})
	}
	RenderTable(a.out, []string{"ID", "Name", "Email", "Phone", "Address"}, table, (page-1)*a.config.PageSize)
	fmt.Fprintf(a.out, "Page %d of %d (%d offices)\n", page, totalPages, len(items))
}

func (a *App) promptOfficeForm(def models.OfficeForm) (models.OfficeForm, error) {
	f := def

	var err error
	if f.Name, err = ReadDefault(a.reader, "Office name", def.Name, a.out); err != nil {
		return f, err
	}
	if f.Email, err = ReadDefault(a.reader, "Email", def.Email, a.out); err != nil {
		return f, err
	}
	if f.PhoneNumber, err = ReadDefault(a.reader, "Phone number", def.PhoneNumber, a.out); err != nil {
		return f, err
	}
	if f.AlternateEmail, err = ReadDefault(a.reader, "Alternate email", def.AlternateEmail, a.out); err != nil {
		return f, err
	}
	if f.AlternatePhoneNumber, err = ReadDefault(a.reader, "Alternate phone", def.AlternatePhoneNumber, a.out); err != nil {
		return f, err
	}
	if f.Address, err = ReadDefault(a.reader, "Address", def.Address, a.out); err != nil {
		return f, err
	}
	return f, nil
}

func (a *App) addOfficeCmd(ctx context.Context) {
	form, err := a.promptOfficeForm(models.OfficeForm{})
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}
	if v := form.Validate(); !v.Empty() {
		fmt.Fprintln(a.out, v.String())
		return
	}
	if a.offices.Create(ctx, form) == nil {
		a.listOffices()
	}
}

func (a *App) editOfficeCmd(ctx context.Context, id int64) {
	var current *models.Office
	items := a.offices.Items()
	for i := range items {
		if items[i].ID == id {
			current = &items[i]
			break
		}
	}
	if current == nil {
		fmt.Fprintf(a.out, "No office with id %d\n", id)
		return
	}

	def := models.OfficeForm{
		Name:                 current.Name,
		Email:                current.Email,
		PhoneNumber:          current.PhoneNumber,
		AlternateEmail:       current.AlternateEmail,
		AlternatePhoneNumber: current.AlternatePhoneNumber,
		Address:              current.Address,
	}
	form, err := a.promptOfficeForm(def)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}
	if v := form.Validate(); !v.Empty() {
		fmt.Fprintln(a.out, v.String())
		return
	}
	if a.offices.Update(ctx, id, form) == nil {
		a.listOffices()
	}
}
