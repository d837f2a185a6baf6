package cli

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/bloodlink/admincli/internal/models"
	"github.com/bloodlink/admincli/internal/nav"
)

func (a *App) sortedUsers() []models.User {
	items := append([]models.User(nil), a.users.Items()...)
	if a.sortKey == "" {
		return items
	}

	key := func(u models.User) string {
		switch a.sortKey {
		case "name":
			return u.FullName
		case "email":
			return u.Email
		case "rank":
			return u.RankName
		case "office":
			return u.OfficeName
		case "blood":
			return u.BloodGroup
		}
		return ""
	}
	sort.SliceStable(items, func(i, j int) bool {
		if a.sortDesc {
			return key(items[i]) > key(items[j])
		}
		return key(items[i]) < key(items[j])
	})
	return items
}

// sortUsers toggles direction when the same key is picked twice, like
// clicking a column header.
func (a *App) sortUsers(key string) {
	switch key {
	case "name", "email", "rank", "office", "blood":
	default:
		fmt.Fprintf(a.out, "Cannot sort by %q\n", key)
		return
	}
	if a.sortKey == key {
		a.sortDesc = !a.sortDesc
	} else {
		a.sortKey, a.sortDesc = key, false
	}
	a.listUsers()
}

func (a *App) listUsers() {
	if err := a.users.Err(); err != nil {
		fmt.Fprintf(a.out, "Could not load users: %s (try 'refresh')\n", err.Error())
		return
	}

	items := a.sortedUsers()
	page := a.page[nav.PathUsers]
	if page < 1 {
		page = 1
	}
	rows, totalPages := Paginate(items, page, a.config.PageSize)
	if totalPages == 0 {
		fmt.Fprintln(a.out, "No users yet")
		return
	}
	if page > totalPages {
		page = totalPages
		a.page[nav.PathUsers] = page
	}

	table := make([][]string, 0, len(rows))
	for _, u := range rows {
		table = append(table, []string{
			strconv.FormatInt(u.ID, 10),
			u.FullName,
			u.RankName,
			u.BloodGroup,
			u.MobileNumber,
			u.Email,
			u.OfficeName,
			yesNo(u.IsActive),
		})
	}
	RenderTable(a.out,
		[]string{"ID", "Name", "Rank", "Blood", "Mobile", "Email", "Office", "Active"},
		table, (page-1)*a.config.PageSize)
	fmt.Fprintf(a.out, "Page %d of %d (%d users)\n", page, totalPages, len(items))
}

func (a *App) promptUserForm(def models.UserForm, create bool) (models.UserForm, error) {
	f := def

	var err error
	if f.FullName, err = ReadDefault(a.reader, "Full name", def.FullName, a.out); err != nil {
		return f, err
	}
	if f.RankID, err = ReadInt64(a.reader, "Rank id", def.RankID, a.out); err != nil {
		return f, err
	}
	if f.BloodGroup, err = ReadDefault(a.reader, "Blood group", def.BloodGroup, a.out); err != nil {
		return f, err
	}
	if f.MobileNumber, err = ReadDefault(a.reader, "Mobile number", def.MobileNumber, a.out); err != nil {
		return f, err
	}
	if f.Email, err = ReadDefault(a.reader, "Email", def.Email, a.out); err != nil {
		return f, err
	}
	if create {
		if f.Password, err = readPassword(a.out); err != nil {
			return f, err
		}
	}
	if f.DateOfBirth, err = ReadDefault(a.reader, "Date of birth (YYYY-MM-DD)", def.DateOfBirth, a.out); err != nil {
		return f, err
	}
	if f.ServiceStartDate, err = ReadDefault(a.reader, "Service start date (YYYY-MM-DD)", def.ServiceStartDate, a.out); err != nil {
		return f, err
	}
	if f.ResidentialAddress, err = ReadDefault(a.reader, "Residential address", def.ResidentialAddress, a.out); err != nil {
		return f, err
	}
	if f.OfficeID, err = ReadInt64(a.reader, "Office id", def.OfficeID, a.out); err != nil {
		return f, err
	}
	if f.IsActive, err = ReadBool(a.reader, "Active?", def.IsActive || create, a.out); err != nil {
		return f, err
	}
	return f, nil
}

func (a *App) addUserCmd(ctx context.Context) {
	form, err := a.promptUserForm(models.UserForm{}, true)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}
	if v := form.Validate(); !v.Empty() {
		fmt.Fprintln(a.out, v.String())
		return
	}
	if a.users.Create(ctx, form) == nil {
		a.listUsers()
	}
}

func (a *App) editUserCmd(ctx context.Context, id int64) {
	var current *models.User
	items := a.users.Items()
	for i := range items {
		if items[i].ID == id {
			current = &items[i]
			break
		}
	}
	if current == nil {
		fmt.Fprintf(a.out, "No user with id %d\n", id)
		return
	}

	def := models.UserForm{
		FullName:           current.FullName,
		RankID:             current.RankID,
		BloodGroup:         current.BloodGroup,
		MobileNumber:       current.MobileNumber,
		Email:              current.Email,
		DateOfBirth:        current.DateOfBirth,
		ServiceStartDate:   current.ServiceStartDate,
		ResidentialAddress: current.ResidentialAddress,
		OfficeID:           current.OfficeID,
		IsActive:           current.IsActive,
	}
	form, err := a.promptUserForm(def, false)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}
	if v := form.Validate(); !v.Empty() {
		fmt.Fprintln(a.out, v.String())
		return
	}
	if a.users.Update(ctx, id, form) == nil {
		a.listUsers()
	}
}

func (a *App) resetPasswordCmd(ctx context.Context, id int64) {
	if msg, err := a.users.ResetPassword(ctx, id); err == nil {
		fmt.Fprintln(a.out, msg)
	}
}
