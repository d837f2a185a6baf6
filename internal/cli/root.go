package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/bloodlink/admincli/internal/nav"
)

// screenNames maps the words accepted by "open" to screen paths.
var screenNames = map[string]string{
	"users":        nav.PathUsers,
	"ranks":        nav.PathRanks,
	"offices":      nav.PathOffices,
	"office-types": nav.PathOffices,
	"diary":        nav.PathDiary,
	"reports":      nav.PathReports,
	"settings":     nav.PathSettings,
	"login":        nav.PathLogin,
	"register":     nav.PathRegister,
}

func (a *App) prompt() string {
	s := a.router.Current()
	if u := a.gate.User(); u != nil {
		s = fmt.Sprintf("%s (%s)", s, u.Email)
	}
	return fmt.Sprintf("bloodlink %s> ", s)
}

// Root runs the REPL: read a line, dispatch the first word, repeat until EOF
// or exit. Lines come through a.reader, the same buffer the form prompts
// read from.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Blood donation admin console (type 'help' for commands)")

	for {
		fmt.Fprint(a.out, a.prompt())
		line, err := a.reader.ReadString('\n')
		if err != nil {
			if len(line) == 0 {
				break
			}
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			a.printHelp()

		case "login":
			a.loginCmd(ctx)
		case "register":
			a.registerCmd(ctx)
		case "logout":
			a.gate.Logout()
		case "whoami":
			a.whoami()

		case "open", "goto":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: open <users|ranks|offices|diary|reports|settings>")
				continue
			}
			a.openScreen(ctx, args[0])

		case "list":
			a.listCurrent()
		case "refresh":
			a.refreshCurrent(ctx)
		case "next":
			a.turnPage(1)
		case "prev":
			a.turnPage(-1)
		case "sort":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: sort <name|email|rank|office|blood>")
				continue
			}
			a.sortUsers(args[0])

		case "add":
			a.addCurrent(ctx)
		case "edit":
			if id, ok := idArg(a, args, "edit <id>"); ok {
				a.editCurrent(ctx, id)
			}
		case "del", "delete":
			if id, ok := idArg(a, args, "del <id>"); ok {
				a.deleteCurrent(ctx, id)
			}
		case "resetpw":
			if id, ok := idArg(a, args, "resetpw <id>"); ok {
				a.resetPasswordCmd(ctx, id)
			}

		case "upload":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: upload <path> [display name]")
				continue
			}
			a.uploadDiaryCmd(ctx, args[0], strings.Join(args[1:], " "))
		case "download":
			dest := "."
			if len(args) > 0 {
				dest = args[0]
			}
			a.downloadDiaryCmd(ctx, dest)

		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return

		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}

func idArg(a *App, args []string, usage string) (int64, bool) {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage:", usage)
		return 0, false
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintf(a.out, "Not an id: %q\n", args[0])
		return 0, false
	}
	return id, true
}

func (a *App) printHelp() {
	if !a.gate.IsAuthenticated() {
		fmt.Fprintln(a.out, "Available commands: login, register, help, exit")
		return
	}
	fmt.Fprintln(a.out, "Available commands:")
	fmt.Fprintln(a.out, "  open <users|ranks|offices|diary|reports|settings>")
	fmt.Fprintln(a.out, "  list, refresh, next, prev, sort <key>")
	fmt.Fprintln(a.out, "  add, edit <id>, del <id>, resetpw <id>")
	fmt.Fprintln(a.out, "  upload <path> [name], download [dir]")
	fmt.Fprintln(a.out, "  whoami, logout, exit")
}

func (a *App) whoami() {
	u := a.gate.User()
	if u == nil {
		fmt.Fprintln(a.out, "Not logged in")
		return
	}
	fmt.Fprintf(a.out, "%s (id %s, role %s)\n", u.Email, u.ID, u.Role)
}

func (a *App) openScreen(ctx context.Context, name string) {
	path, ok := screenNames[name]
	if !ok {
		fmt.Fprintf(a.out, "Unknown screen %q\n", name)
		return
	}
	if err := a.router.Navigate(ctx, path); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}
	a.listCurrent()
}

// listCurrent renders the current screen's data.
func (a *App) listCurrent() {
	switch a.router.Current() {
	case nav.PathUsers:
		a.listUsers()
	case nav.PathRanks:
		a.listRanks()
	case nav.PathOffices:
		a.listOffices()
	case nav.PathDiary:
		a.showDiary()
	case nav.PathReports:
		fmt.Fprintln(a.out, "Reports are available in the web dashboard.")
	case nav.PathSettings:
		fmt.Fprintf(a.out, "API: %s\nState: %s\nPage size: %d\n",
			a.config.APIBaseURL, a.config.StateDir, a.config.PageSize)
	case nav.PathLogin:
		fmt.Fprintln(a.out, "Please log in first (command: login)")
	case nav.PathRegister:
		fmt.Fprintln(a.out, "Registration is handled by your administrator.")
	}
}

func (a *App) refreshCurrent(ctx context.Context) {
	switch a.router.Current() {
	case nav.PathUsers:
		if a.users.Fetch(ctx) == nil {
			a.listUsers()
		}
	case nav.PathRanks:
		if a.ranks.Fetch(ctx) == nil {
			a.listRanks()
		}
	case nav.PathOffices:
		if a.offices.Fetch(ctx) == nil {
			a.listOffices()
		}
	case nav.PathDiary:
		if a.diary.Fetch(ctx) == nil {
			a.showDiary()
		}
	default:
		fmt.Fprintln(a.out, "Nothing to refresh here")
	}
}

func (a *App) turnPage(delta int) {
	path := a.router.Current()
	a.page[path] += delta
	if a.page[path] < 1 {
		a.page[path] = 1
	}
	a.listCurrent()
}

func (a *App) addCurrent(ctx context.Context) {
	switch a.router.Current() {
	case nav.PathUsers:
		a.addUserCmd(ctx)
	case nav.PathRanks:
		a.addRankCmd(ctx)
	case nav.PathOffices:
		a.addOfficeCmd(ctx)
	case nav.PathDiary:
		fmt.Fprintln(a.out, "Use: upload <path> [display name]")
	default:
		fmt.Fprintln(a.out, "Nothing to add here")
	}
}

func (a *App) editCurrent(ctx context.Context, id int64) {
	switch a.router.Current() {
	case nav.PathUsers:
		a.editUserCmd(ctx, id)
	case nav.PathRanks:
		a.editRankCmd(ctx, id)
	case nav.PathOffices:
		a.editOfficeCmd(ctx, id)
	default:
		fmt.Fprintln(a.out, "Nothing to edit here")
	}
}

func (a *App) deleteCurrent(ctx context.Context, id int64) {
	switch a.router.Current() {
	case nav.PathUsers:
		_ = a.users.Delete(ctx, id)
	case nav.PathRanks:
		_ = a.ranks.Delete(ctx, id)
	case nav.PathOffices:
		_ = a.offices.Delete(ctx, id)
	default:
		fmt.Fprintln(a.out, "Nothing to delete here")
	}
}
