// Package cli is the non-interactive presentation layer. It maps
// subcommands onto item service operations and renders the results; all
// validation and persistence lives in the service.
package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"todolist/internal/model"
	"todolist/internal/service"
	"todolist/internal/ui"
)

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(svc *service.Service, args []string) int {
	if len(args) == 0 {
		PrintHelp()
		return 2
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp()
		return 0

	case "ls":
		return doList(svc)

	case "add":
		// No title starts a draft row; fill it in with `edit`.
		return doAdd(svc, strings.Join(a, " "))

	case "edit":
		if len(a) < 2 {
			ui.Fail("usage: todo edit <id> <title...>")
			return 2
		}
		id, err := strconv.Atoi(a[0])
		if err != nil {
			ui.Fail("edit: not an id: " + a[0])
			return 2
		}
		return doEdit(svc, id, strings.Join(a[1:], " "))

	case "rm":
		if len(a) != 1 {
			ui.Fail("usage: todo rm <id>")
			return 2
		}
		id, err := strconv.Atoi(a[0])
		if err != nil {
			ui.Fail("rm: not an id: " + a[0])
			return 2
		}
		return doRemove(svc, id)

	case "sort":
		ascending := true
		if len(a) == 1 && a[0] == "desc" {
			ascending = false
		} else if len(a) > 0 && a[0] != "asc" {
			ui.Fail("usage: todo sort [asc|desc]")
			return 2
		}
		return doSort(svc, ascending)
	}

	ui.Fail("unknown subcommand: " + cmd)
	fmt.Fprintln(os.Stderr)
	PrintHelp()
	return 2
}

func PrintHelp() {
	fmt.Printf(`todo - a tiny list keeper

Usage:
  todo <subcommand> [args]

Subcommands:
  ls                 List items
  add [title...]     Add a new item; without a title, starts a draft row
  edit <id> <title...>  Replace the title of the item with that id
  rm <id>            Remove the item with that id (no error if absent)
  sort [asc|desc]    Sort by title, case-insensitive; drops draft rows

Examples:
  todo add "Buy milk"
  todo ls
  todo edit 2 "Buy oat milk"
  todo rm 3
  todo sort desc
`)
}

// fail renders a service error and picks the exit code: user mistakes are
// 2, storage trouble is 1.
func fail(err error) int {
	ui.Fail(err.Error())
	var verr *service.ValidationError
	var nerr *service.NotFoundError
	if errors.As(err, &verr) || errors.As(err, &nerr) {
		return 2
	}
	return 1
}

// -------------- subcommand impls ----------------

func doList(svc *service.Service) int {
	items := svc.GetAll()

	header := fmt.Sprintf("%s  %s %d",
		ui.C(ui.Current().Title, "Todos"),
		ui.C(ui.Current().Accent, "Total"), len(items),
	)

	var lines []string
	lines = append(lines, header)
	lines = append(lines, "")
	lines = append(lines, itemLines(items)...)
	lines = append(lines, "")
	lines = append(lines, ui.C(ui.Current().Muted, "Tip: add with `todo add \"Buy milk\"`"))
	ui.Panel(lines)
	return 0
}

func doAdd(svc *service.Service, title string) int {
	item, err := svc.Add(title)
	if err != nil {
		return fail(err)
	}
	if item.IsDraft() {
		ui.OK(fmt.Sprintf("added draft %d (fill it in with `todo edit %d <title>`)", item.ID, item.ID))
	} else {
		ui.OK(fmt.Sprintf("added %d", item.ID))
	}
	return 0
}

func doEdit(svc *service.Service, id int, title string) int {
	if err := svc.Edit(id, title); err != nil {
		return fail(err)
	}
	ui.OK("edited")
	return 0
}

func doRemove(svc *service.Service, id int) int {
	if err := svc.Delete(id); err != nil {
		return fail(err)
	}
	ui.OK("removed")
	return 0
}

func doSort(svc *service.Service, ascending bool) int {
	if err := svc.Sort(ascending); err != nil {
		return fail(err)
	}
	ui.OK("sorted")
	return 0
}

// -------------- rendering helpers --------------

func itemLines(items []model.Item) []string {
	if len(items) == 0 {
		return []string{ui.C(ui.Current().Muted, "no items")}
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		id := fmt.Sprintf("%3d.", it.ID)
		mark := ui.C(ui.Current().Accent, ui.Current().Bullet)
		title := it.Title
		if it.IsDraft() {
			mark = ui.C(ui.Current().Draft, ui.Current().DraftMarker)
			title = ui.C(ui.Current().Muted, "(draft)")
		} else if len(title) > 80 {
			title = title[:77] + "..."
		}
		out = append(out, fmt.Sprintf("%s %s %s", ui.C("\033[2m", id), mark, title))
	}
	return out
}
