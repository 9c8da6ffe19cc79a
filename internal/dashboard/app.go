package dashboard

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"streamdesk/internal/shared/logger"
)

// App is the interactive command loop binding the four screens together.
type App struct {
	stats      *StatsController
	users      *UsersController
	payments   *PaymentsController
	broadcasts *BroadcastsController

	in  *bufio.Reader
	out io.Writer
}

func NewApp(api API, in io.Reader, out io.Writer, log logger.Interface) *App {
	// The command loop and the prompter must drain the same buffer; two
	// readers over one stream would steal each other's lines.
	reader := bufio.NewReader(in)
	prompter := NewTerminalPrompter(reader, out)
	return &App{
		stats:      NewStatsController(api, log),
		users:      NewUsersController(api, prompter, log),
		payments:   NewPaymentsController(api, prompter, log),
		broadcasts: NewBroadcastsController(api, prompter, log),
		in:         reader,
		out:        out,
	}
}

// Run reads commands until EOF or "quit".
func (a *App) Run(ctx context.Context) error {
	fmt.Fprintln(a.out, "streamdesk admin dashboard, type 'help' for commands")

	for {
		fmt.Fprint(a.out, "> ")
		line, readErr := a.in.ReadString('\n')

		if trimmed := strings.TrimSpace(line); trimmed != "" {
			if quit := a.dispatch(ctx, trimmed); quit {
				return nil
			}
		}
		if readErr != nil {
			if readErr == io.EOF {
				return nil
			}
			return readErr
		}
	}
}

// dispatch executes one command line. Returns true when the session ends.
func (a *App) dispatch(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	command, args := fields[0], fields[1:]

	switch command {
	case "quit", "exit":
		return true
	case "help":
		a.printHelp()
	case "stats":
		a.stats.Refresh(ctx)
		a.stats.Render(a.out)
	case "users":
		if len(args) > 0 {
			a.users.SetStatusFilter(ctx, args[0])
		} else {
			a.users.Refresh(ctx)
		}
		a.users.Render(a.out)
	case "search":
		a.users.SetSearchInput(strings.Join(args, " "))
		a.users.SubmitSearch(ctx)
		a.users.Render(a.out)
	case "next":
		a.users.NextPage(ctx)
		a.users.Render(a.out)
	case "user":
		a.selectUser(ctx, args)
	case "deluser":
		if err := a.users.Delete(ctx); err != nil {
			a.alert(err)
		}
		a.users.Render(a.out)
	case "payments":
		if len(args) > 0 {
			a.payments.SetStatusFilter(ctx, args[0])
		} else {
			a.payments.Refresh(ctx)
		}
		a.payments.Render(a.out)
	case "pay":
		if len(args) == 0 {
			fmt.Fprintln(a.out, "usage: pay <payment_id>")
			return false
		}
		if !a.payments.Select(args[0]) {
			fmt.Fprintf(a.out, "payment %s is not on the current page\n", args[0])
		}
	case "approve":
		if err := a.payments.Approve(ctx); err != nil {
			a.alert(err)
		}
		a.payments.Render(a.out)
	case "reject":
		if err := a.payments.Reject(ctx); err != nil {
			a.alert(err)
		}
		a.payments.Render(a.out)
	case "broadcasts":
		a.broadcasts.Refresh(ctx)
		a.broadcasts.Render(a.out)
	case "msg":
		a.broadcasts.SetMessage(strings.Join(args, " "))
		fmt.Fprintf(a.out, "%d chars\n", a.broadcasts.CharacterCount())
	case "target":
		if len(args) == 0 {
			fmt.Fprintln(a.out, "usage: target <all|active|expired>")
			return false
		}
		if err := a.broadcasts.SetTarget(args[0]); err != nil {
			a.alert(err)
		}
	case "send":
		receipt, err := a.broadcasts.Send(ctx)
		if err != nil {
			a.alert(err)
			return false
		}
		if receipt != nil {
			fmt.Fprintf(a.out, "broadcast %s queued for %d recipients\n",
				receipt.BroadcastID, receipt.RecipientCount)
		}
	default:
		fmt.Fprintf(a.out, "unknown command %q, type 'help'\n", command)
	}

	return false
}

func (a *App) selectUser(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "usage: user <telegram_id>")
		return
	}

	telegramID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintf(a.out, "invalid telegram id %q\n", args[0])
		return
	}

	if err := a.users.Select(ctx, telegramID); err != nil {
		a.alert(err)
		return
	}
	a.users.Render(a.out)
}

func (a *App) alert(err error) {
	fmt.Fprintf(a.out, "!! %s\n", err)
}

func (a *App) printHelp() {
	fmt.Fprint(a.out, `commands:
  stats                    fetch and show the overview
  users [all|active|expired]  list users, optionally switching the filter
  search <term>            search users by name, username or telegram id
  next                     advance the user list one page
  user <telegram_id>       show one user with payment history
  deluser                  delete the selected user (asks for confirmation)
  payments [status]        list payments (pending|verified|rejected|all)
  pay <payment_id>         select a payment for review
  approve                  approve the selected payment
  reject                   reject the selected payment (asks for a reason)
  broadcasts               show broadcast history
  msg <text>               set the broadcast message
  target <audience>        set the broadcast target (all|active|expired)
  send                     queue the composed broadcast
  quit
`)
}
