package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"time"
)

// sessionExpiryWarning is how close to expiry a restored token gets a
// heads-up printed before the first command.
const sessionExpiryWarning = 5 * time.Minute

func (a *App) getStatus() string {
	if a.user == nil {
		return "(guest)"
	}
	return fmt.Sprintf("(%s)", a.user.Name)
}

// restoreSession brings a persisted session back into memory. A stored token
// whose expiry claim has already passed is discarded without bothering the
// server; one the server rejects is treated the same way. A token close to
// expiry still restores the session but warns the user.
func (a *App) restoreSession(ctx context.Context) {
	u := a.session.CurrentUser(ctx)
	if u == nil {
		return
	}

	if exp, err := a.session.TokenExpiresAt(ctx); err == nil && !exp.IsZero() {
		if !exp.After(time.Now()) {
			_ = a.session.Logout(ctx)
			printlnFn("Stored session has expired, please log in again.")
			return
		}
		if until := time.Until(exp); until < sessionExpiryWarning {
			printlnFn(fmt.Sprintf("Your session expires in %s.", until.Round(time.Second)))
		}
	}

	if a.session.ValidateToken(ctx) {
		a.user = u
		printlnFn(fmt.Sprintf("Welcome back, %s!", u.Name))
	} else {
		printlnFn("Stored session has expired, please log in again.")
	}
}

// Root restores a persisted session, prints the greeting and hands control
// to the REPL.
func (a *App) Root(ctx context.Context) {
	a.restoreSession(ctx)

	printlnFn("notas CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
