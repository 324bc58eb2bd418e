package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/dcastano/notas-cli/internal/client/forms"
	"github.com/dcastano/notas-cli/internal/client/models"
)

// getSimpleText, getPassword and getMultiline are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getMultiline  = GetMultiline
)

type registerData struct {
	Name     string
	Email    string
	Password string
	Confirm  string
}

func validateRegister(d registerData) map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(d.Name) == "" {
		errs["name"] = "name must not be empty"
	}
	if !models.IsValidEmail(d.Email) {
		errs["email"] = "email address is invalid"
	}
	if !models.IsValidPassword(d.Password) {
		errs["password"] = fmt.Sprintf("password must be at least %d characters", models.MinPasswordLength)
	}
	if d.Confirm != d.Password {
		errs["confirm"] = "password confirmation does not match"
	}
	return errs
}

type loginData struct {
	Email    string
	Password string
}

func validateLogin(d loginData) map[string]string {
	errs := map[string]string{}
	if !models.IsValidEmail(d.Email) {
		errs["email"] = "email address is invalid"
	}
	if d.Password == "" {
		errs["password"] = "password must not be empty"
	}
	return errs
}

// printFormErrors reports a failed form submit to the user: field errors
// for validation failures, the general error for a rejected request.
func printFormErrors(errs map[string]string) {
	for name, msg := range errs {
		if name == forms.FieldGeneral {
			printlnFn("Error:", msg)
		} else {
			printlnFn(fmt.Sprintf("%s: %s", name, msg))
		}
	}
}

// Register prompts for account details and attempts to create a new account.
// Validation runs locally before anything is sent; on success the session is
// persisted by the service and the user is logged in immediately.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	confirm, err := getPassword("Repeat password", os.Stdout)
	if err != nil {
		return err
	}

	form := forms.New(
		registerData{Name: name, Email: email, Password: password, Confirm: confirm},
		forms.WithValidator(validateRegister),
		forms.WithSubmit(func(ctx context.Context, d registerData) error {
			u, err := a.session.Register(ctx, d.Name, d.Email, d.Password, d.Confirm)
			if err != nil {
				return err
			}
			a.user = u
			return nil
		}),
	)

	if err := form.Submit(ctx); err != nil {
		printFormErrors(form.Errors())
		return err
	}

	printlnFn(fmt.Sprintf("Welcome, %s!", a.user.Name))
	return nil
}

// Login prompts for credentials and tries to authenticate. On success the
// token and user are persisted locally and the note list is primed.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}

	form := forms.New(
		loginData{Email: email, Password: password},
		forms.WithValidator(validateLogin),
		forms.WithSubmit(func(ctx context.Context, d loginData) error {
			u, err := a.session.Login(ctx, d.Email, d.Password)
			if err != nil {
				return err
			}
			a.user = u
			return nil
		}),
	)

	if err := form.Submit(ctx); err != nil {
		printFormErrors(form.Errors())
		return err
	}

	printlnFn(fmt.Sprintf("Welcome, %s!", a.user.Name))
	return nil
}

// Logout clears the locally stored session and forgets the in-memory user.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	a.user = nil
	printlnFn("Logged out.")
	return nil
}

// Profile fetches and displays the authenticated account.
func (a *App) Profile(ctx context.Context) error {
	u, err := a.session.Profile(ctx)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn("Name: ", u.Name)
	printlnFn("Email:", u.Email)
	return nil
}

// Rename prompts for a new display name and updates the account.
func (a *App) Rename(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter new name", os.Stdout)
	if err != nil {
		return err
	}

	form := forms.New(
		registerData{Name: name},
		forms.WithValidator(func(d registerData) map[string]string {
			if strings.TrimSpace(d.Name) == "" {
				return map[string]string{"name": "name must not be empty"}
			}
			return nil
		}),
		forms.WithSubmit(func(ctx context.Context, d registerData) error {
			u, err := a.session.UpdateProfile(ctx, d.Name)
			if err != nil {
				return err
			}
			a.user = u
			return nil
		}),
	)

	if err := form.Submit(ctx); err != nil {
		printFormErrors(form.Errors())
		return err
	}

	printlnFn(fmt.Sprintf("Name changed to %s.", a.user.Name))
	return nil
}

// errAborted signals that the user declined a confirmation prompt.
var errAborted = errors.New("aborted")

// confirm asks the user to type "yes" before a destructive action proceeds.
func (a *App) confirm(prompt string) error {
	answer, err := getSimpleText(a.reader, prompt+" Type 'yes' to confirm", os.Stdout)
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, "yes") {
		printlnFn("Cancelled.")
		return errAborted
	}
	return nil
}

// DeleteAccount removes the account on the server after an explicit
// confirmation. Local session data is cleared only once the server has
// acknowledged the removal.
func (a *App) DeleteAccount(ctx context.Context) error {
	if err := a.confirm("This permanently deletes your account and all notes."); err != nil {
		return err
	}
	if err := a.session.DeleteAccount(ctx); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	a.user = nil
	printlnFn("Account deleted.")
	return nil
}
