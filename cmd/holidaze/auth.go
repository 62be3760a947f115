package main

import (
	"errors"
	"flag"

	"github.com/holidaze/holidaze-go/internal/domain/auth"
	"github.com/holidaze/holidaze-go/internal/domain/model"
)

// errNotLoggedIn is the shared guard failure for authenticated commands.
var errNotLoggedIn = errors.New("you are not logged in (run: holidaze login)")

// requireAuth returns the current user or an error for commands that need a
// session.
func requireAuth(cc *commandContext) (*model.User, error) {
	user := cc.Session.User()
	if !cc.Session.IsAuthenticated() || user == nil {
		return nil, errNotLoggedIn
	}
	return user, nil
}

func runLogin(cc *commandContext, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	email := fs.String("email", "", "account email (@stud.noroff.no)")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	user, err := cc.Session.Login(cc.Ctx, auth.Credentials{
		Email:    *email,
		Password: *password,
	})
	if err != nil {
		return err
	}

	role := "customer"
	if user.VenueManager {
		role = "venue manager"
	}
	return writef(cc.Out, "Logged in as %s (%s).\n", user.Name, role)
}

func runRegister(cc *commandContext, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	name := fs.String("name", "", "username")
	email := fs.String("email", "", "account email (@stud.noroff.no)")
	password := fs.String("password", "", "account password (min 8 characters)")
	manager := fs.Bool("manager", false, "register as a venue manager")
	avatarURL := fs.String("avatar-url", "", "optional avatar image URL")
	avatarAlt := fs.String("avatar-alt", "", "optional avatar alt text")
	if err := fs.Parse(args); err != nil {
		return err
	}

	reg := auth.Registration{
		Name:         *name,
		Email:        *email,
		Password:     *password,
		VenueManager: *manager,
	}
	if *avatarURL != "" {
		reg.Avatar = &model.Media{URL: *avatarURL, Alt: *avatarAlt}
	}

	user, err := cc.Session.Register(cc.Ctx, reg)
	if err != nil {
		return err
	}
	return writef(cc.Out, "Account %s created. Log in with: holidaze login -email %s\n", user.Name, user.Email)
}

func runLogout(cc *commandContext, args []string) error {
	fs := flag.NewFlagSet("logout", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := cc.Session.Logout(cc.Ctx); err != nil {
		return err
	}
	return writef(cc.Out, "Logged out.\n")
}

func runWhoami(cc *commandContext, args []string) error {
	fs := flag.NewFlagSet("whoami", flag.ContinueOnError)
	asJSON := fs.Bool("json", false, "print the user as JSON")
	query := fs.String("query", "", "JMESPath expression applied to JSON output")
	if err := fs.Parse(args); err != nil {
		return err
	}

	user := cc.Session.User()
	if *asJSON || *query != "" {
		return printJSON(cc.Out, user, *query)
	}
	return renderUser(cc.Out, user)
}

func runRefresh(cc *commandContext, args []string) error {
	fs := flag.NewFlagSet("refresh", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	user, err := cc.Session.RefreshUser(cc.Ctx)
	if err != nil {
		return err
	}
	if err := writef(cc.Out, "Profile refreshed.\n"); err != nil {
		return err
	}
	return renderUser(cc.Out, user)
}

func runAvatar(cc *commandContext, args []string) error {
	fs := flag.NewFlagSet("avatar", flag.ContinueOnError)
	url := fs.String("url", "", "avatar image URL")
	alt := fs.String("alt", "", "avatar alt text")
	if err := fs.Parse(args); err != nil {
		return err
	}

	user, err := cc.Session.UpdateAvatar(cc.Ctx, model.Media{URL: *url, Alt: *alt})
	if err != nil {
		return err
	}
	if err := writef(cc.Out, "Avatar updated.\n"); err != nil {
		return err
	}
	return renderUser(cc.Out, user)
}
