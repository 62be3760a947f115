// Command holidaze is a command-line front end for the Holidaze booking
// marketplace: browse venues, manage a session, create bookings, and (for
// venue managers) manage listings.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"

	"github.com/holidaze/holidaze-go/config"
	"github.com/holidaze/holidaze-go/internal/bootstrap"
	"github.com/holidaze/holidaze-go/internal/holidaze"
	"github.com/holidaze/holidaze-go/internal/service"
)

type commandFn func(cc *commandContext, args []string) error

type command struct {
	name        string
	description string
	run         commandFn
}

type commandContext struct {
	Ctx     context.Context
	Logger  *slog.Logger
	Config  config.AppConfig
	Client  *holidaze.Client
	Session *service.Session
	Out     io.Writer
}

func main() {
	logger := bootstrap.InitLogger()

	if len(os.Args) < 2 {
		if err := printUsage(); err != nil {
			logger.Error("print usage failed", "error", err)
		}
		os.Exit(2)
	}

	cmdName := os.Args[1]
	cmd, ok := commands()[cmdName]
	if !ok {
		if err := writef(os.Stderr, "unknown command %q\n\n", cmdName); err != nil {
			logger.Error("print unknown command message failed", "error", err)
		}
		if err := printUsage(); err != nil {
			logger.Error("print usage failed", "error", err)
		}
		os.Exit(2)
	}

	if err := run(cmd, os.Args[2:], logger); err != nil {
		if werr := writef(os.Stderr, "Error: %s\n", displayError(err)); werr != nil {
			logger.Error("print error failed", "error", werr)
		}
		os.Exit(1)
	}
}

func run(cmd command, args []string, logger *slog.Logger) error {
	ctx := context.Background()

	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		return err
	}

	store, closeStore, err := bootstrap.NewSessionStore(&cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeStore(); cerr != nil {
			logger.Error("close session store failed", "error", cerr)
		}
	}()

	client := bootstrap.NewAPIClient(&cfg, store, logger)
	sess, err := bootstrap.NewSession(ctx, &cfg, client, store, logger)
	if err != nil {
		return err
	}

	cc := &commandContext{
		Ctx:     ctx,
		Logger:  logger,
		Config:  cfg,
		Client:  client,
		Session: sess,
		Out:     os.Stdout,
	}
	return cmd.run(cc, args)
}

func commands() map[string]command {
	return map[string]command{
		"login": {
			name:        "login",
			description: "Log in with email and password",
			run:         runLogin,
		},
		"register": {
			name:        "register",
			description: "Create a new account",
			run:         runRegister,
		},
		"logout": {
			name:        "logout",
			description: "Log out and clear the stored session",
			run:         runLogout,
		},
		"whoami": {
			name:        "whoami",
			description: "Show the current session user",
			run:         runWhoami,
		},
		"refresh": {
			name:        "refresh",
			description: "Re-fetch the current user's profile",
			run:         runRefresh,
		},
		"avatar": {
			name:        "avatar",
			description: "Update the current user's avatar",
			run:         runAvatar,
		},
		"venues": {
			name:        "venues",
			description: "List venues with pagination and sorting",
			run:         runVenues,
		},
		"venue": {
			name:        "venue",
			description: "Show a single venue by ID",
			run:         runVenue,
		},
		"search": {
			name:        "search",
			description: "Search venues by name or description",
			run:         runSearch,
		},
		"venue-create": {
			name:        "venue-create",
			description: "Create a venue listing (venue managers only)",
			run:         runVenueCreate,
		},
		"venue-update": {
			name:        "venue-update",
			description: "Update a venue listing (venue managers only)",
			run:         runVenueUpdate,
		},
		"venue-delete": {
			name:        "venue-delete",
			description: "Delete a venue listing (venue managers only)",
			run:         runVenueDelete,
		},
		"book": {
			name:        "book",
			description: "Book a venue for a date range",
			run:         runBook,
		},
		"bookings": {
			name:        "bookings",
			description: "List the current user's bookings",
			run:         runBookings,
		},
		"my-venues": {
			name:        "my-venues",
			description: "List the venues the current user manages",
			run:         runMyVenues,
		},
	}
}

func printUsage() error {
	if err := writef(os.Stdout, "Usage: holidaze <command> [flags]\n\n"); err != nil {
		return err
	}
	if err := writef(os.Stdout, "Available commands:\n"); err != nil {
		return err
	}

	cmds := commands()
	names := make([]string, 0, len(cmds))
	for name := range cmds {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := writef(os.Stdout, "  %-14s %s\n", name, cmds[name].description); err != nil {
			return err
		}
	}
	return nil
}

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}
