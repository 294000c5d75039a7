package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mreyes/rolodex/internal/config"
	"github.com/mreyes/rolodex/internal/store"
	"github.com/mreyes/rolodex/internal/tui"
	"github.com/mreyes/rolodex/pkg/version"
)

func main() {
	fileFlag := flag.String("file", "", "Contacts file (overrides config)")
	formatFlag := flag.String("format", "", "On-disk format: pipe or yaml (overrides config)")
	versionFlag := flag.Bool("version", false, "Print version")
	helpFlag := flag.Bool("help", false, "Show help")
	flag.BoolVar(helpFlag, "h", false, "Show help")

	flag.Usage = showHelp
	flag.Parse()

	if *helpFlag {
		showHelp()
		os.Exit(0)
	}

	if *versionFlag {
		fmt.Printf("rolodex %s (%s)\n", version.Version, version.Commit)
		os.Exit(0)
	}

	cfg, err := config.Load()
	if err != nil {
		fatal("Failed to load config: %v", err)
	}
	if *fileFlag != "" {
		cfg.ContactsFile = *fileFlag
	}
	if *formatFlag != "" {
		cfg.Format = *formatFlag
	}
	if err := cfg.Validate(); err != nil {
		fatal("%v", err)
	}

	codec, err := store.ForFormat(cfg.Format)
	if err != nil {
		fatal("%v", err)
	}

	// A load failure is non-fatal: the session starts with an empty
	// directory and the problem is surfaced as a warning.
	st, loadErr := store.Open(cfg.ContactsFile, codec)

	// Subcommands run headless; no arguments launches the menu UI.
	args := flag.Args()
	if len(args) > 0 {
		if loadErr != nil {
			warn("could not read %s: %v", cfg.ContactsFile, loadErr)
		}
		if err := runCommand(os.Stdout, st, args); err != nil {
			fatal("%v", err)
		}
		return
	}

	tui.SetTheme(cfg.Theme)
	p := tea.NewProgram(tui.NewModel(st, loadErr), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fatal("UI error: %v", err)
	}
}

// runCommand dispatches a headless subcommand. Caller-input problems
// come back as errors; persistence failures are reported as warnings
// and the command still succeeds, matching the store's lenient
// semantics.
func runCommand(out io.Writer, st *store.Store, args []string) error {
	switch args[0] {
	case "add":
		if len(args) < 3 {
			return fmt.Errorf("usage: rolodex add <name> <phone>")
		}
		name := strings.Join(args[1:len(args)-1], " ")
		phone := args[len(args)-1]
		if err := tui.ValidateName(name); err != nil {
			return err
		}
		if err := tui.ValidatePhone(phone); err != nil {
			return err
		}
		c, err := st.Add(name, phone)
		if err != nil {
			warn("added #%d but saving failed: %v", c.ID, err)
		}
		fmt.Fprintf(out, "added #%d %s\n", c.ID, c.Name)
		return nil

	case "list":
		printContacts(out, st.List())
		return nil

	case "search":
		if len(args) < 2 {
			return fmt.Errorf("usage: rolodex search <query>")
		}
		query := strings.Join(args[1:], " ")
		printContacts(out, st.Search(query))
		return nil

	case "remove":
		if len(args) < 2 {
			return fmt.Errorf("usage: rolodex remove <id>")
		}
		id, err := tui.ParseID(args[1])
		if err != nil {
			return err
		}
		ok, err := st.Delete(id)
		if err != nil {
			warn("removed #%d but saving failed: %v", id, err)
		}
		if !ok {
			return fmt.Errorf("no contact with id %d", id)
		}
		fmt.Fprintf(out, "removed #%d\n", id)
		return nil

	case "help":
		showHelp()
		return nil

	default:
		return fmt.Errorf("unknown command %q (try 'rolodex help')", args[0])
	}
}

func printContacts(out io.Writer, contacts []store.Contact) {
	if len(contacts) == 0 {
		fmt.Fprintln(out, "(no contacts)")
		return
	}
	for _, c := range contacts {
		fmt.Fprintf(out, "#%-5d %-28s %s\n", c.ID, c.Name, c.Phone)
	}
}

func warn(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Warning: "+format+"\n", args...)
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

func showHelp() {
	fmt.Println(`rolodex — a personal contact directory

Usage:
  rolodex                      Launch the interactive menu
  rolodex add <name> <phone>   Add a contact
  rolodex list                 List all contacts
  rolodex search <query>       Search by name or phone fragment
  rolodex remove <id>          Delete a contact by id
  rolodex help                 Show this help

Flags:
  -file <path>     Contacts file (default: config, then ~/.local/share/rolodex/contacts.txt)
  -format <name>   On-disk format: pipe (default) or yaml
  -version         Print version
  -h, -help        Show help

Config is read from ./config.yaml or ~/.config/rolodex/config.yaml;
every key can also be set via ROLODEX_* environment variables.`)
}
