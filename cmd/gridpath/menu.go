package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

const (
	defaultMapFile    = "sample_map.json"
	defaultOutputFile = "output_map.json"
)

func newMenuCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Interactive menu (the default when no command is given)",
		Args:  exactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.runMenu()
		},
	}
}

// prompter reads one answer per line, substituting def for blank input.
type prompter struct {
	out io.Writer
	sc  *bufio.Scanner
}

// ask prints label and returns the trimmed answer. io.EOF ends the session.
func (p *prompter) ask(label, def string) (string, error) {
	fmt.Fprint(p.out, label)
	if !p.sc.Scan() {
		if err := p.sc.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	ans := strings.TrimSpace(p.sc.Text())
	if ans == "" {
		return def, nil
	}
	return ans, nil
}

// runMenu loops over the menu until the user exits or input ends. Errors
// from individual options are reported and the loop continues.
func (a *app) runMenu() error {
	p := &prompter{out: a.out, sc: bufio.NewScanner(a.in)}
	for {
		fmt.Fprintln(a.out, "\n=== Battle Unit Pathfinding ===")
		fmt.Fprintln(a.out, "1. Load map from JSON file")
		fmt.Fprintln(a.out, "2. Generate random map")
		fmt.Fprintln(a.out, "3. Run demo")
		fmt.Fprintln(a.out, "4. Exit")

		choice, err := p.ask("Select an option (1-4): ", "4")
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(a.out, "\nExiting. Thank you!")
			return nil
		}
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = a.menuLoad(p)
		case "2":
			err = a.menuRandom(p)
		case "3":
			err = a.runDemo()
		case "4":
			fmt.Fprintln(a.out, "Exiting. Thank you!")
			return nil
		default:
			fmt.Fprintln(a.out, "Invalid option. Please try again.")
			continue
		}

		switch {
		case errors.Is(err, io.EOF):
			fmt.Fprintln(a.out, "\nExiting. Thank you!")
			return nil
		case errors.Is(err, errNoPath):
			// already reported
		case err != nil:
			fmt.Fprintln(a.out, "Error:", err)
			a.logger.Warn("menu option failed", "option", choice, "err", err)
		}
	}
}

// menuLoad solves a map file and offers to save it once a route is shown.
func (a *app) menuLoad(p *prompter) error {
	file, err := p.ask("Enter JSON file path: ", defaultMapFile)
	if err != nil {
		return err
	}
	m, path, err := a.solveMap(file)
	if err != nil {
		return err
	}

	save, err := p.ask("\nSave output to JSON? (y/n): ", "n")
	if err != nil {
		return err
	}
	if !strings.EqualFold(save, "y") {
		return nil
	}
	outFile, err := p.ask("Output file name: ", defaultOutputFile)
	if err != nil {
		return err
	}
	return a.saveMap(m, outFile, path)
}

func (a *app) menuRandom(p *prompter) error {
	def := strconv.Itoa(a.cfg.Random.Size)
	ans, err := p.ask(fmt.Sprintf("Enter map size (default %s): ", def), def)
	if err != nil {
		return err
	}
	size, err := strconv.Atoi(ans)
	if err != nil {
		fmt.Fprintf(a.out, "Invalid size %q, using %s.\n", ans, def)
		size = a.cfg.Random.Size
	}
	return a.runRandom(size)
}
