package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/MikhailWahib/probetable/internal/config"
	"github.com/MikhailWahib/probetable/internal/engine"
	"github.com/MikhailWahib/probetable/internal/table"
)

const exitOption = "4"

var menuOptions = map[string]table.Strategy{
	"1": table.LinearProbe,
	"2": table.QuadraticProbe,
	"3": table.Chaining,
}

const menuText = `
Choose a collision resolution method:
1. Linear probing
2. Quadratic probing
3. Chaining
4. Exit
Option: `

// runMenu reads options from in until the exit option or EOF. Every strategy
// choice runs the demo script on a fresh table.
func runMenu(in io.Reader, out io.Writer, cfg *config.Config, rec engine.Recorder) error {
	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)

	for {
		if _, err := io.WriteString(out, menuText); err != nil {
			return err
		}
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return err
			}
			_, err := fmt.Fprintln(out)
			return err
		}

		option := sc.Text()
		if option == exitOption {
			_, err := fmt.Fprintln(out, "Exiting...")
			return err
		}

		strategy, ok := menuOptions[option]
		if !ok {
			if _, err := fmt.Fprintln(out, "Invalid option, try again."); err != nil {
				return err
			}
			continue
		}

		if err := runDemo(out, cfg, strategy, rec); err != nil {
			return err
		}
	}
}

func runDemo(out io.Writer, cfg *config.Config, strategy table.Strategy, rec engine.Recorder) error {
	c := *cfg
	c.Strategy = strategy.String()

	e, err := engine.NewEngine(&c)
	if err != nil {
		return err
	}
	if rec != nil {
		e.SetRecorder(rec)
	}

	w := bufio.NewWriter(out)
	fmt.Fprintf(w, "\nInserting using %s:\n", strategy)
	for _, op := range engine.DemoScript() {
		o := e.Apply(op)
		switch op.Kind {
		case engine.InsertOp:
			if o.Err != nil {
				fmt.Fprintf(w, "Table is full, cannot insert value: %d\n", op.Value)
			}
		case engine.ContainsOp:
			fmt.Fprintf(w, "Contains %d (%s): %t\n", op.Value, strategy, o.Found)
		case engine.RemoveOp:
			fmt.Fprintf(w, "After removing %d (%s):\n", op.Value, strategy)
		case engine.SnapshotOp:
			for _, line := range o.Render {
				fmt.Fprintln(w, line)
			}
		}
	}
	return w.Flush()
}
