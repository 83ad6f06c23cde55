package ui

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pthm-cable/meadow/game"
	"github.com/pthm-cable/meadow/systems"
)

// PromptSetup asks for the initial grass, rabbit and wolf counts and the
// starting season. Counts must lie in [0, capacity] and the season in 0..3.
// A blank answer keeps the value from def; an invalid one keeps it too and
// prints a notice.
func PromptSetup(in io.Reader, out io.Writer, def game.Setup, capacity int) game.Setup {
	sc := bufio.NewScanner(in)
	s := def

	fmt.Fprintln(out, "Meadow: a seasonal grassland with grass, rabbits and wolves.")
	fmt.Fprintln(out, "Food chain: grass -> rabbits -> wolves. Press enter to keep a default.")
	fmt.Fprintln(out)

	s.InitialGrass = promptInt(sc, out, "Initial grass", 0, capacity, def.InitialGrass)
	s.InitialRabbits = promptInt(sc, out, "Initial rabbits", 0, capacity, def.InitialRabbits)
	s.InitialWolves = promptInt(sc, out, "Initial wolves", 0, capacity, def.InitialWolves)

	var names []string
	for i := systems.Spring; i <= systems.Winter; i++ {
		names = append(names, fmt.Sprintf("%d=%s", int(i), i))
	}
	label := fmt.Sprintf("Starting season (%s)", strings.Join(names, " "))
	s.StartingSeason = systems.Season(promptInt(sc, out, label, 0, 3, int(def.StartingSeason)))
	return s
}

// promptInt reads one line and parses it as an integer in [lo, hi].
func promptInt(sc *bufio.Scanner, out io.Writer, label string, lo, hi, def int) int {
	fmt.Fprintf(out, "%s [%d-%d, default %d]: ", label, lo, hi, def)
	if !sc.Scan() {
		fmt.Fprintln(out)
		return def
	}

	line := strings.TrimSpace(sc.Text())
	if line == "" {
		return def
	}
	v, err := strconv.Atoi(line)
	if err != nil || v < lo || v > hi {
		fmt.Fprintf(out, "Invalid input, using default %d.\n", def)
		return def
	}
	return v
}
