package config

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/mahyarmirrashed/imgwatch/internal/utils"
)

// ArgsUsage describes the positional arguments, in order.
const ArgsUsage = "<dir> <delay> <width> <height> <x> <y> <title>"

// NumArgs is the exact number of positional arguments accepted.
const NumArgs = 7

// maxDelaySeconds is the longest delay a time.Duration can hold.
var maxDelaySeconds = float64(math.MaxInt64) / float64(time.Second)

// ErrUsage is returned when the argument count is wrong.
var ErrUsage = errors.New("wrong number of arguments")

// Config holds the startup settings. It is not modified after Parse.
type Config struct {
	Dir    string        // Directory to watch
	Delay  time.Duration // Pause between two scans
	Width  int           // Window width in pixels
	Height int           // Window height in pixels
	X      int           // Window x position on screen
	Y      int           // Window y position on screen
	Title  string        // Window title
}

// Usage returns the one-line usage message for the given program name.
func Usage(prog string) string {
	return fmt.Sprintf("Usage: %s %s", prog, ArgsUsage)
}

// Parse builds a Config from the positional arguments
// <dir> <delay> <width> <height> <x> <y> <title>.
func Parse(args []string) (*Config, error) {
	if len(args) != NumArgs {
		return nil, ErrUsage
	}

	seconds, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid delay %q: %w", args[1], err)
	}
	if seconds < 0 {
		return nil, fmt.Errorf("invalid delay %q: must not be negative", args[1])
	}
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds >= maxDelaySeconds {
		return nil, fmt.Errorf("invalid delay %q: must be a finite number of seconds", args[1])
	}

	ints := make([]int, 4)
	for i, name := range []string{"width", "height", "x", "y"} {
		v, err := strconv.Atoi(args[2+i])
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", name, args[2+i], err)
		}
		ints[i] = v
	}
	if ints[0] <= 0 || ints[1] <= 0 {
		return nil, fmt.Errorf("invalid window size %dx%d: must be positive", ints[0], ints[1])
	}

	return &Config{
		Dir:    utils.ExpandTilde(args[0]),
		Delay:  time.Duration(seconds * float64(time.Second)),
		Width:  ints[0],
		Height: ints[1],
		X:      ints[2],
		Y:      ints[3],
		Title:  args[6],
	}, nil
}
