package utils

import (
	"flag"
	"fmt"
	"strings"
)

type options struct {
	minlen       uint
	nodesep      float64
	hasseBound   uint
	outputFormat string
	output       string
	task         string
	masks        bool
	wide         bool
	noColorize   bool
	verbose      bool
}

const (
	_SUBSETS = iota
	_HASSE
)

var opts options

var task = []struct{ flag, explanation string }{{
	"subsets",
	"Print every subset of the given elements, in mask order.",
}, {
	"hasse",
	"Emit the inclusion (Hasse) diagram of the powerset of the given elements.",
}}

type optInterface struct{}
type taskInterface struct{}

func Opts() optInterface {
	return optInterface{}
}

func (optInterface) Task() taskInterface {
	return taskInterface{}
}

func (taskInterface) IsSubsets() bool {
	return opts.task == task[_SUBSETS].flag
}

func (taskInterface) IsHasse() bool {
	return opts.task == task[_HASSE].flag
}

func (optInterface) NoColorize() bool {
	return opts.noColorize
}

func (optInterface) Verbose() bool {
	return opts.verbose
}

func (optInterface) Masks() bool {
	return opts.masks
}

func (optInterface) Wide() bool {
	return opts.wide
}

func (optInterface) Minlen() uint {
	return opts.minlen
}
func (optInterface) Nodesep() float64 {
	return opts.nodesep
}
func (optInterface) HasseBound() int {
	return int(opts.hasseBound)
}
func (optInterface) OutputFormat() string {
	return opts.outputFormat
}
func (optInterface) Output() string {
	return opts.output
}

func CanColorize(col func(...interface{}) string) func(...interface{}) string {
	if opts.noColorize {
		return func(is ...interface{}) string {
			return fmt.Sprintf(strings.Repeat("%s", len(is)), is...)
		}
	}
	return col
}

func init() {
	taskFlag := "\n"
	for _, task := range task {
		taskFlag += task.flag + " -- " + task.explanation + "\n"
	}
	taskFlag += "\n"

	flag.UintVar(&(opts.minlen), "minlen", 1, "Minimum edge length (for taller hasse output).")
	flag.Float64Var(&(opts.nodesep), "nodesep", 0.35, "Minimum space between two adjacent nodes in the same rank (for wider hasse output).")
	flag.UintVar(&(opts.hasseBound), "hasse-bound", 6, "Largest input length the hasse task will draw (the diagram has 2^n nodes).")
	flag.StringVar(&(opts.outputFormat), "format", "dot", "output format for the hasse task [dot | svg | png | ...]")
	flag.StringVar(&(opts.output), "out", "", "output file basename for the hasse task (defaults to stdout for dot, a temporary file otherwise)")
	flag.StringVar(&(opts.task), "task", task[_SUBSETS].flag, "Set the task to do during execution. Options:"+taskFlag)
	flag.BoolVar(&(opts.masks), "masks", false, "Prefix every printed subset with its binary membership mask.")
	flag.BoolVar(&(opts.wide), "wide", false, "Count masks in a bit set, lifting the element limit of the word-sized counter.")
	flag.BoolVar(&(opts.noColorize), "no-colorize", false, "Disable pretty printer colorization")
	flag.BoolVar(&(opts.verbose), "verbose", false, "Verbose printing")
}
