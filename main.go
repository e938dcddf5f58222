package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/cs-au-dk/powerset/hasse"
	"github.com/cs-au-dk/powerset/powerset"
	"github.com/cs-au-dk/powerset/utils"
	"github.com/cs-au-dk/powerset/utils/dot"
)

var opts = utils.Opts()

func main() {
	flag.Parse()

	// No elements is fine: the powerset of the empty set is {∅}.
	elems := flag.Args()

	switch {
	case opts.Task().IsSubsets():
		printSubsets(elems)
	case opts.Task().IsHasse():
		printHasse(elems)
	default:
		flag.Usage()
		os.Exit(1)
	}
}

func printSubsets(elems []string) {
	if opts.Wide() {
		e := powerset.NewWide[string](powerset.Slice[string](elems))
		if err := powerset.FprintWide(os.Stdout, e, opts.Masks()); err != nil {
			log.Fatalln(err)
		}
		return
	}

	e, err := powerset.Of(elems...)
	if err != nil {
		log.Fatalln(err)
	}
	if err := powerset.Fprint(os.Stdout, e, opts.Masks()); err != nil {
		log.Fatalln(err)
	}
}

func printHasse(elems []string) {
	if len(elems) > opts.HasseBound() {
		log.Fatalf("refusing to draw the diagram of %d elements (%d nodes); raise -hasse-bound to force it\n",
			len(elems), uint64(1)<<uint(len(elems)))
	}

	g, err := hasse.Diagram[string](powerset.Slice[string](elems))
	if err != nil {
		log.Fatalln(err)
	}

	var buf bytes.Buffer
	if err := g.WriteDot(&buf); err != nil {
		log.Fatalln(err)
	}
	utils.VerbosePrint("Diagram has %d nodes and %d edges\n", len(g.Nodes), len(g.Edges))

	if opts.OutputFormat() == "dot" {
		if opts.Output() == "" {
			if _, err := os.Stdout.Write(buf.Bytes()); err != nil {
				log.Fatalln(err)
			}
			return
		}
		fname := opts.Output() + ".dot"
		if err := os.WriteFile(fname, buf.Bytes(), 0644); err != nil {
			log.Fatalln(err)
		}
		fmt.Println("Exported diagram to", fname)
		return
	}

	img, err := dot.DotToImage(opts.Output(), opts.OutputFormat(), buf.Bytes())
	if err != nil {
		log.Fatalln(err)
	}
	fmt.Println("Exported diagram to", img)
}
