package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/viniciusth/suffixtree"
)

// Reads two strings from stdin and prints their generalized suffix tree as
// an edge listing.
func main() {
	first := flag.String("sentinel1", "$", "Sentinel appended to the first string")
	second := flag.String("sentinel2", "#", "Sentinel appended to the second string")
	flag.Parse()

	if len(*first) != 1 || len(*second) != 1 {
		fmt.Fprintln(os.Stderr, "gst: sentinels must be single bytes")
		os.Exit(1)
	}

	if err := run(os.Stdin, os.Stdout, (*first)[0], (*second)[0]); err != nil {
		fmt.Fprintf(os.Stderr, "gst: %v\n", err)
		os.Exit(1)
	}
}

func run(in io.Reader, out io.Writer, first, second byte) error {
	var a, b string
	if _, err := fmt.Fscan(bufio.NewReader(in), &a, &b); err != nil {
		return errors.Wrap(err, "reading input")
	}

	cs, err := suffixtree.NewBuilder(a, b).
		SkipIndex().
		Sentinels(first, second).
		Build()
	if err != nil {
		return errors.Wrap(err, "building suffix tree")
	}
	return errors.Wrap(cs.WriteEdges(out), "writing tree")
}
