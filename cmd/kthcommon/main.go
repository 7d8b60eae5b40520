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

// Reads two strings and a one-based rank k from stdin and prints the k-th
// common substring in lexicographic order, or -1.
func main() {
	foldCase := flag.Bool("fold-case", false, "Match case-insensitively")
	normalize := flag.Bool("nfc", false, "Normalize both strings with NFC before matching")
	flag.Parse()

	if err := run(os.Stdin, os.Stdout, *foldCase, *normalize); err != nil {
		fmt.Fprintf(os.Stderr, "kthcommon: %v\n", err)
		os.Exit(1)
	}
}

func run(in io.Reader, out io.Writer, foldCase, normalize bool) error {
	var first, second string
	var k int
	if _, err := fmt.Fscan(bufio.NewReader(in), &first, &second, &k); err != nil {
		return errors.Wrap(err, "reading input")
	}

	builder := suffixtree.NewBuilder(first, second).SkipIndex()
	if foldCase {
		builder = builder.FoldCase()
	}
	if normalize {
		builder = builder.Normalize()
	}
	cs, err := builder.Build()
	if err != nil {
		return errors.Wrap(err, "building suffix tree")
	}

	if _, err := fmt.Fprintln(out, cs.KthString(k)); err != nil {
		return errors.Wrap(err, "writing answer")
	}
	return nil
}
