// Command symdiff differentiates one or more expressions given as
// command-line arguments, or one per line of standard input (or a file)
// when none are given.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/symdiff/symdiff"
)

func main() {
	log.SetFlags(0)
	var (
		inname string
		wrt    string
	)
	flag.StringVar(&inname, "in", "", "input file (default stdin if no expression arguments are given)")
	flag.StringVar(&wrt, "var", "x", "single-letter variable to differentiate with respect to")
	flag.Parse()

	if len(wrt) != 1 {
		log.Fatalf("-var must be a single letter, got %q", wrt)
	}

	var exprs []string
	if flag.NArg() > 0 {
		exprs = flag.Args()
	} else {
		r, err := inreader(inname)
		if err != nil {
			log.Fatal(err)
		}
		exprs, err = readLines(r)
		if err != nil {
			log.Fatal(err)
		}
	}

	status := 0
	for _, src := range exprs {
		result, err := symdiff.Differentiate(src, wrt[0])
		if err != nil {
			fmt.Printf("%s: %v\n", src, err)
			status = 1
			continue
		}
		fmt.Println(result)
	}
	os.Exit(status)
}

func inreader(inname string) (io.Reader, error) {
	if inname == "" || inname == "-" {
		return os.Stdin, nil
	}
	return os.Open(inname)
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, sc.Err()
}
