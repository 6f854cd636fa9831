package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/example/calculator-api/domain/calc"
	"github.com/example/calculator-api/expr"
)

func main() {
	log.SetFlags(0)
	var (
		inname, verb string
		echo         bool
	)
	flag.StringVar(&inname, "in", "", "input file, one expression per line (default stdin if no args given)")
	flag.StringVar(&verb, "fmt", "%g", "result formatting string")
	flag.BoolVar(&echo, "echo", false, "print parse trees")
	flag.Parse()

	var exprs []string
	f, err := infile(inname, flag.NArg() == 0)
	if err != nil {
		log.Fatal(err)
	}
	if f != nil {
		sc := bufio.NewScanner(f)
		for sc.Scan() {
			if strings.TrimSpace(sc.Text()) == "" {
				continue
			}
			exprs = append(exprs, sc.Text())
		}
		if err := sc.Err(); err != nil {
			log.Fatal(err)
		}
	}
	exprs = append(exprs, flag.Args()...)

	verb += "\n"
	code := 0
	for _, src := range exprs {
		if echo {
			a, err := expr.Parse(strings.NewReader(src))
			if err != nil {
				log.Println(err)
				code = 1
				continue
			}
			fmt.Printf("%v : ", a)
		}
		r, err := calc.Evaluate(src)
		if err != nil {
			fmt.Println(err)
			code = 1
			continue
		}
		fmt.Printf(verb, r)
	}
	os.Exit(code)
}

func infile(inname string, std bool) (io.Reader, error) {
	switch {
	case inname != "" && inname != "-":
		in, err := os.Open(inname)
		if err != nil {
			return nil, err
		}
		return in, nil
	case inname == "-", std:
		return os.Stdin, nil
	}
	return nil, nil
}
