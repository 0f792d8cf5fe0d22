package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"

	"github.com/alder-lang/alder"
)

func main() {
	log.SetFlags(0)
	var (
		inname string
		consts string
		quiet  bool
	)
	flag.StringVar(&inname, "in", "", "input file of expressions, one per line (default stdin if no args given)")
	flag.StringVar(&consts, "consts", "", "YAML file of extra named constants")
	flag.BoolVar(&quiet, "q", false, "suppress the interactive hint")
	flag.Parse()

	opts, err := loadConsts(consts)
	if err != nil {
		log.Fatal(err)
	}
	env := alder.NewEnv(opts...)

	code := 0
	if flag.NArg() > 0 {
		for _, src := range flag.Args() {
			if !run(src, env) {
				code = 1
			}
		}
		os.Exit(code)
	}

	f := os.Stdin
	if inname != "" && inname != "-" {
		in, err := os.Open(inname)
		if err != nil {
			log.Fatal(err)
		}
		defer in.Close()
		f = in
	} else if !quiet && isatty.IsTerminal(f.Fd()) {
		fmt.Fprintln(os.Stderr, "enter one expression per line; ^D ends input")
	}
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		src := strings.TrimSpace(sc.Text())
		if src == "" {
			continue
		}
		if !run(src, env) {
			code = 1
		}
	}
	if err := sc.Err(); err != nil {
		log.Fatal(err)
	}
	os.Exit(code)
}

// run evaluates one expression and prints its value or a caret diagnostic.
func run(src string, env *alder.Env) bool {
	e, err := alder.Parse(src)
	if err != nil {
		diagnose(src, err)
		return false
	}
	v, err := alder.Eval(e, env)
	if err != nil {
		diagnose(src, err)
		return false
	}
	fmt.Println(v)
	return true
}

// diagnose renders an error against its source text: the offending line, a
// caret run under the error span, and the message.
func diagnose(src string, err error) {
	var ee *alder.Error
	if !errors.As(err, &ee) {
		log.Println(err)
		return
	}
	start, end := ee.Span.Start, ee.Span.End
	if start > len(src) {
		start = len(src)
	}
	lo := strings.LastIndexByte(src[:start], '\n') + 1
	hi := strings.IndexByte(src[lo:], '\n')
	if hi < 0 {
		hi = len(src)
	} else {
		hi += lo
	}
	if end > hi {
		end = hi
	}
	width := end - start
	if width < 1 {
		width = 1
	}
	fmt.Fprintln(os.Stderr, src[lo:hi])
	fmt.Fprintln(os.Stderr, strings.Repeat(" ", start-lo)+strings.Repeat("^", width))
	fmt.Fprintf(os.Stderr, "%s: %s\n", ee.Kind, ee.Message)
}

// loadConsts reads a YAML mapping of names to int, float, or bool scalars
// and turns it into environment options.
func loadConsts(path string) ([]alder.EnvOption, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	vals := make(map[string]alder.Value, len(m))
	for name, raw := range m {
		switch v := raw.(type) {
		case int:
			vals[name] = alder.IntOf(int64(v))
		case int64:
			vals[name] = alder.IntOf(v)
		case float64:
			vals[name] = alder.FloatOf(v)
		case bool:
			vals[name] = alder.BoolOf(v)
		default:
			return nil, fmt.Errorf("%s: constant %q must be an int, float, or bool scalar", path, name)
		}
	}
	return []alder.EnvOption{alder.WithConsts(vals)}, nil
}
