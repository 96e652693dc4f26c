package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	runewidth "github.com/mattn/go-runewidth"

	"github.com/strvec/strvec"
	"github.com/strvec/strvec/config"
)

var version = "v0.3.0"

type cmdOptions struct {
	OptHelp      bool             `short:"h" long:"help" description:"show this help message and exit"`
	OptRcfile    string           `long:"rcfile" description:"path to the settings file"`
	OptKeep      []string         `short:"k" long:"keep" description:"keep only lines wholly matched by PATTERN (may be repeated)" value-name:"PATTERN"`
	OptRemove    []string         `short:"r" long:"remove" description:"remove lines wholly matched by PATTERN (may be repeated)" value-name:"PATTERN"`
	OptTrim      bool             `short:"t" long:"trim" description:"strip whitespace surrounding every line"`
	OptSqueeze   bool             `short:"s" long:"squeeze" description:"drop empty and whitespace-only lines"`
	OptSplit     string           `long:"split" description:"split every line on DELIM" value-name:"DELIM"`
	OptSort      config.SortOrder `long:"sort" description:"order the lines: 'alpha' or 'length'" value-name:"ORDER"`
	OptReverse   bool             `long:"reverse" description:"reverse the line order"`
	OptDropFirst int              `long:"drop-first" description:"drop the first N lines" value-name:"N"`
	OptDropLast  int              `long:"drop-last" description:"drop the last N lines" value-name:"N"`
	OptTruncate  int              `long:"truncate" description:"cut every output line down to N display columns" value-name:"N"`
	OptSeparator string           `long:"separator" description:"string written between output lines (defaults to a newline)"`
	OptOutput    string           `short:"o" long:"output" description:"write the result to FILE instead of stdout" value-name:"FILE"`
	OptVersion   bool             `long:"version" description:"print the version and exit"`
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	var opts cmdOptions
	p := flags.NewParser(&opts, flags.PrintErrors|flags.PassDoubleDash)
	p.Usage = "[options] [FILE...]"
	files, err := p.ParseArgs(args)
	if err != nil {
		return 1
	}

	if opts.OptHelp {
		p.WriteHelp(os.Stdout)
		return 0
	}

	if opts.OptVersion {
		fmt.Fprintf(os.Stderr, "strvec: %s\n", version)
		return 0
	}

	cfg := config.New()
	rcfile := opts.OptRcfile
	if rcfile == "" {
		if file, err := config.LocateRcfile(config.DefaultLocator); err == nil {
			rcfile = file
		}
	}
	if rcfile != "" {
		if err := cfg.ReadFilename(rcfile); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
	}

	v := strvec.New()
	if len(files) == 0 {
		if err := v.Read(os.Stdin); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
	}
	for _, file := range files {
		if err := v.ReadFile(file); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
	}

	if err := apply(v, &opts, cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	sep := cfg.Separator
	if opts.OptSeparator != "" {
		sep = opts.OptSeparator
	}

	if opts.OptOutput != "" {
		err = v.WriteFile(opts.OptOutput, sep)
	} else {
		err = v.Fprint(os.Stdout, sep, sep == "\n")
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

// apply runs the requested operations in a fixed order: trim, keep,
// remove, squeeze, split, sort, reverse, drop-first/drop-last, truncate.
func apply(v *strvec.Vector, opts *cmdOptions, cfg *config.Config) error {
	if opts.OptTrim || cfg.Trim {
		v.Trim()
	}

	for _, pattern := range opts.OptKeep {
		if err := v.FilterKeepPattern(pattern); err != nil {
			return err
		}
	}
	for _, pattern := range opts.OptRemove {
		if err := v.FilterRemovePattern(pattern); err != nil {
			return err
		}
	}

	if opts.OptSqueeze || cfg.Squeeze {
		v.FilterEmpty(false)
	}

	if opts.OptSplit != "" {
		if err := v.Split(opts.OptSplit); err != nil {
			return err
		}
	}

	order := cfg.Sort
	if opts.OptSort != config.SortNone {
		order = opts.OptSort
	}
	switch order {
	case config.SortAlpha:
		v.SortAlphabetically()
	case config.SortLength:
		v.SortByLength()
	}

	if opts.OptReverse {
		v.Reverse()
	}

	for i := 0; i < opts.OptDropFirst; i++ {
		v.RemoveFirst()
	}
	for i := 0; i < opts.OptDropLast; i++ {
		v.RemoveLast()
	}

	truncate := cfg.Truncate
	if opts.OptTruncate > 0 {
		truncate = opts.OptTruncate
	}
	if truncate > 0 {
		v.Transform(func(l string) string {
			return runewidth.Truncate(l, truncate, "")
		})
	}

	return nil
}
