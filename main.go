package main

/* Tim Henderson (tadh@case.edu)
*
* Copyright (c) 2015, Tim Henderson, Case Western Reserve University
* Cleveland, Ohio 44106. All Rights Reserved.
*
* This library is free software; you can redistribute it and/or modify
* it under the terms of the GNU General Public License as published by
* the Free Software Foundation; either version 3 of the License, or (at
* your option) any later version.
*
* This library is distributed in the hope that it will be useful, but
* WITHOUT ANY WARRANTY; without even the implied warranty of
* MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
* General Public License for more details.
*
* You should have received a copy of the GNU General Public License
* along with this library; if not, write to the Free Software
* Foundation, Inc.,
*   51 Franklin Street, Fifth Floor,
*   Boston, MA  02110-1301
*   USA
 */

import (
	"fmt"
	"os"
	"strings"
)

import (
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/getopt"
)

import (
	"github.com/timtadh/apriori/cmd"
	"github.com/timtadh/apriori/config"
)

func init() {
	cmd.UsageMessage = "apriori --help"
	cmd.ExtendedMessage = `
apriori - mine all frequent itemsets level by level

$ apriori -o <path> (--support=<int>[,<int>...] | --rates=<float>[,<float>...]) \
    [Global Options] <input-path> [<reporter> [Reporter Options]]

Note: You may either supply the <input-path> as a regular file, a gzipped
      file or a directory of such files. If supplying a gzip file the file
      extension must be '.gz'.

Note: Each threshold is mined on its own. If one fails the error is logged
      and the rest still run. The exit code counts the failed thresholds.

Note: If you don't supply a reporter by default it will use 'chain file count'.

Global Options
    -h, --help                view this message
    --reporters               show the available reporters
    -o, --output=<path>       path to output directory (required)
                              NB: will overwrite contents of dir
    -c, --cache=<path>        path to cache directory (optional) for the
                              inverted index, created if missing
    --support=<ints>          minimum support degrees, comma separated
    --rates=<floats>          minimum support rates in (0, 1], comma
                              separated. the degree is ceil(rate * #txs)
    --index                   count support with an inverted index
    --no-prune                do not drop candidates with infrequent subsets
    --max-level=<int>         do not mine itemsets larger than this
    --skip-log=<level>        don't output the given log level.

Developer Options
    --cpu-profile=<path>      write a cpu-profile to this location

Input Format
    each line is a transaction
    the items are non-negative integers
    the items are space separated

    Example file:
        10 1 5 7
        213 2 5 1
        23 1 4 5 7
        3 4 1

Reporters
    chain                     chain several reporters together
    log                       log the frequent itemsets
    file                      write the frequent itemsets to
                              <output>/<threshold>.items
    count                     write the number of frequent itemsets (total
                              then per level) to <output>/<threshold>.count
    unique                    drop repeated itemsets before the wrapped
                              reporter sees them

    log Options
        -l, level=<string>    log level the logger should use
        -p, prefix=<string>   a prefix to put before the log line

    file Options
        -p, patterns=<name>   a prefix for the name of the file

    Examples

        $ apriori -o /tmp/apriori --rates=.25,.2,.15,.1,.05 ./mushroom.dat

        $ apriori -o /tmp/apriori --support=3 --index ./data/txs.dat.gz \
            chain log file
`
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(argv []string) int {
	args, optargs, err := getopt.GetOpt(
		argv,
		"ho:c:",
		[]string{
			"help",
			"output=", "cache=",
			"support=", "rates=",
			"index", "no-prune",
			"max-level=",
			"reporters",
			"skip-log=",
			"cpu-profile=",
		},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, "could not process your arguments try:")
		fmt.Fprintf(os.Stderr, "$ %v --help\n", os.Args[0])
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	base := &config.Config{Prune: true}
	supports := []int{}
	rates := []float64{}
	cpuProfile := ""
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			cmd.Usage(0)
		case "-o", "--output":
			base.Output = cmd.EmptyDir(oa.Arg())
		case "-c", "--cache":
			base.Cache = cmd.AssertDir(oa.Arg())
		case "--support":
			supports = append(supports, cmd.ParseInts(oa.Arg())...)
		case "--rates":
			rates = append(rates, cmd.ParseFloats(oa.Arg())...)
		case "--index":
			base.Index = true
		case "--no-prune":
			base.Prune = false
		case "--max-level":
			base.MaxLevel = cmd.ParseInt(oa.Arg())
		case "--reporters":
			fmt.Fprintln(os.Stderr, "Reporters:")
			for k := range cmd.Reporters {
				fmt.Fprintln(os.Stderr, "  ", k)
			}
			os.Exit(0)
		case "--skip-log":
			level := oa.Arg()
			errors.Logf("INFO", "not logging level %v", level)
			errors.SkipLogging[level] = true
		case "--cpu-profile":
			cpuProfile = cmd.AssertFile(oa.Arg())
		default:
			fmt.Fprintf(os.Stderr, "Unknown flag '%v'\n", oa.Opt())
			cmd.Usage(cmd.ErrorCodes["opts"])
		}
	}

	if base.Output == "" {
		fmt.Fprintf(os.Stderr, "You must supply an output dir (-o)\n")
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	if len(supports) == 0 && len(rates) == 0 {
		fmt.Fprintf(os.Stderr, "You must supply --support or --rates\n")
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	if base.MaxLevel < 0 {
		fmt.Fprintf(os.Stderr, "--max-level < 0, must be >= 0\n")
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	confs := make([]*config.Config, 0, len(supports)+len(rates))
	for _, support := range supports {
		if support <= 0 {
			fmt.Fprintf(os.Stderr, "Support %v <= 0, must be > 0\n", support)
			cmd.Usage(cmd.ErrorCodes["opts"])
		}
		conf := base.Copy()
		conf.Support = support
		confs = append(confs, conf)
	}
	for _, rate := range rates {
		// invalid rates are reported by the run for that rate
		conf := base.Copy()
		conf.Rate = rate
		confs = append(confs, conf)
	}

	if cpuProfile != "" {
		defer cmd.CPUProfile(cpuProfile)()
	}

	errors.Logf("INFO", "thresholds: %v", names(confs))
	return cmd.Main(args, confs)
}

func names(confs []*config.Config) string {
	n := make([]string, 0, len(confs))
	for _, conf := range confs {
		n = append(n, conf.Name())
	}
	return strings.Join(n, ", ")
}
