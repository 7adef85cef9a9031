// rnxname checks filenames against the RINEX3 long filename convention and
// prints every violated naming rule.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/gnsslab/rnxcheck/pkg/rinex"
)

const (
	version = "0.1.0"
)

func main() {
	quiet := false
	fs := flag.NewFlagSet("rnxname/"+version, flag.ExitOnError)
	fs.BoolVar(&quiet, "q", false, "Print nothing, only set the exit code.")
	fs.Usage = func() {
		fmt.Println("rnxname - check filenames against the RINEX3 long filename convention")
		fmt.Println("")
		fmt.Println("USAGE: rnxname [OPTIONS] NAME...")
		fmt.Printf("\nFLAGS:\n")
		fs.PrintDefaults()
		fmt.Println(`
EXAMPLES:
    $ rnxname BRUX00BEL_R_20183101900_01H_30S_MO.rnx
    $ rnxname -q ALGO*.rnx && echo all good
        `)

		fmt.Printf("Version: %s\n", version)
	}
	fs.Parse(os.Args[1:])

	if fs.NArg() < 1 {
		fs.Usage()
		os.Exit(2)
	}

	invalid := 0
	for _, name := range fs.Args() {
		rnx, err := rinex.ParseName(name)
		if err != nil {
			invalid++
			if quiet {
				continue
			}
			fmt.Printf("%s: invalid\n", name)
			var nameErr *rinex.InvalidNameError
			if errors.As(err, &nameErr) {
				for _, v := range nameErr.Violations {
					fmt.Printf("  %s\n", v)
				}
			}
			continue
		}
		if quiet {
			continue
		}
		fmt.Printf("%s: valid\n", name)
		for _, warn := range rnx.Warnings() {
			fmt.Printf("  warning: %s\n", warn)
		}
	}
	if invalid > 0 {
		os.Exit(1)
	}
}
