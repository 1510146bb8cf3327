// Command vecmin reads one integer per line from standard input and prints
// the smallest one. Lines that are not integers are called out and skipped.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/stkali/vecmin/errors"
	"github.com/stkali/vecmin/log"
	"github.com/stkali/vecmin/minimum"
	"github.com/stkali/vecmin/reader"
)

var verbose = flag.Bool("verbose", false, "log parse details for skipped lines")

func main() {
	flag.Parse()
	if *verbose {
		log.SetLevel(log.DEBUG)
	}

	fmt.Println("Enter a list of numbers; one per line")
	numbers, err := reader.New(os.Stdin).ReadAll()
	if err != nil {
		// keep whatever was read before the stream broke
		errors.Warning(err)
	}
	fmt.Println(minimum.Of(numbers...).Display())
}
