package main

import (
	"bufio"
	"fmt"
	"os"

	"tires/internal/pipeline"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	records, err := pipeline.Run(os.Args[1])
	must(err)

	out := bufio.NewWriter(os.Stdout)
	must(pipeline.WriteJSON(out, records))
	must(out.Flush())
}

func usage() {
	fmt.Println("usage: normalize-tires <csv_file>")
}

func must(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
