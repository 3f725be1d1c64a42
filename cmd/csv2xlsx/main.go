package main

import (
	"fmt"
	"os"
	"time"

	"github.com/musictools/musicscan/internal/convert"
)

func main() {
	input := convert.DefaultInput
	output := convert.OutputName(time.Now())

	fmt.Printf("Reading CSV file: %s\n", input)
	fmt.Printf("Converting to Excel and saving as: %s\n", output)

	if err := convert.Run(input, output); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Excel file created: %s\n", output)
}
