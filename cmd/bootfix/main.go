// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ezrec/bootfix/console"
	"github.com/ezrec/bootfix/cpu"
)

func main() {
	var input string
	var fix bool
	var verbose bool

	flag.StringVar(&input, "i", "-", "Boot code listing")
	flag.BoolVar(&fix, "f", false, "Search for a jmp/nop fix")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	inf := os.Stdin
	if input != "-" {
		var err error
		inf, err = os.Open(input)
		if err != nil {
			log.Fatalf("%v: %v", input, err)
		}
		defer inf.Close()
	}

	con := console.NewConsole()
	con.Verbose = verbose

	err := con.Load(inf)
	if err != nil {
		log.Fatalf("%v: %v", input, err)
	}

	outcome, err := con.Boot()
	if err != nil {
		log.Fatal(err)
	}

	if outcome == cpu.OUTCOME_TERMINATED {
		fmt.Printf("terminated: accumulator %v\n", con.Cpu.Accumulator)
		return
	}

	fmt.Printf("infinite loop at address %v: accumulator %v\n", con.Cpu.Ip, con.Cpu.Accumulator)

	if !fix {
		return
	}

	acc, ok, err := con.Repair()
	if err != nil {
		log.Fatal(err)
	}
	if !ok {
		fmt.Println("no fix found")
		os.Exit(1)
	}

	fmt.Printf("fixed: accumulator %v\n", acc)
}
