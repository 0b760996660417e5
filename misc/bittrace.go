package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/davecgh/go-spew/spew"
	bitnum "github.com/shabbyrobe/go-bitnum"
)

// This is a cheap-and-nasty workbench for eyeballing how the width of a
// UInt evolves through a chain of operations. It prints every intermediate
// result in its raw bit form and was mostly used to convince me that the
// carry growth, the negate trim and the subtraction clamp interact the way
// I thought they did.
//
// It has been kept with the repository in case it comes in handy, but I
// wouldn't recommend using it for anything serious.

const usage = `Bit sequence tracer

Usage: bittrace [-dump] <value> [<op> <value>]...

Ops are applied left to right to the running result, no precedence:
  + - x and or xor     binary; 'x' is multiplication
  neg                  unary, applied to the running result

Values take any form UIntFromString accepts: 0b1011, 23, 0x17, 0o27.`

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	dump := flag.Bool("dump", false, "spew the final value's internals")
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		fmt.Println(usage)
		return fmt.Errorf("missing args")
	}

	cur, err := bitnum.UIntFromString(args[0])
	if err != nil {
		return err
	}
	fmt.Printf("  %s (w=%d)\n", cur, cur.Width())

	for i := 1; i < len(args); {
		op := args[i]

		if op == "neg" {
			cur.Negate()
			fmt.Printf("neg = %s (w=%d)\n", cur, cur.Width())
			i++
			continue
		}

		if i+1 >= len(args) {
			return fmt.Errorf("op %q missing its right hand value", op)
		}
		rhs, err := bitnum.UIntFromString(args[i+1])
		if err != nil {
			return err
		}

		if op == "+" {
			cur.Add(rhs)
		} else if op == "-" {
			cur.Sub(rhs)
		} else if op == "x" {
			cur.Mul(rhs)
		} else if op == "and" {
			cur.And(rhs)
		} else if op == "or" {
			cur.Or(rhs)
		} else if op == "xor" {
			cur.Xor(rhs)
		} else {
			return fmt.Errorf("op must be one of: + - x and or xor neg")
		}

		fmt.Printf("%3s %s (w=%d)\n", op, rhs, rhs.Width())
		fmt.Printf("  = %s (w=%d)\n", cur, cur.Width())
		i += 2
	}

	fmt.Printf("dec:%d hex:%#x bits:%b width:%d bitlen:%d\n",
		cur, cur, cur, cur.Width(), cur.BitLen())

	if *dump {
		spew.Dump(cur)
	}
	return nil
}
