package main

import (
	"fmt"
	"os"

	"github.com/reusee/taibf/bfvm"
	"github.com/reusee/taibf/cmds"
)

const theory = `A byte tape, a data pointer and eight instructions.

  >  move the pointer right        <  move the pointer left
  +  increment the cell            -  decrement the cell
  .  write the cell                ,  read into the cell
  [  jump past the matching ] if the cell is zero
  ]  jump back to the matching [ if the cell is not zero

Cells wrap modulo 256. Any other character is ignored, and # comments out the
rest of a line. A fixed tape has %d cells by default, a growable one extends
rightwards on demand. Moving left of cell 0 is always a fault.
`

func init() {
	cmds.Define("theory", cmds.Func(func() {
		fmt.Fprintf(os.Stdout, theory, bfvm.DefaultTapeLength)
		os.Exit(0)
	}).Desc("describe the machine"))
}
