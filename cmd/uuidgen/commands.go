package main

import (
	"errors"
	"fmt"
	"runtime"
)

var errSelfTestFailed = errors.New("self test failed")

type generateCmd struct {
	cli *cli

	Count int `short:"n" long:"count" description:"number of UUIDs to print" default:"1"`
}

func (c *generateCmd) Execute([]string) error {
	ids, err := c.cli.uc.Generate(c.cli.ctx, c.Count)
	if err != nil {
		return err
	}

	for _, id := range ids {
		fmt.Fprintln(c.cli.stdout, id)
	}
	return nil
}

type inspectCmd struct {
	cli *cli

	Format string `short:"f" long:"format" description:"output format" choice:"text" choice:"json" choice:"yaml" default:"text"`
	Args   struct {
		UUID string `positional-arg-name:"UUID"`
	} `positional-args:"yes" required:"yes"`
}

func (c *inspectCmd) Execute([]string) error {
	res, err := c.cli.uc.Inspect(c.cli.ctx, c.Args.UUID)
	if err != nil {
		return err
	}

	return renderInspect(c.cli.stdout, c.Format, res)
}

type compareCmd struct {
	cli *cli

	Args struct {
		A string `positional-arg-name:"A"`
		B string `positional-arg-name:"B"`
	} `positional-args:"yes" required:"yes"`
}

func (c *compareCmd) Execute([]string) error {
	equal, err := c.cli.uc.Compare(c.cli.ctx, c.Args.A, c.Args.B)
	if err != nil {
		return err
	}

	renderCompare(c.cli.stdout, equal)
	return nil
}

type selfTestCmd struct {
	cli *cli

	Count   int `short:"n" long:"count" description:"number of UUIDs to generate" default:"10000"`
	Workers int `short:"w" long:"workers" description:"concurrent generators, 0 for one per CPU" default:"0"`
}

func (c *selfTestCmd) Execute([]string) error {
	workers := c.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}

	res, err := c.cli.uc.SelfTest(c.cli.ctx, c.Count, workers)
	renderSelfTest(c.cli.stdout, res)
	if err != nil {
		return err
	}
	if !res.Passed() {
		return fmt.Errorf("%w: %d duplicates, %d malformed", errSelfTestFailed, res.Duplicates, res.Malformed)
	}
	return nil
}
