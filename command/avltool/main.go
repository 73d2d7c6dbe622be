// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"avltree"
)

// key/value pairs inserted by the demo, in an order that exercises
// both single and double rotations
var additions = []struct {
	key   int
	value string
}{
	{2, "Bee"},
	{1, "Ant"},
	{5, "Eel"},
	{4, "Donkey"},
	{6, "Fox"},
	{3, "Cat"},
	{7, "Goat"},
}

// removal order covers leaf, one child and two children deletions
var removals = []int{2, 1, 5, 7, 6, 3, 4}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "log-dir", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'l'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if err != nil {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--quiet] [--log-dir=DIR]", program)
	}

	if len(arguments) != 0 {
		exitwithstatus.Message("%s: extraneous extra arguments", program)
	}

	verbose := len(options["verbose"]) > 0
	quiet := len(options["quiet"]) > 0

	var log *logger.L
	if len(options["log-dir"]) > 0 {
		err := logger.Initialise(logger.Configuration{
			Directory: options["log-dir"][0],
			File:      "avltool.log",
			Size:      1048576,
			Count:     10,
			Levels: map[string]string{
				logger.DefaultTag: "info",
			},
		})
		if nil != err {
			exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
		}
		defer logger.Finalise()
		log = logger.New("main")
		log.Infof("version: %s", version)
	}

	tree := avltree.New[int, string]()

	for _, add := range additions {
		tree.Insert(add.key, add.value)
		if nil != log {
			log.Infof("insert: %d → %q  count: %d", add.key, add.value, tree.Count())
		}
		if !quiet {
			fmt.Printf("inserted %d → %q\n", add.key, add.value)
			showTree(tree, verbose)
		}
	}

	if !quiet {
		fmt.Printf("initialised tree with %d nodes\n", tree.Count())
	}

	for _, key := range removals {
		tree.Delete(key)
		if nil != log {
			log.Infof("delete: %d  count: %d", key, tree.Count())
		}
		if !quiet {
			fmt.Printf("removed %d\n", key)
			showTree(tree, verbose)
		}
	}

	if !tree.IsEmpty() {
		if nil != log {
			log.Criticalf("%d nodes still in the tree", tree.Count())
		}
		exitwithstatus.Message("%s: %d nodes still in the tree", program, tree.Count())
	}
}

// print a lookup result for every demo key, and in verbose mode the
// tree structure itself
func showTree(tree *avltree.Tree[int, string], verbose bool) {
	for key := 1; key <= 7; key += 1 {
		value, ok := tree.Lookup(key)
		if ok {
			fmt.Printf("%d → %q\n", key, value)
		} else {
			fmt.Printf("%d → NULL\n", key)
		}
	}
	if verbose {
		depth := tree.Print(true)
		fmt.Printf("depth: %d\n", depth)
	}
}
