// SPDX-License-Identifier: GPL-3.0-or-later
package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"

	"umjunsik/repl"
)

func main() {
	currentUser, err := user.Current()
	if err != nil {
		fmt.Printf("Error getting current user: %v\n", err)
		return
	}

	fmt.Printf("Welcome to the Umjunsik REPL, %s!\n", currentUser.Username)
	fmt.Println("Enter one statement per line. :source shows the program, :reset clears it, :quit exits.")
	if liner.TerminalSupported() && isatty.IsTerminal(os.Stdin.Fd()) {
		repl.StartTerminal(os.Stdout)
		return
	}
	repl.Start(os.Stdin, os.Stdout)
}
