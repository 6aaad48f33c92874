// Copyright © 2026 corvid contributors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package uci implements a minimal Universal Chess Interface client:
// a line-oriented read-eval-print loop over stdin/stdout that
// dispatches each command line to a registered handler.
// https://www.chessprogramming.org/UCI
package uci

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// errQuit is returned by the quit command to stop Start's loop.
var errQuit = errors.New("uci: quit")

// Interaction carries one parsed command line to its Command.
type Interaction struct {
	client *Client
	// Args holds every token on the command line after the command
	// name itself.
	Args []string
}

// Reply writes a line to the GUI, UCI fashion (fmt.Println on stdout).
func (i *Interaction) Reply(a ...any) {
	fmt.Fprintln(i.client.stdout, a...)
}

// Replyf writes a formatted, newline-terminated line to the GUI.
func (i *Interaction) Replyf(format string, a ...any) {
	fmt.Fprintf(i.client.stdout, format+"\n", a...)
}

// Command is a single UCI verb the client can dispatch to.
type Command struct {
	Name string
	Run  func(Interaction) error
}

// NewClient creates a Client reading commands from stdin and writing
// replies to stdout, with the standard quit/isready/uci commands
// already registered.
func NewClient() *Client {
	c := &Client{
		stdin:    os.Stdin,
		stdout:   os.Stdout,
		commands: make(map[string]Command),
	}

	c.AddCommand(Command{Name: "quit", Run: func(Interaction) error { return errQuit }})
	c.AddCommand(Command{Name: "isready", Run: func(i Interaction) error {
		i.Reply("readyok")
		return nil
	}})
	c.AddCommand(Command{Name: "uci", Run: func(i Interaction) error {
		i.Reply("id name corvid")
		i.Reply("id author corvid contributors")
		i.Reply("uciok")
		return nil
	}})

	return c
}

// Client is a UCI command dispatcher: a map from command name to
// handler, read from an input stream and written to an output one.
type Client struct {
	stdin  io.Reader
	stdout io.Writer

	commands map[string]Command
}

// AddCommand registers cmd, replacing any existing command with the
// same name.
func (c *Client) AddCommand(cmd Command) {
	c.commands[cmd.Name] = cmd
}

// Start runs the read-eval-print loop until the input stream is
// closed or a quit command is received, returning nil in either case
// (quit is a clean exit, not an error).
func (c *Client) Start() error {
	reader := bufio.NewScanner(c.stdin)

	for reader.Scan() {
		args := strings.Fields(reader.Text())
		if len(args) == 0 {
			continue
		}

		switch err := c.Run(args); {
		case err == nil:
			// continue the loop
		case errors.Is(err, errQuit):
			return nil
		default:
			fmt.Fprintln(c.stdout, err)
		}
	}

	return reader.Err()
}

// Run dispatches a single command line to its handler.
func (c *Client) Run(args []string) error {
	name, rest := args[0], args[1:]

	cmd, found := c.commands[name]
	if !found {
		return fmt.Errorf("%s: command not found", name)
	}

	return cmd.Run(Interaction{client: c, Args: rest})
}
