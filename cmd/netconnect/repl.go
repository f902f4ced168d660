/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package main

import (
	"bufio"
	"context"
	"io"
	"strings"

	"dirpx.dev/netconnect/nccore/logic"
)

// runREPL reads commands line by line from in until the exit command, end
// of input or cancellation of ctx. Cancellation is a normal way to leave
// and returns nil.
func runREPL(ctx context.Context, l *logic.Logic, in io.Reader, term *terminal) error {
	term.welcome(l.StoragePath(), l.Book().Len())
	term.persons(l.ActiveFilter(), l.FilteredPersons())

	lines, readErr := readLines(ctx, in)
	for {
		term.showPrompt()

		var line string
		select {
		case <-ctx.Done():
			term.interrupted()
			return nil
		case next, ok := <-lines:
			if !ok {
				return <-readErr
			}
			line = strings.TrimSpace(next)
		}
		if line == "" {
			continue
		}

		res, err := l.Execute(ctx, line)
		if err != nil {
			term.failure(err)
			continue
		}
		term.result(res)
		if res.Exit {
			return nil
		}
		term.persons(l.ActiveFilter(), l.FilteredPersons())
	}
}

// readLines scans in on its own goroutine so a blocked read does not keep
// the prompt from noticing cancellation. The lines channel is closed at end
// of input, after the scan error (possibly nil) is sent on the error channel.
func readLines(ctx context.Context, in io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				errc <- ctx.Err()
				return
			}
		}
		errc <- scanner.Err()
	}()

	return lines, errc
}
