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

// Command netconnect manages business contacts from the terminal.
//
// Run without arguments to start the interactive prompt, or pass a single
// command to exec:
//
//	netconnect exec "add n/Amy Bee p/11111111 e/amy@example.com a/Block 312 r/client"
package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"dirpx.dev/netconnect/nccore/errors"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		// A second interrupt terminates immediately.
		<-ctx.Done()
		stop()
	}()

	a := &app{}
	err := newRootCmd(a).ExecuteContext(ctx)
	if stderrors.Is(err, context.Canceled) {
		err = nil
	}
	if cerr := a.close(); err == nil {
		err = cerr
	}
	if err != nil {
		// Parse and command errors have been shown with the command output.
		if !errors.IsParse(err) && !errors.IsCommand(err) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
