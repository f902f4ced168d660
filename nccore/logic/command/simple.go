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

package command

// ClearCommand empties the address book.
type ClearCommand struct{}

func (ClearCommand) Execute(m Model) (Result, error) {
	m.ClearBook()
	m.ClearFilter()
	return Feedback(MessageClearSuccess), nil
}

func (ClearCommand) String() string { return "ClearCommand{}" }

// ListCommand removes every filter so all persons are shown.
type ListCommand struct{}

func (ListCommand) Execute(m Model) (Result, error) {
	m.ClearFilter()
	return Feedback(MessageListSuccess), nil
}

func (ListCommand) String() string { return "ListCommand{}" }

// HelpCommand shows the usage of every command.
type HelpCommand struct{}

func (HelpCommand) Execute(Model) (Result, error) {
	return Result{Feedback: HelpText, ShowHelp: true}, nil
}

func (HelpCommand) String() string { return "HelpCommand{}" }

// ExitCommand ends the session.
type ExitCommand struct{}

func (ExitCommand) Execute(Model) (Result, error) {
	return Result{Feedback: MessageExitAcknowledged, Exit: true}, nil
}

func (ExitCommand) String() string { return "ExitCommand{}" }
