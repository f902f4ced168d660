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

// Package parser turns command text into executable commands.
//
// Input has the shape "WORD ARGUMENTS". The word selects a command parser;
// the arguments are split on field prefixes such as "n/" by Tokenize.
// Parsing either yields a complete command or fails with *errors.ParseError
// before anything is executed. Field values are checked with the value
// objects of the person package; their *errors.ValidationError is kept as
// the cause of the ParseError.
package parser

import (
	stderrors "errors"
	"fmt"
	"strings"

	"dirpx.dev/netconnect/nccore/errors"
	"dirpx.dev/netconnect/nccore/logic/command"
	"dirpx.dev/netconnect/nccore/model/person"
)

type parseFunc func(args string) (command.Command, error)

var parsers = map[string]parseFunc{
	command.WordAdd:         parseAdd,
	command.WordEdit:        parseEdit,
	command.WordDelete:      parseDelete,
	command.WordClear:       noArgs(command.ClearCommand{}),
	command.WordList:        noArgs(command.ListCommand{}),
	command.WordFind:        parseFind,
	command.WordFindNum:     parseFindNum,
	command.WordRelate:      parseRelate,
	command.WordUnrelate:    parseUnrelate,
	command.WordShowRelated: parseShowRelated,
	command.WordExport:      parseExport,
	command.WordHelp:        noArgs(command.HelpCommand{}),
	command.WordExit:        noArgs(command.ExitCommand{}),
}

// Parse parses one line of user input.
func Parse(input string) (command.Command, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, invalidFormat(command.UsageHelp)
	}

	word, args, _ := strings.Cut(input, " ")
	parse, ok := parsers[word]
	if !ok {
		return nil, &errors.ParseError{Type: "command", Value: word, Reason: command.MessageUnknownCommand}
	}
	// Prefixes are only recognized after whitespace, so the argument text
	// keeps a leading space.
	return parse(" " + args)
}

func noArgs(c command.Command) parseFunc {
	return func(string) (command.Command, error) { return c, nil }
}

func invalidFormat(usage string) error {
	return &errors.ParseError{
		Type:   "command",
		Reason: fmt.Sprintf(command.MessageInvalidCommandFormat, usage),
	}
}

// field wraps a value-object failure so it surfaces as a parse error with
// the value object's message.
func field(err error) error {
	if err == nil {
		return nil
	}
	var pe *errors.ParseError
	if stderrors.As(err, &pe) {
		return err
	}
	var ve *errors.ValidationError
	if stderrors.As(err, &ve) {
		return &errors.ParseError{Type: ve.Type, Value: fmt.Sprint(ve.Value), Err: err}
	}
	return &errors.ParseError{Type: "field", Err: err}
}

// fields parses optional field values, remembering the first failure.
// Once a parse failed every later call returns nil.
type fields struct {
	args ArgumentMultimap
	err  error
}

// one parses the value of p if present.
func one[T any](f *fields, p Prefix, parse func(string) (T, error)) *T {
	raw, ok := f.args.Value(p)
	if f.err != nil || !ok {
		return nil
	}
	v, err := parse(raw)
	if err != nil {
		f.err = field(err)
		return nil
	}
	return &v
}

// set parses every value of p if present. A single empty value yields an
// empty set, which an edit uses to clear the field.
func set[T any](f *fields, p Prefix, parse func([]string) (T, error)) *T {
	values := f.args.AllValues(p)
	if f.err != nil || values == nil {
		return nil
	}
	if len(values) == 1 && values[0] == "" {
		values = []string{}
	}
	v, err := parse(values)
	if err != nil {
		f.err = field(err)
		return nil
	}
	return &v
}

// parseIds returns the ids given with i/; want is the exact number needed.
func parseIds(args string, want int, usage string) ([]person.Id, error) {
	a := Tokenize(args, PrefixId)
	values := a.AllValues(PrefixId)
	if a.Preamble() != "" || len(values) != want {
		return nil, invalidFormat(usage)
	}

	ids := make([]person.Id, len(values))
	for i, v := range values {
		id, err := person.ParseId(v)
		if err != nil {
			return nil, field(err)
		}
		ids[i] = id
	}
	return ids, nil
}
