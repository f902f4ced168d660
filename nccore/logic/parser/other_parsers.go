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

package parser

import (
	"path/filepath"
	"strings"

	"dirpx.dev/netconnect/nccore/logic/command"
	"dirpx.dev/netconnect/nccore/model/filter"
	"dirpx.dev/netconnect/nccore/model/person"
)

func parseDelete(args string) (command.Command, error) {
	ids, err := parseIds(args, 1, command.UsageDelete)
	if err != nil {
		return nil, err
	}
	return &command.DeleteCommand{Id: ids[0]}, nil
}

func parseShowRelated(args string) (command.Command, error) {
	ids, err := parseIds(args, 1, command.UsageShowRelated)
	if err != nil {
		return nil, err
	}
	return &command.ShowRelatedCommand{Id: ids[0]}, nil
}

func parseRelate(args string) (command.Command, error) {
	ids, err := parseIds(args, 2, command.UsageRelate)
	if err != nil {
		return nil, err
	}
	return &command.RelateCommand{First: ids[0], Second: ids[1]}, nil
}

func parseUnrelate(args string) (command.Command, error) {
	ids, err := parseIds(args, 2, command.UsageUnrelate)
	if err != nil {
		return nil, err
	}
	return &command.UnrelateCommand{First: ids[0], Second: ids[1]}, nil
}

// findPredicates builds the predicate of each find prefix from its
// whitespace-separated tokens.
var findPredicates = map[Prefix]func(...string) filter.Predicate{
	PrefixName:   filter.NameContainsKeywords,
	PrefixTag:    filter.TagsContainsKeywords,
	PrefixId:     filter.IdContainsDigits,
	PrefixPhone:  filter.PhoneContainsDigits,
	PrefixRole:   filter.RoleMatchesKeywords,
	PrefixRemark: filter.RemarkContainsKeywords,
}

var findPrefixes = []Prefix{PrefixName, PrefixTag, PrefixId, PrefixPhone, PrefixRole, PrefixRemark}

func parseFind(args string) (command.Command, error) {
	a := Tokenize(args, findPrefixes...)
	if a.Preamble() != "" {
		return nil, invalidFormat(command.UsageFind)
	}

	var (
		given  Prefix
		values []string
	)
	for _, p := range findPrefixes {
		vs := a.AllValues(p)
		if vs == nil {
			continue
		}
		if values != nil || len(vs) > 1 {
			return nil, invalidFormat(command.UsageFind)
		}
		given, values = p, vs
	}
	if values == nil {
		return nil, invalidFormat(command.UsageFind)
	}

	tokens := strings.Fields(values[0])
	if len(tokens) == 0 {
		return nil, invalidFormat(command.UsageFind)
	}
	switch given {
	case PrefixId:
		for _, tok := range tokens {
			if _, err := person.ParseId(tok); err != nil {
				return nil, field(err)
			}
		}
	case PrefixRole:
		for _, tok := range tokens {
			if _, err := person.ParseRole(tok); err != nil {
				return nil, field(err)
			}
		}
	}
	return &command.FindCommand{Predicate: findPredicates[given](tokens...)}, nil
}

func parseFindNum(args string) (command.Command, error) {
	digits := strings.Fields(args)
	if len(digits) == 0 {
		return nil, invalidFormat(command.UsageFindNum)
	}
	return &command.FindNumCommand{Predicate: filter.PhoneContainsDigits(digits...)}, nil
}

// exportExt is appended to export file names given without an extension.
const exportExt = ".csv"

func parseExport(args string) (command.Command, error) {
	name := strings.TrimSpace(args)
	if strings.ContainsAny(name, " \t") {
		return nil, invalidFormat(command.UsageExport)
	}
	if name != "" && filepath.Ext(name) == "" {
		name += exportExt
	}
	return &command.ExportCommand{Filename: name}, nil
}
