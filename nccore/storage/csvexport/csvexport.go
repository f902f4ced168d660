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

// Package csvexport writes persons as CSV, one row per person, for use in
// spreadsheets.
package csvexport

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"dirpx.dev/netconnect/nccore/model/person"
)

// DefaultFilename is used when the export command is given no file name.
const DefaultFilename = "netconnect.csv"

// Header is the first row of every export.
var Header = []string{
	"Id", "Role", "Name", "Phone", "Email", "Address", "Remark", "Tags",
	"Products", "Preferences", "Department", "Job Title", "Skills", "Terms of Service",
}

// listSeparator joins multi-valued fields inside one cell.
const listSeparator = "; "

// Row returns the CSV cells for p, aligned with Header. Fields that do not
// apply to the person's role are empty.
func Row(p person.Person) []string {
	row := []string{
		p.Id.String(),
		p.Role.String(),
		p.Name.String(),
		p.Phone.String(),
		p.Email.String(),
		p.Address.String(),
		p.Remark.String(),
		strings.Join(p.Tags.Names(), listSeparator),
		strings.Join(p.Products(), listSeparator),
		"", "", "", "", "",
	}

	switch {
	case p.Client != nil:
		row[9] = p.Client.Preferences.String()
	case p.Employee != nil:
		row[10] = p.Employee.Department.String()
		row[11] = p.Employee.JobTitle.String()
		row[12] = strings.Join(p.Employee.Skills, listSeparator)
	case p.Supplier != nil:
		row[13] = p.Supplier.TermsOfService.String()
	}
	return row
}

// Write writes the header and one row per person to w.
func Write(w io.Writer, persons []person.Person) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, p := range persons {
		if err := cw.Write(Row(p)); err != nil {
			return fmt.Errorf("write csv row for %s: %w", p.Name, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile exports persons to path, creating parent directories as needed.
// The file is replaced if it exists.
func WriteFile(path string, persons []person.Person) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create export directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	if err := Write(f, persons); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
