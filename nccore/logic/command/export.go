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

import (
	"fmt"
	"path/filepath"

	"dirpx.dev/netconnect/nccore/storage/csvexport"
)

// ExportCommand writes the listed persons to a CSV file.
//
// Filename is taken from the command text; a relative name is resolved
// against Dir, which the application fills from its configuration.
type ExportCommand struct {
	Filename string
	Dir      string
}

// Path returns the file the command writes.
func (c *ExportCommand) Path() string {
	name := c.Filename
	if name == "" {
		name = csvexport.DefaultFilename
	}
	if filepath.IsAbs(name) || c.Dir == "" {
		return name
	}
	return filepath.Join(c.Dir, name)
}

func (c *ExportCommand) Execute(m Model) (Result, error) {
	persons := m.FilteredPersons()
	path := c.Path()

	if err := csvexport.WriteFile(path, persons); err != nil {
		return Result{}, failWith(err, MessageExportFailure, err)
	}

	res := Feedback(MessageExportSuccess, len(persons), path)
	res.ExportPath = path
	return res, nil
}

func (c *ExportCommand) String() string {
	return fmt.Sprintf("ExportCommand{path=%s}", c.Path())
}
