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

package person

import (
	"strings"

	"dirpx.dev/netconnect/nccore/model"
	"gopkg.in/yaml.v3"
)

// JobTitleConstraints is the message reported for invalid job titles.
const JobTitleConstraints = "Job title should only contain alphanumeric characters and spaces, and it should not be blank"

// JobTitle is an employee's job title. Same shape and sentinel as Department.
type JobTitle string

var _ model.Model = (*JobTitle)(nil)

// UnsetJobTitle is the default job title of a newly added employee.
const UnsetJobTitle JobTitle = Unset

func ParseJobTitle(s string) (JobTitle, error) {
	j := JobTitle(strings.TrimSpace(s))
	if err := j.Validate(); err != nil {
		return "", err
	}
	return j, nil
}

func IsValidJobTitle(s string) bool {
	return s == Unset || NameRegexp.MatchString(s)
}

// String returns the job title, or "" for the sentinel.
func (j JobTitle) String() string {
	if j == UnsetJobTitle {
		return ""
	}
	return string(j)
}

func (j JobTitle) Raw() string {
	return string(j)
}

func (j JobTitle) IsUnset() bool {
	return j == UnsetJobTitle
}

func (j JobTitle) Redacted() string {
	return j.String()
}

func (j JobTitle) TypeName() string {
	return "JobTitle"
}

func (j JobTitle) IsZero() bool {
	return j == ""
}

func (j JobTitle) Equal(other JobTitle) bool {
	return j == other
}

func (j JobTitle) Validate() error {
	if !IsValidJobTitle(string(j)) {
		return invalid(j.TypeName(), JobTitleConstraints, string(j))
	}
	return nil
}

func (j JobTitle) MarshalJSON() ([]byte, error) {
	return marshalJSONString(j, string(j))
}

func (j *JobTitle) UnmarshalJSON(data []byte) error {
	v, err := unmarshalJSONString("JobTitle", data, ParseJobTitle)
	if err != nil {
		return err
	}
	*j = v
	return nil
}

func (j JobTitle) MarshalYAML() (interface{}, error) {
	return marshalYAMLString(j, string(j))
}

func (j *JobTitle) UnmarshalYAML(node *yaml.Node) error {
	v, err := unmarshalYAMLString("JobTitle", node, ParseJobTitle)
	if err != nil {
		return err
	}
	*j = v
	return nil
}
