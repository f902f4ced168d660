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

package csvexport_test

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"dirpx.dev/netconnect/nccore/model/person"
	"dirpx.dev/netconnect/nccore/storage/csvexport"
	"dirpx.dev/netconnect/nccore/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRow(t *testing.T) {
	assert.Equal(t, []string{
		"1", "client", "Alice Pauline", "94351253", "alice@example.com",
		"123, Jurong West Ave 6, #08-111", "likes coffee", "friends",
		"office chairs", "delivery on Mondays", "", "", "", "",
	}, csvexport.Row(testutil.Alice))

	benson := csvexport.Row(testutil.Benson)
	assert.Equal(t, "friends; owesMoney", benson[7])
	assert.Equal(t, "Sales", benson[10])
	assert.Equal(t, "Account Manager", benson[11])
	assert.Equal(t, "Excel; negotiation", benson[12])

	elle := csvexport.Row(testutil.Elle)
	assert.Equal(t, "", elle[10], "unset department exports empty")
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, csvexport.Write(&buf, testutil.TypicalPersons()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)

	require.Len(t, records, 8)
	assert.Equal(t, csvexport.Header, records[0])
	assert.Equal(t, "Carl Kurz", records[3][2])
	assert.Equal(t, "net 30", records[3][13])
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exports", "out.csv")

	require.NoError(t, csvexport.WriteFile(path, []person.Person{testutil.George}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "George Best")
}
