package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/heathj/domtable/dom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const runInput = `<!DOCTYPE html>
<table width=50% bgcolor=red><caption>Totals</caption><tbody id=b1><tr id=r1><td>1</td></tr></tbody></table>`

func TestRun(t *testing.T) {
	testcases := []struct {
		name     string
		ops      []string
		expected string
	}{
		{
			name: "queries",
			ops:  []string{"caption", "rows", "tbodies", "hints"},
			expected: `caption: "Totals"
rows: 1
  0 tbody > tr#r1
tbodies: 1
  0 table > tbody#b1
width: 50%
background-color: #ff0000
| <table>
|   bgcolor="red"
|   width="50%"
|   <caption>
|     "Totals"
|   <tbody>
|     id="b1"
|     <tr>
|       id="r1"
|       <td>
|         "1"
`,
		},
		{
			name: "mutations",
			ops:  []string{"deleteCaption", "createTHead", "createTFoot", "insertRow:0", "deleteRow:-1", "createTBody", "rows"},
			expected: `rows: 1
  0 tbody > tr
| <table>
|   bgcolor="red"
|   width="50%"
|   <thead>
|   <tbody>
|     id="b1"
|     <tr>
|   <tbody>
|   <tfoot>
`,
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			err := run(strings.NewReader(runInput), &out, tc.ops)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, out.String())
		})
	}
}

func TestRunErrors(t *testing.T) {
	var out bytes.Buffer
	err := run(strings.NewReader(runInput), &out, []string{"insertRow:5"})
	assert.ErrorIs(t, err, dom.ErrIndexSize)
	assert.Contains(t, err.Error(), "insertRow:5")

	err = run(strings.NewReader(runInput), &out, []string{"insertRow"})
	assert.EqualError(t, err, "insertRow: insertRow needs an index")

	err = run(strings.NewReader(runInput), &out, []string{"insertRow:x"})
	assert.Error(t, err)

	err = run(strings.NewReader(runInput), &out, []string{"explode"})
	assert.EqualError(t, err, "explode: unknown operation")

	err = run(strings.NewReader("<p>no tables here</p>"), &out, nil)
	assert.EqualError(t, err, "document has no table")
}
