package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theflywheel/uhash"
)

func TestRunScript(t *testing.T) {
	script := `
# build a small table
insert apple red fruit
insert pear green
search apple
search plum
insert apple crimson
search apple
delete pear
delete pear
stats
`
	var out bytes.Buffer
	err := runScript(strings.NewReader(script), &out, []uhash.Option{uhash.WithSeed(1)})
	require.NoError(t, err)

	want := []string{
		`inserted "apple": red fruit`,
		`inserted "pear": green`,
		`"apple" = red fruit`,
		`"plum" not found`,
		`inserted "apple": crimson`,
		`"apple" = crimson`,
		`deleted "pear"`,
		`"pear" not found`,
		`size=1 capacity=10 load_factor=0.10`,
	}
	assert.Equal(t, want, strings.Split(strings.TrimSpace(out.String()), "\n"))
}

func TestRunScriptExample(t *testing.T) {
	script := "insert kiwi 5\nexample\nsearch kiwi\nsearch grape\ninsert lime 80\nstats\n"
	var out bytes.Buffer
	require.NoError(t, runScript(strings.NewReader(script), &out, nil))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "example table created (size=7 capacity=10 load_factor=0.70)", lines[1])
	assert.Equal(t, `"kiwi" not found`, lines[2])
	assert.Equal(t, `"grape" = 70`, lines[3])
	assert.Equal(t, "size=8 capacity=20 load_factor=0.40", lines[5])
}

func TestRunScriptErrors(t *testing.T) {
	testCases := []struct {
		name   string
		script string
		want   string
	}{
		{"Unknown", "insert a 1\nfrobnicate a\n", `line 2: unknown operation "frobnicate"`},
		{"Insert_Arity", "insert a\n", "line 1: usage: insert <key> <value>"},
		{"Search_Arity", "search\n", "line 1: usage: search <key>"},
		{"Delete_Arity", "\n\ndelete a b\n", "line 3: usage: delete <key>"},
		{"Stats_Arity", "stats now\n", "line 1: usage: stats"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := runScript(strings.NewReader(tc.script), &bytes.Buffer{}, nil)
			require.Error(t, err)
			assert.Equal(t, tc.want, err.Error())
		})
	}
}

func TestRunScriptInvalidOptions(t *testing.T) {
	err := runScript(strings.NewReader("stats\n"), &bytes.Buffer{},
		[]uhash.Option{uhash.WithLoadFactor(2)})
	assert.Error(t, err)
}

func TestTableOptions(t *testing.T) {
	o := Options{Capacity: 4, Threshold: 0.5}
	assert.Len(t, o.tableOptions(), 2)
	o.Seed = 9
	assert.Len(t, o.tableOptions(), 3)

	tbl, err := uhash.NewStringTable[string](o.tableOptions()...)
	require.NoError(t, err)
	assert.Equal(t, 4, tbl.Cap())
}

func TestSetupLogging(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, setupLogging(&buf, "debug"))
	log.Debug("hello")
	assert.Contains(t, buf.String(), "hello")

	assert.Error(t, setupLogging(&buf, "loud"))
	require.NoError(t, setupLogging(&buf, "warning"))
}
