package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/theflywheel/uhash"
)

// session holds the table a script operates on. The example operation
// replaces it with a freshly built table instead of resetting it.
type session struct {
	table *uhash.Table[string, string]
	opts  []uhash.Option
	out   io.Writer
}

func runScript(r io.Reader, w io.Writer, tableOpts []uhash.Option) error {
	t, err := uhash.NewStringTable[string](tableOpts...)
	if err != nil {
		return err
	}
	s := &session{table: t, opts: tableOpts, out: w}

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if err := s.exec(strings.Fields(text)); err != nil {
			return errors.Wrapf(err, "line %d", line)
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "read script")
	}
	log.Debugf("script finished: %s", s.table.Stats())
	return nil
}

func (s *session) exec(fields []string) error {
	op, args := fields[0], fields[1:]
	switch op {
	case "insert":
		if len(args) < 2 {
			return errors.New("usage: insert <key> <value>")
		}
		value := strings.Join(args[1:], " ")
		s.table.Insert(args[0], value)
		return s.printf("inserted %q: %s\n", args[0], value)
	case "search":
		if len(args) != 1 {
			return errors.New("usage: search <key>")
		}
		if v, ok := s.table.Search(args[0]); ok {
			return s.printf("%q = %s\n", args[0], v)
		}
		return s.printf("%q not found\n", args[0])
	case "delete":
		if len(args) != 1 {
			return errors.New("usage: delete <key>")
		}
		if s.table.Delete(args[0]) {
			return s.printf("deleted %q\n", args[0])
		}
		return s.printf("%q not found\n", args[0])
	case "stats":
		if len(args) != 0 {
			return errors.New("usage: stats")
		}
		return s.printf("%s\n", s.table.Stats())
	case "example":
		if len(args) != 0 {
			return errors.New("usage: example")
		}
		if err := s.loadExample(); err != nil {
			return err
		}
		return s.printf("example table created (%s)\n", s.table.Stats())
	default:
		return errors.Errorf("unknown operation %q", op)
	}
}

func (s *session) loadExample() error {
	ex, err := uhash.NewExample(s.opts...)
	if err != nil {
		return err
	}
	t, err := uhash.NewStringTable[string](s.opts...)
	if err != nil {
		return err
	}
	ex.Range(func(k string, v int) bool {
		t.Insert(k, strconv.Itoa(v))
		return true
	})
	s.table = t
	return nil
}

func (s *session) printf(format string, a ...interface{}) error {
	_, err := fmt.Fprintf(s.out, format, a...)
	return err
}
