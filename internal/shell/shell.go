// Package shell implements the command shell behind the mini-cache
// binary: it parses cache commands from text lines and evaluates them
// against a single LRU cache, writing redis-cli-flavored replies.
package shell

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"mini-cache/cache"
)

// ErrExit is returned by Eval when the user asks to leave the shell.
var ErrExit = errors.New("exit")

// Shell evaluates cache commands against a single LRU cache. Keys and
// values are single whitespace-delimited tokens.
type Shell struct {
	cache    *cache.LRUCache[string, string]
	out      io.Writer
	registry *prometheus.Registry
}

// New creates a Shell around an existing cache and registers a metrics
// collector for it on the shell's private registry.
func New(c *cache.LRUCache[string, string], out io.Writer) (*Shell, error) {
	registry := prometheus.NewRegistry()
	if err := registry.Register(cache.NewCollector("minicache", c)); err != nil {
		return nil, errors.Wrap(err, "register cache metrics")
	}
	return &Shell{cache: c, out: out, registry: registry}, nil
}

// Run reads command lines from r until EOF or an exit command, printing
// a prompt before each line. Command errors are reported to the output
// and do not stop the loop.
func (s *Shell) Run(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for {
		fmt.Fprint(s.out, "mini-cache> ")
		if !scanner.Scan() {
			break
		}
		if err := s.Eval(scanner.Text()); err != nil {
			if err == ErrExit {
				return nil
			}
			fmt.Fprintf(s.out, "(error) %v\n", err)
		}
	}
	return errors.Wrap(scanner.Err(), "read input")
}

// RunScript executes commands from a file, one per line. Blank lines
// and lines starting with '#' are skipped. Unlike the interactive loop,
// the first failing command aborts the run.
func (s *Shell) RunScript(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "open script")
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if err := s.Eval(text); err != nil {
			if err == ErrExit {
				return nil
			}
			return errors.Wrapf(err, "%s:%d", path, line)
		}
	}
	return errors.Wrap(scanner.Err(), "read script")
}

// Eval parses and executes a single command line. Empty lines are
// no-ops. Unknown commands and wrong argument counts are recoverable
// errors; only the exit commands make Eval return ErrExit.
func (s *Shell) Eval(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "set":
		if err := needArgs(cmd, args, 2); err != nil {
			return err
		}
		s.cache.Set(args[0], args[1])
		fmt.Fprintln(s.out, "OK")

	case "get":
		if err := needArgs(cmd, args, 1); err != nil {
			return err
		}
		s.printValue(s.cache.Get(args[0]))

	case "peek":
		if err := needArgs(cmd, args, 1); err != nil {
			return err
		}
		s.printValue(s.cache.Peek(args[0]))

	case "del":
		if err := needArgs(cmd, args, 1); err != nil {
			return err
		}
		n := 0
		if s.cache.Del(args[0]) {
			n = 1
		}
		fmt.Fprintf(s.out, "(integer) %d\n", n)

	case "keys":
		if err := needArgs(cmd, args, 0); err != nil {
			return err
		}
		keys := s.cache.Keys()
		if len(keys) == 0 {
			fmt.Fprintln(s.out, "(empty)")
			break
		}
		for i, key := range keys {
			fmt.Fprintf(s.out, "%d) %q\n", i+1, key)
		}

	case "len":
		if err := needArgs(cmd, args, 0); err != nil {
			return err
		}
		fmt.Fprintf(s.out, "(integer) %d\n", s.cache.Len())

	case "stats":
		if err := needArgs(cmd, args, 0); err != nil {
			return err
		}
		s.printStats()

	case "metrics":
		if err := needArgs(cmd, args, 0); err != nil {
			return err
		}
		return s.printMetrics()

	case "help":
		s.printHelp()

	case "quit", "exit":
		return ErrExit

	default:
		return errors.Errorf("unknown command %q (try \"help\")", cmd)
	}
	return nil
}

// needArgs checks a command's argument count.
func needArgs(cmd string, args []string, want int) error {
	if len(args) != want {
		return errors.Errorf("%s: expected %d argument(s), got %d", cmd, want, len(args))
	}
	return nil
}

// printValue writes a fetched value, or the nil reply for a miss.
func (s *Shell) printValue(value string, ok bool) {
	if !ok {
		fmt.Fprintln(s.out, "(nil)")
		return
	}
	fmt.Fprintf(s.out, "%q\n", value)
}

func (s *Shell) printStats() {
	st := s.cache.Stats()
	fmt.Fprintf(s.out, "entries:   %d\n", st.Len)
	fmt.Fprintf(s.out, "capacity:  %d\n", st.Cap)
	fmt.Fprintf(s.out, "hits:      %d\n", st.Hits)
	fmt.Fprintf(s.out, "misses:    %d\n", st.Misses)
	fmt.Fprintf(s.out, "hit rate:  %.2f\n", st.HitRate)
	fmt.Fprintf(s.out, "evictions: %d\n", st.Evictions)
}

// printMetrics writes the registry contents in Prometheus text format.
func (s *Shell) printMetrics() error {
	families, err := s.registry.Gather()
	if err != nil {
		return errors.Wrap(err, "gather metrics")
	}
	enc := expfmt.NewEncoder(s.out, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return errors.Wrap(err, "encode metrics")
		}
	}
	return nil
}

func (s *Shell) printHelp() {
	fmt.Fprint(s.out, `commands:
  set <key> <value>   store a value and mark the key most recently used
  get <key>           fetch a value and mark the key most recently used
  peek <key>          fetch a value without touching recency
  del <key>           remove a key
  keys                list keys, least recently used first
  len                 number of stored entries
  stats               cache counters
  metrics             Prometheus text exposition of the counters
  help                this text
  quit                leave the shell
`)
}
