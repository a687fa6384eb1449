// skipshell is an interactive playground over a string-keyed skiplist map.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/yplusplus/skiplist"
)

// Shell wraps a map with a line-edited command loop.
type Shell struct {
	m           *skiplist.Map[string, string]
	line        *liner.State
	prompt      string
	historyFile string
}

func NewShell() *Shell {
	historyFile := ""
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = filepath.Join(home, ".skipshell_history")
	}

	return &Shell{
		m:           skiplist.New[string, string](),
		prompt:      "skiplist> ",
		historyFile: historyFile,
	}
}

// Run starts the interactive loop and blocks until the user quits.
func (s *Shell) Run() {
	s.line = liner.NewLiner()
	defer s.line.Close()

	s.line.SetCtrlCAborts(true)
	s.loadHistory()

	fmt.Println("skiplist shell")
	fmt.Println("Type help for commands, quit to exit")
	fmt.Println()

	for {
		input, err := s.line.Prompt(s.prompt)
		if err != nil {
			if err == liner.ErrPromptAborted {
				fmt.Println("^C")
				continue
			}
			fmt.Println()
			break
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		s.line.AppendHistory(input)
		if !s.execute(input) {
			break
		}
	}

	s.saveHistory()
}

func (s *Shell) loadHistory() {
	if s.historyFile == "" {
		return
	}
	f, err := os.Open(s.historyFile)
	if err != nil {
		return
	}
	s.line.ReadHistory(f)
	f.Close()
}

func (s *Shell) saveHistory() {
	if s.historyFile == "" {
		return
	}
	f, err := os.Create(s.historyFile)
	if err != nil {
		return
	}
	s.line.WriteHistory(f)
	f.Close()
}

// execute runs one command. Returns false to exit the loop.
func (s *Shell) execute(input string) bool {
	parts := strings.Fields(input)
	cmd, args := parts[0], parts[1:]

	switch cmd {
	case "quit", "exit", "q":
		fmt.Println("Bye")
		return false
	case "help", "h", "?":
		s.printHelp()
	case "set":
		if len(args) != 2 {
			fmt.Println("Usage: set <key> <value>")
			break
		}
		if _, ok := s.m.Insert(args[0], args[1]); ok {
			fmt.Println("OK")
		} else {
			// Insert keeps the first value; overwrite explicitly.
			s.m.Find(args[0]).Set(args[1])
			fmt.Println("OK (updated)")
		}
	case "get":
		if len(args) != 1 {
			fmt.Println("Usage: get <key>")
			break
		}
		if v, ok := s.m.Get(args[0]); ok {
			fmt.Println(v)
		} else {
			fmt.Println("(not found)")
		}
	case "del":
		if len(args) != 1 {
			fmt.Println("Usage: del <key>")
			break
		}
		if s.m.Contains(args[0]) {
			s.m.Delete(args[0])
			fmt.Println("OK")
		} else {
			fmt.Println("(not found)")
		}
	case "seek":
		if len(args) != 1 {
			fmt.Println("Usage: seek <key>")
			break
		}
		it := s.m.LowerBound(args[0])
		if it == s.m.End() {
			fmt.Println("(past the end)")
			break
		}
		fmt.Printf("%s = %s\n", it.Key(), it.Value())
	case "range":
		if len(args) != 2 {
			fmt.Println("Usage: range <lo> <hi>")
			break
		}
		if args[0] > args[1] {
			fmt.Println("(0 entries)")
			break
		}
		n := 0
		stop := s.m.UpperBound(args[1])
		for it := s.m.LowerBound(args[0]); it != stop; it.Next() {
			fmt.Printf("%s = %s\n", it.Key(), it.Value())
			n++
		}
		fmt.Printf("(%d entries)\n", n)
	case "list":
		for k, v := range s.m.All() {
			fmt.Printf("%s = %s\n", k, v)
		}
		fmt.Printf("(%d entries)\n", s.m.Len())
	case "rlist":
		for k, v := range s.m.Backward() {
			fmt.Printf("%s = %s\n", k, v)
		}
		fmt.Printf("(%d entries)\n", s.m.Len())
	case "len":
		fmt.Println(s.m.Len())
	case "clear":
		s.m.Clear()
		fmt.Println("OK")
	case "stats":
		s.printStats()
	default:
		fmt.Printf("Unknown command %q, type help\n", cmd)
	}

	return true
}

func (s *Shell) printStats() {
	st := s.m.Stats()
	fmt.Printf("entries:  %d\n", s.m.Len())
	fmt.Printf("searches: %d\n", st.Searches)
	fmt.Printf("steps:    %d\n", st.Steps)
	fmt.Printf("inserts:  %d\n", st.Inserts)
	fmt.Printf("deletes:  %d\n", st.Deletes)
	if st.Searches > 0 {
		fmt.Printf("steps/search: %.2f\n", float64(st.Steps)/float64(st.Searches))
	}
}

func (s *Shell) printHelp() {
	fmt.Println("Commands:")
	fmt.Println("  set <key> <value>   insert or update an entry")
	fmt.Println("  get <key>           look up a key")
	fmt.Println("  del <key>           erase a key")
	fmt.Println("  seek <key>          first entry with key >= <key>")
	fmt.Println("  range <lo> <hi>     entries with lo <= key <= hi")
	fmt.Println("  list                all entries in ascending order")
	fmt.Println("  rlist               all entries in descending order")
	fmt.Println("  len                 number of entries")
	fmt.Println("  clear               erase everything")
	fmt.Println("  stats               operation counters")
	fmt.Println("  quit                exit")
}

func main() {
	NewShell().Run()
}
