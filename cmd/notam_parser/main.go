// Command-line entry point for the NOTAM parser.
//
// Note about input formats
// ------------------------
// Two inputs are autodetected:
//  1. JSONL: one JSON object per line with at least a "text" field holding
//     the raw NOTAM, the shape most feeds (NATS, FAA API dumps) deliver.
//  2. Plain text: raw NOTAMs separated by blank lines.
//
// Use -all to keep messages in the output even if parsing failed.
package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"notam_parser/internal/notam"
	"notam_parser/internal/storage"
)

// ParseOut is one output entry: the raw text, the merged payload and, when
// requested, the schedules resolved over the next five days.
type ParseOut struct {
	Raw       string     `json:"raw"`
	Data      notam.Data `json:"data,omitempty"`
	Schedules []string   `json:"schedules,omitempty"`
	Error     string     `json:"error,omitempty"`
}

type Stats struct {
	Messages    int
	Parsed      int
	Failed      int
	Unsupported int
	Stored      int
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "notam_parser - commands:")
	fmt.Fprintln(w, "  parse  - parse raw NOTAMs or JSONL and output JSON")
	fmt.Fprintln(w, "  query  - query a SQLite archive")
	fmt.Fprintln(w, "  stats  - print archive statistics")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  notam_parser parse [-input notams.txt] [-output out.json] [-pretty] [-all] [-stats] [-schedules] [-sqlite archive.db]")
	fmt.Fprintln(w, "  notam_parser query -sqlite archive.db [-id A0135/20] [-fir EGTT] [-subject runway] [-location EGLL] [-search \"text\"] [-limit 100] [-pretty]")
	fmt.Fprintln(w, "  notam_parser stats -sqlite archive.db")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Notes:")
	fmt.Fprintln(w, "  - Input is either JSONL (objects with a \"text\" field) or plain text")
	fmt.Fprintln(w, "    with one NOTAM per blank-line separated block.")
	fmt.Fprintln(w, "")
}

func main() {
	if len(os.Args) < 2 {
		usage(os.Stderr)
		os.Exit(2)
	}
	cmd := strings.ToLower(os.Args[1])
	switch cmd {
	case "parse":
		runParse(os.Args[2:])
	case "query":
		runQuery(os.Args[2:])
	case "stats":
		runStats(os.Args[2:])
	case "-h", "--help", "help":
		usage(os.Stdout)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		usage(os.Stderr)
		os.Exit(2)
	}
}

func runParse(args []string) {
	fs := flag.NewFlagSet("parse", flag.ExitOnError)
	inPath := fs.String("input", "", "Input file (default: stdin)")
	outPath := fs.String("output", "", "Output JSON file (default: stdout)")
	pretty := fs.Bool("pretty", false, "Pretty-print JSON output")
	includeAll := fs.Bool("all", false, "Include messages even if parsing failed")
	showStats := fs.Bool("stats", false, "Print basic counters to stderr")
	schedules := fs.Bool("schedules", false, "Resolve schedules over the next five days")
	sqlitePath := fs.String("sqlite", "", "Also archive parsed NOTAMs to this SQLite file")
	_ = fs.Parse(args)

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	var r io.Reader = os.Stdin
	if *inPath != "" {
		f, err := os.Open(*inPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", *inPath).Msg("failed to open input")
		}
		defer f.Close()
		r = f
	}

	var archive *storage.DB
	if *sqlitePath != "" {
		var err error
		archive, err = storage.Open(*sqlitePath)
		if err != nil {
			log.Fatal().Err(err).Str("path", *sqlitePath).Msg("failed to open archive")
		}
		defer archive.Close()
	}

	texts, err := readTexts(r)
	if err != nil {
		log.Fatal().Err(err).Msg("input read error")
	}

	out := make([]ParseOut, 0, len(texts))
	st := &Stats{}
	now := time.Now().UTC()

	for _, text := range texts {
		st.Messages++
		msg, err := notam.ParseMessage(text)
		if err != nil {
			st.Failed++
			var parseErr *notam.ParseError
			if errors.As(err, &parseErr) && parseErr.Msg == "unsupported format" {
				st.Unsupported++
			}
			log.Warn().Err(err).Str("text", firstLine(text)).Msg("parse failed")
			if *includeAll {
				out = append(out, ParseOut{Raw: text, Error: err.Error()})
			}
			continue
		}
		st.Parsed++

		entry := ParseOut{Raw: text, Data: msg.Data}
		if *schedules {
			if d, ok := msg.Item(notam.TypeD).(*notam.D); ok && d != nil {
				for _, s := range d.FiveDaySchedules(now) {
					entry.Schedules = append(entry.Schedules, s.String())
				}
			}
		}
		out = append(out, entry)

		if archive != nil {
			record, err := storage.RecordFrom(msg)
			if err != nil {
				log.Warn().Err(err).Msg("record conversion failed")
				continue
			}
			if _, err := archive.Insert(record); err != nil {
				log.Warn().Err(err).Str("notam_id", record.NotamID).Msg("archive insert failed")
				continue
			}
			st.Stored++
		}
	}

	var wout io.Writer = os.Stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", *outPath).Msg("failed to create output")
		}
		defer f.Close()
		wout = f
	}

	enc, err := marshalJSON(out, *pretty)
	if err != nil {
		log.Fatal().Err(err).Msg("JSON encode error")
	}
	_, _ = wout.Write(enc)
	if wout == os.Stdout {
		_, _ = wout.Write([]byte("\n"))
	}

	if *showStats {
		fmt.Fprintf(os.Stderr,
			"stats: messages=%d parsed=%d failed=%d (unsupported=%d) stored=%d\n",
			st.Messages, st.Parsed, st.Failed, st.Unsupported, st.Stored)
	}
}

func runQuery(args []string) {
	fs := flag.NewFlagSet("query", flag.ExitOnError)
	sqlitePath := fs.String("sqlite", "", "SQLite archive file (required)")
	id := fs.String("id", "", "Filter by NOTAM ID, such as A0135/20")
	fir := fs.String("fir", "", "Filter by FIR")
	subject := fs.String("subject", "", "Filter by decoded subject")
	location := fs.String("location", "", "Filter by ICAO location")
	search := fs.String("search", "", "Full-text search on raw message text")
	limit := fs.Int("limit", 100, "Max results")
	pretty := fs.Bool("pretty", false, "Pretty-print JSON output")
	_ = fs.Parse(args)

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	archive := openArchive(log, *sqlitePath)
	defer archive.Close()

	records, err := archive.Query(storage.QueryParams{
		NotamID:   *id,
		FIR:       *fir,
		Subject:   *subject,
		Location:  *location,
		FullText:  *search,
		Limit:     *limit,
		OrderDesc: true,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("query failed")
	}

	enc, err := marshalJSON(records, *pretty)
	if err != nil {
		log.Fatal().Err(err).Msg("JSON encode error")
	}
	fmt.Println(string(enc))
}

func runStats(args []string) {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	sqlitePath := fs.String("sqlite", "", "SQLite archive file (required)")
	_ = fs.Parse(args)

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	archive := openArchive(log, *sqlitePath)
	defer archive.Close()

	stats, err := archive.GetStats()
	if err != nil {
		log.Fatal().Err(err).Msg("stats failed")
	}

	fmt.Printf("total: %d\n", stats.Total)
	printGroup := func(name string, counts map[string]int) {
		if len(counts) == 0 {
			return
		}
		fmt.Printf("%s:\n", name)
		for key, count := range counts {
			fmt.Printf("  %-24s %d\n", key, count)
		}
	}
	printGroup("by operation", stats.ByOperation)
	printGroup("by FIR", stats.ByFIR)
	printGroup("by subject", stats.BySubject)

	firs, err := archive.Distinct("fir")
	if err != nil {
		log.Fatal().Err(err).Msg("distinct failed")
	}
	fmt.Printf("FIRs seen: %s\n", strings.Join(firs, " "))
}

func openArchive(log zerolog.Logger, path string) *storage.DB {
	if path == "" {
		log.Fatal().Msg("-sqlite is required")
	}
	archive, err := storage.Open(path)
	if err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("failed to open archive")
	}
	return archive
}

// readTexts reads raw NOTAM texts from the input: JSONL when the first
// non-blank line is a JSON object, blank-line separated blocks otherwise.
func readTexts(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	// Lines can be long; bump buffer (20MB).
	buf := make([]byte, 0, 1024*1024)
	scanner.Buffer(buf, 20*1024*1024)

	var texts []string
	var block []string
	jsonl := false
	first := true

	flush := func() {
		if len(block) > 0 {
			texts = append(texts, strings.Join(block, "\n"))
			block = nil
		}
	}

	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if first && trimmed != "" {
			jsonl = strings.HasPrefix(trimmed, "{")
			first = false
		}
		if jsonl {
			if trimmed == "" {
				continue
			}
			var obj struct {
				Text string `json:"text"`
			}
			if err := json.Unmarshal([]byte(trimmed), &obj); err != nil {
				return nil, fmt.Errorf("bad JSONL line: %w", err)
			}
			if obj.Text != "" {
				texts = append(texts, obj.Text)
			}
			continue
		}
		if trimmed == "" {
			flush()
			continue
		}
		block = append(block, line)
	}
	flush()
	return texts, scanner.Err()
}

func marshalJSON(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

func firstLine(text string) string {
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		return text[:i]
	}
	return text
}
