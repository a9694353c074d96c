// Command trustlens-score scores review submissions read as JSON lines.
//
// Each input line is one submission:
//
//	{"id":"r1","text":"...","behaviorMetrics":{...},"userHistory":{...},"orderData":{...}}
//
// Each output line is one result, in input order. Invalid submissions are
// reported on a trailing {"skipped":[...]} line, and with -mine the batch's
// fraud report follows as {"patterns":{...}}.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/vaibhavgarg230/trustlens-sub000/internal/core/fraud"
	"github.com/vaibhavgarg230/trustlens-sub000/internal/core/lexicon"
	"github.com/vaibhavgarg230/trustlens-sub000/internal/core/version"
	"github.com/vaibhavgarg230/trustlens-sub000/internal/modkit"
	"github.com/vaibhavgarg230/trustlens-sub000/internal/modkit/module"
	"github.com/vaibhavgarg230/trustlens-sub000/internal/platform/config"
	perr "github.com/vaibhavgarg230/trustlens-sub000/internal/platform/errors"
	"github.com/vaibhavgarg230/trustlens-sub000/internal/platform/logger"

	scoredom "github.com/vaibhavgarg230/trustlens-sub000/internal/services/authenticity/domain"
	scoremod "github.com/vaibhavgarg230/trustlens-sub000/internal/services/authenticity/module"
)

// maxLine bounds one input line
const maxLine = 1 << 20

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, *logger.Named("score"))
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer, l logger.Logger) int {
	fs := flag.NewFlagSet("trustlens-score", flag.ContinueOnError)
	var (
		fIn       = fs.String("in", "", "input file of JSON lines (default stdin)")
		fOut      = fs.String("out", "", "output file (default stdout)")
		fWorkers  = fs.Int("workers", 0, "scoring workers (default CORE_SCORE_WORKERS or 4)")
		fMaxBatch = fs.Int("max-batch", 0, "largest accepted batch (default CORE_SCORE_MAX_BATCH or 5000)")
		fMine     = fs.Bool("mine", true, "mine the batch for fraud patterns")
		fExplain  = fs.Bool("explain", false, "attach per-rule detector output to each result")
		fStrict   = fs.Bool("strict", false, "fail the batch on the first invalid submission")
		fVersion  = fs.Bool("version", false, "print engine version and exit")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *fVersion {
		return emit(stdout, l, version.Info(lexicon.Default().Version))
	}

	// only flags given on the command line override the environment
	var opts scoremod.Options
	opts.Workers, opts.MaxBatch = *fWorkers, *fMaxBatch
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "mine":
			opts.Mine = fMine
		case "explain":
			opts.Explain = fExplain
		case "strict":
			opts.Strict = fStrict
		}
	})

	in := stdin
	if *fIn != "" {
		f, err := os.Open(*fIn)
		if err != nil {
			return fail(l, perr.Wrapf(err, perr.ErrorCodeIO, "open %s", *fIn))
		}
		defer f.Close()
		in = f
	}
	out := stdout
	if *fOut != "" {
		f, err := os.Create(*fOut)
		if err != nil {
			return fail(l, perr.Wrapf(err, perr.ErrorCodeIO, "create %s", *fOut))
		}
		defer f.Close()
		out = f
	}

	subs, err := readSubmissions(in)
	if err != nil {
		return fail(l, err)
	}

	m := scoremod.New(modkit.Deps{Log: l, Cfg: config.New()}, opts)
	an := module.MustPortsOf[scoredom.AnalyzerPort](m)

	res, err := an.AnalyzeBatch(ctx, subs)
	if err != nil {
		return fail(l, err)
	}

	w := bufio.NewWriter(out)
	enc := json.NewEncoder(w)
	for i := range res.Results {
		if err := enc.Encode(res.Results[i]); err != nil {
			return fail(l, perr.Wrap(err, perr.ErrorCodeIO, "write result"))
		}
	}
	if len(res.Skipped) > 0 {
		if err := enc.Encode(struct {
			Skipped []scoredom.Skipped `json:"skipped"`
		}{res.Skipped}); err != nil {
			return fail(l, perr.Wrap(err, perr.ErrorCodeIO, "write skipped"))
		}
	}
	if res.Patterns != nil {
		if err := enc.Encode(struct {
			Patterns *fraud.Report `json:"patterns"`
		}{res.Patterns}); err != nil {
			return fail(l, perr.Wrap(err, perr.ErrorCodeIO, "write patterns"))
		}
	}
	if err := w.Flush(); err != nil {
		return fail(l, perr.Wrap(err, perr.ErrorCodeIO, "flush output"))
	}
	return 0
}

// readSubmissions decodes one submission per non-blank line
func readSubmissions(r io.Reader) ([]scoredom.Submission, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)

	var subs []scoredom.Submission
	line := 0
	for sc.Scan() {
		line++
		raw := strings.TrimSpace(sc.Text())
		if raw == "" {
			continue
		}
		var s scoredom.Submission
		if err := json.Unmarshal([]byte(raw), &s); err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeJSON, "line %d", line)
		}
		subs = append(subs, s)
	}
	if err := sc.Err(); err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeIO, "read input after line %d", line)
	}
	return subs, nil
}

func emit(w io.Writer, l logger.Logger, v any) int {
	if err := json.NewEncoder(w).Encode(v); err != nil {
		return fail(l, perr.Wrap(err, perr.ErrorCodeIO, "write"))
	}
	return 0
}

func fail(l logger.Logger, err error) int {
	w := perr.WireFrom(err)
	ev := l.Error().Err(err).Str("kind", w.Kind)
	if w.Field != "" {
		ev = ev.Str("field", w.Field)
	}
	ev.Msg("trustlens-score failed")
	return perr.ExitCode(perr.CodeOf(err))
}
