package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vaibhavgarg230/trustlens-sub000/internal/core/version"
	kit "github.com/vaibhavgarg230/trustlens-sub000/internal/platform/testkit"
	scoredom "github.com/vaibhavgarg230/trustlens-sub000/internal/services/authenticity/domain"

	"github.com/rs/zerolog"
)

const input = `{"id":"a","text":"I bought this kettle for my kitchen. It heats water fast and the lid opens with one hand.","orderData":{"purchaseVerified":true}}

{"id":"b","text":"buy now limited time special offer discount"}
{"id":"c","text":"aaaaaaaaaa","behaviorMetrics":{"writingTime":-5}}
`

func runCLI(t *testing.T, stdin string, args ...string) (int, []string) {
	t.Helper()
	for _, k := range []string{"WORKERS", "MAX_BATCH", "MINE", "STRICT", "EXPLAIN"} {
		t.Setenv("CORE_SCORE_"+k, "")
	}
	var out bytes.Buffer
	code := run(context.Background(), args, strings.NewReader(stdin), &out, zerolog.Nop())
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if out.Len() == 0 {
		lines = nil
	}
	return code, lines
}

func TestRun_ScoresLines(t *testing.T) {
	code, lines := runCLI(t, input, "-mine=false", "-workers", "2")
	if code != 0 {
		t.Fatalf("exit = %d", code)
	}
	if len(lines) != 3 {
		t.Fatalf("lines = %d\n%s", len(lines), strings.Join(lines, "\n"))
	}

	var a, b scoredom.Result
	if err := json.Unmarshal([]byte(lines[0]), &a); err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal([]byte(lines[1]), &b); err != nil {
		t.Fatal(err)
	}
	if a.SubmissionID != "a" || b.SubmissionID != "b" {
		t.Fatalf("order = %s, %s", a.SubmissionID, b.SubmissionID)
	}
	if b.Fingerprint.SpamIndicators != 3 || !strings.Contains(lines[1], `"SPAM_INDICATORS"`) {
		t.Fatalf("spam line = %s", lines[1])
	}

	kit.MustContain(t, lines[2], `"skipped"`)
	kit.MustContain(t, lines[2], `"behaviorMetrics.writingTime"`)
	if strings.Contains(strings.Join(lines, "\n"), `"patterns"`) {
		t.Fatalf("mining was disabled")
	}
}

func TestRun_Mine(t *testing.T) {
	dup := `{"id":"x","text":"Same words here, nothing else."}` + "\n" + `{"id":"y","text":"same words here, nothing else."}` + "\n"
	code, lines := runCLI(t, dup)
	if code != 0 {
		t.Fatalf("exit = %d", code)
	}
	if len(lines) != 3 {
		t.Fatalf("lines = %v", lines)
	}
	kit.MustContain(t, lines[2], `"patterns"`)
	kit.MustContain(t, lines[2], `"duplicateContent":[{`)
}

func TestRun_Explain(t *testing.T) {
	code, lines := runCLI(t, `{"text":"aaaaaaaaaa"}`, "-explain", "-mine=false")
	if code != 0 || len(lines) != 1 {
		t.Fatalf("exit = %d lines = %v", code, lines)
	}
	kit.MustContain(t, lines[0], `"rule":"repeated_letter"`)
}

func TestRun_ExitCodes(t *testing.T) {
	cases := []struct {
		name  string
		stdin string
		args  []string
		want  int
	}{
		{"bad json", "{not json}\n", nil, 1},
		{"strict validation", input, []string{"-strict"}, 2},
		{"too many", input, []string{"-max-batch", "2"}, 3},
		{"bad flag", "", []string{"-nope"}, 2},
		{"missing input file", "", []string{"-in", filepath.Join(os.TempDir(), "does-not-exist", "x.jsonl")}, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if code, _ := runCLI(t, tc.stdin, tc.args...); code != tc.want {
				t.Fatalf("exit = %d, want %d", code, tc.want)
			}
		})
	}
}

func TestRun_Files(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.jsonl")
	out := filepath.Join(dir, "out.jsonl")
	if err := os.WriteFile(in, []byte(`{"id":"f","text":"Works as described."}`+"\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	code, lines := runCLI(t, "", "-in", in, "-out", out, "-mine=false")
	if code != 0 || lines != nil {
		t.Fatalf("exit = %d stdout = %v", code, lines)
	}
	raw, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	kit.MustContain(t, string(raw), `"submissionId":"f"`)
}

func TestRun_Version(t *testing.T) {
	code, lines := runCLI(t, "", "-version")
	if code != 0 || len(lines) != 1 {
		t.Fatalf("exit = %d lines = %v", code, lines)
	}
	var bi version.BuildInfo
	if err := json.Unmarshal([]byte(lines[0]), &bi); err != nil {
		t.Fatal(err)
	}
	if bi.Engine != "trustlens" || bi.Lexicon != 1 {
		t.Fatalf("build info = %+v", bi)
	}
}
