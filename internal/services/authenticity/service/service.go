// Package service implements the authenticity service
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/vaibhavgarg230/trustlens-sub000/internal/core/compare"
	"github.com/vaibhavgarg230/trustlens-sub000/internal/core/detector"
	"github.com/vaibhavgarg230/trustlens-sub000/internal/core/fingerprint"
	"github.com/vaibhavgarg230/trustlens-sub000/internal/core/fraud"
	"github.com/vaibhavgarg230/trustlens-sub000/internal/core/lexicon"
	"github.com/vaibhavgarg230/trustlens-sub000/internal/core/scorer"
	"github.com/vaibhavgarg230/trustlens-sub000/internal/core/version"
	perr "github.com/vaibhavgarg230/trustlens-sub000/internal/platform/errors"
	"github.com/vaibhavgarg230/trustlens-sub000/internal/platform/logger"
	"github.com/vaibhavgarg230/trustlens-sub000/internal/platform/validate"
	"github.com/vaibhavgarg230/trustlens-sub000/internal/services/authenticity/domain"

	"github.com/google/uuid"
)

var newBatchID = uuid.NewString

// Config for the authenticity service
type Config struct {
	Workers  int
	MaxBatch int  // 0 = unlimited
	Mine     bool // run the fraud miner after AnalyzeBatch
	Strict   bool // reject the whole batch on the first invalid submission
	Explain  bool // attach per-rule detector output to results

	// Clock and IDs override fingerprint timestamps and ids; nil uses the defaults
	Clock func() time.Time
	IDs   func() string
}

// Service implements domain.AnalyzerPort
type Service struct {
	Log    logger.Logger
	Lex    *lexicon.Lexicon
	Ext    *fingerprint.Extractor
	Det    *detector.Detector
	Scorer *scorer.Scorer
	Cfg    Config
	engine version.BuildInfo
}

var _ domain.AnalyzerPort = (*Service)(nil)

// New constructs a new authenticity service; a nil lexicon selects the embedded one
func New(log logger.Logger, lx *lexicon.Lexicon, cfg Config) *Service {
	if lx == nil {
		lx = lexicon.Default()
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.MaxBatch < 0 {
		cfg.MaxBatch = 0
	}

	var opts []fingerprint.Option
	if cfg.Clock != nil {
		opts = append(opts, fingerprint.WithClock(cfg.Clock))
	}
	if cfg.IDs != nil {
		opts = append(opts, fingerprint.WithIDs(cfg.IDs))
	}
	det := detector.New(lx)

	return &Service{
		Log:    log,
		Lex:    lx,
		Ext:    fingerprint.NewExtractor(lx, opts...),
		Det:    det,
		Scorer: scorer.New(det),
		Cfg:    cfg,
		engine: version.Info(lx.Version),
	}
}

// Analyze fingerprints and scores one submission
func (s *Service) Analyze(ctx context.Context, sub domain.Submission) (domain.Result, error) {
	if err := ctx.Err(); err != nil {
		return domain.Result{}, perr.Wrap(err, perr.ErrorCodeUnavailable, "analyze: context done")
	}
	if err := validate.Struct(sub); err != nil {
		return domain.Result{}, perr.WithOp(err, "analyze")
	}
	res := s.analyze(sub)

	l := logger.Ctx(logger.WithSubmission(ctx, sub.ID), s.Log)
	l.Debug().
		Str("fingerprint_id", res.Fingerprint.ID).
		Int("score", res.Score.AuthenticityScore).
		Str("risk", string(res.Score.RiskLevel)).
		Strs("flags", flagStrings(res.Score.Flags)).
		Msg("submission scored")
	return res, nil
}

func (s *Service) analyze(sub domain.Submission) domain.Result {
	fp := s.Ext.Generate(sub.Text, sub.Behavior)
	res := domain.Result{
		SubmissionID: sub.ID,
		Fingerprint:  fp,
		Score:        s.Scorer.Score(&fp, sub.History, sub.Order),
		Engine:       s.engine,
	}
	if s.Cfg.Explain {
		res.Explain = s.Det.Explain(&fp)
	}
	return res
}

// AnalyzeBatch validates, then scores subs over a bounded worker pool, preserving
// input order. Invalid submissions are skipped, or fail the call in strict mode
func (s *Service) AnalyzeBatch(ctx context.Context, subs []domain.Submission) (domain.BatchResult, error) {
	if s.Cfg.MaxBatch > 0 && len(subs) > s.Cfg.MaxBatch {
		return domain.BatchResult{}, perr.TooManyf("batch of %d exceeds max %d", len(subs), s.Cfg.MaxBatch)
	}

	out := domain.BatchResult{
		BatchID: newBatchID(),
		Results: []domain.Result{},
		Skipped: []domain.Skipped{},
	}
	ctx = logger.WithBatch(ctx, out.BatchID)
	l := logger.Ctx(ctx, s.Log)
	started := time.Now()

	valid := make([]bool, len(subs))
	for i := range subs {
		err := validate.Struct(subs[i])
		if err == nil {
			valid[i] = true
			continue
		}
		if s.Cfg.Strict {
			return domain.BatchResult{}, perr.WithOp(err, fmt.Sprintf("analyze batch[%d]", i))
		}
		out.Skipped = append(out.Skipped, domain.Skipped{
			Index:        i,
			SubmissionID: subs[i].ID,
			Error:        perr.WireFrom(err),
		})
		l.Warn().Int("index", i).Str("submission_id", subs[i].ID).Err(err).Msg("skipping invalid submission")
	}

	slots := make([]domain.Result, len(subs))
	sem := make(chan struct{}, s.Cfg.Workers)
	wg := sync.WaitGroup{}

	var cancelled error
	for i := range subs {
		if !valid[i] {
			continue
		}
		if err := ctx.Err(); err != nil {
			cancelled = err
			break
		}
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer func() { <-sem; wg.Done() }()
			slots[i] = s.analyze(subs[i])
		}(i)
	}
	wg.Wait()
	if cancelled != nil {
		return domain.BatchResult{}, perr.Wrap(cancelled, perr.ErrorCodeUnavailable, "analyze batch: context done")
	}

	for i := range slots {
		if valid[i] {
			out.Results = append(out.Results, slots[i])
		}
	}

	if s.Cfg.Mine && len(out.Results) > 0 {
		rep := fraud.Detect(out.Fingerprints())
		out.Patterns = &rep
	}

	ev := l.Info().
		Int("submitted", len(subs)).
		Int("scored", len(out.Results)).
		Int("skipped", len(out.Skipped)).
		Dur("took", time.Since(started))
	if out.Patterns != nil {
		ev = ev.Int("duplicates", len(out.Patterns.DuplicateContent)).
			Int("similar_style", len(out.Patterns.SimilarStyle)).
			Int("bursts", len(out.Patterns.TemporalClustering))
	}
	ev.Msg("batch analyzed")
	return out, nil
}

// Mine runs the fraud miner over fps, bounded by MaxBatch
func (s *Service) Mine(ctx context.Context, fps []fingerprint.Fingerprint) (fraud.Report, error) {
	if err := ctx.Err(); err != nil {
		return fraud.Report{}, perr.Wrap(err, perr.ErrorCodeUnavailable, "mine: context done")
	}
	if s.Cfg.MaxBatch > 0 && len(fps) > s.Cfg.MaxBatch {
		return fraud.Report{}, perr.TooManyf("mine: %d fingerprints exceeds max %d", len(fps), s.Cfg.MaxBatch)
	}
	return fraud.Detect(fps), nil
}

// Compare returns the style similarity of a and b
func (s *Service) Compare(a, b fingerprint.Fingerprint) float64 {
	return compare.Fingerprints(&a, &b)
}

func flagStrings(fs []scorer.Flag) []string {
	out := make([]string, len(fs))
	for i, f := range fs {
		out[i] = string(f)
	}
	return out
}
