// Package fraud mines a batch of fingerprints for signs of coordinated activity:
// exact duplicates, near-identical writing style, and bursts of submissions
package fraud

import (
	"sort"
	"time"

	"github.com/vaibhavgarg230/trustlens-sub000/internal/core/compare"
	"github.com/vaibhavgarg230/trustlens-sub000/internal/core/fingerprint"
)

const (
	// StyleThreshold is the exclusive lower bound for a similar-style pair
	StyleThreshold = 0.85
	// Window is the fixed wall-clock bucket used for temporal clustering
	Window = 30 * time.Minute
	// MinClusterSize is the exclusive lower bound on bucket size for a cluster
	MinClusterSize = 3
)

// DuplicatePair is two fingerprints with the same text hash
type DuplicatePair struct {
	First    string `json:"fingerprint1"`
	Second   string `json:"fingerprint2"`
	TextHash string `json:"textHash"`
}

// StylePair is two fingerprints whose style similarity exceeds StyleThreshold
type StylePair struct {
	First      string  `json:"fingerprint1"`
	Second     string  `json:"fingerprint2"`
	Similarity float64 `json:"similarity"`
}

// TemporalCluster is one window holding more than MinClusterSize fingerprints
type TemporalCluster struct {
	WindowStart  time.Time `json:"windowStart"`
	Fingerprints []string  `json:"fingerprints"`
	Count        int       `json:"count"`
}

// BehavioralAnomaly is reserved; no rule produces one yet
type BehavioralAnomaly struct {
	Fingerprint string `json:"fingerprintId"`
	Reason      string `json:"reason"`
}

// Report is the output of Detect. Every list is non-nil
type Report struct {
	DuplicateContent    []DuplicatePair     `json:"duplicateContent"`
	SimilarStyle        []StylePair         `json:"similarStyle"`
	TemporalClustering  []TemporalCluster   `json:"temporalClustering"`
	BehavioralAnomalies []BehavioralAnomaly `json:"behavioralAnomalies"`
}

// Empty reports whether nothing was found
func (r Report) Empty() bool {
	return len(r.DuplicateContent) == 0 && len(r.SimilarStyle) == 0 &&
		len(r.TemporalClustering) == 0 && len(r.BehavioralAnomalies) == 0
}

// Detect runs every check over fps in input order. Pairwise checks are O(n^2);
// callers bound the batch size
func Detect(fps []fingerprint.Fingerprint) Report {
	r := Report{
		DuplicateContent:    []DuplicatePair{},
		SimilarStyle:        []StylePair{},
		TemporalClustering:  []TemporalCluster{},
		BehavioralAnomalies: []BehavioralAnomaly{},
	}

	for i := range fps {
		a := &fps[i]
		for j := i + 1; j < len(fps); j++ {
			b := &fps[j]
			if a.TextHash == b.TextHash {
				r.DuplicateContent = append(r.DuplicateContent, DuplicatePair{a.ID, b.ID, a.TextHash})
			}
			if s := compare.Fingerprints(a, b); s > StyleThreshold {
				r.SimilarStyle = append(r.SimilarStyle, StylePair{a.ID, b.ID, s})
			}
		}
	}

	r.TemporalClustering = clusters(fps)
	return r
}

// WindowOf returns the index of the fixed window holding t
func WindowOf(t time.Time) int64 {
	ms := t.UnixMilli()
	w := Window.Milliseconds()
	// floor, not truncation, for pre-epoch instants
	if ms < 0 && ms%w != 0 {
		return ms/w - 1
	}
	return ms / w
}

func clusters(fps []fingerprint.Fingerprint) []TemporalCluster {
	buckets := make(map[int64][]string)
	for i := range fps {
		k := WindowOf(fps[i].Timestamp)
		buckets[k] = append(buckets[k], fps[i].ID)
	}

	keys := make([]int64, 0, len(buckets))
	for k, ids := range buckets {
		if len(ids) > MinClusterSize {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	out := make([]TemporalCluster, 0, len(keys))
	for _, k := range keys {
		ids := buckets[k]
		out = append(out, TemporalCluster{
			WindowStart:  time.UnixMilli(k * Window.Milliseconds()).UTC(),
			Fingerprints: ids,
			Count:        len(ids),
		})
	}
	return out
}
