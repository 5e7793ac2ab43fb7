/*
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package report summarizes and persists Ginkgo suite results.
package report

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/onsi/ginkgo/v2/reporters"
	"github.com/onsi/ginkgo/v2/types"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

const (
	// JUnitFile is the name of the JUnit report written to a report directory.
	JUnitFile = "junit.xml"
)

// Summary counts leaf specs by outcome.
type Summary struct {
	Total   int
	Passed  int
	Failed  int
	Skipped int
	Pending int
}

// Succeeded is true when nothing failed.
func (s Summary) Succeeded() bool {
	return s.Failed == 0
}

// Summarize counts It specs, setup and teardown nodes are ignored.
func Summarize(report types.Report) Summary {
	var s Summary

	for i := range report.SpecReports {
		spec := &report.SpecReports[i]

		if spec.LeafNodeType != types.NodeTypeIt {
			continue
		}

		s.Total++

		switch {
		case spec.State.Is(types.SpecStatePassed):
			s.Passed++
		case spec.State.Is(types.SpecStateSkipped):
			s.Skipped++
		case spec.State.Is(types.SpecStatePending):
			s.Pending++
		case spec.State.Is(types.SpecStateFailureStates):
			s.Failed++
		}
	}

	return s
}

// LogSpec records the outcome of a single spec.
func LogSpec(ctx context.Context, spec types.SpecReport) {
	log := log.FromContext(ctx).WithValues("spec", spec.FullText(), "state", spec.State.String(), "duration", spec.RunTime.Round(time.Millisecond))

	if spec.State.Is(types.SpecStateFailureStates) {
		log.Info("spec failed", "failure", spec.FailureMessage(), "location", spec.FailureLocation().String())
		return
	}

	log.V(1).Info("spec complete")
}

// LogSuite records the suite totals.
func LogSuite(ctx context.Context, report types.Report) {
	s := Summarize(report)

	log.FromContext(ctx).Info("suite complete",
		"suite", report.SuiteDescription,
		"succeeded", report.SuiteSucceeded,
		"duration", report.RunTime.Round(time.Millisecond),
		"total", s.Total,
		"passed", s.Passed,
		"failed", s.Failed,
		"skipped", s.Skipped,
		"pending", s.Pending,
	)
}

// WriteJUnit writes a JUnit report into dir, creating it if required.  An
// empty dir disables reporting.  Failures are logged, a broken report must
// never fail the suite.
func WriteJUnit(ctx context.Context, report types.Report, dir string) string {
	if dir == "" {
		return ""
	}

	log := log.FromContext(ctx)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Error(err, "failed to create report directory", "dir", dir)
		return ""
	}

	path := filepath.Join(dir, JUnitFile)

	if err := reporters.GenerateJUnitReport(report, path); err != nil {
		log.Error(err, "failed to write junit report", "path", path)
		return ""
	}

	log.Info("junit report written", "path", path)

	return path
}
