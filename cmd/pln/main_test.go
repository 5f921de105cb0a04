package main

import (
	"bytes"
	"strings"
	"testing"

	"partnerline/internal/sample"
)

func TestRenderGenerateResult(t *testing.T) {
	res := sample.Result{
		Realized: sample.Quantities{
			Projects:         3,
			SPIs:             10,
			Objectives:       5,
			SitReps:          10,
			Fortune30:        5,
			InternalPartners: 20,
			SMEPartners:      10,
		},
		Initiatives: 4,
		Departments: 6,
		Notices:     []sample.Notice{{Kind: "fortune30", Requested: 10, Available: 5}},
	}

	var buf bytes.Buffer
	renderGenerateResult(&buf, res)
	out := buf.String()

	notice := res.Notices[0].String()
	if got := strings.Count(out, notice); got != 1 {
		t.Fatalf("notice printed %d times, want 1:\n%s", got, out)
	}
	for _, want := range []string{"Created", "projects", "fortune30", "departments"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
	if !strings.Contains(out, "3") || !strings.Contains(out, "6") {
		t.Fatalf("realized counts missing from output:\n%s", out)
	}
}

func TestRenderGenerateResultNoNotices(t *testing.T) {
	var buf bytes.Buffer
	renderGenerateResult(&buf, sample.Result{Realized: sample.Quantities{Projects: 1}})
	out := buf.String()
	if strings.Contains(out, "adjusting") {
		t.Fatalf("unexpected notice in output:\n%s", out)
	}
	if !strings.Contains(out, "projects") {
		t.Fatalf("missing realized table:\n%s", out)
	}
}
