package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/riskibarqy/solblist-api/internal/domain/dataset"
	"github.com/riskibarqy/solblist-api/internal/usecase"
)

func TestPrintValidation(t *testing.T) {
	records := []dataset.LevelRecord{
		{LevelID: "1", Rank: 1, Name: "One", Victors: []dataset.VictorRecord{{Name: "A"}, {Name: "B"}}},
		{LevelID: "2", Rank: 2, Name: "Two", Victors: []dataset.VictorRecord{{Name: "A"}}},
		{Rank: 3, Name: "No id"},
	}

	var out bytes.Buffer
	printValidation(&out, records)

	for _, want := range []string{"records:            3 (1 invalid)", "players:            2 (2 ranked)", "leader:             A"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("expected %q in output:\n%s", want, out.String())
		}
	}
}

func TestPrintReport_ListsFailures(t *testing.T) {
	var out bytes.Buffer
	printReport(&out, usecase.ImportReport{LevelsCreated: 2, Failures: []string{"level 9: boom"}})

	if !strings.Contains(out.String(), "2 created") || !strings.Contains(out.String(), "failure:      level 9: boom") {
		t.Fatalf("unexpected report:\n%s", out.String())
	}
}

func TestExtrasRequiresASource(t *testing.T) {
	var out bytes.Buffer
	err := newApp(&out).Run([]string{"importer", "extras"})
	if err == nil {
		t.Fatalf("expected error without sources")
	}
}
