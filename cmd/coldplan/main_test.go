package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/coldplan/internal/report"
)

func TestRun_DefaultWorkload(t *testing.T) {
	var stdout, stderr bytes.Buffer

	err := run(context.Background(), []string{"-table=false"}, nil, &stdout, &stderr)

	require.NoError(t, err)
	require.Contains(t, stdout.String(), "2 (9 cold partitions)")
}

func TestRun_WeightsFromStdinAsJSON(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "coldplan.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
limits:
  maxColdElems: 2
  maxColdWeight: "2"
  maxPartitions: 3
`), 0o600))

	var stdout, stderr bytes.Buffer
	args := []string{"-config", cfgPath, "-weights", "-", "-format", "json"}

	err := run(context.Background(), args, strings.NewReader("3 1\n1, 1 # tail\n"), &stdout, &stderr)
	require.NoError(t, err)

	doc, err := report.DecodeJSON(&stdout)
	require.NoError(t, err)
	require.Equal(t, "1", doc.BestHotWeight)
	require.Equal(t, []int{1}, doc.Layout.Hot)
	require.Len(t, doc.Table, 5)
}

func TestRun_Metrics(t *testing.T) {
	var stdout, stderr bytes.Buffer

	err := run(context.Background(), []string{"-table=false", "-metrics"}, nil, &stdout, &stderr)

	require.NoError(t, err)
	require.Contains(t, stdout.String(), "coldplan_planner_runs_total")
}

func TestRun_Errors(t *testing.T) {
	var stdout, stderr bytes.Buffer

	err := run(context.Background(), []string{"-format", "xml"}, nil, &stdout, &stderr)
	require.ErrorIs(t, err, errUsage)

	err = run(context.Background(), []string{"-log-level", "loud"}, nil, &stdout, &stderr)
	require.ErrorIs(t, err, errUsage)

	err = run(context.Background(), []string{"-weights", "-"}, strings.NewReader("1 oops"), &stdout, &stderr)
	require.Error(t, err)
	require.Contains(t, err.Error(), "line 1")

	err = run(context.Background(), []string{"-weights", filepath.Join(t.TempDir(), "missing.txt")}, nil, &stdout, &stderr)
	require.Error(t, err)
}
