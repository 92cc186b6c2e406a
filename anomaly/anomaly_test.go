package anomaly_test

import (
	"bytes"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cerberon/anomaly"
	"github.com/katalvlaran/cerberon/core"
)

func description(n int, edges ...core.EdgeSpec) core.Description {
	desc := core.Description{Edges: edges}
	for i := 1; i <= n; i++ {
		desc.Nodes = append(desc.Nodes, core.NewNodeSpec(core.NodeID(i), "router", "wan"))
	}
	return desc
}

func e(from, to core.NodeID, w float64) core.EdgeSpec {
	return core.NewEdgeSpec(from, to, w, "")
}

func assertDegradedShape(t *testing.T, rep anomaly.Report) {
	t.Helper()
	assert.Equal(t, anomaly.StatusError, rep.Status)
	assert.NotEmpty(t, rep.Message)
	assert.NotNil(t, rep.Distances)
	assert.Empty(t, rep.Distances)
	assert.NotNil(t, rep.SuspiciousEdges)
	assert.Empty(t, rep.SuspiciousEdges)
	assert.NotNil(t, rep.NegativeCycleEdges)
	assert.Empty(t, rep.NegativeCycleEdges)
	assert.Zero(t, rep.AverageWeight)
	assert.Error(t, rep.Err())
}

func TestDetect_Outlier(t *testing.T) {
	rep := anomaly.Detect(description(4, e(1, 2, 1), e(2, 3, 1), e(3, 4, 1), e(1, 4, 9)), 1)
	require.Equal(t, anomaly.StatusSuccess, rep.Status)
	require.NoError(t, rep.Err())
	assert.Equal(t, 3.0, rep.AverageWeight)
	assert.Equal(t, []core.EdgeKey{{From: 1, To: 4}}, rep.SuspiciousEdges)
	assert.Empty(t, rep.NegativeCycleEdges)
	assert.Equal(t, core.DistanceMap{1: 0, 2: 1, 3: 2, 4: 3}, rep.Distances)
}

func TestDetect_UniformWeights(t *testing.T) {
	rep := anomaly.Detect(description(3, e(1, 2, 4), e(2, 3, 4), e(3, 1, 4)), 1)
	require.Equal(t, anomaly.StatusSuccess, rep.Status)
	assert.Equal(t, 4.0, rep.AverageWeight)
	assert.NotNil(t, rep.SuspiciousEdges)
	assert.Empty(t, rep.SuspiciousEdges)
}

func TestDetect_NoEdges(t *testing.T) {
	rep := anomaly.Detect(description(2), 2)
	require.Equal(t, anomaly.StatusSuccess, rep.Status)
	assert.Zero(t, rep.AverageWeight)
	assert.Empty(t, rep.SuspiciousEdges)
	assert.Equal(t, 0.0, rep.Distances[2])
	assert.True(t, math.IsInf(rep.Distances[1], 1))
}

func TestDetect_NonPositiveMeanSkipsOutliers(t *testing.T) {
	// mean is -2; 1 > 2×(-2) would otherwise flag everything
	rep := anomaly.Detect(description(3, e(1, 2, -5), e(2, 3, 1)), 1)
	require.Equal(t, anomaly.StatusSuccess, rep.Status)
	assert.Equal(t, -2.0, rep.AverageWeight)
	assert.Empty(t, rep.SuspiciousEdges)
}

func TestDetect_NegativeCycle(t *testing.T) {
	rep := anomaly.Detect(description(3, e(1, 2, 2), e(2, 3, -4), e(3, 2, 1)), 1)
	require.Equal(t, anomaly.StatusSuccess, rep.Status)
	assert.NotEmpty(t, rep.NegativeCycleEdges)
}

func TestDetect_Factor(t *testing.T) {
	desc := description(3, e(1, 2, 1), e(2, 3, 2))
	rep := anomaly.Detect(desc, 1)
	assert.Empty(t, rep.SuspiciousEdges)

	rep = anomaly.Detect(desc, 1, anomaly.WithFactor(1.2))
	assert.Equal(t, []core.EdgeKey{{From: 2, To: 3}}, rep.SuspiciousEdges)
}

func TestDetect_InvalidDescription(t *testing.T) {
	desc := description(2, e(1, 2, 1))
	desc.Nodes[1].Label = nil

	rep := anomaly.Detect(desc, 1)
	assertDegradedShape(t, rep)
	assert.ErrorIs(t, rep.Err(), core.ErrValidation)
	assert.Contains(t, rep.Message, "nodes[1].label")
}

func TestDetect_UndeclaredEndpoint(t *testing.T) {
	rep := anomaly.Detect(description(2, e(1, 3, 1)), 1)
	assertDegradedShape(t, rep)
	assert.ErrorIs(t, rep.Err(), core.ErrValidation)
}

func TestAnalyze_UnknownSource(t *testing.T) {
	g, err := core.Build(description(2, e(1, 2, 1)))
	require.NoError(t, err)

	rep := anomaly.Analyze(g, 99)
	assertDegradedShape(t, rep)
	assert.ErrorIs(t, rep.Err(), core.ErrNodeNotFound)
	assert.Contains(t, rep.Message, "99")
}

func TestAnalyze_NilGraph(t *testing.T) {
	rep := anomaly.Analyze(nil, 1)
	assertDegradedShape(t, rep)
	assert.ErrorIs(t, rep.Err(), anomaly.ErrNilGraph)
}

func TestAnalyze_LogsDegradedReport(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	anomaly.Analyze(nil, 1, anomaly.WithLogger(logger))
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "anomaly report degraded")

	buf.Reset()
	g, err := core.Build(description(2, e(1, 2, 1)))
	require.NoError(t, err)
	anomaly.Analyze(g, 1, anomaly.WithLogger(logger))
	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "suspicious=0")
}

func TestAnalyze_Undirected(t *testing.T) {
	g, err := core.Build(description(3, e(1, 2, 1), e(2, 3, 7)), core.WithDirected(false))
	require.NoError(t, err)

	rep := anomaly.Analyze(g, 3)
	require.Equal(t, anomaly.StatusSuccess, rep.Status)
	assert.Equal(t, 4.0, rep.AverageWeight)
	assert.Empty(t, rep.SuspiciousEdges)
	assert.Equal(t, 8.0, rep.Distances[1])
}
