package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/gridroute/core"
)

type AdjacencySuite struct {
	suite.Suite
	g *core.Graph
}

func (s *AdjacencySuite) SetupTest() {
	s.g = core.NewGraph(4)
}

func (s *AdjacencySuite) TestNewGraph() {
	require := require.New(s.T())
	require.Equal(4, s.g.NodeCount())
	require.Zero(s.g.EdgeCount(), "fresh graph has no edges")
	for id := 0; id < 4; id++ {
		require.Empty(s.g.Neighbors(id), "node %d should start isolated", id)
	}

	// negative sizes clamp to an empty graph
	require.Zero(core.NewGraph(-3).NodeCount())
}

func (s *AdjacencySuite) TestAddEdgeIsDirected() {
	require := require.New(s.T())
	s.g.AddEdge(0, 1)
	require.True(s.g.HasEdge(0, 1))
	require.False(s.g.HasEdge(1, 0), "AddEdge must not mirror")
	require.Equal(1, s.g.EdgeCount())
}

func (s *AdjacencySuite) TestAddUndirectedEdge() {
	require := require.New(s.T())
	s.g.AddUndirectedEdge(2, 3)
	require.True(s.g.HasEdge(2, 3))
	require.True(s.g.HasEdge(3, 2))
	require.Equal(2, s.g.EdgeCount())
}

func (s *AdjacencySuite) TestNeighborsInsertionOrder() {
	require := require.New(s.T())
	s.g.AddEdge(0, 3)
	s.g.AddEdge(0, 1)
	s.g.AddEdge(0, 2)
	require.Equal([]int{3, 1, 2}, s.g.Neighbors(0))
}

func (s *AdjacencySuite) TestDuplicatesAndLoops() {
	require := require.New(s.T())
	s.g.AddEdge(1, 1)
	s.g.AddEdge(1, 2)
	s.g.AddEdge(1, 2)
	require.Equal([]int{1, 2, 2}, s.g.Neighbors(1))
	require.Equal(3, s.g.EdgeCount())
	require.True(s.g.HasEdge(1, 1))
}

func (s *AdjacencySuite) TestContains() {
	require := require.New(s.T())
	require.True(s.g.Contains(0))
	require.True(s.g.Contains(3))
	require.False(s.g.Contains(4))
	require.False(s.g.Contains(-1))
	require.False(s.g.HasEdge(-1, 0), "HasEdge on an unknown node is false")
}

func TestAdjacencySuite(t *testing.T) {
	suite.Run(t, new(AdjacencySuite))
}

func TestZeroValueGraph(t *testing.T) {
	var g core.Graph
	require.Zero(t, g.NodeCount())
	require.False(t, g.Contains(0))
}
