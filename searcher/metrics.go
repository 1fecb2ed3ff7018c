package searcher

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Duration time.Duration
	Plies    int
	Workers  int
	Pruning  bool
	Nodes    int64 // Every visited node, leaves included
	Leaves   int64
	Cutoffs  int64
	Passes   int64
}

type Collector interface {
	Start(plies, workers int, pruning bool)
	AddNode()
	AddLeaf()
	AddCutoff()
	AddPass()
	Complete() SearchMetric
}

type collector struct {
	plies     int
	workers   int
	pruning   bool
	startTime time.Time
	nodes     atomic.Int64
	leaves    atomic.Int64
	cutoffs   atomic.Int64
	passes    atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(plies, workers int, pruning bool) {
	m.startTime = time.Now()
	m.plies = plies
	m.workers = workers
	m.pruning = pruning
	m.nodes.Store(0)
	m.leaves.Store(0)
	m.cutoffs.Store(0)
	m.passes.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddLeaf() {
	m.leaves.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) AddPass() {
	m.passes.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Duration: time.Since(m.startTime),
		Plies:    m.plies,
		Workers:  m.workers,
		Pruning:  m.pruning,
		Nodes:    m.nodes.Load(),
		Leaves:   m.leaves.Load(),
		Cutoffs:  m.cutoffs.Load(),
		Passes:   m.passes.Load(),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(plies, workers int, pruning bool) {}
func (m *dummyCollector) AddNode()                              {}
func (m *dummyCollector) AddLeaf()                              {}
func (m *dummyCollector) AddCutoff()                            {}
func (m *dummyCollector) AddPass()                              {}
func (m *dummyCollector) Complete() SearchMetric                { return SearchMetric{} }
