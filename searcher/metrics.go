package searcher

import "time"

// MoveMetrics describes one search: how many tree nodes were visited, how
// many branches the depth bound cut off, and how many sibling sets
// alpha-beta pruning abandoned early.
type MoveMetrics struct {
	StartTime time.Time
	Duration  time.Duration
	Nodes     int64
	Cutoffs   int64
	Prunes    int64
}

type Collector interface {
	Start()
	AddNode()
	AddCutoff()
	AddPrune()
	Complete() MoveMetrics
}

// collector uses plain counters: the search runs on a single goroutine.
type collector struct {
	startTime time.Time
	nodes     int64
	cutoffs   int64
	prunes    int64
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start() {
	c.startTime = time.Now()
	c.nodes = 0
	c.cutoffs = 0
	c.prunes = 0
}

func (c *collector) AddNode() {
	c.nodes++
}

func (c *collector) AddCutoff() {
	c.cutoffs++
}

func (c *collector) AddPrune() {
	c.prunes++
}

func (c *collector) Complete() MoveMetrics {
	return MoveMetrics{
		StartTime: c.startTime,
		Duration:  time.Since(c.startTime),
		Nodes:     c.nodes,
		Cutoffs:   c.cutoffs,
		Prunes:    c.prunes,
	}
}

type noopCollector struct{}

func NewNoopCollector() Collector {
	return noopCollector{}
}

func (noopCollector) Start()                {}
func (noopCollector) AddNode()              {}
func (noopCollector) AddCutoff()            {}
func (noopCollector) AddPrune()             {}
func (noopCollector) Complete() MoveMetrics { return MoveMetrics{} }
