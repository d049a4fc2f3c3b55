package genarena

import "github.com/prometheus/client_golang/prometheus"

const metricsNamespace = "genarena"

type collector struct {
	src MetricsSource

	live     *prometheus.Desc
	slots    *prometheus.Desc
	free     *prometheus.Desc
	capacity *prometheus.Desc
	allocs   *prometheus.Desc
	reuses   *prometheus.Desc
	frees    *prometheus.Desc
}

var _ prometheus.Collector = &collector{}

// NewCollector returns a Prometheus collector exporting the metrics of src,
// labelled arena=name. src is read on every scrape, from the scraping
// goroutine, so a shared arena must be a *SafeArena.
func NewCollector(name string, src MetricsSource) prometheus.Collector {
	labels := prometheus.Labels{"arena": name}
	desc := func(metric, help string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(metricsNamespace, "", metric), help, nil, labels)
	}
	return &collector{
		src:      src,
		live:     desc("live_entries", "Number of live entries in the arena."),
		slots:    desc("slots", "Number of slots ever created by the arena."),
		free:     desc("free_slots", "Number of slots on the arena free list."),
		capacity: desc("capacity_slots", "Reserved slot capacity of the arena."),
		allocs:   desc("allocs_total", "Total number of allocations."),
		reuses:   desc("reuses_total", "Total number of allocations served from the free list."),
		frees:    desc("frees_total", "Total number of entries freed."),
	}
}

func (c *collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.live
	ch <- c.slots
	ch <- c.free
	ch <- c.capacity
	ch <- c.allocs
	ch <- c.reuses
	ch <- c.frees
}

func (c *collector) Collect(ch chan<- prometheus.Metric) {
	m := c.src.Metrics()
	ch <- prometheus.MustNewConstMetric(c.live, prometheus.GaugeValue, float64(m.Live))
	ch <- prometheus.MustNewConstMetric(c.slots, prometheus.GaugeValue, float64(m.Slots))
	ch <- prometheus.MustNewConstMetric(c.free, prometheus.GaugeValue, float64(m.FreeSlots))
	ch <- prometheus.MustNewConstMetric(c.capacity, prometheus.GaugeValue, float64(m.Capacity))
	ch <- prometheus.MustNewConstMetric(c.allocs, prometheus.CounterValue, float64(m.Allocs))
	ch <- prometheus.MustNewConstMetric(c.reuses, prometheus.CounterValue, float64(m.Reuses))
	ch <- prometheus.MustNewConstMetric(c.frees, prometheus.CounterValue, float64(m.Frees))
}
