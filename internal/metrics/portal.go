package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	NamePortalQueries     = "portal_queries"
	NameDownloadedBytes   = "downloaded_bytes"
	LabelProduct          = "product"
	LabelRequest          = "request"
	RequestReleases       = "releases"
	RequestDocuments      = "documents"
	RequestCollection     = "collection"
	RequestCollectionSize = "collection_size"
)

var PortalQueries = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:      NamePortalQueries,
		Help:      "Total portal queries",
		Namespace: Namespace,
	},
	[]string{LabelProduct, LabelRequest},
)

var DownloadedBytes = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:      NameDownloadedBytes,
		Help:      "Total downloaded collection bytes",
		Namespace: Namespace,
	},
	[]string{LabelProduct},
)
