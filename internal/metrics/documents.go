package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	NameParsedDocuments   = "parsed_documents"
	NameRestrictedSkipped = "restricted_documents_skipped"
	NamePublishedDocsets  = "published_docsets"
	LabelRelease          = "release"
)

var ParsedDocuments = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:      NameParsedDocuments,
		Help:      "Total parsed documents",
		Namespace: Namespace,
	},
	[]string{LabelProduct, LabelRelease},
)

var RestrictedSkipped = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:      NameRestrictedSkipped,
		Help:      "Total restricted documents skipped for lack of authentication",
		Namespace: Namespace,
	},
	[]string{LabelProduct, LabelRelease},
)

var PublishedDocsets = promauto.NewCounter(
	prometheus.CounterOpts{
		Name:      NamePublishedDocsets,
		Help:      "Total published docset pages",
		Namespace: Namespace,
	},
)
