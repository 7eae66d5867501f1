package docdata

type NoticeKind int

const (
	// NoticeRestrictedDocuments is emitted once per parse, before the first
	// skipped restricted document.
	NoticeRestrictedDocuments NoticeKind = iota
	// NoticeRestrictedSkipped is emitted for each restricted document
	// left out of the result set.
	NoticeRestrictedSkipped
)

func (k NoticeKind) String() string {
	switch k {
	case NoticeRestrictedDocuments:
		return "restricted-documents"
	case NoticeRestrictedSkipped:
		return "restricted-skipped"
	default:
		return "unknown"
	}
}

type Notice struct {
	Kind  NoticeKind
	Title string
}

type NoticeFunc func(notice Notice)
