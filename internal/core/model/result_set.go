package model

// ResultSet is an ordered list of documents without structural duplicates.
// Documents from combined product families can show up in several upstream
// responses; only the first occurrence is kept.
type ResultSet struct {
	documents []*Document
}

// Add appends the document unless an equal one is already present. Nil
// documents are ignored. It reports whether the document was appended.
func (s *ResultSet) Add(doc *Document) bool {
	if doc == nil {
		return false
	}

	for _, existing := range s.documents {
		if existing.Equal(doc) {
			return false
		}
	}

	s.documents = append(s.documents, doc)

	return true
}

func (s *ResultSet) Documents() []*Document {
	documents := make([]*Document, len(s.documents))
	copy(documents, s.documents)
	return documents
}

func (s *ResultSet) Len() int {
	return len(s.documents)
}

// Filter returns a new result set holding the documents matching fn.
func (s *ResultSet) Filter(fn func(doc *Document) bool) ResultSet {
	filtered := ResultSet{}
	for _, d := range s.documents {
		if fn(d) {
			filtered.documents = append(filtered.documents, d)
		}
	}
	return filtered
}

// Accumulate builds a result set from the given documents, keeping first
// seen order.
func Accumulate(docs ...*Document) ResultSet {
	set := ResultSet{}
	for _, d := range docs {
		set.Add(d)
	}
	return set
}
