package model

type LinkFormat string

const (
	FormatUnknown LinkFormat = ""
	FormatPDF     LinkFormat = "PDF"
	FormatZIP     LinkFormat = "ZIP"
	FormatHTML    LinkFormat = "HTML"
)

func (f LinkFormat) String() string {
	if f == FormatUnknown {
		return "unknown"
	}
	return string(f)
}

type Link struct {
	URL    string
	Format LinkFormat
}

func NewLink(url string, format LinkFormat) Link {
	return Link{
		URL:    url,
		Format: format,
	}
}
