package docdata

const (
	DefaultDocHost           = "infoproducts.alcatel-lucent.com"
	DefaultSynthesizedFamily = "nuage"
	DefaultRestrictedMarker  = "a login is required for access"
)

type Options struct {
	// Authenticated tells whether the caller holds a portal session.
	// Restricted documents are dropped when it is false.
	Authenticated bool
	// ProductFamily is the product name the documents were queried for.
	ProductFamily string
	// DocHost is the host used to build synthesized HTML links.
	DocHost string
	// SynthesizedFamily is the product family whose HTML links are rebuilt
	// from the document identifier. Empty disables the rewrite.
	SynthesizedFamily string
	// RestrictedMarker is the text flagging documents requiring a login.
	RestrictedMarker string
	NoticeFunc        NoticeFunc
}

type OptionFunc func(opts *Options)

func WithAuthenticated(authenticated bool) OptionFunc {
	return func(opts *Options) {
		opts.Authenticated = authenticated
	}
}

func WithProductFamily(family string) OptionFunc {
	return func(opts *Options) {
		opts.ProductFamily = family
	}
}

func WithDocHost(host string) OptionFunc {
	return func(opts *Options) {
		opts.DocHost = host
	}
}

func WithSynthesizedFamily(family string) OptionFunc {
	return func(opts *Options) {
		opts.SynthesizedFamily = family
	}
}

func WithRestrictedMarker(marker string) OptionFunc {
	return func(opts *Options) {
		opts.RestrictedMarker = marker
	}
}

func WithNoticeFunc(fn NoticeFunc) OptionFunc {
	return func(opts *Options) {
		opts.NoticeFunc = fn
	}
}

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		DocHost:           DefaultDocHost,
		SynthesizedFamily: DefaultSynthesizedFamily,
		RestrictedMarker:  DefaultRestrictedMarker,
		NoticeFunc:        func(Notice) {},
	}

	for _, fn := range funcs {
		fn(opts)
	}

	if opts.NoticeFunc == nil {
		opts.NoticeFunc = func(Notice) {}
	}

	return opts
}
