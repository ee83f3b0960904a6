package parse

// Options configure one parser run. They are immutable once the parser
// has started; runtime indentation state (the prefix set by the
// `tdoc:indent` directive) lives in the Parser, not here.
type Options struct {
	// Comments includes comment lines in the output.
	Comments bool
	// RootNode, when non-empty, synthetically wraps the document in a
	// node of that name.
	RootNode string
	// Embed turns on embedded mode: the notation is extracted from a
	// host text file.
	Embed bool
	// EmbedNode is the node name used to wrap opaque host content in
	// embedded mode.
	EmbedNode string
	// EmbedLine is a line prefix marking literal notation lines in the
	// host file (eg. "#:").
	EmbedLine string
	// EmbedStart and EmbedEnd delimit blocks of literal notation lines
	// in the host file (eg. "/*" and "*/").
	EmbedStart string
	EmbedEnd   string
}

// IsEmbedded reports whether any of the embedding parameters is set.
func (o *Options) IsEmbedded() bool {
	return o.Embed || o.EmbedLine != "" || o.EmbedStart != "" || o.EmbedEnd != ""
}

// Option configures a Parser.
type Option func(*Options)

func WithComments(v bool) Option {
	return func(o *Options) { o.Comments = v }
}

func WithRootNode(name string) Option {
	return func(o *Options) { o.RootNode = name }
}

func WithEmbed(v bool) Option {
	return func(o *Options) { o.Embed = v }
}

func WithEmbedNode(name string) Option {
	return func(o *Options) { o.EmbedNode = name }
}

func WithEmbedLine(prefix string) Option {
	return func(o *Options) { o.EmbedLine = prefix }
}

func WithEmbedStart(marker string) Option {
	return func(o *Options) { o.EmbedStart = marker }
}

func WithEmbedEnd(marker string) Option {
	return func(o *Options) { o.EmbedEnd = marker }
}

// NewOptions builds an Options with defaults applied.
func NewOptions(opts ...Option) *Options {
	o := &Options{EmbedNode: "embed"}
	for _, f := range opts {
		f(o)
	}
	return o
}
