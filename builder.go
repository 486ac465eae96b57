package pluginlog

// Config for constructing a Logger (Factory data structure).
type Config struct {
	Channel string
	Sink    ConsoleSink
}

// Builder separates construction from representation (Builder pattern).
type Builder struct {
	cfg Config
}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) WithChannel(channel string) *Builder {
	b.cfg.Channel = channel
	return b
}

func (b *Builder) WithSink(s ConsoleSink) *Builder {
	b.cfg.Sink = s
	return b
}

// Build constructs the Logger (Factory + Builder).
func (b *Builder) Build() (*Logger, error) {
	return New(b.cfg.Channel, b.cfg.Sink)
}

// Use builds a Logger from cfg, sets it as global, and returns it.
func Use(cfg Config) (*Logger, error) {
	l, err := New(cfg.Channel, cfg.Sink)
	if err != nil {
		return nil, err
	}
	SetGlobal(l)
	return l, nil
}
