package tools

type Option func(c *Config)

func WithTitle(title string) Option {
	return func(c *Config) {
		c.SetTitle(title)
	}
}

func WithDescription(desc string) Option {
	return func(c *Config) {
		c.SetDescription(desc)
	}
}

func WithStartHook(fn StartHook) Option {
	return func(c *Config) {
		c.SetStartHook(fn)
	}
}

func WithEndHook(fn EndHook) Option {
	return func(c *Config) {
		c.SetEndHook(fn)
	}
}

func WithErrorHook(fn ErrorHook) Option {
	return func(c *Config) {
		c.SetErrorHook(fn)
	}
}

// ApplyOptions applies options to a tool after construction, used to attach hooks to ready made tools
func ApplyOptions(t Configurable, opts ...Option) {
	c := new(Config)
	for _, opt := range opts {
		opt(c)
	}
	if c.title != "" {
		t.SetTitle(c.title)
	}
	if c.description != "" {
		t.SetDescription(c.description)
	}
	if c.startHook != nil {
		t.SetStartHook(c.startHook)
	}
	if c.endHook != nil {
		t.SetEndHook(c.endHook)
	}
	if c.errorHook != nil {
		t.SetErrorHook(c.errorHook)
	}
}
