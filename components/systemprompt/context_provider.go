package systemprompt

// ContextProvider is an interface that defines the title and info of a context provider
type ContextProvider interface {
	Title() string
	Info() string
}

// Provider is a ContextProvider whose info is computed on every prompt generation
type Provider struct {
	title string
	info  func() string
}

var _ ContextProvider = (*Provider)(nil)

// NewProvider returns a new Provider
func NewProvider(title string, info func() string) *Provider {
	return &Provider{
		title: title,
		info:  info,
	}
}

func (p *Provider) Title() string {
	return p.title
}

func (p *Provider) Info() string {
	if p.info == nil {
		return ""
	}
	return p.info()
}
